package configs

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 5000.
	Port uint16 `env:"PORT" envDefault:"5000"`
	// CORSAllowedOrigins lists the origins allowed to call the API from a
	// browser. "*" allows any origin.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}
