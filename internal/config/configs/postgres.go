package configs

import (
	"net"
	"net/url"
	"strconv"
)

// Postgres holds configuration for connecting to a PostgreSQL database. The
// connection URL is composed from the individual DB_* variables. MaxConns
// and MinConns control the size of the connection pool; zero keeps the
// pgxpool defaults.
type Postgres struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     uint16 `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"password"`
	Name     string `env:"NAME" envDefault:"postgres"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`

	MaxConns int32 `env:"MAX_CONNS" envDefault:"0"`
	MinConns int32 `env:"MIN_CONNS" envDefault:"0"`

	// RunMigrations controls whether database migrations are executed on
	// startup. Only honoured by the serve command.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// Addr returns the connection URL accepted by both pgxpool and
// golang-migrate.
func (c Postgres) Addr() url.URL {
	q := url.Values{}
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	return url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port))),
		Path:     "/" + c.Name,
		RawQuery: q.Encode(),
	}
}
