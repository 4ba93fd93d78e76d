package domain

import "errors"

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrAdvertisementNotFound = errors.New("advertisement not found")
)

// ValidationError reports input the client has to correct before
// resubmitting. Message is returned to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError returns a *ValidationError carrying msg.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
