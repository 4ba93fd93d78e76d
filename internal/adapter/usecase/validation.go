package usecase

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"campaign-manager/internal/core/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateEntity checks the validate tags of a domain entity and converts
// the first violation into a *domain.ValidationError.
func validateEntity(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	return domain.NewValidationError(validationMessage(fieldErrs[0]))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "EndDate":
		if fe.Tag() == "gtefield" {
			return "Start date must be before end date"
		}
	case "Budget":
		return "Budget must be non-negative"
	case "Status":
		return "Invalid status: must be one of Draft, Active, Paused, Completed"
	}
	field := jsonFieldNames[fe.StructField()]
	if field == "" {
		field = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %s must not be empty", field)
	case "max":
		return fmt.Sprintf("Field %s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("Invalid value for field %s", field)
	}
}

var jsonFieldNames = map[string]string{
	"Name":           "name",
	"StartDate":      "start_date",
	"EndDate":        "end_date",
	"Title":          "title",
	"ImageURL":       "image_url",
	"TargetAudience": "target_audience",
}

func missingField(name string) error {
	return domain.NewValidationError("Missing required field: " + name)
}
