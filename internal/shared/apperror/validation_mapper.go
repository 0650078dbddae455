package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns binding failures into field-level validation errors
// keyed by the json field name.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make(map[string]string, len(errs))
		for _, e := range errs {
			human := formatFieldName(e.Field())
			switch e.Tag() {
			case "required":
				fields[e.Field()] = human + " is required"
			case "min", "max", "gte", "lte":
				fields[e.Field()] = human + " must be " + e.Tag() + " " + e.Param()
			default:
				fields[e.Field()] = human + " is invalid"
			}
		}
		return Validation(fields)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
