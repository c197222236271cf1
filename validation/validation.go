// Package validation wraps go-playground/validator with the declarative
// field constraints used by the request DTOs. Failures are translated into
// the structured per-field violation list carried by apperror, so clients
// always receive one 400 response naming every offending field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/user/taskall-go/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the json field name rather than the Go one.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Password complexity rules. Registration errors here mean a programming
	// mistake, hence the panic at package init time.
	if err := v.RegisterValidation("upperchar", hasUppercase); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("digitchar", hasDigit); err != nil {
		panic(err)
	}
	return v
}

func hasUppercase(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func hasDigit(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Struct validates a request DTO against its declared constraints. It returns
// nil on success, or a ValidationError listing every field violation.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: the value was not a struct at all.
		return apperror.NewInternalError("validation failed", err)
	}

	violations := make([]apperror.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, apperror.FieldViolation{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return apperror.NewFieldViolationsError(violations)
}

// messageFor maps a validator tag failure to a client-facing message.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "eqfield":
		return "must match " + strings.ToLower(fe.Param())
	case "upperchar":
		return "must contain at least one uppercase letter"
	case "digitchar":
		return "must contain at least one digit"
	default:
		return "is invalid"
	}
}
