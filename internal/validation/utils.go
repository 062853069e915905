package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Ezio50/Microserv/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// DefaultMessage is the top-level error message of a failed validation.
const DefaultMessage = "Validation failed"

// DefaultPathMessage answers a path parameter that does not parse or validate.
const DefaultPathMessage = "Invalid path parameter"

// DefaultBodyMessage answers a body that cannot be decoded into the request.
const DefaultBodyMessage = "Invalid request body"

// validate is shared by all request types; validator caches struct metadata.
var validate = validator.New()

// Struct runs the `validate:"..."` tags of s.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required"`)
// - Implement Validate() error that runs validation.Struct(req)
// - Return validator.ValidationErrors (or CustomValidationErrors for custom cases)
type Validatable interface {
	Validate() error
}

// Messenger lets a request choose the top-level message clients see
// when its body fails to decode or validate, instead of DefaultMessage.
type Messenger interface {
	ValidationMessage() string
}

// PathMessenger lets a request choose the message for a bad path
// parameter, instead of DefaultPathMessage.
type PathMessenger interface {
	PathMessage() string
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return DefaultMessage
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) path params are bound first; a failure is a path error.
// 2) c.Bind(payload) populates the rest of the request struct from the body.
// 3) payload.Validate() applies validation rules. A failing field bound
// from the path is reported as a path error too.
//
// Every failure is a 400 *errs.HTTPError (415 for an unsupported content
// type). Decoder and parser messages stay in HTTPError.Internal, they are
// never sent to the client. c.Bind expects a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindPathParams(c, payload); err != nil {
		return pathError(c, payload, err)
	}

	if err := c.Bind(payload); err != nil {
		return bindError(payload, err)
	}

	if err := payload.Validate(); err != nil {
		if pathFieldFailed(payload, err) {
			return pathError(c, payload, err)
		}

		message := DefaultMessage
		if m, ok := payload.(Messenger); ok {
			message = m.ValidationMessage()
		}
		return errs.NewBadRequestError(message, extractValidationError(err)).WithInternal(err)
	}

	return nil
}

func pathError(c echo.Context, payload Validatable, err error) error {
	message := DefaultPathMessage
	if m, ok := payload.(PathMessenger); ok {
		message = m.PathMessage()
	}

	var fieldErrors []errs.FieldError
	for _, name := range c.ParamNames() {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: name, Error: "is invalid"})
	}

	return errs.NewBadRequestError(message, fieldErrors).WithInternal(err)
}

// pathFieldFailed reports whether err names a field bound from the path (`param` tag).
func pathFieldFailed(payload Validatable, err error) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}

	t := reflect.TypeOf(payload)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}

	for _, fe := range validationErrors {
		if field, ok := t.FieldByName(fe.StructField()); ok && field.Tag.Get("param") != "" {
			return true
		}
	}
	return false
}

// bindError turns an echo body bind failure (malformed JSON, wrong types,
// unsupported content type) into an HTTPError with the same status.
func bindError(payload Validatable, err error) error {
	status := http.StatusBadRequest

	var echoErr *echo.HTTPError
	var bindingErr *echo.BindingError
	switch {
	case errors.As(err, &bindingErr):
		status = bindingErr.Code
	case errors.As(err, &echoErr):
		status = echoErr.Code
	}

	if status != http.StatusBadRequest {
		return &errs.HTTPError{
			Code:     errs.MakeUpperCaseWithUnderscores(http.StatusText(status)),
			Message:  http.StatusText(status),
			Status:   status,
			Internal: err,
		}
	}

	message := DefaultBodyMessage
	if m, ok := payload.(Messenger); ok {
		message = m.ValidationMessage()
	}
	return errs.NewBadRequestError(message, []errs.FieldError{{Field: "body", Error: "is malformed"}}).WithInternal(err)
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "body", Error: "is invalid"}}
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// strings: minimum length, numbers: minimum value
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors
}
