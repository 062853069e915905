package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorBody(t *testing.T) {
	body, err := json.Marshal(NewNotFoundError("Item not found"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"error":"Item not found","code":"NOT_FOUND"}`, string(body))
}

func TestHTTPErrorBodyWithFieldErrors(t *testing.T) {
	httpErr := NewBadRequestError("Invalid data", []FieldError{
		{Field: "name", Error: "is required"},
	})

	body, err := json.Marshal(httpErr)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"error": "Invalid data",
		"code": "BAD_REQUEST",
		"errors": [{"field": "name", "error": "is required"}]
	}`, string(body))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestHTTPErrorInternalIsNotSerialized(t *testing.T) {
	httpErr := NewBadRequestError("Invalid item id", nil).
		WithInternal(errors.New(`strconv.ParseInt: parsing "abc": invalid syntax`))

	body, err := json.Marshal(httpErr)
	require.NoError(t, err)

	assert.NotContains(t, string(body), "strconv")
	assert.Equal(t, "Invalid item id", httpErr.Error())
}

func TestHTTPErrorAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewInternalServerError())

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.Error())
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnsupportedMediaType)))
}
