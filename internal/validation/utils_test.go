package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ezio50/Microserv/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createThingRequest struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"min=1"`
}

func (r *createThingRequest) Validate() error {
	return Struct(r)
}

func (r *createThingRequest) ValidationMessage() string {
	return "Invalid data"
}

type thingByIDRequest struct {
	ID int64 `param:"id" json:"-" validate:"min=0"`
}

func (r *thingByIDRequest) Validate() error {
	return Struct(r)
}

func (r *thingByIDRequest) PathMessage() string {
	return "Invalid thing id"
}

type renameThingByIDRequest struct {
	ID   int64  `param:"id" json:"-" validate:"min=0"`
	Name string `json:"name" validate:"required"`
}

func (r *renameThingByIDRequest) Validate() error {
	return Struct(r)
}

type renameThingRequest struct {
	Name *string `json:"name"`
}

func (r *renameThingRequest) Validate() error {
	if r.Name == nil {
		return CustomValidationErrors{{Field: "name", Message: "is required"}}
	}
	return nil
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidateSuccess(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/things", `{"name":"lamp","count":2}`)

	req := &createThingRequest{}
	require.NoError(t, BindAndValidate(c, req))

	assert.Equal(t, "lamp", req.Name)
	assert.Equal(t, 2, req.Count)
}

func TestBindAndValidateUsesRequestMessage(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/things", `{}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &createThingRequest{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid data", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "count", Error: "must be at least 1"},
	}, httpErr.Errors)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c, _ := newContext(http.MethodPatch, "/things/1", `{}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &renameThingRequest{}))

	assert.Equal(t, DefaultMessage, httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/things", `{"name":`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &createThingRequest{}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid data", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "body", Error: "is malformed"}}, httpErr.Errors)
	assert.Error(t, httpErr.Internal)
}

func TestBindAndValidateWrongBodyShapeHidesDecoderText(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/things", `[]`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &createThingRequest{}))

	assert.Equal(t, "Invalid data", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "body", Error: "is malformed"}}, httpErr.Errors)
	assert.Contains(t, httpErr.Internal.Error(), "createThingRequest")
}

func TestBindAndValidatePathParam(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/things/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	req := &thingByIDRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, int64(42), req.ID)
}

func TestBindAndValidateNonNumericPathParam(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/things/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	httpErr := requireHTTPError(t, BindAndValidate(c, &thingByIDRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid thing id", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "id", Error: "is invalid"}}, httpErr.Errors)
	assert.Contains(t, httpErr.Internal.Error(), "abc")
}

func TestBindAndValidateNegativePathParam(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/things/-1", "")
	c.SetParamNames("id")
	c.SetParamValues("-1")

	httpErr := requireHTTPError(t, BindAndValidate(c, &thingByIDRequest{}))
	assert.Equal(t, "Invalid thing id", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "id", Error: "is invalid"}}, httpErr.Errors)
}

func TestBindAndValidatePathErrorWinsOverBody(t *testing.T) {
	c, _ := newContext(http.MethodPatch, "/things/-1", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("-1")

	httpErr := requireHTTPError(t, BindAndValidate(c, &renameThingByIDRequest{}))
	assert.Equal(t, DefaultPathMessage, httpErr.Message)
}

func TestBindAndValidateBodyErrorWithValidPath(t *testing.T) {
	c, _ := newContext(http.MethodPatch, "/things/3", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	req := &renameThingByIDRequest{}
	httpErr := requireHTTPError(t, BindAndValidate(c, req))
	assert.Equal(t, DefaultMessage, httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)
	assert.Equal(t, int64(3), req.ID)
}

func TestBindAndValidateUnsupportedMediaType(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader("name=lamp"))
	req.Header.Set(echo.HeaderContentType, "application/x-custom")
	c := e.NewContext(req, httptest.NewRecorder())

	httpErr := requireHTTPError(t, BindAndValidate(c, &createThingRequest{}))
	assert.Equal(t, http.StatusUnsupportedMediaType, httpErr.Status)
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", httpErr.Code)
	assert.Equal(t, "Unsupported Media Type", httpErr.Message)
}
