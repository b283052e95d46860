package api

import (
	"net/http"
	"testing"

	shared "xiaoyuan-cli/shared"

	"github.com/stretchr/testify/assert"
)

func response(status int, contentType string) *http.Response {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	return &http.Response{StatusCode: status, Header: header}
}

func TestHandleApiErrorJsonMessage(t *testing.T) {
	apiErr := HandleApiError(
		response(400, "application/json; charset=utf-8"),
		[]byte(`{"message":"username already taken"}`),
	)

	assert.Equal(t, shared.ApiErrorTypeOther, apiErr.Type)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "username already taken", apiErr.Msg)
}

func TestHandleApiErrorUnauthorized(t *testing.T) {
	apiErr := HandleApiError(
		response(401, "application/json"),
		[]byte(`{"message":"token expired"}`),
	)

	assert.Equal(t, shared.ApiErrorTypeInvalidToken, apiErr.Type)
	assert.True(t, apiErr.IsAuthError())
}

func TestHandleApiErrorPlainTextBody(t *testing.T) {
	apiErr := HandleApiError(
		response(502, "text/html"),
		[]byte("  Bad Gateway\n"),
	)

	assert.Equal(t, shared.ApiErrorTypeOther, apiErr.Type)
	assert.Equal(t, 502, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Msg)
}

func TestHandleApiErrorExplicitType(t *testing.T) {
	apiErr := HandleApiError(
		response(400, "application/json"),
		[]byte(`{"type":"validation","msg":"bad category"}`),
	)

	assert.Equal(t, shared.ApiErrorTypeValidation, apiErr.Type)
	assert.Equal(t, "bad category", apiErr.Msg)
}

func TestHandleApiErrorNotFound(t *testing.T) {
	apiErr := HandleApiError(
		response(404, "application/json"),
		[]byte(`{"message":"no such post"}`),
	)

	assert.Equal(t, shared.ApiErrorTypeNotFound, apiErr.Type)
}
