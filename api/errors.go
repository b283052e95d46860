package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"xiaoyuan-cli/auth"
	shared "xiaoyuan-cli/shared"
)

// HandleApiError normalizes a non-2xx response into an ApiError. The server
// usually responds with a JSON body carrying a message; anything else is
// passed through as trimmed text.
func HandleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	errType := shared.ApiErrorTypeOther
	switch r.StatusCode {
	case http.StatusUnauthorized:
		errType = shared.ApiErrorTypeInvalidToken
	case http.StatusNotFound:
		errType = shared.ApiErrorTypeNotFound
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return &shared.ApiError{
			Type:   errType,
			Status: r.StatusCode,
			Msg:    strings.TrimSpace(string(errBody)),
		}
	}

	var body struct {
		Type    shared.ApiErrorType `json:"type"`
		Msg     string              `json:"msg"`
		Message string              `json:"message"`
	}
	if err := json.Unmarshal(errBody, &body); err != nil {
		log.Printf("Error unmarshalling error response: %v\n", err)
		return &shared.ApiError{
			Type:   errType,
			Status: r.StatusCode,
			Msg:    strings.TrimSpace(string(errBody)),
		}
	}

	if body.Type != "" {
		errType = body.Type
	}

	msg := body.Msg
	if msg == "" {
		msg = body.Message
	}

	return &shared.ApiError{
		Type:   errType,
		Status: r.StatusCode,
		Msg:    msg,
	}
}

func networkErr(verb string, err error) *shared.ApiError {
	return &shared.ApiError{
		Type: shared.ApiErrorTypeNetwork,
		Msg:  fmt.Sprintf("error %s request: %v", verb, err),
	}
}

// refreshTokenIfNeeded attempts a one-shot token refresh when the server
// rejected the session token. Returns true when the caller should retry the
// original request with the refreshed token.
func refreshTokenIfNeeded(apiErr *shared.ApiError) (bool, *shared.ApiError) {
	if apiErr.Type == shared.ApiErrorTypeInvalidToken {
		err := auth.RefreshInvalidToken()
		if err != nil {
			return false, apiErr
		}
		return true, nil
	}
	return false, apiErr
}
