package shared

type ApiErrorType string

const (
	// the server rejected the token (401/expired) -- recoverable by
	// clearing the session or refreshing the token
	ApiErrorTypeInvalidToken ApiErrorType = "invalid_token"

	// the request never reached the server (dial/timeout/transport)
	ApiErrorTypeNetwork ApiErrorType = "network"

	// rejected client-side before any request was issued
	ApiErrorTypeValidation ApiErrorType = "validation"

	ApiErrorTypeNotFound ApiErrorType = "not_found"

	// any other 4xx/5xx with a server-provided message
	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}

func (e *ApiError) Error() string {
	return e.Msg
}

func (e *ApiError) IsAuthError() bool {
	return e.Type == ApiErrorTypeInvalidToken || e.Status == 401
}
