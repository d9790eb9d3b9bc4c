package common

const (
	// AuthorizationHeaderName carries "Bearer <token>" on protected requests.
	AuthorizationHeaderName = "Authorization"

	// TokenType is returned next to every issued access token.
	TokenType = "bearer"

	// RequestIDHeaderName is echoed on every HTTP response.
	RequestIDHeaderName = "X-Request-ID"
)
