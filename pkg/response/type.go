package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Shared response constants.
const (
	MessageSuccess          = "success"
	DefaultErrorMessage     = "something went wrong"
	InternalServerErrorCode = 500
)
