package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// ErrorResponse defines the structure for error responses.
// Detail mirrors Error.Message for clients that only read a flat message.
type ErrorResponse struct {
	Error  *ErrorInfo `json:"error"`
	Detail string     `json:"detail"`
	Meta   *MetaInfo  `json:"meta"`
}
