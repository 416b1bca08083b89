package shared

// ChatRequest is the validated body of POST /chat.
type ChatRequest struct {
	Message   string `json:"message"`
	Model     string `json:"model,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse always echoes the request id established at entry.
type ChatResponse struct {
	Response  string `json:"response"`
	RequestID string `json:"request_id"`
}

// ErrorBody is the fixed failure shape. The detail message varies by error
// category, the shape does not. The request id is omitted for requests that
// never received one (unmatched routes).
type ErrorBody struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}
