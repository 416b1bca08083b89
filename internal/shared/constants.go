package shared

import "time"

// Identity headers
const (
	HeaderRequestID = "X-Request-ID"
	HeaderSessionID = "X-Session-ID"
)

// Server configuration
const (
	DefaultShutdownTimeout = 10 * time.Second
)

// Error handler detail messages. Original error detail never reaches the
// caller, only the trace.
const (
	DetailServiceError = "An error occurred while calling the LLM."
	DetailInternal     = "Internal server error."
)

// Error span categories
const (
	CategoryServiceError = "LLMServiceError"
	CategoryUnhandled    = "UnhandledException"
)
