package errors

// Error classes. Every class is reported to clients as HTTP 400; the class is
// kept for logs and metrics.
const (
	// Missing post or caller context.
	ClassContext = "context"
	// Malformed request body.
	ClassValidation = "validation"
	// Request does not fit the session state machine.
	ClassState = "state"
	// Key-value store failure or unreadable stored blob.
	ClassStorage = "storage"
	// Anything unexpected, including recovered panics.
	ClassInternal = "internal"
)

// StatusError is the status field of every error body.
const StatusError = "error"
