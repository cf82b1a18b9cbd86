package logging

// Standardized structured logging keys shared across components.
const (
	// FieldComponent names the subsystem emitting the record; the console
	// handler promotes it into the line prefix.
	FieldComponent = "component"
	// FieldEventType is a machine-readable tag for grepping related events.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the operator's next step after a failure.
	FieldErrorHint = "error_hint"
	// FieldImpact states the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldSessionID correlates every record of one fetch invocation.
	FieldSessionID = "session_id"
)
