package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for enrichment run identifiers.
	FieldRunID = "run_id"
	// FieldStrategy is the standardized structured logging key for match strategy names.
	FieldStrategy = "strategy"
	// FieldMatchType is the standardized structured logging key for match result types.
	FieldMatchType = "match_type"
	// FieldRecordIndex is the standardized structured logging key for 1-based record positions.
	FieldRecordIndex = "record_index"
	// FieldEventType categorizes warnings and errors for filtering in structured logs.
	FieldEventType = "event_type"
	// FieldErrorHint carries the suggested next step when an operation degrades.
	FieldErrorHint = "error_hint"
)
