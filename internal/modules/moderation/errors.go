package moderation

import "fmt"

// PolicyViolationError is raised by a ModelInvoker when the platform refuses
// to process the input. The client recovers it into a "harmful" result
// instead of propagating it.
type PolicyViolationError struct {
	Detail string
}

func (e *PolicyViolationError) Error() string {
	return "comment blocked by moderation guard: " + e.Detail
}

// ProtocolError indicates the classification service answered without any
// usable output text.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string { return e.Message }

// ParseError indicates the model output could not be parsed as a moderation
// result. Excerpt carries a bounded slice of the raw output for diagnostics.
type ParseError struct {
	Excerpt string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model did not return a valid moderation result: %v; output was: %s", e.Err, e.Excerpt)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CorruptRecordError indicates a stored record failed schema validation on
// the way back out of the blob store.
type CorruptRecordError struct {
	Key string
	Err error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt record at %s: %v", e.Key, e.Err)
}

func (e *CorruptRecordError) Unwrap() error { return e.Err }
