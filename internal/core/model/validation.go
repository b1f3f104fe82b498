package model

// ValidationState is a node's self-reported health. There is no enforced
// transition graph; the convention is warning (initial) -> valid ->
// {valid, error} as inputs arrive and change.
type ValidationState string

const (
	// ValidationValid means the node has computed its outputs successfully
	ValidationValid ValidationState = "valid"
	// ValidationWarning means the node is not yet computable (missing inputs)
	ValidationWarning ValidationState = "warning"
	// ValidationError means inputs are satisfied but the computation is
	// domain-invalid (for example division by zero)
	ValidationError ValidationState = "error"
)

// Validation pairs a state with its human-readable message. It is purely
// observational: it never interrupts propagation and never unwinds the
// call stack.
type Validation struct {
	State   ValidationState `json:"state"`
	Message string          `json:"message,omitempty"`
}

// Valid returns the valid state with no message.
func Valid() Validation {
	return Validation{State: ValidationValid}
}

// Warning returns the warning state with a message.
func Warning(message string) Validation {
	return Validation{State: ValidationWarning, Message: message}
}

// Errored returns the error state with a message.
func Errored(message string) Validation {
	return Validation{State: ValidationError, Message: message}
}
