package model

// Emitter delivers the two output notifications - "output N updated" and
// "output N invalidated" - to registered observers. These are the sole
// signal that a value at an output port must be re-fetched (or treated as
// absent) and re-pushed downstream. Delivery is synchronous, on the
// caller's goroutine, in registration order.
type Emitter struct {
	updated     []func(portIndex int)
	invalidated []func(portIndex int)
}

// OnUpdated registers an observer for "output N updated".
func (e *Emitter) OnUpdated(fn func(portIndex int)) {
	e.updated = append(e.updated, fn)
}

// OnInvalidated registers an observer for "output N invalidated".
func (e *Emitter) OnInvalidated(fn func(portIndex int)) {
	e.invalidated = append(e.invalidated, fn)
}

// EmitUpdated notifies observers that the value at an output port changed.
func (e *Emitter) EmitUpdated(portIndex int) {
	for _, fn := range e.updated {
		fn(portIndex)
	}
}

// EmitInvalidated notifies observers that the value at an output port is
// no longer available.
func (e *Emitter) EmitInvalidated(portIndex int) {
	for _, fn := range e.invalidated {
		fn(portIndex)
	}
}
