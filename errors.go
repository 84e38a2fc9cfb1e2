package intmap

import "fmt"

// ProbeOverflowError is the panic value raised when a probe chain would
// need to walk past the maximum legal distance of 126 slots. It signals a
// sizing mistake, not a recoverable runtime condition: the caller must
// construct the table with a larger capacity. There is no recoverable
// error taxonomy for this condition, only a typed panic a caller may
// recover() and inspect.
type ProbeOverflowError struct {
	Home     uintptr
	Capacity uint32
}

func (e *ProbeOverflowError) Error() string {
	return fmt.Sprintf(
		"intmap: maximum probes count reached for home slot %d (capacity %d); increase capacity",
		e.Home, e.Capacity,
	)
}

func panicProbeOverflow(home uintptr, capacity uint32) {
	panic(&ProbeOverflowError{Home: home, Capacity: capacity})
}
