package sweep

import "errors"

var (
	// ErrIDCapacity is returned once the id allocator has handed out every id it may.
	ErrIDCapacity = errors.New("sweep: tracker id capacity exhausted")
	// ErrStepInProgress is returned by a Step call made while another step is running.
	ErrStepInProgress = errors.New("sweep: step already in progress")
	ErrInvalidAxes    = errors.New("sweep: invalid axis count")
)
