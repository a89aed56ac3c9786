package seqkit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrEmpty is raised when an element is requested from an empty sequence.
	ErrEmpty errorkit.Error = "seqkit: empty sequence"
	// ErrIndexOutOfRange is raised when an index is negative or beyond the length of the sequence.
	ErrIndexOutOfRange errorkit.Error = "seqkit: index out of range"
	// ErrUnsupported is raised for operations that have no meaning on the given sequence,
	// such as looking for the last index of an infinite sequence.
	ErrUnsupported errorkit.Error = "seqkit: unsupported operation"
	// ErrCapacityExceeded is raised when an infinite or oversized sequence would have to be materialised.
	ErrCapacityExceeded errorkit.Error = "seqkit: capacity exceeded"
	// ErrInvalidArgument is raised when a constructor gets arguments that describe no sequence,
	// such as a cyclic offset outside of the backing sequence.
	ErrInvalidArgument errorkit.Error = "seqkit: invalid argument"
	// ErrDone is the error a generator returns to signal that it has no more elements.
	// Any other generator error terminates the sequence as a fault, see Err.
	ErrDone errorkit.Error = "seqkit: done"
)
