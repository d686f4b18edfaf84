package errs

import (
	"errors"
	"net"
	"syscall"
)

// IsTimeoutErr returns true if the error is a timeout error.
func IsTimeoutErr(err error) bool {
	var e interface{ Timeout() bool }
	return errors.As(err, &e) && e.Timeout()
}

// IsNetError returns true if the error is a network error.
func IsNetError(err error) bool {
	var e *net.OpError
	return errors.Is(err, syscall.EINVAL) || errors.As(err, &e)
}
