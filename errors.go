package stumpless

import "github.com/anindyasen/stumpless/errs"

// lastOpenError converts the calling goroutine's last-error slot into
// an error value for facade functions that otherwise only have a nil
// pointer to report failure through.
func lastOpenError() error {
	if e := errs.Get(); e != nil {
		return e
	}
	return errs.New(errs.MemoryAllocationFailure)
}
