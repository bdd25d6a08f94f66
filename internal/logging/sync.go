package logging

import (
	"errors"
	"syscall"
)

type syncer interface {
	Sync() error
}

// Sync flushes l if its backend buffers entries. Terminals and pipes
// reject fsync with EINVAL or ENOTTY; those errors are dropped.
func Sync(l Logger) error {
	s, ok := l.(syncer)
	if !ok {
		return nil
	}
	err := s.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
