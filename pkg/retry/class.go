package retry

import (
	"context"
	"errors"
	"time"
)

// Class is the closed set of failure classes the retry policy understands.
type Class int

const (
	Permanent Class = iota
	Transient
)

func (c Class) String() string {
	if c == Transient {
		return "transient"
	}
	return "permanent"
}

// Classified is implemented by errors that were classified at the API boundary.
type Classified interface {
	RetryClass() (Class, string)
}

// ClassOf returns the class and reason carried by err. Unclassified errors are permanent.
func ClassOf(err error) (Class, string) {
	if err == nil {
		return Permanent, ""
	}

	var classified Classified
	if errors.As(err, &classified) {
		return classified.RetryClass()
	}

	return Permanent, ""
}

// IsTransient is shorthand for ClassOf(err) == Transient.
func IsTransient(err error) bool {
	class, _ := ClassOf(err)
	return class == Transient
}

type markedError struct {
	err    error
	class  Class
	reason string
}

func (e *markedError) Error() string {
	return e.err.Error()
}

func (e *markedError) Unwrap() error {
	return e.err
}

func (e *markedError) RetryClass() (Class, string) {
	return e.class, e.reason
}

// Mark attaches a class and reason to err.
func Mark(err error, class Class, reason string) error {
	if err == nil {
		return nil
	}
	return &markedError{err: err, class: class, reason: reason}
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
