package storage

import "fmt"

// PersistenceError reports that a backend was unreachable or rejected an
// operation. Write failures are surfaced to the caller so it can warn that
// the record was not saved; how read failures are handled is a policy of the
// service layer, not of the stores.
type PersistenceError struct {
	Backend Backend
	Op      string
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Backend, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
