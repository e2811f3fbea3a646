package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is the only failure kind the store reports. The specific
// errors below wrap it so callers can match either level.
var ErrNotFound = errors.New("not found")

var (
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
)

func customerNotFound(id string) error {
	return fmt.Errorf("%w: id=%s", ErrCustomerNotFound, id)
}

func productNotFound(id string) error {
	return fmt.Errorf("%w: id=%s", ErrProductNotFound, id)
}
