package menu

import (
	"errors"
	"fmt"
)

// ErrCatalogUnavailable is returned while no catalog load has succeeded yet.
var ErrCatalogUnavailable = errors.New("menu is unavailable")

// CatalogLoadError describes a failed fetch of the dish list.
// Status is the HTTP status for non-2xx answers and zero otherwise.
type CatalogLoadError struct {
	Op     string
	Status int
	Err    error
}

func (e *CatalogLoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("catalog %s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}
