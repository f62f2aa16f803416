package catalog

import "errors"

var (
	ErrNotFound  = errors.New("listing not found")
	ErrForbidden = errors.New("not the owner of this listing")
)
