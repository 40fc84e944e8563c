package db

import "fmt"

// ErrNotFound indicates the referenced portfolio does not exist.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("portfolio %s not found", e.ID)
}

// ErrSlugTaken indicates another published portfolio already owns the slug.
type ErrSlugTaken struct {
	Slug string
}

func (e *ErrSlugTaken) Error() string {
	return fmt.Sprintf("slug %q is already in use", e.Slug)
}
