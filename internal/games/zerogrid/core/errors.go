package core

import "errors"

var (
	// ErrInvalidIndex is returned when a cell index falls outside the board.
	ErrInvalidIndex = errors.New("zerogrid: cell index out of range")

	// ErrInvalidTransition is returned when an operation is not allowed in the
	// session's current status.
	ErrInvalidTransition = errors.New("zerogrid: invalid transition")

	// ErrOutOfRange is returned when a level index falls outside the catalog.
	ErrOutOfRange = errors.New("zerogrid: level index out of range")

	// ErrInvalidTemplate is returned when template dimensions and cells disagree.
	ErrInvalidTemplate = errors.New("zerogrid: invalid level template")

	// ErrEmptyCatalog is returned when a catalog is built without templates.
	ErrEmptyCatalog = errors.New("zerogrid: catalog has no levels")
)
