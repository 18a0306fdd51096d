package container

import "errors"

var (
	// ErrBindingNotFound is returned when no binding matches the requested
	// key.
	ErrBindingNotFound = errors.New("binding not found")

	// ErrDuplicateBinding is returned when a binding is registered under a
	// key that is already taken.
	ErrDuplicateBinding = errors.New("duplicate binding")

	// ErrAlreadyBuilt is returned when a builder is used after Build.
	ErrAlreadyBuilt = errors.New("builder already built")

	// ErrWrongType is returned by the generic helpers when a resolved
	// instance does not have the requested type.
	ErrWrongType = errors.New("resolved instance has wrong type")
)
