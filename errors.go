package blueberry

import "errors"

var (
	// ErrIndexOutOfRange is returned when an atlas buffer index is past the end.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDecode is returned when a source could not be decoded as an image.
	ErrDecode = errors.New("could not be decoded as an image")

	// ErrInvalidSize is returned for non-positive dimensions, scale factors,
	// rectangles outside their source, or short pixel slices.
	ErrInvalidSize = errors.New("invalid size")

	// ErrComponentNotFound is returned by RequireComponent.
	ErrComponentNotFound = errors.New("component not found")

	// ErrObjectNotFound is returned when a named GameObject is not registered.
	ErrObjectNotFound = errors.New("game object not found")

	// ErrDuplicateObject is returned when a GameObject name is already taken.
	ErrDuplicateObject = errors.New("game object already exists")
)
