package geometry

import "errors"

var (
	ErrInvalidRadius = errors.New("geometry: sphere radius must be positive")
	ErrNilMaterial   = errors.New("geometry: sphere has no material")
	ErrInvalidCamera = errors.New("geometry: invalid camera parameters")
)
