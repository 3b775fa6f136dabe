package scene

import "errors"

var (
	ErrUnknownScene          = errors.New("scene: unknown scene")
	ErrUnknownMaterial       = errors.New("scene: unknown material")
	ErrUnknownColor          = errors.New("scene: unknown color name")
	ErrInvalidSceneFile      = errors.New("scene: invalid scene file")
	ErrInvalidSamplingConfig = errors.New("scene: invalid sampling config")
)
