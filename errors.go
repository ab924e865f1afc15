package imgpoison

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidImageInput is returned when an image argument is neither a path
	// nor a decoded image.
	ErrInvalidImageInput = errors.New("invalid image input")
	// ErrInvalidMode is returned when the compositing mode is neither patch nor blend.
	ErrInvalidMode = errors.New("invalid mode")
)

var errNilReference = fmt.Errorf("%w: nil reference image", ErrInvalidImageInput)
