package savgol

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindow indicates a window that cannot hold a polynomial fit.
	ErrInvalidWindow = errors.New("savgol: invalid window size")
	// ErrInvalidOrder indicates a negative polynomial order or one that does
	// not fit inside the window.
	ErrInvalidOrder = errors.New("savgol: invalid polynomial order")
	// ErrEmptyKernel is returned by Analyze for an empty coefficient set.
	ErrEmptyKernel = errors.New("savgol: empty kernel")
)

func validate(window, order int) error {
	if window < 1 || window%2 == 0 {
		return fmt.Errorf("%w: %d (must be odd and >= 1)", ErrInvalidWindow, window)
	}
	if order < 0 {
		return fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidOrder, order)
	}
	if order >= window {
		return fmt.Errorf("%w: order %d must be less than window %d", ErrInvalidOrder, order, window)
	}
	return nil
}
