package board

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned for a non-positive or non-finite scale
// and for a negative layer count.
var ErrInvalidParameter = errors.New("invalid parameter")

func checkScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return fmt.Errorf("scale %v: %w", scale, ErrInvalidParameter)
	}
	return nil
}

func checkLayers(layers int) error {
	if layers < 0 {
		return fmt.Errorf("layer count %d: %w", layers, ErrInvalidParameter)
	}
	return nil
}
