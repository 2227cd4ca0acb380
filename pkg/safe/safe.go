// Package safe provides checked integer conversions for storage columns.
package safe

import (
	"fmt"
	"math"
)

// Int64 converts an unsigned value to int64, failing when it does not fit a signed BIGINT column.
func Int64[T ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", uint64(v))
	}
	return int64(v), nil
}

// Uint32 converts a signed column value back to uint32 with range validation.
func Uint32[T ~int | ~int32 | ~int64](v T) (uint32, error) {
	if v < 0 || int64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", int64(v))
	}
	return uint32(v), nil
}
