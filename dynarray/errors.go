// SPDX-License-Identifier: MIT

package dynarray

import "errors"

var (
	// ErrOutOfRange indicates that an index is outside [0, Len()).
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrNegativeLength is returned when a constructor or Reserve receives n < 0.
	ErrNegativeLength = errors.New("dynarray: negative length")
)
