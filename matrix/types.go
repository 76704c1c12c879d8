// SPDX-License-Identifier: MIT

// Package matrix: element-type constraint.
package matrix

import "golang.org/x/exp/constraints"

// Numeric is the set of element types a Matrix can hold.
// Every member supports +, -, * and has a zero value that acts as the
// additive identity, which Mul relies on as its accumulator seed.
type Numeric interface {
	constraints.Integer | constraints.Float | constraints.Complex
}
