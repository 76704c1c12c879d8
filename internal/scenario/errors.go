// SPDX-License-Identifier: MIT

package scenario

import "errors"

var (
	// ErrInvalidScenario indicates a malformed document: negative cell width,
	// a ragged matrix literal, or a step missing a required field.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrUnknownOp indicates a step whose op is not in the supported set.
	ErrUnknownOp = errors.New("scenario: unknown op")

	// ErrUnknownMatrix indicates a step or expectation naming a matrix that
	// was never defined.
	ErrUnknownMatrix = errors.New("scenario: unknown matrix")

	// ErrExpectation indicates a final matrix that differs from its expectation.
	ErrExpectation = errors.New("scenario: expectation failed")

	// ErrUnknownScenario indicates a builtin name that is not embedded.
	ErrUnknownScenario = errors.New("scenario: unknown builtin scenario")
)
