// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdptime

import "github.com/pkg/errors"

// Errors returned by RepeatTimes.Unmarshal. Errors that concern a single
// token are wrapped with the offending token, match them with errors.Is.
var (
	// ErrMalformedRepeat means the field did not split into at least an
	// interval token and a duration token.
	ErrMalformedRepeat = errors.New("sdptime: malformed repeat")

	// ErrNoOffsets means an interval and a duration were present but no
	// offsets followed them.
	ErrNoOffsets = errors.New("sdptime: repeat has no offsets")

	// ErrInvalidInterval means the repeat interval token of an explicit
	// field is not a non-negative integer.
	ErrInvalidInterval = errors.New("sdptime: invalid repeat interval")

	// ErrInvalidDuration means the active duration token of an explicit
	// field is not a non-negative integer.
	ErrInvalidDuration = errors.New("sdptime: invalid active duration")

	// ErrInvalidOffset means an offset token of an explicit field is not a
	// non-negative integer.
	ErrInvalidOffset = errors.New("sdptime: invalid offset")

	// ErrInvalidUnit means a token of a compact field has an unrecognized
	// or missing time unit, or an unparseable magnitude.
	ErrInvalidUnit = errors.New("sdptime: invalid time unit")
)
