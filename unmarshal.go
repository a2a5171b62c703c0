// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdptime

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Seconds per compact-syntax time unit.
// https://tools.ietf.org/html/rfc4566#section-5.10
const (
	secondsPerMinute int64 = 60
	secondsPerHour   int64 = 60 * secondsPerMinute
	secondsPerDay    int64 = 24 * secondsPerHour
)

// Unmarshal parses the value of an "r=" line into r.
//
// The field comes in two syntaxes: explicit, three or more plain integers
// all in seconds, and compact, where each value carries a single-letter
// time unit ("d", "h", "m" or "s"). A unit suffix on any token selects
// compact decoding for the whole line.
//
// The first malformed token aborts the parse, r is left unmodified on
// error.
func (r *RepeatTimes) Unmarshal(value string) error {
	fields := strings.Split(value, " ")
	if len(fields) < 2 {
		return errors.Wrapf(ErrMalformedRepeat, "`%v`", value)
	}

	if hasTimeUnit(fields) {
		return r.unmarshalCompact(fields)
	}

	return r.unmarshalExplicit(fields)
}

func hasTimeUnit(fields []string) bool {
	for _, field := range fields {
		switch {
		case strings.HasSuffix(field, "d"),
			strings.HasSuffix(field, "h"),
			strings.HasSuffix(field, "m"),
			strings.HasSuffix(field, "s"):
			return true
		}
	}

	return false
}

func (r *RepeatTimes) unmarshalExplicit(fields []string) error {
	if len(fields) == 2 {
		return errors.Wrapf(ErrNoOffsets, "`%v`", strings.Join(fields, " "))
	}

	interval, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || interval < 0 {
		return errors.Wrapf(ErrInvalidInterval, "`%v`", fields[0])
	}

	duration, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || duration < 0 {
		return errors.Wrapf(ErrInvalidDuration, "`%v`", fields[1])
	}

	offsets := make([]int64, 0, len(fields)-2)
	for _, field := range fields[2:] {
		offset, err := strconv.ParseInt(field, 10, 64)
		if err != nil || offset < 0 {
			return errors.Wrapf(ErrInvalidOffset, "`%v`", field)
		}
		offsets = append(offsets, offset)
	}

	r.RepeatInterval = interval
	r.ActiveDuration = duration
	r.Offsets = offsets

	return nil
}

func (r *RepeatTimes) unmarshalCompact(fields []string) error {
	// Field-count errors take precedence over per-token ones so that
	// "interval duration" with no offsets reports the same error in both
	// syntaxes.
	if len(fields) == 2 {
		return errors.Wrapf(ErrNoOffsets, "`%v`", strings.Join(fields, " "))
	}

	values := make([]int64, 0, len(fields))
	for _, field := range fields {
		value, err := parseTimeUnit(field)
		if err != nil {
			return err
		}
		values = append(values, value)
	}

	r.RepeatInterval = values[0]
	r.ActiveDuration = values[1]
	r.Offsets = values[2:]

	return nil
}

// parseTimeUnit decodes one compact token into seconds. A bare "0" needs no
// unit, every other token is a non-negative integer magnitude followed by a
// unit letter.
func parseTimeUnit(field string) (int64, error) {
	if field == "0" {
		return 0, nil
	}

	if len(field) < 2 {
		return 0, errors.Wrapf(ErrInvalidUnit, "`%v`", field)
	}

	var scale int64
	switch field[len(field)-1] {
	case 'd':
		scale = secondsPerDay
	case 'h':
		scale = secondsPerHour
	case 'm':
		scale = secondsPerMinute
	case 's':
		scale = 1
	default:
		return 0, errors.Wrapf(ErrInvalidUnit, "`%v`", field[len(field)-1:])
	}

	magnitude, err := strconv.ParseInt(field[:len(field)-1], 10, 64)
	if err != nil || magnitude < 0 {
		return 0, errors.Wrapf(ErrInvalidUnit, "`%v`", field)
	}

	// The expanded value has to stay representable in seconds.
	if magnitude > math.MaxInt64/scale {
		return 0, errors.Wrapf(ErrInvalidUnit, "`%v`", field)
	}

	return magnitude * scale, nil
}
