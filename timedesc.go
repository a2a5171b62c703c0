// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package sdptime implements the SDP time description, the "t=" and "r="
// lines of https://tools.ietf.org/html/rfc4566#section-5.9
package sdptime

import (
	"strconv"
	"strings"
)

// TimeDescription describes when a session is active and how it repeats,
// pairing one "t=" line with zero or more "r=" lines.
type TimeDescription struct {
	// t=<start-time> <stop-time>
	// https://tools.ietf.org/html/rfc4566#section-5.9
	Timing Timing

	// r=<repeat interval> <active duration> <offsets from start-time>
	// https://tools.ietf.org/html/rfc4566#section-5.10
	RepeatTimes []RepeatTimes
}

// Timing specifies the start and stop times for a session, expressed as NTP
// time values in seconds.
type Timing struct {
	StartTime uint64
	StopTime  uint64
}

func (t *Timing) String() string {
	output := strconv.FormatUint(t.StartTime, 10)
	output += " " + strconv.FormatUint(t.StopTime, 10)

	return output
}

// RepeatTimes specifies repeat times for a session. All values are in
// seconds: how often the session repeats, how long each repetition is
// active, and the start offsets of the repetitions relative to the session
// start time.
type RepeatTimes struct {
	RepeatInterval int64
	ActiveDuration int64
	Offsets        []int64
}

// String emits the explicit form of the field, every value in seconds.
func (r *RepeatTimes) String() string {
	var fields []string
	fields = append(fields, strconv.FormatInt(r.RepeatInterval, 10))
	fields = append(fields, strconv.FormatInt(r.ActiveDuration, 10))
	for _, value := range r.Offsets {
		fields = append(fields, strconv.FormatInt(value, 10))
	}

	return strings.Join(fields, " ")
}
