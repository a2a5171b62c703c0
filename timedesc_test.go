// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sdptime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimingString(t *testing.T) {
	timing := Timing{StartTime: 3034423619, StopTime: 3042462419}
	assert.Equal(t, "3034423619 3042462419", timing.String())
}

func TestRepeatTimesString(t *testing.T) {
	repeat := RepeatTimes{RepeatInterval: 604800, ActiveDuration: 3600, Offsets: []int64{0, 90000}}
	assert.Equal(t, "604800 3600 0 90000", repeat.String())
}

func TestRepeatTimesStringAfterUnmarshal(t *testing.T) {
	// Compact input marshals back in the explicit all-seconds form.
	var repeat RepeatTimes
	assert.NoError(t, repeat.Unmarshal("7d 1h 0 25h"))
	assert.Equal(t, "604800 3600 0 90000", repeat.String())
}

func TestTimeDescription(t *testing.T) {
	var repeat RepeatTimes
	assert.NoError(t, repeat.Unmarshal("604800 3600 0 90000"))

	desc := TimeDescription{
		Timing:      Timing{StartTime: 2873397496, StopTime: 2873404696},
		RepeatTimes: []RepeatTimes{repeat},
	}
	assert.Equal(t, "2873397496 2873404696", desc.Timing.String())
	assert.Equal(t, "604800 3600 0 90000", desc.RepeatTimes[0].String())
}
