// Package delaylog is the line format the delay sample prints on the serial
// console, and the host side bookkeeping that turns those lines into a
// summary of how long each kind of wait really took.
//
// A report line is
//
//	@delay <kind> <requested> <start> <end>
//
// with start and end read from the 1MHz system timer.  The run ends with
// a line that is just @done.
package delaylog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const ReportPrefix = "@delay"
const DoneLine = "@done"

const KindSysTimer = "systimer"
const KindGenericTimer = "generic"
const KindCounter = "counter"
const KindCycles = "cycles"

var ErrNotReport = errors.New("not a delay report")
var ErrMalformedReport = errors.New("malformed delay report")

type Report struct {
	Kind      string
	Requested uint64
	Start     uint64
	End       uint64
}

// Elapsed is the number of microseconds the wait took, zero if the timer
// went backwards (or never moved).
func (r Report) Elapsed() uint64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Short is true when a wait whose request is in microseconds finished early.
// Cycle waits and generic timer waits are not in microseconds.
func (r Report) Short() bool {
	switch r.Kind {
	case KindSysTimer, KindCounter:
		return r.Elapsed() < r.Requested
	}
	return false
}

func (r Report) String() string {
	return fmt.Sprintf("%s %s %d %d %d", ReportPrefix, r.Kind, r.Requested, r.Start, r.End)
}

// IsDone is true for the line that ends a run.
func IsDone(line string) bool {
	return strings.TrimSpace(line) == DoneLine
}

// ParseReport parses one line.  Lines that do not start with the report
// prefix give ErrNotReport, so callers can pass them through untouched.
func ParseReport(line string) (Report, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != ReportPrefix {
		return Report{}, ErrNotReport
	}
	if len(fields) != 5 {
		return Report{}, fmt.Errorf("%w: expected 5 fields but got %d in %q", ErrMalformedReport, len(fields), line)
	}
	var nums [3]uint64
	for i, f := range fields[2:] {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Report{}, fmt.Errorf("%w: field %d of %q: %v", ErrMalformedReport, i+2, line, err)
		}
		nums[i] = v
	}
	return Report{Kind: fields[1], Requested: nums[0], Start: nums[1], End: nums[2]}, nil
}
