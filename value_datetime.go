// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"fmt"
	"strconv"
	"strings"
)

// CivilDate is the DATE payload: a calendar day with no time-of-day
// component. Year is always the fully expanded four-digit form; the
// two-digit-year mapping is
// resolved once, at construction time, and is not re-derived later.
type CivilDate struct {
	Year  int
	Month int
	Day   int
}

// ClockKind distinguishes the three textual shapes the TIME family uses.
type ClockKind int

const (
	// clockDuration holds a plain signed magnitude, for the high-resolution
	// duration variants (STIME/FTIME/LTIME/ITIME/NTIME) that the CIP wire
	// format represents as a scaled integer count rather than hh:mm:ss text.
	clockDuration ClockKind = iota
	// clockOfDay holds an hour:minute:second wall time (TIME/TIME_OF_DAY).
	clockOfDay
	// clockDateTime holds a CivilDate plus an hour:minute:second wall time
	// (DATE_AND_TIME).
	clockDateTime
)

// ClockValue is the shared payload for every TIME-family variant. Only the
// fields relevant to its Kind are meaningful.
type ClockValue struct {
	Kind ClockKind

	Magnitude int64 // clockDuration: raw integer count, unit implied by Variant

	Hour   int // clockOfDay, clockDateTime
	Minute int
	Second int

	Date CivilDate // clockDateTime only
}

func parseDate(text string) (CivilDate, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return CivilDate{}, fmt.Errorf("want mm-dd-yyyy, got %q", text)
	}
	mm, dd, yy := parts[0], parts[1], parts[2]
	if len(mm) < 1 || len(mm) > 2 || len(dd) < 1 || len(dd) > 2 || len(yy) < 1 || len(yy) > 4 {
		return CivilDate{}, fmt.Errorf("malformed field widths in %q", text)
	}
	month, err := strconv.Atoi(mm)
	if err != nil || month < 1 || month > 12 {
		return CivilDate{}, fmt.Errorf("bad month in %q", text)
	}
	day, err := strconv.Atoi(dd)
	if err != nil || day < 1 || day > 31 {
		return CivilDate{}, fmt.Errorf("bad day in %q", text)
	}
	year, err := strconv.Atoi(yy)
	if err != nil {
		return CivilDate{}, fmt.Errorf("bad year in %q", text)
	}
	// A two (or one, or three) digit year below 100 is expanded using the
	// CIP DATE epoch split; a four-digit year passes through unchanged.
	if year < 100 {
		if year >= 72 {
			year += 1900
		} else {
			year += 2000
		}
	}
	if !validCalendarDay(year, month, day) {
		return CivilDate{}, fmt.Errorf("%q is not a valid calendar day", text)
	}
	return CivilDate{Year: year, Month: month, Day: day}, nil
}

var daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func validCalendarDay(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	max := daysInMonth[month-1]
	if month == 2 && isLeapYear(year) {
		max = 29
	}
	return day >= 1 && day <= max
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (d CivilDate) format() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Month, d.Day, d.Year)
}

func parseClockOfDay(text string) (int, int, int, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want hh:mm:ss, got %q", text)
	}
	hh, mm, ss := parts[0], parts[1], parts[2]
	if len(hh) < 1 || len(hh) > 2 || len(mm) < 1 || len(mm) > 2 || len(ss) < 1 || len(ss) > 2 {
		return 0, 0, 0, fmt.Errorf("malformed field widths in %q", text)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 24 {
		return 0, 0, 0, fmt.Errorf("bad hour in %q", text)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 60 {
		return 0, 0, 0, fmt.Errorf("bad minute in %q", text)
	}
	second, err := strconv.Atoi(ss)
	if err != nil || second < 0 || second > 60 {
		return 0, 0, 0, fmt.Errorf("bad second in %q", text)
	}
	return hour, minute, second, nil
}

func (c ClockValue) formatOfDay() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// NewDate constructs a DATE value from mm-dd-yyyy text.
func NewDate(text string) (Value, error) {
	d, err := parseDate(text)
	if err != nil {
		return Value{}, &InvalidValue{Variant: VDate, Text: text, Reason: err.Error()}
	}
	return Value{variant: VDate, date: d, str: text}, nil
}

// NewTime constructs a TIME value from hh:mm:ss wall-clock text.
func NewTime(text string) (Value, error) {
	h, m, s, err := parseClockOfDay(text)
	if err != nil {
		return Value{}, &InvalidValue{Variant: VTime, Text: text, Reason: err.Error()}
	}
	return Value{variant: VTime, clk: ClockValue{Kind: clockOfDay, Hour: h, Minute: m, Second: s}}, nil
}

// NewTimeOfDay constructs a TIME_OF_DAY value from hh:mm:ss wall-clock text.
func NewTimeOfDay(text string) (Value, error) {
	h, m, s, err := parseClockOfDay(text)
	if err != nil {
		return Value{}, &InvalidValue{Variant: VTimeOfDay, Text: text, Reason: err.Error()}
	}
	return Value{variant: VTimeOfDay, clk: ClockValue{Kind: clockOfDay, Hour: h, Minute: m, Second: s}}, nil
}

// NewDateAndTime constructs a DATE_AND_TIME value from "mm-dd-yyyy hh:mm:ss"
// text (the two halves separated by whitespace). The lexer ends a DATE
// token at whitespace, so only a quoted STRING literal reaches this
// constructor with both halves in one field.
func NewDateAndTime(text string) (Value, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Value{}, &InvalidValue{Variant: VDateAndTime, Text: text, Reason: "want \"mm-dd-yyyy hh:mm:ss\""}
	}
	d, err := parseDate(fields[0])
	if err != nil {
		return Value{}, &InvalidValue{Variant: VDateAndTime, Text: text, Reason: err.Error()}
	}
	h, m, s, err := parseClockOfDay(fields[1])
	if err != nil {
		return Value{}, &InvalidValue{Variant: VDateAndTime, Text: text, Reason: err.Error()}
	}
	return Value{variant: VDateAndTime, clk: ClockValue{Kind: clockDateTime, Date: d, Hour: h, Minute: m, Second: s}}, nil
}

// newDurationClock builds the shared representation for the high-resolution
// duration variants (STIME/FTIME/LTIME/ITIME/NTIME), each a signed integer
// count of the variant's implied time unit on the CIP wire, written in EDS
// text as a plain decimal.
func newDurationClock(variant Variant, text string) (Value, error) {
	lit, ok := parseNumericLiteral(text)
	if !ok {
		return Value{}, &InvalidValue{Variant: variant, Text: text, Reason: "want a signed decimal duration count"}
	}
	magnitude, ok := lit.asInt64()
	if !ok {
		return Value{}, &InvalidValue{Variant: variant, Text: text, Reason: "duration count out of int64 range"}
	}
	return Value{variant: variant, clk: ClockValue{Kind: clockDuration, Magnitude: magnitude}}, nil
}

// NewSTime constructs an STIME value (short/simple duration, scaled in
// milliseconds on the CIP wire).
func NewSTime(text string) (Value, error) { return newDurationClock(VStime, text) }

// NewFTime constructs an FTIME value (scaled in microseconds).
func NewFTime(text string) (Value, error) { return newDurationClock(VFtime, text) }

// NewLTime constructs an LTIME value (scaled in nanoseconds, 64-bit range).
func NewLTime(text string) (Value, error) { return newDurationClock(VLtime, text) }

// NewITime constructs an ITIME value (scaled in milliseconds, 16-bit range
// on the wire; the EDS text form still admits the full decimal grammar).
func NewITime(text string) (Value, error) { return newDurationClock(VItime, text) }

// NewNTime constructs an NTime value (scaled in nanoseconds, 16-bit range
// on the wire).
func NewNTime(text string) (Value, error) { return newDurationClock(VNtime, text) }

func (c ClockValue) formatDuration() string {
	return strconv.FormatInt(c.Magnitude, 10)
}
