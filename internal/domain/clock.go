package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Wall-clock time of day as an hour/minute pair.
// Values are trusted: hours above 23 or minutes above 59 are kept as given.
type Time struct {
	Hours   int
	Minutes int
}

// Ordering is the result of Compare.
type Ordering int

const (
	Equal Ordering = iota
	After
	BeforeOrEqual
)

func (o Ordering) String() string {
	switch o {
	case Equal:
		return "equal"
	case After:
		return "after"
	default:
		return "before-or-equal"
	}
}

func NewTime(hours, minutes int) Time {
	return Time{Hours: hours, Minutes: minutes}
}

// Return the time as minutes since midnight.
func (t Time) TotalMinutes() int { return t.Hours*60 + t.Minutes }

func (t Time) String() string { return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes) }

func (t Time) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText accepts exactly "H:M" with plain decimal fields.
func (t *Time) UnmarshalText(b []byte) error {
	hs, ms, ok := strings.Cut(string(b), ":")
	if !ok {
		return fmt.Errorf("parse time %q: want HH:MM", b)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return fmt.Errorf("parse time %q: hours: %w", b, err)
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return fmt.Errorf("parse time %q: minutes: %w", b, err)
	}
	t.Hours, t.Minutes = h, m
	return nil
}

// Return a - b in minutes. Positive means a is later.
func DiffMinutes(a, b Time) int {
	return a.TotalMinutes() - b.TotalMinutes()
}

// Compare a against b.
//
// Equal only when both fields match. Two times with the same minute value but
// different fields (e.g. 01:00 and 00:60) compare as BeforeOrEqual.
func Compare(a, b Time) Ordering {
	if a.Hours == b.Hours && a.Minutes == b.Minutes {
		return Equal
	}
	if a.TotalMinutes() > b.TotalMinutes() {
		return After
	}
	return BeforeOrEqual
}
