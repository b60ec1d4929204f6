package ast

import (
	"strconv"
	"strings"
)

// Unit is the suffix of a unit literal such as 10kb or 5m.
type Unit int

const (
	UnitB Unit = iota
	UnitKB
	UnitMB
	UnitGB
	UnitTB
	UnitPB
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
)

// Ordered longest suffix first so "ms" wins over "s" and "mb" over "b".
var unitSuffixes = []struct {
	suffix string
	unit   Unit
}{
	{"kb", UnitKB},
	{"mb", UnitMB},
	{"gb", UnitGB},
	{"tb", UnitTB},
	{"pb", UnitPB},
	{"ms", UnitMillisecond},
	{"b", UnitB},
	{"s", UnitSecond},
	{"m", UnitMinute},
	{"h", UnitHour},
	{"d", UnitDay},
}

func (u Unit) String() string {
	for _, e := range unitSuffixes {
		if e.unit == u {
			return e.suffix
		}
	}
	return "?"
}

// IsSize returns true if the unit measures bytes rather than time.
func (u Unit) IsSize() bool {
	return u <= UnitPB
}

// SplitUnit splits a word like "10kb" into its magnitude and unit.
func SplitUnit(word string) (int64, Unit, bool) {
	lower := strings.ToLower(word)
	for _, e := range unitSuffixes {
		if !strings.HasSuffix(lower, e.suffix) {
			continue
		}

		digits := lower[:len(lower)-len(e.suffix)]
		if digits == "" {
			return 0, 0, false
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return 0, 0, false
		}
		return n, e.unit, true
	}

	return 0, 0, false
}
