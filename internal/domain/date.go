package domain

import (
	"sort"
	"strconv"
	"strings"
)

// daysInMonth has no leap-year entry: February is always 28.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DateToken is a month/day pair within one implicit calendar year.
type DateToken struct {
	Month int
	Day   int
}

func DaysInMonth(month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return daysInMonth[month]
}

func IsValidDate(month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth[month]
}

// NewDateToken returns false when the pair falls outside the fixed day table.
func NewDateToken(month, day int) (DateToken, bool) {
	if !IsValidDate(month, day) {
		return DateToken{}, false
	}
	return DateToken{Month: month, Day: day}, true
}

// ParseDateToken parses the canonical "M/D" form. Zero padding is accepted.
func ParseDateToken(raw string) (DateToken, bool) {
	monthPart, dayPart, ok := strings.Cut(strings.TrimSpace(raw), "/")
	if !ok {
		return DateToken{}, false
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil {
		return DateToken{}, false
	}
	day, err := strconv.Atoi(dayPart)
	if err != nil {
		return DateToken{}, false
	}
	return NewDateToken(month, day)
}

func (d DateToken) String() string {
	return strconv.Itoa(d.Month) + "/" + strconv.Itoa(d.Day)
}

func (d DateToken) Compare(other DateToken) int {
	switch {
	case d.Month < other.Month:
		return -1
	case d.Month > other.Month:
		return 1
	case d.Day < other.Day:
		return -1
	case d.Day > other.Day:
		return 1
	default:
		return 0
	}
}

func (d DateToken) Before(other DateToken) bool {
	return d.Compare(other) < 0
}

// Latest returns the chronologically latest token of dates.
func Latest(dates []DateToken) (DateToken, bool) {
	if len(dates) == 0 {
		return DateToken{}, false
	}
	best := dates[0]
	for _, d := range dates[1:] {
		if best.Before(d) {
			best = d
		}
	}
	return best, true
}

// DateSet deduplicates confirmations of the same date.
type DateSet map[DateToken]struct{}

func NewDateSet(dates ...DateToken) DateSet {
	set := make(DateSet, len(dates))
	set.Add(dates...)
	return set
}

func (s DateSet) Add(dates ...DateToken) {
	for _, d := range dates {
		s[d] = struct{}{}
	}
}

func (s DateSet) Has(d DateToken) bool {
	_, ok := s[d]
	return ok
}

func (s DateSet) Len() int {
	return len(s)
}

// Sorted returns the set in ascending (month, day) order.
func (s DateSet) Sorted() []DateToken {
	out := make([]DateToken, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (s DateSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, d := range sorted {
		out[i] = d.String()
	}
	return out
}

func (s DateSet) Clone() DateSet {
	out := make(DateSet, len(s))
	for d := range s {
		out[d] = struct{}{}
	}
	return out
}

// SortDates orders "M/D" strings by (month, day); strings that do not parse
// as M/D sort last, keeping their relative order.
func SortDates(dates []string) []string {
	out := append([]string(nil), dates...)
	key := func(raw string) (int, int) {
		monthPart, dayPart, ok := strings.Cut(raw, "/")
		if !ok {
			return 99, 99
		}
		month, err := strconv.Atoi(monthPart)
		if err != nil {
			return 99, 99
		}
		day, err := strconv.Atoi(dayPart)
		if err != nil {
			return 99, 99
		}
		return month, day
	}
	sort.SliceStable(out, func(i, j int) bool {
		mi, di := key(out[i])
		mj, dj := key(out[j])
		if mi != mj {
			return mi < mj
		}
		return di < dj
	})
	return out
}
