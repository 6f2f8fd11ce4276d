package domain

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	dateTokenPattern   = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)
	dateTokenAtPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})`)
	dayOnlyAtPattern   = regexp.MustCompile(`^(\d{1,2})`)
)

// ExtractDates scans a message for month/day tokens in encounter order.
//
// Consecutive tokens joined by "~" or "-" expand into every day between them;
// "," adds the next token as-is. After the first explicit M/D a bare day
// number inherits the current month ("3/1,2,5"). A message that starts with
// "~" or "-" resumes from carry, the caller's last confirmed date, so that
// "~2/7" after 2/4 yields 2/5, 2/6, 2/7. Invalid tokens are dropped and
// scanning continues. Duplicates are preserved.
func ExtractDates(message string, carry *DateToken) []DateToken {
	if message == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, message)

	if carry != nil && cleaned != "" && isRangeSeparator(cleaned[0]) {
		if end, next, ok := matchDateAt(cleaned, 1); ok {
			results := ExpandRange(*carry, end)
			results, _ = continueChain(cleaned, next, end, results)
			return results
		}
	}

	var results []DateToken
	index := 0
	for index < len(cleaned) {
		loc := dateTokenPattern.FindStringSubmatchIndex(cleaned[index:])
		if loc == nil {
			break
		}
		token, ok := tokenFromSubmatch(cleaned[index:], loc)
		index += loc[1]
		if !ok {
			continue
		}
		results = append(results, token)
		results, index = continueChain(cleaned, index, token, results)
	}

	return results
}

// ExpandRange lists every day after start up to and including end. It yields
// nothing when end is not after start and stops at 12/31.
func ExpandRange(start, end DateToken) []DateToken {
	if !start.Before(end) {
		return nil
	}

	var results []DateToken
	current := start
	for current.Before(end) {
		current.Day++
		if current.Day > DaysInMonth(current.Month) {
			current.Month++
			current.Day = 1
			if current.Month > 12 {
				break
			}
		}
		results = append(results, current)
		if current == end {
			break
		}
	}

	return results
}

func continueChain(cleaned string, index int, current DateToken, results []DateToken) ([]DateToken, int) {
	for index < len(cleaned) && isChainSeparator(cleaned[index]) {
		separator := cleaned[index]
		index++

		next, end, ok := parseDateOrDay(cleaned, index, current.Month)
		if !ok {
			break
		}
		index = end

		if isRangeSeparator(separator) {
			results = append(results, ExpandRange(current, next)...)
		} else {
			results = append(results, next)
		}
		current = next
	}

	return results, index
}

func parseDateOrDay(cleaned string, index, currentMonth int) (DateToken, int, bool) {
	if token, end, matched, ok := matchDateAtRaw(cleaned, index); matched {
		return token, end, ok
	}

	loc := dayOnlyAtPattern.FindStringSubmatchIndex(cleaned[index:])
	if loc == nil {
		return DateToken{}, index, false
	}
	day, err := strconv.Atoi(cleaned[index+loc[2] : index+loc[3]])
	if err != nil {
		return DateToken{}, index, false
	}
	token, ok := NewDateToken(currentMonth, day)
	if !ok {
		return DateToken{}, index, false
	}
	return token, index + loc[1], true
}

func matchDateAt(cleaned string, index int) (DateToken, int, bool) {
	token, end, matched, ok := matchDateAtRaw(cleaned, index)
	return token, end, matched && ok
}

// matchDateAtRaw reports whether an M/D token starts exactly at index and,
// separately, whether it is a valid date.
func matchDateAtRaw(cleaned string, index int) (DateToken, int, bool, bool) {
	if index >= len(cleaned) {
		return DateToken{}, index, false, false
	}
	rest := cleaned[index:]
	loc := dateTokenAtPattern.FindStringSubmatchIndex(rest)
	if loc == nil {
		return DateToken{}, index, false, false
	}
	token, ok := tokenFromSubmatch(rest, loc)
	return token, index + loc[1], true, ok
}

func tokenFromSubmatch(s string, loc []int) (DateToken, bool) {
	month, err := strconv.Atoi(s[loc[2]:loc[3]])
	if err != nil {
		return DateToken{}, false
	}
	day, err := strconv.Atoi(s[loc[4]:loc[5]])
	if err != nil {
		return DateToken{}, false
	}
	return NewDateToken(month, day)
}

func isRangeSeparator(b byte) bool {
	return b == '~' || b == '-'
}

func isChainSeparator(b byte) bool {
	return b == ',' || isRangeSeparator(b)
}
