package kakao

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/honeybible-cli/internal/domain"
)

// Mobile exports come in a Korean and an English locale:
//
//	2026. 2. 2. 오전 7:33, 홍길동 : 2/2🐷
//	Feb 2, 2026 at 7:33, 홍길동 : 2/2🐷
var (
	userLinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}\.\s*\d{1,2}\.\s*\d{1,2}\.\s*[오전후]+\s*\d{1,2}:\d{2},\s*(.+?)\s*:\s*(.*)`),
		regexp.MustCompile(`^[A-Z][a-z]{2}\s+\d{1,2},\s*\d{4}\s+at\s+\d{1,2}:\d{2},\s*(.+?)\s*:\s*(.*)`),
	}
	systemLinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}\.\s*\d{1,2}\.\s*\d{1,2}\.\s*[오전후]+\s*\d{1,2}:\d{2}:\s`),
		regexp.MustCompile(`^[A-Z][a-z]{2}\s+\d{1,2},\s*\d{4}\s+at\s+\d{1,2}:\d{2}:\s`),
	}
	dateHeaderPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}년\s*\d{1,2}월\s*\d{1,2}일\s*\S+요일$`),
		regexp.MustCompile(`^[A-Z][a-z]+day,\s+[A-Z][a-z]+\s+\d{1,2},\s*\d{4}$`),
	}
	fileHeaderPattern = regexp.MustCompile(`^(Talk_|저장한 날짜|Date Saved)`)

	roomHeaderPattern  = regexp.MustCompile(`^(.+?)\s*님과 카카오톡 대화$`)
	savedAtKorean      = regexp.MustCompile(`^저장한 날짜\s*:\s*(\d{4})\.\s*(\d{1,2})\.\s*(\d{1,2})\.\s*(오전|오후)\s*(\d{1,2}):(\d{2})`)
	savedAtEnglish     = regexp.MustCompile(`^Date Saved\s*:\s*([A-Z][a-z]{2})\s+(\d{1,2}),\s*(\d{4})\s+at\s+(\d{1,2}):(\d{2})`)
	englishMonthLayout = "Jan"
)

// ParseTXT reads a mobile text export. Lines without a timestamp continue
// the previous message; system notices and headers are dropped.
func ParseTXT(text string) []domain.ChatRow {
	var (
		rows    []domain.ChatRow
		current *domain.ChatRow
	)
	flush := func() {
		if current != nil {
			rows = append(rows, *current)
			current = nil
		}
	}

	for _, line := range splitLines(text) {
		stripped := strings.TrimSpace(line)
		if stripped == "" || fileHeaderPattern.MatchString(stripped) || matchAny(dateHeaderPatterns, stripped) {
			continue
		}

		if sender, message, ok := matchUserLine(stripped); ok {
			flush()
			current = &domain.ChatRow{Sender: sender, Message: message}
			continue
		}

		if matchAny(systemLinePatterns, stripped) {
			flush()
			continue
		}

		if current != nil {
			current.Message += "\n" + stripped
		}
	}
	flush()

	return rows
}

// ChatMeta is the room name and export time found in a TXT header.
type ChatMeta struct {
	RoomName string
	// SavedAt uses the "YYYY/MM/DD-HH:MM" form.
	SavedAt string
}

// ParseChatMeta scans the header lines that precede the first message.
func ParseChatMeta(text string) ChatMeta {
	var meta ChatMeta
	for _, line := range splitLines(text) {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if _, _, ok := matchUserLine(stripped); ok || matchAny(systemLinePatterns, stripped) {
			break
		}

		if meta.RoomName == "" {
			if m := roomHeaderPattern.FindStringSubmatch(stripped); m != nil {
				meta.RoomName = m[1]
				continue
			}
		}
		if meta.SavedAt == "" {
			if savedAt, ok := parseSavedAt(stripped); ok {
				meta.SavedAt = savedAt
			}
		}
	}
	return meta
}

func parseSavedAt(line string) (string, bool) {
	if m := savedAtKorean.FindStringSubmatch(line); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[5])
		minute, _ := strconv.Atoi(m[6])
		switch {
		case m[4] == "오후" && hour != 12:
			hour += 12
		case m[4] == "오전" && hour == 12:
			hour = 0
		}
		return formatSavedAt(year, month, day, hour, minute), true
	}

	if m := savedAtEnglish.FindStringSubmatch(line); m != nil {
		month, err := time.Parse(englishMonthLayout, m[1])
		if err != nil {
			return "", false
		}
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		return formatSavedAt(year, int(month.Month()), day, hour, minute), true
	}

	return "", false
}

func formatSavedAt(year, month, day, hour, minute int) string {
	return fmt.Sprintf("%04d/%02d/%02d-%02d:%02d", year, month, day, hour, minute)
}

func matchUserLine(line string) (string, string, bool) {
	for _, pattern := range userLinePatterns {
		if m := pattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
		}
	}
	return "", "", false
}

func matchAny(patterns []*regexp.Regexp, line string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
