package application

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/bnema/honeybible-cli/internal/domain"
)

type ScheduleType string

const (
	ScheduleDual      ScheduleType = "dual"
	ScheduleEducation ScheduleType = "education"
	ScheduleBible     ScheduleType = "bible"
	ScheduleNT        ScheduleType = "nt"
	ScheduleUnknown   ScheduleType = "unknown"
)

const defaultReportName = "honeybible-results"

// Analysis is the outcome of analyzing one transcript.
type Analysis struct {
	RunID        string
	Source       string
	Format       domain.TranscriptFormat
	RoomName     string
	SavedAt      string
	AnalyzedAt   time.Time
	Mode         domain.TrackMode
	ScheduleType ScheduleType
	Leader       string
	Completions  domain.Completions
	Stats        Stats
	// ReportName is the base file name for the rendered report, without
	// extension.
	ReportName string
}

// Participants returns the participant names in report order.
func (a Analysis) Participants() []string {
	names := make([]string, 0, len(a.Completions))
	for name := range a.Completions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DetectTrackMode switches to dual when any message carries marker.
func DetectTrackMode(rows []domain.ChatRow, marker string) domain.TrackMode {
	if marker == "" {
		return domain.TrackModeSingle
	}
	for _, row := range rows {
		if strings.Contains(row.Message, marker) {
			return domain.TrackModeDual
		}
	}
	return domain.TrackModeSingle
}

// ExtractLeader returns the cleaned name of the first sender whose message
// contains keyword.
func ExtractLeader(rows []domain.ChatRow, keyword string) (string, bool) {
	if keyword == "" {
		return "", false
	}
	for _, row := range rows {
		if strings.Contains(row.Message, keyword) {
			return CleanLeaderName(row.Sender), true
		}
	}
	return "", false
}

// CleanLeaderName drops ASCII letters and whitespace, then the family name
// of a three syllable Hangul name.
func CleanLeaderName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', unicode.IsSpace(r):
			return -1
		default:
			return r
		}
	}, name)
	if cleaned == "" {
		return name
	}

	runes := []rune(cleaned)
	if len(runes) == 3 && allHangulSyllables(runes) {
		return string(runes[1:])
	}
	return cleaned
}

func allHangulSyllables(runes []rune) bool {
	for _, r := range runes {
		if r < '가' || r > '힣' {
			return false
		}
	}
	return true
}

// DetectScheduleType labels the run for reports.
func DetectScheduleType(transcript domain.Transcript, mode domain.TrackMode, schedule domain.Schedule, educationKeyword string) ScheduleType {
	if mode == domain.TrackModeDual {
		return ScheduleDual
	}
	if educationKeyword != "" {
		if strings.Contains(transcript.RoomName, educationKeyword) {
			return ScheduleEducation
		}
		for _, row := range transcript.Rows {
			if strings.Contains(row.Message, educationKeyword) {
				return ScheduleEducation
			}
		}
	}

	cal, ok := schedule.Detect(transcript.Rows)
	if !ok {
		return ScheduleUnknown
	}
	switch cal.Plan() {
	case domain.PlanBible:
		return ScheduleBible
	case domain.PlanNT:
		return ScheduleNT
	default:
		return ScheduleType(cal.Plan())
	}
}

var unsafeFileChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// ReportName builds "꿀성경_<leader>_<YYYYMMDD>_<HHMM>_<room>". It returns
// false when neither a leader nor an export time is known.
func ReportName(leader, savedAt, roomName string) (string, bool) {
	if leader == "" && savedAt == "" {
		return "", false
	}

	name := leader
	if name == "" {
		name = "결과"
	}

	var b strings.Builder
	b.WriteString("꿀성경_")
	b.WriteString(name)
	if savedAt != "" {
		stamp := strings.NewReplacer("/", "", "-", "_", ":", "").Replace(savedAt)
		b.WriteString("_")
		b.WriteString(stamp)
	}
	if room := strings.TrimSpace(unsafeFileChars.ReplaceAllString(roomName, "")); room != "" {
		b.WriteString("_")
		b.WriteString(room)
	}

	return b.String(), true
}

// applyAliases renames participants to their canonical names. Records that
// collapse onto one name are merged; the canonical record's mark wins when it
// has one.
func applyAliases(completions domain.Completions, settings domain.Settings) domain.Completions {
	if len(settings.Aliases) == 0 {
		return completions
	}

	names := make([]string, 0, len(completions))
	for name := range completions {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(domain.Completions, len(completions))
	for _, name := range names {
		record := completions[name]
		canonical := settings.ResolveAlias(name)
		existing, ok := out[canonical]
		switch {
		case !ok:
			out[canonical] = record
		case name == canonical:
			out[canonical] = mergeRecords(record, existing)
		default:
			out[canonical] = mergeRecords(existing, record)
		}
	}
	return out
}

func mergeRecords(a, b domain.CompletionRecord) domain.CompletionRecord {
	merged := domain.CompletionRecord{Mark: a.Mark}
	if merged.Mark == "" {
		merged.Mark = b.Mark
	}
	merged.Dates = unionSets(a.Dates, b.Dates)
	merged.OldDates = unionSets(a.OldDates, b.OldDates)
	merged.NewDates = unionSets(a.NewDates, b.NewDates)
	return merged
}

func unionSets(a, b domain.DateSet) domain.DateSet {
	if a == nil && b == nil {
		return nil
	}
	out := a.Clone()
	for d := range b {
		out.Add(d)
	}
	return out
}

// fillRoomMembers adds an empty record for every expected member of the
// leader's room that confirmed nothing.
func fillRoomMembers(completions domain.Completions, members []string, mode domain.TrackMode) {
	for _, member := range members {
		if _, ok := completions[member]; ok {
			continue
		}
		if mode == domain.TrackModeDual {
			completions[member] = domain.NewDualRecord("")
		} else {
			completions[member] = domain.NewSingleRecord("")
		}
	}
}
