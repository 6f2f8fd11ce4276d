package toml

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/honeybible-cli/internal/domain"
)

const (
	currentSchemaVersion = 1
	partDateLayout       = "2006-01-02"
)

type fileSchema struct {
	Version            int                 `toml:"version"`
	MaxDatesPerMessage int                 `toml:"max_dates_per_message"`
	StripWords         []string            `toml:"strip_words"`
	Tracks             tracksSchema        `toml:"tracks"`
	Plans              []planSchema        `toml:"plans"`
	Aliases            map[string]string   `toml:"aliases,omitempty"`
	RoomMembers        map[string][]string `toml:"room_members,omitempty"`
}

type tracksSchema struct {
	OldKeywords      []string `toml:"old_keywords"`
	NewKeywords      []string `toml:"new_keywords"`
	DualMarker       string   `toml:"dual_marker"`
	LeaderKeyword    string   `toml:"leader_keyword"`
	EducationKeyword string   `toml:"education_keyword"`
}

type planSchema struct {
	ID               string       `toml:"id"`
	Name             string       `toml:"name"`
	Track            string       `toml:"track"`
	Keywords         []string     `toml:"keywords"`
	ExcludedWeekdays []string     `toml:"excluded_weekdays"`
	Parts            []partSchema `toml:"parts"`
}

type partSchema struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// applyDefaults fills every section the file leaves out with the built-in
// value, so a file may override only what it needs.
func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}

	defaults := toSchema(domain.DefaultSettings())
	if s.MaxDatesPerMessage == 0 {
		s.MaxDatesPerMessage = defaults.MaxDatesPerMessage
	}
	if s.StripWords == nil {
		s.StripWords = defaults.StripWords
	}
	if len(s.Tracks.OldKeywords) == 0 && len(s.Tracks.NewKeywords) == 0 {
		s.Tracks.OldKeywords = defaults.Tracks.OldKeywords
		s.Tracks.NewKeywords = defaults.Tracks.NewKeywords
	}
	if s.Tracks.DualMarker == "" {
		s.Tracks.DualMarker = defaults.Tracks.DualMarker
	}
	if s.Tracks.LeaderKeyword == "" {
		s.Tracks.LeaderKeyword = defaults.Tracks.LeaderKeyword
	}
	if s.Tracks.EducationKeyword == "" {
		s.Tracks.EducationKeyword = defaults.Tracks.EducationKeyword
	}
	if s.Plans == nil {
		s.Plans = defaults.Plans
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(settings domain.Settings) fileSchema {
	file := fileSchema{
		Version:            currentSchemaVersion,
		MaxDatesPerMessage: settings.MaxDatesPerMessage,
		StripWords:         append([]string(nil), settings.StripWords...),
		Tracks: tracksSchema{
			DualMarker:       settings.DualMarker,
			LeaderKeyword:    settings.LeaderKeyword,
			EducationKeyword: settings.EducationKeyword,
		},
		Aliases:     settings.Aliases,
		RoomMembers: settings.RoomMembers,
	}

	for _, rule := range settings.TrackRules {
		switch rule.Track {
		case domain.TrackOld:
			file.Tracks.OldKeywords = append(file.Tracks.OldKeywords, rule.Keyword)
		case domain.TrackNew:
			file.Tracks.NewKeywords = append(file.Tracks.NewKeywords, rule.Keyword)
		}
	}

	for _, plan := range settings.Plans {
		entry := planSchema{
			ID:       string(plan.ID),
			Name:     plan.Name,
			Track:    string(plan.Track),
			Keywords: append([]string(nil), plan.Keywords...),
		}
		for _, wd := range plan.ExcludedWeekdays {
			entry.ExcludedWeekdays = append(entry.ExcludedWeekdays, strings.ToLower(wd.String()))
		}
		for _, part := range plan.Parts {
			entry.Parts = append(entry.Parts, partSchema{
				Start: part.Start.Format(partDateLayout),
				End:   part.End.Format(partDateLayout),
			})
		}
		file.Plans = append(file.Plans, entry)
	}

	return file
}

func fromSchema(file fileSchema) (domain.Settings, error) {
	settings := domain.Settings{
		MaxDatesPerMessage: file.MaxDatesPerMessage,
		StripWords:         append([]string(nil), file.StripWords...),
		DualMarker:         file.Tracks.DualMarker,
		LeaderKeyword:      file.Tracks.LeaderKeyword,
		EducationKeyword:   file.Tracks.EducationKeyword,
		Aliases:            file.Aliases,
		RoomMembers:        file.RoomMembers,
	}
	if settings.Aliases == nil {
		settings.Aliases = map[string]string{}
	}
	if settings.RoomMembers == nil {
		settings.RoomMembers = map[string][]string{}
	}

	for _, keyword := range file.Tracks.OldKeywords {
		settings.TrackRules = append(settings.TrackRules, domain.TrackRule{Keyword: keyword, Track: domain.TrackOld})
	}
	for _, keyword := range file.Tracks.NewKeywords {
		settings.TrackRules = append(settings.TrackRules, domain.TrackRule{Keyword: keyword, Track: domain.TrackNew})
	}

	for _, entry := range file.Plans {
		plan := domain.Plan{
			ID:       domain.PlanID(entry.ID),
			Name:     entry.Name,
			Track:    domain.Track(entry.Track),
			Keywords: append([]string(nil), entry.Keywords...),
		}
		for _, raw := range entry.ExcludedWeekdays {
			wd, err := parseWeekday(raw)
			if err != nil {
				return domain.Settings{}, fmt.Errorf("plan %q: %w", entry.ID, err)
			}
			plan.ExcludedWeekdays = append(plan.ExcludedWeekdays, wd)
		}
		for i, part := range entry.Parts {
			start, err := time.Parse(partDateLayout, part.Start)
			if err != nil {
				return domain.Settings{}, fmt.Errorf("plan %q part %d start: %w", entry.ID, i+1, err)
			}
			end, err := time.Parse(partDateLayout, part.End)
			if err != nil {
				return domain.Settings{}, fmt.Errorf("plan %q part %d end: %w", entry.ID, i+1, err)
			}
			plan.Parts = append(plan.Parts, domain.DateRange{Start: start, End: end})
		}
		settings.Plans = append(settings.Plans, plan)
	}

	return settings, nil
}

func parseWeekday(raw string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := strings.ToLower(wd.String())
		if name == full || name == full[:3] {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", raw)
}
