package domain

import (
	"fmt"
	"strings"
)

type TrackMode string

const (
	TrackModeSingle TrackMode = "single"
	TrackModeDual   TrackMode = "dual"
)

func ParseTrackMode(raw string) (TrackMode, error) {
	switch TrackMode(strings.ToLower(strings.TrimSpace(raw))) {
	case TrackModeSingle:
		return TrackModeSingle, nil
	case TrackModeDual:
		return TrackModeDual, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTrackMode, raw)
	}
}

type Track string

const (
	TrackOld Track = "old"
	TrackNew Track = "new"
)

// Label is the column label used in reports.
func (t Track) Label() string {
	switch t {
	case TrackOld:
		return "구약"
	case TrackNew:
		return "신약"
	default:
		return string(t)
	}
}

// TrackRule routes a message to Track when it contains Keyword.
type TrackRule struct {
	Keyword string
	Track   Track
}

type TrackSet struct {
	Old bool
	New bool
}

func (s TrackSet) Empty() bool {
	return !s.Old && !s.New
}

func (s TrackSet) Both() bool {
	return s.Old && s.New
}

func (s TrackSet) Has(t Track) bool {
	switch t {
	case TrackOld:
		return s.Old
	case TrackNew:
		return s.New
	default:
		return false
	}
}

func (s TrackSet) Tracks() []Track {
	tracks := make([]Track, 0, 2)
	if s.Old {
		tracks = append(tracks, TrackOld)
	}
	if s.New {
		tracks = append(tracks, TrackNew)
	}
	return tracks
}

// ClassifyTracks evaluates every rule against message. A message matching no
// rule returns an empty set.
func ClassifyTracks(message string, rules []TrackRule) TrackSet {
	var set TrackSet
	for _, rule := range rules {
		if rule.Keyword == "" || !strings.Contains(message, rule.Keyword) {
			continue
		}
		switch rule.Track {
		case TrackOld:
			set.Old = true
		case TrackNew:
			set.New = true
		}
	}
	return set
}
