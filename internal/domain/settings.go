package domain

import (
	"fmt"
	"strings"
)

const DefaultMaxDatesPerMessage = 14

// Settings carries the business constants of a run.
type Settings struct {
	// MaxDatesPerMessage rejects messages expanding to more dates as noise.
	MaxDatesPerMessage int
	StripWords         []string
	TrackRules         []TrackRule
	Plans              []Plan
	// DualMarker is the announcement phrase that switches a room to dual mode.
	DualMarker string
	// LeaderKeyword marks the guide message posted by the room leader.
	LeaderKeyword    string
	EducationKeyword string
	// Aliases maps short display names to canonical names.
	Aliases map[string]string
	// RoomMembers lists the expected members per leader.
	RoomMembers map[string][]string
}

func DefaultSettings() Settings {
	return Settings{
		MaxDatesPerMessage: DefaultMaxDatesPerMessage,
		StripWords:         append([]string(nil), DefaultStripWords...),
		TrackRules: []TrackRule{
			{Keyword: "구약", Track: TrackOld},
			{Keyword: "신약", Track: TrackNew},
		},
		Plans:            DefaultPlans(),
		DualMarker:       "헷갈릴 수 있는 내용을 다시 안내드립니다",
		LeaderKeyword:    "꿀성경 진행 방식 안내",
		EducationKeyword: "교육국",
		Aliases:          map[string]string{},
		RoomMembers:      map[string][]string{},
	}
}

func (s Settings) Validate() error {
	if s.MaxDatesPerMessage <= 0 {
		return fmt.Errorf("max dates per message must be positive")
	}
	seen := make(map[PlanID]struct{}, len(s.Plans))
	for _, p := range s.Plans {
		if strings.TrimSpace(string(p.ID)) == "" {
			return fmt.Errorf("plan id is required")
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate plan id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Track != TrackOld && p.Track != TrackNew {
			return fmt.Errorf("plan %q: unsupported track %q", p.ID, p.Track)
		}
		for _, part := range p.Parts {
			if part.End.Before(part.Start) {
				return fmt.Errorf("plan %q: part ends before it starts", p.ID)
			}
		}
	}
	for _, rule := range s.TrackRules {
		if rule.Track != TrackOld && rule.Track != TrackNew {
			return fmt.Errorf("track rule %q: unsupported track %q", rule.Keyword, rule.Track)
		}
	}
	return nil
}

// ResolveAlias maps name through the alias table.
func (s Settings) ResolveAlias(name string) string {
	if canonical, ok := s.Aliases[name]; ok && canonical != "" {
		return canonical
	}
	return name
}
