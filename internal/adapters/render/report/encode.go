package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bnema/honeybible-cli/internal/application"
	"github.com/bnema/honeybible-cli/internal/domain"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, raw)
	}
}

// Extension is the file extension used when the report is written to disk.
func (f Format) Extension() string {
	switch f {
	case FormatTable:
		return "txt"
	case FormatYAML:
		return "yaml"
	default:
		return string(f)
	}
}

// FileName joins the analysis report name with the format extension.
func FileName(analysis application.Analysis, format Format) string {
	return analysis.ReportName + "." + format.Extension()
}

type document struct {
	RunID        string        `json:"run_id" yaml:"run_id"`
	Source       string        `json:"source" yaml:"source"`
	RoomName     string        `json:"room_name,omitempty" yaml:"room_name,omitempty"`
	SavedAt      string        `json:"saved_at,omitempty" yaml:"saved_at,omitempty"`
	AnalyzedAt   string        `json:"analyzed_at" yaml:"analyzed_at"`
	Mode         string        `json:"mode" yaml:"mode"`
	ScheduleType string        `json:"schedule_type" yaml:"schedule_type"`
	Leader       string        `json:"leader,omitempty" yaml:"leader,omitempty"`
	ReportName   string        `json:"report_name" yaml:"report_name"`
	Dates        []string      `json:"dates" yaml:"dates"`
	Participants []participant `json:"participants" yaml:"participants"`
	Stats        statsDocument `json:"stats" yaml:"stats"`
}

// participant carries the date keys of its mode only: dates in single mode,
// dates_old and dates_new in dual mode. A present key with no dates encodes as
// an empty list.
type participant struct {
	Name     string    `json:"name" yaml:"name"`
	Mark     string    `json:"mark" yaml:"mark"`
	Dates    *[]string `json:"dates,omitempty" yaml:"dates,omitempty"`
	OldDates *[]string `json:"dates_old,omitempty" yaml:"dates_old,omitempty"`
	NewDates *[]string `json:"dates_new,omitempty" yaml:"dates_new,omitempty"`
}

func newParticipant(name string, record domain.CompletionRecord, mode domain.TrackMode) participant {
	p := participant{Name: name, Mark: record.Mark}
	if mode == domain.TrackModeDual {
		p.OldDates = dateList(record.OldDates)
		p.NewDates = dateList(record.NewDates)
		return p
	}
	p.Dates = dateList(record.Dates)
	return p
}

func dateList(set domain.DateSet) *[]string {
	dates := set.Strings()
	return &dates
}

type statsDocument struct {
	Rows         int                   `json:"rows" yaml:"rows"`
	Senders      int                   `json:"senders" yaml:"senders"`
	Participants int                   `json:"participants" yaml:"participants"`
	Plan         string                `json:"plan,omitempty" yaml:"plan,omitempty"`
	Marks        application.MarkStats `json:"marks" yaml:"marks"`
	Dates        application.DateStats `json:"dates" yaml:"dates"`
}

func newDocument(analysis application.Analysis) document {
	doc := document{
		RunID:        analysis.RunID,
		Source:       analysis.Source,
		RoomName:     analysis.RoomName,
		SavedAt:      analysis.SavedAt,
		Mode:         string(analysis.Mode),
		ScheduleType: string(analysis.ScheduleType),
		Leader:       analysis.Leader,
		ReportName:   analysis.ReportName,
		Dates:        domain.SortDates(analysis.Completions.AllDates().Strings()),
		Participants: make([]participant, 0, len(analysis.Completions)),
		Stats: statsDocument{
			Rows:         analysis.Stats.Rows,
			Senders:      analysis.Stats.Senders,
			Participants: analysis.Stats.Participants,
			Plan:         string(analysis.Stats.Plan),
			Marks:        analysis.Stats.Marks,
			Dates:        analysis.Stats.Dates,
		},
	}
	if !analysis.AnalyzedAt.IsZero() {
		doc.AnalyzedAt = analysis.AnalyzedAt.Format(time.RFC3339)
	}

	for _, name := range analysis.Participants() {
		doc.Participants = append(doc.Participants, newParticipant(name, analysis.Completions[name], analysis.Mode))
	}

	return doc
}

// Encode renders analysis in a machine format. The table format goes
// through Render instead.
func Encode(analysis application.Analysis, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(newDocument(analysis), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json report: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(analysis)); err != nil {
			return nil, fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml report: %w", err)
		}
		return buf.Bytes(), nil
	case FormatCSV:
		return encodeCSV(BuildGrid(analysis.Completions, analysis.Mode))
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// encodeCSV writes the grid with a UTF-8 BOM so spreadsheet tools pick the
// right encoding for Hangul.
func encodeCSV(grid Grid) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(grid.Headers); err != nil {
		return nil, fmt.Errorf("encode csv report: %w", err)
	}
	if err := w.WriteAll(grid.Rows); err != nil {
		return nil, fmt.Errorf("encode csv report: %w", err)
	}

	return buf.Bytes(), nil
}
