package domain

// ChatRow is one (sender, message) record of a transcript.
type ChatRow struct {
	Sender  string
	Message string
}

// MarkAssignment is the completion mark chosen for a participant. Key is the
// normalized form used for matching, Display the form first seen.
type MarkAssignment struct {
	Key     string
	Display string
}

// CompletionRecord holds the confirmed dates of one participant. Single-track
// runs fill Dates; dual-track runs fill OldDates and NewDates.
type CompletionRecord struct {
	Mark     string
	Dates    DateSet
	OldDates DateSet
	NewDates DateSet
}

func NewSingleRecord(mark string) CompletionRecord {
	return CompletionRecord{Mark: mark, Dates: DateSet{}}
}

func NewDualRecord(mark string) CompletionRecord {
	return CompletionRecord{Mark: mark, OldDates: DateSet{}, NewDates: DateSet{}}
}

func (r CompletionRecord) TrackDates(t Track) DateSet {
	switch t {
	case TrackOld:
		return r.OldDates
	case TrackNew:
		return r.NewDates
	default:
		return nil
	}
}

// Empty reports whether no date is confirmed on any track.
func (r CompletionRecord) Empty() bool {
	return r.Dates.Len() == 0 && r.OldDates.Len() == 0 && r.NewDates.Len() == 0
}

// Completions maps a normalized participant name to its record.
type Completions map[string]CompletionRecord

// AllDates is the union of every confirmed date across participants and
// tracks.
func (c Completions) AllDates() DateSet {
	all := DateSet{}
	for _, record := range c {
		for _, set := range []DateSet{record.Dates, record.OldDates, record.NewDates} {
			for d := range set {
				all[d] = struct{}{}
			}
		}
	}
	return all
}

type TranscriptFormat string

const (
	FormatCSV TranscriptFormat = "csv"
	FormatTXT TranscriptFormat = "txt"
	FormatZIP TranscriptFormat = "zip"
)

// Transcript is a decoded chat export.
type Transcript struct {
	Name     string
	Format   TranscriptFormat
	RoomName string
	// SavedAt is the export time as "YYYY/MM/DD-HH:MM", empty when unknown.
	SavedAt string
	Rows    []ChatRow
}
