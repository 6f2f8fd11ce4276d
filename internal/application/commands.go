package application

import "github.com/bnema/honeybible-cli/internal/domain"

// AnalyzeCommand asks for one transcript to be analyzed. An empty Mode
// detects the track mode from the transcript.
type AnalyzeCommand struct {
	Source  string
	Payload []byte
	Mode    domain.TrackMode
}

type AnalyzeResult struct {
	Source   string
	Analysis Analysis
	Err      error
}
