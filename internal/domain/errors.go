package domain

import "errors"

var (
	ErrUnknownTrackMode      = errors.New("unknown track mode")
	ErrUnknownPlan           = errors.New("unknown reading plan")
	ErrReportNotFound        = errors.New("report not found")
	ErrRunNotFound           = errors.New("run not found")
	ErrUnsupportedFormat     = errors.New("unsupported format")
	ErrNoTranscriptInArchive = errors.New("no txt transcript in archive")
	ErrTranscriptTooLarge    = errors.New("transcript too large")
)
