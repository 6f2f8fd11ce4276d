package kakao

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/bnema/honeybible-cli/internal/domain"
)

var csvTimestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// CSVStats counts the records ParseCSV dropped.
type CSVStats struct {
	Records    int
	ShortRows  int
	EmptyCells int
}

// ParseCSV reads a desktop export with Date,User,Message columns. A leading
// header row is recognized by its first cell not being a timestamp.
func ParseCSV(text string) ([]domain.ChatRow, CSVStats, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		rows  []domain.ChatRow
		stats CSVStats
		first = true
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, stats, fmt.Errorf("read csv record %d: %w", stats.Records+1, err)
		}

		if first {
			first = false
			if len(record) > 0 && !csvTimestampPattern.MatchString(strings.TrimSpace(record[0])) {
				continue
			}
		}

		stats.Records++
		if len(record) < 3 {
			stats.ShortRows++
			continue
		}
		sender := strings.TrimSpace(record[1])
		message := strings.TrimSpace(record[2])
		if sender == "" || message == "" {
			stats.EmptyCells++
			continue
		}
		rows = append(rows, domain.ChatRow{Sender: sender, Message: message})
	}

	return rows, stats, nil
}
