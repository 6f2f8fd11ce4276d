package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChooseMark(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		counts map[string]int
		order  []string
		want   string
	}{
		{name: "empty", counts: map[string]int{}},
		{name: "highest count wins", counts: map[string]int{"A": 1, "B": 3}, order: []string{"A", "B"}, want: "B"},
		{name: "tie goes to first seen", counts: map[string]int{"A": 2, "B": 2}, order: []string{"B", "A"}, want: "B"},
		{name: "key missing from order falls back to sorted keys", counts: map[string]int{"Z": 2, "Y": 2}, want: "Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, chooseMark(tt.counts, tt.order))
		})
	}
}

func TestMarkTallyKeepsFirstDisplayForm(t *testing.T) {
	t.Parallel()

	tally := newMarkTally()
	tally.observe("\u2764\ufe0f")
	tally.observe("\u2764")
	tally.observe("😀")

	assert.Equal(t, map[string]int{"\u2764": 2, "😀": 1}, tally.counts)
	assert.Equal(t, []string{"\u2764", "😀"}, tally.order)
	assert.Equal(t, "\u2764\ufe0f", tally.raw["\u2764"])
}
