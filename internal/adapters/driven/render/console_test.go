package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
)

func init() {
	color.NoColor = true
}

func TestConsoleMetadata(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, nil)

	c.Metadata(domain.DocumentMetadata{
		Title:        "Project Plan",
		CreatedTime:  "2024-01-15T10:30:00.000Z",
		ModifiedTime: "2024-03-02T08:00:00.000Z",
		Owner:        "Ada Lovelace",
		LastModifier: "Bob Stone",
	})

	out := buf.String()
	assert.Contains(t, out, "Document Information")
	assert.Contains(t, out, "Project Plan")
	assert.Contains(t, out, "2024-01-15 10:30:00")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Bob Stone")
}

func TestConsoleContributionsSortedByRevisions(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, nil)

	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.Contributions(map[string]*domain.UserContribution{
		"Ada": {Email: "ada@example.com", RevisionCount: 2, FirstModified: first, LastModified: first},
		"Bob": {Email: "bob@example.com", RevisionCount: 5, FirstModified: first, LastModified: first},
	})

	out := buf.String()
	assert.Contains(t, out, "User Contributions")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Bob")), bytes.Index(buf.Bytes(), []byte("Ada")),
		"user with more revisions should be listed first")
	assert.Contains(t, out, "ada@example.com")
}

func TestConsoleWordGrowth(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, nil)

	ts := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	c.WordGrowth(
		[]domain.WordGrowthPoint{
			{Timestamp: ts, TotalWords: 1200, WordChange: 150, User: "Ada", Email: "ada@example.com"},
		},
		[]domain.WordUserStats{
			{User: "Ada", Email: "ada@example.com", WordsAdded: 150, NetWordsAdded: 150, Edits: 1, AvgWordsPerEdit: 150},
		},
	)

	out := buf.String()
	assert.Contains(t, out, "Word Count History")
	assert.Contains(t, out, "Word Contributions by User")
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "+150")
}

func TestConsoleWordGrowthEmptySilent(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, nil)

	c.WordGrowth(nil, nil)

	assert.Empty(t, buf.String())
}

func TestConsoleWordEstimatesSortedDesc(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, nil)

	c.WordEstimates(map[string]int{
		"people/alpha": 30,
		"people/beta":  120,
	})

	out := buf.String()
	assert.Contains(t, out, "Estimated Word Contributions")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("people/beta")), bytes.Index(buf.Bytes(), []byte("people/alpha")))
	assert.Contains(t, out, "120")
}

func TestConsoleComments(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, nil)

	c.Comments(map[string]*domain.CommentStats{
		"Ada": {Email: "ada@example.com", CommentsMade: 3, RepliesMade: 1, ResolvedComments: 2},
	})

	out := buf.String()
	assert.Contains(t, out, "Comment Activity")
	assert.Contains(t, out, "Ada")
}

func TestConsoleHistoricalSummary(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, nil)

	c.Historical(
		[]domain.DailyMetrics{{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Edits: 4}},
		domain.SummaryStats{
			TotalEdits:       4,
			TotalComments:    2,
			TotalResolved:    1,
			ResolutionRate:   50,
			CurrentWordCount: 1500,
			TotalWordChanges: 12,
			AvgWordsPerEdit:  9.5,
		},
	)

	out := buf.String()
	assert.Contains(t, out, "Summary Statistics")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "9.5")
}

func TestConsoleHistoricalHidesWordRowsWhenAbsent(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, nil)

	c.Historical(nil, domain.SummaryStats{TotalEdits: 1})

	out := buf.String()
	assert.NotContains(t, out, "Current Word Count")
	assert.NotContains(t, out, "Avg Words per Edit")
}

func TestConsoleFlushWithoutChart(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, nil)

	require.NoError(t, c.Flush())
	assert.Empty(t, buf.String())
}

func TestConsoleFlushSkipsEmptyChart(t *testing.T) {
	var buf bytes.Buffer
	chart := NewChart(t.TempDir() + "/out.html")
	c := NewConsole(&buf, chart)

	require.NoError(t, c.Flush())
	assert.Empty(t, buf.String())
	assert.NoFileExists(t, chart.Path())
}
