package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildDailyMetrics_DenseRange(t *testing.T) {
	activities := []domain.Activity{
		{Timestamp: ts(1)},
		{Timestamp: ts(5)},
		{Timestamp: ts(5)},
	}

	daily := BuildDailyMetrics(activities, nil)
	require.Len(t, daily, 5, "range must span (max-min).days+1 entries")

	for i, metrics := range daily {
		assert.Equal(t, day(i+1), metrics.Date, "days must be contiguous")
	}

	assert.Equal(t, 1, daily[0].Edits)
	assert.Equal(t, 0, daily[1].Edits, "gap days are zero-filled")
	assert.Equal(t, 2, daily[4].Edits)
}

func TestBuildDailyMetrics_CommentLifecycle(t *testing.T) {
	comments := []domain.Comment{
		{
			CreatedTime:  ts(1),
			ModifiedTime: ts(3),
			Resolved:     true,
			Replies: []domain.Reply{
				{CreatedTime: ts(2)},
				{CreatedTime: ts(2)},
			},
		},
	}

	daily := BuildDailyMetrics(nil, comments)
	require.Len(t, daily, 3)

	assert.Equal(t, 1, daily[0].Comments)
	assert.Equal(t, 2, daily[1].Replies)
	assert.Equal(t, 1, daily[2].Resolved, "resolution lands on the modification day")
}

func TestBuildDailyMetrics_ResolutionFallsBackToCreation(t *testing.T) {
	comments := []domain.Comment{
		{CreatedTime: ts(1), Resolved: true},
	}

	daily := BuildDailyMetrics(nil, comments)
	require.Len(t, daily, 1)
	assert.Equal(t, 1, daily[0].Comments)
	assert.Equal(t, 1, daily[0].Resolved)
}

func TestBuildDailyMetrics_SkipsUndatedRecords(t *testing.T) {
	activities := []domain.Activity{
		{Timestamp: time.Time{}},
		{Timestamp: ts(2)},
	}
	comments := []domain.Comment{
		{CreatedTime: time.Time{}, Resolved: true},
	}

	daily := BuildDailyMetrics(activities, comments)
	require.Len(t, daily, 1)
	assert.Equal(t, 1, daily[0].Edits)
	assert.Equal(t, 0, daily[0].Comments)
	assert.Equal(t, 0, daily[0].Resolved)
}

func TestBuildDailyMetrics_Empty(t *testing.T) {
	assert.Nil(t, BuildDailyMetrics(nil, nil))
	assert.Nil(t, BuildDailyMetrics([]domain.Activity{{}}, []domain.Comment{{}}))
}

func TestComputeSummary(t *testing.T) {
	daily := []domain.DailyMetrics{
		{Date: day(1), Edits: 3, Comments: 2, Replies: 1, Resolved: 1},
		{Date: day(2), Edits: 1, Comments: 2, Replies: 0, Resolved: 1},
	}
	points := []domain.WordGrowthPoint{
		{TotalWords: 10, WordChange: 10},
		{TotalWords: 6, WordChange: -4},
	}

	summary := ComputeSummary(daily, points)
	assert.Equal(t, 4, summary.TotalEdits)
	assert.Equal(t, 4, summary.TotalComments)
	assert.Equal(t, 1, summary.TotalReplies)
	assert.Equal(t, 2, summary.TotalResolved)
	assert.InDelta(t, 50.0, summary.ResolutionRate, 1e-9)
	assert.Equal(t, 6, summary.CurrentWordCount)
	assert.Equal(t, 14, summary.TotalWordChanges)
	assert.InDelta(t, 7.0, summary.AvgWordsPerEdit, 1e-9)
}

func TestComputeSummary_NoComments(t *testing.T) {
	daily := []domain.DailyMetrics{{Date: day(1), Edits: 2}}

	summary := ComputeSummary(daily, nil)
	assert.Zero(t, summary.ResolutionRate)
	assert.Zero(t, summary.CurrentWordCount)
}
