package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
)

// fakeHistory implements all listing ports with canned data or errors.
type fakeHistory struct {
	meta       domain.DocumentMetadata
	metaErr    error
	revisions  []domain.Revision
	revErr     error
	comments   []domain.Comment
	commentErr error
	activities []domain.Activity
	actErr     error

	activitySince time.Time
}

func (f *fakeHistory) GetMetadata(context.Context, string) (domain.DocumentMetadata, error) {
	return f.meta, f.metaErr
}

func (f *fakeHistory) ListRevisions(context.Context, string) ([]domain.Revision, error) {
	return f.revisions, f.revErr
}

func (f *fakeHistory) ListComments(context.Context, string) ([]domain.Comment, error) {
	return f.comments, f.commentErr
}

func (f *fakeHistory) ListActivity(_ context.Context, _ string, since time.Time) ([]domain.Activity, error) {
	f.activitySince = since
	return f.activities, f.actErr
}

// recordingSink records which report sections were produced.
type recordingSink struct {
	meta          *domain.DocumentMetadata
	contributions map[string]*domain.UserContribution
	commentStats  map[string]*domain.CommentStats
	estimates     map[string]int
	points        []domain.WordGrowthPoint
	daily         []domain.DailyMetrics
	summary       *domain.SummaryStats
	flushed       bool
}

func (s *recordingSink) Metadata(m domain.DocumentMetadata) { s.meta = &m }

func (s *recordingSink) WordGrowth(points []domain.WordGrowthPoint, _ []domain.WordUserStats) {
	s.points = points
}

func (s *recordingSink) Contributions(stats map[string]*domain.UserContribution) {
	s.contributions = stats
}

func (s *recordingSink) WordEstimates(estimates map[string]int) { s.estimates = estimates }

func (s *recordingSink) Comments(stats map[string]*domain.CommentStats) { s.commentStats = stats }

func (s *recordingSink) Historical(daily []domain.DailyMetrics, summary domain.SummaryStats) {
	s.daily = daily
	s.summary = &summary
}

func (s *recordingSink) Flush() error {
	s.flushed = true
	return nil
}

func newTestAnalyzer(history *fakeHistory, sink *recordingSink, cfg AnalyzerConfig) *Analyzer {
	tracker := NewWordGrowthTracker(&fakeFetcher{texts: map[string]string{}}, BaselineOnRetain)
	tracker.countWords = func(string) int { return 0 }
	return NewAnalyzer(history, history, history, history, tracker, sink, cfg)
}

func TestAnalyzerRun_FullReport(t *testing.T) {
	ada := &domain.User{DisplayName: "Ada", EmailAddress: "ada@example.com"}
	history := &fakeHistory{
		meta: domain.DocumentMetadata{Title: "Design Doc"},
		revisions: []domain.Revision{
			{ID: "r1", ModifiedTime: ts(1), LastModifyingUser: ada},
		},
		comments: []domain.Comment{
			{Author: ada, CreatedTime: ts(2)},
		},
		activities: []domain.Activity{
			editActivity("Ada", domain.EditOther, false),
		},
	}
	sink := &recordingSink{}

	err := newTestAnalyzer(history, sink, AnalyzerConfig{}).Run(context.Background(), "doc")
	require.NoError(t, err)

	require.NotNil(t, sink.meta)
	assert.Equal(t, "Design Doc", sink.meta.Title)
	assert.Len(t, sink.points, 1)
	assert.Contains(t, sink.contributions, "Ada")
	assert.Equal(t, 5, sink.estimates["Ada"])
	assert.Contains(t, sink.commentStats, "Ada")
	require.NotNil(t, sink.summary)
	assert.Equal(t, 1, sink.summary.TotalEdits)
	assert.Equal(t, 1, sink.summary.TotalComments)
	assert.True(t, sink.flushed)
}

func TestAnalyzerRun_DegradesOnCollaboratorFailure(t *testing.T) {
	// Metadata, revisions, and activity all fail; comments still flow.
	history := &fakeHistory{
		metaErr: errors.New("metadata unavailable"),
		revErr:  errors.New("revisions unavailable"),
		actErr:  errors.New("activity API disabled"),
		comments: []domain.Comment{
			{Author: &domain.User{DisplayName: "Bob"}, CreatedTime: ts(1)},
		},
	}
	sink := &recordingSink{}

	err := newTestAnalyzer(history, sink, AnalyzerConfig{}).Run(context.Background(), "doc")
	require.NoError(t, err)

	assert.Nil(t, sink.meta)
	assert.Nil(t, sink.contributions)
	assert.Nil(t, sink.points)
	assert.Nil(t, sink.estimates)
	assert.Contains(t, sink.commentStats, "Bob")
	require.NotNil(t, sink.summary)
	assert.True(t, sink.flushed)
}

func TestAnalyzerRun_SkipWordGrowth(t *testing.T) {
	history := &fakeHistory{
		revisions: []domain.Revision{
			{ID: "r1", ModifiedTime: ts(1)},
		},
	}
	sink := &recordingSink{}

	err := newTestAnalyzer(history, sink, AnalyzerConfig{SkipWordGrowth: true}).
		Run(context.Background(), "doc")
	require.NoError(t, err)

	assert.Nil(t, sink.points)
	assert.Contains(t, sink.contributions, domain.UnknownUserName)
}

func TestAnalyzerRun_LookbackWindow(t *testing.T) {
	history := &fakeHistory{}
	sink := &recordingSink{}

	cfg := AnalyzerConfig{Lookback: 30 * 24 * time.Hour}
	err := newTestAnalyzer(history, sink, cfg).Run(context.Background(), "doc")
	require.NoError(t, err)

	expected := time.Now().UTC().Add(-cfg.Lookback)
	assert.WithinDuration(t, expected, history.activitySince, time.Minute)
}

func TestAnalyzerRun_CancellationAborts(t *testing.T) {
	history := &fakeHistory{
		revisions: []domain.Revision{
			{ID: "r1", ModifiedTime: ts(1)},
			{ID: "r2", ModifiedTime: ts(2)},
		},
	}
	sink := &recordingSink{}

	ctx, cancel := context.WithCancel(context.Background())
	fetcher := &fakeFetcher{texts: map[string]string{}, cancel: cancel}
	tracker := NewWordGrowthTracker(fetcher, BaselineOnRetain)
	tracker.countWords = func(string) int { return 0 }
	analyzer := NewAnalyzer(history, history, history, history, tracker, sink, AnalyzerConfig{})

	err := analyzer.Run(ctx, "doc")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, sink.flushed)
}
