package services

import (
	"context"
	"time"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
	"github.com/anastluc/gdocs-participation-statistics/internal/core/ports/driven"
	"github.com/anastluc/gdocs-participation-statistics/internal/logger"
)

// DefaultLookback bounds the activity query window.
const DefaultLookback = 365 * 24 * time.Hour

// Analyzer orchestrates a full participation report for one document.
// Every stage is independently skippable: a collaborator failure is
// logged as a warning and the remaining stages proceed on partial data.
// Only context cancellation aborts the run.
type Analyzer struct {
	metadata   driven.MetadataSource
	revisions  driven.RevisionLister
	comments   driven.CommentLister
	activities driven.ActivityLister
	tracker    *WordGrowthTracker
	sink       driven.ReportSink
	lookback   time.Duration
}

// AnalyzerConfig carries the optional knobs for an analysis run.
type AnalyzerConfig struct {
	// Lookback bounds the activity query; DefaultLookback when zero.
	Lookback time.Duration

	// SkipWordGrowth disables the revision content walk, which is the
	// only stage that can run for minutes to hours.
	SkipWordGrowth bool
}

// NewAnalyzer wires an Analyzer over the driven ports. tracker may be
// nil to disable word growth analysis.
func NewAnalyzer(
	metadata driven.MetadataSource,
	revisions driven.RevisionLister,
	comments driven.CommentLister,
	activities driven.ActivityLister,
	tracker *WordGrowthTracker,
	sink driven.ReportSink,
	cfg AnalyzerConfig,
) *Analyzer {
	lookback := cfg.Lookback
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	if cfg.SkipWordGrowth {
		tracker = nil
	}

	return &Analyzer{
		metadata:   metadata,
		revisions:  revisions,
		comments:   comments,
		activities: activities,
		tracker:    tracker,
		sink:       sink,
		lookback:   lookback,
	}
}

// Run executes the full analysis for docID and feeds each stage's
// output to the report sink as it completes.
func (a *Analyzer) Run(ctx context.Context, docID string) error {
	meta, err := a.metadata.GetMetadata(ctx, docID)
	if err != nil {
		logger.Warn("retrieving document metadata: %v", err)
	} else {
		a.sink.Metadata(meta)
	}

	revisions := a.listRevisions(ctx, docID)

	var growthPoints []domain.WordGrowthPoint
	if a.tracker != nil && len(revisions) > 0 {
		var userStats []domain.WordUserStats
		growthPoints, userStats, err = a.tracker.Track(ctx, docID, revisions)
		if err != nil {
			return err
		}
		a.sink.WordGrowth(growthPoints, userStats)
	}

	if len(revisions) > 0 {
		a.sink.Contributions(AggregateContributions(revisions))
	}

	activities := a.listActivity(ctx, docID)
	if len(activities) > 0 {
		if estimates := EstimateWordContributions(activities); len(estimates) > 0 {
			a.sink.WordEstimates(estimates)
		}
	}

	comments := a.listComments(ctx, docID)
	if len(comments) > 0 {
		a.sink.Comments(AggregateComments(comments))
	}

	if len(activities) > 0 || len(comments) > 0 {
		if daily := BuildDailyMetrics(activities, comments); len(daily) > 0 {
			a.sink.Historical(daily, ComputeSummary(daily, growthPoints))
		}
	}

	return a.sink.Flush()
}

func (a *Analyzer) listRevisions(ctx context.Context, docID string) []domain.Revision {
	revisions, err := a.revisions.ListRevisions(ctx, docID)
	if err != nil {
		logger.Warn("retrieving revision history: %v", err)
		return nil
	}
	logger.Info("retrieved %d revisions", len(revisions))
	return revisions
}

func (a *Analyzer) listComments(ctx context.Context, docID string) []domain.Comment {
	comments, err := a.comments.ListComments(ctx, docID)
	if err != nil {
		logger.Warn("retrieving comments: %v", err)
		return nil
	}
	logger.Info("retrieved %d comments", len(comments))
	return comments
}

func (a *Analyzer) listActivity(ctx context.Context, docID string) []domain.Activity {
	since := time.Now().UTC().Add(-a.lookback)
	activities, err := a.activities.ListActivity(ctx, docID, since)
	if err != nil {
		logger.Warn("retrieving activity history: %v", err)
		return nil
	}
	logger.Info("retrieved %d activities", len(activities))
	return activities
}
