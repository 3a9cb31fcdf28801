package services

import (
	"context"
	"sort"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
	"github.com/anastluc/gdocs-participation-statistics/internal/core/ports/driven"
	"github.com/anastluc/gdocs-participation-statistics/internal/logger"
	"github.com/anastluc/gdocs-participation-statistics/internal/wordcount"
)

// Points whose absolute word delta is below this threshold are dropped
// (unless they anchor the series boundary) to cut noise from trivial
// edits.
const minRetainedDelta = 2

// BaselinePolicy controls when the running word-count baseline advances
// during a word-growth walk.
type BaselinePolicy string

const (
	// BaselineOnRetain advances the baseline only when a point is
	// retained. An unretained small fluctuation does not reset the
	// baseline, so consecutive small deltas are each measured against
	// the last retained count. This reproduces the reference behavior,
	// stale-baseline quirk included.
	BaselineOnRetain BaselinePolicy = "on-retain"

	// BaselineEveryRevision advances the baseline after every processed
	// revision, so each delta is measured against the immediately
	// preceding snapshot.
	BaselineEveryRevision BaselinePolicy = "every-revision"
)

// ParseBaselinePolicy maps a config string to a policy, defaulting to
// BaselineOnRetain for unrecognized values.
func ParseBaselinePolicy(s string) BaselinePolicy {
	if BaselinePolicy(s) == BaselineEveryRevision {
		return BaselineEveryRevision
	}
	return BaselineOnRetain
}

// WordGrowthTracker walks a revision sequence chronologically, fetches
// a plain-text snapshot per revision, and derives the retained word
// growth series plus per-user word statistics. Fetch pacing against
// rate limits is the fetcher's concern; the tracker only checks for
// cancellation between revisions.
type WordGrowthTracker struct {
	fetcher driven.RevisionContentFetcher
	policy  BaselinePolicy

	// countWords is swappable in tests; defaults to wordcount.Count.
	countWords func(string) int
}

// NewWordGrowthTracker creates a tracker over the given content fetcher.
func NewWordGrowthTracker(fetcher driven.RevisionContentFetcher, policy BaselinePolicy) *WordGrowthTracker {
	return &WordGrowthTracker{
		fetcher:    fetcher,
		policy:     policy,
		countWords: wordcount.Count,
	}
}

// Track processes revisions in ascending time order and returns the
// retained word growth points and the per-user rollup. A point is
// retained when its absolute delta reaches minRetainedDelta or it is
// the first or last processed revision; boundary revisions anchor the
// series even with zero delta. A failed content fetch degrades to an
// empty snapshot. Track returns early with ctx.Err() on cancellation,
// along with the points accumulated so far.
func (t *WordGrowthTracker) Track(
	ctx context.Context, docID string, revisions []domain.Revision,
) ([]domain.WordGrowthPoint, []domain.WordUserStats, error) {
	sorted := sortRevisionsByTime(revisions)

	var points []domain.WordGrowthPoint
	prevWordCount := 0
	total := len(sorted)

	for i, rev := range sorted {
		if err := ctx.Err(); err != nil {
			return points, rollupWordStats(points), err
		}

		if rev.ID == "" || rev.ModifiedTime.IsZero() {
			continue
		}

		logger.Info("processing revision %d/%d", i+1, total)

		content, err := t.fetcher.FetchRevisionText(ctx, docID, rev.ID)
		if err != nil {
			if ctx.Err() != nil {
				return points, rollupWordStats(points), ctx.Err()
			}
			logger.Warn("fetching revision %s content: %v", rev.ID, err)
			content = ""
		}

		words := t.countWords(content)
		delta := words - prevWordCount

		retain := abs(delta) >= minRetainedDelta || i == 0 || i == total-1
		if retain {
			points = append(points, domain.WordGrowthPoint{
				Timestamp:  rev.ModifiedTime,
				TotalWords: words,
				WordChange: delta,
				User:       rev.LastModifyingUser.Name(),
				Email:      revisionEmail(rev.LastModifyingUser),
			})
		}

		if retain || t.policy == BaselineEveryRevision {
			prevWordCount = words
		}
	}

	return points, rollupWordStats(points), nil
}

// rollupWordStats groups retained points by user and email and derives
// the per-user word statistics, sorted descending by net words added.
func rollupWordStats(points []domain.WordGrowthPoint) []domain.WordUserStats {
	type userKey struct {
		user, email string
	}

	byUser := make(map[userKey]*domain.WordUserStats)
	order := make([]userKey, 0)

	for _, p := range points {
		key := userKey{p.User, p.Email}
		entry, ok := byUser[key]
		if !ok {
			entry = &domain.WordUserStats{User: p.User, Email: p.Email}
			byUser[key] = entry
			order = append(order, key)
		}

		if p.WordChange > 0 {
			entry.WordsAdded += p.WordChange
		} else {
			entry.WordsRemoved += -p.WordChange
		}
		entry.NetWordsAdded += p.WordChange
		entry.Edits++
	}

	stats := make([]domain.WordUserStats, 0, len(order))
	for _, key := range order {
		entry := byUser[key]
		if entry.Edits > 0 {
			entry.AvgWordsPerEdit = float64(entry.WordsAdded+entry.WordsRemoved) / float64(entry.Edits)
		}
		stats = append(stats, *entry)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].NetWordsAdded > stats[j].NetWordsAdded
	})

	return stats
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
