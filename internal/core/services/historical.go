package services

import (
	"time"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
)

// BuildDailyMetrics buckets activity and comment events by calendar day
// and returns a dense daily series spanning the full observed range,
// with missing days zero-filled. Activities count as edits on their
// timestamp's day; comments count on their creation day, replies on the
// reply's creation day, and resolutions on the comment's modification
// day (creation day when no modification time exists). Records without
// a usable timestamp are skipped. Returns nil when no dated events
// exist at all.
func BuildDailyMetrics(activities []domain.Activity, comments []domain.Comment) []domain.DailyMetrics {
	type counters struct {
		edits, comments, replies, resolved int
	}
	byDay := make(map[time.Time]*counters)

	day := func(t time.Time) time.Time {
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	touch := func(t time.Time) *counters {
		d := day(t)
		c, ok := byDay[d]
		if !ok {
			c = &counters{}
			byDay[d] = c
		}
		return c
	}

	for _, activity := range activities {
		if activity.Timestamp.IsZero() {
			continue
		}
		touch(activity.Timestamp).edits++
	}

	for i := range comments {
		comment := &comments[i]
		if comment.CreatedTime.IsZero() {
			continue
		}
		touch(comment.CreatedTime).comments++

		for _, reply := range comment.Replies {
			if reply.CreatedTime.IsZero() {
				continue
			}
			touch(reply.CreatedTime).replies++
		}

		if comment.Resolved {
			resolvedAt := comment.ModifiedTime
			if resolvedAt.IsZero() {
				resolvedAt = comment.CreatedTime
			}
			touch(resolvedAt).resolved++
		}
	}

	if len(byDay) == 0 {
		return nil
	}

	var minDay, maxDay time.Time
	for d := range byDay {
		if minDay.IsZero() || d.Before(minDay) {
			minDay = d
		}
		if d.After(maxDay) {
			maxDay = d
		}
	}

	var daily []domain.DailyMetrics
	for d := minDay; !d.After(maxDay); d = d.AddDate(0, 0, 1) {
		metrics := domain.DailyMetrics{Date: d}
		if c, ok := byDay[d]; ok {
			metrics.Edits = c.edits
			metrics.Comments = c.comments
			metrics.Replies = c.replies
			metrics.Resolved = c.resolved
		}
		daily = append(daily, metrics)
	}

	return daily
}

// ComputeSummary derives the report-wide totals from the daily series
// and, when word growth ran, the retained word growth points.
func ComputeSummary(daily []domain.DailyMetrics, points []domain.WordGrowthPoint) domain.SummaryStats {
	var summary domain.SummaryStats

	for _, d := range daily {
		summary.TotalEdits += d.Edits
		summary.TotalComments += d.Comments
		summary.TotalReplies += d.Replies
		summary.TotalResolved += d.Resolved
	}

	if summary.TotalComments > 0 {
		summary.ResolutionRate = float64(summary.TotalResolved) / float64(summary.TotalComments) * 100
	}

	if len(points) > 0 {
		summary.CurrentWordCount = points[len(points)-1].TotalWords
		for _, p := range points {
			summary.TotalWordChanges += abs(p.WordChange)
		}
		summary.AvgWordsPerEdit = float64(summary.TotalWordChanges) / float64(len(points))
	}

	return summary
}
