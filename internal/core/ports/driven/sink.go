package driven

import "github.com/anastluc/gdocs-participation-statistics/internal/core/domain"

// ReportSink consumes the plain aggregate outputs of an analysis run.
// The core hands over maps and slices; presentation (tables, charts,
// files) is entirely the sink's concern.
type ReportSink interface {
	// Metadata presents the document header.
	Metadata(meta domain.DocumentMetadata)

	// WordGrowth presents the retained word-count series and the
	// per-user rollup derived from it.
	WordGrowth(points []domain.WordGrowthPoint, users []domain.WordUserStats)

	// Contributions presents per-user revision statistics keyed by
	// display name.
	Contributions(stats map[string]*domain.UserContribution)

	// WordEstimates presents the heuristic per-actor word contribution
	// estimate derived from the activity log.
	WordEstimates(estimates map[string]int)

	// Comments presents per-user comment statistics keyed by display
	// name.
	Comments(stats map[string]*domain.CommentStats)

	// Historical presents the dense daily metrics series and the
	// report-wide summary. Called only when dated events exist.
	Historical(daily []domain.DailyMetrics, summary domain.SummaryStats)

	// Flush finalizes any buffered output (e.g. writes the chart file).
	Flush() error
}
