package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
	"github.com/anastluc/gdocs-participation-statistics/internal/core/ports/driven"
	"github.com/anastluc/gdocs-participation-statistics/internal/logger"
)

var _ driven.ReportSink = (*Console)(nil)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	percentColor = color.New(color.FgGreen)
)

// Console renders each report section as a go-pretty table on an
// io.Writer. When a Chart is attached, the word growth and historical
// sections also feed it, and Flush writes the chart file.
type Console struct {
	w     io.Writer
	chart *Chart
}

// NewConsole returns a console sink writing to w. chart may be nil to
// disable HTML output.
func NewConsole(w io.Writer, chart *Chart) *Console {
	return &Console{w: w, chart: chart}
}

func (c *Console) section(title string) {
	fmt.Fprintln(c.w)
	headerColor.Fprintln(c.w, title)
}

func (c *Console) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(c.w)
	t.SetStyle(table.StyleLight)
	return t
}

// Metadata prints the document header table.
func (c *Console) Metadata(meta domain.DocumentMetadata) {
	c.section("Document Information")

	t := c.newTable()
	t.AppendHeader(table.Row{"Property", "Value"})
	t.AppendRows([]table.Row{
		{"Title", meta.Title},
		{"Created", domain.FormatTimestampString(meta.CreatedTime)},
		{"Last Modified", domain.FormatTimestampString(meta.ModifiedTime)},
		{"Owner", meta.Owner},
		{"Last Modified By", meta.LastModifier},
	})
	t.Render()
}

// WordGrowth prints the retained word-count series and its per-user
// rollup, and feeds both to the chart when one is attached.
func (c *Console) WordGrowth(points []domain.WordGrowthPoint, users []domain.WordUserStats) {
	if c.chart != nil {
		c.chart.SetWordGrowth(points)
	}
	if len(points) == 0 {
		return
	}

	c.section("Word Count History")

	t := c.newTable()
	t.AppendHeader(table.Row{"Timestamp", "Total Words", "Change", "User", "Email"})
	for _, p := range points {
		t.AppendRow(table.Row{
			domain.FormatTimestamp(p.Timestamp),
			humanize.Comma(int64(p.TotalWords)),
			fmt.Sprintf("%+d", p.WordChange),
			p.User,
			p.Email,
		})
	}
	t.Render()

	if len(users) == 0 {
		return
	}

	c.section("Word Contributions by User")

	t = c.newTable()
	t.AppendHeader(table.Row{"User", "Email", "Words Added", "Words Removed", "Net Words", "Edits", "Avg Words/Edit"})
	for _, u := range users {
		t.AppendRow(table.Row{
			u.User,
			u.Email,
			humanize.Comma(int64(u.WordsAdded)),
			humanize.Comma(int64(u.WordsRemoved)),
			fmt.Sprintf("%+d", u.NetWordsAdded),
			u.Edits,
			fmt.Sprintf("%.1f", u.AvgWordsPerEdit),
		})
	}
	t.Render()
}

// Contributions prints per-user revision statistics, busiest user first.
func (c *Console) Contributions(stats map[string]*domain.UserContribution) {
	if len(stats) == 0 {
		return
	}

	c.section("User Contributions")

	names := sortedKeys(stats, func(a, b string) bool {
		if stats[a].RevisionCount != stats[b].RevisionCount {
			return stats[a].RevisionCount > stats[b].RevisionCount
		}
		return a < b
	})

	t := c.newTable()
	t.AppendHeader(table.Row{"User", "Email", "Revisions", "First Edit", "Last Edit"})
	for _, name := range names {
		s := stats[name]
		t.AppendRow(table.Row{
			name,
			s.Email,
			s.RevisionCount,
			domain.FormatTimestamp(s.FirstModified),
			domain.FormatTimestamp(s.LastModified),
		})
	}
	t.Render()
}

// WordEstimates prints the heuristic per-actor word contribution
// estimate, largest first.
func (c *Console) WordEstimates(estimates map[string]int) {
	if len(estimates) == 0 {
		return
	}

	c.section("Estimated Word Contributions")

	actors := sortedKeys(estimates, func(a, b string) bool {
		if estimates[a] != estimates[b] {
			return estimates[a] > estimates[b]
		}
		return a < b
	})

	t := c.newTable()
	t.AppendHeader(table.Row{"User", "Estimated Words"})
	for _, actor := range actors {
		t.AppendRow(table.Row{actor, humanize.Comma(int64(estimates[actor]))})
	}
	t.Render()
	fmt.Fprintln(c.w, "Estimates are derived from edit activity weights, not actual text diffs.")
}

// Comments prints per-user comment statistics, most active first.
func (c *Console) Comments(stats map[string]*domain.CommentStats) {
	if len(stats) == 0 {
		return
	}

	c.section("Comment Activity")

	names := sortedKeys(stats, func(a, b string) bool {
		if stats[a].CommentsMade != stats[b].CommentsMade {
			return stats[a].CommentsMade > stats[b].CommentsMade
		}
		return a < b
	})

	t := c.newTable()
	t.AppendHeader(table.Row{"User", "Email", "Comments", "Replies", "Resolved"})
	for _, name := range names {
		s := stats[name]
		t.AppendRow(table.Row{name, s.Email, s.CommentsMade, s.RepliesMade, s.ResolvedComments})
	}
	t.Render()
}

// Historical prints the summary statistics table and feeds the daily
// series to the chart when one is attached.
func (c *Console) Historical(daily []domain.DailyMetrics, summary domain.SummaryStats) {
	if c.chart != nil {
		c.chart.SetDaily(daily)
	}

	c.section("Summary Statistics")

	t := c.newTable()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Total Edits", humanize.Comma(int64(summary.TotalEdits))},
		{"Total Comments", humanize.Comma(int64(summary.TotalComments))},
		{"Total Replies", humanize.Comma(int64(summary.TotalReplies))},
		{"Resolved Comments", humanize.Comma(int64(summary.TotalResolved))},
		{"Resolution Rate", percentColor.Sprintf("%.1f%%", summary.ResolutionRate)},
	})
	if summary.CurrentWordCount > 0 || summary.TotalWordChanges > 0 {
		t.AppendRows([]table.Row{
			{"Current Word Count", humanize.Comma(int64(summary.CurrentWordCount))},
			{"Total Word Changes", humanize.Comma(int64(summary.TotalWordChanges))},
			{"Avg Words per Edit", fmt.Sprintf("%.1f", summary.AvgWordsPerEdit)},
		})
	}
	t.Render()
}

// Flush writes the chart file when a chart is attached and has data.
func (c *Console) Flush() error {
	if c.chart == nil || !c.chart.HasData() {
		return nil
	}
	if err := c.chart.WriteFile(); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	logger.Info("chart written to %s", c.chart.Path())
	fmt.Fprintf(c.w, "\nInteractive charts written to %s\n", c.chart.Path())
	return nil
}

func sortedKeys[V any](m map[string]V, less func(a, b string) bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	return keys
}
