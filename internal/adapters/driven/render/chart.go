package render

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
)

const (
	chartWidth  = "900px"
	chartHeight = "400px"
)

// Chart accumulates the daily metrics series and the word growth
// series across report stages and renders them as a single HTML page
// of interactive panels.
type Chart struct {
	path   string
	daily  []domain.DailyMetrics
	growth []domain.WordGrowthPoint
}

// NewChart returns a chart that WriteFile will save at path.
func NewChart(path string) *Chart {
	return &Chart{path: path}
}

// Path returns the output file path.
func (c *Chart) Path() string { return c.path }

// SetDaily stores the dense daily metrics series.
func (c *Chart) SetDaily(daily []domain.DailyMetrics) { c.daily = daily }

// SetWordGrowth stores the retained word growth series.
func (c *Chart) SetWordGrowth(points []domain.WordGrowthPoint) { c.growth = points }

// HasData reports whether any series has been collected.
func (c *Chart) HasData() bool {
	return len(c.daily) > 0 || len(c.growth) > 0
}

// Render writes the chart page HTML to w.
func (c *Chart) Render(w io.Writer) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	if len(c.daily) > 0 {
		labels := make([]string, len(c.daily))
		edits := make([]opts.LineData, len(c.daily))
		comments := make([]opts.LineData, len(c.daily))
		replies := make([]opts.LineData, len(c.daily))
		resolved := make([]opts.LineData, len(c.daily))
		for i, d := range c.daily {
			labels[i] = d.Date.Format("2006-01-02")
			edits[i] = opts.LineData{Value: d.Edits}
			comments[i] = opts.LineData{Value: d.Comments}
			replies[i] = opts.LineData{Value: d.Replies}
			resolved[i] = opts.LineData{Value: d.Resolved}
		}

		page.AddCharts(
			dailyLine("Daily Edits", "Edits", labels, edits),
			dailyLine("Daily Comments", "Comments", labels, comments),
			dailyLine("Daily Replies", "Replies", labels, replies),
			dailyLine("Daily Resolved Comments", "Resolved", labels, resolved),
		)
	}

	if len(c.growth) > 0 {
		labels := make([]string, len(c.growth))
		totals := make([]opts.LineData, len(c.growth))
		changes := make([]opts.BarData, len(c.growth))
		for i, p := range c.growth {
			labels[i] = domain.FormatTimestamp(p.Timestamp)
			totals[i] = opts.LineData{Value: p.TotalWords}
			changes[i] = opts.BarData{Value: p.WordChange}
		}

		page.AddCharts(
			growthLine(labels, totals),
			changeBar(labels, changes),
		)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render chart page: %w", err)
	}
	return nil
}

// WriteFile renders the page to the configured path.
func (c *Chart) WriteFile() error {
	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.path, err)
	}
	defer f.Close()

	if err := c.Render(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.path, err)
	}
	return nil
}

func dailyLine(title, seriesName string, labels []string, data []opts.LineData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: seriesName}),
	)
	line.SetXAxis(labels)
	line.AddSeries(seriesName, data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)
	return line
}

func growthLine(labels []string, data []opts.LineData) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Document Word Count Over Time"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Revision"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total Words"}),
	)
	line.SetXAxis(labels)
	line.AddSeries("Total Words", data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.2)}),
	)
	return line
}

func changeBar(labels []string, data []opts.BarData) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Word Changes per Retained Revision"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Revision"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Word Change"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("Word Change", data)
	return bar
}
