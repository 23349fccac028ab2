package main

import (
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

const spendChartHeight = 8

// renderSpendChart draws the trailing daily-spend totals as a braille
// line chart. Returns "" when there is nothing to draw so the stats pane
// can collapse the section.
func renderSpendChart(rows []purchase, width, days int, now time.Time) string {
	if width < 20 {
		return ""
	}
	dates, values := dailySpendSeries(rows, days, now)
	if len(dates) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		return ""
	}

	chart := tslc.New(width, spendChartHeight)
	chart.SetStyle(lipgloss.NewStyle().Foreground(colorPeach))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(colorSurface2)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	chart.SetTimeRange(dates[0], dates[len(dates)-1])
	chart.SetViewTimeRange(dates[0], dates[len(dates)-1])
	chart.SetYRange(0, maxVal)
	chart.SetViewYRange(0, maxVal)

	for i, d := range dates {
		chart.Push(tslc.TimePoint{Time: d, Value: values[i]})
	}

	chart.DrawBraille()
	return chart.View()
}
