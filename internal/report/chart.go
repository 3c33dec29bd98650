package report

import (
	"math"

	"paisa/internal/core"
)

// LineChart is the precomputed geometry of the trend chart: one marker per
// point and one connecting segment between consecutive points. Values are
// normalized linearly between the series min and max into the chart height;
// the client only has to place absolutely positioned views.
type LineChart struct {
	Width    float64
	Height   float64
	Points   []ChartPoint
	Segments []ChartSegment
}

// ChartPoint is a marker position. Y grows upward from the chart baseline.
type ChartPoint struct {
	X float64
	Y float64
}

// ChartSegment connects a point to its successor. Angle is the rotation in
// radians computed from the vertical delta over the fixed horizontal spacing.
type ChartSegment struct {
	X     float64
	Y     float64
	Width float64
	Angle float64
}

// BuildLineChart lays out a trend series inside a width x height box.
// A flat series (min == max) renders on the baseline.
func BuildLineChart(series []core.TrendPoint, width, height float64) LineChart {
	chart := LineChart{Width: width, Height: height}
	if len(series) == 0 {
		return chart
	}

	minV, maxV := series[0].Amount.Cents, series[0].Amount.Cents
	for _, p := range series[1:] {
		if p.Amount.Cents < minV {
			minV = p.Amount.Cents
		}
		if p.Amount.Cents > maxV {
			maxV = p.Amount.Cents
		}
	}
	valueRange := maxV - minV
	if valueRange == 0 {
		valueRange = 1
	}

	spacing := width
	if len(series) > 1 {
		spacing = width / float64(len(series)-1)
	}

	for i, p := range series {
		x := float64(i) * spacing
		y := float64(p.Amount.Cents-minV) / float64(valueRange) * height
		chart.Points = append(chart.Points, ChartPoint{X: x, Y: y})
	}

	for i := 0; i+1 < len(chart.Points); i++ {
		cur, next := chart.Points[i], chart.Points[i+1]
		chart.Segments = append(chart.Segments, ChartSegment{
			X:     cur.X,
			Y:     cur.Y,
			Width: spacing,
			Angle: math.Atan2(next.Y-cur.Y, spacing),
		})
	}
	return chart
}
