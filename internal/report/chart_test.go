package report

import (
	"math"
	"testing"

	"paisa/internal/core"
)

func trendPoints(cents ...int64) []core.TrendPoint {
	out := make([]core.TrendPoint, 0, len(cents))
	for i, c := range cents {
		out = append(out, core.TrendPoint{
			Date:   core.NewDate(2024, 1, i+1),
			Amount: core.Money{Cents: c},
		})
	}
	return out
}

func TestBuildLineChartEmpty(t *testing.T) {
	chart := BuildLineChart(nil, 280, 120)
	if len(chart.Points) != 0 || len(chart.Segments) != 0 {
		t.Fatalf("empty series must produce empty geometry, got %+v", chart)
	}
	if chart.Width != 280 || chart.Height != 120 {
		t.Fatalf("box = %vx%v, want 280x120", chart.Width, chart.Height)
	}
}

func TestBuildLineChartFlatSeries(t *testing.T) {
	chart := BuildLineChart(trendPoints(500, 500, 500), 200, 100)

	for i, p := range chart.Points {
		if p.Y != 0 {
			t.Fatalf("point %d Y = %v, want baseline 0 for flat series", i, p.Y)
		}
	}
	for i, seg := range chart.Segments {
		if seg.Angle != 0 {
			t.Fatalf("segment %d angle = %v, want 0", i, seg.Angle)
		}
	}
}

func TestBuildLineChartGeometry(t *testing.T) {
	chart := BuildLineChart(trendPoints(0, 100), 100, 50)

	if len(chart.Points) != 2 || len(chart.Segments) != 1 {
		t.Fatalf("got %d points, %d segments, want 2, 1", len(chart.Points), len(chart.Segments))
	}

	p0, p1 := chart.Points[0], chart.Points[1]
	if p0.X != 0 || p0.Y != 0 {
		t.Fatalf("p0 = (%v, %v), want (0, 0)", p0.X, p0.Y)
	}
	if p1.X != 100 || p1.Y != 50 {
		t.Fatalf("p1 = (%v, %v), want (100, 50)", p1.X, p1.Y)
	}

	seg := chart.Segments[0]
	if seg.X != 0 || seg.Y != 0 || seg.Width != 100 {
		t.Fatalf("segment = %+v, want origin at p0 with width 100", seg)
	}
	wantAngle := math.Atan2(50, 100)
	if math.Abs(seg.Angle-wantAngle) > 1e-9 {
		t.Fatalf("angle = %v, want %v", seg.Angle, wantAngle)
	}
}

func TestBuildLineChartNormalizesAboveMin(t *testing.T) {
	chart := BuildLineChart(trendPoints(200, 300, 400), 200, 100)

	ys := []float64{chart.Points[0].Y, chart.Points[1].Y, chart.Points[2].Y}
	want := []float64{0, 50, 100}
	for i := range ys {
		if math.Abs(ys[i]-want[i]) > 1e-9 {
			t.Fatalf("Y[%d] = %v, want %v", i, ys[i], want[i])
		}
	}
}
