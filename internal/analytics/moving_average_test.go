package analytics

import (
	"testing"
	"time"
)

func TestMovingAverage_Example(t *testing.T) {
	// Window 2 over 100, 110, 99: nil, 105.0, 104.5.
	points := MovingAverage(sampleSeries(), 2)
	if len(points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(points))
	}

	if points[0].MovingAverage != nil {
		t.Errorf("Expected nil moving average at index 0, got %v", *points[0].MovingAverage)
	}
	if points[1].MovingAverage == nil || *points[1].MovingAverage != 105.0 {
		t.Errorf("Expected moving average 105.0 at index 1, got %v", points[1].MovingAverage)
	}
	if points[2].MovingAverage == nil || *points[2].MovingAverage != 104.5 {
		t.Errorf("Expected moving average 104.5 at index 2, got %v", points[2].MovingAverage)
	}
}

func TestMovingAverage_DefinedIffFullWindow(t *testing.T) {
	s := make(Series, 10)
	for i := range s {
		s[i] = Observation{Date: day(2024, time.January, 1+i), Value: float64(i)}
	}

	window := 4
	points := MovingAverage(s, window)
	for i, p := range points {
		defined := p.MovingAverage != nil
		if want := i >= window-1; defined != want {
			t.Errorf("Index %d: defined=%v, want %v", i, defined, want)
		}
	}
}

func TestMovingAverage_WindowOne(t *testing.T) {
	points := MovingAverage(sampleSeries(), 1)
	for i, p := range points {
		if p.MovingAverage == nil {
			t.Fatalf("Index %d: expected defined moving average", i)
		}
		if *p.MovingAverage != p.Value {
			t.Errorf("Index %d: expected moving average %v to equal value, got %v", i, p.Value, *p.MovingAverage)
		}
	}
}

func TestMovingAverage_InvalidWindow(t *testing.T) {
	for _, window := range []int{0, -1, -30} {
		points := MovingAverage(sampleSeries(), window)
		if len(points) != 3 {
			t.Fatalf("Window %d: expected 3 points, got %d", window, len(points))
		}
		for i, p := range points {
			if p.MovingAverage != nil {
				t.Errorf("Window %d, index %d: expected nil moving average, got %v", window, i, *p.MovingAverage)
			}
		}
	}
}

func TestMovingAverage_WindowLargerThanSeries(t *testing.T) {
	points := MovingAverage(sampleSeries(), 30)
	for i, p := range points {
		if p.MovingAverage != nil {
			t.Errorf("Index %d: expected nil moving average for oversized window, got %v", i, *p.MovingAverage)
		}
	}
}

func TestMovingAverage_Empty(t *testing.T) {
	points := MovingAverage(Series{}, 5)
	if len(points) != 0 {
		t.Errorf("Expected empty result, got %d points", len(points))
	}
}

func TestMovingAverage_CountsRowsNotDays(t *testing.T) {
	// Irregular series with a calendar gap: the window spans rows as stored.
	s := Series{
		{Date: day(2024, time.January, 1), Value: 10},
		{Date: day(2024, time.January, 2), Value: 20},
		{Date: day(2024, time.January, 20), Value: 30},
	}
	points := MovingAverage(s, 3)
	if points[2].MovingAverage == nil || *points[2].MovingAverage != 20 {
		t.Errorf("Expected moving average 20 across the gap, got %v", points[2].MovingAverage)
	}
}

func TestMovingAverage_SortsByDate(t *testing.T) {
	s := Series{
		{Date: day(2024, time.January, 3), Value: 99},
		{Date: day(2024, time.January, 1), Value: 100},
		{Date: day(2024, time.January, 2), Value: 110},
	}
	points := MovingAverage(s, 2)
	if !points[0].Date.Equal(day(2024, time.January, 1)) {
		t.Fatalf("Expected points sorted by date, first is %v", points[0].Date)
	}
	if points[1].MovingAverage == nil || *points[1].MovingAverage != 105.0 {
		t.Errorf("Expected moving average 105.0 at index 1, got %v", points[1].MovingAverage)
	}
}
