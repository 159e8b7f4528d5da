package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ratescope/ratescope/internal/analytics"
	"github.com/ratescope/ratescope/internal/logging"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// stubRepo is an in-memory SeriesRepository for service tests.
type stubRepo struct {
	series  analytics.Series
	loadErr error
	saveErr error
	saved   analytics.Series
}

func (r *stubRepo) Load() (analytics.Series, error) {
	return r.series, r.loadErr
}

func (r *stubRepo) Save(s analytics.Series) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = s
	return nil
}

func newTestService(series analytics.Series) (*RateService, *stubRepo) {
	repo := &stubRepo{series: series}
	return NewRateService(logging.NewDevelopment(), repo), repo
}

func threeDays() analytics.Series {
	return analytics.Series{
		{Date: day(2024, time.January, 1), Value: 100},
		{Date: day(2024, time.January, 2), Value: 110},
		{Date: day(2024, time.January, 3), Value: 99},
	}
}

func assertServiceError(t *testing.T, err error, code string) {
	t.Helper()
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("Expected ServiceError, got %v", err)
	}
	if svcErr.Code != code {
		t.Errorf("Expected code %s, got %s", code, svcErr.Code)
	}
}

func TestRateService_GetSeries(t *testing.T) {
	svc, _ := newTestService(threeDays())

	got, err := svc.GetSeries("2024-01-02", "")
	if err != nil {
		t.Fatalf("GetSeries failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected 2 observations, got %d", len(got))
	}
}

func TestRateService_GetSeries_MalformedBoundIgnored(t *testing.T) {
	svc, _ := newTestService(threeDays())

	// An unparseable bound is treated as unset, not an error.
	got, err := svc.GetSeries("not-a-date", "")
	if err != nil {
		t.Fatalf("GetSeries failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected full series, got %d observations", len(got))
	}
}

func TestRateService_GetSeries_NoData(t *testing.T) {
	svc, _ := newTestService(threeDays())

	_, err := svc.GetSeries("2025-01-01", "")
	assertServiceError(t, err, CodeNoData)
}

func TestRateService_GetSeries_LoadFailure(t *testing.T) {
	repo := &stubRepo{loadErr: errors.New("disk gone")}
	svc := NewRateService(logging.NewDevelopment(), repo)

	_, err := svc.GetSeries("", "")
	assertServiceError(t, err, CodeLoadFailed)
}

func TestRateService_GetStatistics(t *testing.T) {
	svc, _ := newTestService(threeDays())

	stats, err := svc.GetStatistics("", "")
	if err != nil {
		t.Fatalf("GetStatistics failed: %v", err)
	}
	if stats.Count != 3 || stats.Min != 99 || stats.Max != 110 {
		t.Errorf("Unexpected statistics: %+v", stats)
	}
	if math.Abs(stats.ChangePct-(-1.0)) > 1e-9 {
		t.Errorf("Expected change_pct -1.0, got %v", stats.ChangePct)
	}
}

func TestRateService_GetStatistics_EmptyRange(t *testing.T) {
	svc, _ := newTestService(threeDays())

	_, err := svc.GetStatistics("2030-01-01", "2030-12-31")
	assertServiceError(t, err, CodeNoData)
}

func TestRateService_GetMovingAverage(t *testing.T) {
	svc, _ := newTestService(threeDays())

	points, err := svc.GetMovingAverage(2, "", "")
	if err != nil {
		t.Fatalf("GetMovingAverage failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(points))
	}
	if points[0].MovingAverage != nil {
		t.Error("Expected nil moving average at index 0")
	}
	if points[1].MovingAverage == nil || *points[1].MovingAverage != 105 {
		t.Errorf("Expected 105 at index 1, got %v", points[1].MovingAverage)
	}
}

func TestRateService_GetMovingAverage_InvalidWindow(t *testing.T) {
	svc, _ := newTestService(threeDays())

	// window <= 0 is a caller error: every average is undefined, no failure.
	points, err := svc.GetMovingAverage(0, "", "")
	if err != nil {
		t.Fatalf("GetMovingAverage failed: %v", err)
	}
	for i, p := range points {
		if p.MovingAverage != nil {
			t.Errorf("Index %d: expected nil moving average", i)
		}
	}
}

func TestRateService_GetVariations(t *testing.T) {
	svc, _ := newTestService(threeDays())

	got, err := svc.GetVariations(5.0, "", "")
	if err != nil {
		t.Fatalf("GetVariations failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected 2 variations, got %d", len(got))
	}
}

func TestRateService_GetVariations_NoneAboveThreshold(t *testing.T) {
	svc, _ := newTestService(threeDays())

	// A quiet range is an empty list, not NO_DATA.
	got, err := svc.GetVariations(50.0, "", "")
	if err != nil {
		t.Fatalf("GetVariations failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no variations, got %d", len(got))
	}
}

func TestRateService_GetChartData(t *testing.T) {
	svc, _ := newTestService(threeDays())

	chart, err := svc.GetChartData("", "")
	if err != nil {
		t.Fatalf("GetChartData failed: %v", err)
	}
	if chart.Min.Value != 99 || chart.Max.Value != 110 {
		t.Errorf("Unexpected annotations: min %+v max %+v", chart.Min, chart.Max)
	}
	if len(chart.Points) != 3 {
		t.Errorf("Expected 3 points, got %d", len(chart.Points))
	}
}

func TestRateService_GetDateRange(t *testing.T) {
	svc, _ := newTestService(threeDays())

	min, max, err := svc.GetDateRange()
	if err != nil {
		t.Fatalf("GetDateRange failed: %v", err)
	}
	if !min.Equal(day(2024, time.January, 1)) || !max.Equal(day(2024, time.January, 3)) {
		t.Errorf("Unexpected range: %v .. %v", min, max)
	}
}

func TestRateService_GetDateRange_Empty(t *testing.T) {
	svc, _ := newTestService(analytics.Series{})

	_, _, err := svc.GetDateRange()
	assertServiceError(t, err, CodeNoData)
}

func TestRateService_UpdateData(t *testing.T) {
	svc, repo := newTestService(nil)

	newData := analytics.Series{{Date: day(2024, time.February, 1), Value: 4200}}
	if err := svc.UpdateData(newData); err != nil {
		t.Fatalf("UpdateData failed: %v", err)
	}
	if len(repo.saved) != 1 || repo.saved[0].Value != 4200 {
		t.Errorf("Unexpected saved series: %+v", repo.saved)
	}
}

func TestRateService_UpdateData_SaveFailure(t *testing.T) {
	repo := &stubRepo{saveErr: errors.New("read-only fs")}
	svc := NewRateService(logging.NewDevelopment(), repo)

	err := svc.UpdateData(analytics.Series{{Date: day(2024, time.February, 1), Value: 1}})
	assertServiceError(t, err, CodeSaveFailed)
}
