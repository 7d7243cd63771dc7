package valueobject

import (
	"testing"
	"time"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name          string
		page, limit   int
		expectedPage  int
		expectedLimit int
	}{
		{name: "defaults", page: 0, limit: 0, expectedPage: 1, expectedLimit: 10},
		{name: "negative values", page: -3, limit: -1, expectedPage: 1, expectedLimit: 10},
		{name: "explicit values", page: 3, limit: 25, expectedPage: 3, expectedLimit: 25},
		{name: "limit capped", page: 1, limit: 500, expectedPage: 1, expectedLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit)
			if p.Page != tt.expectedPage {
				t.Errorf("expected page %d, got %d", tt.expectedPage, p.Page)
			}
			if p.Limit != tt.expectedLimit {
				t.Errorf("expected limit %d, got %d", tt.expectedLimit, p.Limit)
			}
		})
	}
}

func TestPagination_OffsetAndTotalPages(t *testing.T) {
	p := NewPagination(3, 20)

	if got := p.Offset(); got != 40 {
		t.Errorf("expected offset 40, got %d", got)
	}

	cases := map[int64]int{0: 0, 1: 1, 20: 1, 21: 2, 100: 5}
	for total, want := range cases {
		if got := p.TotalPages(total); got != want {
			t.Errorf("TotalPages(%d): expected %d, got %d", total, want, got)
		}
	}
}

func TestTrailingMonths(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	months := TrailingMonths(now, 6)

	if len(months) != 6 {
		t.Fatalf("expected 6 months, got %d", len(months))
	}
	expected := []time.Month{time.October, time.November, time.December, time.January, time.February, time.March}
	for i, m := range months {
		if m.Month() != expected[i] || m.Day() != 1 {
			t.Errorf("month %d: expected 1 %s, got %s", i, expected[i], m.Format("2006-01-02"))
		}
	}
	if months[0].Year() != 2023 || months[5].Year() != 2024 {
		t.Errorf("unexpected years: %d..%d", months[0].Year(), months[5].Year())
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.February)

	if start.Format("2006-01-02") != "2024-02-01" {
		t.Errorf("unexpected start %s", start)
	}
	if end.Format("2006-01-02") != "2024-02-29" {
		t.Errorf("unexpected end %s", end)
	}
}
