package dashboard

import (
	"testing"
	"time"
)

func expectDayBounds(t *testing.T, start, end, day time.Time) {
	t.Helper()
	wantStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	wantEnd := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999_000_000, day.Location())
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestResolveDateRangeToday(t *testing.T) {
	start, end := ResolveDateRange("today", "")
	expectDayBounds(t, start, end, time.Now())
}

func TestResolveDateRangeYesterday(t *testing.T) {
	start, end := ResolveDateRange("yesterday", "")
	expectDayBounds(t, start, end, time.Now().AddDate(0, 0, -1))
}

func TestResolveDateRangeThisWeek(t *testing.T) {
	start, end := ResolveDateRange("this-week", "")

	if start.Weekday() != time.Sunday {
		t.Errorf("hafta başlangıcı = %v, want Sunday", start.Weekday())
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("hafta başlangıcı gün başında olmalı: %v", start)
	}

	now := time.Now()
	wantEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999_000_000, now.Location())
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestResolveDateRangeCustom(t *testing.T) {
	start, end := ResolveDateRange("custom", "2025-03-10")
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	expectDayBounds(t, start, end, day)
}

func TestResolveDateRangeCustomWithoutDate(t *testing.T) {
	// Tarih verilmemişse bugüne düşer
	start, end := ResolveDateRange("custom", "")
	expectDayBounds(t, start, end, time.Now())
}

func TestResolveDateRangeAll(t *testing.T) {
	start, end := ResolveDateRange("all", "")
	if start.Year() != 2000 || start.Month() != time.January || start.Day() != 1 {
		t.Errorf("start = %v", start)
	}
	if end.Year() != 2099 || end.Month() != time.December || end.Day() != 31 {
		t.Errorf("end = %v", end)
	}
}

func TestResolveDateRangeUnknownFilter(t *testing.T) {
	start, end := ResolveDateRange("gecen-yuzyil", "")
	expectDayBounds(t, start, end, time.Now())
}
