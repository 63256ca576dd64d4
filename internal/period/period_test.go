package period

import (
	"testing"
	"time"
)

func kst(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load Asia/Seoul: %v", err)
	}
	return loc
}

func TestDayKeyBeforeResetBelongsToPreviousDay(t *testing.T) {
	loc := kst(t)
	before := time.Date(2024, 3, 10, 5, 30, 0, 0, loc)
	after := time.Date(2024, 3, 10, 6, 0, 1, 0, loc)

	if got := DayKey(before, DefaultResetHour, loc); got != "2024-03-09" {
		t.Fatalf("day key before reset = %s, want 2024-03-09", got)
	}
	if got := DayKey(after, DefaultResetHour, loc); got != "2024-03-10" {
		t.Fatalf("day key after reset = %s, want 2024-03-10", got)
	}
}

func TestDayKeyOnlyAdvancesAtResetHour(t *testing.T) {
	loc := kst(t)
	prevEvening := time.Date(2024, 3, 9, 23, 59, 0, 0, loc)
	for hour := 0; hour < DefaultResetHour; hour++ {
		early := time.Date(2024, 3, 10, hour, 15, 0, 0, loc)
		if DayKey(early, DefaultResetHour, loc) != DayKey(prevEvening, DefaultResetHour, loc) {
			t.Fatalf("hour %d before reset should share the previous game day", hour)
		}
	}
}

func TestDayKeyUsesServerZoneNotLocal(t *testing.T) {
	loc := kst(t)
	// 2024-03-09T22:00:00Z is 2024-03-10T07:00 KST, past the reset.
	utc := time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC)
	if got := DayKey(utc, DefaultResetHour, loc); got != "2024-03-10" {
		t.Fatalf("day key from UTC instant = %s, want 2024-03-10", got)
	}
}

func TestWeekKeyStableAcrossWholeWeek(t *testing.T) {
	loc := kst(t)
	// 2024-03-04 is a Monday. Game days Mon..Sun share one ISO week.
	monday := time.Date(2024, 3, 4, 12, 0, 0, 0, loc)
	want := WeekKey(monday, DefaultResetHour, loc)
	if want != "2024-W10" {
		t.Fatalf("monday week key = %s, want 2024-W10", want)
	}
	for d := 0; d < 7; d++ {
		day := monday.AddDate(0, 0, d)
		if got := WeekKey(day, DefaultResetHour, loc); got != want {
			t.Fatalf("day %s week key = %s, want %s", day.Format("2006-01-02"), got, want)
		}
	}
	nextMonday := monday.AddDate(0, 0, 7)
	if got := WeekKey(nextMonday, DefaultResetHour, loc); got != "2024-W11" {
		t.Fatalf("next monday week key = %s, want 2024-W11", got)
	}
}

func TestWeekKeyChangesAtResetShiftedMonday(t *testing.T) {
	loc := kst(t)
	// Monday 2024-03-11 before 06:00 still belongs to Sunday's game
	// day, so it stays in the previous ISO week.
	earlyMonday := time.Date(2024, 3, 11, 4, 0, 0, 0, loc)
	if got := WeekKey(earlyMonday, DefaultResetHour, loc); got != "2024-W10" {
		t.Fatalf("pre-reset monday week key = %s, want 2024-W10", got)
	}
	lateMonday := time.Date(2024, 3, 11, 7, 0, 0, 0, loc)
	if got := WeekKey(lateMonday, DefaultResetHour, loc); got != "2024-W11" {
		t.Fatalf("post-reset monday week key = %s, want 2024-W11", got)
	}
}

func TestWeekKeyYearBoundaries(t *testing.T) {
	loc := kst(t)
	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		// 2024-12-31 (Tuesday) belongs to ISO week 1 of 2025.
		{"late december in next iso year", time.Date(2024, 12, 31, 12, 0, 0, 0, loc), "2025-W01"},
		// 2025-01-01 before reset is still game day 2024-12-31,
		// which is also 2025-W01.
		{"new year before reset", time.Date(2025, 1, 1, 3, 0, 0, 0, loc), "2025-W01"},
		// 2021-01-01 (Friday) belongs to ISO week 53 of 2020.
		{"early january in previous iso year", time.Date(2021, 1, 1, 12, 0, 0, 0, loc), "2020-W53"},
	}
	for _, tc := range cases {
		if got := WeekKey(tc.at, DefaultResetHour, loc); got != tc.want {
			t.Fatalf("%s: week key = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestDayKeyMonthBoundary(t *testing.T) {
	loc := kst(t)
	at := time.Date(2024, 4, 1, 2, 0, 0, 0, loc)
	if got := DayKey(at, DefaultResetHour, loc); got != "2024-03-31" {
		t.Fatalf("month boundary day key = %s, want 2024-03-31", got)
	}
}

func TestZeroResetHourMatchesCalendarDay(t *testing.T) {
	loc := kst(t)
	at := time.Date(2024, 3, 10, 0, 30, 0, 0, loc)
	if got := DayKey(at, 0, loc); got != "2024-03-10" {
		t.Fatalf("reset hour 0 day key = %s, want 2024-03-10", got)
	}
}
