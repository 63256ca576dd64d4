// Package period derives game-relative period keys. Heartopia's Asia
// server day rolls over at a fixed reset hour (06:00 KST), not at
// midnight, so an instant before the reset hour still belongs to the
// previous game day. All keys are derived in one fixed server zone so
// every player of the same server shares period boundaries.
package period

import (
	"fmt"
	"time"
)

// DefaultResetHour is the Asia server daily reset hour.
const DefaultResetHour = 6

// DefaultZoneName is the Asia server zone. It has no DST, so the reset
// shift is a plain hour subtraction.
const DefaultZoneName = "Asia/Seoul"

// ServerZone loads the default server zone, falling back to a fixed
// +09:00 offset when the tz database is unavailable.
func ServerZone() *time.Location {
	loc, err := time.LoadLocation(DefaultZoneName)
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// DayKey returns the YYYY-MM-DD key of the game day containing t.
// Instants between midnight and resetHour map to the previous
// calendar day.
func DayKey(t time.Time, resetHour int, loc *time.Location) string {
	shifted := resetShift(t, resetHour, loc)
	return shifted.Format("2006-01-02")
}

// WeekKey returns the YYYY-Www ISO-8601 week key of the game day
// containing t. The week is Thursday-anchored: the key's year is the
// year of the Thursday in the same ISO week as the reset-shifted date.
func WeekKey(t time.Time, resetHour int, loc *time.Location) string {
	shifted := resetShift(t, resetHour, loc)
	year, week := isoWeek(shifted)
	return fmt.Sprintf("%04d-W%02d", year, week)
}

func resetShift(t time.Time, resetHour int, loc *time.Location) time.Time {
	return t.In(loc).Add(-time.Duration(resetHour) * time.Hour)
}

// isoWeek computes the ISO week explicitly: shift the date to the
// Thursday of its week (Monday=1..Sunday=7), then the week number is
// ceil((daysSinceJan1OfThatYear + 1) / 7).
func isoWeek(t time.Time) (year int, week int) {
	dayNum := int(t.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}
	thursday := t.AddDate(0, 0, 4-dayNum)
	return thursday.Year(), (thursday.YearDay() + 6) / 7
}
