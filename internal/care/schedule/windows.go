package schedule

import (
	"time"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

// Window is a calendar date range, inclusive of both endpoint dates.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether the date of t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	d := TruncateToDay(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// SeasonWindows are the four named planting-season ranges derived from a
// climate profile's frost calendar for one target year. The dormant window
// deliberately runs past New Year: its end is last frost − 46 days + 365 days,
// an absolute instant in the following year. Do not normalize it modulo the
// calendar year; early-January dates belong to the previous year's dormant
// range and are handled by InAnyCoolWindow.
type SeasonWindows struct {
	SpringCool Window `json:"spring_cool"`
	Warm       Window `json:"warm"`
	FallCool   Window `json:"fall_cool"`
	Dormant    Window `json:"dormant"`
}

// ComputeWindows derives the four season windows for the target year.
func ComputeWindows(p domain.ClimateProfile, year int) SeasonWindows {
	lastFrost := DateFromDOY(year, p.LastFrostDOY)
	firstFrost := DateFromDOY(year, p.FirstFrostDOY)

	return SeasonWindows{
		SpringCool: Window{
			Start: AddDays(lastFrost, -45),
			End:   AddDays(lastFrost, 30),
		},
		Warm: Window{
			Start: AddDays(lastFrost, 31),
			End:   AddDays(firstFrost, -45),
		},
		FallCool: Window{
			Start: AddDays(firstFrost, -44),
			End:   AddDays(firstFrost, 15),
		},
		Dormant: Window{
			Start: AddDays(firstFrost, 16),
			End:   AddDays(lastFrost, -46+365),
		},
	}
}

// InAnyCoolWindow reports whether t falls in springCool, fallCool or dormant.
// Dates early in the year can fall in none of the four windows, because the
// dormant range covering them belongs to the previous year's calendar.
func (sw SeasonWindows) InAnyCoolWindow(t time.Time) bool {
	return sw.SpringCool.Contains(t) || sw.FallCool.Contains(t) || sw.Dormant.Contains(t)
}
