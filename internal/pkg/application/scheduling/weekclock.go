package scheduling

import (
	"fmt"
	"time"

	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 1440
	MinutesPerWeek = 10080
)

var ErrOutOfWeekRange = fmt.Errorf("minute offset is outside of the week")

var weekdays = []types.Weekday{
	types.Monday, types.Tuesday, types.Wednesday, types.Thursday, types.Friday, types.Saturday, types.Sunday,
}

// WeekdayToInt maps monday..sunday to 0..6. Everyday, and anything unknown, maps to -1.
func WeekdayToInt(w types.Weekday) int {
	for i, d := range weekdays {
		if d == w {
			return i
		}
	}
	return -1
}

// IntToWeekday is the inverse of WeekdayToInt. Values outside 0..6 map to Everyday.
func IntToWeekday(day int) types.Weekday {
	if day < 0 || day > 6 {
		return types.Everyday
	}
	return weekdays[day]
}

func MinutesSinceWeekStart(w types.Weekday, hour, minute int) int {
	return WeekdayToInt(w)*MinutesPerDay + hour*MinutesPerHour + minute
}

func WeekTimeFromMinutes(minutes int) (types.WeekTime, error) {
	if minutes < 0 || minutes >= MinutesPerWeek {
		return types.WeekTime{}, fmt.Errorf("%w: %d", ErrOutOfWeekRange, minutes)
	}

	day := minutes / MinutesPerDay
	rest := minutes - day*MinutesPerDay

	return types.WeekTime{
		Weekday: IntToWeekday(day),
		Hour:    rest / MinutesPerHour,
		Minute:  rest % MinutesPerHour,
	}, nil
}

// CurrentWeekday returns the monday based weekday of now.
func CurrentWeekday(now time.Time) types.Weekday {
	// time.Weekday is sunday based
	return IntToWeekday((int(now.Weekday()) + 6) % 7)
}

func minutesOf(now time.Time) int {
	return MinutesSinceWeekStart(CurrentWeekday(now), now.Hour(), now.Minute())
}
