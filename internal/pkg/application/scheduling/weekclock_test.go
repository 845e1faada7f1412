package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

func TestWeekdayConversions(t *testing.T) {
	is := is.New(t)

	is.Equal(0, WeekdayToInt(types.Monday))
	is.Equal(6, WeekdayToInt(types.Sunday))
	is.Equal(-1, WeekdayToInt(types.Everyday))
	is.Equal(-1, WeekdayToInt(types.Weekday("caturday")))

	is.Equal(types.Monday, IntToWeekday(0))
	is.Equal(types.Sunday, IntToWeekday(6))
	is.Equal(types.Everyday, IntToWeekday(7))
	is.Equal(types.Everyday, IntToWeekday(-1))
}

func TestWeekTimeFromMinutesAtTheEdgesOfTheWeek(t *testing.T) {
	is := is.New(t)

	wt, err := WeekTimeFromMinutes(0)
	is.NoErr(err)
	is.Equal(types.WeekTime{Weekday: types.Monday, Hour: 0, Minute: 0}, wt)

	wt, err = WeekTimeFromMinutes(10079)
	is.NoErr(err)
	is.Equal(types.WeekTime{Weekday: types.Sunday, Hour: 23, Minute: 59}, wt)

	_, err = WeekTimeFromMinutes(10080)
	is.True(errors.Is(err, ErrOutOfWeekRange))

	_, err = WeekTimeFromMinutes(-1)
	is.True(errors.Is(err, ErrOutOfWeekRange))
}

func TestWeekTimeRoundTrip(t *testing.T) {
	is := is.New(t)

	for m := 0; m < MinutesPerWeek; m++ {
		wt, err := WeekTimeFromMinutes(m)
		is.NoErr(err)
		is.Equal(m, MinutesSinceWeekStart(wt.Weekday, wt.Hour, wt.Minute))
	}
}

func TestCurrentWeekdayIsMondayBased(t *testing.T) {
	is := is.New(t)

	// 2023-03-05 was a sunday
	is.Equal(types.Sunday, CurrentWeekday(time.Date(2023, 3, 5, 12, 0, 0, 0, time.UTC)))
	is.Equal(types.Monday, CurrentWeekday(time.Date(2023, 3, 6, 12, 0, 0, 0, time.UTC)))
}
