package scheduling

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/matryer/is"

	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

// 2023-03-06 was a monday
var mondayMorning = time.Date(2023, 3, 6, 9, 45, 0, 0, time.UTC)

func slot(id string, day types.Weekday, hour, minute int) types.Slot {
	return types.Slot{ID: id, PlantID: "plant", Weekday: day, Hour: hour, Minute: minute}
}

func TestNextSlotsTodayFiltersAndSorts(t *testing.T) {
	is := is.New(t)

	slots := []types.Slot{
		slot("a", types.Monday, 10, 0),
		slot("b", types.Monday, 9, 30),
		slot("c", types.Tuesday, 8, 0),
		slot("d", types.Everyday, 9, 50),
		slot("e", types.Monday, 9, 45),
	}

	today := NextSlotsToday(mondayMorning, slots)
	is.Equal(3, len(today))
	is.Equal("e", today[0].ID)
	is.Equal("d", today[1].ID)
	is.Equal("a", today[2].ID)
}

func TestNextSlotPicksTheEarliestRemainingSlot(t *testing.T) {
	is := is.New(t)

	slots := []types.Slot{
		slot("a", types.Monday, 10, 0),
		slot("b", types.Monday, 9, 30),
		slot("c", types.Tuesday, 8, 0),
	}

	next, ok := NextSlot(mondayMorning, slots)
	is.True(ok)
	is.Equal("a", next.ID)
}

func TestNextSlotWhenNothingIsLeftToday(t *testing.T) {
	is := is.New(t)

	_, ok := NextSlot(mondayMorning, []types.Slot{slot("b", types.Monday, 9, 30)})
	is.True(!ok)

	is.Equal(0, len(NextSlotsToday(mondayMorning, nil)))
}

func TestIsDueNowRequiresAnExactMinute(t *testing.T) {
	is := is.New(t)

	s := slot("a", types.Monday, 9, 45)
	is.True(IsDueNow(s, mondayMorning))
	is.True(IsDueNow(s, mondayMorning.Add(30*time.Second)))
	is.True(!IsDueNow(s, mondayMorning.Add(time.Minute)))
}

func TestActiveSlotKind(t *testing.T) {
	is := is.New(t)

	kind, err := ActiveSlotKind(types.IrrigationTypeTime)
	is.NoErr(err)
	is.Equal(types.TimeSlots, kind)

	kind, err = ActiveSlotKind(types.IrrigationTypePeriod)
	is.NoErr(err)
	is.Equal(types.PeriodSlots, kind)

	_, err = ActiveSlotKind(types.IrrigationType("sometimes"))
	is.True(errors.Is(err, ErrUnknownIrrigationType))
}

func TestNextOccurrenceWrapsAroundTheWeek(t *testing.T) {
	is := is.New(t)

	sunday := time.Date(2023, 3, 12, 23, 0, 0, 0, time.UTC)
	next, at, ok := NextOccurrence(sunday, []types.Slot{
		slot("a", types.Monday, 8, 0),
		slot("b", types.Saturday, 8, 0),
	})

	is.True(ok)
	is.Equal("a", next.ID)
	is.Equal(time.Date(2023, 3, 13, 8, 0, 0, 0, time.UTC), at)
}

func TestNextOccurrenceExpandsEverydaySlots(t *testing.T) {
	is := is.New(t)

	next, at, ok := NextOccurrence(mondayMorning, []types.Slot{
		slot("a", types.Friday, 8, 0),
		slot("b", types.Everyday, 7, 0),
	})

	is.True(ok)
	is.Equal("b", next.ID)
	is.Equal(time.Date(2023, 3, 7, 7, 0, 0, 0, time.UTC), at)

	_, _, ok = NextOccurrence(mondayMorning, nil)
	is.True(!ok)
}

func TestNextOccurrenceKeepsWallClockAcrossDaylightSaving(t *testing.T) {
	is := is.New(t)

	stockholm, err := time.LoadLocation("Europe/Stockholm")
	is.NoErr(err)

	// summer time starts during the night to sunday 2023-03-26
	saturday := time.Date(2023, 3, 25, 12, 0, 0, 0, stockholm)

	next, at, ok := NextOccurrence(saturday, []types.Slot{slot("a", types.Sunday, 12, 0)})
	is.True(ok)
	is.Equal("a", next.ID)
	is.Equal(time.Date(2023, 3, 26, 12, 0, 0, 0, stockholm), at)
	is.Equal(12, at.Hour())
	is.Equal(23*time.Hour, at.Sub(saturday))
}

func TestNextOccurrenceOnTheSameMinuteIsNow(t *testing.T) {
	is := is.New(t)

	_, at, ok := NextOccurrence(mondayMorning, []types.Slot{slot("a", types.Monday, 9, 45)})
	is.True(ok)
	is.Equal(mondayMorning, at)

	_, at, _ = NextOccurrence(mondayMorning, []types.Slot{slot("b", types.Monday, 9, 44)})
	is.Equal(time.Date(2023, 3, 13, 9, 44, 0, 0, time.UTC), at)
}
