package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

var ErrUnknownIrrigationType = fmt.Errorf("unknown irrigation type")

// ActiveSlotKind selects the slot set that governs a plant with the given irrigation type.
func ActiveSlotKind(t types.IrrigationType) (types.SlotKind, error) {
	switch t {
	case types.IrrigationTypeTime:
		return types.TimeSlots, nil
	case types.IrrigationTypePeriod:
		return types.PeriodSlots, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIrrigationType, t)
}

func matchesToday(s types.Slot, now time.Time) bool {
	return s.Weekday == types.Everyday || s.Weekday == CurrentWeekday(now)
}

func notYetPassed(s types.Slot, now time.Time) bool {
	return s.Hour > now.Hour() || (s.Hour == now.Hour() && s.Minute >= now.Minute())
}

func sortByTimeOfDay(slots []types.Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Hour != slots[j].Hour {
			return slots[i].Hour < slots[j].Hour
		}
		return slots[i].Minute < slots[j].Minute
	})
}

// NextSlotsToday returns the slots that fall on the weekday of now, or on
// every day, and that have not passed yet, earliest first.
func NextSlotsToday(now time.Time, slots []types.Slot) []types.Slot {
	today := lo.Filter(slots, func(s types.Slot, _ int) bool {
		return matchesToday(s, now) && notYetPassed(s, now)
	})

	sortByTimeOfDay(today)

	return today
}

func NextSlot(now time.Time, slots []types.Slot) (types.Slot, bool) {
	today := NextSlotsToday(now, slots)
	if len(today) == 0 {
		return types.Slot{}, false
	}
	return today[0], true
}

// IsDueNow matches on hour and minute only. A device that polls less than
// once a minute may miss a slot.
func IsDueNow(s types.Slot, now time.Time) bool {
	return s.Hour == now.Hour() && s.Minute == now.Minute()
}

// NextOccurrence finds the first slot at or after now anywhere in the week,
// wrapping around into the next week, and returns it with its absolute time
// in the location of now. Slots are wall clock times, so the returned time
// keeps the slot's hour and minute across daylight saving changes.
func NextOccurrence(now time.Time, slots []types.Slot) (types.Slot, time.Time, bool) {
	if len(slots) == 0 {
		return types.Slot{}, time.Time{}, false
	}

	current := minutesOf(now)
	best := -1
	var next types.Slot

	for _, s := range slots {
		for _, offset := range slotOffsets(s) {
			wait := offset - current
			if wait < 0 {
				wait += MinutesPerWeek
			}
			if best < 0 || wait < best {
				best = wait
				next = s
			}
		}
	}

	days := (current+best)/MinutesPerDay - current/MinutesPerDay
	y, m, d := now.Date()
	at := time.Date(y, m, d+days, next.Hour, next.Minute, 0, 0, now.Location())

	return next, at, true
}

func slotOffsets(s types.Slot) []int {
	if s.Weekday != types.Everyday {
		return []int{MinutesSinceWeekStart(s.Weekday, s.Hour, s.Minute)}
	}

	return lo.Map(weekdays, func(d types.Weekday, _ int) int {
		return MinutesSinceWeekStart(d, s.Hour, s.Minute)
	})
}
