package scheduling

import (
	"time"

	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

type Reason string

const (
	ReasonNothingToday  Reason = "nothing-scheduled-today"
	ReasonScheduleOnly  Reason = "no-moisture-data"
	ReasonDrySoilAuto   Reason = "dry-soil-auto-irrigation"
	ReasonDrySoilOnSlot Reason = "dry-soil-scheduled"
	ReasonMoistEnough   Reason = "moist-enough"
)

type Decision struct {
	Irrigate bool
	Reason   Reason
	Next     *types.Slot
}

// Decide evaluates, in order, whether anything is left today, whether there is
// any moisture data, whether dry soil overrides the schedule, and whether dry
// soil coincides with the next slot.
func Decide(plant types.Plant, now time.Time, latest *types.MoistureRecord, slots []types.Slot) Decision {
	next, ok := NextSlot(now, slots)
	if !ok {
		return Decision{Irrigate: false, Reason: ReasonNothingToday}
	}

	d := Decision{Next: &next}

	if latest == nil {
		d.Irrigate = IsDueNow(next, now)
		d.Reason = ReasonScheduleOnly
		return d
	}

	dry := latest.Percentage <= plant.MoisturePercentageThreshold

	switch {
	case dry && plant.AutoIrrigation:
		d.Irrigate = true
		d.Reason = ReasonDrySoilAuto
	case dry:
		d.Irrigate = IsDueNow(next, now)
		d.Reason = ReasonDrySoilOnSlot
	default:
		d.Irrigate = false
		d.Reason = ReasonMoistEnough
	}

	return d
}

func ShouldIrrigateNow(plant types.Plant, now time.Time, latest *types.MoistureRecord, slots []types.Slot) bool {
	return Decide(plant, now, latest, slots).Irrigate
}
