package scheduling

import (
	"testing"

	"github.com/matryer/is"

	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

func TestShouldIrrigateNow(t *testing.T) {
	dueNow := []types.Slot{slot("now", types.Monday, 9, 45)}
	dueLater := []types.Slot{slot("later", types.Monday, 11, 0)}
	passed := []types.Slot{slot("passed", types.Monday, 8, 0)}

	moisture := func(p int) *types.MoistureRecord {
		return &types.MoistureRecord{Percentage: p}
	}

	plant := func(auto bool) types.Plant {
		return types.Plant{AutoIrrigation: auto, MoisturePercentageThreshold: 50}
	}

	testCases := map[string]struct {
		plant    types.Plant
		latest   *types.MoistureRecord
		slots    []types.Slot
		expected bool
		reason   Reason
	}{
		"nothing left today":           {plant(true), moisture(10), passed, false, ReasonNothingToday},
		"no moisture, slot due":        {plant(false), nil, dueNow, true, ReasonScheduleOnly},
		"no moisture, slot later":      {plant(false), nil, dueLater, false, ReasonScheduleOnly},
		"dry with auto irrigation":     {plant(true), moisture(20), dueLater, true, ReasonDrySoilAuto},
		"at threshold with auto":       {plant(true), moisture(50), dueLater, true, ReasonDrySoilAuto},
		"dry without auto, slot due":   {plant(false), moisture(20), dueNow, true, ReasonDrySoilOnSlot},
		"dry without auto, slot later": {plant(false), moisture(20), dueLater, false, ReasonDrySoilOnSlot},
		"moist enough, slot due":       {plant(true), moisture(80), dueNow, false, ReasonMoistEnough},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			d := Decide(tc.plant, mondayMorning, tc.latest, tc.slots)
			is.Equal(tc.expected, d.Irrigate)
			is.Equal(tc.reason, d.Reason)
			is.Equal(tc.expected, ShouldIrrigateNow(tc.plant, mondayMorning, tc.latest, tc.slots))
		})
	}
}
