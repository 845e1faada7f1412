package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

func TestCreateAndGetPlant(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	p, err := s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))
	is.NoErr(err)
	is.True(p.ID != "")

	fromDB, err := s.GetPlant(ctx, "owner", p.ID)
	is.NoErr(err)
	is.Equal("0123456789abcdef", fromDB.ChipID)
	is.Equal(types.IrrigationTypePeriod, fromDB.IrrigationType)

	_, err = s.GetPlant(ctx, "someone else", p.ID)
	is.True(errors.Is(err, ErrPlantNotFound))
}

func TestCreatePlantWithDuplicateChipID(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	_, err := s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))
	is.NoErr(err)

	_, err = s.CreatePlant(ctx, newPlant("other", "0123456789abcdef"))
	is.True(errors.Is(err, ErrChipIDExists))
}

func TestAllPlantsSpansOwners(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))
	s.CreatePlant(ctx, newPlant("other", "fedcba9876543210"))

	mine, err := s.ListPlants(ctx, "owner")
	is.NoErr(err)
	is.Equal(1, len(mine))

	all, err := s.AllPlants(ctx)
	is.NoErr(err)
	is.Equal(2, len(all))
}

func TestFindPlantBySensorIDRequiresMatchingChip(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	p, _ := s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))

	found, err := s.FindPlantBySensorID(ctx, p.ID, "0123456789abcdef")
	is.NoErr(err)
	is.Equal(p.ID, found.ID)

	_, err = s.FindPlantBySensorID(ctx, p.ID, "fedcba9876543210")
	is.True(errors.Is(err, ErrPlantNotFound))

	_, err = s.FindPlantBySensorID(ctx, p.ID, "")
	is.True(errors.Is(err, ErrPlantNotFound))
}

func TestUpdatePlant(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	p, _ := s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))
	p.Name = "Basil"
	p.IrrigationType = types.IrrigationTypeTime
	p.PeriodstampTimesAWeek = 3

	updated, err := s.UpdatePlant(ctx, p)
	is.NoErr(err)
	is.Equal("Basil", updated.Name)
	is.Equal(types.IrrigationTypeTime, updated.IrrigationType)
	is.Equal(3, updated.PeriodstampTimesAWeek)

	plants, err := s.ListPlants(ctx, "owner")
	is.NoErr(err)
	is.Equal(1, len(plants))
	is.Equal("Basil", plants[0].Name)
}

func TestTimeSlotsAreUniquePerPlant(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	p, _ := s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))
	wt := types.WeekTime{Weekday: types.Monday, Hour: 8, Minute: 30}

	slot, err := s.AddTimeSlot(ctx, p.ID, wt)
	is.NoErr(err)
	is.Equal(types.Monday, slot.Weekday)

	_, err = s.AddTimeSlot(ctx, p.ID, wt)
	is.True(errors.Is(err, ErrSlotAlreadyExists))

	err = s.RemoveTimeSlot(ctx, p.ID, slot.ID)
	is.NoErr(err)

	err = s.RemoveTimeSlot(ctx, p.ID, slot.ID)
	is.True(errors.Is(err, ErrSlotNotFound))
}

func TestRemoveAllTimeSlots(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	p, _ := s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))
	s.AddTimeSlot(ctx, p.ID, types.WeekTime{Weekday: types.Monday, Hour: 8, Minute: 30})
	s.AddTimeSlot(ctx, p.ID, types.WeekTime{Weekday: types.Everyday, Hour: 18, Minute: 0})

	removed, err := s.RemoveAllTimeSlots(ctx, p.ID)
	is.NoErr(err)
	is.Equal(2, removed)

	slots, err := s.FindActiveSlots(ctx, p.ID, types.TimeSlots, SlotFilter{})
	is.NoErr(err)
	is.Equal(0, len(slots))
}

func TestFindActiveSlotsTodayOnly(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	p, _ := s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))
	s.AddTimeSlot(ctx, p.ID, types.WeekTime{Weekday: types.Monday, Hour: 10, Minute: 0})
	s.AddTimeSlot(ctx, p.ID, types.WeekTime{Weekday: types.Monday, Hour: 9, Minute: 30})
	s.AddTimeSlot(ctx, p.ID, types.WeekTime{Weekday: types.Tuesday, Hour: 8, Minute: 0})
	s.AddTimeSlot(ctx, p.ID, types.WeekTime{Weekday: types.Everyday, Hour: 9, Minute: 45})

	// 2023-03-06 was a monday
	now := time.Date(2023, 3, 6, 9, 45, 0, 0, time.UTC)

	slots, err := s.FindActiveSlots(ctx, p.ID, types.TimeSlots, SlotFilter{TodayOnly: true, Now: now})
	is.NoErr(err)
	is.Equal(2, len(slots))
	is.Equal(types.Everyday, slots[0].Weekday)
	is.Equal(10, slots[1].Hour)

	all, err := s.FindActiveSlots(ctx, p.ID, types.TimeSlots, SlotFilter{})
	is.NoErr(err)
	is.Equal(4, len(all))
	is.Equal(8, all[0].Hour)

	_, err = s.FindActiveSlots(ctx, p.ID, types.SlotKind("sometimes"), SlotFilter{})
	is.True(errors.Is(err, ErrUnknownSlotKind))
}

func TestReplacePeriodSlotsReplacesTheWholeSet(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	p, _ := s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))

	n, err := s.ReplacePeriodSlots(ctx, p.ID, []types.WeekTime{
		{Weekday: types.Monday, Hour: 0, Minute: 5},
		{Weekday: types.Thursday, Hour: 12, Minute: 3},
	})
	is.NoErr(err)
	is.Equal(2, n)

	n, err = s.ReplacePeriodSlots(ctx, p.ID, []types.WeekTime{
		{Weekday: types.Wednesday, Hour: 6, Minute: 0},
	})
	is.NoErr(err)
	is.Equal(1, n)

	slots, err := s.FindActiveSlots(ctx, p.ID, types.PeriodSlots, SlotFilter{})
	is.NoErr(err)
	is.Equal(1, len(slots))
	is.Equal(types.Wednesday, slots[0].Weekday)

	n, err = s.ReplacePeriodSlots(ctx, p.ID, nil)
	is.NoErr(err)
	is.Equal(0, n)
}

func TestMoistureRecords(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	p, _ := s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))

	latest, err := s.LatestMoisture(ctx, p.ID)
	is.NoErr(err)
	is.True(latest == nil)

	start := time.Date(2023, 3, 6, 9, 0, 0, 0, time.UTC)
	s.now = stepClock(start, time.Hour)

	s.RecordMoisture(ctx, p.ID, 40)
	s.RecordMoisture(ctx, p.ID, 35)
	s.RecordMoisture(ctx, p.ID, 70)

	latest, err = s.LatestMoisture(ctx, p.ID)
	is.NoErr(err)
	is.Equal(70, latest.Percentage)

	history, err := s.MoistureHistory(ctx, p.ID, start.Add(90*time.Minute))
	is.NoErr(err)
	is.Equal(2, len(history))
	is.Equal(35, history[0].Percentage)
}

func TestIrrigationHistory(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	p, _ := s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))

	s.now = stepClock(time.Date(2023, 3, 6, 9, 0, 0, 0, time.UTC), 24*time.Hour)

	_, err := s.RecordIrrigation(ctx, p.ID, 1000)
	is.NoErr(err)
	_, err = s.RecordIrrigation(ctx, p.ID, 500)
	is.NoErr(err)

	history, err := s.IrrigationHistory(ctx, p.ID, time.Time{})
	is.NoErr(err)
	is.Equal(2, len(history))
	is.Equal(1000, history[0].WaterAmount)
}

func TestDeletePlantRemovesSlotsAndRecords(t *testing.T) {
	is, ctx, s := testSetupScheduleStore(t)

	p, _ := s.CreatePlant(ctx, newPlant("owner", "0123456789abcdef"))
	s.AddTimeSlot(ctx, p.ID, types.WeekTime{Weekday: types.Monday, Hour: 8, Minute: 30})
	s.ReplacePeriodSlots(ctx, p.ID, []types.WeekTime{{Weekday: types.Monday, Hour: 1, Minute: 0}})
	s.RecordMoisture(ctx, p.ID, 40)
	s.RecordIrrigation(ctx, p.ID, 1000)

	err := s.DeletePlant(ctx, "owner", p.ID)
	is.NoErr(err)

	_, err = s.GetPlant(ctx, "owner", p.ID)
	is.True(errors.Is(err, ErrPlantNotFound))

	slots, _ := s.FindActiveSlots(ctx, p.ID, types.TimeSlots, SlotFilter{})
	is.Equal(0, len(slots))
	slots, _ = s.FindActiveSlots(ctx, p.ID, types.PeriodSlots, SlotFilter{})
	is.Equal(0, len(slots))
	history, _ := s.IrrigationHistory(ctx, p.ID, time.Time{})
	is.Equal(0, len(history))

	err = s.DeletePlant(ctx, "owner", p.ID)
	is.True(errors.Is(err, ErrPlantNotFound))
}

func newPlant(ownerID, chipID string) types.Plant {
	return types.Plant{
		OwnerID:                     ownerID,
		ChipID:                      chipID,
		Name:                        "New Plant",
		WaterAmount:                 1000,
		IrrigationType:              types.IrrigationTypePeriod,
		AutoIrrigation:              true,
		MoisturePercentageThreshold: 50,
	}
}

func stepClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}

func testSetupScheduleStore(t *testing.T) (*is.I, context.Context, *ScheduleStore) {
	is := is.New(t)
	ctx := context.Background()

	s, err := New(NewSQLiteConnector(zerolog.Logger{}))
	is.NoErr(err)

	return is, ctx, s
}
