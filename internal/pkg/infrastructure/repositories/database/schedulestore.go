package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/logging"
	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

var ErrPlantNotFound = fmt.Errorf("plant not found")
var ErrSlotNotFound = fmt.Errorf("slot not found")
var ErrSlotAlreadyExists = fmt.Errorf("slot already exists")
var ErrChipIDExists = fmt.Errorf("chip id already registered")
var ErrUnknownSlotKind = fmt.Errorf("unknown slot kind")
var ErrRepositoryError = fmt.Errorf("could not fetch data from repository")

// SlotFilter narrows FindActiveSlots down to the slots on the weekday of Now,
// or every day, that have not passed yet.
type SlotFilter struct {
	TodayOnly bool
	Now       time.Time
}

type ScheduleStore struct {
	db  *gorm.DB
	now func() time.Time
}

func New(connect ConnectorFunc) (*ScheduleStore, error) {
	impl, _, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&Plant{}, &TimeSlot{}, &PeriodSlot{}, &MoistureRecord{}, &IrrigationRecord{})
	if err != nil {
		return nil, err
	}

	return &ScheduleStore{
		db:  impl,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *ScheduleStore) FindPlantBySensorID(ctx context.Context, plantID, chipID string) (types.Plant, error) {
	p := Plant{}

	err := s.db.WithContext(ctx).
		Where("id = ? AND chip_id = ?", plantID, chipID).
		First(&p).Error
	if err != nil {
		return types.Plant{}, s.failed(ctx, err, ErrPlantNotFound)
	}

	return p.toType(), nil
}

func (s *ScheduleStore) GetPlant(ctx context.Context, ownerID, plantID string) (types.Plant, error) {
	p := Plant{}

	err := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", plantID, ownerID).
		First(&p).Error
	if err != nil {
		return types.Plant{}, s.failed(ctx, err, ErrPlantNotFound)
	}

	return p.toType(), nil
}

func (s *ScheduleStore) ListPlants(ctx context.Context, ownerID string) ([]types.Plant, error) {
	var plants []Plant

	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&plants).Error
	if err != nil {
		return []types.Plant{}, s.failed(ctx, err, ErrPlantNotFound)
	}

	return lo.Map(plants, func(p Plant, _ int) types.Plant { return p.toType() }), nil
}

// AllPlants lists the plants of every owner.
func (s *ScheduleStore) AllPlants(ctx context.Context) ([]types.Plant, error) {
	var plants []Plant

	err := s.db.WithContext(ctx).Order("created_at").Find(&plants).Error
	if err != nil {
		return []types.Plant{}, s.failed(ctx, err, ErrPlantNotFound)
	}

	return lo.Map(plants, func(p Plant, _ int) types.Plant { return p.toType() }), nil
}

func (s *ScheduleStore) CreatePlant(ctx context.Context, plant types.Plant) (types.Plant, error) {
	p := fromPlant(plant)
	p.ID = uuid.New().String()
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Plant{}).Where("chip_id = ?", p.ChipID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrChipIDExists
		}

		return tx.Create(&p).Error
	})
	if err != nil {
		return types.Plant{}, s.failed(ctx, err, ErrPlantNotFound)
	}

	log := logging.GetFromContext(ctx)
	log.Debug().Msgf("created plant %s for chip %s", p.ID, p.ChipID)

	return p.toType(), nil
}

// UpdatePlant stores the owner editable settings of plant. Owner and chip id
// are never changed.
func (s *ScheduleStore) UpdatePlant(ctx context.Context, plant types.Plant) (types.Plant, error) {
	p := Plant{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND owner_id = ?", plant.ID, plant.OwnerID).First(&p).Error
		if err != nil {
			return err
		}

		p.Name = plant.Name
		p.WaterAmount = plant.WaterAmount
		p.IrrigationType = string(plant.IrrigationType)
		p.AutoIrrigation = plant.AutoIrrigation
		p.MoisturePercentageThreshold = plant.MoisturePercentageThreshold
		p.PeriodstampTimesAWeek = plant.PeriodstampTimesAWeek
		p.UpdatedAt = s.now()

		return tx.Save(&p).Error
	})
	if err != nil {
		return types.Plant{}, s.failed(ctx, err, ErrPlantNotFound)
	}

	return p.toType(), nil
}

// DeletePlant removes a plant together with its slots and records.
func (s *ScheduleStore) DeletePlant(ctx context.Context, ownerID, plantID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p := Plant{}
		if err := tx.Where("id = ? AND owner_id = ?", plantID, ownerID).First(&p).Error; err != nil {
			return err
		}

		for _, child := range []any{&TimeSlot{}, &PeriodSlot{}, &MoistureRecord{}, &IrrigationRecord{}} {
			if err := tx.Where("plant_id = ?", plantID).Delete(child).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&p).Error
	})
	if err != nil {
		return s.failed(ctx, err, ErrPlantNotFound)
	}

	return nil
}

func (s *ScheduleStore) AddTimeSlot(ctx context.Context, plantID string, wt types.WeekTime) (types.Slot, error) {
	slot := TimeSlot{
		ID:      uuid.New().String(),
		PlantID: plantID,
		Weekday: string(wt.Weekday),
		Hour:    wt.Hour,
		Minute:  wt.Minute,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&TimeSlot{}).
			Where("plant_id = ? AND weekday = ? AND hour = ? AND minute = ?", plantID, slot.Weekday, slot.Hour, slot.Minute).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotAlreadyExists
		}

		return tx.Create(&slot).Error
	})
	if err != nil {
		return types.Slot{}, s.failed(ctx, err, ErrSlotNotFound)
	}

	return slot.toType(), nil
}

func (s *ScheduleStore) RemoveTimeSlot(ctx context.Context, plantID, slotID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND plant_id = ?", slotID, plantID).
		Delete(&TimeSlot{})
	if result.Error != nil {
		return s.failed(ctx, result.Error, ErrSlotNotFound)
	}

	if result.RowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

func (s *ScheduleStore) RemoveAllTimeSlots(ctx context.Context, plantID string) (int, error) {
	result := s.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Delete(&TimeSlot{})
	if result.Error != nil {
		return 0, s.failed(ctx, result.Error, ErrSlotNotFound)
	}

	return int(result.RowsAffected), nil
}

// FindActiveSlots returns the slots of the given kind ordered by hour and minute.
func (s *ScheduleStore) FindActiveSlots(ctx context.Context, plantID string, kind types.SlotKind, filter SlotFilter) ([]types.Slot, error) {
	query := s.db.WithContext(ctx).Where("plant_id = ?", plantID)

	if filter.TodayOnly {
		today := strings.ToLower(filter.Now.Weekday().String())
		h, m := filter.Now.Hour(), filter.Now.Minute()

		query = query.
			Where("weekday IN ?", []string{today, string(types.Everyday)}).
			Where("(hour > ? OR (hour = ? AND minute >= ?))", h, h, m)
	}

	query = query.Order("hour").Order("minute")

	switch kind {
	case types.TimeSlots:
		var slots []TimeSlot
		if err := query.Find(&slots).Error; err != nil {
			return []types.Slot{}, s.failed(ctx, err, ErrSlotNotFound)
		}
		return lo.Map(slots, func(ts TimeSlot, _ int) types.Slot { return ts.toType() }), nil
	case types.PeriodSlots:
		var slots []PeriodSlot
		if err := query.Find(&slots).Error; err != nil {
			return []types.Slot{}, s.failed(ctx, err, ErrSlotNotFound)
		}
		return lo.Map(slots, func(ps PeriodSlot, _ int) types.Slot { return ps.toType() }), nil
	}

	return []types.Slot{}, fmt.Errorf("%w: %q", ErrUnknownSlotKind, kind)
}

// ReplacePeriodSlots swaps the whole period slot set of a plant in one
// transaction and returns the number of slots written.
func (s *ScheduleStore) ReplacePeriodSlots(ctx context.Context, plantID string, planned []types.WeekTime) (int, error) {
	slots := lo.Map(planned, func(wt types.WeekTime, _ int) PeriodSlot {
		return PeriodSlot{
			ID:      uuid.New().String(),
			PlantID: plantID,
			Weekday: string(wt.Weekday),
			Hour:    wt.Hour,
			Minute:  wt.Minute,
		}
	})

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plant_id = ?", plantID).Delete(&PeriodSlot{}).Error; err != nil {
			return err
		}

		if len(slots) == 0 {
			return nil
		}

		return tx.Create(&slots).Error
	})
	if err != nil {
		return 0, s.failed(ctx, err, ErrPlantNotFound)
	}

	return len(slots), nil
}

// LatestMoisture returns nil, and no error, when the plant has no readings.
func (s *ScheduleStore) LatestMoisture(ctx context.Context, plantID string) (*types.MoistureRecord, error) {
	var records []MoistureRecord

	err := s.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Order("at desc").
		Limit(1).
		Find(&records).Error
	if err != nil {
		return nil, s.failed(ctx, err, ErrPlantNotFound)
	}

	if len(records) == 0 {
		return nil, nil
	}

	latest := records[0].toType()
	return &latest, nil
}

func (s *ScheduleStore) RecordMoisture(ctx context.Context, plantID string, percentage int) (types.MoistureRecord, error) {
	r := MoistureRecord{
		ID:         uuid.New().String(),
		PlantID:    plantID,
		Percentage: percentage,
		At:         s.now(),
	}

	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return types.MoistureRecord{}, s.failed(ctx, err, ErrPlantNotFound)
	}

	return r.toType(), nil
}

func (s *ScheduleStore) RecordIrrigation(ctx context.Context, plantID string, waterAmount int) (types.IrrigationRecord, error) {
	r := IrrigationRecord{
		ID:          uuid.New().String(),
		PlantID:     plantID,
		WaterAmount: waterAmount,
		At:          s.now(),
	}

	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return types.IrrigationRecord{}, s.failed(ctx, err, ErrPlantNotFound)
	}

	return r.toType(), nil
}

// MoistureHistory returns the readings taken at or after since, oldest first.
func (s *ScheduleStore) MoistureHistory(ctx context.Context, plantID string, since time.Time) ([]types.MoistureRecord, error) {
	var records []MoistureRecord

	err := s.db.WithContext(ctx).
		Where("plant_id = ? AND at >= ?", plantID, since.UTC()).
		Order("at").
		Find(&records).Error
	if err != nil {
		return []types.MoistureRecord{}, s.failed(ctx, err, ErrPlantNotFound)
	}

	return lo.Map(records, func(r MoistureRecord, _ int) types.MoistureRecord { return r.toType() }), nil
}

func (s *ScheduleStore) IrrigationHistory(ctx context.Context, plantID string, since time.Time) ([]types.IrrigationRecord, error) {
	var records []IrrigationRecord

	err := s.db.WithContext(ctx).
		Where("plant_id = ? AND at >= ?", plantID, since.UTC()).
		Order("at").
		Find(&records).Error
	if err != nil {
		return []types.IrrigationRecord{}, s.failed(ctx, err, ErrPlantNotFound)
	}

	return lo.Map(records, func(r IrrigationRecord, _ int) types.IrrigationRecord { return r.toType() }), nil
}

var domainErrors = []error{ErrPlantNotFound, ErrSlotNotFound, ErrSlotAlreadyExists, ErrChipIDExists}

// failed maps gorm.ErrRecordNotFound to notFound and lets domain errors
// through. Anything else is logged and reported as ErrRepositoryError.
func (s *ScheduleStore) failed(ctx context.Context, err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	for _, e := range domainErrors {
		if errors.Is(err, e) {
			return err
		}
	}

	log := logging.GetFromContext(ctx)
	log.Error().Err(err).Msg("gorm error")

	return fmt.Errorf("%w: %s", ErrRepositoryError, err.Error())
}
