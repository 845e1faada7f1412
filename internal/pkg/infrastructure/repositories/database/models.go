package database

import (
	"time"

	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

type Plant struct {
	ID                          string `gorm:"primaryKey"`
	OwnerID                     string `gorm:"index"`
	ChipID                      string `gorm:"uniqueIndex"`
	Name                        string
	WaterAmount                 int
	IrrigationType              string
	AutoIrrigation              bool
	MoisturePercentageThreshold int
	PeriodstampTimesAWeek       int
	CreatedAt                   time.Time
	UpdatedAt                   time.Time

	TimeSlots         []TimeSlot         `gorm:"constraint:OnDelete:CASCADE"`
	PeriodSlots       []PeriodSlot       `gorm:"constraint:OnDelete:CASCADE"`
	MoistureRecords   []MoistureRecord   `gorm:"constraint:OnDelete:CASCADE"`
	IrrigationRecords []IrrigationRecord `gorm:"constraint:OnDelete:CASCADE"`
}

type TimeSlot struct {
	ID      string `gorm:"primaryKey"`
	PlantID string `gorm:"uniqueIndex:idx_time_slot_week_time"`
	Weekday string `gorm:"uniqueIndex:idx_time_slot_week_time"`
	Hour    int    `gorm:"uniqueIndex:idx_time_slot_week_time"`
	Minute  int    `gorm:"uniqueIndex:idx_time_slot_week_time"`
}

type PeriodSlot struct {
	ID      string `gorm:"primaryKey"`
	PlantID string `gorm:"index"`
	Weekday string
	Hour    int
	Minute  int
}

type MoistureRecord struct {
	ID         string `gorm:"primaryKey"`
	PlantID    string `gorm:"index"`
	Percentage int
	At         time.Time `gorm:"index"`
}

type IrrigationRecord struct {
	ID          string `gorm:"primaryKey"`
	PlantID     string `gorm:"index"`
	WaterAmount int
	At          time.Time `gorm:"index"`
}

func (p Plant) toType() types.Plant {
	return types.Plant{
		ID:                          p.ID,
		OwnerID:                     p.OwnerID,
		ChipID:                      p.ChipID,
		Name:                        p.Name,
		WaterAmount:                 p.WaterAmount,
		IrrigationType:              types.IrrigationType(p.IrrigationType),
		AutoIrrigation:              p.AutoIrrigation,
		MoisturePercentageThreshold: p.MoisturePercentageThreshold,
		PeriodstampTimesAWeek:       p.PeriodstampTimesAWeek,
		CreatedAt:                   p.CreatedAt.UTC(),
		UpdatedAt:                   p.UpdatedAt.UTC(),
	}
}

func fromPlant(p types.Plant) Plant {
	return Plant{
		ID:                          p.ID,
		OwnerID:                     p.OwnerID,
		ChipID:                      p.ChipID,
		Name:                        p.Name,
		WaterAmount:                 p.WaterAmount,
		IrrigationType:              string(p.IrrigationType),
		AutoIrrigation:              p.AutoIrrigation,
		MoisturePercentageThreshold: p.MoisturePercentageThreshold,
		PeriodstampTimesAWeek:       p.PeriodstampTimesAWeek,
		CreatedAt:                   p.CreatedAt,
		UpdatedAt:                   p.UpdatedAt,
	}
}

func (s TimeSlot) toType() types.Slot {
	return types.Slot{ID: s.ID, PlantID: s.PlantID, Weekday: types.Weekday(s.Weekday), Hour: s.Hour, Minute: s.Minute}
}

func (s PeriodSlot) toType() types.Slot {
	return types.Slot{ID: s.ID, PlantID: s.PlantID, Weekday: types.Weekday(s.Weekday), Hour: s.Hour, Minute: s.Minute}
}

func (m MoistureRecord) toType() types.MoistureRecord {
	return types.MoistureRecord{ID: m.ID, PlantID: m.PlantID, Percentage: m.Percentage, At: m.At.UTC()}
}

func (i IrrigationRecord) toType() types.IrrigationRecord {
	return types.IrrigationRecord{ID: i.ID, PlantID: i.PlantID, WaterAmount: i.WaterAmount, At: i.At.UTC()}
}
