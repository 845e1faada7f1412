package types

import (
	"time"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
	Everyday  Weekday = "everyday"
)

func (w Weekday) Valid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday, Everyday:
		return true
	}
	return false
}

type IrrigationType string

const (
	IrrigationTypeTime   IrrigationType = "time"
	IrrigationTypePeriod IrrigationType = "period"
)

// SlotKind names one of the two slot sets a plant owns.
type SlotKind string

const (
	TimeSlots   SlotKind = "time"
	PeriodSlots SlotKind = "period"
)

// WeekTime is a recurring point in the week.
type WeekTime struct {
	Weekday Weekday `json:"dayOfWeek" yaml:"dayOfWeek"`
	Hour    int     `json:"hour" yaml:"hour"`
	Minute  int     `json:"minute" yaml:"minute"`
}

// Slot is a scheduled watering time owned by a plant. Fixed time slots and
// frequency derived period slots share this shape.
type Slot struct {
	ID      string  `json:"id"`
	PlantID string  `json:"plantID"`
	Weekday Weekday `json:"dayOfWeek"`
	Hour    int     `json:"hour"`
	Minute  int     `json:"minute"`
}

func (s Slot) WeekTime() WeekTime {
	return WeekTime{Weekday: s.Weekday, Hour: s.Hour, Minute: s.Minute}
}

type Plant struct {
	ID                          string         `json:"id"`
	OwnerID                     string         `json:"ownerID"`
	ChipID                      string         `json:"chipID"`
	Name                        string         `json:"name"`
	WaterAmount                 int            `json:"waterAmount"`
	IrrigationType              IrrigationType `json:"irrigationType"`
	AutoIrrigation              bool           `json:"autoIrrigation"`
	MoisturePercentageThreshold int            `json:"moisturePercentageThreshold"`
	PeriodstampTimesAWeek       int            `json:"periodstampTimesAWeek"`
	CreatedAt                   time.Time      `json:"createdAt"`
	UpdatedAt                   time.Time      `json:"updatedAt"`
}

// PlantUpdate carries the owner editable settings of a plant.
type PlantUpdate struct {
	Name                        string         `json:"name"`
	WaterAmount                 int            `json:"waterAmount"`
	IrrigationType              IrrigationType `json:"irrigationType"`
	AutoIrrigation              bool           `json:"autoIrrigation"`
	MoisturePercentageThreshold int            `json:"moisturePercentageThreshold"`
	PeriodstampTimesAWeek       int            `json:"periodstampTimesAWeek"`
}

type MoistureRecord struct {
	ID         string    `json:"id"`
	PlantID    string    `json:"plantID"`
	Percentage int       `json:"percentage"`
	At         time.Time `json:"at"`
}

type IrrigationRecord struct {
	ID          string    `json:"id"`
	PlantID     string    `json:"plantID"`
	WaterAmount int       `json:"waterAmount"`
	At          time.Time `json:"at"`
}

// PlantTimes is a plant together with the slots of the schedule that governs it.
type PlantTimes struct {
	Plant
	Times []Slot `json:"times"`
}

// UpcomingIrrigation is the next slot anywhere in the week and when it occurs.
type UpcomingIrrigation struct {
	Slot Slot      `json:"slot"`
	At   time.Time `json:"at"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
