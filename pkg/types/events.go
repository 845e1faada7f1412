package types

import "time"

type PlantRegistered struct {
	PlantID   string    `json:"plantID"`
	ChipID    string    `json:"chipID"`
	Timestamp time.Time `json:"timestamp"`
}

func (p *PlantRegistered) ContentType() string {
	return "application/json"
}
func (p *PlantRegistered) TopicName() string {
	return "plant.registered"
}

type ScheduleChanged struct {
	PlantID        string         `json:"plantID"`
	IrrigationType IrrigationType `json:"irrigationType"`
	Planned        int            `json:"planned,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
}

func (s *ScheduleChanged) ContentType() string {
	return "application/json"
}
func (s *ScheduleChanged) TopicName() string {
	return "plant.scheduleChanged"
}

type MoistureRecorded struct {
	PlantID    string    `json:"plantID"`
	Percentage int       `json:"percentage"`
	Timestamp  time.Time `json:"timestamp"`
}

func (m *MoistureRecorded) ContentType() string {
	return "application/json"
}
func (m *MoistureRecorded) TopicName() string {
	return "plant.moistureRecorded"
}

type IrrigationPerformed struct {
	PlantID     string    `json:"plantID"`
	ChipID      string    `json:"chipID"`
	WaterAmount int       `json:"waterAmount"`
	Timestamp   time.Time `json:"timestamp"`
}

func (i *IrrigationPerformed) ContentType() string {
	return "application/json"
}
func (i *IrrigationPerformed) TopicName() string {
	return "plant.irrigationPerformed"
}

// SensorSilent is published when a plant has not reported moisture for longer
// than the watchdog allows. LastSeen is nil if it never reported.
type SensorSilent struct {
	PlantID   string     `json:"plantID"`
	ChipID    string     `json:"chipID"`
	LastSeen  *time.Time `json:"lastSeen,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

func (s *SensorSilent) ContentType() string {
	return "application/json"
}
func (s *SensorSilent) TopicName() string {
	return "plant.sensorSilent"
}
