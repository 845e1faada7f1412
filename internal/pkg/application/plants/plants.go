package plants

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"

	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/application/scheduling"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/logging"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

var ErrInvalidChipID = fmt.Errorf("chip id must be 16 hexadecimal digits")
var ErrInvalidPercentage = fmt.Errorf("percentage must be between 0 and 100")
var ErrInvalidWaterAmount = fmt.Errorf("water amount must be between 0 and 10000")
var ErrInvalidThreshold = fmt.Errorf("moisture threshold must be between 0 and 100")
var ErrInvalidWeekTime = fmt.Errorf("invalid weekday or time of day")
var ErrNoSlotToday = fmt.Errorf("no irrigation scheduled for the rest of the day")
var ErrNoSlotScheduled = fmt.Errorf("no irrigation scheduled")

// ErrMisconfiguredPlant is returned when a stored plant has settings that no
// request could have produced. It is a server side error.
var ErrMisconfiguredPlant = fmt.Errorf("plant is misconfigured")

const MaxWaterAmount = 10000

var chipIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{16}$`)

//go:generate moq -rm -out schedulestore_mock.go . ScheduleStore
type ScheduleStore interface {
	FindPlantBySensorID(ctx context.Context, plantID, chipID string) (types.Plant, error)
	FindActiveSlots(ctx context.Context, plantID string, kind types.SlotKind, filter database.SlotFilter) ([]types.Slot, error)
	ReplacePeriodSlots(ctx context.Context, plantID string, planned []types.WeekTime) (int, error)
	LatestMoisture(ctx context.Context, plantID string) (*types.MoistureRecord, error)
	RecordIrrigation(ctx context.Context, plantID string, waterAmount int) (types.IrrigationRecord, error)
	RecordMoisture(ctx context.Context, plantID string, percentage int) (types.MoistureRecord, error)

	CreatePlant(ctx context.Context, plant types.Plant) (types.Plant, error)
	GetPlant(ctx context.Context, ownerID, plantID string) (types.Plant, error)
	ListPlants(ctx context.Context, ownerID string) ([]types.Plant, error)
	UpdatePlant(ctx context.Context, plant types.Plant) (types.Plant, error)
	DeletePlant(ctx context.Context, ownerID, plantID string) error

	AddTimeSlot(ctx context.Context, plantID string, wt types.WeekTime) (types.Slot, error)
	RemoveTimeSlot(ctx context.Context, plantID, slotID string) error
	RemoveAllTimeSlots(ctx context.Context, plantID string) (int, error)

	MoistureHistory(ctx context.Context, plantID string, since time.Time) ([]types.MoistureRecord, error)
	IrrigationHistory(ctx context.Context, plantID string, since time.Time) ([]types.IrrigationRecord, error)
}

//go:generate moq -rm -out plantservice_mock.go . PlantService
type PlantService interface {
	Register(ctx context.Context, ownerID, chipID string) (types.Plant, error)
	Get(ctx context.Context, ownerID, plantID string) (types.Plant, error)
	List(ctx context.Context, ownerID string) ([]types.Plant, error)
	Update(ctx context.Context, ownerID, plantID string, update types.PlantUpdate) (types.Plant, error)
	Delete(ctx context.Context, ownerID, plantID string) error

	AddTimeSlot(ctx context.Context, ownerID, plantID string, wt types.WeekTime) (types.Slot, error)
	RemoveTimeSlot(ctx context.Context, ownerID, plantID, slotID string) error
	RemoveAllTimeSlots(ctx context.Context, ownerID, plantID string) (int, error)
	TimeSlots(ctx context.Context, ownerID, plantID string) ([]types.Slot, error)
	PeriodSlots(ctx context.Context, ownerID, plantID string) ([]types.Slot, error)
	ActiveSlots(ctx context.Context, ownerID, plantID string) (types.PlantTimes, error)
	ChangePeriodFrequency(ctx context.Context, ownerID, plantID string, timesAWeek int) (int, error)

	GetForDevice(ctx context.Context, plantID, chipID string) (types.Plant, error)
	TodaySlots(ctx context.Context, plantID, chipID string, now time.Time) ([]types.Slot, error)
	NextSlotToday(ctx context.Context, plantID, chipID string, now time.Time) (types.Slot, error)
	UpcomingIrrigation(ctx context.Context, plantID, chipID string, now time.Time) (types.UpcomingIrrigation, error)
	ShouldIrrigateNow(ctx context.Context, plantID, chipID string, now time.Time) (bool, error)
	RecordMoisture(ctx context.Context, plantID, chipID string, percentage int) (types.MoistureRecord, error)
	Irrigate(ctx context.Context, plantID, chipID string) (types.IrrigationRecord, error)

	CurrentMoisture(ctx context.Context, ownerID, plantID string) (*types.MoistureRecord, error)
	MoistureHistory(ctx context.Context, ownerID, plantID string, period HistoryPeriod) ([]types.MoistureRecord, error)
	IrrigationHistory(ctx context.Context, ownerID, plantID string, period HistoryPeriod) ([]types.IrrigationRecord, error)
}

type Clock func() time.Time

type plantService struct {
	store     ScheduleStore
	messenger messaging.MsgContext
	events    EventSender
	planner   *scheduling.Planner
	random    scheduling.RandomSource
	overflow  scheduling.OverflowPolicy
	defaults  PlantDefaults
	clock     Clock
	locks     *plantLocks
}

type Option func(*plantService)

func WithClock(clock Clock) Option {
	return func(s *plantService) {
		s.clock = clock
	}
}

func WithRandomSource(random scheduling.RandomSource, overflow scheduling.OverflowPolicy) Option {
	return func(s *plantService) {
		s.random = random
		s.overflow = overflow
	}
}

func WithEventSender(events EventSender) Option {
	return func(s *plantService) {
		s.events = events
	}
}

func New(store ScheduleStore, messenger messaging.MsgContext, cfg *Config, opts ...Option) (PlantService, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Scheduling.Timezone, err)
	}

	s := &plantService{
		store:     store,
		messenger: messenger,
		events:    NewEventSender(cfg),
		overflow:  cfg.Scheduling.Overflow,
		defaults:  cfg.PlantDefaults,
		clock:     func() time.Time { return time.Now().In(loc) },
		locks:     newPlantLocks(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.planner, err = scheduling.NewPlanner(s.random, s.overflow)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *plantService) Register(ctx context.Context, ownerID, chipID string) (types.Plant, error) {
	if !chipIDPattern.MatchString(chipID) {
		return types.Plant{}, fmt.Errorf("%w: %q", ErrInvalidChipID, chipID)
	}

	plant, err := s.store.CreatePlant(ctx, types.Plant{
		OwnerID:                     ownerID,
		ChipID:                      chipID,
		Name:                        s.defaults.Name,
		WaterAmount:                 s.defaults.WaterAmount,
		IrrigationType:              s.defaults.IrrigationType,
		AutoIrrigation:              s.defaults.AutoIrrigation,
		MoisturePercentageThreshold: s.defaults.MoisturePercentageThreshold,
		PeriodstampTimesAWeek:       s.defaults.PeriodstampTimesAWeek,
	})
	if err != nil {
		return types.Plant{}, err
	}

	if plant.PeriodstampTimesAWeek > 0 {
		unlock := s.locks.lock(plant.ID)
		_, err = s.replan(ctx, plant)
		unlock()

		if err != nil {
			return types.Plant{}, err
		}
	}

	s.publish(ctx, &types.PlantRegistered{
		PlantID:   plant.ID,
		ChipID:    plant.ChipID,
		Timestamp: s.clock().UTC(),
	})

	return plant, nil
}

func (s *plantService) Get(ctx context.Context, ownerID, plantID string) (types.Plant, error) {
	return s.store.GetPlant(ctx, ownerID, plantID)
}

func (s *plantService) List(ctx context.Context, ownerID string) ([]types.Plant, error) {
	return s.store.ListPlants(ctx, ownerID)
}

func (s *plantService) Update(ctx context.Context, ownerID, plantID string, update types.PlantUpdate) (types.Plant, error) {
	if err := validateUpdate(update); err != nil {
		return types.Plant{}, err
	}

	unlock := s.locks.lock(plantID)
	defer unlock()

	current, err := s.store.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return types.Plant{}, err
	}

	p := current
	p.Name = update.Name
	p.WaterAmount = update.WaterAmount
	p.IrrigationType = update.IrrigationType
	p.AutoIrrigation = update.AutoIrrigation
	p.MoisturePercentageThreshold = update.MoisturePercentageThreshold
	p.PeriodstampTimesAWeek = update.PeriodstampTimesAWeek

	p, err = s.store.UpdatePlant(ctx, p)
	if err != nil {
		return types.Plant{}, err
	}

	if p.PeriodstampTimesAWeek != current.PeriodstampTimesAWeek {
		if _, err := s.replan(ctx, p); err != nil {
			return types.Plant{}, err
		}
	} else if p.IrrigationType != current.IrrigationType {
		s.scheduleChanged(ctx, p, 0)
	}

	return p, nil
}

func validateUpdate(u types.PlantUpdate) error {
	if u.WaterAmount < 0 || u.WaterAmount > MaxWaterAmount {
		return fmt.Errorf("%w: %d", ErrInvalidWaterAmount, u.WaterAmount)
	}
	if u.MoisturePercentageThreshold < 0 || u.MoisturePercentageThreshold > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, u.MoisturePercentageThreshold)
	}
	if _, err := scheduling.ActiveSlotKind(u.IrrigationType); err != nil {
		return err
	}
	if u.PeriodstampTimesAWeek < 0 {
		return fmt.Errorf("%w: %d", scheduling.ErrInvalidFrequency, u.PeriodstampTimesAWeek)
	}
	return nil
}

func validateWeekTime(wt types.WeekTime) error {
	if !wt.Weekday.Valid() || wt.Hour < 0 || wt.Hour > 23 || wt.Minute < 0 || wt.Minute > 59 {
		return fmt.Errorf("%w: %s %02d:%02d", ErrInvalidWeekTime, wt.Weekday, wt.Hour, wt.Minute)
	}
	return nil
}

func (s *plantService) Delete(ctx context.Context, ownerID, plantID string) error {
	unlock := s.locks.lock(plantID)
	defer unlock()

	err := s.store.DeletePlant(ctx, ownerID, plantID)
	if err != nil {
		return err
	}

	s.locks.forget(plantID)

	return nil
}

func (s *plantService) AddTimeSlot(ctx context.Context, ownerID, plantID string, wt types.WeekTime) (types.Slot, error) {
	if err := validateWeekTime(wt); err != nil {
		return types.Slot{}, err
	}

	plant, err := s.store.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return types.Slot{}, err
	}

	slot, err := s.store.AddTimeSlot(ctx, plant.ID, wt)
	if err != nil {
		return types.Slot{}, err
	}

	if plant.IrrigationType == types.IrrigationTypeTime {
		s.scheduleChanged(ctx, plant, 0)
	}

	return slot, nil
}

func (s *plantService) RemoveTimeSlot(ctx context.Context, ownerID, plantID, slotID string) error {
	plant, err := s.store.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return err
	}

	return s.store.RemoveTimeSlot(ctx, plant.ID, slotID)
}

func (s *plantService) RemoveAllTimeSlots(ctx context.Context, ownerID, plantID string) (int, error) {
	plant, err := s.store.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return 0, err
	}

	return s.store.RemoveAllTimeSlots(ctx, plant.ID)
}

func (s *plantService) TimeSlots(ctx context.Context, ownerID, plantID string) ([]types.Slot, error) {
	return s.slotsOfKind(ctx, ownerID, plantID, types.TimeSlots)
}

func (s *plantService) PeriodSlots(ctx context.Context, ownerID, plantID string) ([]types.Slot, error) {
	return s.slotsOfKind(ctx, ownerID, plantID, types.PeriodSlots)
}

func (s *plantService) slotsOfKind(ctx context.Context, ownerID, plantID string, kind types.SlotKind) ([]types.Slot, error) {
	plant, err := s.store.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return nil, err
	}

	return s.store.FindActiveSlots(ctx, plant.ID, kind, database.SlotFilter{})
}

// ActiveSlots returns the plant together with the slots of whichever set its
// irrigation type selects.
func (s *plantService) ActiveSlots(ctx context.Context, ownerID, plantID string) (types.PlantTimes, error) {
	plant, err := s.store.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return types.PlantTimes{}, err
	}

	kind, err := activeSlotKind(plant)
	if err != nil {
		return types.PlantTimes{}, err
	}

	slots, err := s.store.FindActiveSlots(ctx, plant.ID, kind, database.SlotFilter{})
	if err != nil {
		return types.PlantTimes{}, err
	}

	return types.PlantTimes{Plant: plant, Times: slots}, nil
}

// ChangePeriodFrequency stores a new weekly frequency and replaces the period
// slots with a freshly planned set. It returns the number of slots written.
func (s *plantService) ChangePeriodFrequency(ctx context.Context, ownerID, plantID string, timesAWeek int) (int, error) {
	if timesAWeek < 0 {
		return 0, fmt.Errorf("%w: %d", scheduling.ErrInvalidFrequency, timesAWeek)
	}

	unlock := s.locks.lock(plantID)
	defer unlock()

	plant, err := s.store.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return 0, err
	}

	if plant.PeriodstampTimesAWeek != timesAWeek {
		plant.PeriodstampTimesAWeek = timesAWeek
		plant, err = s.store.UpdatePlant(ctx, plant)
		if err != nil {
			return 0, err
		}
	}

	return s.replan(ctx, plant)
}

// replan must be called with the plant lock held.
func (s *plantService) replan(ctx context.Context, plant types.Plant) (int, error) {
	planned, err := s.planner.Plan(ctx, plant.PeriodstampTimesAWeek)
	if err != nil {
		return 0, err
	}

	n, err := s.store.ReplacePeriodSlots(ctx, plant.ID, planned)
	if err != nil {
		return 0, err
	}

	log := logging.GetFromContext(ctx)
	log.Info().Msgf("planned %d of %d period slots for plant %s", n, plant.PeriodstampTimesAWeek, plant.ID)

	s.scheduleChanged(ctx, plant, n)

	return n, nil
}

func (s *plantService) scheduleChanged(ctx context.Context, plant types.Plant, planned int) {
	s.publish(ctx, &types.ScheduleChanged{
		PlantID:        plant.ID,
		IrrigationType: plant.IrrigationType,
		Planned:        planned,
		Timestamp:      s.clock().UTC(),
	})
}

func activeSlotKind(plant types.Plant) (types.SlotKind, error) {
	kind, err := scheduling.ActiveSlotKind(plant.IrrigationType)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrMisconfiguredPlant, plant.ID, err.Error())
	}
	return kind, nil
}

func (s *plantService) GetForDevice(ctx context.Context, plantID, chipID string) (types.Plant, error) {
	return s.store.FindPlantBySensorID(ctx, plantID, chipID)
}

func (s *plantService) now(now time.Time) time.Time {
	if now.IsZero() {
		return s.clock()
	}
	return now
}

func (s *plantService) todaySlots(ctx context.Context, plant types.Plant, now time.Time) ([]types.Slot, error) {
	kind, err := activeSlotKind(plant)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Msg("cannot select slots")
		return nil, err
	}

	slots, err := s.store.FindActiveSlots(ctx, plant.ID, kind, database.SlotFilter{TodayOnly: true, Now: now})
	if err != nil {
		return nil, err
	}

	return scheduling.NextSlotsToday(now, slots), nil
}

// TodaySlots returns the slots that remain today for the plant. A zero now
// means the current time in the configured timezone.
func (s *plantService) TodaySlots(ctx context.Context, plantID, chipID string, now time.Time) ([]types.Slot, error) {
	plant, err := s.store.FindPlantBySensorID(ctx, plantID, chipID)
	if err != nil {
		return nil, err
	}

	return s.todaySlots(ctx, plant, s.now(now))
}

func (s *plantService) NextSlotToday(ctx context.Context, plantID, chipID string, now time.Time) (types.Slot, error) {
	slots, err := s.TodaySlots(ctx, plantID, chipID, now)
	if err != nil {
		return types.Slot{}, err
	}

	if len(slots) == 0 {
		return types.Slot{}, ErrNoSlotToday
	}

	return slots[0], nil
}

// UpcomingIrrigation looks beyond today, wrapping into next week, for the
// first slot of the governing schedule.
func (s *plantService) UpcomingIrrigation(ctx context.Context, plantID, chipID string, now time.Time) (types.UpcomingIrrigation, error) {
	plant, err := s.store.FindPlantBySensorID(ctx, plantID, chipID)
	if err != nil {
		return types.UpcomingIrrigation{}, err
	}

	kind, err := activeSlotKind(plant)
	if err != nil {
		return types.UpcomingIrrigation{}, err
	}

	slots, err := s.store.FindActiveSlots(ctx, plant.ID, kind, database.SlotFilter{})
	if err != nil {
		return types.UpcomingIrrigation{}, err
	}

	slot, at, ok := scheduling.NextOccurrence(s.now(now), slots)
	if !ok {
		return types.UpcomingIrrigation{}, ErrNoSlotScheduled
	}

	return types.UpcomingIrrigation{Slot: slot, At: at}, nil
}

func (s *plantService) ShouldIrrigateNow(ctx context.Context, plantID, chipID string, now time.Time) (bool, error) {
	plant, err := s.store.FindPlantBySensorID(ctx, plantID, chipID)
	if err != nil {
		return false, err
	}

	now = s.now(now)

	slots, err := s.todaySlots(ctx, plant, now)
	if err != nil {
		return false, err
	}

	latest, err := s.store.LatestMoisture(ctx, plant.ID)
	if err != nil {
		return false, err
	}

	decision := scheduling.Decide(plant, now, latest, slots)

	log := logging.GetFromContext(ctx)
	log.Debug().
		Str("plantID", plant.ID).
		Str("reason", string(decision.Reason)).
		Msgf("irrigate: %t", decision.Irrigate)

	return decision.Irrigate, nil
}

func (s *plantService) RecordMoisture(ctx context.Context, plantID, chipID string, percentage int) (types.MoistureRecord, error) {
	if percentage < 0 || percentage > 100 {
		return types.MoistureRecord{}, fmt.Errorf("%w: %d", ErrInvalidPercentage, percentage)
	}

	plant, err := s.store.FindPlantBySensorID(ctx, plantID, chipID)
	if err != nil {
		return types.MoistureRecord{}, err
	}

	record, err := s.store.RecordMoisture(ctx, plant.ID, percentage)
	if err != nil {
		return types.MoistureRecord{}, err
	}

	s.publish(ctx, &types.MoistureRecorded{
		PlantID:    plant.ID,
		Percentage: record.Percentage,
		Timestamp:  record.At,
	})

	return record, nil
}

// Irrigate records that the device watered the plant with its configured water amount.
func (s *plantService) Irrigate(ctx context.Context, plantID, chipID string) (types.IrrigationRecord, error) {
	plant, err := s.store.FindPlantBySensorID(ctx, plantID, chipID)
	if err != nil {
		return types.IrrigationRecord{}, err
	}

	record, err := s.store.RecordIrrigation(ctx, plant.ID, plant.WaterAmount)
	if err != nil {
		return types.IrrigationRecord{}, err
	}

	event := &types.IrrigationPerformed{
		PlantID:     plant.ID,
		ChipID:      plant.ChipID,
		WaterAmount: record.WaterAmount,
		Timestamp:   record.At,
	}

	s.publish(ctx, event)

	if err := s.events.Send(ctx, plant.ID, record.At, event); err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Msg("failed to notify subscribers")
	}

	return record, nil
}

func (s *plantService) CurrentMoisture(ctx context.Context, ownerID, plantID string) (*types.MoistureRecord, error) {
	plant, err := s.store.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return nil, err
	}

	return s.store.LatestMoisture(ctx, plant.ID)
}

func (s *plantService) MoistureHistory(ctx context.Context, ownerID, plantID string, period HistoryPeriod) ([]types.MoistureRecord, error) {
	plant, err := s.store.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return nil, err
	}

	return s.store.MoistureHistory(ctx, plant.ID, period.Since(s.clock()))
}

func (s *plantService) IrrigationHistory(ctx context.Context, ownerID, plantID string, period HistoryPeriod) ([]types.IrrigationRecord, error) {
	plant, err := s.store.GetPlant(ctx, ownerID, plantID)
	if err != nil {
		return nil, err
	}

	return s.store.IrrigationHistory(ctx, plant.ID, period.Since(s.clock()))
}

func (s *plantService) publish(ctx context.Context, msg messaging.TopicMessage) {
	if s.messenger == nil {
		return
	}

	if err := s.messenger.PublishOnTopic(ctx, msg); err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Msgf("failed to publish %s", msg.TopicName())
	}
}

type plantLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPlantLocks() *plantLocks {
	return &plantLocks{locks: map[string]*sync.Mutex{}}
}

func (l *plantLocks) lock(plantID string) func() {
	l.mu.Lock()
	m, ok := l.locks[plantID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[plantID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (l *plantLocks) forget(plantID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, plantID)
}
