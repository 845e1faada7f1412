package watchdog

import (
	"context"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"

	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/logging"
	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

//go:generate moq -rm -out store_mock.go . Store

type Store interface {
	AllPlants(ctx context.Context) ([]types.Plant, error)
	LatestMoisture(ctx context.Context, plantID string) (*types.MoistureRecord, error)
}

type Config struct {
	// SilentAfter is how long a sensor may go without reporting moisture.
	// Zero disables the watchdog.
	SilentAfter time.Duration `yaml:"silentAfter"`
	Interval    time.Duration `yaml:"interval"`
}

func DefaultConfig() Config {
	return Config{
		SilentAfter: 24 * time.Hour,
		Interval:    10 * time.Minute,
	}
}

type Watchdog interface {
	Start(ctx context.Context)
	Stop()
}

type watchdogImpl struct {
	store     Store
	messenger messaging.MsgContext
	cfg       Config
	now       func() time.Time

	// plants already reported as silent, until they report again
	reported map[string]bool
	done     chan bool
}

func New(store Store, messenger messaging.MsgContext, cfg Config) Watchdog {
	return newWatchdog(store, messenger, cfg, func() time.Time { return time.Now().UTC() })
}

func newWatchdog(store Store, messenger messaging.MsgContext, cfg Config, now func() time.Time) *watchdogImpl {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}

	return &watchdogImpl{
		store:     store,
		messenger: messenger,
		cfg:       cfg,
		now:       now,
		reported:  map[string]bool{},
		done:      make(chan bool),
	}
}

func (w *watchdogImpl) Start(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	if w.cfg.SilentAfter <= 0 {
		log.Info().Msg("sensor watchdog disabled")
		return
	}

	go w.run(ctx)
}

func (w *watchdogImpl) Stop() {
	if w.cfg.SilentAfter > 0 {
		w.done <- true
	}
}

func (w *watchdogImpl) run(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			silent, err := w.check(ctx)
			if err != nil {
				log.Error().Err(err).Msg("sensor watchdog check failed")
				continue
			}
			log.Debug().Msgf("%d plants reported as silent", silent)
		}
	}
}

// check publishes SensorSilent once for every plant whose sensor has gone
// quiet and returns how many were published.
func (w *watchdogImpl) check(ctx context.Context) (int, error) {
	log := logging.GetFromContext(ctx)

	plants, err := w.store.AllPlants(ctx)
	if err != nil {
		return 0, err
	}

	now := w.now()
	published := 0

	for _, p := range plants {
		latest, err := w.store.LatestMoisture(ctx, p.ID)
		if err != nil {
			log.Error().Err(err).Msgf("could not fetch latest moisture for plant %s", p.ID)
			continue
		}

		lastSeen := p.CreatedAt
		msg := &types.SensorSilent{PlantID: p.ID, ChipID: p.ChipID, Timestamp: now}

		if latest != nil {
			lastSeen = latest.At
			msg.LastSeen = &latest.At
		}

		if now.Sub(lastSeen) <= w.cfg.SilentAfter {
			delete(w.reported, p.ID)
			continue
		}

		if w.reported[p.ID] {
			continue
		}

		if err := w.messenger.PublishOnTopic(ctx, msg); err != nil {
			log.Error().Err(err).Msgf("failed to publish %s", msg.TopicName())
			continue
		}

		w.reported[p.ID] = true
		published++
	}

	return published, nil
}
