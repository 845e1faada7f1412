package watchdog

import (
	"context"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"

	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

var noon = time.Date(2023, 3, 6, 12, 0, 0, 0, time.UTC)

func TestThatASilentSensorIsReportedOnce(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		AllPlantsFunc: func(ctx context.Context) ([]types.Plant, error) {
			return []types.Plant{{ID: "plant-1", ChipID: "0123456789abcdef"}}, nil
		},
		LatestMoistureFunc: func(ctx context.Context, plantID string) (*types.MoistureRecord, error) {
			return &types.MoistureRecord{PlantID: plantID, Percentage: 40, At: noon.Add(-25 * time.Hour)}, nil
		},
	}

	var published []messaging.TopicMessage
	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			published = append(published, message)
			return nil
		},
	}

	w := newWatchdog(store, messenger, DefaultConfig(), func() time.Time { return noon })

	n, err := w.check(context.Background())
	is.NoErr(err)
	is.Equal(1, n)

	n, err = w.check(context.Background())
	is.NoErr(err)
	is.Equal(0, n)

	is.Equal(1, len(published))
	is.Equal("plant.sensorSilent", published[0].TopicName())

	silent := published[0].(*types.SensorSilent)
	is.Equal("plant-1", silent.PlantID)
	is.Equal(noon.Add(-25*time.Hour), *silent.LastSeen)
}

func TestThatARecentReportIsNotSilent(t *testing.T) {
	is := is.New(t)

	store := &StoreMock{
		AllPlantsFunc: func(ctx context.Context) ([]types.Plant, error) {
			return []types.Plant{{ID: "plant-1"}}, nil
		},
		LatestMoistureFunc: func(ctx context.Context, plantID string) (*types.MoistureRecord, error) {
			return &types.MoistureRecord{PlantID: plantID, At: noon.Add(-time.Hour)}, nil
		},
	}

	w := newWatchdog(store, &messaging.MsgContextMock{}, DefaultConfig(), func() time.Time { return noon })

	n, err := w.check(context.Background())
	is.NoErr(err)
	is.Equal(0, n)
}

func TestThatANeverSeenSensorCountsFromRegistration(t *testing.T) {
	is := is.New(t)

	plants := []types.Plant{
		{ID: "new", CreatedAt: noon.Add(-time.Hour)},
		{ID: "old", CreatedAt: noon.Add(-48 * time.Hour)},
	}

	store := &StoreMock{
		AllPlantsFunc: func(ctx context.Context) ([]types.Plant, error) {
			return plants, nil
		},
		LatestMoistureFunc: func(ctx context.Context, plantID string) (*types.MoistureRecord, error) {
			return nil, nil
		},
	}

	var silentPlants []string
	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			silent := message.(*types.SensorSilent)
			is.True(silent.LastSeen == nil)
			silentPlants = append(silentPlants, silent.PlantID)
			return nil
		},
	}

	w := newWatchdog(store, messenger, DefaultConfig(), func() time.Time { return noon })

	_, err := w.check(context.Background())
	is.NoErr(err)
	is.Equal([]string{"old"}, silentPlants)
}

func TestThatARecoveredSensorIsReportedAgain(t *testing.T) {
	is := is.New(t)

	lastSeen := noon.Add(-25 * time.Hour)
	now := noon

	store := &StoreMock{
		AllPlantsFunc: func(ctx context.Context) ([]types.Plant, error) {
			return []types.Plant{{ID: "plant-1"}}, nil
		},
		LatestMoistureFunc: func(ctx context.Context, plantID string) (*types.MoistureRecord, error) {
			return &types.MoistureRecord{PlantID: plantID, At: lastSeen}, nil
		},
	}

	count := 0
	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			count++
			return nil
		},
	}

	w := newWatchdog(store, messenger, DefaultConfig(), func() time.Time { return now })

	w.check(context.Background())

	lastSeen = noon
	w.check(context.Background())

	now = noon.Add(48 * time.Hour)
	w.check(context.Background())

	is.Equal(2, count)
}
