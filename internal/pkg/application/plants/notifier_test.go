package plants

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

func TestSendIrrigationPerformedToSubscriber(t *testing.T) {
	is := is.New(t)

	var body []byte
	var eventType string

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		eventType = r.Header.Get("Ce-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer s.Close()

	cfg := DefaultConfig()
	cfg.Notifications = []Notification{{
		ID:          "irrigations",
		Type:        "plant.irrigationPerformed",
		Subscribers: []SubscriberConfig{{Endpoint: s.URL}},
	}}

	at := time.Date(2023, 3, 6, 9, 45, 0, 0, time.UTC)
	err := NewEventSender(cfg).Send(context.Background(), "plant-1", at, &types.IrrigationPerformed{
		PlantID:     "plant-1",
		ChipID:      "0123456789abcdef",
		WaterAmount: 1000,
		Timestamp:   at,
	})
	is.NoErr(err)

	is.Equal("plant.irrigationPerformed", eventType)

	ip := types.IrrigationPerformed{}
	is.NoErr(json.Unmarshal(body, &ip))
	is.Equal(1000, ip.WaterAmount)
}

func TestSendWithoutSubscribersDoesNothing(t *testing.T) {
	is := is.New(t)

	err := NewEventSender(DefaultConfig()).Send(context.Background(), "plant-1", time.Now(), &types.MoistureRecorded{})
	is.NoErr(err)
}
