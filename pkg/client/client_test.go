package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matryer/is"
)

const (
	plantID = "plant-1"
	chipID  = "0123456789abcdef"
)

func TestShouldIrrigateNow(t *testing.T) {
	is := is.New(t)

	var received deviceRequest

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/api/v0/devices/should-irrigate", r.URL.Path)
		is.Equal("application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		is.NoErr(json.Unmarshal(body, &received))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"irrigate":true}`))
	}))
	defer s.Close()

	now := time.Date(2023, 3, 6, 9, 45, 0, 0, time.UTC)

	irrigate, err := NewIrrigationClient(s.URL, plantID, chipID).ShouldIrrigateNow(context.Background(), now)
	is.NoErr(err)
	is.True(irrigate)

	is.Equal(plantID, received.PlantID)
	is.Equal(chipID, received.ChipID)
	is.Equal(now, received.Now.UTC())
}

func TestNextIrrigationTimeWhenNothingIsScheduled(t *testing.T) {
	is := is.New(t)

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer s.Close()

	slot, err := NewIrrigationClient(s.URL, plantID, chipID).NextIrrigationTime(context.Background(), time.Time{})
	is.NoErr(err)
	is.True(slot == nil)
}

func TestNextIrrigationTime(t *testing.T) {
	is := is.New(t)

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		is.True(!containsNow(body))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"slot-1","plantID":"plant-1","dayOfWeek":"everyday","hour":18,"minute":30}`))
	}))
	defer s.Close()

	slot, err := NewIrrigationClient(s.URL, plantID, chipID).NextIrrigationTime(context.Background(), time.Time{})
	is.NoErr(err)
	is.Equal(18, slot.Hour)
	is.Equal(30, slot.Minute)
}

func TestUpcomingIrrigation(t *testing.T) {
	is := is.New(t)

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/api/v0/devices/upcoming-irrigation", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"slot":{"id":"slot-1","plantID":"plant-1","dayOfWeek":"monday","hour":8,"minute":0},"at":"2023-03-13T08:00:00Z"}`))
	}))
	defer s.Close()

	upcoming, err := NewIrrigationClient(s.URL, plantID, chipID).UpcomingIrrigation(context.Background(), time.Time{})
	is.NoErr(err)
	is.Equal("slot-1", upcoming.Slot.ID)
	is.True(time.Date(2023, 3, 13, 8, 0, 0, 0, time.UTC).Equal(upcoming.At))
}

func TestReportMoisture(t *testing.T) {
	is := is.New(t)

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/api/v0/devices/moisture/37", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))
	defer s.Close()

	err := NewIrrigationClient(s.URL, plantID, chipID).ReportMoisture(context.Background(), 37)
	is.NoErr(err)
}

func TestReportIrrigationFailure(t *testing.T) {
	is := is.New(t)

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer s.Close()

	err := NewIrrigationClient(s.URL, plantID, chipID).ReportIrrigation(context.Background())
	is.True(err != nil)
}

func containsNow(body []byte) bool {
	m := map[string]any{}
	json.Unmarshal(body, &m)
	_, ok := m["now"]
	return ok
}
