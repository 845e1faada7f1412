package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"

	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/application/plants"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/application/scheduling"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/presentation/api/auth"
	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

const secret = "a-test-secret"

func TestHealthEndpointReturns204(t *testing.T) {
	is, server, _ := setupTest(t, &plants.PlantServiceMock{})
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", "", nil)
	is.Equal(http.StatusNoContent, resp.StatusCode)
}

func TestShouldIrrigate(t *testing.T) {
	svc := &plants.PlantServiceMock{
		ShouldIrrigateNowFunc: func(ctx context.Context, plantID, chipID string, now time.Time) (bool, error) {
			return plantID == "plant-1" && now.Hour() == 9, nil
		},
	}
	is, server, _ := setupTest(t, svc)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/v0/devices/should-irrigate", "",
		strings.NewReader(`{"plantID":"plant-1","chipID":"0123456789abcdef","now":"2023-03-06T09:45:00Z"}`))
	is.Equal(http.StatusOK, resp.StatusCode)
	is.Equal(`{"irrigate":true}`, body)

	call := svc.ShouldIrrigateNowCalls()[0]
	is.Equal("0123456789abcdef", call.ChipID)
	is.Equal(time.Date(2023, 3, 6, 9, 45, 0, 0, time.UTC), call.Now.UTC())
}

func TestShouldIrrigateWithoutNowUsesZeroTime(t *testing.T) {
	svc := &plants.PlantServiceMock{
		ShouldIrrigateNowFunc: func(ctx context.Context, plantID, chipID string, now time.Time) (bool, error) {
			return false, nil
		},
	}
	is, server, _ := setupTest(t, svc)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/devices/should-irrigate", "",
		strings.NewReader(`{"plantID":"plant-1","chipID":"0123456789abcdef"}`))
	is.Equal(http.StatusOK, resp.StatusCode)
	is.True(svc.ShouldIrrigateNowCalls()[0].Now.IsZero())
}

func TestDeviceRequestsRequirePlantAndChip(t *testing.T) {
	is, server, _ := setupTest(t, &plants.PlantServiceMock{})
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/devices/should-irrigate", "",
		strings.NewReader(`{"plantID":"plant-1"}`))
	is.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownDeviceIsNotFound(t *testing.T) {
	svc := &plants.PlantServiceMock{
		NextSlotTodayFunc: func(ctx context.Context, plantID, chipID string, now time.Time) (types.Slot, error) {
			return types.Slot{}, database.ErrPlantNotFound
		},
	}
	is, server, _ := setupTest(t, svc)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/devices/next-irrigation", "",
		strings.NewReader(`{"plantID":"plant-1","chipID":"0123456789abcdef"}`))
	is.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestMisconfiguredPlantIsAServerError(t *testing.T) {
	svc := &plants.PlantServiceMock{
		ShouldIrrigateNowFunc: func(ctx context.Context, plantID, chipID string, now time.Time) (bool, error) {
			return false, fmt.Errorf("%w: %s: %s", plants.ErrMisconfiguredPlant, plantID, scheduling.ErrUnknownIrrigationType)
		},
	}
	is, server, _ := setupTest(t, svc)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/devices/should-irrigate", "",
		strings.NewReader(`{"plantID":"plant-1","chipID":"0123456789abcdef"}`))
	is.Equal(http.StatusInternalServerError, resp.StatusCode)
}

func TestUpcomingIrrigation(t *testing.T) {
	at := time.Date(2023, 3, 13, 8, 0, 0, 0, time.UTC)
	svc := &plants.PlantServiceMock{
		UpcomingIrrigationFunc: func(ctx context.Context, plantID, chipID string, now time.Time) (types.UpcomingIrrigation, error) {
			if plantID == "empty" {
				return types.UpcomingIrrigation{}, plants.ErrNoSlotScheduled
			}
			return types.UpcomingIrrigation{Slot: types.Slot{ID: "slot-1", Weekday: types.Monday, Hour: 8}, At: at}, nil
		},
	}
	is, server, _ := setupTest(t, svc)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/v0/devices/upcoming-irrigation", "",
		strings.NewReader(`{"plantID":"plant-1","chipID":"0123456789abcdef"}`))
	is.Equal(http.StatusOK, resp.StatusCode)

	upcoming := types.UpcomingIrrigation{}
	is.NoErr(json.Unmarshal([]byte(body), &upcoming))
	is.Equal("slot-1", upcoming.Slot.ID)
	is.True(at.Equal(upcoming.At))

	resp, _ = testRequest(is, server, http.MethodPost, "/api/v0/devices/upcoming-irrigation", "",
		strings.NewReader(`{"plantID":"empty","chipID":"0123456789abcdef"}`))
	is.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestRecordMoisture(t *testing.T) {
	svc := &plants.PlantServiceMock{
		RecordMoistureFunc: func(ctx context.Context, plantID, chipID string, percentage int) (types.MoistureRecord, error) {
			if percentage > 100 {
				return types.MoistureRecord{}, plants.ErrInvalidPercentage
			}
			return types.MoistureRecord{PlantID: plantID, Percentage: percentage}, nil
		},
	}
	is, server, _ := setupTest(t, svc)
	defer server.Close()

	body := `{"plantID":"plant-1","chipID":"0123456789abcdef"}`

	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/devices/moisture/42", "", strings.NewReader(body))
	is.Equal(http.StatusCreated, resp.StatusCode)
	is.Equal(42, svc.RecordMoistureCalls()[0].Percentage)

	resp, _ = testRequest(is, server, http.MethodPost, "/api/v0/devices/moisture/142", "", strings.NewReader(body))
	is.Equal(http.StatusBadRequest, resp.StatusCode)

	resp, _ = testRequest(is, server, http.MethodPost, "/api/v0/devices/moisture/wet", "", strings.NewReader(body))
	is.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestOwnerRoutesRequireAToken(t *testing.T) {
	is, server, _ := setupTest(t, &plants.PlantServiceMock{})
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/plants", "", nil)
	is.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, _ = testRequest(is, server, http.MethodGet, "/api/v0/plants", "not-a-token", nil)
	is.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func TestListPlantsForTheTokenSubject(t *testing.T) {
	svc := &plants.PlantServiceMock{
		ListFunc: func(ctx context.Context, ownerID string) ([]types.Plant, error) {
			return []types.Plant{{ID: "plant-1", OwnerID: ownerID}}, nil
		},
	}
	is, server, token := setupTest(t, svc)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/api/v0/plants", token, nil)
	is.Equal(http.StatusOK, resp.StatusCode)

	result := []types.Plant{}
	is.NoErr(json.Unmarshal([]byte(body), &result))
	is.Equal(1, len(result))
	is.Equal("owner@example.com", result[0].OwnerID)
}

func TestRegisterPlant(t *testing.T) {
	svc := &plants.PlantServiceMock{
		RegisterFunc: func(ctx context.Context, ownerID, chipID string) (types.Plant, error) {
			if chipID == "0123456789abcdef" {
				return types.Plant{}, database.ErrChipIDExists
			}
			return types.Plant{ID: "plant-2", OwnerID: ownerID, ChipID: chipID}, nil
		},
	}
	is, server, token := setupTest(t, svc)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/plants", token, strings.NewReader(`{"chipID":"fedcba9876543210"}`))
	is.Equal(http.StatusCreated, resp.StatusCode)
	is.Equal("/api/v0/plants/plant-2", resp.Header.Get("Location"))

	resp, _ = testRequest(is, server, http.MethodPost, "/api/v0/plants", token, strings.NewReader(`{"chipID":"0123456789abcdef"}`))
	is.Equal(http.StatusConflict, resp.StatusCode)
}

func TestAddTimestamp(t *testing.T) {
	svc := &plants.PlantServiceMock{
		AddTimeSlotFunc: func(ctx context.Context, ownerID, plantID string, wt types.WeekTime) (types.Slot, error) {
			return types.Slot{ID: "slot-1", PlantID: plantID, Weekday: wt.Weekday, Hour: wt.Hour, Minute: wt.Minute}, nil
		},
	}
	is, server, token := setupTest(t, svc)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/plants/plant-1/timestamps", token,
		strings.NewReader(`{"dayOfWeek":"everyday","hour":7,"minute":30}`))
	is.Equal(http.StatusCreated, resp.StatusCode)

	call := svc.AddTimeSlotCalls()[0]
	is.Equal("plant-1", call.PlantID)
	is.Equal(types.WeekTime{Weekday: types.Everyday, Hour: 7, Minute: 30}, call.Wt)
}

func TestChangePeriodFrequency(t *testing.T) {
	svc := &plants.PlantServiceMock{
		ChangePeriodFrequencyFunc: func(ctx context.Context, ownerID, plantID string, timesAWeek int) (int, error) {
			return timesAWeek, nil
		},
	}
	is, server, token := setupTest(t, svc)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodPost, "/api/v0/plants/plant-1/periodstamps", token,
		strings.NewReader(`{"timesAWeek":3}`))
	is.Equal(http.StatusOK, resp.StatusCode)
	is.Equal(`{"planned":3}`, body)
}

func TestMoistureHistoryRejectsUnknownPeriods(t *testing.T) {
	svc := &plants.PlantServiceMock{
		MoistureHistoryFunc: func(ctx context.Context, ownerID, plantID string, period plants.HistoryPeriod) ([]types.MoistureRecord, error) {
			return []types.MoistureRecord{}, nil
		},
	}
	is, server, token := setupTest(t, svc)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/plants/plant-1/moisture/history?p=past_day", token, nil)
	is.Equal(http.StatusOK, resp.StatusCode)
	is.Equal(plants.PastDay, svc.MoistureHistoryCalls()[0].Period)

	resp, _ = testRequest(is, server, http.MethodGet, "/api/v0/plants/plant-1/moisture/history?p=past_decade", token, nil)
	is.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestCurrentMoistureWithoutReadings(t *testing.T) {
	svc := &plants.PlantServiceMock{
		CurrentMoistureFunc: func(ctx context.Context, ownerID, plantID string) (*types.MoistureRecord, error) {
			return nil, nil
		},
	}
	is, server, token := setupTest(t, svc)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/plants/plant-1/moisture", token, nil)
	is.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestDeletePlant(t *testing.T) {
	svc := &plants.PlantServiceMock{
		DeleteFunc: func(ctx context.Context, ownerID, plantID string) error {
			return nil
		},
	}
	is, server, token := setupTest(t, svc)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodDelete, "/api/v0/plants/plant-1", token, nil)
	is.Equal(http.StatusNoContent, resp.StatusCode)
	is.Equal("owner@example.com", svc.DeleteCalls()[0].OwnerID)
}

func setupTest(t *testing.T, svc plants.PlantService) (*is.I, *httptest.Server, string) {
	is := is.New(t)

	r, err := RegisterHandlers(context.Background(), chi.NewRouter(), secret, svc)
	is.NoErr(err)

	tokenAuth, err := auth.NewTokenAuth(secret)
	is.NoErr(err)

	_, token, err := tokenAuth.Encode(map[string]interface{}{"sub": "owner@example.com"})
	is.NoErr(err)

	return is, httptest.NewServer(r), token
}

func testRequest(is *is.I, ts *httptest.Server, method, path, token string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	if token != "" {
		req.Header.Add("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return resp, string(respBody)
}
