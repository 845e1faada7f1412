package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/logging"
	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

// IrrigationClient talks to the device endpoints on behalf of a single
// device, identified by the plant it waters and its chip id.
type IrrigationClient interface {
	Plant(ctx context.Context) (*types.Plant, error)
	ShouldIrrigateNow(ctx context.Context, now time.Time) (bool, error)
	NextIrrigationTime(ctx context.Context, now time.Time) (*types.Slot, error)
	UpcomingIrrigation(ctx context.Context, now time.Time) (*types.UpcomingIrrigation, error)
	IrrigationTimes(ctx context.Context, now time.Time) ([]types.Slot, error)
	ReportMoisture(ctx context.Context, percentage int) error
	ReportIrrigation(ctx context.Context) error
}

type irrigationClient struct {
	url        string
	plantID    string
	chipID     string
	httpClient http.Client
}

var tracer = otel.Tracer("iot-irrigation-mgmt-client")

func NewIrrigationClient(url, plantID, chipID string) IrrigationClient {
	return &irrigationClient{
		url:     url,
		plantID: plantID,
		chipID:  chipID,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type deviceRequest struct {
	PlantID string     `json:"plantID"`
	ChipID  string     `json:"chipID"`
	Now     *time.Time `json:"now,omitempty"`
}

func (c *irrigationClient) request(now time.Time) deviceRequest {
	dr := deviceRequest{PlantID: c.plantID, ChipID: c.chipID}
	if !now.IsZero() {
		dr.Now = &now
	}
	return dr
}

// post sends body to path and returns the status code and the response body.
func (c *irrigationClient) post(ctx context.Context, path string, body deviceRequest) (int, []byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+path, bytes.NewReader(b))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

func (c *irrigationClient) Plant(ctx context.Context) (*types.Plant, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-plant")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	status, body, err := c.post(ctx, "/api/v0/devices/plant", c.request(time.Time{}))
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		err = fmt.Errorf("request failed with status code %d", status)
		return nil, err
	}

	plant := &types.Plant{}
	if err = json.Unmarshal(body, plant); err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return plant, nil
}

func (c *irrigationClient) ShouldIrrigateNow(ctx context.Context, now time.Time) (bool, error) {
	var err error
	ctx, span := tracer.Start(ctx, "should-irrigate-now")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	status, body, err := c.post(ctx, "/api/v0/devices/should-irrigate", c.request(now))
	if err != nil {
		return false, err
	}

	if status != http.StatusOK {
		err = fmt.Errorf("request failed with status code %d", status)
		return false, err
	}

	result := struct {
		Irrigate bool `json:"irrigate"`
	}{}

	if err = json.Unmarshal(body, &result); err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return false, err
	}

	return result.Irrigate, nil
}

// NextIrrigationTime returns nil, and no error, when nothing more is scheduled today.
func (c *irrigationClient) NextIrrigationTime(ctx context.Context, now time.Time) (*types.Slot, error) {
	var err error
	ctx, span := tracer.Start(ctx, "next-irrigation-time")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	status, body, err := c.post(ctx, "/api/v0/devices/next-irrigation", c.request(now))
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		log.Debug().Msgf("nothing more scheduled today for plant %s", c.plantID)
		return nil, nil
	}

	if status != http.StatusOK {
		err = fmt.Errorf("request failed with status code %d", status)
		return nil, err
	}

	slot := &types.Slot{}
	if err = json.Unmarshal(body, slot); err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return slot, nil
}

// UpcomingIrrigation returns nil, and no error, when the plant has no slots at all.
func (c *irrigationClient) UpcomingIrrigation(ctx context.Context, now time.Time) (*types.UpcomingIrrigation, error) {
	var err error
	ctx, span := tracer.Start(ctx, "upcoming-irrigation")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	status, body, err := c.post(ctx, "/api/v0/devices/upcoming-irrigation", c.request(now))
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return nil, nil
	}

	if status != http.StatusOK {
		err = fmt.Errorf("request failed with status code %d", status)
		return nil, err
	}

	upcoming := &types.UpcomingIrrigation{}
	if err = json.Unmarshal(body, upcoming); err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return upcoming, nil
}

func (c *irrigationClient) IrrigationTimes(ctx context.Context, now time.Time) ([]types.Slot, error) {
	var err error
	ctx, span := tracer.Start(ctx, "irrigation-times")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	status, body, err := c.post(ctx, "/api/v0/devices/irrigation-times", c.request(now))
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		err = fmt.Errorf("request failed with status code %d", status)
		return nil, err
	}

	slots := []types.Slot{}
	if err = json.Unmarshal(body, &slots); err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return slots, nil
}

func (c *irrigationClient) ReportMoisture(ctx context.Context, percentage int) error {
	var err error
	ctx, span := tracer.Start(ctx, "report-moisture")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	status, _, err := c.post(ctx, fmt.Sprintf("/api/v0/devices/moisture/%d", percentage), c.request(time.Time{}))
	if err != nil {
		return err
	}

	if status != http.StatusCreated {
		err = fmt.Errorf("request failed with status code %d", status)
		return err
	}

	return nil
}

func (c *irrigationClient) ReportIrrigation(ctx context.Context) error {
	var err error
	ctx, span := tracer.Start(ctx, "report-irrigation")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	status, _, err := c.post(ctx, "/api/v0/devices/irrigate", c.request(time.Time{}))
	if err != nil {
		return err
	}

	if status != http.StatusCreated {
		err = fmt.Errorf("request failed with status code %d", status)
		return err
	}

	return nil
}
