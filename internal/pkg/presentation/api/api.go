package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"

	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/application/plants"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/application/scheduling"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/logging"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/presentation/api/auth"
	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

var tracer = otel.Tracer("iot-irrigation-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, jwtSecret string, svc plants.PlantService) (*chi.Mux, error) {
	log := logging.GetFromContext(ctx)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	authenticator, err := auth.NewAuthenticator(ctx, log, jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/devices", func(r chi.Router) {
			r.Post("/plant", getDevicePlantHandler(log, svc))
			r.Post("/should-irrigate", shouldIrrigateHandler(log, svc))
			r.Post("/next-irrigation", nextIrrigationHandler(log, svc))
			r.Post("/upcoming-irrigation", upcomingIrrigationHandler(log, svc))
			r.Post("/irrigation-times", irrigationTimesHandler(log, svc))
			r.Post("/moisture/{percentage}", recordMoistureHandler(log, svc))
			r.Post("/irrigate", irrigateHandler(log, svc))
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/plants", func(r chi.Router) {
				r.Get("/", listPlantsHandler(log, svc))
				r.Post("/", registerPlantHandler(log, svc))

				r.Route("/{plantID}", func(r chi.Router) {
					r.Get("/", getPlantHandler(log, svc))
					r.Put("/", updatePlantHandler(log, svc))
					r.Delete("/", deletePlantHandler(log, svc))

					r.Get("/times", activeTimesHandler(log, svc))

					r.Get("/timestamps", timeSlotsHandler(log, svc))
					r.Post("/timestamps", addTimeSlotHandler(log, svc))
					r.Delete("/timestamps", removeAllTimeSlotsHandler(log, svc))
					r.Delete("/timestamps/{slotID}", removeTimeSlotHandler(log, svc))

					r.Get("/periodstamps", periodSlotsHandler(log, svc))
					r.Post("/periodstamps", changePeriodFrequencyHandler(log, svc))

					r.Get("/moisture", currentMoistureHandler(log, svc))
					r.Get("/moisture/history", moistureHistoryHandler(log, svc))
					r.Get("/irrigations", irrigationHistoryHandler(log, svc))
				})
			})
		})
	})

	return router, nil
}

// deviceRequest identifies a device by the plant it waters and its chip id.
// Now is optional and defaults to the current time of the service.
type deviceRequest struct {
	PlantID string     `json:"plantID"`
	ChipID  string     `json:"chipID"`
	Now     *time.Time `json:"now,omitempty"`
}

func (d deviceRequest) now() time.Time {
	if d.Now == nil {
		return time.Time{}
	}
	return *d.Now
}

func readDeviceRequest(r *http.Request) (deviceRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return deviceRequest{}, err
	}

	dr := deviceRequest{}
	if err = json.Unmarshal(body, &dr); err != nil {
		return deviceRequest{}, err
	}

	if dr.PlantID == "" || dr.ChipID == "" {
		return deviceRequest{}, errors.New("plantID and chipID are required")
	}

	return dr, nil
}

func getDevicePlantHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-device-plant")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		dr, err := readDeviceRequest(r)
		if err != nil {
			requestLogger.Error().Err(err).Msg("bad device request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		plant, err := svc.GetForDevice(ctx, dr.PlantID, dr.ChipID)
		if err != nil {
			writeError(w, requestLogger, err, "could not fetch plant")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, plant)
	}
}

func shouldIrrigateHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "should-irrigate")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		dr, err := readDeviceRequest(r)
		if err != nil {
			requestLogger.Error().Err(err).Msg("bad device request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		requestLogger = requestLogger.With().Str("plantID", dr.PlantID).Logger()
		ctx = logging.NewContextWithLogger(ctx, requestLogger)

		irrigate, err := svc.ShouldIrrigateNow(ctx, dr.PlantID, dr.ChipID, dr.now())
		if err != nil {
			writeError(w, requestLogger, err, "could not decide on irrigation")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, struct {
			Irrigate bool `json:"irrigate"`
		}{irrigate})
	}
}

func nextIrrigationHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "next-irrigation")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		dr, err := readDeviceRequest(r)
		if err != nil {
			requestLogger.Error().Err(err).Msg("bad device request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		slot, err := svc.NextSlotToday(ctx, dr.PlantID, dr.ChipID, dr.now())
		if err != nil {
			writeError(w, requestLogger, err, "could not fetch next irrigation")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, slot)
	}
}

func upcomingIrrigationHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "upcoming-irrigation")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		dr, err := readDeviceRequest(r)
		if err != nil {
			requestLogger.Error().Err(err).Msg("bad device request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		upcoming, err := svc.UpcomingIrrigation(ctx, dr.PlantID, dr.ChipID, dr.now())
		if err != nil {
			writeError(w, requestLogger, err, "could not fetch upcoming irrigation")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, upcoming)
	}
}

func irrigationTimesHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "irrigation-times")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		dr, err := readDeviceRequest(r)
		if err != nil {
			requestLogger.Error().Err(err).Msg("bad device request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		slots, err := svc.TodaySlots(ctx, dr.PlantID, dr.ChipID, dr.now())
		if err != nil {
			writeError(w, requestLogger, err, "could not fetch irrigation times")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, slots)
	}
}

func recordMoistureHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "record-moisture")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		percentage, err := strconv.Atoi(chi.URLParam(r, "percentage"))
		if err != nil {
			requestLogger.Error().Err(err).Msg("percentage is not a number")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		dr, err := readDeviceRequest(r)
		if err != nil {
			requestLogger.Error().Err(err).Msg("bad device request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		record, err := svc.RecordMoisture(ctx, dr.PlantID, dr.ChipID, percentage)
		if err != nil {
			writeError(w, requestLogger, err, "could not record moisture")
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, record)
	}
}

func irrigateHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "irrigate")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		dr, err := readDeviceRequest(r)
		if err != nil {
			requestLogger.Error().Err(err).Msg("bad device request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		record, err := svc.Irrigate(ctx, dr.PlantID, dr.ChipID)
		if err != nil {
			writeError(w, requestLogger, err, "could not record irrigation")
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, record)
	}
}

func listPlantsHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-plants")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result, err := svc.List(ctx, auth.GetOwnerFromContext(ctx))
		if err != nil {
			writeError(w, requestLogger, err, "could not list plants")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, result)
	}
}

func registerPlantHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "register-plant")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		registration := struct {
			ChipID string `json:"chipID"`
		}{}

		if err = readJSON(r, &registration); err != nil {
			requestLogger.Error().Err(err).Msg("unable to unmarshal body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		plant, err := svc.Register(ctx, auth.GetOwnerFromContext(ctx), registration.ChipID)
		if err != nil {
			writeError(w, requestLogger, err, "could not register plant")
			return
		}

		w.Header().Add("Location", fmt.Sprintf("%s/%s", r.URL.Path, plant.ID))
		writeJSON(w, requestLogger, http.StatusCreated, plant)
	}
}

func getPlantHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-plant")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		plantID := chi.URLParam(r, "plantID")
		requestLogger = requestLogger.With().Str("plantID", plantID).Logger()

		plant, err := svc.Get(ctx, auth.GetOwnerFromContext(ctx), plantID)
		if err != nil {
			writeError(w, requestLogger, err, "could not fetch plant")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, plant)
	}
}

func updatePlantHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-plant")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		plantID := chi.URLParam(r, "plantID")
		requestLogger = requestLogger.With().Str("plantID", plantID).Logger()
		ctx = logging.NewContextWithLogger(ctx, requestLogger)

		update := types.PlantUpdate{}
		if err = readJSON(r, &update); err != nil {
			requestLogger.Error().Err(err).Msg("unable to unmarshal body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		plant, err := svc.Update(ctx, auth.GetOwnerFromContext(ctx), plantID, update)
		if err != nil {
			writeError(w, requestLogger, err, "could not update plant")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, plant)
	}
}

func deletePlantHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-plant")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		plantID := chi.URLParam(r, "plantID")

		err = svc.Delete(ctx, auth.GetOwnerFromContext(ctx), plantID)
		if err != nil {
			writeError(w, requestLogger, err, "could not delete plant")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func activeTimesHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-active-times")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		times, err := svc.ActiveSlots(ctx, auth.GetOwnerFromContext(ctx), chi.URLParam(r, "plantID"))
		if err != nil {
			writeError(w, requestLogger, err, "could not fetch times")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, times)
	}
}

func timeSlotsHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-timestamps")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		slots, err := svc.TimeSlots(ctx, auth.GetOwnerFromContext(ctx), chi.URLParam(r, "plantID"))
		if err != nil {
			writeError(w, requestLogger, err, "could not fetch timestamps")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, slots)
	}
}

func addTimeSlotHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "add-timestamp")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		wt := types.WeekTime{}
		if err = readJSON(r, &wt); err != nil {
			requestLogger.Error().Err(err).Msg("unable to unmarshal body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		slot, err := svc.AddTimeSlot(ctx, auth.GetOwnerFromContext(ctx), chi.URLParam(r, "plantID"), wt)
		if err != nil {
			writeError(w, requestLogger, err, "could not add timestamp")
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, slot)
	}
}

func removeAllTimeSlotsHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "remove-all-timestamps")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		removed, err := svc.RemoveAllTimeSlots(ctx, auth.GetOwnerFromContext(ctx), chi.URLParam(r, "plantID"))
		if err != nil {
			writeError(w, requestLogger, err, "could not remove timestamps")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, struct {
			Removed int `json:"removed"`
		}{removed})
	}
}

func removeTimeSlotHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "remove-timestamp")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		err = svc.RemoveTimeSlot(ctx, auth.GetOwnerFromContext(ctx), chi.URLParam(r, "plantID"), chi.URLParam(r, "slotID"))
		if err != nil {
			writeError(w, requestLogger, err, "could not remove timestamp")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func periodSlotsHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-periodstamps")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		slots, err := svc.PeriodSlots(ctx, auth.GetOwnerFromContext(ctx), chi.URLParam(r, "plantID"))
		if err != nil {
			writeError(w, requestLogger, err, "could not fetch periodstamps")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, slots)
	}
}

func changePeriodFrequencyHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "change-period-frequency")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		frequency := struct {
			TimesAWeek int `json:"timesAWeek"`
		}{}

		if err = readJSON(r, &frequency); err != nil {
			requestLogger.Error().Err(err).Msg("unable to unmarshal body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		planned, err := svc.ChangePeriodFrequency(ctx, auth.GetOwnerFromContext(ctx), chi.URLParam(r, "plantID"), frequency.TimesAWeek)
		if err != nil {
			writeError(w, requestLogger, err, "could not change period frequency")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, struct {
			Planned int `json:"planned"`
		}{planned})
	}
}

func currentMoistureHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "current-moisture")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		latest, err := svc.CurrentMoisture(ctx, auth.GetOwnerFromContext(ctx), chi.URLParam(r, "plantID"))
		if err != nil {
			writeError(w, requestLogger, err, "could not fetch moisture")
			return
		}

		if latest == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, latest)
	}
}

func moistureHistoryHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "moisture-history")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		period, err := plants.ParseHistoryPeriod(r.URL.Query().Get("p"))
		if err != nil {
			writeError(w, requestLogger, err, "bad history period")
			return
		}

		records, err := svc.MoistureHistory(ctx, auth.GetOwnerFromContext(ctx), chi.URLParam(r, "plantID"), period)
		if err != nil {
			writeError(w, requestLogger, err, "could not fetch moisture history")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, records)
	}
}

func irrigationHistoryHandler(log zerolog.Logger, svc plants.PlantService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "irrigation-history")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		period, err := plants.ParseHistoryPeriod(r.URL.Query().Get("p"))
		if err != nil {
			writeError(w, requestLogger, err, "bad history period")
			return
		}

		records, err := svc.IrrigationHistory(ctx, auth.GetOwnerFromContext(ctx), chi.URLParam(r, "plantID"), period)
		if err != nil {
			writeError(w, requestLogger, err, "could not fetch irrigation history")
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, records)
	}
}

func readJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func writeJSON(w http.ResponseWriter, logger zerolog.Logger, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error().Err(err).Msg("unable to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

var notFound = []error{database.ErrPlantNotFound, database.ErrSlotNotFound, plants.ErrNoSlotToday, plants.ErrNoSlotScheduled}
var conflict = []error{database.ErrSlotAlreadyExists, database.ErrChipIDExists}
var badRequest = []error{
	plants.ErrInvalidChipID, plants.ErrInvalidPercentage, plants.ErrInvalidWaterAmount,
	plants.ErrInvalidThreshold, plants.ErrInvalidWeekTime, plants.ErrInvalidHistoryPeriod,
	scheduling.ErrInvalidFrequency, scheduling.ErrUnknownIrrigationType,
}

func statusFor(err error) int {
	is := func(targets []error) bool {
		for _, t := range targets {
			if errors.Is(err, t) {
				return true
			}
		}
		return false
	}

	switch {
	case is(notFound):
		return http.StatusNotFound
	case is(conflict):
		return http.StatusConflict
	case is(badRequest):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, logger zerolog.Logger, err error, msg string) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Msg(msg)
		w.WriteHeader(status)
		return
	}

	logger.Debug().Err(err).Msg(msg)
	http.Error(w, err.Error(), status)
}
