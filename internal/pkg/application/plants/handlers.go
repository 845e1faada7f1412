package plants

import (
	"context"
	"encoding/json"

	"github.com/diwise/messaging-golang/pkg/messaging"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/logging"
)

const MoistureTopic = "plant-moisture"

// MoistureReportHandler records moisture readings that gateways publish on
// MoistureTopic on behalf of devices that do not talk http.
func MoistureReportHandler(svc PlantService) messaging.TopicMessageHandler {
	return func(ctx context.Context, msg amqp.Delivery, logger zerolog.Logger) {
		report := struct {
			PlantID    string `json:"plantID"`
			ChipID     string `json:"chipID"`
			Percentage int    `json:"percentage"`
		}{}

		err := json.Unmarshal(msg.Body, &report)
		if err != nil {
			logger.Error().Err(err).Msgf("failed to unmarshal message from %s", msg.RoutingKey)
			return
		}

		logger = logger.With().Str("plantID", report.PlantID).Logger()
		ctx = logging.NewContextWithLogger(ctx, logger)

		_, err = svc.RecordMoisture(ctx, report.PlantID, report.ChipID, report.Percentage)
		if err != nil {
			logger.Error().Err(err).Msg("could not record moisture")
			return
		}

		logger.Debug().Msgf("%s handled", msg.RoutingKey)
	}
}
