package plants

import (
	"context"
	"testing"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/plantpal/iot-irrigation-mgmt/pkg/types"
)

func TestMoistureReportHandler(t *testing.T) {
	is := is.New(t)

	svc := &PlantServiceMock{
		RecordMoistureFunc: func(ctx context.Context, plantID, chipID string, percentage int) (types.MoistureRecord, error) {
			return types.MoistureRecord{PlantID: plantID, Percentage: percentage}, nil
		},
	}

	var handler messaging.TopicMessageHandler = MoistureReportHandler(svc)
	handler(context.Background(), amqp.Delivery{
		RoutingKey: MoistureTopic,
		Body:       []byte(`{"plantID":"plant-1","chipID":"0123456789abcdef","percentage":42}`),
	}, zerolog.Logger{})

	is.Equal(1, len(svc.RecordMoistureCalls()))
	is.Equal("plant-1", svc.RecordMoistureCalls()[0].PlantID)
	is.Equal("0123456789abcdef", svc.RecordMoistureCalls()[0].ChipID)
	is.Equal(42, svc.RecordMoistureCalls()[0].Percentage)
}

func TestMoistureReportHandlerIgnoresGarbage(t *testing.T) {
	is := is.New(t)

	svc := &PlantServiceMock{}

	handler := MoistureReportHandler(svc)
	handler(context.Background(), amqp.Delivery{Body: []byte(`not json`)}, zerolog.Logger{})

	is.Equal(0, len(svc.RecordMoistureCalls()))
}
