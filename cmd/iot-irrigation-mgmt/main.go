package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/application/plants"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/application/watchdog"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/logging"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/router"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/tracing"
	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/presentation/api"
)

const serviceName string = "iot-irrigation-mgmt"

var configFilePath string
var databaseDriver string

func main() {
	serviceVersion := version()

	ctx, logger := logging.NewLogger(context.Background(), serviceName, serviceVersion)
	logger.Info().Msg("starting up ...")

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	exitIf(err, logger, "failed to init tracing")
	defer cleanup()

	flag.StringVar(&configFilePath, "config", env.GetVariableOrDefault(logger, "IRRIGATION_CONFIG_FILE", "/opt/plantpal/config/irrigation.yaml"), "irrigation configuration file")
	flag.StringVar(&databaseDriver, "db", env.GetVariableOrDefault(logger, "IRRIGATION_DB_DRIVER", "postgres"), "database driver, postgres or sqlite")
	flag.Parse()

	cfg, err := loadConfiguration(logger, configFilePath)
	exitIf(err, logger, "failed to load configuration")

	connect, err := newConnector(logger, databaseDriver)
	exitIf(err, logger, "invalid database configuration")

	messenger, err := messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	defer messenger.Close()

	jwtSecret := env.GetVariableOrDefault(logger, "JWT_SECRET", "")

	r, err := initialize(ctx, cfg, connect, messenger, jwtSecret)
	exitIf(err, logger, "failed to initialize service")

	servicePort := env.GetVariableOrDefault(logger, "SERVICE_PORT", "8080")
	logger.Info().Str("port", servicePort).Msg("starting to listen for connections")

	err = http.ListenAndServe(":"+servicePort, r)
	exitIf(err, logger, "failed to start request router")
}

// initialize builds the plant service on top of the store returned by connect
// and returns a router serving its api. A nil messenger disables event
// publishing, the moisture topic consumer and the sensor watchdog.
func initialize(ctx context.Context, cfg *plants.Config, connect database.ConnectorFunc, messenger messaging.MsgContext, jwtSecret string) (*chi.Mux, error) {
	store, err := database.New(connect)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	svc, err := plants.New(store, messenger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create plant service: %w", err)
	}

	if messenger != nil {
		messenger.RegisterTopicMessageHandler(plants.MoistureTopic, plants.MoistureReportHandler(svc))
		watchdog.New(store, messenger, cfg.Watchdog).Start(ctx)
	}

	return api.RegisterHandlers(ctx, router.New(serviceName), jwtSecret, svc)
}

func loadConfiguration(logger zerolog.Logger, path string) (*plants.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Str("path", path).Msg("configuration file not found, using defaults")
			return plants.DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()

	return plants.LoadConfiguration(f)
}

func newConnector(logger zerolog.Logger, driver string) (database.ConnectorFunc, error) {
	switch driver {
	case "postgres":
		return database.NewPostgreSQLConnector(logger, database.LoadConfigFromEnv(logger)), nil
	case "sqlite":
		logger.Warn().Msg("using an in-memory database, all data will be lost on restart")
		return database.NewSQLiteConnector(logger), nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Error().Err(err).Msg(msg)
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	buildSettings := buildInfo.Settings
	infoMap := map[string]string{}
	for _, s := range buildSettings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	return sha
}
