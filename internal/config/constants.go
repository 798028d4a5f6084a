package config

import "time"

const (
	envPort           = "PORT"
	envVlrBaseURL     = "VLR_BASE_URL"
	envVlrTimeout     = "VLR_TIMEOUT"
	envVlrDelay       = "VLR_REQUEST_DELAY"
	envPlayerTable    = "PLAYER_TABLE_PATH"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envServiceVersion = "SERVICE_VERSION"

	defaultPort        = "8000"
	defaultVlrBaseURL  = "https://www.vlr.gg"
	defaultVlrTimeout  = 10 * Duration(time.Second)
	defaultPlayerTable = "data/players.csv"
	defaultMetricsPort = "9090"
	defaultServiceName = "val-api"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)
