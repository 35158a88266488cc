package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

// metricsFileConfig is the YAML shape of the metrics section. Booleans are
// pointers so an omitted key keeps the built-in default.
type metricsFileConfig struct {
	Enabled      *bool  `yaml:"enabled"`
	Port         string `yaml:"port"`
	OtlpEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
	OtlpInsecure *bool  `yaml:"otlp_insecure"`
}

func loadMetrics(file *metricsFileConfig) MetricsConfig {
	base := MetricsConfig{
		Enabled:      true,
		Port:         defaultMetricsPort,
		ServiceName:  "fixtures-exporter",
		OtlpInsecure: true,
	}
	if file != nil {
		base.Enabled = boolOr(file.Enabled, base.Enabled)
		base.OtlpInsecure = boolOr(file.OtlpInsecure, base.OtlpInsecure)
		base.Port = stringOr(file.Port, base.Port)
		base.OtlpEndpoint = stringOr(file.OtlpEndpoint, base.OtlpEndpoint)
		base.ServiceName = stringOr(file.ServiceName, base.ServiceName)
	}
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, base.Enabled),
		Port:         envOrDefault(envMetricsPort, base.Port),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, base.OtlpEndpoint),
		ServiceName:  envOrDefault(envOtelService, base.ServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, base.OtlpInsecure),
	}
}
