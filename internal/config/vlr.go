package config

// VlrConfig controls how pages are fetched from vlr.gg.
type VlrConfig struct {
	BaseURL      string
	Timeout      Duration
	RequestDelay Duration // zero disables spacing between requests
}

func loadVlr() VlrConfig {
	return VlrConfig{
		BaseURL:      envOrDefault(envVlrBaseURL, defaultVlrBaseURL),
		Timeout:      durationEnvOrDefault(envVlrTimeout, defaultVlrTimeout),
		RequestDelay: durationEnvOrDefault(envVlrDelay, 0),
	}
}
