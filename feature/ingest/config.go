package ingest

import "time"

// Config holds configuration for the ingest job.
type Config struct {
	// Extsys1URL is the base URL of the infrastructure inventory source.
	Extsys1URL string `mapstructure:"extsys1_url" default:"http://localhost:8001"`
	// Extsys2URL is the base URL of the network equipment source.
	Extsys2URL string `mapstructure:"extsys2_url" default:"http://localhost:8002"`
	// TimeoutSeconds bounds each source fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// Archive enables snapshotting fetched payloads to object storage.
	// Requires storage to be configured.
	Archive bool `mapstructure:"archive" default:"false"`
}

// Source identifies one external device source.
type Source struct {
	// Label tags records originating from this source and is used for
	// default attribution (e.g., the default owner).
	Label string
	// Endpoint is the base URL; devices are listed at {Endpoint}/devices.
	Endpoint string
}

// Sources returns the configured sources in their fixed processing order.
// When two sources disagree on a serial number, the later one wins.
func (c Config) Sources() []Source {
	return []Source{
		{Label: "ExternalSystem1", Endpoint: c.Extsys1URL},
		{Label: "ExternalSystem2", Endpoint: c.Extsys2URL},
	}
}

// Timeout returns the per-fetch timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
