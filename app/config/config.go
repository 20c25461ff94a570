package config

import (
	"time"
)

// PlotweaveConfig is read from config.json in the data directory. Every
// field has a usable default so the server can also run with no config
// file at all.
type PlotweaveConfig struct {
	InstanceName string `json:"instance_name"`
	// First hostname is canonical; requests for the others are
	// redirected to it when ACME is enabled.
	Hostnames []string `json:"hostnames"`

	// Upload limit for dataset files, in bytes.
	MaxUploadBytes int64 `json:"max_upload_bytes"`

	// How long an uploaded dataset stays in memory before the user has
	// to upload it again.
	DatasetTTLMinutes int `json:"dataset_ttl_minutes"`

	// Rendered chart size in points.
	ChartWidth  int `json:"chart_width"`
	ChartHeight int `json:"chart_height"`

	TimeoutSeconds int  `json:"timeout_seconds"`
	LogLatency     bool `json:"log_latency"`

	DataDir string `json:"-"`
}

func Default() PlotweaveConfig {
	conf := PlotweaveConfig{}
	conf.ApplyDefaults()
	return conf
}

func (c *PlotweaveConfig) ApplyDefaults() {
	if c.InstanceName == "" {
		c.InstanceName = "plotweave"
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = 4 << 20
	}
	if c.DatasetTTLMinutes == 0 {
		c.DatasetTTLMinutes = 60
	}
	if c.ChartWidth == 0 {
		c.ChartWidth = 720
	}
	if c.ChartHeight == 0 {
		c.ChartHeight = 480
	}
}

func (c *PlotweaveConfig) DatasetTTL() time.Duration {
	return time.Duration(c.DatasetTTLMinutes) * time.Minute
}

// ServerRuntimeConfig carries settings taken from command line flags
// rather than config.json.
type ServerRuntimeConfig struct {
	Addr               string
	Port               int
	CertDir            string
	AcmeEnabled        bool
	BehindLoadBalancer bool
	RateLimit          int
	GzipLevel          int
}
