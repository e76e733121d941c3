// Package config loads the process-wide configuration recognised by the
// core (spec.md §6) plus the ambient and domain options SPEC_FULL.md adds
// on top of it: log level, admin address, dashboard refresh cadence, and
// the list of ingestors to run.
package config

// Config is the root configuration structure, typically loaded from a
// YAML file with Load or LoadFromReader.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Rank   RankConfig   `yaml:"rank"`
	Admin  AdminConfig  `yaml:"admin"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
	Ingest []SourceSpec `yaml:"ingest"`
}

// StoreConfig covers spec.md §6's store_capacity/broadcast_capacity and
// default_greed options.
type StoreConfig struct {
	Capacity          int `yaml:"capacity"`
	BroadcastCapacity int `yaml:"broadcast_capacity"`
	DefaultGreed      int `yaml:"default_greed"`
}

// RankConfig covers spec.md §6's rank_alpha/rank_beta weights.
type RankConfig struct {
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
}

// AdminConfig is the SPEC_FULL.md §4.9 admin surface's bind address.
type AdminConfig struct {
	Addr string `yaml:"addr"`
}

// UIConfig is the dashboard refresh cadence named in SPEC_FULL.md §6.
type UIConfig struct {
	RefreshMS int `yaml:"refresh_ms"`
}

// LogConfig holds the logrus level name, overridable by --log-level or
// LOGTRIAGE_LOG_LEVEL.
type LogConfig struct {
	Level string `yaml:"level"`
}

// FeedKind names one of the four transports a SourceSpec configures.
type FeedKind string

const (
	FeedDocker     FeedKind = "docker"
	FeedKubernetes FeedKind = "kubernetes"
	FeedFile       FeedKind = "file"
	FeedStdin      FeedKind = "stdin"
)

// SourceSpec configures a single ingest.Source, per SPEC_FULL.md §3's
// IngestSource type: feed kind plus whichever transport-specific address
// fields that kind uses. Fields that do not apply to Kind are ignored.
type SourceSpec struct {
	Kind FeedKind `yaml:"kind"`

	// Docker
	Containers []string `yaml:"containers"`
	Tail       string   `yaml:"tail"`

	// Kubernetes
	Namespace string `yaml:"namespace"`
	Selector  string `yaml:"selector"`

	// File
	Path string `yaml:"path"`

	// Stdin
	Producer string `yaml:"producer"`
}

// Default returns the configuration spec.md §6 falls back to when a field
// is left at its YAML zero value.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Capacity:          100000,
			BroadcastCapacity: 1024,
			DefaultGreed:      4,
		},
		Rank: RankConfig{
			Alpha: 1.0,
			Beta:  0.25,
		},
		Admin: AdminConfig{
			Addr: "127.0.0.1:9990",
		},
		UI: UIConfig{
			RefreshMS: 16,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// applyDefaults fills any zero-valued field of cfg from Default(), the
// same "decode onto a pre-populated struct" approach as the teacher's own
// viper-free config consumers: yaml.Unmarshal only ever overwrites fields
// present in the document, so decoding into a Default() already supplies
// the rest.
func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Store.Capacity == 0 {
		cfg.Store.Capacity = d.Store.Capacity
	}
	if cfg.Store.BroadcastCapacity == 0 {
		cfg.Store.BroadcastCapacity = d.Store.BroadcastCapacity
	}
	if cfg.Store.DefaultGreed == 0 {
		cfg.Store.DefaultGreed = d.Store.DefaultGreed
	}
	if cfg.Rank.Alpha == 0 {
		cfg.Rank.Alpha = d.Rank.Alpha
	}
	if cfg.Rank.Beta == 0 {
		cfg.Rank.Beta = d.Rank.Beta
	}
	if cfg.Admin.Addr == "" {
		cfg.Admin.Addr = d.Admin.Addr
	}
	if cfg.UI.RefreshMS == 0 {
		cfg.UI.RefreshMS = d.UI.RefreshMS
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = d.Log.Level
	}
}
