package config

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Flags registers the flag overrides available on every logtriage
// subcommand, following the teacher's pkg/flags.ConfigureAndParse:
// a handful of process-wide flags layered on top of the YAML file,
// minus the klog bridge the teacher needed only for its Kubernetes
// client-go logger.
type Flags struct {
	ConfigPath string
	LogLevel   string
	AdminAddr  string
}

// RegisterFlags adds the common flags to fs. Call before fs.Parse.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "path to a YAML config file")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level, must be one of: panic, fatal, error, warn, info, debug")
	fs.StringVar(&f.AdminAddr, "admin-addr", "", "admin surface bind address, overrides admin.addr")
	return f
}

// Resolve loads the config file named by f.ConfigPath (or the built-in
// defaults if unset) and applies flag/environment overrides on top, the
// same "file first, flags win" precedence the teacher's ConfigureAndParse
// follows for its log-level flag.
func (f *Flags) Resolve() (*Config, error) {
	var cfg *Config
	if f.ConfigPath != "" {
		loaded, err := Load(f.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		d := Default()
		cfg = &d
	}

	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	} else if env := os.Getenv("LOGTRIAGE_LOG_LEVEL"); env != "" {
		cfg.Log.Level = env
	}
	if f.AdminAddr != "" {
		cfg.Admin.Addr = f.AdminAddr
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigureLogging sets logrus's global level from cfg, the direct
// analogue of the teacher's setLogLevel minus the klog output redirect
// (there is no Kubernetes client-go logger wired into this process).
func ConfigureLogging(cfg *Config) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("invalid log level %q", cfg.Log.Level)
	}
	log.SetLevel(level)
}
