// Package config holds the configuration keys shared by the commands and
// loads them from flags, GSTTUT_* environment variables and an optional
// config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	URI = "uri"

	LogLevel   = "log.level"
	LogJSON    = "log.json"
	LogVerbose = "log.verbose"

	ConceptsPattern = "concepts.pattern"
	DynamicVideo    = "dynamic.video"

	TimePollInterval  = "time.poll_interval"
	TimeSeek          = "time.seek"
	TimeSeekThreshold = "time.seek_threshold"
	TimeSeekTarget    = "time.seek_target"
)

const DefaultURI = "https://www.freedesktop.org/software/gstreamer-sdk/data/media/sintel_trailer-480p.webm"

const envPrefix = "GSTTUT"

func SetDefaults(v *viper.Viper) {
	v.SetDefault(URI, DefaultURI)
	v.SetDefault(LogLevel, "info")
	v.SetDefault(LogJSON, false)
	v.SetDefault(LogVerbose, false)
	v.SetDefault(ConceptsPattern, "smpte")
	v.SetDefault(DynamicVideo, false)
	v.SetDefault(TimePollInterval, 100*time.Millisecond)
	v.SetDefault(TimeSeek, true)
	v.SetDefault(TimeSeekThreshold, 10*time.Second)
	v.SetDefault(TimeSeekTarget, 30*time.Second)
}

// Load reads path, or config.{yaml,toml,json} from the user config directory
// or the working directory if path is empty. A missing default file is not
// an error.
func Load(v *viper.Viper, path string) error {
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %v: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("config")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "gsttut"))
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Playback configures the time management tutorial.
type Playback struct {
	PollInterval  time.Duration
	Seek          bool
	SeekThreshold time.Duration
	SeekTarget    time.Duration
}

func PlaybackFrom(v *viper.Viper) (Playback, error) {
	p := Playback{
		PollInterval:  v.GetDuration(TimePollInterval),
		Seek:          v.GetBool(TimeSeek),
		SeekThreshold: v.GetDuration(TimeSeekThreshold),
		SeekTarget:    v.GetDuration(TimeSeekTarget),
	}
	if p.PollInterval <= 0 {
		return p, fmt.Errorf("%v must be positive, got %v", TimePollInterval, p.PollInterval)
	}
	if p.SeekThreshold < 0 || p.SeekTarget < 0 {
		return p, fmt.Errorf("seek threshold and target must not be negative")
	}
	return p, nil
}
