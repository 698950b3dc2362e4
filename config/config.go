package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. MEDIA_VIDEO_DIR.
const EnvPrefix = "MEDIA"

// Config is loaded once at startup and treated as read-only afterwards.
type Config struct {
	VideoDir    string // videos and images
	AudioDir    string
	Host        string
	Port        int
	ScanWorkers int    // 0 picks a default from the CPU count
	HistoryDB   string // empty disables the report archive
	DiskUsage   bool
	LogRequests bool
}

func defaults(v *viper.Viper) {
	v.SetDefault("video_dir", "./media")
	v.SetDefault("audio_dir", "./audio")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 5000)
	v.SetDefault("scan_workers", 0)
	v.SetDefault("history_db", "")
	v.SetDefault("disk_usage", false)
	v.SetDefault("log_requests", true)
}

// RegisterFlags adds the configuration flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to a YAML config file")
	flags.String("env-file", ".env", "Path to a .env file (ignored when missing)")
	flags.String("video-dir", "./media", "Directory holding videos and images")
	flags.String("audio-dir", "./audio", "Directory holding audio files")
	flags.String("host", "0.0.0.0", "Interface to listen on")
	flags.Int("port", 5000, "Port to listen on")
	flags.Int("scan-workers", 0, "Directory scan workers (0 = number of CPUs)")
	flags.String("history-db", "", "bbolt file archiving report summaries (empty disables)")
	flags.Bool("disk-usage", false, "Include filesystem capacity in the size report")
	flags.Bool("log-requests", true, "Log every HTTP request")
}

// Load resolves configuration from defaults, an optional YAML file, a .env
// file, MEDIA_* environment variables and flags, in increasing precedence.
// Flags only override when explicitly set. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	defaults(v)

	envFile := ".env"
	if flags != nil {
		if f := flags.Lookup("env-file"); f != nil {
			envFile = f.Value.String()
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
		for _, key := range []string{"video_dir", "audio_dir", "host", "port", "scan_workers", "history_db", "disk_usage", "log_requests"} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{
		VideoDir:    v.GetString("video_dir"),
		AudioDir:    v.GetString("audio_dir"),
		Host:        v.GetString("host"),
		Port:        v.GetInt("port"),
		ScanWorkers: v.GetInt("scan_workers"),
		HistoryDB:   v.GetString("history_db"),
		DiskUsage:   v.GetBool("disk_usage"),
		LogRequests: v.GetBool("log_requests"),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates values and makes directories absolute.
func (c *Config) normalize() error {
	if c.VideoDir == "" || c.AudioDir == "" {
		return errors.New("video and audio directories must be set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ScanWorkers < 0 {
		return fmt.Errorf("invalid scan worker count %d", c.ScanWorkers)
	}

	var err error
	if c.VideoDir, err = filepath.Abs(c.VideoDir); err != nil {
		return fmt.Errorf("invalid video dir: %w", err)
	}
	if c.AudioDir, err = filepath.Abs(c.AudioDir); err != nil {
		return fmt.Errorf("invalid audio dir: %w", err)
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
