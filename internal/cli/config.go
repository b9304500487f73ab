package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/pipeline"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/server"
)

// Config keys, settable in config.yaml or as SPQRNET_<SECTION>_<KEY>.
const (
	keyCacheDir   = "cache.dir"
	keyRedisAddr  = "cache.redis_addr"
	keyCacheTTL   = "cache.ttl"
	keyWidth      = "layout.width"
	keyHeight     = "layout.height"
	keySeed       = "layout.seed"
	keyMaxPaths   = "paths.max"
	keyServerAddr = "server.addr"
)

// Config is the resolved CLI configuration. Command flags override it.
type Config struct {
	CacheDir   string
	RedisAddr  string
	CacheTTL   time.Duration
	Width      float64
	Height     float64
	Seed       uint64
	MaxPaths   int
	ServerAddr string
}

// DefaultConfig returns the configuration used when no file or environment
// override is present.
func DefaultConfig() Config {
	return Config{
		Width:      pipeline.DefaultWidth,
		Height:     pipeline.DefaultHeight,
		Seed:       pipeline.DefaultSeed,
		MaxPaths:   pipeline.DefaultMaxPaths,
		ServerAddr: server.DefaultAddr,
	}
}

// LoadConfig reads path, or config.yaml from the config directory when path
// is empty, and applies environment overrides. A missing default file is not
// an error; a missing explicit file is.
func LoadConfig(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

func newViper() *viper.Viper {
	def := DefaultConfig()
	v := viper.New()
	v.SetDefault(keyCacheDir, "")
	v.SetDefault(keyRedisAddr, "")
	v.SetDefault(keyCacheTTL, time.Duration(0))
	v.SetDefault(keyWidth, def.Width)
	v.SetDefault(keyHeight, def.Height)
	v.SetDefault(keySeed, def.Seed)
	v.SetDefault(keyMaxPaths, def.MaxPaths)
	v.SetDefault(keyServerAddr, def.ServerAddr)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(keyRedisAddr, envPrefix+"_CACHE_REDIS_ADDR", envPrefix+"_REDIS_ADDR")
	return v
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		CacheDir:   v.GetString(keyCacheDir),
		RedisAddr:  v.GetString(keyRedisAddr),
		CacheTTL:   v.GetDuration(keyCacheTTL),
		Width:      v.GetFloat64(keyWidth),
		Height:     v.GetFloat64(keyHeight),
		Seed:       v.GetUint64(keySeed),
		MaxPaths:   v.GetInt(keyMaxPaths),
		ServerAddr: v.GetString(keyServerAddr),
	}
	if cfg.CacheDir != "" {
		abs, err := filepath.Abs(cfg.CacheDir)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", keyCacheDir, err)
		}
		cfg.CacheDir = abs
	}
	if cfg.CacheTTL < 0 {
		return Config{}, fmt.Errorf("%s must not be negative", keyCacheTTL)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("layout.width and layout.height must be positive")
	}
	if cfg.MaxPaths < 1 || cfg.MaxPaths > pipeline.MaxPathsLimit {
		return Config{}, fmt.Errorf("%s must be between 1 and %d", keyMaxPaths, pipeline.MaxPathsLimit)
	}
	return cfg, nil
}
