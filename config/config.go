package config

import (
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"massnet.org/rsha/errors"
	"massnet.org/rsha/logging"
)

const (
	DefaultConfigName      = ".rsha"
	DefaultLoggingFilename = "rsha"
	DefaultLogLevel        = "info"
	defaultLogDirname      = "rsha-logs"
	defaultLogAge          = 1
	defaultCacheSize       = 1024
	envPrefix              = "RSHA"
)

// Digest renderings selectable by output.format.
const (
	FormatHex = "hex"
	FormatArr = "arr"
)

// Keys of the viper registry. Nested keys map onto the json sections.
const (
	KeyLogDir           = "log.dir"
	KeyLogFilename      = "log.filename"
	KeyLogLevel         = "log.level"
	KeyLogAge           = "log.age"
	KeyLogDisableCPrint = "log.disable_cprint"
	KeyPoolWorkers      = "pool.workers"
	KeyPoolCacheSize    = "pool.cache_size"
	KeyOutputFormat     = "output.format"
)

type Config struct {
	Log    *Log    `json:"log" mapstructure:"log"`
	Pool   *Pool   `json:"pool" mapstructure:"pool"`
	Output *Output `json:"output" mapstructure:"output"`
}

type Log struct {
	Dir           string `json:"dir" mapstructure:"dir"`
	Filename      string `json:"filename" mapstructure:"filename"`
	Level         string `json:"level" mapstructure:"level"`
	Age           uint32 `json:"age" mapstructure:"age"`
	DisableCPrint bool   `json:"disable_cprint" mapstructure:"disable_cprint"`
}

type Pool struct {
	Workers   int `json:"workers" mapstructure:"workers"`
	CacheSize int `json:"cache_size" mapstructure:"cache_size"`
}

// Output selects how digests are printed: 64 hex digits, or the digest
// words as [xxxxxxxx, ...].
type Output struct {
	Format string `json:"format" mapstructure:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:    DefaultLog(),
		Pool:   DefaultPool(),
		Output: DefaultOutput(),
	}
}

func DefaultOutput() *Output {
	return &Output{
		Format: FormatHex,
	}
}

func DefaultLog() *Log {
	return &Log{
		Dir:           defaultLogDirname,
		Filename:      DefaultLoggingFilename,
		Level:         DefaultLogLevel,
		Age:           defaultLogAge,
		DisableCPrint: false,
	}
}

func DefaultPool() *Pool {
	return &Pool{
		Workers:   runtime.NumCPU(),
		CacheSize: defaultCacheSize,
	}
}

// SetDefaults registers DefaultConfig values and environment lookups
// (RSHA_LOG_LEVEL, RSHA_POOL_WORKERS, ...) on v.
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault(KeyLogDir, def.Log.Dir)
	v.SetDefault(KeyLogFilename, def.Log.Filename)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyLogAge, def.Log.Age)
	v.SetDefault(KeyLogDisableCPrint, def.Log.DisableCPrint)
	v.SetDefault(KeyPoolWorkers, def.Pool.Workers)
	v.SetDefault(KeyPoolCacheSize, def.Pool.CacheSize)
	v.SetDefault(KeyOutputFormat, def.Output.Format)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadConfig reads filename, or ./.rsha.{json,yaml,toml} when filename is
// empty, into v and decodes the result. A missing default file is not an
// error; the returned bool reports whether a file was used.
func LoadConfig(v *viper.Viper, filename string) (*Config, bool, error) {
	SetDefaults(v)

	if filename != "" {
		v.SetConfigFile(filename)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
	}

	usingFile := true
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || filename != "" {
			return nil, false, errors.Wrapf(err, errors.ErrConfigRead, "read %s", v.ConfigFileUsed())
		}
		usingFile = false
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, false, errors.Wrap(err, errors.ErrConfigInvalid)
	}
	if err := cfg.Check(); err != nil {
		return nil, false, err
	}
	return cfg, usingFile, nil
}

// Check validates cfg.
func (cfg *Config) Check() error {
	switch {
	case cfg.Log == nil || cfg.Pool == nil || cfg.Output == nil:
		return errors.Wrapf(errMissingSection, errors.ErrConfigInvalid, "config")
	case cfg.Log.Dir == "":
		return errors.Wrapf(errEmptyValue, errors.ErrConfigInvalid, KeyLogDir)
	case cfg.Log.Filename == "":
		return errors.Wrapf(errEmptyValue, errors.ErrConfigInvalid, KeyLogFilename)
	case !logging.ValidLevel(cfg.Log.Level):
		return errors.Wrapf(errUnknownLevel, errors.ErrConfigInvalid, "%s %q", KeyLogLevel, cfg.Log.Level)
	case cfg.Pool.Workers <= 0:
		return errors.Wrapf(errNotPositive, errors.ErrConfigInvalid, "%s %d", KeyPoolWorkers, cfg.Pool.Workers)
	case cfg.Pool.CacheSize < 0:
		return errors.Wrapf(errNegative, errors.ErrConfigInvalid, "%s %d", KeyPoolCacheSize, cfg.Pool.CacheSize)
	case cfg.Output.Format != FormatHex && cfg.Output.Format != FormatArr:
		return errors.Wrapf(errUnknownFormat, errors.ErrConfigInvalid, "%s %q", KeyOutputFormat, cfg.Output.Format)
	}
	return nil
}
