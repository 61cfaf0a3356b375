package application

import (
	"errors"
	"fmt"

	"github.com/anchore/go-logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ghsa-tools/ghsa-db/cmd/ghsa-db/cli/options"
)

type Config struct {
	ConfigPath string `yaml:"-" json:"-" mapstructure:"config"`
	Log        Log    `yaml:"log" json:"log" mapstructure:"log"`
}

type Log struct {
	Quiet        bool         `yaml:"quiet" json:"quiet" mapstructure:"quiet"`
	Verbosity    int          `yaml:"-" json:"-" mapstructure:"verbosity"`
	Level        logger.Level `yaml:"level" json:"level" mapstructure:"level"`
	FileLocation string       `yaml:"file" json:"file" mapstructure:"file"`
}

func (cfg *Config) BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	if err := options.Bind(v, "log.quiet", flags.Lookup("quiet")); err != nil {
		return err
	}
	return options.Bind(v, "log.verbosity", flags.Lookup("verbose"))
}

// Load reads the application config from file (explicit path, else the
// standard search locations), the environment, and any bound flags.
func (cfg *Config) Load(v *viper.Viper) error {
	if cfg.ConfigPath != "" {
		v.SetConfigFile(cfg.ConfigPath)
	} else {
		v.SetConfigName("." + Name)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfg.ConfigPath != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("unable to read application config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return err
	}

	cfg.Log.setLevel()

	return nil
}

func (l *Log) setLevel() {
	switch {
	case l.Quiet:
		l.Level = logger.DisabledLevel
	case l.Verbosity > 0:
		l.Level = logger.LevelFromVerbosity(l.Verbosity, logger.InfoLevel, logger.DebugLevel, logger.TraceLevel)
	case l.Level == "":
		l.Level = logger.InfoLevel
	}
}

func (cfg Config) String() string {
	content, err := yaml.Marshal(&cfg)
	if err != nil {
		type plain Config
		return fmt.Sprintf("%+v", plain(cfg))
	}
	return string(content)
}
