package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/republicprotocol/calc-go/core/logger"
	"github.com/republicprotocol/calc-go/core/program"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	ENV_LOG_TO_FILE     = "LOG_TO_FILE"
	ENV_LOG_FILENAME    = "LOG_FILENAME"
	ENV_LOG_LEVEL       = "LOG_LEVEL"
	ENV_LOG_INCLUDE_SRC = "LOG_INCLUDE_SRC"
)

const (
	defaultPlotMin     = -10
	defaultPlotMax     = 10
	defaultPlotSamples = 21
)

type PlotConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Samples int     `yaml:"samples"`
}

type Config struct {
	Logging  logger.Config               `yaml:"logging"`
	Bindings map[string]program.Bindings `yaml:"bindings"`
	Plot     PlotConfig                  `yaml:"plot"`
}

var conf Config

func init() {
	conf = initConfig()
	logger.Init(conf.Logging)
}

func initConfig() Config {
	conf := defaultConfig()

	path := os.Getenv(ENV_CONFIG_FILE_PATH)
	if path != "" {
		yamlFile, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error reading config file: "+err.Error())
		} else if conf, err = parseConfig(yamlFile); err != nil {
			fmt.Fprintln(os.Stderr, "Error reading config file: "+err.Error())
			conf = defaultConfig()
		}
	}

	applyEnvOverrides(&conf)
	return conf
}

func defaultConfig() Config {
	return Config{
		Logging: logger.Config{
			LogLevel: "info",
		},
		Bindings: map[string]program.Bindings{},
		Plot: PlotConfig{
			Min:     defaultPlotMin,
			Max:     defaultPlotMax,
			Samples: defaultPlotSamples,
		},
	}
}

// parseConfig decodes a YAML config over the defaults. Unknown keys are
// rejected.
func parseConfig(data []byte) (Config, error) {
	conf := defaultConfig()
	if err := yaml.UnmarshalStrict(data, &conf); err != nil {
		return Config{}, err
	}
	if conf.Plot.Samples <= 0 {
		return Config{}, fmt.Errorf("plot samples must be positive, got %d", conf.Plot.Samples)
	}
	if conf.Plot.Max <= conf.Plot.Min {
		return Config{}, fmt.Errorf("plot max %v must be greater than min %v", conf.Plot.Max, conf.Plot.Min)
	}
	return conf, nil
}

func applyEnvOverrides(conf *Config) {
	if level := os.Getenv(ENV_LOG_LEVEL); level != "" {
		conf.Logging.LogLevel = level
	}
	if filename := os.Getenv(ENV_LOG_FILENAME); filename != "" {
		conf.Logging.Filename = filename
	}
	if toFile, err := strconv.ParseBool(os.Getenv(ENV_LOG_TO_FILE)); err == nil {
		conf.Logging.LogToFile = toFile
	}
	if includeSrc, err := strconv.ParseBool(os.Getenv(ENV_LOG_INCLUDE_SRC)); err == nil {
		conf.Logging.IncludeSrc = includeSrc
	}
}

func bindingsByName(conf Config, name string) (program.Bindings, error) {
	if name == "" {
		return program.Bindings{}, nil
	}
	bindings, ok := conf.Bindings[name]
	if !ok {
		slog.Error("Unknown binding set", slog.String("name", name))
		return nil, fmt.Errorf("unknown binding set %q", name)
	}
	return bindings, nil
}
