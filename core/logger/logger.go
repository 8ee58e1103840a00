package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config of the process logger.
type Config struct {
	LogToFile       bool   `yaml:"log_to_file"`
	Filename        string `yaml:"filename"`
	MaxSize         int    `yaml:"max_size"`
	MaxAge          int    `yaml:"max_age"`
	MaxBackups      int    `yaml:"max_backups"`
	LogLevel        string `yaml:"log_level"`
	IncludeSrc      bool   `yaml:"include_src"`
	CompressOldLogs bool   `yaml:"compress_old_logs"`
}

// New returns a JSON logger writing to w, and to a rotating file when the
// Config asks for one.
func New(conf Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     LevelFromString(conf.LogLevel),
		AddSource: conf.IncludeSrc,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
					source.Function = strings.Replace(source.Function, "github.com/republicprotocol/calc-go", "", -1)
				}
			}
			return a
		},
	}

	if conf.LogToFile && conf.Filename != "" {
		logTarget := &lumberjack.Logger{
			Filename:   conf.Filename,
			MaxSize:    conf.MaxSize, // megabytes
			MaxAge:     conf.MaxAge,  // days
			Compress:   conf.CompressOldLogs,
			MaxBackups: conf.MaxBackups,
		}
		w = io.MultiWriter(w, logTarget)
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

// Init installs a logger writing to stderr as the slog default.
func Init(conf Config) *slog.Logger {
	logger := New(conf, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

// LevelFromString parses a level name, defaulting to info.
func LevelFromString(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
