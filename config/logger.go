package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pptgen/misc"
)

type LoggerConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=none debug normal"`
	Destination string `yaml:"destination,omitempty" sanitize:"path_clean,assure_dir_exists_for_file" validate:"omitempty,filepath"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=append overwrite"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

// minLevel maps configured level to the lowest enabled zap level, false for
// "none".
func (conf *LoggerConfig) minLevel() (zapcore.Level, bool) {
	switch conf.Level {
	case "debug":
		return zapcore.DebugLevel, true
	case "normal":
		return zapcore.InfoLevel, true
	}
	return zapcore.InfoLevel, false
}

// Prepare returns program logger. Console gets errors on stderr and
// everything else on stdout, file log is optional. When debug report is
// requested file log is always written at debug level and stored in report.
func (conf *LoggingConfig) Prepare(rpt *Report) (*zap.Logger, error) {
	file, err := conf.FileLogger.fileCore(rpt)
	if err != nil {
		return nil, err
	}
	cores := append(conf.ConsoleLogger.consoleCores(), file)
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named(misc.GetAppName()), nil
}

func (conf *LoggerConfig) consoleCores() []zapcore.Core {
	lvl, ok := conf.minLevel()
	if !ok {
		return nil
	}
	return []zapcore.Core{
		zapcore.NewCore(consoleEncoder(os.Stdout), zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(l zapcore.Level) bool {
				return lvl <= l && l < zapcore.ErrorLevel
			})),
		zapcore.NewCore(consoleEncoder(os.Stderr), zapcore.Lock(os.Stderr),
			zap.LevelEnablerFunc(func(l zapcore.Level) bool {
				return l >= zapcore.ErrorLevel
			})),
	}
}

// consoleEncoder drops caller and, on terminals, time and adds colors.
func consoleEncoder(stream *os.File) zapcore.Encoder {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if EnableColorOutput(stream) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	}
	return zapcore.NewConsoleEncoder(ec)
}

func (conf *LoggerConfig) fileCore(rpt *Report) (zapcore.Core, error) {
	lvl, ok := conf.minLevel()
	mode := conf.Mode
	if rpt != nil {
		lvl, ok, mode = zapcore.DebugLevel, true, "overwrite"
	}
	if !ok {
		return zapcore.NewNopCore(), nil
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if mode == "append" {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	dest := conf.Destination
	if dest == "" {
		dest = misc.GetAppName() + ".log"
	}
	f, err := os.OpenFile(dest, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to open log file (%s): %w", dest, err)
	}
	rpt.Store("log/"+filepath.Base(f.Name()), f.Name())
	return zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), lvl), nil
}
