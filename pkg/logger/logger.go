package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFmt = "2006/01/02 15:04:05.000"

const (
	Dev Mode = iota
	Prod
)

type Mode int32

// ParseMode "prod" -> Prod, всё остальное -> Dev
func ParseMode(s string) Mode {
	if s == "prod" {
		return Prod
	}
	return Dev
}

type Config struct {
	Mode  Mode
	Level string
	App   string
	Dir   string
	File  bool

	// NoConsole отключает вывод в stdout (терминальный интерфейс занимает экран)
	NoConsole bool
}

// New создаёт zap логгер: консоль всегда, файлы с ротацией в prod или по флагу File
func New(cfg *Config) *zap.Logger {
	if cfg == nil {
		_, _ = fmt.Fprintln(os.Stderr, "logger: using default development logger with nil config")
		cfg = &Config{Mode: Dev, Level: "debug"}
	}
	if cfg.App == "" {
		cfg.App = "app"
	}
	lv := zap.NewAtomicLevel()
	if err := lv.UnmarshalText([]byte(cfg.Level)); err != nil {
		_ = lv.UnmarshalText([]byte("debug"))
		_, _ = fmt.Fprintf(os.Stderr, "logger: invalid log level %q, defaulting to DEBUG\n", cfg.Level)
	}
	var cores []zapcore.Core
	if !cfg.NoConsole {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg(false)),
			zapcore.Lock(os.Stdout),
			lv,
		))
	}
	if cfg.File || cfg.Mode == Prod || cfg.NoConsole {
		name := filepath.Join(cfg.Dir, cfg.App)
		cores = append(cores, fileCore(name+".log", lv))
		cores = append(cores, fileCore(name+"_error.log", zap.ErrorLevel))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named(cfg.App)
}

func fileCore(file string, lv zapcore.LevelEnabler) zapcore.Core {
	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    100,
		MaxBackups: 7,
		MaxAge:     10,
		Compress:   true,
	}
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg(true)),
		zapcore.AddSync(w),
		lv,
	)
}

func encCfg(file bool) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + t.Format(timeFmt) + "]")
	}
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.ConsoleSeparator = " "
	if file {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}
