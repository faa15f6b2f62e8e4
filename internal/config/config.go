package config

import (
	"spin_wheel/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type LogConfig interface {
	Level() string
	Mode() string
	Dir() string
	File() bool
}

type WheelConfig interface {
	Size() float64
	Segments() []model.Segment
	Keywords() []string
	Spin() SpinConfig
}

type SpinConfig interface {
	MinExtraSpins() int
	MaxExtraSpins() int
	MinDuration() time.Duration
	MaxDuration() time.Duration
	AnnounceDelay() time.Duration
	FrameInterval() time.Duration
}
