package env

import (
	"errors"
	"fmt"
	"os"
	"spin_wheel/internal/config"
	"spin_wheel/internal/model"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultSize          = 400
	defaultMinExtraSpins = 5
	defaultMaxExtraSpins = 9
	defaultMinDuration   = time.Second
	defaultMaxDuration   = 5 * time.Second
	defaultAnnounceDelay = 400 * time.Millisecond
	defaultFPS           = 60
	maxFPS               = 1000
)

var defaultColors = []string{
	"#e57373", "#64b5f6", "#81c784", "#ffd54f",
	"#ba68c8", "#ffb74d", "#4db6ac", "#a1887f",
}

var defaultKeywords = []string{
	"You start 1-0 down",
	"No sprint for 1st half",
	"Only score with headers",
	"Weak foot only",
	"No slide tackles",
	"Must score from outside box",
	"Keeper rushes on corners",
	"No passing back",
	"Score with a volley",
	"No skill moves",
	"Only use one formation",
	"No substitutions",
	"Score with defender",
	"No crossing",
	"No pausing",
	"Score from a corner",
	"No long shots",
	"No through balls",
	"Score with a chip shot",
	"No using star player",
}

// Структура файла config.yaml
type wheelYAML struct {
	Wheel struct {
		Size     float64 `yaml:"size"`
		Segments []struct {
			Color string `yaml:"color"`
			Text  string `yaml:"text"`
		} `yaml:"segments"`
		Keywords []string `yaml:"keywords"`
		Spin     struct {
			MinExtraSpins int           `yaml:"min_extra_spins"`
			MaxExtraSpins int           `yaml:"max_extra_spins"`
			MinDuration   time.Duration `yaml:"min_duration"`
			MaxDuration   time.Duration `yaml:"max_duration"`
			AnnounceDelay time.Duration `yaml:"announce_delay"`
			FPS           int           `yaml:"fps"`
		} `yaml:"spin"`
	} `yaml:"wheel"`
}

type wheelConfig struct {
	size     float64
	segments []model.Segment
	keywords []string
	spin     *spinConfig
}

type spinConfig struct {
	minExtraSpins int
	maxExtraSpins int
	minDuration   time.Duration
	maxDuration   time.Duration
	announceDelay time.Duration
	fps           int
}

// NewWheelConfigFromYAML читает настройки колеса из YAML файла
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wheel config: %w", err)
	}
	return NewWheelConfigFromBytes(data)
}

// NewWheelConfigFromBytes разбирает YAML, подставляет значения по умолчанию и валидирует
func NewWheelConfigFromBytes(data []byte) (config.WheelConfig, error) {
	var raw wheelYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse wheel config: %w", err)
	}

	w := raw.Wheel
	cfg := &wheelConfig{
		size:     w.Size,
		keywords: w.Keywords,
		spin: &spinConfig{
			minExtraSpins: w.Spin.MinExtraSpins,
			maxExtraSpins: w.Spin.MaxExtraSpins,
			minDuration:   w.Spin.MinDuration,
			maxDuration:   w.Spin.MaxDuration,
			announceDelay: w.Spin.AnnounceDelay,
			fps:           w.Spin.FPS,
		},
	}
	for _, s := range w.Segments {
		cfg.segments = append(cfg.segments, model.Segment{Color: s.Color, Text: s.Text})
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultWheelConfig настройки без файла
func DefaultWheelConfig() config.WheelConfig {
	cfg := &wheelConfig{spin: &spinConfig{}}
	cfg.applyDefaults()
	return cfg
}

func (c *wheelConfig) applyDefaults() {
	if c.size == 0 {
		c.size = defaultSize
	}
	if len(c.segments) == 0 {
		c.segments = make([]model.Segment, len(defaultColors))
		for i, color := range defaultColors {
			c.segments[i] = model.Segment{Color: color}
		}
	}
	if len(c.keywords) == 0 {
		c.keywords = append([]string(nil), defaultKeywords...)
	}

	s := c.spin
	if s.minExtraSpins == 0 && s.maxExtraSpins == 0 {
		s.minExtraSpins = defaultMinExtraSpins
		s.maxExtraSpins = defaultMaxExtraSpins
	}
	if s.minDuration == 0 && s.maxDuration == 0 {
		s.minDuration = defaultMinDuration
		s.maxDuration = defaultMaxDuration
	}
	if s.announceDelay == 0 {
		s.announceDelay = defaultAnnounceDelay
	}
	if s.fps == 0 {
		s.fps = defaultFPS
	}
}

func (c *wheelConfig) validate() error {
	if c.size < 0 {
		return errors.New("wheel size must be positive")
	}
	s := c.spin
	if s.minExtraSpins < 0 || s.maxExtraSpins < s.minExtraSpins {
		return fmt.Errorf("invalid extra spins range [%d, %d]", s.minExtraSpins, s.maxExtraSpins)
	}
	if s.minDuration <= 0 || s.maxDuration < s.minDuration {
		return fmt.Errorf("invalid spin duration range [%s, %s]", s.minDuration, s.maxDuration)
	}
	if s.announceDelay < 0 {
		return errors.New("announce delay must not be negative")
	}
	if s.fps < 0 || s.fps > maxFPS {
		return fmt.Errorf("fps must be in (0, %d]", maxFPS)
	}
	return nil
}

func (c *wheelConfig) Size() float64 {
	return c.size
}

func (c *wheelConfig) Segments() []model.Segment {
	return model.CloneSegments(c.segments)
}

func (c *wheelConfig) Keywords() []string {
	return append([]string(nil), c.keywords...)
}

func (c *wheelConfig) Spin() config.SpinConfig {
	return c.spin
}

func (s *spinConfig) MinExtraSpins() int           { return s.minExtraSpins }
func (s *spinConfig) MaxExtraSpins() int           { return s.maxExtraSpins }
func (s *spinConfig) MinDuration() time.Duration   { return s.minDuration }
func (s *spinConfig) MaxDuration() time.Duration   { return s.maxDuration }
func (s *spinConfig) AnnounceDelay() time.Duration { return s.announceDelay }

func (s *spinConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.fps)
}
