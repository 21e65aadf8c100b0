package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Port    string `yaml:"port"`     // periph spireg name, "" picks the first port
	FreqKHz int    `yaml:"freq_khz"` // NRZ bit clock, e.g. 2500
}

type Segments struct {
	EnableStar bool `yaml:"enable_star"`
}

type Probe struct {
	Kind   string `yaml:"kind"`    // "segment_sweep" | "order_walk"
	Set    string `yaml:"set"`     // segment set to walk
	StepMs int    `yaml:"step_ms"` // delay between steps
}

type Config struct {
	Driver     string  `yaml:"driver"` // "spi" | "sim"
	ColorOrder string  `yaml:"color_order"`
	Brightness float64 `yaml:"brightness"`
	Addr       string  `yaml:"addr"`
	LogLevel   string  `yaml:"log_level"`

	SPI      SPI      `yaml:"spi,omitempty"`
	Segments Segments `yaml:"segments"`
	Probe    Probe    `yaml:"probe"`
}

func Default() *Config {
	return &Config{
		Driver:     "sim",
		ColorOrder: "GRB",
		Brightness: 0.5,
		Addr:       ":8080",
		LogLevel:   "info",
		SPI:        SPI{FreqKHz: 2500},
		Probe:      Probe{Kind: "segment_sweep", Set: "rings", StepMs: 500},
	}
}

// Load reads path over the defaults; keys absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
