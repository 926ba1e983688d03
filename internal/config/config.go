package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vbauerster/marquee"
)

// EnvPrefix is prefix of environment variables, e.g. MARQUEE_DURATION.
const EnvPrefix = "MARQUEE"

// Settings holds demo settings.
type Settings struct {
	Text                   string        `mapstructure:"text"`
	Duration               time.Duration `mapstructure:"duration"`
	Autoreverses           bool          `mapstructure:"autoreverses"`
	Direction              string        `mapstructure:"direction"`
	StopWhenNotOverflowing bool          `mapstructure:"stopWhenNotOverflowing"`
	IdleAlignment          string        `mapstructure:"idleAlignment"`
	Width                  int           `mapstructure:"width"`
	RefreshRate            time.Duration `mapstructure:"refreshRate"`
	LogLevel               string        `mapstructure:"logLevel"`
	Screen                 bool          `mapstructure:"screen"`
	RunFor                 time.Duration `mapstructure:"runFor"`
}

// SetDefaults sets default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("text", "Hello World!")
	v.SetDefault("duration", "5s")
	v.SetDefault("autoreverses", false)
	v.SetDefault("direction", "rtl")
	v.SetDefault("stopWhenNotOverflowing", false)
	v.SetDefault("idleAlignment", "leading")
	v.SetDefault("width", 0)
	v.SetDefault("refreshRate", "60ms")
	v.SetDefault("logLevel", "info")
	v.SetDefault("screen", false)
	v.SetDefault("runFor", "0s")
}

// Flags returns flag set of the demo. Flag names match config keys.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("marquee", pflag.ContinueOnError)
	fs.String("config", "", "config file, any format viper understands")
	fs.String("text", "Hello World!", "text to scroll")
	fs.Duration("duration", 5*time.Second, "lap duration, 0 disables animation")
	fs.Bool("autoreverses", false, "reverse every other lap")
	fs.String("direction", "rtl", "sweep direction: rtl or ltr")
	fs.Bool("stopWhenNotOverflowing", false, "don't animate text that fits")
	fs.String("idleAlignment", "leading", "idle position: leading, center or trailing")
	fs.Int("width", 0, "viewport width, 0 means terminal width")
	fs.Duration("refreshRate", 60*time.Millisecond, "refresh rate")
	fs.String("logLevel", "info", "log level")
	fs.Bool("screen", false, "full screen mode")
	fs.Duration("runFor", 0, "exit after duration, 0 runs until interrupted")
	return fs
}

// Load reads settings with precedence flags > env > config file > defaults.
// Only flags explicitly set on fs override other sources.
func Load(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("error binding flags: %w", err)
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	s := new(Settings)
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return s, nil
}

// MarqueeConfig converts settings to marquee.Config.
func (s *Settings) MarqueeConfig() (marquee.Config, error) {
	direction, errD := marquee.ParseDirection(s.Direction)
	alignment, errA := marquee.ParseAlignment(s.IdleAlignment)
	if err := errors.Join(errD, errA); err != nil {
		return marquee.Config{}, err
	}
	return marquee.Config{
		Duration:               s.Duration,
		Autoreverses:           s.Autoreverses,
		Direction:              direction,
		StopWhenNotOverflowing: s.StopWhenNotOverflowing,
		IdleAlignment:          alignment,
	}, nil
}
