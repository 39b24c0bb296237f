package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/navigatorx-stopover/pkg"
	"github.com/spf13/viper"
)

type EncoderConfig struct {
	Profile     string  `mapstructure:"profile" validate:"required"`
	SpeedBits   int     `mapstructure:"speedBits" validate:"min=1,max=31"`
	SpeedFactor float64 `mapstructure:"speedFactor" validate:"gt=0"`
	TurnCosts   bool    `mapstructure:"turnCosts"`
	BlockFords  bool    `mapstructure:"blockFords"`
}

type WeightingConfig struct {
	Name string `mapstructure:"name" validate:"oneof=fastest shortest stopover"`
	// endpoint | turn_delay
	Mode    string  `mapstructure:"mode" validate:"oneof=endpoint turn_delay"`
	Penalty float64 `mapstructure:"penalty" validate:"min=0"`
}

type EngineConfig struct {
	GraphFile string `mapstructure:"graphFile" validate:"required"`
	OsmFile   string `mapstructure:"osmFile"`
	Workers   int    `mapstructure:"workers" validate:"min=1"`
	// radian
	HeadingTolerance float64 `mapstructure:"headingTolerance" validate:"gt=0"`
}

type Config struct {
	Encoder   EncoderConfig   `mapstructure:"encoder"`
	Weighting WeightingConfig `mapstructure:"weighting"`
	Engine    EngineConfig    `mapstructure:"engine"`
}

func setDefaults() {
	viper.SetDefault("encoder.profile", "car_stopover")
	viper.SetDefault("encoder.speedBits", 5)
	viper.SetDefault("encoder.speedFactor", 5.0)
	viper.SetDefault("encoder.turnCosts", false)
	viper.SetDefault("encoder.blockFords", true)

	viper.SetDefault("weighting.name", "stopover")
	viper.SetDefault("weighting.mode", "endpoint")
	viper.SetDefault("weighting.penalty", pkg.DEFAULT_DIRECTION_PENALTY_SECOND)

	viper.SetDefault("engine.graphFile", "./data/stopover.graph")
	viper.SetDefault("engine.workers", 4)
	viper.SetDefault("engine.headingTolerance", pkg.DEFAULT_HEADING_TOLERANCE)
}

// ReadConfig. read ./data/config.yaml (optional) + environment variables (ENCODER_SPEEDBITS, ...).
func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("fatal error config file: %w", err)
		}
	}
	return nil
}

// LoadConfig. decode the viper state into Config and validate it.
func LoadConfig() (*Config, error) {
	setDefaults()
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, WrapErrorf(err, ErrInvalidConfig, "unable to decode config")
	}
	if err := ValidateStruct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateStruct. validate struct tags, validation errors are translated to english and wrapped with ErrInvalidConfig.
func ValidateStruct(s interface{}) error {
	validate := validator.New()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return WrapErrorf(err, ErrInvalidConfig, "validation failed")
	}
	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msgs = append(msgs, e.Translate(trans))
	}
	return WrapErrorf(nil, ErrInvalidConfig, "validation error: %s", strings.Join(msgs, "; "))
}
