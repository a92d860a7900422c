package settings

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AlgorithmRates are the constants of the boss fight simulation.
type AlgorithmRates struct {
	MissilesPerSecond        float64 `yaml:"missiles_per_second" validate:"gt=0"`
	SupersPerSecond          float64 `yaml:"supers_per_second" validate:"gt=0"`
	PowerBombsPerSecond      float64 `yaml:"power_bombs_per_second" validate:"gt=0"`
	ChargedShotsPerSecond    float64 `yaml:"charged_shots_per_second" validate:"gt=0"`
	MissileDropsPerMinute    float64 `yaml:"missile_drops_per_minute" validate:"gte=0"`
	AmmoMarginIfNoCharge     float64 `yaml:"ammo_margin_if_no_charge" validate:"gte=0"`
	PhantoonFlamesAvoidBonus float64 `yaml:"phantoon_flames_avoid_bonus" validate:"gt=0"`
	PhantoonLowMissileMalus  float64 `yaml:"phantoon_low_missile_malus" validate:"gt=0"`
}

// DefaultRates returns the stock simulation constants.
func DefaultRates() AlgorithmRates {
	return AlgorithmRates{
		MissilesPerSecond:        3,
		SupersPerSecond:          1.85,
		PowerBombsPerSecond:      0.33,
		ChargedShotsPerSecond:    1.0,
		MissileDropsPerMinute:    12,
		AmmoMarginIfNoCharge:     1.5,
		PhantoonFlamesAvoidBonus: 1.2,
		PhantoonLowMissileMalus:  1.2,
	}
}

var validate = validator.New()

// Validate checks every rate against its allowed range.
func (r AlgorithmRates) Validate() error {
	if err := validate.Struct(r); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			var messages []string
			for _, e := range validationErrs {
				messages = append(messages, fmt.Sprintf(
					"field '%s' failed validation: %s (value: '%v')",
					e.Field(),
					e.Tag(),
					e.Value(),
				))
			}
			return fmt.Errorf("invalid algorithm rates: %s", strings.Join(messages, "; "))
		}
		return err
	}
	return nil
}
