package config

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DayConfig задает часовой пояс, в котором считается "сегодня".
type DayConfig struct {
	Timezone string `env:"DASHBOARD_TIMEZONE" env-default:"Local"`
}

var errUnknownTimezone = errors.New("unknown timezone")

// Validate implements validation.Validatable.
func (d DayConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Timezone, validation.Required, validation.By(func(any) error {
			if _, err := time.LoadLocation(d.Timezone); err != nil {
				return errUnknownTimezone
			}
			return nil
		})),
	)
}

// Location загружает часовой пояс.
func (d *DayConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errUnknownTimezone, d.Timezone, err)
	}
	return loc, nil
}
