package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/raycard/pkg/raycard"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	cardIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("card_id", func(fl validator.FieldLevel) bool {
			return cardIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			return raycard.IsValidCSSColor(fl.Field().String())
		})

		_ = v.RegisterValidation("border_radius", func(fl validator.FieldLevel) bool {
			return raycard.IsValidBorderRadius(fl.Field().String())
		})

		_ = v.RegisterValidation("glow_mode", func(fl validator.FieldLevel) bool {
			_, ok := raycard.ParseGlowMode(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("preset", func(fl validator.FieldLevel) bool {
			_, ok := LookupPreset(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

