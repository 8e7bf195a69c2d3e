package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"asset-system/pkg/constants"
)

var (
	durationRe  = regexp.MustCompile(`^(\d+d)?(\d+h)?(\d+m)?$`)
	assetCodeRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._\-/]*$`)
)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("position_code", isKnownPosition); err != nil {
		return err
	}
	if err := v.RegisterValidation("duration_format", isDurationValid); err != nil {
		return err
	}
	if err := v.RegisterValidation("asset_code", isAssetCode); err != nil {
		return err
	}
	return nil
}

// isKnownPosition - должность из таблицы кодов (TGĐ, QĐ, NV ...)
func isKnownPosition(fl validator.FieldLevel) bool {
	_, ok := constants.ParsePosition(fl.Field().String())
	return ok
}

// isDurationValid - периодичность вида "30d", "12h", "1d12h", "90m"
func isDurationValid(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s != "" && durationRe.MatchString(s)
}

func isAssetCode(fl validator.FieldLevel) bool {
	return assetCodeRe.MatchString(fl.Field().String())
}
