package utils

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const minutesPerDay = 24 * 60

// RegisterValidators installs the custom binding tags on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	if err := v.RegisterValidation("calendardate", validateCalendarDate); err != nil {
		return err
	}
	return v.RegisterValidation("dayminute", validateDayMinute)
}

// calendardate: a YYYY-MM-DD string.
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

// dayminute: an integer minute in [0, 1440].
func validateDayMinute(fl validator.FieldLevel) bool {
	m := fl.Field().Int()
	return m >= 0 && m <= minutesPerDay
}
