package portal

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// cronScheduleParser accepts the same grammar the backup scheduler runs:
// five-field expressions, an optional leading seconds field, and the
// @-descriptors (@daily, @every 1h, ...).
var cronScheduleParser = cron.NewParser(
	cron.SecondOptional |
		cron.Minute |
		cron.Hour |
		cron.Dom |
		cron.Month |
		cron.Dow |
		cron.Descriptor,
)

func registerCustomValidations(driver *validator.Validate) {
	if driver == nil {
		return
	}

	if err := driver.RegisterValidation("cron", isCronSchedule); err != nil {
		panic("portal: failed to register the cron rule: " + err.Error())
	}
}

func isCronSchedule(fl validator.FieldLevel) bool {
	expr := strings.TrimSpace(fl.Field().String())
	if expr == "" {
		return false
	}

	if _, err := cronScheduleParser.Parse(expr); err != nil {
		return false
	}

	return true
}
