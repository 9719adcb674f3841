package content

import (
	"time"

	"linkedin-agent/config"
	"linkedin-agent/models"
)

// SelectTemplate picks the template for the calendar day of date using
// sequential rotation: day-of-year modulo the template count. The same day
// always selects the same template, so retries within a day are stable, and
// the rotation covers every template over a period equal to the count.
func SelectTemplate(templates []models.Template, date time.Time) (models.Template, error) {
	if len(templates) == 0 {
		return models.Template{}, &config.ConfigError{Reason: "no templates available for rotation"}
	}
	idx := date.YearDay() % len(templates)
	return templates[idx], nil
}
