package forecast

import (
	"fmt"
	"io"

	"kma-forecast/internal/models"
)

// Headline is the first line of a rendered report, e.g. "양주시 09시 날씨 예보".
func Headline(report *models.Report, locale Locale) string {
	hour := report.TargetTime
	if len(hour) >= 2 {
		hour = hour[:2]
	}
	return locale.Header(report.Location, hour)
}

// Render writes the report as plain text lines.
func Render(w io.Writer, report *models.Report, locale Locale) error {
	if _, err := fmt.Fprintln(w, Headline(report, locale)); err != nil {
		return err
	}

	if !report.Available() {
		_, err := fmt.Fprintln(w, locale.NoInformation)
		return err
	}

	for _, field := range report.Fields {
		if _, err := fmt.Fprintf(w, "%s: %s\n", field.Label, field.Value); err != nil {
			return err
		}
	}

	return nil
}
