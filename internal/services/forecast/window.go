package forecast

import (
	"fmt"
	"time"

	"kma-forecast/internal/models"
)

// TargetOffset is how far ahead of now the reported slot lies.
const TargetOffset = 2 * time.Hour

// ReleaseSlots are the daily base times of the short-term forecast, in ascending order.
var ReleaseSlots = []string{"0200", "0500", "0800", "1100", "1400", "1700", "2000", "2300"}

// NewWindow picks the latest bulletin released at or before the hour of now and the slot TargetOffset later.
// Before the first release of the day the previous day's last bulletin is used.
// now must already be in the forecast time zone.
func NewWindow(now time.Time) models.Window {
	current := hourSlot(now)

	baseDate := now
	baseTime := ReleaseSlots[len(ReleaseSlots)-1]
	if current < ReleaseSlots[0] {
		baseDate = now.AddDate(0, 0, -1)
	} else {
		for _, slot := range ReleaseSlots {
			if current < slot {
				break
			}
			baseTime = slot
		}
	}

	target := now.Add(TargetOffset)

	return models.Window{
		Bulletin: models.Bulletin{
			BaseDate: baseDate.Format("20060102"),
			BaseTime: baseTime,
		},
		TargetDate: target.Format("20060102"),
		TargetTime: hourSlot(target),
	}
}

func hourSlot(t time.Time) string {
	return fmt.Sprintf("%02d00", t.Hour())
}
