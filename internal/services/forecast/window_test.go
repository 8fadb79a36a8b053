package forecast

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var kst = time.FixedZone("KST", 9*3600)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.March, day, hour, minute, 0, 0, kst)
}

func TestNewWindow(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		baseDate   string
		baseTime   string
		targetDate string
		targetTime string
	}{
		{"midnight uses previous day's last bulletin", at(1, 0, 0), "20250228", "2300", "20250301", "0200"},
		{"just before first release", at(1, 1, 59), "20250228", "2300", "20250301", "0300"},
		{"first release", at(1, 2, 0), "20250301", "0200", "20250301", "0400"},
		{"between releases", at(1, 4, 30), "20250301", "0200", "20250301", "0600"},
		{"exact slot", at(1, 14, 0), "20250301", "1400", "20250301", "1600"},
		{"late afternoon", at(1, 19, 59), "20250301", "1700", "20250301", "2100"},
		{"last release", at(1, 23, 0), "20250301", "2300", "20250302", "0100"},
		{"target wraps past midnight", at(1, 22, 10), "20250301", "2000", "20250302", "0000"},
		{"month boundary", at(31, 23, 45), "20250331", "2300", "20250401", "0100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(tt.now)

			assert.Equal(t, tt.baseDate, w.Bulletin.BaseDate)
			assert.Equal(t, tt.baseTime, w.Bulletin.BaseTime)
			assert.Equal(t, tt.targetDate, w.TargetDate)
			assert.Equal(t, tt.targetTime, w.TargetTime)
		})
	}
}

func TestNewWindow_EveryHour(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		now := at(15, hour, 30)
		w := NewWindow(now)

		// target hour is always the current hour plus two, modulo 24
		assert.Equal(t, fmt.Sprintf("%02d00", (hour+2)%24), w.TargetTime, "hour %d", hour)

		// base time is the latest slot not after the current hour
		current := fmt.Sprintf("%02d00", hour)
		if hour < 2 {
			assert.Equal(t, "2300", w.Bulletin.BaseTime)
			assert.Equal(t, "20250314", w.Bulletin.BaseDate)
			continue
		}

		assert.Equal(t, "20250315", w.Bulletin.BaseDate)
		assert.LessOrEqual(t, w.Bulletin.BaseTime, current)
		assert.Contains(t, ReleaseSlots, w.Bulletin.BaseTime)
		for _, slot := range ReleaseSlots {
			if slot > w.Bulletin.BaseTime {
				assert.Greater(t, slot, current, "slot %s skipped at hour %d", slot, hour)
			}
		}
	}
}
