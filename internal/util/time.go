package util

import "time"

// NowMillis returns the current time in milliseconds since Unix epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// FormatStarted renders a session start time relative to now: clock time
// only when both fall on the same local day, date and time otherwise.
func FormatStarted(startMillis, nowMillis int64) string {
	start := time.UnixMilli(startMillis)
	now := time.UnixMilli(nowMillis)
	if start.Year() == now.Year() && start.YearDay() == now.YearDay() {
		return start.Format("15:04:05")
	}
	return start.Format("2006-01-02 15:04")
}

// FormatElapsed renders the span between two timestamps to the second.
// Clock skew never yields a negative duration.
func FormatElapsed(startMillis, endMillis int64) string {
	d := time.Duration(endMillis-startMillis) * time.Millisecond
	if d < 0 {
		d = 0
	}
	return d.Round(time.Second).String()
}
