package util

import "time"

// NowUTC returns the current UTC time as an ISO-8601 string with second
// precision, e.g. 2025-09-12T14:30:00Z.
func NowUTC() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}
