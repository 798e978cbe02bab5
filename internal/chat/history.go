package chat

import (
	"fmt"
	"time"
)

// Timestamped is any message carrying a server-assigned creation time.
type Timestamped interface {
	SentAt() time.Time
}

// DayKey renders a calendar-day bucket key, "2024/1/2" style, in the
// timestamp's own location. Month and day are not zero-padded.
func DayKey(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// GroupByDay buckets a chronological message sequence by calendar day,
// preserving the original order within each bucket. Pure; an empty input
// yields an empty map.
func GroupByDay[M Timestamped](msgs []M) map[string][]M {
	grouped := make(map[string][]M)
	for _, msg := range msgs {
		key := DayKey(msg.SentAt())
		grouped[key] = append(grouped[key], msg)
	}
	return grouped
}
