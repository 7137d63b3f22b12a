package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// TimeAgo formata a distância entre t e now como rótulo relativo
func TimeAgo(now, t time.Time) string {
	minutes := int(now.Sub(t) / time.Minute)

	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	return fmt.Sprintf("%dd ago", hours/24)
}
