package query

import (
	"fmt"
	"time"
)

// MonthOption is one entry of the month filter control
type MonthOption struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
}

// MonthOptions enumerates the n most recent calendar months, newest
// first, anchored to the injected now. Crossing a year boundary wraps
// December into the previous year.
func MonthOptions(now time.Time, n int) []MonthOption {
	options := make([]MonthOption, 0, n)

	year, month := now.Year(), int(now.Month())
	for i := 0; i < n; i++ {
		options = append(options, MonthOption{
			Year:  year,
			Month: month,
			Label: fmt.Sprintf("%s %d", time.Month(month).String(), year),
		})

		month--
		if month < 1 {
			month = 12
			year--
		}
	}

	return options
}
