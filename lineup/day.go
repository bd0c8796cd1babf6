package lineup

import (
	"strings"

	"github.com/amonks/lineup/data"
)

var swedishDays = map[string]string{
	"Monday":    "Måndag",
	"Tuesday":   "Tisdag",
	"Wednesday": "Onsdag",
	"Thursday":  "Torsdag",
	"Friday":    "Fredag",
	"Saturday":  "Lördag",
	"Sunday":    "Söndag",
}

// TranslateDay returns the Swedish name of an English weekday. Anything it
// doesn't recognize comes back unchanged.
func TranslateDay(englishDay string) string {
	if day, ok := swedishDays[englishDay]; ok {
		return day
	}
	return englishDay
}

// DayLabel formats a day entry's fields as "Fredag (2024-07-12)", keeping
// only the date part of the timestamp. A day with no weekday is
// UnknownDay; a day with no date is just the weekday.
func DayLabel(fields data.Fields) string {
	if fields.Description == "" {
		return UnknownDay
	}
	day := TranslateDay(fields.Description)
	if fields.Date == "" {
		return day
	}
	date, _, _ := strings.Cut(fields.Date, "T")
	return day + " (" + date + ")"
}
