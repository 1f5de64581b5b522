package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date patterns, tried in order: ISO, numeric m/d/y, month-name day,
// relative phrases. The first hit wins and is normalized to midnight
// in the reference location.
var (
	isoDateRe     = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	numericDateRe = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	monthDayRe    = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	nextWeekdayRe = regexp.MustCompile(`\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var weekdaysByName = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday,
	"friday": time.Friday, "saturday": time.Saturday,
}

// parseDate extracts the first recognizable date from the lowercased
// text. Returns false when no pattern matches.
func parseDate(lower string, ref time.Time) (time.Time, bool) {
	if m := isoDateRe.FindStringSubmatch(lower); m != nil {
		return dateFromParts(m[1], m[2], m[3], ref)
	}
	if m := numericDateRe.FindStringSubmatch(lower); m != nil {
		// m/d/y order
		return dateFromParts(m[3], m[1], m[2], ref)
	}
	if m := monthDayRe.FindStringSubmatch(lower); m != nil {
		month := monthsByName[m[1]]
		day, _ := strconv.Atoi(m[2])
		d := time.Date(ref.Year(), month, day, 0, 0, 0, 0, ref.Location())
		// A month-day with no year means the next such date.
		if d.Before(midnight(ref)) {
			d = d.AddDate(1, 0, 0)
		}
		return d, true
	}
	if m := nextWeekdayRe.FindStringSubmatch(lower); m != nil {
		target := weekdaysByName[m[1]]
		days := (int(target) - int(ref.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return midnight(ref).AddDate(0, 0, days), true
	}
	if strings.Contains(lower, "tomorrow") {
		return midnight(ref).AddDate(0, 0, 1), true
	}
	if strings.Contains(lower, "today") || strings.Contains(lower, "tonight") {
		return midnight(ref), true
	}
	return time.Time{}, false
}

func dateFromParts(year, month, day string, ref time.Time) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if y < 100 {
		y += 2000
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, ref.Location()), true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
