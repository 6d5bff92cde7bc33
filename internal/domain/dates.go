package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// "18-Mar-2024"
	shortDatePattern = regexp.MustCompile(`(\d{1,2})-(\w{3})-(\d{4})`)
	// "March 18, 2024"
	longDatePattern = regexp.MustCompile(`(\w+)\s+(\d{1,2}),\s+(\d{4})`)
)

// Таблица месяцев фиксирована и не зависит от локали
var shortMonths = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

var longMonths = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// ParseInspectionDate разбирает дату инспекции в одном из двух форматов:
// "DD-Mon-YYYY" или "Month DD, YYYY". Возвращает false для пустых и
// нераспознанных строк; такие даты считаются отсутствующими, а не ошибкой.
func ParseInspectionDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if m := shortDatePattern.FindStringSubmatch(s); m != nil {
		month, ok := shortMonths[m[2]]
		if !ok {
			return time.Time{}, false
		}
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
	}

	if m := longDatePattern.FindStringSubmatch(s); m != nil {
		month, ok := lookupLongMonth(m[1])
		if !ok {
			return time.Time{}, false
		}
		day, _ := strconv.Atoi(m[2])
		if day < 1 || day > 31 {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[3])
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

func lookupLongMonth(name string) (time.Month, bool) {
	lower := strings.ToLower(name)
	if month, ok := longMonths[lower]; ok {
		return month, true
	}
	if len(lower) == 3 {
		for full, month := range longMonths {
			if strings.HasPrefix(full, lower) {
				return month, true
			}
		}
	}
	return 0, false
}

// StartOfMonth возвращает первое число месяца в полночь
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
