package dashboard

import "time"

// ResolveDateRange: filter + opsiyonel tarih parametresinden [start, end]
// aralığını üretir. Bilinmeyen filter bugüne düşer. Aralık uçları dahildir.
func ResolveDateRange(filter, customDate string) (start, end time.Time) {
	now := time.Now()
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	endOfDay := func(d time.Time) time.Time {
		return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999_000_000, d.Location())
	}

	switch filter {
	case "today":
		return today, endOfDay(today)
	case "yesterday":
		y := today.AddDate(0, 0, -1)
		return y, endOfDay(y)
	case "this-week":
		// hafta Pazar günü başlar
		startOfWeek := today.AddDate(0, 0, -int(today.Weekday()))
		return startOfWeek, endOfDay(today)
	case "custom":
		if customDate != "" {
			if d, err := time.ParseInLocation("2006-01-02", customDate, loc); err == nil {
				day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
				return day, endOfDay(day)
			}
		}
		return today, endOfDay(today)
	case "all":
		return time.Date(2000, 1, 1, 0, 0, 0, 0, loc),
			time.Date(2099, 12, 31, 23, 59, 59, 999_000_000, loc)
	default:
		return today, endOfDay(today)
	}
}

// inRange: t, [start, end] aralığında mı? Uçlar dahil.
func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
