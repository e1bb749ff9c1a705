package analytics

import "time"

// Window is a half open time interval [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// Last is the final instant inside the window, for inclusive range filters.
func (w Window) Last() time.Time {
	return w.To.Add(-time.Nanosecond)
}

func Day(now time.Time) Window {
	y, m, d := now.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	return Window{From: from, To: from.AddDate(0, 0, 1)}
}

// Week starts on Monday.
func Week(now time.Time) Window {
	day := Day(now).From
	offset := (int(day.Weekday()) + 6) % 7
	from := day.AddDate(0, 0, -offset)

	return Window{From: from, To: from.AddDate(0, 0, 7)}
}

func Month(now time.Time) Window {
	return MonthsAgo(now, 0)
}

// MonthsAgo is the calendar month n months before the one containing now.
func MonthsAgo(now time.Time, n int) Window {
	y, m, _ := now.Date()
	from := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, now.Location())

	return Window{From: from, To: from.AddDate(0, 1, 0)}
}

func YearToDate(now time.Time) Window {
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	return Window{From: from, To: Day(now).To}
}

// LastMonths spans the n calendar months ending with the current one.
func LastMonths(now time.Time, n int) Window {
	if n < 1 {
		n = 1
	}

	return Window{From: MonthsAgo(now, n-1).From, To: Month(now).To}
}

// MonthKeys lists YYYY-MM keys of the n months ending with the current one, oldest first.
func MonthKeys(now time.Time, n int) []string {
	keys := make([]string, 0, n)

	for i := n - 1; i >= 0; i-- {
		keys = append(keys, MonthsAgo(now, i).From.Format("2006-01"))
	}

	return keys
}
