package holiday

import (
	"time"

	"github.com/nvkalinin/kalendar/store"
	"github.com/rickar/cal/v2"
)

// EasterSunday - католическая Пасха по алгоритму Бутчера (григорианский календарь).
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// NthWeekdayOfMonth - n-й (с единицы) день недели wd в месяце.
func NthWeekdayOfMonth(year int, month time.Month, n int, wd time.Weekday) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	shift := (int(wd) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, shift+(n-1)*7)
}

func LastWeekdayOfMonth(year int, month time.Month, wd time.Weekday) time.Time {
	// day=0 нормализуется: будет выбран последний день месяца.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	shift := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.AddDate(0, 0, -shift)
}

// Функции для cal.Holiday.Func. Все даты - полночь UTC.

func calcFixed(h *cal.Holiday, year int) time.Time {
	return time.Date(year, h.Month, h.Day, 0, 0, 0, 0, time.UTC)
}

// calcEaster - h.Offset дней от Пасхи.
func calcEaster(h *cal.Holiday, year int) time.Time {
	return EasterSunday(year).AddDate(0, 0, h.Offset)
}

// calcWeekday - h.Offset-й день недели h.Weekday в месяце h.Month, -1 - последний.
func calcWeekday(h *cal.Holiday, year int) time.Time {
	if h.Offset < 0 {
		return LastWeekdayOfMonth(year, h.Month, h.Weekday)
	}
	return NthWeekdayOfMonth(year, h.Month, h.Offset, h.Weekday)
}

// calcAll применяет правила к году. Переносы, заданные в h.Observed, учитываются.
func calcAll(rules []*cal.Holiday, year int) []store.Holiday {
	res := make([]store.Holiday, 0, len(rules))
	for _, h := range rules {
		actual, observed := h.Calc(year)
		if actual.IsZero() {
			continue
		}

		res = append(res, store.Holiday{
			Name:     h.Name,
			Date:     observed,
			Fixed:    h.Day > 0,
			Observed: !observed.Equal(actual),
		})
	}
	return res
}

func fixed(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{Name: name, Month: month, Day: day, Func: calcFixed}
}

func easter(name string, offset int) *cal.Holiday {
	return &cal.Holiday{Name: name, Offset: offset, Func: calcEaster}
}

func weekdayN(name string, month time.Month, wd time.Weekday, n int) *cal.Holiday {
	return &cal.Holiday{Name: name, Month: month, Weekday: wd, Offset: n, Func: calcWeekday}
}
