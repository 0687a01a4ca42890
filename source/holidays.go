package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/nvkalinin/kalendar/store"
)

type HolidayEngine interface {
	ForYear(c store.Country, year int) ([]store.Holiday, error)
}

// Holidays - источник, который отмечает праздничные дни, вычисленные движком праздников.
// Выходные не трогает: для этого перед ним должен стоять Generic.
type Holidays struct {
	Engine HolidayEngine
}

func (h *Holidays) GetYear(c store.Country, y int) (store.Months, error) {
	// Перенесенный праздник может попасть в соседний год (1 января -> 31 декабря).
	var hs []store.Holiday
	for year := y - 1; year <= y+1; year++ {
		yearHs, err := h.Engine.ForYear(c, year)
		if err != nil {
			return nil, fmt.Errorf("source/holidays cannot get %s/%d: %w", c, year, err)
		}
		hs = append(hs, yearHs...)
	}

	names := make(map[time.Time][]string)
	for _, hol := range hs {
		if hol.Date.Year() != y {
			continue
		}
		names[hol.Date] = append(names[hol.Date], hol.Name)
	}

	cal := make(store.Months)
	for date, dayNames := range names {
		if _, ok := cal[date.Month()]; !ok {
			cal[date.Month()] = make(store.Days)
		}
		cal[date.Month()][date.Day()] = store.Day{
			WeekDay: store.WeekDayOf(date.Weekday()),
			Working: false,
			Type:    store.HolidayDay,
			Desc:    strings.Join(dayNames, "; "),
		}
	}

	return cal, nil
}
