package holiday

import (
	"fmt"
	"time"

	"github.com/nvkalinin/kalendar/store"
	"github.com/rickar/cal/v2"
)

// BusinessCalendar собирает cal.BusinessCalendar страны: выходные дни недели из store.Country,
// праздники - вычисленные за годы years. Каждый праздник привязан к своему году.
func (e *Engine) BusinessCalendar(c store.Country, years ...int) (*cal.BusinessCalendar, error) {
	bc := cal.NewBusinessCalendar()
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		bc.SetWorkday(wd, !c.IsWeekend(wd))
	}

	for _, y := range years {
		hs, err := e.ForYear(c, y)
		if err != nil {
			return nil, err
		}
		for _, h := range hs {
			bc.AddHoliday(pinned(h))
		}
	}

	return bc, nil
}

func pinned(h store.Holiday) *cal.Holiday {
	y := h.Date.Year()
	return &cal.Holiday{
		Name:      h.Name,
		Month:     h.Date.Month(),
		Day:       h.Date.Day(),
		StartYear: y,
		EndYear:   y,
		Func:      calcFixed,
	}
}

// IsWorkday - рабочий ли день t в стране c. Учитываются и праздники следующего года,
// перенесенные на конец года t.
func (e *Engine) IsWorkday(c store.Country, t time.Time) (bool, error) {
	day := store.DayStart(t)
	bc, err := e.BusinessCalendar(c, day.Year(), day.Year()+1)
	if err != nil {
		return false, fmt.Errorf("holiday cannot check workday %s: %w", day.Format("2006-01-02"), err)
	}
	return bc.IsWorkday(day), nil
}

func IsWorkday(c store.Country, t time.Time) (bool, error) {
	return Default.IsWorkday(c, t)
}
