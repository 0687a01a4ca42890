package source

import (
	"fmt"
	"time"

	"github.com/nvkalinin/kalendar/store"
)

// Generic генерирует календарь страны на год, в котором выходные дни недели страны
// (для Ирана - пятница) не рабочие, остальные - рабочие.
type Generic struct{}

func NewGeneric() *Generic {
	return &Generic{}
}

func (g *Generic) GetYear(c store.Country, y int) (store.Months, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("source/generic cannot make %s/%d: %w", c, y, store.ErrUnsupportedCountry)
	}

	cal := makeEmptyYear()

	date := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	for date.Year() == y {
		isWeekend := c.IsWeekend(date.Weekday())
		dayType := store.Normal
		if isWeekend {
			dayType = store.Weekend
		}

		cal[date.Month()][date.Day()] = store.Day{
			WeekDay: store.WeekDayOf(date.Weekday()),
			Working: !isWeekend,
			Type:    dayType,
		}

		date = date.AddDate(0, 0, 1)
	}

	return cal, nil
}

func makeEmptyYear() store.Months {
	cal := make(store.Months, 12)
	for mon := time.January; mon <= time.December; mon++ {
		cal[mon] = make(store.Days, 31)
	}
	return cal
}
