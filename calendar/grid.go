package calendar

import (
	"fmt"
	"time"

	"github.com/nvkalinin/kalendar/store"
)

const (
	GridRows = 6
	GridCols = 7
)

// Grid - сетка месяца: всегда 6 недель, даже если месяцу хватает пяти или четырех.
// Лишние клетки заполняются днями соседних месяцев.
type Grid [GridRows][GridCols]store.Date

// Cells - клетки построчно.
func (g Grid) Cells() []store.Date {
	res := make([]store.Date, 0, GridRows*GridCols)
	for _, row := range g {
		res = append(res, row[:]...)
	}
	return res
}

// dayMath - арифметика дат конкретной системы, которой достаточно для построения сетки.
type dayMath interface {
	DaysInMonth(year, month int) int
	IsLeapYear(year int) bool
	// weekday вычисляется через григорианскую дату, чтобы не зависеть от системы.
	weekday(year, month, day int) (time.Weekday, error)
}

// buildGrid - общий для всех систем алгоритм. Даты никогда не создаются "на авось":
// при выходе за пределы месяца происходит переход к соседнему месяцу по длинам месяцев
// этой же системы.
func buildGrid(dm dayMath, year, month int, firstDay time.Weekday, today store.Date) (Grid, error) {
	var g Grid

	if month < 1 || month > 12 {
		return g, fmt.Errorf("calendar cannot build grid for month %d: %w", month, store.ErrInvalidDate)
	}
	if !validWeekday(firstDay) {
		return g, fmt.Errorf("calendar cannot build grid: invalid first day of week %d", firstDay)
	}

	wd, err := dm.weekday(year, month, 1)
	if err != nil {
		return g, fmt.Errorf("calendar cannot build grid for %d-%02d: %w", year, month, err)
	}

	fromPrev := (int(wd) - int(firstDay) + 7) % 7

	y, m, d := year, month, 1-fromPrev
	if d < 1 {
		y, m = prevMonth(y, m)
		d += dm.DaysInMonth(y, m)
	}

	for i := 0; i < GridRows*GridCols; i++ {
		cellWd, err := dm.weekday(y, m, d)
		if err != nil {
			return Grid{}, fmt.Errorf("calendar cannot build grid for %d-%02d: %w", year, month, err)
		}

		g[i/GridCols][i%GridCols] = store.Date{
			Year:         y,
			Month:        m,
			Day:          d,
			WeekDay:      store.WeekDayOf(cellWd),
			Leap:         dm.IsLeapYear(y),
			CurrentMonth: y == year && m == month,
			Today:        y == today.Year && m == today.Month && d == today.Day,
		}

		d++
		if d > dm.DaysInMonth(y, m) {
			d = 1
			y, m = nextMonth(y, m)
		}
	}

	return g, nil
}

func prevMonth(y, m int) (int, int) {
	if m == 1 {
		return y - 1, 12
	}
	return y, m - 1
}

func nextMonth(y, m int) (int, int) {
	if m == 12 {
		return y + 1, 1
	}
	return y, m + 1
}
