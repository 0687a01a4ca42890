package calendar

import (
	"fmt"
	"time"

	"github.com/nvkalinin/kalendar/store"
)

type Gregorian struct {
	base
}

func NewGregorian(opts SystemOpts) *Gregorian {
	return &Gregorian{base: newBase(opts)}
}

func (g *Gregorian) Type() store.CalendarType {
	return store.Gregorian
}

func (g *Gregorian) CurrentDate() store.Date {
	d, _ := g.FromGregorian(g.clock())
	return d
}

func (g *Gregorian) CurrentYear() int {
	return g.clock().Year()
}

func (g *Gregorian) CurrentMonth() int {
	return int(g.clock().Month())
}

func (g *Gregorian) FirstDayOfWeek() time.Weekday {
	return g.loc.FirstDay
}

func (g *Gregorian) MonthNames() []string {
	res := make([]string, 12)
	for i := range res {
		res[i] = g.loc.monthName(i + 1)
	}
	return res
}

func (g *Gregorian) DayOfWeekNames() []string {
	return weekNames(g.loc.ShortDays, g.FirstDayOfWeek())
}

func (g *Gregorian) FullDayOfWeekNames() []string {
	return weekNames(g.loc.LongDays, g.FirstDayOfWeek())
}

func (g *Gregorian) DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (g *Gregorian) IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (g *Gregorian) weekday(year, month, day int) (time.Weekday, error) {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday(), nil
}

func (g *Gregorian) BuildMonthGrid(year, month int, firstDay time.Weekday) (Grid, error) {
	return buildGrid(g, year, month, firstDay, g.today())
}

func (g *Gregorian) MonthDisplayName(month int) string {
	return g.loc.monthName(month)
}

func (g *Gregorian) DayOfWeekDisplayName(wd time.Weekday) string {
	if !validWeekday(wd) {
		return ""
	}
	return g.loc.ShortDays[wd]
}

func (g *Gregorian) FullDayOfWeekDisplayName(wd time.Weekday) string {
	if !validWeekday(wd) {
		return ""
	}
	return g.loc.LongDays[wd]
}

func (g *Gregorian) FromGregorian(t time.Time) (store.Date, error) {
	today := g.clock()
	y, m, d := t.Date()
	ty, tm, td := today.Date()

	return store.Date{
		Year:         y,
		Month:        int(m),
		Day:          d,
		WeekDay:      store.WeekDayOf(t.Weekday()),
		Leap:         g.IsLeapYear(y),
		CurrentMonth: true,
		Today:        y == ty && m == tm && d == td,
	}, nil
}

func (g *Gregorian) ToGregorian(d store.Date) (time.Time, error) {
	if d.Day < 1 || d.Day > g.DaysInMonth(d.Year, d.Month) {
		return time.Time{}, fmt.Errorf("calendar cannot convert %s: %w", d, store.ErrInvalidDate)
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), nil
}

// today - сегодняшняя дата, вычисляется один раз на построение сетки.
func (g *Gregorian) today() store.Date {
	y, m, d := g.clock().Date()
	return store.Date{Year: y, Month: int(m), Day: d}
}
