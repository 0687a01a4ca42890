package calendar

import (
	"fmt"
	"time"

	"github.com/nvkalinin/kalendar/store"
)

// System - календарная система. Реализации взаимозаменяемы: вызывающий код не знает,
// какая из них выбрана, ветвление только в NewSystem.
//
// Экземпляр не меняется после создания и безопасен для использования из нескольких горутин.
// При смене страны нужно создать новый экземпляр.
type System interface {
	Type() store.CalendarType
	Locale() Locale

	// CurrentDate - сегодняшняя дата в этой системе, Today = true.
	CurrentDate() store.Date
	CurrentYear() int
	CurrentMonth() int

	FirstDayOfWeek() time.Weekday
	MonthNames() []string
	// DayOfWeekNames начинается с FirstDayOfWeek.
	DayOfWeekNames() []string
	FullDayOfWeekNames() []string

	DaysInMonth(year, month int) int
	IsLeapYear(year int) bool

	// BuildMonthGrid строит сетку 6x7 для месяца month года year, первая колонка - firstDay.
	BuildMonthGrid(year, month int, firstDay time.Weekday) (Grid, error)

	MonthDisplayName(month int) string
	DayOfWeekDisplayName(wd time.Weekday) string
	FullDayOfWeekDisplayName(wd time.Weekday) string

	// FromGregorian переводит григорианскую дату (время и часовой пояс не учитываются) в эту систему.
	FromGregorian(t time.Time) (store.Date, error)
	// ToGregorian возвращает полночь UTC.
	ToGregorian(d store.Date) (time.Time, error)
}

type SystemOpts struct {
	Locale Locale // Если пусто - LocaleFor(страна).

	// Clock возвращает текущее время, по умолчанию time.Now. Нужен для тестов.
	Clock func() time.Time
}

// NewSystem - единственное место, где выбирается календарная система страны.
func NewSystem(c store.Country, opts SystemOpts) (System, error) {
	if opts.Locale.empty() {
		opts.Locale = LocaleFor(c)
	}

	switch c.CalendarType() {
	case store.Gregorian:
		return NewGregorian(opts), nil
	case store.Solar:
		return NewSolarHijri(opts), nil
	default:
		return nil, fmt.Errorf("calendar cannot create system for %q: %w", c, store.ErrUnsupportedCountry)
	}
}

// base - общее для всех систем: локаль и часы.
type base struct {
	loc   Locale
	clock func() time.Time
}

func newBase(opts SystemOpts) base {
	b := base{loc: opts.Locale, clock: opts.Clock}
	if b.loc.empty() {
		b.loc = LocaleUS
	}
	if b.clock == nil {
		b.clock = time.Now
	}
	return b
}

func (b base) Locale() Locale {
	return b.loc
}

// weekNames переставляет names (индекс - time.Weekday) так, чтобы первым был first.
func weekNames(names [7]string, first time.Weekday) []string {
	res := make([]string, 7)
	for i := range res {
		res[i] = names[(int(first)+i)%7]
	}
	return res
}

func validWeekday(wd time.Weekday) bool {
	return wd >= time.Sunday && wd <= time.Saturday
}
