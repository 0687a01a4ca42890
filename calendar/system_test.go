package calendar

import (
	"testing"
	"time"

	"github.com/nvkalinin/kalendar/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystem(t *testing.T) {
	for _, c := range store.Countries() {
		sys, err := NewSystem(c, SystemOpts{})
		require.NoError(t, err, c)
		assert.Equal(t, c.CalendarType(), sys.Type(), c)
		assert.Equal(t, LocaleFor(c).Tag, sys.Locale().Tag, c)
	}

	sys, err := NewSystem(store.Iran, SystemOpts{})
	require.NoError(t, err)
	assert.IsType(t, &SolarHijri{}, sys)

	sys, err = NewSystem(store.US, SystemOpts{Locale: LocaleDE})
	require.NoError(t, err)
	assert.IsType(t, &Gregorian{}, sys)
	assert.Equal(t, "März", sys.MonthDisplayName(3))
	assert.Equal(t, time.Monday, sys.FirstDayOfWeek())

	_, err = NewSystem(store.Country("XX"), SystemOpts{})
	assert.ErrorIs(t, err, store.ErrUnsupportedCountry)
}

func TestGregorian_CurrentDate(t *testing.T) {
	g := NewGregorian(SystemOpts{Clock: fixedClock(2024, time.February, 15)})

	assert.Equal(t, store.Date{
		Year: 2024, Month: 2, Day: 15, WeekDay: store.Thursday, Leap: true, CurrentMonth: true, Today: true,
	}, g.CurrentDate())
	assert.Equal(t, 2024, g.CurrentYear())
	assert.Equal(t, 2, g.CurrentMonth())
}

func TestGregorian_Arithmetic(t *testing.T) {
	g := NewGregorian(SystemOpts{})

	assert.True(t, g.IsLeapYear(2024))
	assert.True(t, g.IsLeapYear(2000))
	assert.False(t, g.IsLeapYear(2023))
	assert.False(t, g.IsLeapYear(1900))

	assert.Equal(t, 29, g.DaysInMonth(2024, 2))
	assert.Equal(t, 28, g.DaysInMonth(2023, 2))
	assert.Equal(t, 31, g.DaysInMonth(2023, 12))
	assert.Equal(t, 30, g.DaysInMonth(2023, 4))
	assert.Equal(t, 0, g.DaysInMonth(2023, 13))
}

func TestGregorian_Convert(t *testing.T) {
	g := NewGregorian(SystemOpts{Clock: fixedClock(2024, time.February, 15)})

	d, err := g.FromGregorian(time.Date(2023, time.July, 4, 23, 59, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, store.Date{Year: 2023, Month: 7, Day: 4, WeekDay: store.Tuesday, CurrentMonth: true}, d)

	d, err = g.FromGregorian(time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, d.Today)

	gd, err := g.ToGregorian(store.Date{Year: 2024, Month: 2, Day: 29})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), gd)

	_, err = g.ToGregorian(store.Date{Year: 2023, Month: 2, Day: 29})
	assert.ErrorIs(t, err, store.ErrInvalidDate)

	_, err = g.ToGregorian(store.Date{Year: 2023, Month: 13, Day: 1})
	assert.ErrorIs(t, err, store.ErrInvalidDate)
}

func TestGregorian_Names(t *testing.T) {
	us := NewGregorian(SystemOpts{Locale: LocaleUS})
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, us.DayOfWeekNames())
	assert.Equal(t, "Sunday", us.FullDayOfWeekNames()[0])
	assert.Equal(t, "January", us.MonthNames()[0])
	assert.Equal(t, "December", us.MonthDisplayName(12))
	assert.Equal(t, "13", us.MonthDisplayName(13))
	assert.Equal(t, "Fri", us.DayOfWeekDisplayName(time.Friday))
	assert.Equal(t, "Friday", us.FullDayOfWeekDisplayName(time.Friday))
	assert.Equal(t, "", us.DayOfWeekDisplayName(time.Weekday(9)))

	gb := NewGregorian(SystemOpts{Locale: LocaleGB})
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, gb.DayOfWeekNames())

	fr := NewGregorian(SystemOpts{Locale: LocaleFR})
	assert.Equal(t, "Janvier", fr.MonthDisplayName(1))
	assert.Equal(t, "Août", fr.MonthDisplayName(8))
	assert.Equal(t, "lundi", fr.FullDayOfWeekNames()[0])

	at := NewGregorian(SystemOpts{Locale: LocaleAT})
	assert.Equal(t, "Jänner", at.MonthDisplayName(1))

	it := NewGregorian(SystemOpts{Locale: LocaleIT})
	assert.Len(t, it.MonthNames(), 12)
	assert.Equal(t, "Dicembre", it.MonthNames()[11])
}

func TestSolarHijri_CurrentDate(t *testing.T) {
	s := NewSolarHijri(SystemOpts{Clock: fixedClock(2024, time.March, 20)})

	assert.Equal(t, store.Date{
		Year: 1403, Month: 1, Day: 1, WeekDay: store.Wednesday, Leap: true, CurrentMonth: true, Today: true,
	}, s.CurrentDate())
	assert.Equal(t, 1403, s.CurrentYear())
	assert.Equal(t, 1, s.CurrentMonth())
}

func TestSolarHijri_Arithmetic(t *testing.T) {
	s := NewSolarHijri(SystemOpts{})

	assert.True(t, s.IsLeapYear(1403))
	assert.False(t, s.IsLeapYear(1402))
	assert.False(t, s.IsLeapYear(1404))

	assert.Equal(t, 31, s.DaysInMonth(1403, 1))
	assert.Equal(t, 31, s.DaysInMonth(1403, 6))
	assert.Equal(t, 30, s.DaysInMonth(1403, 7))
	assert.Equal(t, 30, s.DaysInMonth(1403, 12))
	assert.Equal(t, 29, s.DaysInMonth(1402, 12))
	assert.Equal(t, 0, s.DaysInMonth(1402, 13))
}

func TestSolarHijri_Convert(t *testing.T) {
	s := NewSolarHijri(SystemOpts{Clock: fixedClock(2024, time.March, 20)})

	d, err := s.FromGregorian(time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, store.Date{Year: 1403, Month: 12, Day: 30, WeekDay: store.Thursday, Leap: true, CurrentMonth: true}, d)

	gd, err := s.ToGregorian(store.Date{Year: 1357, Month: 11, Day: 22})
	require.NoError(t, err)
	assert.Equal(t, time.Date(1979, time.February, 11, 0, 0, 0, 0, time.UTC), gd)

	_, err = s.ToGregorian(store.Date{Year: 1402, Month: 12, Day: 30})
	assert.ErrorIs(t, err, store.ErrInvalidDate)

	_, err = s.FromGregorian(time.Date(500, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, store.ErrInvalidDate)
}

func TestSolarHijri_CurrentDate_outOfRange(t *testing.T) {
	s := NewSolarHijri(SystemOpts{Clock: fixedClock(500, time.January, 1)})

	assert.NotPanics(t, func() {
		assert.Equal(t, store.Date{}, s.CurrentDate())
	})

	// Остальные даты переводятся, просто ни одна не "сегодня".
	d, err := s.FromGregorian(time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, store.Date{Year: 1403, Month: 1, Day: 1, WeekDay: store.Wednesday, Leap: true, CurrentMonth: true}, d)

	grid, err := s.BuildMonthGrid(1403, 1, time.Saturday)
	require.NoError(t, err)
	for _, c := range grid.Cells() {
		assert.False(t, c.Today)
	}
}

func TestSolarHijri_Names(t *testing.T) {
	// Локаль не влияет на названия в солнечной хиджре.
	s := NewSolarHijri(SystemOpts{Locale: LocaleUS})

	assert.Equal(t, time.Saturday, s.FirstDayOfWeek())
	assert.Equal(t, []string{"ش", "ی", "د", "س", "چ", "پ", "ج"}, s.DayOfWeekNames())
	assert.Equal(t, "شنبه", s.FullDayOfWeekNames()[0])
	assert.Equal(t, "جمعه", s.FullDayOfWeekDisplayName(time.Friday))
	assert.Equal(t, "فروردین", s.MonthDisplayName(1))
	assert.Equal(t, "اسفند", s.MonthNames()[11])
	assert.Equal(t, "0", s.MonthDisplayName(0))

	// Изменение возвращенного среза не портит таблицу.
	names := s.MonthNames()
	names[0] = "x"
	assert.Equal(t, "فروردین", s.MonthDisplayName(1))
}

func TestParseLocale(t *testing.T) {
	l, err := ParseLocale("en-GB")
	require.NoError(t, err)
	assert.Equal(t, LocaleGB.Tag, l.Tag)

	l, err = ParseLocale("fa-IR")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, l.FirstDay)

	l, err = ParseLocale("fr")
	require.NoError(t, err)
	assert.Equal(t, LocaleFR.Tag, l.Tag)

	_, err = ParseLocale("not a locale")
	assert.Error(t, err)
}

func TestLocaleFor(t *testing.T) {
	assert.Equal(t, LocaleUS.Tag, LocaleFor(store.US).Tag)
	assert.Equal(t, LocaleAT.Tag, LocaleFor(store.Austria).Tag)
	assert.Equal(t, LocaleIR.Tag, LocaleFor(store.Iran).Tag)
	assert.Equal(t, LocaleUS.Tag, LocaleFor(store.Country("XX")).Tag)
}
