package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nvkalinin/kalendar/calendar/jalali"
	"github.com/nvkalinin/kalendar/log"
	"github.com/nvkalinin/kalendar/store"
)

// Названия в солнечной хиджре всегда персидские, независимо от локали.
var (
	persianMonths = [12]string{
		"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
		"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
	}
	persianShort = faShort
	persianLong  = faLong
)

// SolarHijri - иранский календарь (солнечная хиджра). Неделя начинается с субботы.
type SolarHijri struct {
	base
}

func NewSolarHijri(opts SystemOpts) *SolarHijri {
	return &SolarHijri{base: newBase(opts)}
}

func (s *SolarHijri) Type() store.CalendarType {
	return store.Solar
}

func (s *SolarHijri) CurrentDate() store.Date {
	d, err := s.FromGregorian(s.clock())
	if err != nil {
		log.Printf("[WARN] current date is out of solar hijri range: %v", err)
		return store.Date{}
	}
	return d
}

func (s *SolarHijri) CurrentYear() int {
	return s.CurrentDate().Year
}

func (s *SolarHijri) CurrentMonth() int {
	return s.CurrentDate().Month
}

func (s *SolarHijri) FirstDayOfWeek() time.Weekday {
	return time.Saturday
}

func (s *SolarHijri) MonthNames() []string {
	res := make([]string, 12)
	copy(res, persianMonths[:])
	return res
}

func (s *SolarHijri) DayOfWeekNames() []string {
	return weekNames(persianShort, s.FirstDayOfWeek())
}

func (s *SolarHijri) FullDayOfWeekNames() []string {
	return weekNames(persianLong, s.FirstDayOfWeek())
}

func (s *SolarHijri) DaysInMonth(year, month int) int {
	return jalali.MonthLength(year, month)
}

func (s *SolarHijri) IsLeapYear(year int) bool {
	return jalali.IsLeap(year)
}

func (s *SolarHijri) weekday(year, month, day int) (time.Weekday, error) {
	t, err := jalali.ToGregorian(year, month, day)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

func (s *SolarHijri) BuildMonthGrid(year, month int, firstDay time.Weekday) (Grid, error) {
	return buildGrid(s, year, month, firstDay, s.today())
}

func (s *SolarHijri) MonthDisplayName(month int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(month)
	}
	return persianMonths[month-1]
}

func (s *SolarHijri) DayOfWeekDisplayName(wd time.Weekday) string {
	if !validWeekday(wd) {
		return ""
	}
	return persianShort[wd]
}

func (s *SolarHijri) FullDayOfWeekDisplayName(wd time.Weekday) string {
	if !validWeekday(wd) {
		return ""
	}
	return persianLong[wd]
}

func (s *SolarHijri) FromGregorian(t time.Time) (store.Date, error) {
	jd, err := jalali.FromGregorian(t)
	if err != nil {
		return store.Date{}, fmt.Errorf("calendar cannot convert %s: %w", t.Format("2006-01-02"), store.ErrInvalidDate)
	}

	today := s.today()

	return store.Date{
		Year:         jd.Year,
		Month:        jd.Month,
		Day:          jd.Day,
		WeekDay:      store.WeekDayOf(t.Weekday()),
		Leap:         jalali.IsLeap(jd.Year),
		CurrentMonth: true,
		Today:        jd.Year == today.Year && jd.Month == today.Month && jd.Day == today.Day,
	}, nil
}

func (s *SolarHijri) ToGregorian(d store.Date) (time.Time, error) {
	t, err := jalali.ToGregorian(d.Year, d.Month, d.Day)
	if err != nil {
		return time.Time{}, fmt.Errorf("calendar cannot convert %s: %w", d, store.ErrInvalidDate)
	}
	return t, nil
}

func (s *SolarHijri) today() store.Date {
	jd, err := jalali.FromGregorian(s.clock())
	if err != nil {
		return store.Date{}
	}
	return store.Date{Year: jd.Year, Month: jd.Month, Day: jd.Day}
}
