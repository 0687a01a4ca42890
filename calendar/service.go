package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/nvkalinin/kalendar/store"
)

// HolidayEngine - источник праздников, обычно *holiday.Engine.
type HolidayEngine interface {
	ForYear(c store.Country, year int) ([]store.Holiday, error)
}

type ServiceOpts struct {
	SystemOpts
	Holidays HolidayEngine // Если nil, праздников нет.
}

// Service связывает страну с ее календарной системой и праздниками. Внешний слой (REST, CLI)
// работает только с ним и не знает, какая система выбрана.
type Service struct {
	System
	country  store.Country
	holidays HolidayEngine
}

func NewService(c store.Country, opts ServiceOpts) (*Service, error) {
	sys, err := NewSystem(c, opts.SystemOpts)
	if err != nil {
		return nil, err
	}
	return &Service{System: sys, country: c, holidays: opts.Holidays}, nil
}

func (s *Service) Country() store.Country {
	return s.country
}

func (s *Service) IsSolarHijri() bool {
	return s.Type() == store.Solar
}

func (s *Service) HolidaysForYear(year int) ([]store.Holiday, error) {
	if s.holidays == nil {
		return []store.Holiday{}, nil
	}
	return s.holidays.ForYear(s.country, year)
}

func (s *Service) ConvertToCalendar(t time.Time) (store.Date, error) {
	return s.FromGregorian(t)
}

func (s *Service) ConvertEpochDay(n int64) (store.Date, error) {
	t, err := store.FromEpochDay(n)
	if err != nil {
		return store.Date{}, err
	}
	return s.FromGregorian(t)
}

// Cell - клетка сетки месяца с тем, что нужно для отображения.
type Cell struct {
	store.Date
	Gregorian time.Time `json:"gregorian"`
	EpochDay  int64     `json:"epochDay"`
	Holidays  []string  `json:"holidays,omitempty"`
	Selected  bool      `json:"selected"`
}

func (c Cell) IsHoliday() bool {
	return len(c.Holidays) > 0
}

type MonthView struct {
	Country   store.Country            `json:"country"`
	Calendar  store.CalendarType       `json:"calendar"`
	Year      int                      `json:"year"`
	Month     int                      `json:"month"`
	MonthName string                   `json:"monthName"`
	DayNames  []string                 `json:"dayNames"`
	Rows      [GridRows][GridCols]Cell `json:"rows"`
}

// MonthView строит сетку месяца в системе страны и отмечает праздники и выбранный день.
// Праздники загружаются за все григорианские годы, которые задевает сетка. Нулевой selected - ничего не выбрано.
func (s *Service) MonthView(year, month int, selected time.Time) (MonthView, error) {
	return s.MonthViewFrom(year, month, s.FirstDayOfWeek(), selected)
}

func (s *Service) MonthViewFrom(year, month int, firstDay time.Weekday, selected time.Time) (MonthView, error) {
	grid, err := s.BuildMonthGrid(year, month, firstDay)
	if err != nil {
		return MonthView{}, err
	}

	mv := MonthView{
		Country:   s.country,
		Calendar:  s.Type(),
		Year:      year,
		Month:     month,
		MonthName: s.MonthDisplayName(month),
		DayNames:  make([]string, GridCols),
	}
	for i := range mv.DayNames {
		mv.DayNames[i] = s.DayOfWeekDisplayName(time.Weekday((int(firstDay) + i) % 7))
	}

	selDay := int64(-1 << 62)
	if !selected.IsZero() {
		selDay = store.EpochDay(selected)
	}

	var fromYear, toYear int
	for r, row := range grid {
		for c, d := range row {
			g, err := s.ToGregorian(d)
			if err != nil {
				return MonthView{}, fmt.Errorf("calendar cannot build month view: %w", err)
			}
			if r == 0 && c == 0 {
				fromYear = g.Year()
			}
			toYear = g.Year()

			ed := store.EpochDay(g)
			mv.Rows[r][c] = Cell{Date: d, Gregorian: g, EpochDay: ed, Selected: ed == selDay}
		}
	}

	// Следующий год тоже: перенос Нового года с субботы попадает на 31 декабря.
	names, err := s.holidayNames(fromYear, toYear+1)
	if err != nil {
		return MonthView{}, err
	}
	for r := range mv.Rows {
		for c := range mv.Rows[r] {
			cell := &mv.Rows[r][c]
			cell.Holidays = names[cell.EpochDay]
		}
	}

	return mv, nil
}

// holidayNames - названия праздников по EpochDay. Несколько праздников в один день идут в порядке списка.
func (s *Service) holidayNames(fromYear, toYear int) (map[int64][]string, error) {
	res := make(map[int64][]string)
	for y := fromYear; y <= toYear; y++ {
		hs, err := s.HolidaysForYear(y)
		if err != nil {
			return nil, fmt.Errorf("calendar cannot load holidays for %d: %w", y, err)
		}
		for _, h := range hs {
			ed := store.EpochDay(h.Date)
			res[ed] = append(res[ed], h.Name)
		}
	}
	return res, nil
}

// Title - заголовок ячейки: все праздники дня через "; ".
func (c Cell) Title() string {
	return strings.Join(c.Holidays, "; ")
}
