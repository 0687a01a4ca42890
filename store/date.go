package store

import (
	"fmt"
	"time"
)

// Date - дата в календарной системе страны. Значение никогда не меняется после создания:
// для каждой ячейки сетки и каждого запроса "сегодня" создается новое.
type Date struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"` // С единицы.
	Day          int     `json:"day"`
	WeekDay      WeekDay `json:"weekDay"`
	Leap         bool    `json:"leapYear"`
	CurrentMonth bool    `json:"currentMonth"`
	Today        bool    `json:"today"`
}

func (d Date) Weekday() time.Weekday {
	return d.WeekDay.Weekday()
}

// Same сравнивает только год, месяц и день.
func (d Date) Same(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Holiday - праздник. Дата всегда в григорианском календаре, даже для стран с другой
// календарной системой.
type Holiday struct {
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Fixed    bool      `json:"fixed"`    // Фиксированное число месяца (а не Пасха, N-й понедельник и т. п.).
	Observed bool      `json:"observed"` // Дата перенесена с выходного.
}

// DayStart отбрасывает время и часовой пояс: все даты в пакетах календаря - полночь UTC.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// EpochDay - количество дней с 1970-01-01.
func EpochDay(t time.Time) int64 {
	return DayStart(t).Unix() / secondsPerDay
}

// FromEpochDay обратное к EpochDay. Так внешний слой передает ранее выбранный день,
// поэтому значение может оказаться испорченным.
func FromEpochDay(n int64) (time.Time, error) {
	const (
		minDay = -719162 // 0001-01-01
		maxDay = 2932896 // 9999-12-31
	)
	if n < minDay || n > maxDay {
		return time.Time{}, fmt.Errorf("epoch day %d out of range: %w", n, ErrInvalidDate)
	}
	return time.Unix(n*secondsPerDay, 0).UTC(), nil
}
