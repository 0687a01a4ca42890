// Package jalali переводит даты между григорианским календарем и солнечной хиджрой
// (иранский календарь, он же джалали).
//
// Перевод делает github.com/yaa110/go-persian-calendar. Високосность не считается отдельно,
// а выводится из того же перевода: в високосном году за 29 эсфанда следует 30 эсфанда,
// а не 1 фарвардина. Поэтому тест на високосность и перевод дат расходиться не могут.
package jalali

import (
	"fmt"
	"time"

	"github.com/nvkalinin/kalendar/store"
	ptime "github.com/yaa110/go-persian-calendar"
)

// Годы, которые приходятся на григорианские 622..9999.
const (
	MinYear = 1
	MaxYear = 9377
)

// Date - дата по солнечной хиджре.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// IsLeap - високосный ли год. Для года вне MinYear..MaxYear возвращает false.
func IsLeap(jy int) bool {
	if jy < MinYear || jy > MaxYear {
		return false
	}
	last := ptime.Date(jy, ptime.Month(12), 29, 0, 0, 0, 0, time.UTC)
	next := ptime.New(last.Time().AddDate(0, 0, 1))
	return next.Year() == jy && int(next.Month()) == 12 && next.Day() == 30
}

// MonthLength - 31 день в первых шести месяцах, 30 в следующих пяти, в эсфанде 29 или 30.
// Для несуществующего месяца возвращает 0.
func MonthLength(jy, jm int) int {
	switch {
	case jm < 1 || jm > 12:
		return 0
	case jm <= 6:
		return 31
	case jm <= 11:
		return 30
	case IsLeap(jy):
		return 30
	default:
		return 29
	}
}

func Valid(jy, jm, jd int) bool {
	if jy < MinYear || jy > MaxYear {
		return false
	}
	return jd >= 1 && jd <= MonthLength(jy, jm)
}

// ToGregorian возвращает полночь UTC.
func ToGregorian(jy, jm, jd int) (time.Time, error) {
	if !Valid(jy, jm, jd) {
		return time.Time{}, fmt.Errorf("jalali %04d/%02d/%02d: %w", jy, jm, jd, store.ErrInvalidDate)
	}
	pt := ptime.Date(jy, ptime.Month(jm), jd, 0, 0, 0, 0, time.UTC)
	return store.DayStart(pt.Time()), nil
}

// FromGregorian учитывает только дату t, время и часовой пояс игнорируются.
func FromGregorian(t time.Time) (Date, error) {
	pt := ptime.New(store.DayStart(t))
	d := Date{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}
	if d.Year < MinYear || d.Year > MaxYear {
		return Date{}, fmt.Errorf("jalali year %d out of range: %w", d.Year, store.ErrInvalidDate)
	}
	return d, nil
}
