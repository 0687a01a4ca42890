// Package hijri - исламский лунный календарь Умм аль-Кура (официальный календарь Саудовской Аравии).
//
// Даты берутся из таблиц github.com/hablullah/go-hijri. Таблицы покрывают 1356-1500 гг. х.
// (примерно 1937-2077 гг.), за их пределами используется табличный (арифметический) календарь:
// 12 месяцев попеременно по 30 и 29 дней, в 11 годах из 30-летнего цикла в зуль-хиджже 30 дней.
// Даты, объявляемые по наблюдению луны, могут отличаться на день.
package hijri

import (
	"fmt"
	"math"
	"time"

	gohijri "github.com/hablullah/go-hijri"
	"github.com/nvkalinin/kalendar/store"
)

const (
	Muharram = iota + 1
	Safar
	RabiAlAwwal
	RabiAlThani
	JumadaAlAwwal
	JumadaAlThani
	Rajab
	Shaban
	Ramadan
	Shawwal
	DhuAlQadah
	DhuAlHijjah
)

const (
	epochJDN     = 1948440 // 1 мухаррама 1 г. х. в табличном календаре.
	unixEpochJDN = 2440588 // 1970-01-01

	// Умм аль-Кура расходится с табличным календарем не больше чем на пару дней.
	searchDays = 5
)

type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d AH", d.Year, d.Month, d.Day)
}

// FromGregorian учитывает только дату t.
func FromGregorian(t time.Time) Date {
	t = store.DayStart(t)
	ud, err := gohijri.CreateUmmAlQuraDate(t)
	if err != nil {
		return tabularFromGregorian(t)
	}
	return Date{Year: int(ud.Year), Month: int(ud.Month), Day: int(ud.Day)}
}

// ToGregorian ищет григорианскую дату, которую FromGregorian переводит в (y, m, d).
// 30-е число 29-дневного месяца - ErrInvalidDate.
func ToGregorian(y, m, d int) (time.Time, error) {
	if y < 1 || m < Muharram || m > DhuAlHijjah || d < 1 || d > 30 {
		return time.Time{}, fmt.Errorf("hijri %d-%d-%d: %w", y, m, d, store.ErrInvalidDate)
	}

	want := Date{Year: y, Month: m, Day: d}
	approx := tabularToGregorian(y, m, d)
	for delta := 0; delta <= searchDays; delta++ {
		for _, g := range []time.Time{approx.AddDate(0, 0, -delta), approx.AddDate(0, 0, delta)} {
			if FromGregorian(g) == want {
				return g, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("hijri %d-%d-%d: %w", y, m, d, store.ErrInvalidDate)
}

// MonthLength - 29 или 30 дней, 0 для некорректного месяца.
func MonthLength(y, m int) int {
	if _, err := ToGregorian(y, m, 1); err != nil {
		return 0
	}
	if _, err := ToGregorian(y, m, 30); err == nil {
		return 30
	}
	return 29
}

// Occurrences возвращает все даты григорианского года gy, приходящиеся на день d месяца m
// по хиджре. Лунный год на ~11 дней короче, поэтому совпадений может быть 0, 1 или 2.
// Год просматривается день за днем.
func Occurrences(gy, m, d int) []time.Time {
	var res []time.Time
	day := time.Date(gy, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == gy {
		h := FromGregorian(day)
		if h.Month == m && h.Day == d {
			res = append(res, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return res
}

func tabularLeap(y int) bool {
	return mod(14+11*y, 30) < 11
}

func tabularToJDN(y, m, d int) int {
	return d + (59*(m-1)+1)/2 + (y-1)*354 + floorDiv(3+11*y, 30) + epochJDN - 1
}

func tabularToGregorian(y, m, d int) time.Time {
	days := int64(tabularToJDN(y, m, d) - unixEpochJDN)
	return time.Unix(days*24*60*60, 0).UTC()
}

func tabularFromGregorian(t time.Time) Date {
	jdn := int(store.EpochDay(t)) + unixEpochJDN

	y := floorDiv(30*(jdn-epochJDN)+10646, 10631)
	m := int(math.Ceil(float64(jdn-(29+tabularToJDN(y, 1, 1)))/29.5)) + 1
	if m > 12 {
		m = 12
	}
	d := jdn - tabularToJDN(y, m, 1) + 1

	return Date{Year: y, Month: m, Day: d}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	return a - floorDiv(a, b)*b
}
