package holiday

import (
	"time"

	"github.com/nvkalinin/kalendar/calendar/hijri"
	"github.com/nvkalinin/kalendar/calendar/jalali"
	"github.com/nvkalinin/kalendar/store"
	"github.com/rickar/cal/v2"
)

// solarRule - праздник по солнечной хиджре. Без точного перевода используется
// фиксированная григорианская дата (приближение, год к году сдвигается на день).
type solarRule struct {
	hol    *cal.Holiday
	jMonth int
	jDay   int
}

var iranSolarRules = []solarRule{
	{fixed("Victory of the Islamic Revolution", time.February, 11), 11, 22},
	{fixed("Imam Khomeini’s Demise", time.June, 3), 3, 14},
	{fixed("15 Khordad Uprising", time.June, 5), 3, 15},
	{fixed("Nowruz (New Year)", time.March, 21), 1, 1},
	{fixed("Nowruz Holiday", time.March, 22), 1, 2},
	{fixed("Nowruz Holiday", time.March, 23), 1, 3},
	{fixed("Nowruz Holiday", time.March, 24), 1, 4},
	{fixed("Islamic Republic Day", time.April, 1), 1, 12},
	{fixed("Nature Day (Sizdah-bedar)", time.April, 2), 1, 13},
}

type lunarRule struct {
	name  string
	month int
	day   int
}

var iranLunarRules = []lunarRule{
	{"Eid al-Fitr (1st day)", hijri.Shawwal, 1},
	{"Eid al-Fitr (2nd day)", hijri.Shawwal, 2},
	{"Eid al-Adha", hijri.DhuAlHijjah, 10},
	{"Tasua (9 Muharram)", hijri.Muharram, 9},
	{"Ashura (10 Muharram)", hijri.Muharram, 10},
	{"Arba’een (20 Safar)", hijri.Safar, 20},
	{"Prophet’s Demise & Imam Hasan (28 Safar)", hijri.Safar, 28},
	{"Mab’ath (27 Rajab)", hijri.Rajab, 27},
	{"Eid al-Ghadir", hijri.DhuAlHijjah, 18},
}

func iranHolidays(year int, exactSolar bool) ([]store.Holiday, error) {
	res := make([]store.Holiday, 0, len(iranSolarRules)+len(iranLunarRules)+2)

	for _, r := range iranSolarRules {
		if !exactSolar {
			res = append(res, calcAll([]*cal.Holiday{r.hol}, year)...)
			continue
		}

		dates, err := solarOccurrences(year, r.jMonth, r.jDay)
		if err != nil {
			return nil, err
		}
		for _, d := range dates {
			res = append(res, store.Holiday{Name: r.hol.Name, Date: d, Fixed: true})
		}
	}

	for _, r := range iranLunarRules {
		for _, d := range hijri.Occurrences(year, r.month, r.day) {
			res = append(res, store.Holiday{Name: r.name, Date: d})
		}
	}

	return res, nil
}

// solarOccurrences - даты григорианского года gy, приходящиеся на jd число месяца jm солнечной
// хиджры. Григорианский год пересекается с двумя годами хиджры, проверяются оба.
func solarOccurrences(gy, jm, jd int) ([]time.Time, error) {
	var res []time.Time
	for _, jy := range []int{gy - 622, gy - 621} {
		if jd > jalali.MonthLength(jy, jm) {
			continue // 30 эсфанда в невисокосный год.
		}

		d, err := jalali.ToGregorian(jy, jm, jd)
		if err != nil {
			return nil, err
		}
		if d.Year() == gy {
			res = append(res, d)
		}
	}
	return res, nil
}
