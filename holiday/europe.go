package holiday

import (
	"time"

	"github.com/nvkalinin/kalendar/store"
	"github.com/rickar/cal/v2"
)

// Германия, Франция, Италия и Австрия не переносят праздники с выходных.

var germanRules = []*cal.Holiday{
	fixed("New Year's Day", time.January, 1),
	easter("Good Friday", -2),
	easter("Easter Monday", 1),
	fixed("Labour Day", time.May, 1),
	easter("Ascension Day", 39),
	easter("Whit Monday", 50),
	fixed("German Unity Day", time.October, 3),
	fixed("Christmas Day", time.December, 25),
	fixed("Boxing Day", time.December, 26),
}

var frenchRules = []*cal.Holiday{
	fixed("New Year's Day", time.January, 1),
	easter("Easter Monday", 1),
	fixed("Labour Day", time.May, 1),
	fixed("Victory in Europe Day", time.May, 8),
	easter("Ascension Day", 39),
	easter("Whit Monday", 50),
	fixed("Bastille Day", time.July, 14),
	fixed("Assumption Day", time.August, 15),
	fixed("All Saints' Day", time.November, 1),
	fixed("Armistice Day", time.November, 11),
	fixed("Christmas Day", time.December, 25),
}

var italianRules = []*cal.Holiday{
	fixed("New Year's Day", time.January, 1),
	fixed("Epiphany", time.January, 6),
	easter("Easter Monday", 1),
	fixed("Liberation Day", time.April, 25),
	fixed("Labour Day", time.May, 1),
	fixed("Republic Day", time.June, 2),
	fixed("Assumption Day", time.August, 15),
	fixed("All Saints' Day", time.November, 1),
	fixed("Immaculate Conception", time.December, 8),
	fixed("Christmas Day", time.December, 25),
	fixed("St. Stephen's Day", time.December, 26),
}

var austrianRules = []*cal.Holiday{
	fixed("New Year's Day", time.January, 1),
	fixed("Epiphany", time.January, 6),
	easter("Easter Monday", 1),
	fixed("Labour Day", time.May, 1),
	easter("Ascension Day", 39),
	easter("Whit Monday", 50),
	easter("Corpus Christi", 60),
	fixed("Assumption Day", time.August, 15),
	fixed("National Day", time.October, 26),
	fixed("All Saints' Day", time.November, 1),
	fixed("Immaculate Conception", time.December, 8),
	fixed("Christmas Day", time.December, 25),
	fixed("St. Stephen's Day", time.December, 26),
}

func germanHolidays(year int) []store.Holiday {
	return calcAll(germanRules, year)
}

func frenchHolidays(year int) []store.Holiday {
	return calcAll(frenchRules, year)
}

func italianHolidays(year int) []store.Holiday {
	return calcAll(italianRules, year)
}

func austrianHolidays(year int) []store.Holiday {
	return calcAll(austrianRules, year)
}
