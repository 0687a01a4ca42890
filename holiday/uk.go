package holiday

import (
	"time"

	"github.com/nvkalinin/kalendar/store"
	"github.com/rickar/cal/v2"
)

// Все праздники Великобритании переносятся с выходных, порядок важен для rollForward.
var ukRules = []*cal.Holiday{
	fixed("New Year's Day", time.January, 1),
	easter("Good Friday", -2),
	easter("Easter Monday", 1),
	weekdayN("Early May Bank Holiday", time.May, time.Monday, 1),
	weekdayN("Spring Bank Holiday", time.May, time.Monday, -1),
	weekdayN("Summer Bank Holiday", time.August, time.Monday, -1),
	fixed("Christmas Day", time.December, 25),
	fixed("Boxing Day", time.December, 26),
}

func ukHolidays(year int) []store.Holiday {
	return rollForward(calcAll(ukRules, year))
}
