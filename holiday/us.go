package holiday

import (
	"time"

	"github.com/nvkalinin/kalendar/store"
	"github.com/rickar/cal/v2"
)

func observedUS(h *cal.Holiday) *cal.Holiday {
	h.Observed = usWeekendAlt
	return h
}

var usRules = []*cal.Holiday{
	observedUS(fixed("New Year's Day", time.January, 1)),
	weekdayN("Martin Luther King Jr. Day", time.January, time.Monday, 3),
	weekdayN("Presidents' Day", time.February, time.Monday, 3),
	weekdayN("Memorial Day", time.May, time.Monday, -1),
	observedUS(fixed("Juneteenth National Independence Day", time.June, 19)),
	observedUS(fixed("Independence Day", time.July, 4)),
	weekdayN("Labor Day", time.September, time.Monday, 1),
	weekdayN("Columbus Day", time.October, time.Monday, 2),
	observedUS(fixed("Veterans Day", time.November, 11)),
	weekdayN("Thanksgiving Day", time.November, time.Thursday, 4),
	observedUS(fixed("Christmas Day", time.December, 25)),
}

func usHolidays(year int) []store.Holiday {
	return calcAll(usRules, year)
}
