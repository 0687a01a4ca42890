package holiday

import (
	"time"

	"github.com/nvkalinin/kalendar/store"
	"github.com/rickar/cal/v2"
)

// Переносятся с выходных (со своим списком занятых дней, не общим с Великобританией).
var auObservedRules = []*cal.Holiday{
	fixed("New Year's Day", time.January, 1),
	fixed("Australia Day", time.January, 26),
	fixed("Christmas Day", time.December, 25),
	fixed("Boxing Day", time.December, 26),
}

// Не переносятся и не занимают дни для переноса.
var auRules = []*cal.Holiday{
	easter("Good Friday", -2),
	easter("Easter Monday", 1),
	fixed("ANZAC Day", time.April, 25),
	weekdayN("King's Birthday", time.June, time.Monday, 2),
}

func australianHolidays(year int) []store.Holiday {
	res := rollForward(calcAll(auObservedRules, year))
	return append(res, calcAll(auRules, year)...)
}
