package holiday

import (
	"time"

	"github.com/nvkalinin/kalendar/store"
	"github.com/rickar/cal/v2"
)

// США: суббота -> пятница, воскресенье -> понедельник. Каждый праздник отдельно.
var usWeekendAlt = []cal.AltDay{
	{Day: time.Saturday, Offset: -1},
	{Day: time.Sunday, Offset: 1},
}

// rollForward переносит праздники с выходных на ближайший будний день. Если день уже занят
// другим праздником из hs, праздник сдвигается дальше, пока не найдется свободный день.
// Праздники обрабатываются в порядке hs: более ранний в списке занимает день первым.
func rollForward(hs []store.Holiday) []store.Holiday {
	used := make(map[int64]bool, len(hs))
	res := make([]store.Holiday, 0, len(hs))

	for _, h := range hs {
		d := h.Date
		for cal.IsWeekend(d) {
			d = d.AddDate(0, 0, 1)
		}
		for used[store.EpochDay(d)] {
			d = d.AddDate(0, 0, 1)
		}
		used[store.EpochDay(d)] = true

		h.Observed = h.Observed || !d.Equal(h.Date)
		h.Date = d
		res = append(res, h)
	}

	return res
}
