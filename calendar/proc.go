package calendar

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/nvkalinin/kalendar/log"
	"github.com/nvkalinin/kalendar/store"
)

type Source interface {
	// GetYear может вернуть не все месяцы года.
	GetYear(c store.Country, y int) (store.Months, error)
}

type Store interface {
	PutYear(c store.Country, y int, data store.Months) error
}

type ProcOpts struct {
	Src       []Source        // Упорядоченный список источников календарей.
	Store     Store           // Куда сохранять итоговый календарь (необязательно, если нужен только метод MakeCalendar).
	Countries []store.Country // Страны, которые обновляются по расписанию. Если пусто - все.
	UpdateAt  time.Time       // Используется только время, остальное игнорируется.
}

type Processor struct {
	ProcOpts
	stopCh  chan struct{}
	doneCh  chan struct{}
	running atomic.Bool
}

func NewProcessor(opts ProcOpts) *Processor {
	if len(opts.Countries) == 0 {
		opts.Countries = store.Countries()
	}
	return &Processor{
		ProcOpts: opts,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// RunUpdates раз в сутки (UpdateAt) обновляет календари всех стран за текущий и следующий год.
func (p *Processor) RunUpdates() {
	p.running.Store(true)
	defer close(p.doneCh)

	t := time.NewTimer(p.untilNextRun())
	defer t.Stop()

	for {
		select {
		case <-t.C:
			p.UpdateCurrentYears()
			t.Reset(p.untilNextRun())

		case <-p.stopCh:
			return
		}
	}
}

// Shutdown останавливает RunUpdates. Если RunUpdates не запускался, ждать нечего.
func (p *Processor) Shutdown(ctx context.Context) error {
	close(p.stopCh)
	if !p.running.Load() {
		return nil
	}

	select {
	case <-p.doneCh:
		return nil
	case <-ctx.Done():
		log.Printf("[WARN] calendar.Proc shutdown timeout")
		return ctx.Err()
	}
}

func (p *Processor) untilNextRun() time.Duration {
	now := time.Now()

	nextRun := time.Date(
		now.Year(), now.Month(), now.Day(),
		p.UpdateAt.Hour(), p.UpdateAt.Minute(), p.UpdateAt.Second(), p.UpdateAt.Nanosecond(),
		time.Local,
	)

	d := time.Until(nextRun)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d
}

func (p *Processor) UpdateCurrentYears() {
	y := time.Now().Year()

	for _, c := range p.Countries {
		for _, year := range []int{y, y + 1} {
			if err := p.UpdateCalendar(c, year); err != nil {
				log.Printf("[WARN] calendar/proc cannot update %s/%d: %+v", c, year, err)
			}
		}
	}
}

func (p *Processor) UpdateCalendar(c store.Country, y int) error {
	cal := p.MakeCalendar(c, y)
	if len(cal) > 0 {
		if err := p.Store.PutYear(c, y, cal); err != nil {
			return fmt.Errorf("calendar/proc cannot store %s/%d: %w", c, y, err)
		}
	}
	log.Printf("[DEBUG] calendar/proc updated %s/%d, months: %d", c, y, len(cal))
	return nil
}

// MakeCalendar собирает календарь страны на один год из источников Src.
// Если два источника возвращают данные на одну дату, данные из последнего заменяют данные из первого.
// Если источник вернет ошибку, он будет пропущен. Если все источники вернут ошибку или Src пуст, то
// возвращается пустой store.Months (len=0).
func (p *Processor) MakeCalendar(c store.Country, y int) store.Months {
	cal := make(store.Months, 12)

	for i, src := range p.Src {
		months, err := src.GetYear(c, y)
		if err != nil {
			log.Printf("[WARN] calendar/proc skipping source %d (%T) for %s, error: %+v", i, src, c, err)
			continue
		}

		cal = merge(cal, months)
	}

	return cal
}

func merge(m1 store.Months, m2 store.Months) store.Months {
	res := m1.Copy()
	for mon, days := range m2 {
		if _, ok := res[mon]; !ok {
			res[mon] = make(store.Days, len(days))
		}

		for dayNum, day := range days {
			merged := res[mon][dayNum]
			merged.Working = day.Working

			if day.WeekDay != "" {
				merged.WeekDay = day.WeekDay
			}
			if day.Type != "" {
				merged.Type = day.Type
			}
			if day.Desc != "" {
				merged.Desc = day.Desc
			}

			res[mon][dayNum] = merged
		}
	}
	return res
}
