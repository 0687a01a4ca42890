// Package holiday вычисляет государственные (банковские) праздники страны за григорианский год.
//
// Для каждой страны своя таблица правил. Правила описаны значениями *cal.Holiday: фиксированное
// число месяца, смещение от Пасхи, N-й день недели месяца. Переносы с выходных зависят от страны:
// в США - на ближайший будний день (суббота -> пятница, воскресенье -> понедельник), в
// Великобритании и Австралии - вперед на первый свободный будний день, в остальных странах
// праздники не переносятся. Мусульманские праздники Ирана считаются по лунной хиджре.
package holiday

import (
	"fmt"
	"sort"

	"github.com/nvkalinin/kalendar/store"
)

type Opts struct {
	// ExactSolarHijri - вычислять праздники по солнечной хиджре (Новруз, 22 бахмана, 14-15 хордада)
	// точным переводом дат, а не брать фиксированные григорианские даты.
	ExactSolarHijri bool
}

// Engine не имеет изменяемого состояния, один экземпляр можно использовать из нескольких горутин.
type Engine struct {
	Opts Opts
}

var Default = &Engine{}

func New(opts Opts) *Engine {
	return &Engine{Opts: opts}
}

// ForYear то же, что Default.ForYear.
func ForYear(c store.Country, year int) ([]store.Holiday, error) {
	return Default.ForYear(c, year)
}

// ForYear возвращает праздники страны c за год year, отсортированные по дате.
// Из-за переносов дата может выйти за пределы года: например, 1 января 2022 г. в США
// (суббота) отмечается 31 декабря 2021 г.
func (e *Engine) ForYear(c store.Country, year int) ([]store.Holiday, error) {
	var (
		res []store.Holiday
		err error
	)

	switch c {
	case store.US:
		res = usHolidays(year)
	case store.UK:
		res = ukHolidays(year)
	case store.Germany:
		res = germanHolidays(year)
	case store.France:
		res = frenchHolidays(year)
	case store.Italy:
		res = italianHolidays(year)
	case store.Australia:
		res = australianHolidays(year)
	case store.Austria:
		res = austrianHolidays(year)
	case store.Iran:
		res, err = iranHolidays(year, e.Opts.ExactSolarHijri)
	default:
		return nil, fmt.Errorf("holiday cannot compute holidays for %q: %w", c, store.ErrUnsupportedCountry)
	}

	if err != nil {
		return nil, fmt.Errorf("holiday cannot compute holidays for %s, %d: %w", c, year, err)
	}

	sortByDate(res)
	return res, nil
}

// sortByDate сохраняет порядок таблицы правил для праздников в один день.
func sortByDate(hs []store.Holiday) {
	sort.SliceStable(hs, func(i, j int) bool {
		return hs[i].Date.Before(hs[j].Date)
	})
}
