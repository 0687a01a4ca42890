package source

import (
	"fmt"
	"os"
	"time"

	"github.com/nvkalinin/kalendar/log"
	"github.com/nvkalinin/kalendar/store"
	"gopkg.in/yaml.v3"
)

// Override - источник, который берет данные из YAML-файла:
//
//	GB:
//	  2022:
//	    6:
//	      3: {type: holiday, desc: Platinum Jubilee}
//
// Если working не указан, день рабочий для типов normal и preHoliday, а также когда тип не указан
// (например, только описание).
type Override struct {
	Path string
}

type overrideDay struct {
	WeekDay store.WeekDay `yaml:"weekDay"`
	Working *bool         `yaml:"working"`
	Type    store.DayType `yaml:"type"`
	Desc    string        `yaml:"desc"`
}

// Страна -> год -> месяц -> день.
type overrides map[string]map[int]map[time.Month]map[int]overrideDay

func (o *Override) GetYear(c store.Country, y int) (store.Months, error) {
	ov, err := o.load()
	if err != nil {
		return nil, err
	}

	months := make(store.Months)
	for code, years := range ov {
		oc, ok := store.ParseCountry(code)
		if !ok {
			log.Printf("[WARN] source/override unknown country %q in %s", code, o.Path)
			continue
		}
		if oc != c {
			continue
		}

		for mon, days := range years[y] {
			if mon < time.January || mon > time.December {
				return nil, fmt.Errorf("source/override invalid month %d in %s/%d: %w", mon, c, y, store.ErrInvalidDate)
			}
			if _, ok := months[mon]; !ok {
				months[mon] = make(store.Days, len(days))
			}
			lastDay := time.Date(y, mon+1, 0, 0, 0, 0, 0, time.UTC).Day()
			for dayNum, d := range days {
				if dayNum < 1 || dayNum > lastDay {
					return nil, fmt.Errorf("source/override invalid day %d in %s/%d/%d: %w", dayNum, c, y, mon, store.ErrInvalidDate)
				}
				months[mon][dayNum] = d.day()
			}
		}
	}

	return months, nil
}

// Админ может менять файл, поэтому читаем его при каждом вызове.
func (o *Override) load() (overrides, error) {
	f, err := os.ReadFile(o.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot read overrides yaml: %w", err)
	}

	ov := overrides{}
	if err := yaml.Unmarshal(f, &ov); err != nil {
		return nil, fmt.Errorf("cannot parse overrides yaml: %w", err)
	}
	return ov, nil
}

func (d overrideDay) day() store.Day {
	working := d.Type == "" || d.Type == store.Normal || d.Type == store.PreHoliday
	if d.Working != nil {
		working = *d.Working
	}
	return store.Day{
		WeekDay: d.WeekDay,
		Working: working,
		Type:    d.Type,
		Desc:    d.Desc,
	}
}
