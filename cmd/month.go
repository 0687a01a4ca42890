package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nvkalinin/kalendar/calendar"
	"github.com/nvkalinin/kalendar/holiday"
	"github.com/nvkalinin/kalendar/log"
	"github.com/nvkalinin/kalendar/store"
)

// Month печатает сетку месяца в календаре страны. Параметры - то, что внешнее приложение сохраняет
// между запусками. Испорченное значение не ошибка: берется значение по умолчанию.
type Month struct {
	Country         string `long:"country" short:"c" env:"COUNTRY" value-name:"CC" description:"Страна (код ISO 3166-1). По умолчанию US."`
	Month           string `long:"month" short:"m" env:"MONTH" value-name:"yyyy-MM" description:"Григорианский месяц. Показывается месяц календаря страны, в который попадает его первое число. По умолчанию текущий месяц."`
	Selected        string `long:"selected" short:"s" env:"SELECTED" value-name:"epochDay" description:"Выбранный день, количество дней с 1970-01-01. По умолчанию сегодня."`
	Locale          string `long:"locale" short:"l" env:"LOCALE" value-name:"tag" description:"Локаль названий (BCP 47), например de-AT. По умолчанию локаль страны."`
	FirstDay        string `long:"first-day" env:"FIRST_DAY" value-name:"mon..sun" description:"Первый день недели. По умолчанию как принято в календаре страны."`
	ExactSolarHijri bool   `long:"exact-solar-hijri" env:"EXACT_SOLAR_HIJRI" description:"Вычислять иранские праздники по солнечной хиджре точно."`
	Json            bool   `long:"json" description:"Вывести в JSON."`

	out   io.Writer
	clock func() time.Time
}

func (m *Month) Execute(args []string) error {
	now := time.Now
	if m.clock != nil {
		now = m.clock
	}

	c := parseCountryOrDefault(m.Country)

	opts := calendar.ServiceOpts{
		SystemOpts: calendar.SystemOpts{Clock: now},
		Holidays:   holiday.New(holiday.Opts{ExactSolarHijri: m.ExactSolarHijri}),
	}
	if m.Locale != "" {
		loc, err := calendar.ParseLocale(m.Locale)
		if err != nil {
			log.Printf("[WARN] %v, using the country's locale", err)
		} else {
			opts.Locale = loc
		}
	}

	svc, err := calendar.NewService(c, opts)
	if err != nil {
		return err
	}

	y, mon := svc.CurrentYear(), svc.CurrentMonth()
	if m.Month != "" {
		if d, ok := parseYearMonth(svc, m.Month); ok {
			y, mon = d.Year, d.Month
		} else {
			log.Printf("[WARN] invalid month %q, using the current month", m.Month)
		}
	}

	selected := now()
	if m.Selected != "" {
		if t, ok := parseEpochDay(m.Selected); ok {
			selected = t
		} else {
			log.Printf("[WARN] invalid selected day %q, using today", m.Selected)
		}
	}

	first := svc.FirstDayOfWeek()
	if m.FirstDay != "" {
		if wd, ok := store.ParseWeekDay(m.FirstDay); ok {
			first = wd
		} else {
			log.Printf("[WARN] invalid first day of week %q, using %s", m.FirstDay, first)
		}
	}

	mv, err := svc.MonthViewFrom(y, mon, first, selected)
	if err != nil {
		return err
	}

	w := stdout(m.out)
	if m.Json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(mv)
	}
	return renderMonth(w, mv)
}

func parseCountryOrDefault(code string) store.Country {
	if code == "" {
		return store.DefaultCountry
	}
	c, ok := store.ParseCountry(code)
	if !ok {
		log.Printf("[WARN] unsupported country %q, using %s", code, store.DefaultCountry)
		return store.DefaultCountry
	}
	return c
}

// parseYearMonth переводит григорианский yyyy-MM в месяц календаря страны по первому числу.
func parseYearMonth(svc *calendar.Service, s string) (store.Date, bool) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return store.Date{}, false
	}
	d, err := svc.ConvertToCalendar(t)
	if err != nil {
		return store.Date{}, false
	}
	return d, true
}

func parseEpochDay(s string) (time.Time, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	t, err := store.FromEpochDay(n)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// renderMonth печатает сетку как cal(1): дни соседних месяцев не показываются,
// [d] - выбранный день, d< - сегодня, d* - праздник. Под сеткой - список праздников месяца.
func renderMonth(w io.Writer, mv calendar.MonthView) error {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%s %d (%s)\n", mv.MonthName, mv.Year, mv.Country)

	for _, name := range mv.DayNames {
		fmt.Fprintf(sb, "%5s", name)
	}
	sb.WriteString("\n")

	var hols []calendar.Cell
	for _, row := range mv.Rows {
		for _, cell := range row {
			sb.WriteString(renderCell(cell))
			if cell.CurrentMonth && cell.IsHoliday() {
				hols = append(hols, cell)
			}
		}
		sb.WriteString("\n")
	}

	for _, cell := range hols {
		fmt.Fprintf(sb, "%2d  %s  %s\n", cell.Day, cell.Gregorian.Format("2006-01-02"), cell.Title())
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func renderCell(cell calendar.Cell) string {
	if !cell.CurrentMonth {
		return "     "
	}

	left, right := " ", " "
	switch {
	case cell.Selected:
		left, right = "[", "]"
	case cell.Today:
		right = "<"
	}
	if cell.IsHoliday() && right == " " {
		right = "*"
	}
	return fmt.Sprintf("%s%2d%s ", left, cell.Day, right)
}
