package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/nvkalinin/kalendar/calendar"
	"github.com/nvkalinin/kalendar/holiday"
	"github.com/nvkalinin/kalendar/store"
)

// Holidays печатает праздники страны за год. Сервер не нужен, все вычисляется локально.
type Holidays struct {
	Country         string `long:"country" short:"c" env:"COUNTRY" value-name:"CC" default:"US" description:"Страна (код ISO 3166-1)."`
	Year            int    `long:"year" short:"y" env:"YEAR" value-name:"int" description:"Григорианский год. По умолчанию текущий."`
	ExactSolarHijri bool   `long:"exact-solar-hijri" env:"EXACT_SOLAR_HIJRI" description:"Вычислять иранские праздники по солнечной хиджре точно."`
	Json            bool   `long:"json" description:"Вывести в JSON."`

	out io.Writer
}

func (h *Holidays) Execute(args []string) error {
	c, ok := store.ParseCountry(h.Country)
	if !ok {
		return fmt.Errorf("country %q: %w", h.Country, store.ErrUnsupportedCountry)
	}

	y := h.Year
	if y == 0 {
		y = time.Now().Year()
	}

	svc, err := calendar.NewService(c, calendar.ServiceOpts{
		Holidays: holiday.New(holiday.Opts{ExactSolarHijri: h.ExactSolarHijri}),
	})
	if err != nil {
		return err
	}

	hs, err := svc.HolidaysForYear(y)
	if err != nil {
		return err
	}

	w := stdout(h.out)
	if h.Json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(hs)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s, %d\n", c.Name(), y)
	for _, hol := range hs {
		native := ""
		if svc.IsSolarHijri() {
			if d, err := svc.ConvertToCalendar(hol.Date); err == nil {
				native = fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
			}
		}

		mark := ""
		if hol.Observed {
			mark = "(observed)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			hol.Date.Format("2006-01-02"), hol.Date.Weekday().String()[:3], native, hol.Name, mark)
	}
	return tw.Flush()
}
