package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nvkalinin/kalendar/calendar"
	"github.com/nvkalinin/kalendar/store"
)

const dateLayout = "2006-01-02"

type countryJson struct {
	Code     string             `json:"code"`
	Name     string             `json:"name"`
	Calendar store.CalendarType `json:"calendar"`
	Weekend  []store.WeekDay    `json:"weekend"`
}

func (s *Server) countriesCtrl(w http.ResponseWriter, r *http.Request) {
	res := make([]countryJson, 0, len(store.Countries()))
	for _, c := range store.Countries() {
		cj := countryJson{Code: c.Code(), Name: c.Name(), Calendar: c.CalendarType()}
		for _, wd := range c.Weekend() {
			cj.Weekend = append(cj.Weekend, store.WeekDayOf(wd))
		}
		res = append(res, cj)
	}
	sendJsonResponse(w, res)
}

type holidayJson struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	EpochDay int64  `json:"epochDay"`
	Fixed    bool   `json:"fixed"`
	Observed bool   `json:"observed"`
}

func (s *Server) holidaysCtrl(w http.ResponseWriter, r *http.Request) {
	y, err := yearParam(r)
	if err != nil {
		sendErrorJson(w, http.StatusBadRequest, "invalid year")
		return
	}

	svc, err := s.service(countryFrom(r))
	if err != nil {
		sendError(w, err)
		return
	}

	hs, err := svc.HolidaysForYear(y)
	if err != nil {
		sendError(w, err)
		return
	}

	res := make([]holidayJson, len(hs))
	for i, h := range hs {
		res[i] = holidayJson{
			Name:     h.Name,
			Date:     h.Date.Format(dateLayout),
			EpochDay: store.EpochDay(h.Date),
			Fixed:    h.Fixed,
			Observed: h.Observed,
		}
	}
	sendJsonResponse(w, res)
}

// gridCtrl - сетка месяца в календаре страны: год и месяц тоже в этом календаре.
// ?first=sat - первый день недели, ?selected=<epochDay> - выбранный день (по умолчанию сегодня).
func (s *Server) gridCtrl(w http.ResponseWriter, r *http.Request) {
	y, err1 := yearParam(r)
	m, err2 := monthParam(r)
	if err1 != nil || err2 != nil {
		sendErrorJson(w, http.StatusBadRequest, "invalid date")
		return
	}

	svc, err := s.service(countryFrom(r))
	if err != nil {
		sendError(w, err)
		return
	}

	first := svc.FirstDayOfWeek()
	if v := r.URL.Query().Get("first"); v != "" {
		wd, ok := store.ParseWeekDay(v)
		if !ok {
			sendErrorJson(w, http.StatusBadRequest, fmt.Sprintf("invalid first day of week %q", v))
			return
		}
		first = wd
	}

	selected := s.now()
	if v := r.URL.Query().Get("selected"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			sendErrorJson(w, http.StatusBadRequest, fmt.Sprintf("invalid selected day %q", v))
			return
		}
		selected, err = store.FromEpochDay(n)
		if err != nil {
			sendError(w, err)
			return
		}
	}

	mv, err := svc.MonthViewFrom(y, int(m), first, selected)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJsonResponse(w, mv)
}

func (s *Server) todayCtrl(w http.ResponseWriter, r *http.Request) {
	svc, err := s.service(countryFrom(r))
	if err != nil {
		sendError(w, err)
		return
	}
	sendJsonResponse(w, dateResponse(svc, svc.CurrentDate(), s.now()))
}

func (s *Server) epochDayCtrl(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseInt(chi.URLParam(r, "epochDay"), 10, 64)
	if err != nil {
		sendErrorJson(w, http.StatusBadRequest, "invalid epoch day")
		return
	}

	svc, err := s.service(countryFrom(r))
	if err != nil {
		sendError(w, err)
		return
	}

	d, err := svc.ConvertEpochDay(n)
	if err != nil {
		sendError(w, err)
		return
	}

	t, _ := store.FromEpochDay(n)
	sendJsonResponse(w, dateResponse(svc, d, t))
}

type dateJson struct {
	store.Date
	MonthName string `json:"monthName"`
	DayName   string `json:"dayName"`
	Gregorian string `json:"gregorian"`
	EpochDay  int64  `json:"epochDay"`
}

func dateResponse(svc *calendar.Service, d store.Date, g time.Time) dateJson {
	return dateJson{
		Date:      d,
		MonthName: svc.MonthDisplayName(d.Month),
		DayName:   svc.FullDayOfWeekDisplayName(d.Weekday()),
		Gregorian: g.Format(dateLayout),
		EpochDay:  store.EpochDay(g),
	}
}

type namesJson struct {
	Calendar     store.CalendarType `json:"calendar"`
	Locale       string             `json:"locale"`
	FirstDay     store.WeekDay      `json:"firstDay"`
	Months       []string           `json:"months"`
	DaysShort    []string           `json:"daysShort"`
	DaysFull     []string           `json:"daysFull"`
	CurrentYear  int                `json:"currentYear"`
	CurrentMonth int                `json:"currentMonth"`
}

func (s *Server) namesCtrl(w http.ResponseWriter, r *http.Request) {
	svc, err := s.service(countryFrom(r))
	if err != nil {
		sendError(w, err)
		return
	}

	sendJsonResponse(w, namesJson{
		Calendar:     svc.Type(),
		Locale:       svc.Locale().Tag.String(),
		FirstDay:     store.WeekDayOf(svc.FirstDayOfWeek()),
		Months:       svc.MonthNames(),
		DaysShort:    svc.DayOfWeekNames(),
		DaysFull:     svc.FullDayOfWeekNames(),
		CurrentYear:  svc.CurrentYear(),
		CurrentMonth: svc.CurrentMonth(),
	})
}
