package rest

import (
	"errors"
	"net/http"
)

// Хранимый производственный календарь: /api/{cc}/cal/...

func (s *Server) yearCtrl(w http.ResponseWriter, r *http.Request) {
	y, err := yearParam(r)
	if err != nil {
		sendErrorJson(w, http.StatusBadRequest, "invalid year")
		return
	}

	year, found := s.Store.FindYear(countryFrom(r), y)
	if !found {
		sendErrorJson(w, http.StatusNotFound, "year not found")
		return
	}

	sendJsonResponse(w, year)
}

func (s *Server) monthCtrl(w http.ResponseWriter, r *http.Request) {
	y, err1 := yearParam(r)
	m, err2 := monthParam(r)
	if err := errors.Join(err1, err2); err != nil {
		sendErrorJson(w, http.StatusBadRequest, "invalid date")
		return
	}

	month, found := s.Store.FindMonth(countryFrom(r), y, m)
	if !found {
		sendErrorJson(w, http.StatusNotFound, "month not found")
		return
	}

	sendJsonResponse(w, month)
}

func (s *Server) dayCtrl(w http.ResponseWriter, r *http.Request) {
	y, err1 := yearParam(r)
	m, err2 := monthParam(r)
	d, err3 := dayParam(r)
	if err := errors.Join(err1, err2, err3); err != nil {
		sendErrorJson(w, http.StatusBadRequest, "invalid date")
		return
	}

	day, found := s.Store.FindDay(countryFrom(r), y, m, d)
	if !found {
		sendErrorJson(w, http.StatusNotFound, "date not found")
		return
	}

	sendJsonResponse(w, day)
}
