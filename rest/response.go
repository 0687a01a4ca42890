package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nvkalinin/kalendar/log"
	"github.com/nvkalinin/kalendar/store"
)

func intParam(r *http.Request, param string) (int, error) {
	strVal := chi.URLParam(r, param)
	return strconv.Atoi(strVal)
}

func yearParam(r *http.Request) (int, error) {
	y, err := intParam(r, "y")
	if err != nil {
		return 0, err
	}

	if y <= 0 {
		return 0, fmt.Errorf("invalid year")
	}
	return y, nil
}

func monthParam(r *http.Request) (time.Month, error) {
	m, err := intParam(r, "m")
	if err != nil {
		return 0, err
	}

	if m < int(time.January) || m > int(time.December) {
		return 0, fmt.Errorf("invalid month number")
	}
	return time.Month(m), nil
}

func dayParam(r *http.Request) (int, error) {
	d, err := intParam(r, "d")
	if err != nil {
		return 0, err
	}

	if d < 1 || d > 31 {
		return 0, fmt.Errorf("invalid day number")
	}
	return d, nil
}

func sendJsonResponse(w http.ResponseWriter, data any) {
	respJson, err := json.Marshal(data)
	if err != nil {
		log.Printf("[WARN] rest: cannot marshal response data: %+v", err)
		sendErrorJson(w, http.StatusInternalServerError, "cannot marshal response data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(respJson); err != nil {
		log.Printf("[WARN] rest: cannot write response data: %+v", err)
	}
}

type restError struct {
	Msg string `json:"msg"`
}

func sendErrorJson(w http.ResponseWriter, status int, msg string) {
	errJson, err := json.Marshal(restError{Msg: msg})
	if err != nil {
		log.Printf("[WARN] rest: cannot marshal rest error: %+v", err)
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err = w.Write(errJson); err != nil {
		log.Printf("[WARN] rest: cannot write rest error: %+v", err)
	}
}

// sendError выбирает код ответа по типу ошибки.
func sendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidDate):
		sendErrorJson(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrUnsupportedCountry):
		sendErrorJson(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("[ERROR] rest: %+v", err)
		sendErrorJson(w, http.StatusInternalServerError, "internal error")
	}
}
