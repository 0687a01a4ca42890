package rest

import (
	"compress/gzip"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/nvkalinin/kalendar/log"
	"github.com/nvkalinin/kalendar/store"
)

// syncCtrl пересобирает календари за годы из формы (y, можно несколько). Если cc не указан - для всех стран.
// Ответ: страна -> год -> "ok" или текст ошибки.
func (s *Server) syncCtrl(w http.ResponseWriter, r *http.Request) {
	if s.Updater == nil {
		sendErrorJson(w, http.StatusNotImplemented, "sync is not configured")
		return
	}

	if err := r.ParseForm(); err != nil {
		sendErrorJson(w, http.StatusBadRequest, "invalid form")
		return
	}

	years := make([]int, 0, len(r.Form["y"]))
	for _, v := range r.Form["y"] {
		y, err := strconv.Atoi(v)
		if err != nil || y <= 0 {
			sendErrorJson(w, http.StatusBadRequest, fmt.Sprintf("invalid year %q", v))
			return
		}
		years = append(years, y)
	}
	if len(years) == 0 {
		sendErrorJson(w, http.StatusBadRequest, "no years to sync")
		return
	}

	countries := store.Countries()
	if codes := r.Form["cc"]; len(codes) > 0 {
		countries = countries[:0]
		for _, code := range codes {
			c, ok := store.ParseCountry(code)
			if !ok {
				sendErrorJson(w, http.StatusNotFound, fmt.Sprintf("unsupported country %q", code))
				return
			}
			countries = append(countries, c)
		}
	}

	res := make(map[store.Country]map[int]string, len(countries))
	for _, c := range countries {
		res[c] = make(map[int]string, len(years))
		for _, y := range years {
			if err := s.Updater.UpdateCalendar(c, y); err != nil {
				log.Printf("[WARN] rest: sync %s/%d failed: %+v", c, y, err)
				res[c][y] = err.Error()
				continue
			}
			res[c][y] = "ok"
		}
	}

	sendJsonResponse(w, res)
}

func (s *Server) backupCtrl(w http.ResponseWriter, r *http.Request) {
	b, ok := s.Store.(Backuper)
	if !ok {
		sendErrorJson(w, http.StatusNotImplemented, "store engine does not support backups")
		return
	}

	fname := fmt.Sprintf("cal_%s.bolt.gz", s.now().Format(dateLayout))
	w.Header().Set("Content-Type", "application/gzip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fname))
	w.WriteHeader(http.StatusOK)

	start := time.Now()
	gz := gzip.NewWriter(w)
	if err := b.Backup(gz); err != nil {
		// Заголовки уже отправлены, остается только оборвать поток.
		log.Printf("[ERROR] rest: backup failed: %+v", err)
		return
	}
	if err := gz.Close(); err != nil {
		log.Printf("[ERROR] rest: cannot finish backup: %+v", err)
		return
	}
	log.Printf("[INFO] rest: backup %s sent in %s", fname, time.Since(start))
}
