package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/nvkalinin/kalendar/calendar"
	"github.com/nvkalinin/kalendar/log"
	"github.com/nvkalinin/kalendar/store"
)

type Store interface {
	FindDay(c store.Country, y int, mon time.Month, d int) (*store.Day, bool)
	FindMonth(c store.Country, y int, mon time.Month) (store.Days, bool)
	FindYear(c store.Country, y int) (store.Months, bool)
}

// Backuper реализуют хранилища, которые умеют делать резервную копию (bolt).
type Backuper interface {
	Backup(w io.Writer) error
}

type Updater interface {
	UpdateCalendar(c store.Country, y int) error
}

type Server struct {
	Store    Store
	Updater  Updater
	Holidays calendar.HolidayEngine
	Opts     Opts

	mu      sync.Mutex
	httpSrv *http.Server
}

type Opts struct {
	Listen      string
	LogRequests bool
	AdminPasswd string // Если пусто, /api/admin/* недоступны.

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	RateLimiter bool
	ReqLimit    int
	LimitWindow time.Duration

	Clock func() time.Time // По умолчанию time.Now.
}

func (s *Server) Run() error {
	s.mu.Lock()
	s.httpSrv = &http.Server{
		Addr:              s.Opts.Listen,
		Handler:           s.routes(),
		ReadTimeout:       s.Opts.ReadTimeout,
		ReadHeaderTimeout: s.Opts.ReadHeaderTimeout,
		WriteTimeout:      s.Opts.WriteTimeout,
		IdleTimeout:       s.Opts.IdleTimeout,
	}
	srv := s.httpSrv
	s.mu.Unlock()

	log.Printf("[INFO] rest: listening on %s", s.Opts.Listen)
	return srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpSrv
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("rest cannot shutdown: %w", err)
	}
	log.Printf("[DEBUG] rest: server stopped")
	return nil
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()

	m := newMetrics()
	r.Use(m.middleware)
	if s.Opts.LogRequests {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("pong"))
	})
	r.Handle("/metrics", m.handler())

	r.Route("/api", func(r chi.Router) {
		if s.Opts.RateLimiter {
			r.Use(httprate.LimitByIP(s.Opts.ReqLimit, s.Opts.LimitWindow))
		}

		r.Get("/countries", s.countriesCtrl)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.adminOnly)
			r.Post("/sync", s.syncCtrl)
			r.Get("/backup", s.backupCtrl)
		})

		r.Route("/{cc}", func(r chi.Router) {
			r.Use(countryCtx)

			r.Get("/cal/{y}", s.yearCtrl)
			r.Get("/cal/{y}/{m}", s.monthCtrl)
			r.Get("/cal/{y}/{m}/{d}", s.dayCtrl)

			r.Get("/holidays/{y}", s.holidaysCtrl)
			r.Get("/grid/{y}/{m}", s.gridCtrl)
			r.Get("/today", s.todayCtrl)
			r.Get("/day/{epochDay}", s.epochDayCtrl)
			r.Get("/names", s.namesCtrl)
		})
	})

	return r
}

func (s *Server) adminOnly(next http.Handler) http.Handler {
	if s.Opts.AdminPasswd == "" {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sendErrorJson(w, http.StatusForbidden, "admin password is not set")
		})
	}
	return middleware.BasicAuth("admin", map[string]string{"admin": s.Opts.AdminPasswd})(next)
}

type countryKey struct{}

// countryCtx проверяет код страны из URL и кладет store.Country в контекст.
func countryCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "cc")
		c, ok := store.ParseCountry(code)
		if !ok {
			sendErrorJson(w, http.StatusNotFound, fmt.Sprintf("unsupported country %q", code))
			return
		}
		ctx := context.WithValue(r.Context(), countryKey{}, c)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func countryFrom(r *http.Request) store.Country {
	c, _ := r.Context().Value(countryKey{}).(store.Country)
	return c
}

func (s *Server) service(c store.Country) (*calendar.Service, error) {
	return calendar.NewService(c, calendar.ServiceOpts{
		SystemOpts: calendar.SystemOpts{Clock: s.Opts.Clock},
		Holidays:   s.Holidays,
	})
}

func (s *Server) now() time.Time {
	if s.Opts.Clock != nil {
		return s.Opts.Clock()
	}
	return time.Now()
}
