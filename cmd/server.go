package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/nvkalinin/kalendar/calendar"
	"github.com/nvkalinin/kalendar/holiday"
	"github.com/nvkalinin/kalendar/log"
	"github.com/nvkalinin/kalendar/rest"
	"github.com/nvkalinin/kalendar/source"
	"github.com/nvkalinin/kalendar/store"
	"github.com/nvkalinin/kalendar/store/engine"
	"golang.org/x/sync/errgroup"
)

type EngineType string

var (
	EngineMemory EngineType = "memory"
	EngineBolt   EngineType = "bolt"
)

type Server struct {
	SyncAt      string   `long:"sync-at" env:"SYNC_AT" value-name:"hh:mm[:ss]" description:"В какое время синхронизировать производственный календарь со всеми источниками. Обновление происходит один раз в сутки. Если не указано, то автоматическое обновление отключено."`
	SyncOnStart []string `long:"sync-on-start" env:"SYNC_ON_START" env-delim:"," value-name:"year" default:"current" default:"next" description:"За какие годы синхронизировать календарь при запуске программы. Можно указывать числа, 'current' - текущий год, 'next' - следующий год. 'none' - отключить синхронизацию при запуске."`
	Countries   []string `long:"country" env:"COUNTRIES" env-delim:"," value-name:"CC" description:"Страны, календари которых синхронизируются (код ISO 3166-1). Можно указывать несколько раз. По умолчанию все."`

	Holidays struct {
		ExactSolarHijri bool `long:"exact-solar-hijri" env:"EXACT_SOLAR_HIJRI" description:"Вычислять иранские праздники по солнечной хиджре точно, а не по фиксированным григорианским датам."`
	} `group:"Праздники" namespace:"holidays" env-namespace:"HOLIDAYS"`

	Web struct {
		Listen      string `long:"listen" env:"LISTEN" value-name:"addr" default:"0.0.0.0:80" description:"Сетевой адрес для веб-сервера."`
		AccessLog   bool   `long:"access-log" env:"ACCESS_LOG" description:"Логировать все HTTP-запросы."`
		AdminPasswd string `long:"admin-passwd" env:"ADMIN_PASSWD" description:"Пароль пользователя admin для вызова /api/admin/*."`

		ReadTimeout       time.Duration `long:"read-timeout" env:"READ_TIMEOUT" value-name:"duration" default:"5s" description:"http.Server ReadTimeout"`
		ReadHeaderTimeout time.Duration `long:"read-header-timeout" env:"READ_HEADER_TIMEOUT" value-name:"duration" default:"5s" description:"http.Server ReadHeaderTimeout"`
		IdleTimeout       time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" value-name:"duration" default:"30s" description:"http.Server IdleTimeout"`

		// Запросы к /admin могут выполняться долго, поэтому WriteTimout должен быть достаточно большим.
		WriteTimeout time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" value-name:"duration" default:"60s" description:"http.Server WriteTimeout"`

		RateLimiter struct {
			ReqLimit    int           `long:"reqs" env:"REQS" value-name:"num" default:"100" description:"Количество запросов с одного IP. Если 0 - rate limiter отключен."`
			LimitWindow time.Duration `long:"window" env:"WINDOW" value-name:"duration" default:"1s" description:"Интервал времени, за который разрешено указанное кол-во запросов."`
		} `group:"Rate Limiter" namespace:"ratelim" env-namespace:"RATE_LIM"`
	} `group:"Web" namespace:"web" env-namespace:"WEB"`

	Store struct {
		Engine EngineType `long:"engine" env:"ENGINE" value-name:"type" choice:"memory" choice:"bolt" default:"bolt" description:"Тип хранилища для собранных календарей."`

		Bolt struct {
			File string `long:"file" env:"FILE" value-name:"path" default:"cal.bolt" description:"Путь к файлу БД."`
		} `group:"Настройки хранилища bolt" namespace:"bolt" env-namespace:"BOLT"`
	} `group:"Хранилище" namespace:"store" env-namespace:"STORE"`

	Source struct {
		NoHolidays bool   `long:"no-holidays" env:"NO_HOLIDAYS" description:"Не отмечать вычисленные праздники, только выходные и override."`
		Override   string `long:"override" env:"OVERRIDE" value-name:"file.yml" description:"Путь к файлу с локальными изменениями производственного календаря. Если задан, применяется последним."`
	} `group:"Источник данных" namespace:"source" env-namespace:"SOURCE"`
}

func (s *Server) Execute(args []string) error {
	a, err := s.makeApp()
	if err != nil {
		return err
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		a.shutdown()
	}()

	a.run()
	a.wait()
	return nil
}

type app struct {
	srv             *rest.Server
	proc            *calendar.Processor
	store           Store
	autoSync        bool
	syncYears       []int
	syncYearsFinish chan struct{}

	stopOnce sync.Once
	stopped  chan struct{}
}

func (s *Server) makeApp() (*app, error) {
	a := &app{
		syncYearsFinish: make(chan struct{}),
		stopped:         make(chan struct{}),
	}

	countries, err := parseCountries(s.Countries)
	if err != nil {
		return nil, err
	}

	st, err := s.makeStore()
	if err != nil {
		return nil, err
	}
	a.store = st

	hol := holiday.New(holiday.Opts{ExactSolarHijri: s.Holidays.ExactSolarHijri})

	var syncAt time.Time
	if s.SyncAt != "" {
		syncAt, err = parseSyncAt(s.SyncAt)
		if err != nil {
			return nil, fmt.Errorf("sync at: %w", err)
		}
		a.autoSync = true
	}

	syncYears, err := parseYears(s.SyncOnStart)
	if err != nil {
		return nil, fmt.Errorf("sync on start: %w", err)
	}
	a.syncYears = syncYears

	a.proc = calendar.NewProcessor(calendar.ProcOpts{
		Src:       s.makeSources(hol),
		Store:     calendar.Store(st),
		Countries: countries,
		UpdateAt:  syncAt,
	})

	a.srv = &rest.Server{
		Store:    st,
		Updater:  a.proc,
		Holidays: hol,
		Opts: rest.Opts{
			Listen:      s.Web.Listen,
			LogRequests: s.Web.AccessLog,
			AdminPasswd: s.Web.AdminPasswd,

			ReadTimeout:       s.Web.ReadTimeout,
			ReadHeaderTimeout: s.Web.ReadHeaderTimeout,
			WriteTimeout:      s.Web.WriteTimeout,
			IdleTimeout:       s.Web.IdleTimeout,

			RateLimiter: s.Web.RateLimiter.ReqLimit > 0,
			ReqLimit:    s.Web.RateLimiter.ReqLimit,
			LimitWindow: s.Web.RateLimiter.LimitWindow,
		},
	}

	return a, nil
}

type Store interface {
	FindDay(c store.Country, y int, mon time.Month, d int) (*store.Day, bool)
	FindMonth(c store.Country, y int, mon time.Month) (store.Days, bool)
	FindYear(c store.Country, y int) (store.Months, bool)
	PutYear(c store.Country, y int, data store.Months) error
}

func (s *Server) makeStore() (Store, error) {
	switch s.Store.Engine {
	case EngineMemory:
		return engine.NewMemory(), nil
	case EngineBolt:
		return engine.NewBolt(s.Store.Bolt.File)
	default:
		return nil, fmt.Errorf("unknown store engine %s", s.Store.Engine)
	}
}

// makeSources: выходные, затем праздники, затем локальные изменения. Последний источник главнее.
func (s *Server) makeSources(hol *holiday.Engine) []calendar.Source {
	src := make([]calendar.Source, 0, 3)
	src = append(src, source.NewGeneric())

	if !s.Source.NoHolidays {
		src = append(src, &source.Holidays{Engine: hol})
	}

	if s.Source.Override != "" {
		src = append(src, &source.Override{
			Path: s.Source.Override,
		})
	}

	return src
}

func parseCountries(codes []string) ([]store.Country, error) {
	if len(codes) == 0 {
		return store.Countries(), nil
	}

	res := make([]store.Country, 0, len(codes))
	for _, code := range codes {
		c, ok := store.ParseCountry(code)
		if !ok {
			return nil, fmt.Errorf("country %q: %w", code, store.ErrUnsupportedCountry)
		}
		res = append(res, c)
	}
	return res, nil
}

func parseSyncAt(val string) (time.Time, error) {
	if t, err := time.Parse("15:04", val); err == nil {
		return t, nil
	}

	t, err := time.Parse("15:04:05", val)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time '%s', it must match pattern hh:mm[:ss]", val)
	}
	return t, nil
}

func parseYears(vals []string) ([]int, error) {
	if len(vals) == 1 && vals[0] == "none" {
		return nil, nil
	}

	years := make(map[int]bool, len(vals))
	ylist := make([]int, 0, len(vals))
	for _, val := range vals {
		var y int
		switch val {
		case "current":
			y = time.Now().Year()
		case "next":
			y = time.Now().Year() + 1
		default:
			var err error
			y, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("invalid year '%s': %w", val, err)
			}
			if y <= 0 {
				return nil, fmt.Errorf("invalid year %d", y)
			}
		}

		if !years[y] {
			years[y] = true
			ylist = append(ylist, y)
		}
	}

	return ylist, nil
}

func (a *app) run() {
	g, _ := errgroup.WithContext(context.Background())

	if a.autoSync {
		g.Go(func() error {
			a.proc.RunUpdates()
			return nil
		})
	}

	g.Go(func() error {
		syncOnRun(a.proc, a.syncYears, a.syncYearsFinish)
		return nil
	})

	g.Go(func() error {
		if err := a.srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[ERROR] startup: %v", err)
			return err
		}
		return nil
	})

	if g.Wait() != nil {
		a.shutdown()
	}
}

func (a *app) shutdown() {
	a.stopOnce.Do(func() {
		defer close(a.stopped)
		log.Printf("[INFO] shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		g, _ := errgroup.WithContext(ctx)

		g.Go(func() error {
			return a.proc.Shutdown(ctx)
		})
		g.Go(func() error {
			return a.srv.Shutdown(ctx)
		})
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return fmt.Errorf("sync on run: %w", ctx.Err())
			case <-a.syncYearsFinish:
				return nil
			}
		})

		if err := g.Wait(); err != nil {
			log.Printf("[ERROR] app shutdown: %v", err)
		}

		if c, ok := a.store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				log.Printf("[WARN] app shutdown: %v", err)
			}
		}
	})
}

func (a *app) wait() {
	<-a.stopped
}

func syncOnRun(proc *calendar.Processor, years []int, finished chan<- struct{}) {
	defer close(finished)
	for _, c := range proc.Countries {
		for _, y := range years {
			if err := proc.UpdateCalendar(c, y); err != nil {
				log.Printf("[WARN] sync on run, %s/%d: %+v", c, y, err)
			}
		}
	}
}
