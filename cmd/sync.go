package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nvkalinin/kalendar/log"
)

type Sync struct {
	ServerUrl   string        `long:"server-url" short:"s" env:"SERVER_URL" value-name:"str" default:"http://localhost" description:"URL сервера с REST API календаря."`
	AdminPasswd string        `long:"passwd" short:"p" env:"WEB_ADMIN_PASSWD" value-name:"str" description:"Пароль пользователя admin."`
	Timeout     time.Duration `long:"timeout" short:"t" env:"TIMEOUT" value-name:"duration" default:"60s" description:"Макс. время выполнения запроса."`
	Years       []int         `long:"year" short:"y" env:"YEAR" value-name:"int" required:"true" description:"Год, за который нужно синхронизировать календарь. Можно указывать несколько раз."`
	Countries   []string      `long:"country" short:"c" env:"COUNTRY" value-name:"CC" description:"Страна (код ISO 3166-1). Можно указывать несколько раз. По умолчанию все."`
}

func (s *Sync) Execute(args []string) error {
	ystr := make([]string, len(s.Years))
	for i, y := range s.Years {
		ystr[i] = strconv.Itoa(y)
	}

	params := url.Values{"y": ystr}
	if len(s.Countries) > 0 {
		params["cc"] = s.Countries
	}
	body := strings.NewReader(params.Encode())

	url := makeUrl(s.ServerUrl, "/api/admin/sync")
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("cannot make request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("admin", s.AdminPasswd)
	log.Printf("[DEBUG] sync request: URL=%s, form=%s", url, params.Encode())

	client := &http.Client{
		Timeout: s.Timeout,
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot make request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("[WARN] cannot close response: %v", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read response: %w", err)
	}
	log.Printf("[DEBUG] sync resp status=%d body: %s", resp.StatusCode, respBody)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sync error (status %d): %w", resp.StatusCode, readJsonError(respBody))
	}

	res := map[string]map[int]string{}
	if err := json.Unmarshal(respBody, &res); err != nil {
		return fmt.Errorf("cannot parse response (status %d): %w", resp.StatusCode, err)
	}

	codes := make([]string, 0, len(res))
	for c := range res {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	failed := 0
	for _, c := range codes {
		for _, y := range s.Years {
			syncRes, ok := res[c][y]
			switch {
			case !ok:
			case syncRes == "ok":
				log.Printf("[INFO] %s/%d: ok", c, y)
			default:
				failed++
				log.Printf("[ERROR] %s/%d: %s", c, y, syncRes)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("sync failed for %d calendars", failed)
	}
	return nil
}
