package cmd

import (
	"fmt"
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/nvkalinin/kalendar/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerCmd(t *testing.T) {
	_, a, port := newApp(t, nil)
	defer a.shutdown()

	go a.run()
	waitForHTTP(port)

	status, _ := getBody(t, fmt.Sprintf("http://localhost:%d/ping", port))
	assert.Equal(t, 200, status)

	status, _ = getBody(t, fmt.Sprintf("http://localhost:%d/api/US/cal/2022", port))
	assert.Equal(t, 404, status)

	// Праздники вычисляются без синхронизации.
	status, _ = getBody(t, fmt.Sprintf("http://localhost:%d/api/IR/holidays/2024", port))
	assert.Equal(t, 200, status)
}

func TestServerCmd_syncOnStart(t *testing.T) {
	_, a, port := newApp(t, func(cmd *Server) {
		cmd.SyncOnStart = []string{"2021", "current", "next"}
		cmd.Countries = []string{"us", "IR"}
		cmd.Source.Override = "testdata/override.yml"
	})
	defer a.shutdown()

	go a.run()
	waitForHTTP(port)
	<-a.syncYearsFinish

	// Из holidays.
	status, json := getBody(t, fmt.Sprintf("http://localhost:%d/api/US/cal/2021/01/01", port))
	expJson := `{
		"weekDay": "fri",
		"working": false,
		"type": "holiday",
		"desc": "New Year's Day"
	}`
	assert.Equal(t, 200, status)
	assert.JSONEq(t, expJson, json)

	// Из generic.
	status, json = getBody(t, fmt.Sprintf("http://localhost:%d/api/US/cal/2021/01/04", port))
	expJson = `{
		"weekDay": "mon",
		"working": true,
		"type": "normal"
	}`
	assert.Equal(t, 200, status)
	assert.JSONEq(t, expJson, json)

	// Из override.yml.
	status, json = getBody(t, fmt.Sprintf("http://localhost:%d/api/US/cal/2021/01/02", port))
	expJson = `{
		"weekDay": "sat",
		"working": true,
		"type": "normal",
		"desc": "Inventory day"
	}`
	assert.Equal(t, 200, status)
	assert.JSONEq(t, expJson, json)

	// В Иране выходной - пятница.
	status, json = getBody(t, fmt.Sprintf("http://localhost:%d/api/IR/cal/2021/01/08", port))
	expJson = `{
		"weekDay": "fri",
		"working": false,
		"type": "weekend"
	}`
	assert.Equal(t, 200, status)
	assert.JSONEq(t, expJson, json)

	y := time.Now().Year()

	status, _ = getBody(t, fmt.Sprintf("http://localhost:%d/api/US/cal/%d/01/01", port, y))
	assert.Equal(t, 200, status)

	status, _ = getBody(t, fmt.Sprintf("http://localhost:%d/api/IR/cal/%d/01/01", port, y+1))
	assert.Equal(t, 200, status)

	// Страны, которых нет в --country, не синхронизируются.
	status, _ = getBody(t, fmt.Sprintf("http://localhost:%d/api/GB/cal/2021/01/01", port))
	assert.Equal(t, 404, status)
}

func TestServerCmd_autoSync(t *testing.T) {
	_, a, port := newApp(t, func(cmd *Server) {
		cmd.SyncAt = time.Now().Add(1 * time.Second).Format("15:04:05")
		cmd.Countries = []string{"GB"}
	})
	defer a.shutdown()

	go a.run()
	waitForHTTP(port)
	time.Sleep(1500 * time.Millisecond)

	y := time.Now().Year()
	status, _ := getBody(t, fmt.Sprintf("http://localhost:%d/api/GB/cal/%d/01/01", port, y))
	assert.Equal(t, 200, status)
}

func TestServerCmd_signalsAndShutdown(t *testing.T) {
	cmd, _, port := newApp(t, nil)

	done := make(chan error, 1)
	go func() {
		done <- cmd.Execute([]string{})
	}()
	waitForHTTP(port)

	status, _ := getBody(t, fmt.Sprintf("http://localhost:%d/ping", port))
	assert.Equal(t, 200, status)

	err := syscall.Kill(syscall.Getpid(), syscall.SIGINT)
	require.NoError(t, err)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	cl := &http.Client{
		Timeout: 100 * time.Millisecond,
	}
	_, err = cl.Get(fmt.Sprintf("http://localhost:%d/ping", port))
	require.Error(t, err)
}

func TestServerCmd_fail(t *testing.T) {
	cmd := &Server{}
	_, _ = flags.ParseArgs(cmd, []string{
		"--store.engine=foo",
	})
	_, err := cmd.makeApp()
	assert.ErrorContains(t, err, "unknown store engine")

	cmd = &Server{}
	_, _ = flags.ParseArgs(cmd, []string{
		"--store.engine=memory",
		"--country=XX",
	})
	_, err = cmd.makeApp()
	assert.ErrorIs(t, err, store.ErrUnsupportedCountry)

	cmd = &Server{}
	_, _ = flags.ParseArgs(cmd, []string{
		"--store.engine=memory",
		"--sync-at=foo",
	})
	_, err = cmd.makeApp()
	assert.ErrorContains(t, err, "sync at")

	cmd = &Server{}
	_, _ = flags.ParseArgs(cmd, []string{
		"--store.engine=memory",
		"--sync-at=05:00",
		"--sync-on-start=foo",
	})
	_, err = cmd.makeApp()
	assert.ErrorContains(t, err, "sync on start")

	cmd = &Server{}
	_, _ = flags.ParseArgs(cmd, []string{
		"--store.engine=memory",
		"--sync-at=05:00",
		"--sync-on-start=2020", "--sync-on-start=current",
		"--country=gb", "--country=IR",
		"--holidays.exact-solar-hijri",
	})
	a, err := cmd.makeApp()
	assert.NoError(t, err)
	assert.Equal(t, []store.Country{store.UK, store.Iran}, a.proc.Countries)
	assert.Equal(t, []int{2020, time.Now().Year()}, a.syncYears)
	assert.True(t, cmd.Holidays.ExactSolarHijri)
}

func TestParseYears(t *testing.T) {
	y := time.Now().Year()

	years, err := parseYears([]string{"current", "next", "current", "2020"})
	require.NoError(t, err)
	assert.Equal(t, []int{y, y + 1, 2020}, years)

	years, err = parseYears([]string{"none"})
	require.NoError(t, err)
	assert.Empty(t, years)

	_, err = parseYears([]string{"-1"})
	assert.Error(t, err)
}
