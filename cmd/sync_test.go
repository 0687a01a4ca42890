package cmd

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCmd(t *testing.T) {
	_, a, port := newApp(t, nil)
	go a.run()
	defer a.shutdown()
	waitForHTTP(port)

	cmd := newSyncCmd(port, []int{2021, 2022})
	cmd.Countries = []string{"US", "DE"}
	err := cmd.Execute([]string{})
	require.NoError(t, err)

	// После синхронизации должен быть доступен календарь.

	status, json := getBody(t, fmt.Sprintf("http://localhost:%d/api/US/cal/2021/01/01", port))
	expJson := `{
		"weekDay": "fri",
		"working": false,
		"type": "holiday",
		"desc": "New Year's Day"
	}`
	assert.Equal(t, 200, status)
	assert.JSONEq(t, expJson, json)

	status, json = getBody(t, fmt.Sprintf("http://localhost:%d/api/US/cal/2022/04/20", port))
	expJson = `{
		"weekDay": "wed",
		"working": true,
		"type": "normal"
	}`
	assert.Equal(t, 200, status)
	assert.JSONEq(t, expJson, json)

	status, json = getBody(t, fmt.Sprintf("http://localhost:%d/api/DE/cal/2022/10/03", port))
	expJson = `{
		"weekDay": "mon",
		"working": false,
		"type": "holiday",
		"desc": "German Unity Day"
	}`
	assert.Equal(t, 200, status)
	assert.JSONEq(t, expJson, json)

	status, _ = getBody(t, fmt.Sprintf("http://localhost:%d/api/FR/cal/2022/01/01", port))
	assert.Equal(t, 404, status)
}

func TestSyncCmd_fail(t *testing.T) {
	_, a, port := newApp(t, nil)
	go a.run()
	defer a.shutdown()
	waitForHTTP(port)

	cmd := newSyncCmd(port, []int{2022})
	cmd.AdminPasswd = "wrong"
	assert.Error(t, cmd.Execute([]string{}))

	cmd = newSyncCmd(port, []int{2022})
	cmd.Countries = []string{"XX"}
	err := cmd.Execute([]string{})
	assert.ErrorContains(t, err, "unsupported country")

	cmd = newSyncCmd(unusedPort(), []int{2022})
	cmd.Timeout = time.Second
	assert.Error(t, cmd.Execute([]string{}))
}

func newSyncCmd(port int, y []int) *Sync {
	return &Sync{
		ServerUrl:   fmt.Sprintf("http://localhost:%d", port),
		AdminPasswd: "pass",
		Timeout:     60 * time.Second,
		Years:       y,
	}
}
