package engine

import (
	"os"
	"testing"
	"time"

	"github.com/nvkalinin/kalendar/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample2022 = store.Months{
	1: store.Days{
		1: store.Day{WeekDay: store.Saturday, Working: false, Type: store.HolidayDay, Desc: "New Year's Day"},
		2: store.Day{WeekDay: store.Sunday, Working: false, Type: store.Weekend},
	},
	2: store.Days{
		1: store.Day{WeekDay: store.Tuesday, Working: true, Type: store.Normal},
	},
	12: store.Days{
		31: store.Day{WeekDay: store.Saturday, Working: false, Type: store.Weekend},
	},
}

func TestBolt(t *testing.T) {
	b, _ := makeBolt(t)
	defer b.Close()

	err := b.PutYear(store.US, 2022, sample2022)
	require.NoError(t, err)

	y, ok := b.FindYear(store.US, 2022)
	assert.True(t, ok)
	assert.Equal(t, sample2022, y)

	m, ok := b.FindMonth(store.US, 2022, time.February)
	assert.True(t, ok)
	assert.Equal(t, sample2022[time.February], m)

	d, ok := b.FindDay(store.US, 2022, time.January, 1)
	assert.True(t, ok)
	assert.Equal(t, sample2022[time.January][1], *d)

	_, ok = b.FindDay(store.US, 2022, time.January, 5)
	assert.False(t, ok)

	_, ok = b.FindMonth(store.US, 2022, time.March)
	assert.False(t, ok)

	y, ok = b.FindYear(store.US, 2023)
	assert.False(t, ok)
	assert.Nil(t, y)
}

func TestBolt_countries(t *testing.T) {
	b, _ := makeBolt(t)
	defer b.Close()

	// До первой записи бакета нет.
	_, ok := b.FindYear(store.Iran, 2022)
	assert.False(t, ok)
	_, ok = b.FindMonth(store.Iran, 2022, time.January)
	assert.False(t, ok)

	iran := store.Months{3: {21: {WeekDay: store.Monday, Type: store.HolidayDay, Desc: "Nowruz (New Year)"}}}
	require.NoError(t, b.PutYear(store.US, 2022, sample2022))
	require.NoError(t, b.PutYear(store.Iran, 2022, iran))
	require.NoError(t, b.PutYear(store.US, 2023, store.Months{1: {2: {Type: store.HolidayDay}}}))

	y, ok := b.FindYear(store.Iran, 2022)
	assert.True(t, ok)
	assert.Equal(t, iran, y)

	y, ok = b.FindYear(store.US, 2022)
	assert.True(t, ok)
	assert.Equal(t, sample2022, y)

	_, ok = b.FindYear(store.UK, 2022)
	assert.False(t, ok)
}

func TestBolt_backup(t *testing.T) {
	b, dir := makeBolt(t)

	err := b.PutYear(store.US, 2022, sample2022)
	require.NoError(t, err)

	f, err := os.Create(dir + "/backup.bolt")
	require.NoError(t, err)

	err = b.Backup(f)
	require.NoError(t, err)

	err = f.Close()
	require.NoError(t, err)
	err = b.Close()
	require.NoError(t, err)

	// Создать Bolt из бекапа и проверить, что все данные там.
	b, err = NewBolt(dir + "/backup.bolt")
	require.NoError(t, err)
	defer b.Close()

	y, ok := b.FindYear(store.US, 2022)
	assert.True(t, ok)
	assert.Equal(t, sample2022, y)
}

func makeBolt(t *testing.T) (b *Bolt, dir string) {
	dir = t.TempDir()
	b, err := NewBolt(dir + "/db.bolt")
	require.NoError(t, err)
	return b, dir
}
