package jalali

import (
	"testing"
	"time"

	"github.com/nvkalinin/kalendar/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFromGregorian(t *testing.T) {
	cases := []struct {
		g   time.Time
		exp Date
	}{
		{date(2024, time.March, 20), Date{1403, 1, 1}},
		{date(2024, time.March, 19), Date{1402, 12, 29}},
		{date(2025, time.March, 20), Date{1403, 12, 30}},
		{date(2025, time.March, 21), Date{1404, 1, 1}},
		{date(1979, time.February, 11), Date{1357, 11, 22}},
		{date(2023, time.September, 23), Date{1402, 7, 1}},
		{date(2023, time.September, 22), Date{1402, 6, 31}},
		{date(2000, time.January, 1), Date{1378, 10, 11}},
	}

	for _, c := range cases {
		j, err := FromGregorian(c.g)
		require.NoError(t, err)
		assert.Equal(t, c.exp, j, c.g.Format("2006-01-02"))
	}
}

func TestToGregorian(t *testing.T) {
	g, err := ToGregorian(1404, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.March, 21), g)

	g, err = ToGregorian(1403, 12, 30)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.March, 20), g)

	_, err = ToGregorian(1402, 12, 30)
	assert.ErrorIs(t, err, store.ErrInvalidDate)

	_, err = ToGregorian(1402, 7, 31)
	assert.ErrorIs(t, err, store.ErrInvalidDate)

	_, err = ToGregorian(1402, 13, 1)
	assert.ErrorIs(t, err, store.ErrInvalidDate)

	_, err = ToGregorian(MaxYear+1, 1, 1)
	assert.ErrorIs(t, err, store.ErrInvalidDate)
}

func TestRoundTrip(t *testing.T) {
	end := date(2100, time.December, 31)
	for d := date(1900, time.January, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		j, err := FromGregorian(d)
		require.NoError(t, err)

		g, err := ToGregorian(j.Year, j.Month, j.Day)
		require.NoError(t, err)
		if !g.Equal(d) {
			t.Fatalf("round trip %s -> %s -> %s", d.Format("2006-01-02"), j, g.Format("2006-01-02"))
		}
	}
}

// Високосность должна совпадать с тем, что дает перевод дат: в високосном году
// 30 эсфанда существует и следующий за ним день - 1 фарвардина.
func TestIsLeap_matchesConversion(t *testing.T) {
	for jy := 1300; jy <= 1500; jy++ {
		lastDay, err := ToGregorian(jy, 12, MonthLength(jy, 12))
		require.NoError(t, err)

		next, err := FromGregorian(lastDay.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, Date{jy + 1, 1, 1}, next, "year %d", jy)

		nowruz, err := ToGregorian(jy, 1, 1)
		require.NoError(t, err)
		nextNowruz, err := ToGregorian(jy+1, 1, 1)
		require.NoError(t, err)

		yearLen := int(nextNowruz.Sub(nowruz).Hours() / 24)
		assert.Equal(t, IsLeap(jy), yearLen == 366, "year %d", jy)
	}
}

func TestIsLeap(t *testing.T) {
	assert.True(t, IsLeap(1399))
	assert.True(t, IsLeap(1403))
	assert.False(t, IsLeap(1402))
	assert.False(t, IsLeap(1404))
	assert.False(t, IsLeap(MaxYear+1))
}

func TestMonthLength(t *testing.T) {
	assert.Equal(t, 31, MonthLength(1402, 1))
	assert.Equal(t, 31, MonthLength(1402, 6))
	assert.Equal(t, 30, MonthLength(1402, 7))
	assert.Equal(t, 30, MonthLength(1402, 11))
	assert.Equal(t, 29, MonthLength(1402, 12))
	assert.Equal(t, 30, MonthLength(1403, 12))
	assert.Equal(t, 0, MonthLength(1403, 0))
	assert.Equal(t, 0, MonthLength(1403, 13))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(1403, 12, 30))
	assert.False(t, Valid(1402, 12, 30))
	assert.False(t, Valid(1402, 1, 0))
	assert.False(t, Valid(MinYear-1, 1, 1))
}
