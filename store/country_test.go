package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCountry(t *testing.T) {
	c, ok := ParseCountry("ir")
	assert.True(t, ok)
	assert.Equal(t, Iran, c)
	assert.Equal(t, Solar, c.CalendarType())
	assert.Equal(t, "Iran", c.Name())

	c, ok = ParseCountry(" UK ")
	assert.True(t, ok)
	assert.Equal(t, UK, c)
	assert.Equal(t, "GB", c.Code())

	_, ok = ParseCountry("RU")
	assert.False(t, ok)
	assert.Equal(t, CalendarType(""), Country("RU").CalendarType())
}

func TestCountries(t *testing.T) {
	all := Countries()
	assert.Len(t, all, 8)
	assert.Equal(t, DefaultCountry, all[0])

	for _, c := range all {
		assert.True(t, c.Valid(), c)
		assert.NotEmpty(t, c.Name(), c)
		assert.NotEmpty(t, c.Weekend(), c)
	}

	// Изменение результата не должно влиять на таблицу.
	all[0] = Iran
	assert.Equal(t, US, Countries()[0])
}

func TestCountry_IsWeekend(t *testing.T) {
	assert.True(t, Iran.IsWeekend(time.Friday))
	assert.False(t, Iran.IsWeekend(time.Sunday))
	assert.True(t, Germany.IsWeekend(time.Sunday))
	assert.False(t, Germany.IsWeekend(time.Friday))
}
