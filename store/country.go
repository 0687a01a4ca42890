package store

import (
	"strings"
	"time"
)

// CalendarType - календарная система, в которой страна показывает сетку месяца.
type CalendarType string

const (
	Gregorian CalendarType = "gregorian"
	Solar     CalendarType = "solar" // Солнечная хиджра (иранский календарь).
)

// Country - код страны по ISO 3166-1 alpha-2. Код используется как ключ хранения,
// название - только для отображения.
type Country string

const (
	US        Country = "US"
	UK        Country = "GB"
	Germany   Country = "DE"
	France    Country = "FR"
	Italy     Country = "IT"
	Australia Country = "AU"
	Austria   Country = "AT"
	Iran      Country = "IR"
)

const DefaultCountry = US

type countryInfo struct {
	name    string
	calType CalendarType
	weekend []time.Weekday
}

var westernWeekend = []time.Weekday{time.Saturday, time.Sunday}

var countries = map[Country]countryInfo{
	US:        {"United States", Gregorian, westernWeekend},
	UK:        {"United Kingdom", Gregorian, westernWeekend},
	Germany:   {"Germany", Gregorian, westernWeekend},
	France:    {"France", Gregorian, westernWeekend},
	Italy:     {"Italy", Gregorian, westernWeekend},
	Australia: {"Australia", Gregorian, westernWeekend},
	Austria:   {"Austria", Gregorian, westernWeekend},
	Iran:      {"Iran", Solar, []time.Weekday{time.Friday}},
}

// Порядок, в котором страны выводятся пользователю.
var countryOrder = []Country{US, UK, Germany, France, Italy, Australia, Austria, Iran}

func Countries() []Country {
	res := make([]Country, len(countryOrder))
	copy(res, countryOrder)
	return res
}

// ParseCountry не учитывает регистр. "UK" принимается как синоним "GB".
func ParseCountry(code string) (Country, bool) {
	c := Country(strings.ToUpper(strings.TrimSpace(code)))
	if c == "UK" {
		c = UK
	}
	if !c.Valid() {
		return "", false
	}
	return c, true
}

func (c Country) Valid() bool {
	_, ok := countries[c]
	return ok
}

func (c Country) Code() string {
	return string(c)
}

func (c Country) Name() string {
	return countries[c].name
}

// CalendarType для неизвестной страны возвращает пустую строку.
func (c Country) CalendarType() CalendarType {
	return countries[c].calType
}

func (c Country) Weekend() []time.Weekday {
	w := countries[c].weekend
	res := make([]time.Weekday, len(w))
	copy(res, w)
	return res
}

func (c Country) IsWeekend(wd time.Weekday) bool {
	for _, w := range countries[c].weekend {
		if w == wd {
			return true
		}
	}
	return false
}
