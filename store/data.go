package store

import (
	"strings"
	"time"
)

type DayType string

const (
	Normal     DayType = "normal"     // Обычный рабочий день.
	Weekend    DayType = "weekend"    // Выходной.
	PreHoliday DayType = "preHoliday" // Предпраздничный рабочий день.
	HolidayDay DayType = "holiday"    // Праздничный, не рабочий.
	NonWorking DayType = "noWork"     // "Нерабочий" рабочий день :-).
)

type WeekDay string

const (
	Monday    WeekDay = "mon"
	Tuesday   WeekDay = "tue"
	Wednesday WeekDay = "wed"
	Thursday  WeekDay = "thu"
	Friday    WeekDay = "fri"
	Saturday  WeekDay = "sat"
	Sunday    WeekDay = "sun"
)

func NewWeekDay(wd time.Weekday) (WeekDay, bool) {
	// @formatter:off
	switch wd {
	case time.Monday:    return Monday,    true
	case time.Tuesday:   return Tuesday,   true
	case time.Wednesday: return Wednesday, true
	case time.Thursday:  return Thursday,  true
	case time.Friday:    return Friday,    true
	case time.Saturday:  return Saturday,  true
	case time.Sunday:    return Sunday,    true
	default:             return "",        false
	}
	// @formatter:on
}

// WeekDayOf то же, что NewWeekDay, но для заведомо корректного time.Weekday.
func WeekDayOf(wd time.Weekday) WeekDay {
	w, _ := NewWeekDay(wd)
	return w
}

// Weekday обратное преобразование. Для неизвестного значения возвращает -1.
func (w WeekDay) Weekday() time.Weekday {
	// @formatter:off
	switch w {
	case Monday:    return time.Monday
	case Tuesday:   return time.Tuesday
	case Wednesday: return time.Wednesday
	case Thursday:  return time.Thursday
	case Friday:    return time.Friday
	case Saturday:  return time.Saturday
	case Sunday:    return time.Sunday
	default:        return -1
	}
	// @formatter:on
}

// ParseWeekDay принимает короткие (sat) и полные (saturday) английские названия без учета регистра.
func ParseWeekDay(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		full := strings.ToLower(wd.String())
		if s == full || s == full[:3] {
			return wd, true
		}
	}
	return -1, false
}

// Day - день в сохраненном производственном календаре страны.
type Day struct {
	WeekDay WeekDay `json:"weekDay,omitempty" yaml:"weekDay,omitempty"`
	Working bool    `json:"working" yaml:"working"`
	Type    DayType `json:"type,omitempty" yaml:"type,omitempty"`
	Desc    string  `json:"desc,omitempty" yaml:"desc,omitempty"`
}

type Days map[int]Day

type Months map[time.Month]Days

func (m Days) Copy() Days {
	mCopy := make(Days, len(m))
	for dayNum, day := range m {
		mCopy[dayNum] = day
	}
	return mCopy
}

func (y Months) Copy() Months {
	yCopy := make(Months, len(y))
	for monNum, month := range y {
		yCopy[monNum] = month.Copy()
	}
	return yCopy
}
