package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nvkalinin/kalendar/store"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locale - названия месяцев и дней недели и первый день недели. Передается в конструктор
// календарной системы, глобальных таблиц нет: системы с разными локалями независимы.
type Locale struct {
	Tag      language.Tag
	FirstDay time.Weekday

	// Названия месяцев григорианского календаря как в CLDR, то есть во многих языках со строчной
	// буквы. Для отображения первая буква делается заглавной по правилам языка.
	Months [12]string

	// Индекс - time.Weekday (воскресенье - 0).
	ShortDays [7]string
	LongDays  [7]string
}

func (l Locale) empty() bool {
	return l.Months[0] == ""
}

func (l Locale) monthName(m int) string {
	if m < 1 || m > 12 {
		return strconv.Itoa(m)
	}
	// cases.Caser хранит состояние, поэтому создается на каждый вызов.
	return cases.Title(l.Tag).String(l.Months[m-1])
}

var (
	enMonths = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	enShort = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	enLong  = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	deMonths = [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	}
	deShort = [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."}
	deLong  = [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}

	faShort = [7]string{"ی", "د", "س", "چ", "پ", "ج", "ش"}
	faLong  = [7]string{"یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه", "شنبه"}
)

var (
	LocaleUS = Locale{Tag: language.AmericanEnglish, FirstDay: time.Sunday, Months: enMonths, ShortDays: enShort, LongDays: enLong}
	LocaleGB = Locale{Tag: language.BritishEnglish, FirstDay: time.Monday, Months: enMonths, ShortDays: enShort, LongDays: enLong}
	LocaleAU = Locale{Tag: language.MustParse("en-AU"), FirstDay: time.Monday, Months: enMonths, ShortDays: enShort, LongDays: enLong}
	LocaleDE = Locale{Tag: language.MustParse("de-DE"), FirstDay: time.Monday, Months: deMonths, ShortDays: deShort, LongDays: deLong}

	LocaleAT = Locale{
		Tag:      language.MustParse("de-AT"),
		FirstDay: time.Monday,
		Months: [12]string{
			"Jänner", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		ShortDays: deShort,
		LongDays:  deLong,
	}

	LocaleFR = Locale{
		Tag:      language.MustParse("fr-FR"),
		FirstDay: time.Monday,
		Months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		ShortDays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		LongDays:  [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	}

	LocaleIT = Locale{
		Tag:      language.MustParse("it-IT"),
		FirstDay: time.Monday,
		Months: [12]string{
			"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
			"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
		},
		ShortDays: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		LongDays:  [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
	}

	// Григорианские месяцы по-персидски. Солнечная хиджра использует свою таблицу.
	LocaleIR = Locale{
		Tag:      language.MustParse("fa-IR"),
		FirstDay: time.Saturday,
		Months: [12]string{
			"ژانویه", "فوریه", "مارس", "آوریل", "مه", "ژوئن",
			"ژوئیه", "اوت", "سپتامبر", "اکتبر", "نوامبر", "دسامبر",
		},
		ShortDays: faShort,
		LongDays:  faLong,
	}
)

var supportedLocales = []Locale{LocaleUS, LocaleGB, LocaleAU, LocaleDE, LocaleAT, LocaleFR, LocaleIT, LocaleIR}

var localeMatcher = language.NewMatcher(func() []language.Tag {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = l.Tag
	}
	return tags
}())

// LocaleFor - локаль по умолчанию для страны. Для неизвестной страны - американский английский.
func LocaleFor(c store.Country) Locale {
	// @formatter:off
	switch c {
	case store.US:        return LocaleUS
	case store.UK:        return LocaleGB
	case store.Germany:   return LocaleDE
	case store.France:    return LocaleFR
	case store.Italy:     return LocaleIT
	case store.Australia: return LocaleAU
	case store.Austria:   return LocaleAT
	case store.Iran:      return LocaleIR
	default:              return LocaleUS
	}
	// @formatter:on
}

// ParseLocale выбирает ближайшую встроенную локаль для BCP 47 тега, например "de-CH" -> de-DE.
func ParseLocale(s string) (Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Locale{}, fmt.Errorf("calendar cannot parse locale %q: %w", s, err)
	}

	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return Locale{}, fmt.Errorf("calendar: unsupported locale %q", s)
	}
	return supportedLocales[idx], nil
}
