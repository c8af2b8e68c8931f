// Package i18n holds the dashboard's server-side message catalogue and the
// locale rules used when numbers, dates and weekdays end up inside text.
package i18n

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultLanguage = "es"

var tags = map[string]language.Tag{
	"es": language.Spanish,
	"en": language.English,
	"fr": language.French,
}

// Resolve maps an arbitrary language code onto a supported one.
func Resolve(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if _, ok := tags[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

// T looks up key for lang, falling back to Spanish and then to the key itself,
// and substitutes {{name}} placeholders from vars.
func T(lang, key string, vars map[string]string) string {
	msg, ok := catalog[Resolve(lang)][key]
	if !ok {
		msg, ok = catalog[DefaultLanguage][key]
	}
	if !ok {
		return key
	}
	if len(vars) == 0 {
		return msg
	}

	// One pass over the template: substituted values are never rescanned, so
	// user text containing "{{name}}" stays as written.
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{{"+k+"}}", vars[k])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// FormatInt renders n with the locale's digit grouping.
func FormatInt(lang string, n int64) string {
	return message.NewPrinter(tags[Resolve(lang)]).Sprintf("%d", n)
}

// Weekdays returns localized weekday names indexed like time.Weekday (0 = Sunday).
func Weekdays(lang string) [7]string {
	return weekdays[Resolve(lang)]
}

// ShortDate renders a day/month axis label such as "2 oct" or "Oct 2".
func ShortDate(lang string, t time.Time) string {
	lang = Resolve(lang)
	month := shortMonths[lang][t.Month()-1]
	day := t.Day()
	if lang == "en" {
		return month + " " + strconv.Itoa(day)
	}
	return strconv.Itoa(day) + " " + month
}

// LanguageName is the language's own name, used to instruct the AI model.
func LanguageName(lang string) string {
	switch Resolve(lang) {
	case "en":
		return "English"
	case "fr":
		return "Français"
	}
	return "Español"
}

var weekdays = map[string][7]string{
	"es": {"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	"en": {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	"fr": {"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
}

var shortMonths = map[string][12]string{
	"es": {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	"fr": {"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
}
