package estimator

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Clock is the short time format: no seconds, 12- or 24-hour.
type Clock int

const (
	Clock12 Clock = iota
	Clock24
)

const (
	layout12 = "3:04 PM"
	layout24 = "15:04"
)

func (c Clock) Layout() string {
	if c == Clock24 {
		return layout24
	}
	return layout12
}

func (c Clock) Format(t time.Time) string {
	return t.Format(c.Layout())
}

func (c Clock) String() string {
	if c == Clock24 {
		return "24h"
	}
	return "12h"
}

// localeClocks lists the locales we know the short time convention for.
// The first entry is the matcher's fallback.
var localeClocks = []struct {
	tag   language.Tag
	clock Clock
}{
	{language.AmericanEnglish, Clock12},
	{language.MustParse("en-CA"), Clock12},
	{language.MustParse("en-AU"), Clock12},
	{language.MustParse("en-NZ"), Clock12},
	{language.MustParse("en-IN"), Clock12},
	{language.MustParse("en-PH"), Clock12},
	{language.Hindi, Clock12},
	{language.Korean, Clock12},
	{language.BritishEnglish, Clock24},
	{language.MustParse("en-IE"), Clock24},
	{language.German, Clock24},
	{language.French, Clock24},
	{language.Spanish, Clock24},
	{language.Italian, Clock24},
	{language.Portuguese, Clock24},
	{language.Dutch, Clock24},
	{language.Swedish, Clock24},
	{language.Polish, Clock24},
	{language.Russian, Clock24},
	{language.Ukrainian, Clock24},
	{language.Turkish, Clock24},
	{language.Japanese, Clock24},
	{language.Chinese, Clock24},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(localeClocks))
	for i, lc := range localeClocks {
		tags[i] = lc.tag
	}
	return language.NewMatcher(tags)
}()

func match(fallback Clock, tags ...language.Tag) Clock {
	if len(tags) == 0 {
		return fallback
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return localeClocks[idx].clock
}

// ClockForLocale maps a BCP 47 tag such as "en-GB" to its clock convention.
func ClockForLocale(locale string, fallback Clock) Clock {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return fallback
	}
	return match(fallback, tag)
}

// ClockForAcceptLanguage picks the clock from an Accept-Language header.
func ClockForAcceptLanguage(header string, fallback Clock) Clock {
	if strings.TrimSpace(header) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return fallback
	}
	return match(fallback, tags...)
}
