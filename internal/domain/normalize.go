package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// UnknownLabel is the fallback for member names and countries that cannot
// be resolved from the data.
const UnknownLabel = "Unknown"

// Normalize maps one raw CSV row of unknown column naming into a canonical
// Record. It is a pure function of its inputs and never fails: malformed
// values degrade to absent fields rather than errors.
func Normalize(row RawRow, sourceFile string) Record {
	rec := Record{
		MemberName: resolveMember(row, sourceFile),
		Country:    UnknownLabel,
		SourceFile: sourceFile,
	}

	if _, v, ok := matchField(row, FieldTimestamp); ok {
		rec.Timestamp = v
	}
	if _, v, ok := matchField(row, FieldCity); ok {
		rec.City = v
	}
	if _, v, ok := matchField(row, FieldCountry); ok && v != "" {
		rec.Country = v
	}

	if header, v, ok := matchField(row, FieldTemperature); ok {
		if t, ok := parseOptionalFloat(v); ok {
			if isFahrenheitHeader(header) {
				t = fahrenheitToCelsius(t)
			}
			rec.TemperatureC = &t
		}
	}
	if _, v, ok := matchField(row, FieldHumidity); ok {
		if h, ok := parseOptionalFloat(v); ok {
			rec.HumidityPct = &h
		}
	}
	if _, v, ok := matchField(row, FieldWindSpeed); ok {
		if w, ok := parseOptionalFloat(v); ok {
			rec.WindSpeed = &w
		}
	}

	if _, v, ok := matchField(row, FieldWeatherDesc); ok {
		rec.WeatherDesc = v
	}
	if _, v, ok := matchField(row, FieldWeatherMain); ok && v != "" {
		rec.WeatherMain = v
	} else if rec.WeatherDesc != "" {
		rec.WeatherMain = DeriveCondition(rec.WeatherDesc)
	}

	return rec
}

// resolveMember applies the member identity fallback chain: explicit row
// field, then source file name, then the literal "Unknown".
func resolveMember(row RawRow, sourceFile string) string {
	if _, v, ok := matchField(row, FieldMember); ok && v != "" {
		return v
	}
	if name, ok := MemberFromFilename(sourceFile); ok {
		return name
	}
	return UnknownLabel
}

// parseOptionalFloat parses a trimmed string as a finite float64. Empty
// strings, parse failures, NaN and infinities all report absent.
func parseOptionalFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// fahrenheitToCelsius converts per the fixed formula; conversion happens
// exactly once, at normalization time.
func fahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// isFahrenheitHeader reports whether a header name carries an explicit
// Fahrenheit marker: a standalone "F" token (as in "Temperature (F)" or
// "temp_f") or the word "fahrenheit". Unmarked headers are assumed Celsius.
func isFahrenheitHeader(header string) bool {
	for _, tok := range splitLetterTokens(header) {
		if tok == "f" || tok == "fahrenheit" {
			return true
		}
	}
	return false
}

// splitLetterTokens lowercases a header and splits it on every non-letter
// character, so "Temperature (F)" yields ["temperature", "f"].
func splitLetterTokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// DeriveCondition classifies a free-text weather description into a
// single-word condition: the first whitespace-delimited token, title-cased.
// This is a best-effort heuristic, not a controlled vocabulary; "light
// rain" becomes "Light". Returns "" for blank descriptions.
func DeriveCondition(description string) string {
	fields := strings.Fields(description)
	if len(fields) == 0 {
		return ""
	}
	return TitleWord(fields[0])
}

// TitleWord uppercases the first rune of a word and lowercases the rest.
func TitleWord(w string) string {
	if w == "" {
		return ""
	}
	runes := []rune(strings.ToLower(w))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
