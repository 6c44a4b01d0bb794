package schema

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// Tags registered on top of the validator/v10 built-ins. Browser inputs are
// free text, so numbers and dates are read the way the form's users type them.
const (
	TagNumber   = "number_input"
	TagDate     = "date_input"
	TagMaxUTF16 = "max_utf16"
)

// dateLayouts are tried after the layouts known to cast.
var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2006/01/02",
}

func newEngine() *validator.Validate {
	v := validator.New()
	mustRegister(v, TagNumber, isNumberInput)
	mustRegister(v, TagDate, isDateInput)
	mustRegister(v, TagMaxUTF16, maxUTF16)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func isNumberInput(fl validator.FieldLevel) bool {
	_, ok := ParseNumber(fl.Field().String())
	return ok
}

func isDateInput(fl validator.FieldLevel) bool {
	_, ok := ParseDate(fl.Field().String())
	return ok
}

// maxUTF16 bounds the length in UTF-16 code units, the unit browsers count
// in maxlength and string length checks.
func maxUTF16(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic("max_utf16: parameter must be an integer, got " + fl.Param())
	}
	return UTF16Len(fl.Field().String()) <= limit
}

// UTF16Len returns the number of UTF-16 code units needed to encode s.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// ParseNumber reads a typed number. Whitespace anywhere is ignored and
// exponents or a bare leading dot are accepted. NaN is rejected.
func ParseNumber(raw string) (float64, bool) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if compact == "" {
		return 0, false
	}
	f, err := cast.ToFloat64E(compact)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// ParseDate reads a typed date: ISO dates, RFC 3339 timestamps and the
// usual US spellings. Time-only inputs are rejected.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := cast.StringToDateInDefaultLocation(s, time.UTC); err == nil && t.Year() != 0 {
		return t, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
