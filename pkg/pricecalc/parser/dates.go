package parser

import (
	"strings"

	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/models"
	"github.com/xuri/excelize/v2"
)

// date1904Offset converts a 1904-system serial to the 1900 system.
const date1904Offset = 1462

// builtInDateFormats are the built-in number format IDs that display dates
// or times, including the CJK locale formats.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// dateFormat is the number format of a date style.
type dateFormat struct {
	numFmt       int
	customNumFmt string
}

// dateStyles resolves cell styles to date formats, caching by style ID.
type dateStyles struct {
	f        *excelize.File
	date1904 bool
	byStyle  map[int]*dateFormat
}

func newDateStyles(f *excelize.File) *dateStyles {
	ds := &dateStyles{f: f, byStyle: make(map[int]*dateFormat)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		ds.date1904 = *props.Date1904
	}
	return ds
}

// lookup returns v as a models.Date when the cell's style is a date format.
func (ds *dateStyles) lookup(sheetName, cellName string, v interface{}) (models.Date, bool, error) {
	styleID, err := ds.f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return models.Date{}, false, err
	}
	if styleID == 0 {
		return models.Date{}, false, nil
	}

	format, ok := ds.byStyle[styleID]
	if !ok {
		style, err := ds.f.GetStyle(styleID)
		if err != nil {
			return models.Date{}, false, err
		}
		format = styleDateFormat(style)
		ds.byStyle[styleID] = format
	}
	if format == nil {
		return models.Date{}, false, nil
	}

	var serial float64
	switch n := v.(type) {
	case int64:
		serial = float64(n)
	case float64:
		serial = n
	}
	if ds.date1904 {
		serial += date1904Offset
	}

	return models.Date{
		Serial:       serial,
		NumFmt:       format.numFmt,
		CustomNumFmt: format.customNumFmt,
	}, true, nil
}

// styleDateFormat returns the date format of style, or nil if it is not one.
func styleDateFormat(style *excelize.Style) *dateFormat {
	if style == nil {
		return nil
	}
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		if !IsDateFormatCode(*style.CustomNumFmt) {
			return nil
		}
		return &dateFormat{customNumFmt: *style.CustomNumFmt}
	}
	if builtInDateFormats[style.NumFmt] {
		return &dateFormat{numFmt: style.NumFmt}
	}
	return nil
}

// IsDateFormatCode reports whether a number format code displays a date or
// time. Quoted text, escaped characters, bracketed sections and
// padding/fill characters are ignored before looking for date tokens.
func IsDateFormatCode(code string) bool {
	// Only the first section formats positive numbers.
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}

	var b strings.Builder
	for i := 0; i < len(code); i++ {
		switch c := code[i]; c {
		case '"':
			j := strings.IndexByte(code[i+1:], '"')
			if j < 0 {
				i = len(code)
			} else {
				i += j + 1
			}
		case '[':
			j := strings.IndexByte(code[i+1:], ']')
			if j < 0 {
				i = len(code)
			} else {
				section := strings.ToLower(code[i+1 : i+1+j])
				if section == "h" || section == "hh" || section == "m" || section == "mm" || section == "s" || section == "ss" {
					b.WriteByte('h')
				}
				i += j + 1
			}
		case '\\', '_', '*':
			i++
		default:
			b.WriteByte(c)
		}
	}

	return strings.ContainsAny(strings.ToLower(b.String()), "ydhms")
}
