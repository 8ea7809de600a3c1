package core

import (
	"math"
	"strconv"
	"time"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Coordinate is a latitude or longitude in signed decimal degrees.
type Coordinate struct {
	Degrees float64
	Valid   bool
}

// Time is a UTC time of day as carried by NMEA time fields.
type Time struct {
	Hour        uint8
	Minute      uint8
	Second      uint8
	Millisecond uint16
	Valid       bool
}

// Date is a calendar date as carried by NMEA DDMMYY fields.
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
	Valid bool
}

// Time combines d with the time of day t in UTC. The zero time.Time is
// returned unless both are valid.
func (d Date) Time(t Time) time.Time {
	if !d.Valid || !t.Valid {
		return time.Time{}
	}
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day),
		int(t.Hour), int(t.Minute), int(t.Second), int(t.Millisecond)*int(time.Millisecond), time.UTC)
}

// B2S converts byte slice to a string without memory allocation.
// The string must not outlive the bytes.
func B2S(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// numeric reports whether tok looks like a plain decimal number: optional
// sign, digits, at most one '.'. It keeps strconv from accepting hex, exponents,
// "inf", "nan" and underscores.
func numeric(tok []byte, allowDot bool) bool {
	i := 0
	if tok[0] == '-' || tok[0] == '+' {
		i = 1
	}
	digits := 0
	dot := false
	for ; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && allowDot && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// ParseFloat parses a decimal field. An empty field yields 0 and ErrNoData.
func ParseFloat(tok []byte) (float64, error) {
	if len(tok) == 0 {
		return 0, ErrNoData
	}
	if !numeric(tok, true) {
		return 0, ErrParseFailed
	}
	v, err := strconv.ParseFloat(B2S(tok), 64)
	if err != nil {
		return 0, ErrParseFailed
	}
	return v, nil
}

// ParseInt parses an integer field. An empty field yields 0 and ErrNoData.
func ParseInt(tok []byte) (int, error) {
	return ParseInteger[int](tok)
}

// ParseInteger parses an integer field into T, failing when the value does
// not fit.
func ParseInteger[T constraints.Integer](tok []byte) (T, error) {
	if len(tok) == 0 {
		return 0, ErrNoData
	}
	if !numeric(tok, false) {
		return 0, ErrParseFailed
	}
	v, err := strconv.ParseInt(B2S(tok), 10, 64)
	if err != nil {
		return 0, ErrParseFailed
	}
	out := T(v)
	if int64(out) != v || (v < 0) != (out < 0) {
		return 0, ErrParseFailed
	}
	return out, nil
}

// ParseChar parses a single-character field such as a status or unit flag.
func ParseChar(tok []byte) (byte, error) {
	switch len(tok) {
	case 0:
		return 0, ErrNoData
	case 1:
		return tok[0], nil
	}
	return 0, ErrParseFailed
}

// ParseCoordinate converts a DDMM.MMMM (or DDDMM.MMMM) value and its
// hemisphere into decimal degrees. 'S' and 'W' are negative.
func ParseCoordinate(value, hemisphere []byte) (Coordinate, error) {
	if len(value) == 0 {
		return Coordinate{}, ErrNoData
	}
	raw, err := ParseFloat(value)
	if err != nil || raw < 0 {
		return Coordinate{}, ErrParseFailed
	}
	if len(hemisphere) != 1 {
		return Coordinate{}, ErrParseFailed
	}

	deg := math.Floor(raw / 100)
	minutes := raw - deg*100
	if minutes >= 60 {
		return Coordinate{}, ErrParseFailed
	}
	dec := deg + minutes/60

	switch hemisphere[0] {
	case 'N', 'E':
	case 'S', 'W':
		dec = -dec
	default:
		return Coordinate{}, ErrParseFailed
	}
	return Coordinate{Degrees: dec, Valid: true}, nil
}

// ParseTime parses HHMMSS[.sss].
func ParseTime(tok []byte) (Time, error) {
	if len(tok) == 0 {
		return Time{}, ErrNoData
	}
	v, err := ParseFloat(tok)
	if err != nil || !(v >= 0 && v < 240000) {
		return Time{}, ErrParseFailed
	}

	whole := math.Floor(v)
	n := int(whole)
	h := n / 10000
	m := (n / 100) % 100
	s := n % 100
	if h > 23 || m > 59 || s > 59 {
		return Time{}, ErrParseFailed
	}

	ms := int(math.Round((v - whole) * 1000))
	if ms > 999 {
		ms = 999
	}
	return Time{
		Hour:        uint8(h),
		Minute:      uint8(m),
		Second:      uint8(s),
		Millisecond: uint16(ms),
		Valid:       true,
	}, nil
}

// ParseDate parses DDMMYY. Two digit years map onto 2000-2099.
func ParseDate(tok []byte) (Date, error) {
	if len(tok) == 0 {
		return Date{}, ErrNoData
	}
	n, err := ParseInteger[int32](tok)
	if err != nil || n < 0 {
		return Date{}, ErrParseFailed
	}

	d := n / 10000
	m := (n / 100) % 100
	y := n % 100
	if d < 1 || d > 31 || m < 1 || m > 12 {
		return Date{}, ErrParseFailed
	}
	return Date{
		Year:  uint16(2000 + y),
		Month: uint8(m),
		Day:   uint8(d),
		Valid: true,
	}, nil
}
