package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	v, err := ParseFloat([]byte("545.4"))
	require.NoError(t, err)
	assert.InDelta(t, 545.4, v, 1e-9)

	v, err = ParseFloat([]byte("-0.5"))
	require.NoError(t, err)
	assert.InDelta(t, -0.5, v, 1e-9)

	v, err = ParseFloat([]byte(""))
	assert.ErrorIs(t, err, ErrNoData)
	assert.Zero(t, v)

	for _, s := range []string{"abc", "1.2.3", "1e5", "0x10", "inf", "NaN", "-", ".", "1_0", " 1"} {
		_, err := ParseFloat([]byte(s))
		assert.ErrorIs(t, err, ErrParseFailed, s)
	}
}

func TestParseInt(t *testing.T) {
	v, err := ParseInt([]byte("08"))
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	v, err = ParseInt(nil)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Zero(t, v)

	for _, s := range []string{"1.5", "x", "99999999999999999999"} {
		_, err := ParseInt([]byte(s))
		assert.ErrorIs(t, err, ErrParseFailed, s)
	}
}

func TestParseInteger_Range(t *testing.T) {
	u, err := ParseInteger[uint8]([]byte("255"))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u)

	_, err = ParseInteger[uint8]([]byte("256"))
	assert.ErrorIs(t, err, ErrParseFailed)
	_, err = ParseInteger[uint16]([]byte("-1"))
	assert.ErrorIs(t, err, ErrParseFailed)

	i, err := ParseInteger[int8]([]byte("-128"))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), i)
}

func TestParseChar(t *testing.T) {
	c, err := ParseChar([]byte("A"))
	require.NoError(t, err)
	assert.Equal(t, byte('A'), c)

	_, err = ParseChar(nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = ParseChar([]byte("AB"))
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestParseCoordinate(t *testing.T) {
	c, err := ParseCoordinate([]byte("4807.038"), []byte("N"))
	require.NoError(t, err)
	assert.True(t, c.Valid)
	assert.InDelta(t, 48.1173, c.Degrees, 1e-4)

	c, err = ParseCoordinate([]byte("4807.038"), []byte("S"))
	require.NoError(t, err)
	assert.InDelta(t, -48.1173, c.Degrees, 1e-4)

	c, err = ParseCoordinate([]byte("01131.000"), []byte("E"))
	require.NoError(t, err)
	assert.InDelta(t, 11.51667, c.Degrees, 1e-5)

	c, err = ParseCoordinate([]byte("12311.12"), []byte("W"))
	require.NoError(t, err)
	assert.InDelta(t, -123.18533, c.Degrees, 1e-5)

	_, err = ParseCoordinate([]byte("4807.038"), []byte("X"))
	assert.ErrorIs(t, err, ErrParseFailed)
	_, err = ParseCoordinate([]byte("4807.038"), nil)
	assert.ErrorIs(t, err, ErrParseFailed)
	_, err = ParseCoordinate([]byte("4861.000"), []byte("N"))
	assert.ErrorIs(t, err, ErrParseFailed)
	_, err = ParseCoordinate([]byte("48x7.038"), []byte("N"))
	assert.ErrorIs(t, err, ErrParseFailed)

	c, err = ParseCoordinate(nil, []byte("N"))
	assert.ErrorIs(t, err, ErrNoData)
	assert.False(t, c.Valid)
	assert.Zero(t, c.Degrees)
}

func TestParseTime(t *testing.T) {
	tm, err := ParseTime([]byte("123519"))
	require.NoError(t, err)
	assert.Equal(t, Time{Hour: 12, Minute: 35, Second: 19, Millisecond: 0, Valid: true}, tm)

	tm, err = ParseTime([]byte("235959.999"))
	require.NoError(t, err)
	assert.Equal(t, Time{Hour: 23, Minute: 59, Second: 59, Millisecond: 999, Valid: true}, tm)

	tm, err = ParseTime([]byte("000000.05"))
	require.NoError(t, err)
	assert.Equal(t, uint16(50), tm.Millisecond)

	for _, s := range []string{
		"999999", "240000", "126000", "123560", "-10000", "12:35",
		"99999999999999999999", "9223372036854775808", "240000.5", "100000000000000000000000.0",
	} {
		_, err := ParseTime([]byte(s))
		assert.ErrorIs(t, err, ErrParseFailed, s)
	}

	tm, err = ParseTime(nil)
	assert.ErrorIs(t, err, ErrNoData)
	assert.False(t, tm.Valid)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate([]byte("230394"))
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2094, Month: 3, Day: 23, Valid: true}, d)

	d, err = ParseDate([]byte("010100"))
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2000, Month: 1, Day: 1, Valid: true}, d)

	for _, s := range []string{"000194", "320194", "011394", "010094", "01.0194", "ab0194"} {
		_, err := ParseDate([]byte(s))
		assert.ErrorIs(t, err, ErrParseFailed, s)
	}

	_, err = ParseDate(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestDateTime(t *testing.T) {
	d := Date{Year: 2024, Month: 6, Day: 1, Valid: true}
	tm := Time{Hour: 12, Minute: 35, Second: 19, Millisecond: 250, Valid: true}
	assert.Equal(t, time.Date(2024, 6, 1, 12, 35, 19, 250*int(time.Millisecond), time.UTC), d.Time(tm))
	assert.True(t, Date{}.Time(tm).IsZero())
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, 0, OK.Code())
	assert.Equal(t, -int(ErrChecksumFailed), ErrChecksumFailed.Code())
	assert.Equal(t, "checksum failed", ErrChecksumFailed.Error())
	assert.Equal(t, "unknown error", ErrorKind(99).String())
	assert.Equal(t, ClassIntegrity, ErrChecksumFailed.Class())
	assert.Equal(t, ClassSupport, ErrModuleDisabled.Class())
	assert.True(t, ErrNotInit.Fatal())
	assert.False(t, ErrNoData.Fatal())
	for k := OK; k < errorKindCount; k++ {
		assert.NotEmpty(t, k.String())
		assert.NotEqual(t, "unknown", k.Class().String())
	}
	assert.Equal(t, OK, KindOf(nil))
	assert.Equal(t, ErrTooFewFields, KindOf(ErrTooFewFields))
}

func TestModuleMask(t *testing.T) {
	m := Modules(ModuleGNSS, ModuleAIS)
	assert.True(t, m.Has(ModuleGNSS))
	assert.False(t, m.Has(ModuleWind))
	assert.True(t, m.With(ModuleWind).Has(ModuleWind))
	assert.False(t, m.Without(ModuleGNSS).Has(ModuleGNSS))
	assert.Equal(t, []string{"gnss", "ais"}, m.Names())
	assert.Len(t, AllModules.Names(), int(ModuleCount))
	assert.False(t, AllModules.Has(ModuleID(40)))

	id, ok := ParseModuleName(" Heading ")
	require.True(t, ok)
	assert.Equal(t, ModuleHeading, id)
	_, ok = ParseModuleName("radar")
	assert.False(t, ok)
}

func TestPayloadBits(t *testing.T) {
	payload := []byte("15M67FC000G?ufbE`FepT@3n00Sa")
	typ, err := PayloadBits(payload, 0, 6)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), typ)

	mmsi, err := PayloadBits(payload, 8, 30)
	require.NoError(t, err)
	assert.Equal(t, uint32(366053209), mmsi)

	_, err = PayloadBits(payload[:3], 8, 30)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = PayloadBits([]byte("1~"), 0, 12)
	assert.ErrorIs(t, err, ErrParseFailed)
}
