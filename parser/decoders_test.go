package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vuuvv/vnmea/core"
)

func parseAll(t *testing.T, c *Context, payloads ...string) {
	t.Helper()
	for _, p := range payloads {
		require.NoError(t, c.ParseSentence(sentence(p)), p)
	}
}

func TestDecodeGNSS(t *testing.T) {
	t.Run("RMC", func(t *testing.T) {
		c := newTestContext(t, DefaultConfig())
		parseAll(t, c, "GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230324,003.1,W,A")
		g := c.GNSS
		assert.Equal(t, byte('A'), g.Status)
		assert.Equal(t, byte('A'), g.Mode)
		assert.InDelta(t, 48.1173, g.Latitude.Degrees, 1e-4)
		assert.InDelta(t, 11.516667, g.Longitude.Degrees, 1e-6)
		assert.InDelta(t, 22.4, g.SpeedKnots.Value, 1e-9)
		assert.InDelta(t, 84.4, g.CourseTrue.Value, 1e-9)
		assert.InDelta(t, -3.1, g.MagneticVariation.Value, 1e-9)
		assert.Equal(t, core.Date{Year: 2024, Month: 3, Day: 23, Valid: true}, g.Date)

		parseAll(t, c, "GPRMC,123520,V,,,,,,,240324,,,N")
		assert.Equal(t, byte('V'), c.GNSS.Status)
		assert.Equal(t, uint8(20), c.GNSS.Time.Second)
		assert.Equal(t, uint8(24), c.GNSS.Date.Day)
		assert.InDelta(t, 48.1173, c.GNSS.Latitude.Degrees, 1e-4, "void fix keeps the last position")
	})

	t.Run("GLL", func(t *testing.T) {
		c := newTestContext(t, DefaultConfig())
		parseAll(t, c, "GPGLL,4916.45,N,12311.12,W,225444,A,A")
		assert.InDelta(t, 49.274167, c.GNSS.Latitude.Degrees, 1e-6)
		assert.InDelta(t, -123.185333, c.GNSS.Longitude.Degrees, 1e-6)
		assert.Equal(t, core.Time{Hour: 22, Minute: 54, Second: 44, Valid: true}, c.GNSS.Time)
	})

	t.Run("GSA", func(t *testing.T) {
		c := newTestContext(t, DefaultConfig())
		parseAll(t, c, "GPGSA,A,3,04,05,,09,12,,,24,,,,,2.5,1.3,2.1")
		g := c.GNSS
		assert.Equal(t, byte('A'), g.SelectionMode)
		assert.Equal(t, uint8(3), g.FixType)
		assert.Equal(t, uint8(5), g.ActiveSatellite)
		assert.Equal(t, []uint16{4, 5, 9, 12, 24}, g.ActivePRN[:g.ActiveSatellite])
		assert.InDelta(t, 2.5, g.PDOP.Value, 1e-9)
		assert.InDelta(t, 1.3, g.HDOP.Value, 1e-9)
		assert.InDelta(t, 2.1, g.VDOP.Value, 1e-9)
	})

	t.Run("GSV", func(t *testing.T) {
		c := newTestContext(t, DefaultConfig())
		first := "GPGSV,2,1,08,01,40,083,46,02,17,308,41,12,07,344,39,14,22,228,45"
		parseAll(t, c, first)
		assert.Equal(t, uint8(4), c.GNSS.SatelliteCount)
		parseAll(t, c, "GPGSV,2,2,08,15,10,045,,17,50,120,38,19,,,30,22,05,300,")
		assert.Equal(t, uint8(8), c.GNSS.SatelliteCount)
		assert.Equal(t, Count{Value: 8, Valid: true}, c.GNSS.SatellitesInView)
		sat := c.GNSS.Satellites[4]
		assert.Equal(t, uint16(15), sat.PRN)
		assert.False(t, sat.SNR.Valid)
		assert.False(t, c.GNSS.Satellites[6].Elevation.Valid)

		parseAll(t, c, first)
		assert.Equal(t, uint8(4), c.GNSS.SatelliteCount)
		assert.ErrorIs(t, c.ParseSentence(sentence("GPGSV,2,3,08")), core.ErrParseFailed)
	})

	t.Run("VTG", func(t *testing.T) {
		c := newTestContext(t, DefaultConfig())
		parseAll(t, c, "GPVTG,054.7,T,034.4,M,005.5,N,010.2,K,A")
		assert.InDelta(t, 54.7, c.GNSS.CourseTrue.Value, 1e-9)
		assert.InDelta(t, 34.4, c.GNSS.CourseMagnetic.Value, 1e-9)
		assert.InDelta(t, 5.5, c.GNSS.SpeedKnots.Value, 1e-9)
		assert.InDelta(t, 10.2, c.GNSS.SpeedKmh.Value, 1e-9)
	})

	t.Run("ZDA", func(t *testing.T) {
		c := newTestContext(t, DefaultConfig())
		parseAll(t, c, "GPZDA,201530.00,04,07,2002,00,00")
		assert.Equal(t, core.Date{Year: 2002, Month: 7, Day: 4, Valid: true}, c.GNSS.Date)
		assert.Equal(t, uint8(20), c.GNSS.Time.Hour)
		assert.Equal(t, Count{Value: 0, Valid: true}, c.GNSS.LocalZoneHours)
		assert.ErrorIs(t, c.ParseSentence(sentence("GPZDA,201530.00,32,07,2002,00,00")), core.ErrParseFailed)
	})

	t.Run("GST", func(t *testing.T) {
		c := newTestContext(t, DefaultConfig())
		parseAll(t, c, "GPGST,172814.0,0.006,0.023,0.020,273.6,0.023,0.020,0.031")
		assert.InDelta(t, 0.006, c.GNSS.RangeRMS.Value, 1e-9)
		assert.InDelta(t, 0.023, c.GNSS.SigmaLatitude.Value, 1e-9)
		assert.InDelta(t, 0.020, c.GNSS.SigmaLongitude.Value, 1e-9)
		assert.InDelta(t, 0.031, c.GNSS.SigmaAltitude.Value, 1e-9)
	})
}

func TestDecodeAIS(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	parseAll(t, c, "AIVDM,1,1,,A,15M67FC000G?ufbE`FepT@3n00Sa,0")
	a := c.AIS
	assert.False(t, a.Own)
	assert.Equal(t, byte('A'), a.Channel)
	assert.False(t, a.SequenceID.Valid)
	assert.Equal(t, "15M67FC000G?ufbE`FepT@3n00Sa", string(a.Payload()))
	assert.True(t, a.HeaderValid)
	assert.Equal(t, uint8(1), a.MessageType)
	assert.Equal(t, uint32(366053209), a.MMSI)
	assert.Equal(t, "VDM", c.LastSentence().Type())
	assert.Equal(t, byte('!'), c.LastSentence().Marker)

	parseAll(t, c, "AIVDO,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0")
	assert.True(t, c.AIS.Own)
	assert.Equal(t, byte('B'), c.AIS.Channel)

	before := c.AIS
	for _, bad := range []string{
		"AIVDM,1,1,,A,15M67F~,0",
		"AIVDM,1,1,,A,15M67FC,6",
		"AIVDM,1,2,,A,15M67FC,0",
		"AIVDM,0,0,,A,15M67FC,0",
	} {
		assert.ErrorIs(t, c.ParseSentence(sentence(bad)), core.ErrParseFailed, bad)
	}
	assert.Equal(t, before, c.AIS)

	parseAll(t, c, "AIVDM,2,2,3,B,00000000000,2")
	assert.Equal(t, uint32(366053209), c.AIS.MMSI, "continuation fragments keep the header")
	assert.Equal(t, Count{Value: 3, Valid: true}, c.AIS.SequenceID)
	assert.Equal(t, uint8(2), c.AIS.FillBits)
}

func TestDecodeHeading(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	parseAll(t, c,
		"HEHDT,274.07,T",
		"HCHDM,270.5,M",
		"TIROT,-3.5,A",
	)
	assert.InDelta(t, 274.07, c.Heading.True.Value, 1e-9)
	assert.InDelta(t, 270.5, c.Heading.Magnetic.Value, 1e-9)
	assert.InDelta(t, -3.5, c.Heading.RateOfTurn.Value, 1e-9)
	assert.True(t, c.Heading.RateValid)

	parseAll(t, c, "HCHDG,98.3,0.0,E,12.6,W")
	assert.InDelta(t, 98.3, c.Heading.Magnetic.Value, 1e-9)
	assert.True(t, c.Heading.Deviation.Valid)
	assert.InDelta(t, -12.6, c.Heading.Variation.Value, 1e-9)

	assert.ErrorIs(t, c.ParseSentence(sentence("HEHDT,,T")), core.ErrNoData)
	assert.InDelta(t, 274.07, c.Heading.True.Value, 1e-9)
}

func TestDecodeDepth(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	parseAll(t, c, "SDDBT,36.4,f,11.1,M,6.0,F", "SDDPT,11.1,0.5,100")
	d := c.Depth
	assert.InDelta(t, 36.4, d.Feet.Value, 1e-9)
	assert.InDelta(t, 11.1, d.Meters.Value, 1e-9)
	assert.InDelta(t, 6.0, d.Fathoms.Value, 1e-9)
	assert.InDelta(t, 11.1, d.Depth.Value, 1e-9)
	assert.InDelta(t, 0.5, d.Offset.Value, 1e-9)
	assert.InDelta(t, 100, d.MaxRange.Value, 1e-9)

	assert.ErrorIs(t, c.ParseSentence(sentence("SDDBT,,f,,M,,F")), core.ErrNoData)
	assert.Equal(t, d, c.Depth)
}

func TestDecodeWind(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	parseAll(t, c, "WIMWV,214.8,R,0.1,K,A", "WIMWD,10.1,T,12.5,M,12,N,6.2,M")
	w := c.Wind
	assert.InDelta(t, 214.8, w.Angle.Value, 1e-9)
	assert.Equal(t, byte('R'), w.Reference)
	assert.Equal(t, byte('K'), w.SpeedUnit)
	assert.True(t, w.Valid)
	assert.InDelta(t, 10.1, w.DirectionTrue.Value, 1e-9)
	assert.InDelta(t, 12.5, w.DirectionMagnetic.Value, 1e-9)
	assert.InDelta(t, 12, w.SpeedKnots.Value, 1e-9)
	assert.InDelta(t, 6.2, w.SpeedMeters.Value, 1e-9)

	assert.ErrorIs(t, c.ParseSentence(sentence("WIMWV,214.8,X,0.1,K,A")), core.ErrParseFailed)
	parseAll(t, c, "WIMWV,214.8,T,0.1,K,V")
	assert.False(t, c.Wind.Valid)
}

func TestDecodeSpeed(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	parseAll(t, c, "VWVHW,245.1,T,240.0,M,5.5,N,10.2,K", "VWVLW,1000.5,N,50.2,N")
	v := c.Speed
	assert.InDelta(t, 245.1, v.HeadingTrue.Value, 1e-9)
	assert.InDelta(t, 240.0, v.HeadingMagnetic.Value, 1e-9)
	assert.InDelta(t, 5.5, v.WaterKnots.Value, 1e-9)
	assert.InDelta(t, 10.2, v.WaterKmh.Value, 1e-9)
	assert.InDelta(t, 1000.5, v.TotalDistance.Value, 1e-9)
	assert.InDelta(t, 50.2, v.TripDistance.Value, 1e-9)
	assert.False(t, v.GroundTotalDistance.Valid)
}

func TestDecodeNavigation(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	parseAll(t, c, "GPRMB,A,0.66,L,003,004,4917.24,N,12309.57,W,001.3,052.5,000.5,V")
	n := c.Navigation
	assert.True(t, n.Active)
	assert.InDelta(t, 0.66, n.CrossTrack.Value, 1e-9)
	assert.Equal(t, byte('L'), n.SteerDirection)
	assert.Equal(t, "003", n.Origin.String())
	assert.Equal(t, "004", n.Destination.String())
	assert.InDelta(t, 49.287333, n.DestLatitude.Degrees, 1e-6)
	assert.InDelta(t, -123.1595, n.DestLongitude.Degrees, 1e-6)
	assert.InDelta(t, 1.3, n.Range.Value, 1e-9)
	assert.InDelta(t, 52.5, n.Bearing.Value, 1e-9)
	assert.InDelta(t, 0.5, n.ClosingSpeed.Value, 1e-9)
	assert.False(t, n.Arrived)

	parseAll(t, c, "GPXTE,A,A,0.67,R,N")
	assert.InDelta(t, 0.67, c.Navigation.CrossTrack.Value, 1e-9)
	assert.Equal(t, byte('R'), c.Navigation.SteerDirection)
	assert.ErrorIs(t, c.ParseSentence(sentence("GPXTE,A,A,0.67,X,N")), core.ErrParseFailed)

	parseAll(t, c, "GPBOD,099.3,T,105.6,M,POINTB,POINTA")
	assert.InDelta(t, 99.3, c.Navigation.BearingTrue.Value, 1e-9)
	assert.InDelta(t, 105.6, c.Navigation.BearingMagnetic.Value, 1e-9)
	assert.Equal(t, "POINTB", c.Navigation.Destination.String())
	assert.Equal(t, "POINTA", c.Navigation.Origin.String())
	assert.ErrorIs(t, c.ParseSentence(sentence("GPBOD,099.3,T,105.6,M,WAYPOINT-TOO-LONG-1,A")), core.ErrParseFailed)
}

func TestDecodeEnvironment(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	parseAll(t, c, "YXMTW,17.9,C")
	assert.InDelta(t, 17.9, c.Environment.WaterTemperature.Value, 1e-9)

	parseAll(t, c, "WIMDA,29.9,I,1.01,B,21.5,C,18.0,C,65.0,,12.3,C,180.0,T,175.0,M,8.5,N,4.4,M")
	e := c.Environment
	assert.InDelta(t, 29.9, e.PressureInches.Value, 1e-9)
	assert.InDelta(t, 1.01, e.PressureBar.Value, 1e-9)
	assert.InDelta(t, 21.5, e.AirTemperature.Value, 1e-9)
	assert.InDelta(t, 18.0, e.WaterTemperature.Value, 1e-9)
	assert.InDelta(t, 65.0, e.RelativeHumidity.Value, 1e-9)
	assert.InDelta(t, 12.3, e.DewPoint.Value, 1e-9)
	assert.InDelta(t, 180.0, e.WindDirectionTrue.Value, 1e-9)
	assert.InDelta(t, 8.5, e.WindSpeedKnots.Value, 1e-9)

	assert.ErrorIs(t, c.ParseSentence(sentence("YXMTW,,C")), core.ErrNoData)
}

func TestDecodeGarmin(t *testing.T) {
	c := newTestContext(t, DefaultConfig())
	parseAll(t, c, "PGRME,15.0,M,45.0,M,25.0,M")
	assert.InDelta(t, 15.0, c.Garmin.HorizontalError.Value, 1e-9)
	assert.InDelta(t, 45.0, c.Garmin.VerticalError.Value, 1e-9)
	assert.InDelta(t, 25.0, c.Garmin.SphericalError.Value, 1e-9)

	parseAll(t, c, "PGRMZ,246,f,3")
	assert.InDelta(t, 246, c.Garmin.AltitudeFeet.Value, 1e-9)
	assert.Equal(t, Count{Value: 3, Valid: true}, c.Garmin.FixDimension)

	last := c.LastSentence()
	assert.Equal(t, core.TalkerProprietary, last.Talker)
	assert.Equal(t, "GRMZ", last.Type())
	assert.Equal(t, "PGRMZ", last.String())
}
