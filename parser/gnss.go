//go:build !vnmea_no_gnss

package parser

import "github.com/vuuvv/vnmea/core"

var gnssEntries = []Entry{
	{Type: "GGA", Decode: decodeGGA, Module: core.ModuleGNSS, MinFields: 10},
	{Type: "RMC", Decode: decodeRMC, Module: core.ModuleGNSS, MinFields: 10},
	{Type: "GLL", Decode: decodeGLL, Module: core.ModuleGNSS, MinFields: 7},
	{Type: "GSA", Decode: decodeGSA, Module: core.ModuleGNSS, MinFields: 18},
	{Type: "GSV", Decode: decodeGSV, Module: core.ModuleGNSS, MinFields: 4},
	{Type: "VTG", Decode: decodeVTG, Module: core.ModuleGNSS, MinFields: 9},
	{Type: "ZDA", Decode: decodeZDA, Module: core.ModuleGNSS, MinFields: 5},
	{Type: "GST", Decode: decodeGST, Module: core.ModuleGNSS, MinFields: 9},
}

// GGA: Global Positioning System Fix Data
//
//	1: time, 2-5: lat/N/lon/E, 6: fix quality, 7: satellites used,
//	8: HDOP, 9: altitude, 10: 'M', 11: geoid separation, 12: 'M',
//	13: DGPS age, 14: DGPS station
func decodeGGA(c *Context, s *Sentence) error {
	g := c.GNSS
	var err error
	if g.Time, err = timeOfDay(s.Field(1)); err != nil {
		return err
	}
	if g.Latitude, g.Longitude, err = position(s, 2); err != nil {
		return err
	}
	q, err := core.ParseInteger[uint8](s.Field(6))
	if err = optional(err); err != nil {
		return err
	}
	g.FixQuality = FixQuality(q)
	if g.SatellitesUsed, err = count(s.Field(7)); err != nil {
		return err
	}
	if g.HDOP, err = measure(s.Field(8)); err != nil {
		return err
	}
	if g.Altitude, err = measure(s.Field(9)); err != nil {
		return err
	}
	if g.GeoidSeparation, err = measure(s.Field(11)); err != nil {
		return err
	}
	if g.DGPSAge, err = measure(s.Field(13)); err != nil {
		return err
	}
	if g.DGPSStation, err = count(s.Field(14)); err != nil {
		return err
	}
	c.GNSS = g
	return nil
}

// RMC: Recommended Minimum Specific GNSS Data
//
//	1: time, 2: status, 3-6: position, 7: speed (knots), 8: course (true),
//	9: date, 10: magnetic variation, 11: E/W, 12: mode
//
// A void fix only refreshes time, date and status.
func decodeRMC(c *Context, s *Sentence) error {
	g := c.GNSS
	var err error
	if g.Time, err = timeOfDay(s.Field(1)); err != nil {
		return err
	}
	if g.Status, err = char(s.Field(2)); err != nil {
		return err
	}
	d, err := core.ParseDate(s.Field(9))
	if err = optional(err); err != nil {
		return err
	}
	g.Date = d
	if g.Mode, err = char(s.Field(12)); err != nil {
		return err
	}
	if g.Status != 'A' {
		c.GNSS = g
		return nil
	}

	if g.Latitude, g.Longitude, err = position(s, 3); err != nil {
		return err
	}
	if g.SpeedKnots, err = measure(s.Field(7)); err != nil {
		return err
	}
	if g.CourseTrue, err = measure(s.Field(8)); err != nil {
		return err
	}
	variation, err := measure(s.Field(10))
	if err != nil {
		return err
	}
	if g.MagneticVariation, err = signed(variation, s.Field(11), 'W'); err != nil {
		return err
	}
	c.GNSS = g
	return nil
}

// GLL: Geographic Position
//
//	1-4: position, 5: time, 6: status, 7: mode
func decodeGLL(c *Context, s *Sentence) error {
	g := c.GNSS
	var err error
	if g.Time, err = timeOfDay(s.Field(5)); err != nil {
		return err
	}
	if g.Status, err = char(s.Field(6)); err != nil {
		return err
	}
	if g.Mode, err = char(s.Field(7)); err != nil {
		return err
	}
	if g.Status == 'A' {
		if g.Latitude, g.Longitude, err = position(s, 1); err != nil {
			return err
		}
	}
	c.GNSS = g
	return nil
}

// GSA: DOP and Active Satellites
//
//	1: selection mode, 2: fix type, 3-14: PRNs, 15: PDOP, 16: HDOP, 17: VDOP
func decodeGSA(c *Context, s *Sentence) error {
	g := c.GNSS
	var err error
	if g.SelectionMode, err = char(s.Field(1)); err != nil {
		return err
	}
	ft, err := core.ParseInteger[uint8](s.Field(2))
	if err = optional(err); err != nil {
		return err
	}
	g.FixType = ft

	g.ActivePRN = [MaxActiveSatellites]uint16{}
	g.ActiveSatellite = 0
	for i := 0; i < MaxActiveSatellites; i++ {
		prn, err := core.ParseInteger[uint16](s.Field(3 + i))
		if err == core.ErrNoData {
			continue
		}
		if err != nil {
			return err
		}
		g.ActivePRN[g.ActiveSatellite] = prn
		g.ActiveSatellite++
	}

	if g.PDOP, err = measure(s.Field(15)); err != nil {
		return err
	}
	if g.HDOP, err = measure(s.Field(16)); err != nil {
		return err
	}
	if g.VDOP, err = measure(s.Field(17)); err != nil {
		return err
	}
	c.GNSS = g
	return nil
}

// GSV: Satellites in View
//
//	1: message count, 2: message number, 3: satellites in view,
//	then up to four groups of PRN, elevation, azimuth, SNR
//
// Message 1 restarts the satellite table.
func decodeGSV(c *Context, s *Sentence) error {
	g := c.GNSS
	total, err := core.ParseInteger[uint8](s.Field(1))
	if err != nil {
		return err
	}
	num, err := core.ParseInteger[uint8](s.Field(2))
	if err != nil {
		return err
	}
	if num < 1 || num > total {
		return core.ErrParseFailed
	}
	if g.SatellitesInView, err = count(s.Field(3)); err != nil {
		return err
	}
	if num == 1 {
		g.Satellites = [MaxSatellites]Satellite{}
		g.SatelliteCount = 0
	}

	for i := 4; i < s.Len(); i += 4 {
		prn, err := core.ParseInteger[uint16](s.Field(i))
		if err == core.ErrNoData {
			continue
		}
		if err != nil {
			return err
		}
		var sat Satellite
		sat.PRN = prn
		if sat.Elevation, err = count(s.Field(i + 1)); err != nil {
			return err
		}
		if sat.Azimuth, err = count(s.Field(i + 2)); err != nil {
			return err
		}
		if sat.SNR, err = count(s.Field(i + 3)); err != nil {
			return err
		}
		if int(g.SatelliteCount) < MaxSatellites {
			g.Satellites[g.SatelliteCount] = sat
			g.SatelliteCount++
		}
	}
	c.GNSS = g
	return nil
}

// VTG: Course Over Ground and Ground Speed
//
//	1: course true, 3: course magnetic, 5: speed knots, 7: speed km/h, 9: mode
func decodeVTG(c *Context, s *Sentence) error {
	g := c.GNSS
	var err error
	if g.CourseTrue, err = measure(s.Field(1)); err != nil {
		return err
	}
	if g.CourseMagnetic, err = measure(s.Field(3)); err != nil {
		return err
	}
	if g.SpeedKnots, err = measure(s.Field(5)); err != nil {
		return err
	}
	if g.SpeedKmh, err = measure(s.Field(7)); err != nil {
		return err
	}
	if g.Mode, err = char(s.Field(9)); err != nil {
		return err
	}
	c.GNSS = g
	return nil
}

// ZDA: Time and Date
//
//	1: time, 2: day, 3: month, 4: year (4 digits), 5: zone hours, 6: zone minutes
func decodeZDA(c *Context, s *Sentence) error {
	g := c.GNSS
	var err error
	if g.Time, err = timeOfDay(s.Field(1)); err != nil {
		return err
	}
	day, err := core.ParseInteger[uint8](s.Field(2))
	if err != nil {
		return err
	}
	month, err := core.ParseInteger[uint8](s.Field(3))
	if err != nil {
		return err
	}
	year, err := core.ParseInteger[uint16](s.Field(4))
	if err != nil {
		return err
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return core.ErrParseFailed
	}
	g.Date = core.Date{Year: year, Month: month, Day: day, Valid: true}
	if g.LocalZoneHours, err = count(s.Field(5)); err != nil {
		return err
	}
	if g.LocalZoneMinutes, err = count(s.Field(6)); err != nil {
		return err
	}
	c.GNSS = g
	return nil
}

// GST: Pseudorange Noise Statistics
//
//	1: time, 2: RMS, 3-5: error ellipse, 6: sigma lat, 7: sigma lon, 8: sigma alt
func decodeGST(c *Context, s *Sentence) error {
	g := c.GNSS
	var err error
	if g.Time, err = timeOfDay(s.Field(1)); err != nil {
		return err
	}
	if g.RangeRMS, err = measure(s.Field(2)); err != nil {
		return err
	}
	if g.SigmaLatitude, err = measure(s.Field(6)); err != nil {
		return err
	}
	if g.SigmaLongitude, err = measure(s.Field(7)); err != nil {
		return err
	}
	if g.SigmaAltitude, err = measure(s.Field(8)); err != nil {
		return err
	}
	c.GNSS = g
	return nil
}
