//go:build !vnmea_no_garmin

package parser

import "github.com/vuuvv/vnmea/core"

// Garmin proprietary sentences arrive as $PGRMx; the talker is 'P' and the
// type keeps all four characters.
var garminEntries = []Entry{
	{Type: "GRME", Decode: decodeGRME, Module: core.ModuleGarmin, MinFields: 7},
	{Type: "GRMZ", Decode: decodeGRMZ, Module: core.ModuleGarmin, MinFields: 3},
}

// PGRME: Estimated Error Information
//
//	1: horizontal (m), 3: vertical (m), 5: spherical (m)
func decodeGRME(c *Context, s *Sentence) error {
	g := c.Garmin
	var err error
	if g.HorizontalError, err = measure(s.Field(1)); err != nil {
		return err
	}
	if g.VerticalError, err = measure(s.Field(3)); err != nil {
		return err
	}
	if g.SphericalError, err = measure(s.Field(5)); err != nil {
		return err
	}
	c.Garmin = g
	return nil
}

// PGRMZ: Altitude
//
//	1: altitude, 2: 'f', 3: fix dimension (2 or 3)
func decodeGRMZ(c *Context, s *Sentence) error {
	g := c.Garmin
	v, err := core.ParseFloat(s.Field(1))
	if err != nil {
		return err
	}
	g.AltitudeFeet = Measure{Value: v, Valid: true}
	if g.FixDimension, err = count(s.Field(3)); err != nil {
		return err
	}
	c.Garmin = g
	return nil
}
