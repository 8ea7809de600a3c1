//go:build !vnmea_no_wind

package parser

import "github.com/vuuvv/vnmea/core"

var windEntries = []Entry{
	{Type: "MWV", Decode: decodeMWV, Module: core.ModuleWind, MinFields: 6},
	{Type: "MWD", Decode: decodeMWD, Module: core.ModuleWind, MinFields: 9},
}

// MWV: Wind Speed and Angle
//
//	1: angle, 2: reference R(elative)/T(rue), 3: speed, 4: unit K/M/N/S,
//	5: status A/V
func decodeMWV(c *Context, s *Sentence) error {
	w := c.Wind
	var err error
	if w.Angle, err = measure(s.Field(1)); err != nil {
		return err
	}
	if w.Reference, err = char(s.Field(2)); err != nil {
		return err
	}
	switch w.Reference {
	case 0, 'R', 'T':
	default:
		return core.ErrParseFailed
	}
	if w.Speed, err = measure(s.Field(3)); err != nil {
		return err
	}
	if w.SpeedUnit, err = char(s.Field(4)); err != nil {
		return err
	}
	status, err := char(s.Field(5))
	if err != nil {
		return err
	}
	w.Valid = status == 'A'
	c.Wind = w
	return nil
}

// MWD: Wind Direction and Speed
//
//	1: direction true, 3: direction magnetic, 5: speed knots, 7: speed m/s
func decodeMWD(c *Context, s *Sentence) error {
	w := c.Wind
	var err error
	if w.DirectionTrue, err = measure(s.Field(1)); err != nil {
		return err
	}
	if w.DirectionMagnetic, err = measure(s.Field(3)); err != nil {
		return err
	}
	if w.SpeedKnots, err = measure(s.Field(5)); err != nil {
		return err
	}
	if w.SpeedMeters, err = measure(s.Field(7)); err != nil {
		return err
	}
	c.Wind = w
	return nil
}
