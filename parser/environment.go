//go:build !vnmea_no_environment

package parser

import "github.com/vuuvv/vnmea/core"

var environmentEntries = []Entry{
	{Type: "MTW", Decode: decodeMTW, Module: core.ModuleEnvironment, MinFields: 3},
	{Type: "MDA", Decode: decodeMDA, Module: core.ModuleEnvironment, MinFields: 9},
}

// MTW: 1: water temperature, 2: 'C'
func decodeMTW(c *Context, s *Sentence) error {
	v, err := core.ParseFloat(s.Field(1))
	if err != nil {
		return err
	}
	c.Environment.WaterTemperature = Measure{Value: v, Valid: true}
	return nil
}

// MDA: Meteorological Composite
//
//	1: pressure (inHg), 3: pressure (bar), 5: air temp (C), 7: water temp (C),
//	9: relative humidity, 11: dew point (C), 13: wind direction true,
//	17: wind speed (knots)
func decodeMDA(c *Context, s *Sentence) error {
	e := c.Environment
	var err error
	if e.PressureInches, err = measure(s.Field(1)); err != nil {
		return err
	}
	if e.PressureBar, err = measure(s.Field(3)); err != nil {
		return err
	}
	if e.AirTemperature, err = measure(s.Field(5)); err != nil {
		return err
	}
	if e.WaterTemperature, err = measure(s.Field(7)); err != nil {
		return err
	}
	if e.RelativeHumidity, err = measure(s.Field(9)); err != nil {
		return err
	}
	if e.DewPoint, err = measure(s.Field(11)); err != nil {
		return err
	}
	if e.WindDirectionTrue, err = measure(s.Field(13)); err != nil {
		return err
	}
	if e.WindSpeedKnots, err = measure(s.Field(17)); err != nil {
		return err
	}
	c.Environment = e
	return nil
}
