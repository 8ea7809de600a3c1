//go:build !vnmea_no_speed

package parser

import "github.com/vuuvv/vnmea/core"

var speedEntries = []Entry{
	{Type: "VHW", Decode: decodeVHW, Module: core.ModuleSpeed, MinFields: 9},
	{Type: "VLW", Decode: decodeVLW, Module: core.ModuleSpeed, MinFields: 5},
}

// VHW: Water Speed and Heading
//
//	1: heading true, 3: heading magnetic, 5: speed knots, 7: speed km/h
func decodeVHW(c *Context, s *Sentence) error {
	v := c.Speed
	var err error
	if v.HeadingTrue, err = measure(s.Field(1)); err != nil {
		return err
	}
	if v.HeadingMagnetic, err = measure(s.Field(3)); err != nil {
		return err
	}
	if v.WaterKnots, err = measure(s.Field(5)); err != nil {
		return err
	}
	if v.WaterKmh, err = measure(s.Field(7)); err != nil {
		return err
	}
	c.Speed = v
	return nil
}

// VLW: Distance Traveled through Water
//
//	1: total (nm), 3: since reset (nm), 5: total over ground, 7: ground since reset
func decodeVLW(c *Context, s *Sentence) error {
	v := c.Speed
	var err error
	if v.TotalDistance, err = measure(s.Field(1)); err != nil {
		return err
	}
	if v.TripDistance, err = measure(s.Field(3)); err != nil {
		return err
	}
	if v.GroundTotalDistance, err = measure(s.Field(5)); err != nil {
		return err
	}
	if v.GroundTripDistance, err = measure(s.Field(7)); err != nil {
		return err
	}
	c.Speed = v
	return nil
}
