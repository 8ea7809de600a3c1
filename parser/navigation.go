//go:build !vnmea_no_navigation

package parser

import "github.com/vuuvv/vnmea/core"

var navigationEntries = []Entry{
	{Type: "RMB", Decode: decodeRMB, Module: core.ModuleNavigation, MinFields: 14},
	{Type: "XTE", Decode: decodeXTE, Module: core.ModuleNavigation, MinFields: 6},
	{Type: "BOD", Decode: decodeBOD, Module: core.ModuleNavigation, MinFields: 6},
}

func steer(m Measure, dir []byte) (Measure, byte, error) {
	d, err := char(dir)
	if err != nil {
		return Measure{}, 0, err
	}
	switch d {
	case 0, 'L', 'R':
	default:
		return Measure{}, 0, core.ErrParseFailed
	}
	return m, d, nil
}

// RMB: Recommended Minimum Navigation Information
//
//	1: status, 2: cross track (nm), 3: steer L/R, 4: origin id, 5: destination id,
//	6-9: destination position, 10: range (nm), 11: bearing true,
//	12: closing velocity (knots), 13: arrival status
func decodeRMB(c *Context, s *Sentence) error {
	n := c.Navigation
	status, err := char(s.Field(1))
	if err != nil {
		return err
	}
	n.Active = status == 'A'
	xte, err := measure(s.Field(2))
	if err != nil {
		return err
	}
	if n.CrossTrack, n.SteerDirection, err = steer(xte, s.Field(3)); err != nil {
		return err
	}
	if len(s.Field(4)) > MaxWaypointID || len(s.Field(5)) > MaxWaypointID {
		return core.ErrParseFailed
	}
	n.Origin.set(s.Field(4))
	n.Destination.set(s.Field(5))
	if n.DestLatitude, n.DestLongitude, err = position(s, 6); err != nil {
		return err
	}
	if n.Range, err = measure(s.Field(10)); err != nil {
		return err
	}
	if n.Bearing, err = measure(s.Field(11)); err != nil {
		return err
	}
	if n.ClosingSpeed, err = measure(s.Field(12)); err != nil {
		return err
	}
	arrival, err := char(s.Field(13))
	if err != nil {
		return err
	}
	n.Arrived = arrival == 'A'
	c.Navigation = n
	return nil
}

// XTE: Cross-Track Error, Measured
//
//	1: status, 2: cycle lock status, 3: magnitude, 4: steer L/R, 5: 'N'
func decodeXTE(c *Context, s *Sentence) error {
	n := c.Navigation
	status, err := char(s.Field(1))
	if err != nil {
		return err
	}
	n.Active = status == 'A'
	xte, err := measure(s.Field(3))
	if err != nil {
		return err
	}
	if n.CrossTrack, n.SteerDirection, err = steer(xte, s.Field(4)); err != nil {
		return err
	}
	c.Navigation = n
	return nil
}

// BOD: Bearing Origin to Destination
//
//	1: bearing true, 3: bearing magnetic, 5: destination id, 6: origin id
func decodeBOD(c *Context, s *Sentence) error {
	n := c.Navigation
	var err error
	if n.BearingTrue, err = measure(s.Field(1)); err != nil {
		return err
	}
	if n.BearingMagnetic, err = measure(s.Field(3)); err != nil {
		return err
	}
	if len(s.Field(5)) > MaxWaypointID || len(s.Field(6)) > MaxWaypointID {
		return core.ErrParseFailed
	}
	n.Destination.set(s.Field(5))
	n.Origin.set(s.Field(6))
	c.Navigation = n
	return nil
}
