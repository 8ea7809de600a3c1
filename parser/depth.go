//go:build !vnmea_no_depth

package parser

import "github.com/vuuvv/vnmea/core"

var depthEntries = []Entry{
	{Type: "DBT", Decode: decodeDBT, Module: core.ModuleDepth, MinFields: 7},
	{Type: "DPT", Decode: decodeDPT, Module: core.ModuleDepth, MinFields: 3},
}

// DBT: Depth Below Transducer
//
//	1: feet, 2: 'f', 3: meters, 4: 'M', 5: fathoms, 6: 'F'
func decodeDBT(c *Context, s *Sentence) error {
	d := c.Depth
	var err error
	if d.Feet, err = measure(s.Field(1)); err != nil {
		return err
	}
	if d.Meters, err = measure(s.Field(3)); err != nil {
		return err
	}
	if d.Fathoms, err = measure(s.Field(5)); err != nil {
		return err
	}
	if !d.Feet.Valid && !d.Meters.Valid && !d.Fathoms.Valid {
		return core.ErrNoData
	}
	c.Depth = d
	return nil
}

// DPT: Depth
//
//	1: depth below transducer (m), 2: transducer offset (m), 3: max range (m)
func decodeDPT(c *Context, s *Sentence) error {
	d := c.Depth
	v, err := core.ParseFloat(s.Field(1))
	if err != nil {
		return err
	}
	d.Depth = Measure{Value: v, Valid: true}
	if d.Offset, err = measure(s.Field(2)); err != nil {
		return err
	}
	if d.MaxRange, err = measure(s.Field(3)); err != nil {
		return err
	}
	c.Depth = d
	return nil
}
