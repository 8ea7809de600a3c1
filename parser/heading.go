//go:build !vnmea_no_heading

package parser

import "github.com/vuuvv/vnmea/core"

var headingEntries = []Entry{
	{Type: "HDT", Decode: decodeHDT, Module: core.ModuleHeading, MinFields: 2},
	{Type: "HDG", Decode: decodeHDG, Module: core.ModuleHeading, MinFields: 6},
	{Type: "HDM", Decode: decodeHDM, Module: core.ModuleHeading, MinFields: 2},
	{Type: "ROT", Decode: decodeROT, Module: core.ModuleHeading, MinFields: 3},
}

// HDT: 1: heading true, 2: 'T'
func decodeHDT(c *Context, s *Sentence) error {
	v, err := core.ParseFloat(s.Field(1))
	if err != nil {
		return err
	}
	c.Heading.True = Measure{Value: v, Valid: true}
	return nil
}

// HDM: 1: heading magnetic, 2: 'M'
func decodeHDM(c *Context, s *Sentence) error {
	v, err := core.ParseFloat(s.Field(1))
	if err != nil {
		return err
	}
	c.Heading.Magnetic = Measure{Value: v, Valid: true}
	return nil
}

// HDG: Heading, Deviation and Variation
//
//	1: magnetic sensor heading, 2: deviation, 3: E/W, 4: variation, 5: E/W
func decodeHDG(c *Context, s *Sentence) error {
	h := c.Heading
	var err error
	if h.Magnetic, err = measure(s.Field(1)); err != nil {
		return err
	}
	deviation, err := measure(s.Field(2))
	if err != nil {
		return err
	}
	if h.Deviation, err = signed(deviation, s.Field(3), 'W'); err != nil {
		return err
	}
	variation, err := measure(s.Field(4))
	if err != nil {
		return err
	}
	if h.Variation, err = signed(variation, s.Field(5), 'W'); err != nil {
		return err
	}
	c.Heading = h
	return nil
}

// ROT: Rate of Turn
//
//	1: degrees per minute, negative to port, 2: status A/V
func decodeROT(c *Context, s *Sentence) error {
	v, err := core.ParseFloat(s.Field(1))
	if err != nil {
		return err
	}
	status, err := char(s.Field(2))
	if err != nil {
		return err
	}
	c.Heading.RateOfTurn = Measure{Value: v, Valid: true}
	c.Heading.RateValid = status == 'A'
	return nil
}
