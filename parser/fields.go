package parser

import "github.com/vuuvv/vnmea/core"

// optional turns ErrNoData into success; absent fields are simply left
// invalid.
func optional(err error) error {
	if err == core.ErrNoData {
		return nil
	}
	return err
}

func measure(tok []byte) (Measure, error) {
	v, err := core.ParseFloat(tok)
	if err != nil {
		return Measure{}, optional(err)
	}
	return Measure{Value: v, Valid: true}, nil
}

func count(tok []byte) (Count, error) {
	v, err := core.ParseInt(tok)
	if err != nil {
		return Count{}, optional(err)
	}
	return Count{Value: v, Valid: true}, nil
}

func char(tok []byte) (byte, error) {
	c, err := core.ParseChar(tok)
	return c, optional(err)
}

func coordinate(value, hemisphere []byte) (core.Coordinate, error) {
	c, err := core.ParseCoordinate(value, hemisphere)
	return c, optional(err)
}

func timeOfDay(tok []byte) (core.Time, error) {
	t, err := core.ParseTime(tok)
	return t, optional(err)
}

// signed applies an E/W style direction to m: west (or the given negative
// letter) flips the sign.
func signed(m Measure, dir []byte, negative byte) (Measure, error) {
	if !m.Valid {
		return m, nil
	}
	d, err := char(dir)
	if err != nil {
		return Measure{}, err
	}
	if d == negative {
		m.Value = -m.Value
	}
	return m, nil
}

// position reads a lat/hemisphere/lon/hemisphere group starting at field i.
func position(s *Sentence, i int) (lat, lon core.Coordinate, err error) {
	if lat, err = coordinate(s.Field(i), s.Field(i+1)); err != nil {
		return
	}
	lon, err = coordinate(s.Field(i+2), s.Field(i+3))
	return
}
