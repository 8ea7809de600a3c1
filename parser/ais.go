//go:build !vnmea_no_ais

package parser

import "github.com/vuuvv/vnmea/core"

var aisEntries = []Entry{
	{Type: "VDM", Decode: decodeVDM, Module: core.ModuleAIS, MinFields: 7},
	{Type: "VDO", Decode: decodeVDO, Module: core.ModuleAIS, MinFields: 7},
}

func decodeVDM(c *Context, s *Sentence) error {
	return decodeVDx(c, s, false)
}

func decodeVDO(c *Context, s *Sentence) error {
	return decodeVDx(c, s, true)
}

// VDM/VDO: AIS VHF Data-link Message (other vessels / own vessel)
//
//	1: fragment count, 2: fragment number, 3: sequential message id,
//	4: channel, 5: armored payload, 6: fill bits
//
// Fragments are not reassembled; the message type and MMSI are taken from
// the first fragment.
func decodeVDx(c *Context, s *Sentence, own bool) error {
	a := c.AIS
	var err error
	a.Own = own
	if a.FragmentCount, err = core.ParseInteger[uint8](s.Field(1)); err != nil {
		return err
	}
	if a.FragmentNumber, err = core.ParseInteger[uint8](s.Field(2)); err != nil {
		return err
	}
	if a.FragmentCount < 1 || a.FragmentNumber < 1 || a.FragmentNumber > a.FragmentCount {
		return core.ErrParseFailed
	}
	if a.SequenceID, err = count(s.Field(3)); err != nil {
		return err
	}
	if a.Channel, err = char(s.Field(4)); err != nil {
		return err
	}

	payload := s.Field(5)
	if len(payload) == 0 {
		return core.ErrNoData
	}
	for _, ch := range payload {
		if _, ok := core.SixBit(ch); !ok {
			return core.ErrParseFailed
		}
	}
	fill, err := core.ParseInteger[uint8](s.Field(6))
	if err = optional(err); err != nil {
		return err
	}
	if fill > 5 {
		return core.ErrParseFailed
	}
	a.FillBits = fill
	a.payloadLen = uint8(copy(a.payload[:], payload))

	if a.FragmentNumber == 1 {
		a.HeaderValid = false
		a.MessageType = 0
		a.MMSI = 0
		if typ, err := core.PayloadBits(payload, 0, 6); err == nil {
			a.MessageType = uint8(typ)
			if mmsi, err := core.PayloadBits(payload, 8, 30); err == nil {
				a.MMSI = mmsi
				a.HeaderValid = true
			}
		}
	}
	c.AIS = a
	return nil
}
