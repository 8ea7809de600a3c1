package core

// SixBit de-armors one AIS payload character into its 6-bit value.
func SixBit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= 'W':
		return c - 48, true
	case c >= '`' && c <= 'w':
		return c - 56, true
	}
	return 0, false
}

// PayloadBits reads n (<= 32) bits starting at bit offset start from an
// armored AIS payload.
func PayloadBits(payload []byte, start, n int) (uint32, error) {
	if n <= 0 || n > 32 || start < 0 {
		return 0, ErrInvalidParam
	}
	if (start+n+5)/6 > len(payload) {
		return 0, ErrNoData
	}
	var v uint32
	for bit := start; bit < start+n; bit++ {
		six, ok := SixBit(payload[bit/6])
		if !ok {
			return 0, ErrParseFailed
		}
		v = v<<1 | uint32(six>>(5-bit%6))&1
	}
	return v, nil
}
