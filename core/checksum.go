package core

const hexDigits = "0123456789ABCDEF"

// IsMarker reports whether b starts a sentence: '$' for most talkers, '!'
// for encapsulated (AIS) sentences.
func IsMarker(b byte) bool {
	return b == '$' || b == '!'
}

// Checksum XORs every byte after the leading marker up to the first '*',
// or to the end of b when there is no '*'.
func Checksum(b []byte) byte {
	start := 0
	if len(b) > 0 && IsMarker(b[0]) {
		start = 1
	}
	var sum byte
	for i := start; i < len(b); i++ {
		if b[i] == '*' {
			break
		}
		sum ^= b[i]
	}
	return sum
}

// ExtractChecksum reads the two hex digits following the first '*'.
func ExtractChecksum(b []byte) (byte, error) {
	star := -1
	for i := 0; i < len(b); i++ {
		if b[i] == '*' {
			star = i
			break
		}
	}
	if star < 0 || len(b)-star-1 < 2 {
		return 0, ErrInvalidSentence
	}
	hi, ok := fromHex(b[star+1])
	if !ok {
		return 0, ErrInvalidSentence
	}
	lo, ok := fromHex(b[star+2])
	if !ok {
		return 0, ErrInvalidSentence
	}
	return hi<<4 | lo, nil
}

// ValidateChecksum compares the computed and transmitted checksums. A
// sentence without a checksum is valid.
func ValidateChecksum(b []byte) bool {
	want, err := ExtractChecksum(b)
	if err != nil {
		return true
	}
	return Checksum(b) == want
}

// AppendChecksum appends "*HH" for sentence to dst. sentence must not
// already contain a '*'.
func AppendChecksum(dst, sentence []byte) []byte {
	sum := Checksum(sentence)
	dst = append(dst, sentence...)
	return append(dst, '*', hexDigits[sum>>4], hexDigits[sum&0x0f])
}

func fromHex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
