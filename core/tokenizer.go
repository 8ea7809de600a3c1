package core

const (
	// MaxSentenceLen is the longest sentence accepted, CR/LF included. The
	// NMEA-0183 limit is 82; AIS payloads from some transceivers run longer.
	MaxSentenceLen = 128
	// MaxFields is the token ceiling, sentence-id field included.
	MaxFields = 32
)

// Span locates one token inside the tokenized buffer.
type Span struct {
	Start uint16
	End   uint16
}

// Tokens holds the fields of one sentence as spans into the buffer that was
// tokenized. It is only valid while that buffer is left untouched.
type Tokens struct {
	buf   []byte
	spans [MaxFields]Span
	n     int
}

func (t *Tokens) Len() int {
	return t.n
}

// Field returns token i, or nil when i is out of range. Token 0 is the
// sentence-id field.
func (t *Tokens) Field(i int) []byte {
	if i < 0 || i >= t.n {
		return nil
	}
	s := t.spans[i]
	return t.buf[s.Start:s.End:s.End]
}

func (t *Tokens) Span(i int) Span {
	if i < 0 || i >= t.n {
		return Span{}
	}
	return t.spans[i]
}

func (t *Tokens) Reset() {
	*t = Tokens{}
}

// Tokenize splits buf into comma separated fields in place. buf must start
// with a sentence marker; the payload ends at the first '*', CR, LF, NUL or
// at the end of buf.
func Tokenize(buf []byte) (Tokens, error) {
	var t Tokens
	err := TokenizeInto(&t, buf)
	return t, err
}

// TokenizeInto is Tokenize writing into an existing Tokens.
func TokenizeInto(t *Tokens, buf []byte) error {
	t.Reset()
	if len(buf) == 0 || !IsMarker(buf[0]) {
		return ErrInvalidSentence
	}
	if len(buf) > 0xffff {
		return ErrInvalidSentence
	}

	end := len(buf)
	for i := 1; i < len(buf); i++ {
		c := buf[i]
		if c == '*' || c == '\r' || c == '\n' || c == 0 {
			end = i
			break
		}
	}
	if end <= 1 {
		return ErrInvalidSentence
	}

	t.buf = buf
	start := 1
	for i := 1; i < end; i++ {
		if buf[i] != ',' {
			continue
		}
		if t.n == MaxFields-1 {
			// the field after this comma would exceed the ceiling
			return t.overflow()
		}
		t.spans[t.n] = Span{Start: uint16(start), End: uint16(i)}
		t.n++
		start = i + 1
	}
	t.spans[t.n] = Span{Start: uint16(start), End: uint16(end)}
	t.n++
	return nil
}

func (t *Tokens) overflow() error {
	t.Reset()
	return ErrTooManyFields
}
