package parser

import "github.com/vuuvv/vnmea/core"

// Sentence is the tokenized form of the sentence being decoded. It is reset
// when Parse returns.
type Sentence struct {
	Marker   byte
	TalkerID core.TalkerID
	// Talker and Type are core.B2S views of the scratch buffer, as is every
	// Field. Copy them to keep them past the decode call.
	Talker string
	Type   string
	tokens core.Tokens
}

// Len is the token count, sentence-id field included.
func (s *Sentence) Len() int {
	return s.tokens.Len()
}

// Field returns field i counted the NMEA way: 0 is the sentence id, 1 the
// first data field. Missing trailing fields read as empty.
func (s *Sentence) Field(i int) []byte {
	return s.tokens.Field(i)
}

func (s *Sentence) reset() {
	*s = Sentence{}
}

// SentenceID identifies a dispatched sentence without referencing the
// scratch buffer.
type SentenceID struct {
	Marker byte
	Talker core.TalkerID
	typ    [8]byte
	n      uint8
}

func (id SentenceID) Type() string {
	return string(id.typ[:id.n])
}

func (id SentenceID) String() string {
	return id.Talker.String() + id.Type()
}

func (id *SentenceID) set(s *Sentence) {
	id.Marker = s.Marker
	id.Talker = s.TalkerID
	id.n = uint8(copy(id.typ[:], s.Type))
}
