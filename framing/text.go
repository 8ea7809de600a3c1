package framing

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vnmea/core"
)

const (
	DefaultMarkers = "$!"
	// DefaultMaxLen leaves room for the CR LF after a maximal sentence.
	DefaultMaxLen = core.MaxSentenceLen + 2
)

// LineRule splits a byte stream into candidate NMEA sentences: a marker
// byte up to the line end. Anything between sentences is abandoned.
type LineRule struct {
	Markers string `yaml:"markers"` // 起始符, 默认 "$!"
	MaxLen  int    `yaml:"max_len"` // 无行尾时的最大长度
}

func NewLineRule() *LineRule {
	rule := &LineRule{}
	_ = rule.Setup()
	return rule
}

func (this *LineRule) Setup() error {
	if this.Markers == "" {
		this.Markers = DefaultMarkers
	}
	for i := 0; i < len(this.Markers); i++ {
		if this.Markers[i] == '\r' || this.Markers[i] == '\n' || this.Markers[i] == ',' {
			return errors.Errorf("LineRule.Setup: invalid marker %q", this.Markers[i])
		}
	}
	if this.MaxLen == 0 {
		this.MaxLen = DefaultMaxLen
	}
	if this.MaxLen < 0 {
		return errors.Errorf("LineRule.Setup: max_len should not be negative: %d", this.MaxLen)
	}
	return nil
}

func (this *LineRule) isMarker(b byte) bool {
	return strings.IndexByte(this.Markers, b) >= 0
}

// Split returns nil while more data is needed.
func (this *LineRule) Split(data []byte, atEOF bool) *MatchResult {
	if len(data) == 0 {
		return nil
	}

	if !this.isMarker(data[0]) {
		next := bytes.IndexAny(data, this.Markers)
		if next < 0 {
			next = len(data)
		}
		return AbandonMatchResult(next, data)
	}

	for i := 1; i < len(data); i++ {
		switch c := data[i]; {
		case c == '\n':
			return NewMatchResult(i+1, trimLineEnd(data[:i]))
		case this.isMarker(c):
			// 上一条语句被截断
			return NewMatchResult(i, trimLineEnd(data[:i]))
		}
	}

	if len(data) > this.MaxLen {
		return AbandonMatchResult(len(data), data)
	}
	if atEOF {
		return NewMatchResult(len(data), trimLineEnd(data))
	}
	return nil
}

// Splitter adapts Split to bufio.Scanner. Abandoned runs are returned as
// tokens that do not start with a marker, except for over-long candidates.
func (this *LineRule) Splitter() bufio.SplitFunc {
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		res := this.Split(data, atEOF)
		if res == nil {
			return 0, nil, nil
		}
		return res.Advance, res.Token, nil
	}
}

func trimLineEnd(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\r' || b[len(b)-1] == '\n') {
		b = b[:len(b)-1]
	}
	return b
}
