package codec

import (
	"bufio"
	"bytes"
	"io"
	"time"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vnmea/core"
	"github.com/vuuvv/vnmea/framing"
	"github.com/vuuvv/vnmea/parser"
	"github.com/vuuvv/vnmea/utils"
)

const DefaultHistorySize = 10

type ScanResult struct {
	Abandoned   bool      `json:"abandoned,omitempty"`
	Packet      []byte    `json:"packet,omitempty"`
	Talker      string    `json:"talker,omitempty"`
	Type        string    `json:"type,omitempty"`
	Filtered    bool      `json:"filtered,omitempty"`
	ScanError   error     `json:"scanError,omitempty"`
	HandleError error     `json:"handleError,omitempty"`
	Start       time.Time `json:"start,omitempty"`
	End         time.Time `json:"end,omitempty"`
}

// Kind is the parser error kind of ScanError, OK when the sentence decoded.
func (r *ScanResult) Kind() core.ErrorKind {
	return core.KindOf(r.ScanError)
}

type ScanResultHandler func(result *ScanResult) error

// Codec feeds the sentences of a stream into one parser.Context. Like the
// Context it drives, a Codec is not safe for concurrent Scan calls.
type Codec struct {
	ctx     *parser.Context
	rule    *framing.LineRule
	filter  *Filter
	stream  io.Reader
	scratch []byte
	history *utils.LockFreeCircularBuffer[ScanResult]
}

// NewCodec scans into ctx; a nil ctx gets a fresh context with DefaultConfig.
func NewCodec(ctx *parser.Context) *Codec {
	if ctx == nil {
		ctx, _ = parser.NewContext(parser.DefaultConfig())
	}
	return &Codec{
		ctx:     ctx,
		rule:    framing.NewLineRule(),
		scratch: make([]byte, parser.RequiredBufferSize()),
		history: utils.NewLockFreeCircularBuffer[ScanResult](DefaultHistorySize),
	}
}

func (this *Codec) Context() *parser.Context {
	return this.ctx
}

func (this *Codec) Rule(rule *framing.LineRule) *Codec {
	if rule != nil {
		this.rule = rule
	}
	return this
}

func (this *Codec) Filter(filter *Filter) *Codec {
	this.filter = filter
	return this
}

func (this *Codec) Stream(stream io.Reader) *Codec {
	this.stream = stream
	return this
}

// Histories returns the most recent results, oldest first.
func (this *Codec) Histories() []*ScanResult {
	return this.history.GetAll()
}

func (this *Codec) Scan(fn ScanResultHandler) error {
	if this.stream == nil {
		return errors.New("codec: no stream")
	}
	if !this.ctx.Initialized() {
		return core.ErrNotInit
	}

	abandoned := false
	scanner := bufio.NewScanner(this.stream)
	scanner.Split(this.Splitter(&abandoned))

	for scanner.Scan() {
		result := &ScanResult{Packet: bytes.Clone(scanner.Bytes()), Start: time.Now()}
		if abandoned {
			result.Abandoned = true
			this.EmitResult(result, fn)
			continue
		}
		this.parse(result)
		this.EmitResult(result, fn)
	}

	if err := scanner.Err(); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (this *Codec) parse(result *ScanResult) {
	if this.filter != nil {
		tokens, err := core.Tokenize(result.Packet)
		if err == nil {
			if talker, typ, err := core.ExtractSentenceParts(tokens.Field(0)); err == nil {
				result.Talker, result.Type = string(talker), string(typ)
				accept, err := this.filter.Accept(result.Talker, result.Type, fieldStrings(&tokens))
				if err != nil {
					result.ScanError = err
					return
				}
				if !accept {
					result.Filtered = true
					return
				}
			}
		}
	}

	if err := this.ctx.Parse(result.Packet, this.scratch); err != nil {
		result.ScanError = err
		return
	}
	last := this.ctx.LastSentence()
	result.Talker, result.Type = last.Talker.String(), last.Type()
}

func (this *Codec) EmitResult(result *ScanResult, fn ScanResultHandler) {
	this.history.Add(result)
	// history 中保存的是指针, 之后的修改同样可见
	if fn != nil {
		if err := fn(result); err != nil {
			result.HandleError = err
		}
	}
	result.End = time.Now()
}

// Splitter wraps the framing rule, reporting through abandoned whether the
// token just returned was discarded input.
func (this *Codec) Splitter(abandoned *bool) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		res := this.rule.Split(data, atEOF)
		if res == nil {
			return 0, nil, nil
		}
		*abandoned = res.Abandoned
		return res.Advance, res.Token, nil
	}
}

func fieldStrings(tokens *core.Tokens) []string {
	fields := make([]string, 0, tokens.Len())
	for i := 1; i < tokens.Len(); i++ {
		fields = append(fields, string(tokens.Field(i)))
	}
	return fields
}
