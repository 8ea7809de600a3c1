package parser

import (
	"unsafe"

	"github.com/vuuvv/vnmea/core"
)

// ErrorCallback observes parse failures. message is a static string; the
// callback must not retain userData beyond what the caller intends.
type ErrorCallback func(class core.ErrorClass, code core.ErrorKind, message string, userData any)

type Config struct {
	EnabledModules        core.ModuleMask
	ValidateChecksums     bool
	ErrorCallback         ErrorCallback
	ErrorCallbackUserData any
}

// DefaultConfig enables every module and checksum validation.
func DefaultConfig() Config {
	return Config{
		EnabledModules:    core.AllModules,
		ValidateChecksums: true,
	}
}

// Context is one parser instance: its configuration plus the state of every
// module. The zero value is uninitialized; call Init before Parse. A Context
// must not be used from several goroutines at once.
type Context struct {
	config      Config
	initialized bool
	sentence    Sentence
	last        SentenceID
	scratch     [core.MaxSentenceLen + 1]byte

	GNSS        GNSSState
	AIS         AISState
	Heading     HeadingState
	Depth       DepthState
	Wind        WindState
	Speed       SpeedState
	Navigation  NavigationState
	Environment EnvironmentState
	Garmin      GarminState
}

// NewContext returns an initialized, heap-owned context.
func NewContext(cfg Config) (*Context, error) {
	c := &Context{}
	if err := c.Init(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// RequiredBufferSize is the minimum scratch buffer length accepted by Parse.
func RequiredBufferSize() int {
	return core.MaxSentenceLen + 1
}

// ContextSize is the in-memory size of a Context.
func ContextSize() uintptr {
	return unsafe.Sizeof(Context{})
}

func ErrorString(kind core.ErrorKind) string {
	return kind.String()
}

// Init clears the context and stores cfg. It fails with ErrAlreadyInit until
// Cleanup has been called.
func (c *Context) Init(cfg Config) error {
	if c == nil {
		return core.ErrInvalidParam
	}
	if c.initialized {
		return core.ErrAlreadyInit
	}
	*c = Context{}
	c.config = cfg
	c.initialized = true
	return nil
}

// Cleanup zeroes the whole context. It is safe on nil, uninitialized and
// already cleaned contexts.
func (c *Context) Cleanup() {
	if c == nil {
		return
	}
	*c = Context{}
}

func (c *Context) Initialized() bool {
	return c != nil && c.initialized
}

func (c *Context) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.config
}

// LastSentence identifies the last sentence that was decoded successfully.
func (c *Context) LastSentence() SentenceID {
	if c == nil {
		return SentenceID{}
	}
	return c.last
}

func (c *Context) IsModuleEnabled(module core.ModuleID) bool {
	if !c.Initialized() {
		return false
	}
	return c.config.EnabledModules.Has(module) && ModuleCompiled(module)
}

// IsSentenceEnabled accepts either a bare sentence type ("GGA", "GRME") or a
// full sentence id ("GPGGA", "PGRME").
func (c *Context) IsSentenceEnabled(id string) bool {
	if !c.Initialized() {
		return false
	}
	typ := []byte(id)
	if len(typ) > 4 {
		_, t, err := core.ExtractSentenceParts(typ)
		if err != nil {
			return false
		}
		typ = t
	}
	e := lookup(typ)
	return e != nil && c.config.EnabledModules.Has(e.Module)
}

// ParseSentence parses using the context's own scratch buffer.
func (c *Context) ParseSentence(sentence []byte) error {
	if c == nil {
		return core.ErrInvalidParam
	}
	return c.Parse(sentence, c.scratch[:])
}

// Parse validates, tokenizes and dispatches one complete sentence. scratch
// must hold at least RequiredBufferSize bytes; its contents are overwritten.
// On failure no module state is modified.
func (c *Context) Parse(sentence, scratch []byte) error {
	if c == nil {
		return core.ErrInvalidParam
	}
	if !c.initialized {
		return core.ErrNotInit
	}
	if len(sentence) == 0 || len(sentence) > core.MaxSentenceLen {
		return c.fail(core.ErrInvalidSentence, "parse: sentence length out of range")
	}
	if len(scratch) < RequiredBufferSize() {
		return c.fail(core.ErrBufferTooSmall, "parse: scratch buffer too small")
	}
	if c.config.ValidateChecksums && !core.ValidateChecksum(sentence) {
		return c.fail(core.ErrChecksumFailed, "parse: checksum mismatch")
	}

	n := copy(scratch, sentence)
	scratch[n] = 0

	s := &c.sentence
	s.reset()
	// s aliases scratch, drop it before returning
	defer s.reset()
	if err := core.TokenizeInto(&s.tokens, scratch[:n]); err != nil {
		return c.fail(core.KindOf(err), "parse: tokenize failed")
	}

	talker, typ, err := core.ExtractSentenceParts(s.tokens.Field(0))
	if err != nil {
		return c.fail(core.ErrInvalidSentence, "parse: malformed sentence id")
	}
	s.TalkerID = core.ValidateTalker(talker)
	if s.TalkerID == core.TalkerUnknown {
		return c.fail(core.ErrInvalidSentence, "parse: unknown talker")
	}
	s.Marker = scratch[0]
	s.Talker = core.B2S(talker)
	s.Type = core.B2S(typ)

	e := lookup(typ)
	if e == nil {
		if catalogued(typ) {
			return c.fail(core.ErrSentenceDisabled, "parse: sentence type not compiled in")
		}
		return c.fail(core.ErrUnknownSentence, "parse: unknown sentence type")
	}
	if !c.config.EnabledModules.Has(e.Module) {
		return c.fail(core.ErrModuleDisabled, "parse: module disabled")
	}
	if s.tokens.Len() < e.MinFields {
		return c.fail(core.ErrTooFewFields, "parse: too few fields for sentence type")
	}
	if err := e.Decode(c, s); err != nil {
		return c.fail(core.KindOf(err), "parse: decoder rejected sentence")
	}
	c.last.set(s)
	return nil
}

func (c *Context) fail(kind core.ErrorKind, message string) error {
	if cb := c.config.ErrorCallback; cb != nil {
		cb(kind.Class(), kind, message, c.config.ErrorCallbackUserData)
	}
	return kind
}
