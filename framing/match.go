package framing

type MatchResult struct {
	Abandoned bool
	Advance   int
	Token     []byte
}

func NewMatchResult(advance int, token []byte) *MatchResult {
	return &MatchResult{
		Advance: advance,
		Token:   token,
	}
}

// AbandonMatchResult 表示丢弃 size 个字节
func AbandonMatchResult(size int, data []byte) *MatchResult {
	return &MatchResult{
		Abandoned: true,
		Advance:   size,
		Token:     data[:size],
	}
}
