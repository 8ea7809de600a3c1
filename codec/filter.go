package codec

import (
	"github.com/google/cel-go/cel"
	"github.com/spf13/cast"
	"github.com/vuuvv/errors"
)

// Filter decides which sentences reach the parser. The expression sees
//
//	talker   string        "GP", "P" for proprietary sentences
//	sentence string        the sentence type, "GGA", "GRME"
//	fields   list(string)  the data fields, sentence id excluded
//
// and must evaluate to a bool.
type Filter struct {
	expr string
	prg  cel.Program
}

func CompileFilter(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Variable("talker", cel.StringType),
		cel.Variable("sentence", cel.StringType),
		cel.Variable("fields", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Wrapf(issues.Err(), "filter: compile '%s'", expr)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

func (this *Filter) String() string {
	return this.expr
}

// Accept evaluates the filter; a nil filter accepts everything.
func (this *Filter) Accept(talker, sentence string, fields []string) (bool, error) {
	if this == nil {
		return true, nil
	}
	out, _, err := this.prg.Eval(map[string]any{
		"talker":   talker,
		"sentence": sentence,
		"fields":   fields,
	})
	if err != nil {
		return false, errors.WithStack(err)
	}
	ok, err := cast.ToBoolE(out.Value())
	if err != nil {
		return false, errors.Wrapf(err, "filter: '%s' did not produce a bool", this.expr)
	}
	return ok, nil
}
