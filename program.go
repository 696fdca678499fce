package calculator

import "encoding/json"

// Program returns the stack as a list of tokens, oldest first. Each token is
// the Symbol of its op.
func (b *Brain) Program() []string {
	p := make([]string, len(b.stack))
	for i, op := range b.stack {
		p[i] = op.Symbol()
	}
	return p
}

// SetProgram replaces the stack with the ops named by a list of tokens. p may
// be a []string or a []any holding only strings, such as a decoded JSON
// array; for anything else, SetProgram does nothing.
//
// Each token becomes the operator or constant with that symbol, if there is
// one; otherwise a number, if ParseNumber accepts it; otherwise a variable.
// Hence SetProgram(b.Program()) reproduces the stack, except that a variable
// whose name looks like a number or an operator comes back as one.
func (b *Brain) SetProgram(p any) {
	var toks []string
	switch p := p.(type) {
	case []string:
		toks = p
	case []any:
		toks = make([]string, len(p))
		for i, v := range p {
			s, ok := v.(string)
			if !ok {
				return
			}
			toks[i] = s
		}
	default:
		return
	}
	stack := make([]Op, 0, len(toks))
	for _, tok := range toks {
		if op, ok := b.known[tok]; ok {
			stack = append(stack, op)
			continue
		}
		if v, ok := ParseNumber(tok); ok {
			stack = append(stack, Number(v))
			continue
		}
		stack = append(stack, Variable(tok))
	}
	b.stack = stack
}

// MarshalJSON encodes the program of b as a JSON array of strings.
func (b *Brain) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Program())
}

// UnmarshalJSON decodes a JSON value and passes it to SetProgram. Invalid JSON
// is an error, but valid JSON that is not an array of strings leaves the stack
// unchanged.
func (b *Brain) UnmarshalJSON(data []byte) error {
	var p any
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if b.known == nil {
		// Zero Brain, e.g. a field of a struct being decoded.
		vars := b.Vars
		*b = *New()
		if vars != nil {
			b.Vars = vars
		}
	}
	b.SetProgram(p)
	return nil
}
