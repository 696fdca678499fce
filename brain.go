package calculator

// Brain is a reverse-Polish calculator. It is not safe to use a Brain
// concurrently.
type Brain struct {
	// Vars holds the values of variables. It is consulted, not copied, each
	// time the stack is evaluated, so callers may change it at any time.
	Vars map[string]float64

	stack []Op
	known map[string]Op
}

// Option is an option used when creating a Brain.
type Option interface {
	brainOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt  map[string]float64
	learnopt []Op
)

func (varopt) brainOption()   {}
func (varsopt) brainOption()  {}
func (learnopt) brainOption() {}

// SetVar sets the value of a variable in the new Brain.
func SetVar(name string, val float64) Option {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the new Brain.
func SetVars(vars map[string]float64) Option {
	return varsopt(vars)
}

// Learn adds operators or constants to the new Brain, keyed by their symbols.
// An op with the same symbol as a default operator replaces it. Numbers and
// variables are not operators and cannot be learned, nor can operators with a
// nil function.
func Learn(ops ...Op) Option {
	return learnopt(ops)
}

// Scientific adds xʸ, eˣ, ln, tan, x², 1/x, ±, and the constant e to the new
// Brain.
func Scientific() Option {
	return learnopt(scientificOps())
}

// New creates a Brain with an empty stack that knows +, −, ×, ÷, √, sin, cos,
// and π, along with anything added by options.
func New(opts ...Option) *Brain {
	b := Brain{
		Vars:  make(map[string]float64),
		known: make(map[string]Op),
	}
	learn := func(ops []Op) {
		for _, op := range ops {
			switch {
			case op.kind == OpConstant,
				op.kind == OpUnary && op.unary != nil,
				op.kind == OpBinary && op.binary != nil:
				b.known[op.sym] = op
			default:
				panic("calculator: cannot learn " + op.kind.String() + " " + op.Symbol())
			}
		}
	}
	learn(defaultOps())
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			b.Vars[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				b.Vars[k] = v
			}
		case learnopt:
			learn(opt)
		default:
			panic("calculator: unknown option type")
		}
	}
	return &b
}

// Set sets the value of a variable. Returns b for chaining.
func (b *Brain) Set(name string, value float64) *Brain {
	if b.Vars == nil {
		b.Vars = make(map[string]float64)
	}
	b.Vars[name] = value
	return b
}

// Lookup returns the value of a variable and whether it is set.
func (b *Brain) Lookup(name string) (float64, bool) {
	v, ok := b.Vars[name]
	return v, ok
}

// Known returns whether symbol names an operator or constant of b.
func (b *Brain) Known(symbol string) bool {
	_, ok := b.known[symbol]
	return ok
}

// Symbols returns the symbols of all operators and constants of b, in no
// particular order.
func (b *Brain) Symbols() []string {
	r := make([]string, 0, len(b.known))
	for k := range b.known {
		r = append(r, k)
	}
	return r
}

// Len returns the number of ops on the stack.
func (b *Brain) Len() int {
	return len(b.stack)
}

// PushOperand pushes a number and evaluates the stack.
func (b *Brain) PushOperand(v float64) (float64, bool, error) {
	b.stack = append(b.stack, Number(v))
	return b.Evaluate()
}

// PushVariable pushes a variable and evaluates the stack.
func (b *Brain) PushVariable(name string) (float64, bool, error) {
	b.stack = append(b.stack, Variable(name))
	return b.Evaluate()
}

// PerformOperation pushes the operator or constant named by symbol, then
// evaluates the stack. Unknown symbols push nothing, but the stack is still
// evaluated.
func (b *Brain) PerformOperation(symbol string) (float64, bool, error) {
	if op, ok := b.known[symbol]; ok {
		b.stack = append(b.stack, op)
	}
	return b.Evaluate()
}

// RemoveLast removes the most recently pushed op. It does nothing if the stack
// is empty.
func (b *Brain) RemoveLast() {
	if len(b.stack) == 0 {
		return
	}
	b.stack[len(b.stack)-1] = Op{}
	b.stack = b.stack[:len(b.stack)-1]
}

// Clear empties the stack and unsets all variables.
func (b *Brain) Clear() {
	for i := range b.stack {
		b.stack[i] = Op{}
	}
	b.stack = b.stack[:0]
	for k := range b.Vars {
		delete(b.Vars, k)
	}
}
