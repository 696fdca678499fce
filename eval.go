package calculator

// Evaluate evaluates the stack. There are three outcomes: a result with ok
// true and a nil error; an error, e.g. a variable that is not set or an
// operand outside an operator's domain, with ok false; or neither, meaning the
// stack is empty or its top operator is still waiting for operands.
//
// Evaluation starts from the most recently pushed op and consumes only what
// that op needs, so anything beneath the topmost complete expression is
// ignored.
func (b *Brain) Evaluate() (float64, bool, error) {
	r, ok, _, err := b.eval(b.stack)
	return r, ok, err
}

// eval evaluates the expression at the top of ops. It returns the ops beneath
// that expression. ops is never modified; rest is always a prefix of it.
func (b *Brain) eval(ops []Op) (r float64, ok bool, rest []Op, err error) {
	if len(ops) == 0 {
		return 0, false, ops, nil
	}
	op := ops[len(ops)-1]
	rest = ops[:len(ops)-1]
	switch op.kind {
	case OpNumber, OpConstant:
		return op.val, true, rest, nil
	case OpVariable:
		v, ok := b.Vars[op.sym]
		if !ok {
			return 0, false, rest, &Error{Kind: VariableNotSet, Symbol: op.sym}
		}
		return v, true, rest, nil
	case OpUnary:
		x, ok, rest, err := b.eval(rest)
		if err != nil || !ok {
			return 0, false, rest, err
		}
		if op.check1 != nil {
			if k := op.check1(x); k != NoError {
				return 0, false, rest, &Error{Kind: k, Symbol: op.sym}
			}
		}
		return op.unary(x), true, rest, nil
	case OpBinary:
		// The first operand found is the one pushed last, i.e. the right.
		y, ok, rest, err := b.eval(rest)
		if err != nil || !ok {
			return 0, false, rest, err
		}
		x, ok, rest, err := b.eval(rest)
		if err != nil {
			return 0, false, rest, err
		}
		if !ok {
			return 0, false, rest, &Error{Kind: NotEnoughOperands, Symbol: op.sym}
		}
		if op.check2 != nil {
			if k := op.check2(x, y); k != NoError {
				return 0, false, rest, &Error{Kind: k, Symbol: op.sym}
			}
		}
		return op.binary(x, y), true, rest, nil
	default:
		panic("calculator: invalid op kind " + op.kind.String())
	}
}
