package calculator

import "strings"

// Describe renders the stack as infix text. Each complete expression on the
// stack is rendered separately, oldest first, joined by ", ". Missing operands
// of binary operators show as "?".
//
// A binary operation is parenthesized when it is an operand of a different
// binary operator. This is not precedence: "3 4 × 2 +" renders as
// "(3.0 × 4.0) + 2.0", while "3 4 2 − −" renders as "3.0 − 4.0 − 2.0" even
// though it means 3 − (4 − 2).
func (b *Brain) Describe() string {
	var exprs []string
	rest := b.stack
	for len(rest) > 0 {
		var sb strings.Builder
		rest = describe(&sb, rest, nil)
		exprs = append(exprs, sb.String())
	}
	for i, j := 0, len(exprs)-1; i < j; i, j = i+1, j-1 {
		exprs[i], exprs[j] = exprs[j], exprs[i]
	}
	return strings.Join(exprs, ", ")
}

func (b *Brain) String() string {
	return b.Describe()
}

// describe writes the expression at the top of ops and returns the ops
// beneath it. parent is the operator that takes the expression as an operand,
// or nil. Nothing is written if ops is empty.
func describe(sb *strings.Builder, ops []Op, parent *Op) []Op {
	if len(ops) == 0 {
		return ops
	}
	op := ops[len(ops)-1]
	rest := ops[:len(ops)-1]
	switch op.kind {
	case OpNumber, OpVariable, OpConstant:
		sb.WriteString(op.Symbol())
	case OpUnary:
		sb.WriteString(op.sym)
		sb.WriteByte('(')
		rest = describe(sb, rest, &op)
		sb.WriteByte(')')
	case OpBinary:
		// Operands come off the stack right first.
		var l, r strings.Builder
		rest = describe(&r, rest, &op)
		rest = describe(&l, rest, &op)
		paren := parent != nil && parent.kind == OpBinary && parent.sym != op.sym
		if paren {
			sb.WriteByte('(')
		}
		operand(sb, &l)
		sb.WriteString(" ")
		sb.WriteString(op.sym)
		sb.WriteString(" ")
		operand(sb, &r)
		if paren {
			sb.WriteByte(')')
		}
	default:
		panic("calculator: invalid op kind " + op.kind.String())
	}
	return rest
}

// operand writes a binary operand, or ? if it is missing.
func operand(sb, x *strings.Builder) {
	if x.Len() == 0 {
		sb.WriteByte('?')
		return
	}
	sb.WriteString(x.String())
}
