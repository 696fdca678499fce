// Package calculator implements the brain of a reverse-Polish calculator.
//
// A Brain holds a stack of operands and operators. Every push evaluates the
// whole stack again, so "3 4 +" yields 7 once the + arrives, and a lone + is
// simply an expression that is not complete yet. The same stack can be
// rendered as infix text with Describe and converted to a list of tokens with
// Program, which SetProgram reads back.
//
// Variables are looked up by name in Brain.Vars each time the stack is
// evaluated, so a plotter can bind "M" to many values and evaluate the same
// program for each.
//
package calculator
