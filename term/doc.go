// SPDX-License-Identifier: MIT

// Package term implements the expression trees stored in symbolic matrix cells.
//
// A Term is one of three variants:
//
//   - Int      : a concrete integer leaf.
//   - Var      : a single-letter variable leaf (A–Z, a–z).
//   - Composite: a binary node that owns two sub-terms and an Op (+, -, *).
//
// The set of variants is closed: Term carries an unexported marker method, so
// only this package can add implementations and a type switch over
// Int/Var/*Composite is exhaustive.
//
// Ownership:
//
//	Every Term is a tree. NewComposite clones its operands, so no sub-term is
//	ever shared between two parents and mutating one tree never leaks into
//	another.
//
// Evaluation:
//
//	Evaluate resolves variables through a read-only Valuation. The first
//	unbound variable (left operand before right) aborts with ErrUnboundVariable.
//	Integer arithmetic uses Go's fixed-width int with two's-complement
//	wraparound; overflow is not reported.
//
// Equality:
//
//	Equal compares canonical renderings, so (1+x) and (x+1) are different
//	terms even though they always evaluate to the same value.
package term
