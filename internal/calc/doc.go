// SPDX-License-Identifier: MIT

// Package calc implements the interactive matrix calculator: a stack of
// symbolic matrices, a variable valuation, and a line-oriented command
// language on top of the matrix package.
//
// Commands (whitespace separates commands on one line):
//
//	[[x,1][2,y]]   push a matrix literal
//	+  -  *        pop two matrices, push the result
//	=              evaluate the top matrix under the current valuation
//	x=7            bind a variable
//	values         list bindings
//	stack          list the stack, top first
//	clear          empty the stack
//	quit           stop
package calc
