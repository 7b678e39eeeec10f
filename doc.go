// Package calc implements a floating-point calculator for infix arithmetic
// expressions.
//
// Expressions contain numbers, the constants pi, e, and c (the speed of light
// in m/s), the operators + - * / ^, parentheses, and calls of single-argument
// functions like sqrt(x) and atanh(x). "^" is exponentiation and groups from
// the right, so "2^3^2" is "2^(3^2)". A + or - at the start of an expression
// or just after an open parenthesis is a sign, so "-3+2" and "(-3+2)" work as
// written, but "2*-3" does not.
//
// Evaluation happens in three stages. The lexer scans text into an Infix
// token sequence, the shunting-yard algorithm reorders it into a Postfix
// sequence, and a stack machine evaluates that. Each stage may be used
// separately through Tokenize, Infix.Postfix, and Postfix.Eval.
//
// Other words name variables, supplied with SetVar or EvaluateWithVars.
// Constants and function names always take precedence over variables.
package calc
