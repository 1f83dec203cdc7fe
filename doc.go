// Package opprec evaluates arithmetic homework written under unusual
// operator precedence rules.
//
// Expressions are single digits joined by + and *, grouped with parentheses,
// with any amount of whitespace. "1 + 2 * 3" is 9 under Flat precedence,
// where operators apply strictly left to right, and also 9 under
// AdditionFirst precedence, where every run of additions is reduced before
// the products that contain it. "2 * 3 + 4" is 10 under Flat and 14 under
// AdditionFirst.
//
// Tokenize an expression once and evaluate it under either rule as many
// times as needed; an Expr is never modified by evaluation.
package opprec
