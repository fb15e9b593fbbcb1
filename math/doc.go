// Package math provides long arithmetic for bigint.Int values built only from
// the scalar primitives and the sign-magnitude adder: schoolbook
// multiplication, exponentiation, factorials and signed scalar division.
//
// These are not asymptotically fast algorithms; they exist to exercise and
// extend the digit level operations of package bigint in any flavor.
package math
