// Package rop defines Result, a closed two-variant value that is either Ok
// (carrying a value of type V) or Fail (carrying a failure payload of type E).
//
// Results are plain immutable values. Combinators that change the value or
// failure type live in package solo, aggregation over many results lives in
// package mass, and fluent chains are provided by packages chain and tiny.
//
// Only Unwrap and Expect panic, and only when called on a Fail.
package rop
