// Package mass folds many rop.Result values into one.
//
// Combine and Traverse accumulate: every failure is surfaced, in input
// order. Sequence is the short-circuit counterpart that stops at the first
// failure. CombineErrors joins Go errors instead of collecting a slice.
package mass
