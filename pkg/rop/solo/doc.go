// Package solo contains single-value, synchronous combinators over
// rop.Result. Every function returns a new Result and never mutates its input.
//
// Highlights:
// - Map/MapFails: transform the value or the failure channel
// - FlatMap/AndThen: bind a fallible step, short-circuiting on Fail
// - Flip: swap the two channels
// - And/Or (eager) and AndWith/OrWith (lazy): short-circuit selection
// - OrElse: recover from a failure with a fallback Result
// - Match/Fold: reduce to a concrete value via handlers
// - Tee/TeeFail/DoubleTee: side-effect helpers
// - Try/ToPair: bridge to Go (value, error) functions
package solo
