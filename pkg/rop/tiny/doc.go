// Package tiny provides a minimal value-based Chain[V, E] for synchronous
// composition of rop.Result values whose types stay fixed along the chain.
//
// It parallels the chain package but keeps the API surface very small and
// adds the looping and selection helpers:
// - Start/FromValue: create a Chain
// - Then/Map: compose Result-returning or plain functions
// - And/Or/OrElse: short-circuit selection between chains
// - RepeatUntil/While: loop a step while the chain stays Ok
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
package tiny
