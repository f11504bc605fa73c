// Package chain provides a fluent wrapper around rop.Result[V, E]
// for building synchronous railway chains on top of solo primitives.
//
// Stages that change the value or failure type are free functions (Then,
// Map, MapFails, ThenTry) because Go methods cannot add type parameters.
// The context given to Start is handed to every stage; the chain itself
// never inspects it.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: bind a step returning a new Result
// - ThenTry: call a (U, error) function on an error-typed chain
// - Map/MapFails: transform the value or the failure
// - Ensure/OnFail: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
