// Package chain threads a single *either.Either[error, T] through a series
// of steps. Each step runs only while the value is Right; the first Left
// rides through the rest untouched.
//
// Steps:
// - Start, FromValue: open a chain on an existing Either or a plain value
// - Then: hand the value to a function that returns its own Either
// - ThenTry: call a (U, error) function; an error or a panic turns Left
// - Map: replace the value with fn(value)
// - Validate: turn Left with the given message when a check fails
// - Ensure: observe the value without changing it
// - Finally: leave the chain through one of two handlers
package chain
