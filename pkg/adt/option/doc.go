// Package option provides Option[T] (alias Maybe[T]), a container that
// either holds a value (Some) or holds nothing (Nothing).
//
// Highlights:
// - Some/Nothing/Of/FromPtr: construct *Option[T]
// - IsDefined/Get/GetOrElse/GetOrElseGet: inspect and unwrap
// - Map/FlatMap/Filter: transform a present value
// - Equals/String/MarshalJSON: total over both variants
//
// Nothing returns one shared instance per T, so identity comparison works.
package option
