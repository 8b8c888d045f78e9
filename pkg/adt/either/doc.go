// Package either provides Either[L, R], a value that is either a Left
// (failure or alternative) or a Right (success), plus the degenerate
// Nothing: a Left that carries no value.
//
// Highlights:
// - Right/Left/Nothing: construct *Either[L, R]
// - Get/GetLeft/GetRight/GetOrElse/GetOrElseGet/GetOrThrow: unwrap
// - Bimap/Cata/Map/MapLeft/FlatMap/Mbind/Flatten: transform, short-circuiting on Left
// - Sequence/Traverse/Partition: work over collections of Eithers
// - Lift/Lift0/Lift1/Lift2/LiftErr1: turn panics into Left values
// - Equals/String/ToJSON/MarshalJSON: total over every variant
//
// Instances are immutable. Nothing returns one shared instance per
// instantiated pair of types, so Nothing[L, R]() == Nothing[L, R]().
package either
