// Package domain defines the core business entities for the BMI calculator.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawInput: Untrusted form fields as entered by the user
//   - ValidInput: Typed input produced only by validation
//   - Measurement: Height in metres and weight in kilograms
//   - Category: One entry of the static six-band BMI scale
//
// Unit conversion, BMI rounding and categorisation are pure functions
// defined here so every adapter shares one implementation.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
