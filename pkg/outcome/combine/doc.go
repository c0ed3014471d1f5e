// Package combine contains the free-function transformers over Outcome[T].
// Go methods cannot introduce type parameters, so every type-changing
// combinator lives here, carrying a context.Context into its callbacks.
//
// Highlights:
// - Map: transform the successful payload (In -> Out)
// - Then: monadic composition of Outcome-returning functions
// - Try: call a function (Out, error) and convert error to failure
// - Apply: applicative application, function-side failure wins
// - Lift2/Lift3/Lift4/LiftAll: lift plain functions over Outcomes,
//   returning the leftmost failure without invoking the function
// - Match: reduce to a final value via success/failure handlers
// - Collect: gather all payloads or join every error
//
// Transformers never panic; failures travel as data until an extractor on
// the core type is invoked.
package combine
