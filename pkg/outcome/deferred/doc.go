// Package deferred provides Deferred[T], a resolve-once handle over work
// that finishes later, and its integration with Outcome[T].
//
// A Deferred settles exactly once, with either a value or a rejection
// error; settlement observers see the result only after Done is closed.
// From and Wrap convert settlements into Outcomes so that a rejection
// becomes failure data instead of escaping to the caller.
//
// Highlights:
// - New/Resolve/Reject: manual settlement, first one wins
// - Await: block for the result, bounded by a context
// - Run: settle from a goroutine, recovering panics into rejections
// - From: map any settlement into a resolving Deferred of Outcome
// - Wrap/WrapAny: the asynchronous halves of outcome.Try and outcome.Wrap
// - All/Race: combine several Deferreds, leftmost rejection or first
//   settlement respectively
package deferred
