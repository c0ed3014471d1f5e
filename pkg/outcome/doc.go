// Package outcome provides Outcome[T], an immutable success-or-failure
// value replacing ad-hoc error signaling with an explicit result that must
// be inspected before its payload is used.
//
// Highlights:
// - Succeed/Fail/Failf: construct Outcome[T]
// - Wrap/Try: run an operation, converting panics and errors into failures
//   and flattening returned Outcomes
// - Must/OrNil/OrZero/OrElse/Get: extract the payload under varying
//   failure policies; only Must and MustVerify ever panic
// - MustVerify: run an ordered validator chain with tagged
//   Accept/Continue/Reject/RejectWith verdicts
// - OnSuccess/OnFailure: side-effect hooks returning the value unchanged
// - Is: duck-typed detection of Outcome values across module boundaries
package outcome
