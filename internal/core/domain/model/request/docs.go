// Package request contains the return-request aggregate and its value
// objects: the review Status state machine and the 12-digit TrackingCode.
// The aggregate enforces every structural invariant of a single request;
// cross-request invariants (one request per customer and order, global code
// uniqueness) are enforced by the creation use case and the store.
package request
