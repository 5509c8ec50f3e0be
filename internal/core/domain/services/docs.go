// Package services contains stateless domain services that do not belong
// to a single aggregate. Currently this is the tracking code generator.
package services
