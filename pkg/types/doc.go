// Package types defines the entity types, the task status enumeration, and
// the standard errors shared by the kalenote storage layer and its callers.
package types
