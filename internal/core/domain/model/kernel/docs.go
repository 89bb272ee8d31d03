// Package kernel provides shared value objects used across the domain model:
// UUID identities, Money amounts in minor currency units, and the
// ConstructorGuard that keeps zero-value domain objects out of circulation.
//
// All kernel types are immutable and safe for concurrent use. Their zero
// values are invalid and must be produced through the provided constructors;
// Validate reports misuse.
package kernel
