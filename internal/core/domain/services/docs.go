// Package services provides domain services that operate across the order
// aggregate and the menu catalog. Currently it holds the OrderPricer, which
// turns the authoritative prices re-read at finalize time into the order
// total persisted on the order.
package services
