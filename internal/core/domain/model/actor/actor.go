// Package actor models the already-authenticated principals that drive the
// order lifecycle. Identity and authentication live outside this service; each
// call receives an Actor carrying an id and one of the three roles.
package actor

import (
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// Role tags a principal with its place in the ordering workflow.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// Client places orders and tracks their progress.
	Client

	// Owner runs a restaurant and moves orders through preparation.
	Owner

	// Delivery claims cooked orders and delivers them.
	Delivery
)

func roleStrings() map[Role]string {
	return map[Role]string{
		Client:   "Client",
		Owner:    "Owner",
		Delivery: "Delivery",
	}
}

// RoleFromString parses a role name as carried on the wire.
func RoleFromString(s string) (Role, error) {
	for role, name := range roleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is a principal acting on an order: an id plus a role.
// It is a value object supplied per call, never stored by this service.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates an Actor after validating id and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the principal's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the principal's role tag.
func (a Actor) Role() Role {
	return a.role
}

// Validate ensures the actor was built through NewActor.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
