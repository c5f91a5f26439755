package account

import (
	"errors"

	"lorrylink/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the already-authenticated caller identity handed to use cases by
// the transport layer: an account id plus a resolved role. Use cases never see
// tokens or credentials, only the Actor.
type Actor struct {
	id            kernel.UUID
	role          Role
	isConstructed bool
}

// NewActor creates an Actor from a validated account id and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was created via NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the acting account's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the acting account's role.
func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor holds the required role.
func (a Actor) Is(required Role) bool {
	return a.role.Can(required)
}
