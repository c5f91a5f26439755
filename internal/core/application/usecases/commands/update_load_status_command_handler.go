package commands

import (
	"context"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/load"
	"lorrylink/internal/pkg/errs"
)

// UpdateLoadStatusCommandHandler handles direct status writes. There is no
// transition table on this path: any recognized status may be written over
// any other. Access is what is gated: admins may touch any load, owners
// their own, drivers the loads currently assigned to them.
type UpdateLoadStatusCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewUpdateLoadStatusCommandHandler creates a handler for status overrides.
func NewUpdateLoadStatusCommandHandler(uowFactory LoadUoWFactory) UpdateLoadStatusCommandHandler {
	return UpdateLoadStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status override command.
func (h UpdateLoadStatusCommandHandler) Handle(ctx context.Context, cmd UpdateLoadStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()

	l, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	if err = h.authorize(cmd.Actor(), l); err != nil {
		return err
	}

	if err = l.OverrideStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h UpdateLoadStatusCommandHandler) authorize(actor account.Actor, l *load.Load) error {
	switch {
	case actor.Is(account.Admin):
		return nil
	case actor.Is(account.GoodsOwner) && l.IsOwnedBy(actor.ID()):
		return nil
	case actor.Is(account.Driver) &&
		l.AcceptedDriver() != nil && l.AcceptedDriver().IsEqual(actor.ID()):
		return nil
	}
	return errs.NewForbiddenError("caller has no authority over this load's status")
}
