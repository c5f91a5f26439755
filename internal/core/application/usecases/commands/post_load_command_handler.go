package commands

import (
	"context"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/load"
	"lorrylink/internal/pkg/errs"
)

// PostLoadCommandHandler handles publishing new loads. Only goods owners may
// post; the load starts in pending status owned by the caller.
type PostLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewPostLoadCommandHandler creates a handler for load posting operations.
func NewPostLoadCommandHandler(uowFactory LoadUoWFactory) PostLoadCommandHandler {
	return PostLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the load posting command.
func (h PostLoadCommandHandler) Handle(ctx context.Context, cmd PostLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Is(account.GoodsOwner) {
		return errs.NewForbiddenError("only goods owners can post loads")
	}

	l, err := load.NewLoad(cmd.LoadID(), cmd.Actor().ID(), cmd.Details())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadRepository().Add(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
