package commands

import (
	"context"

	"returns/internal/core/domain/model/request"
)

// UpdateRequestReasonCommandHandler handles customer edits of the return
// reason. Edits are allowed only by the owner and only while the request
// is pending; the whole change is one atomic Update with no notification.
type UpdateRequestReasonCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewUpdateRequestReasonCommandHandler creates a handler for reason edits.
func NewUpdateRequestReasonCommandHandler(uowFactory RequestUoWFactory) UpdateRequestReasonCommandHandler {
	return UpdateRequestReasonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit and returns the updated request.
//
// Failure modes: errs.ObjectNotFound when the request does not exist,
// ErrNotRequestOwner for a foreign request, and
// request.ErrRequestIsNotEditable once the status left pending.
func (h *UpdateRequestReasonCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateRequestReasonCommand,
) (*request.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RequestRepository()
	req, err := repo.Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	if !req.IsOwnedBy(cmd.RequestorID()) {
		return nil, ErrNotRequestOwner
	}

	if err = req.UpdateReason(cmd.Reason()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}
