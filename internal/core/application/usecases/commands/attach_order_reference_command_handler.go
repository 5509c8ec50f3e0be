package commands

import (
	"context"
	"errors"

	"returns/internal/core/domain/model/request"
	"returns/internal/core/ports"
)

// AttachOrderReferenceCommandHandler handles the staff correction path
// that re-points a request at a different order. When the new order has a
// known owner the request moves to that customer as well.
//
// The advisory duplicate check is deliberately not repeated here: this is
// an administrative override. The storage unique index still has the last
// word, and a collision surfaces as ErrDuplicateRequest.
type AttachOrderReferenceCommandHandler struct {
	uowFactory  RequestUoWFactory
	orderClient ports.OrderClient
}

// NewAttachOrderReferenceCommandHandler creates a handler for order
// reference corrections.
func NewAttachOrderReferenceCommandHandler(
	uowFactory RequestUoWFactory,
	orderClient ports.OrderClient,
) AttachOrderReferenceCommandHandler {
	return AttachOrderReferenceCommandHandler{
		uowFactory:  uowFactory,
		orderClient: orderClient,
	}
}

// Handle processes the correction and returns the updated request. The
// parsed order id must resolve via the order lookup; a missing order is a
// hard error here, unlike creation where it folds into ErrOrderNotOwned.
func (h *AttachOrderReferenceCommandHandler) Handle(
	ctx context.Context,
	cmd AttachOrderReferenceCommand,
) (*request.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ord, err := h.orderClient.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = req.ReassignOrder(ord.ID(), ord.CustomerID()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, req); err != nil {
		if errors.Is(err, ports.ErrStorageConflict) {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}
