package commands

import (
	"context"
	"log/slog"

	"returns/internal/core/domain/model/request"
	"returns/internal/core/ports"
)

// ChangeRequestStatusCommandHandler handles staff status decisions. The
// record is always re-saved, even when the status is unchanged; the
// customer notification fires exactly when the status actually moved.
// Notification dispatch is best effort and happens after the commit.
type ChangeRequestStatusCommandHandler struct {
	uowFactory  RequestUoWFactory
	orderClient ports.OrderClient
	notifier    ports.Notifier
	logger      *slog.Logger
}

// NewChangeRequestStatusCommandHandler creates a handler for status
// transitions.
func NewChangeRequestStatusCommandHandler(
	uowFactory RequestUoWFactory,
	orderClient ports.OrderClient,
	notifier ports.Notifier,
	logger *slog.Logger,
) ChangeRequestStatusCommandHandler {
	return ChangeRequestStatusCommandHandler{
		uowFactory:  uowFactory,
		orderClient: orderClient,
		notifier:    notifier,
		logger:      logger.With("component", "change_request_status_handler"),
	}
}

// Handle processes the transition and returns the updated request.
// Setting the current status again succeeds, writes, and notifies nobody.
func (h *ChangeRequestStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeRequestStatusCommand,
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

	changed, err := req.ChangeStatus(cmd.NewStatus())
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if changed {
		h.notifyStatusChanged(ctx, req)
	}

	return req, nil
}

func (h *ChangeRequestStatusCommandHandler) notifyStatusChanged(ctx context.Context, req *request.Request) {
	ord, err := h.orderClient.GetOrder(ctx, req.OrderID())
	if err != nil {
		h.logger.ErrorContext(ctx, "order lookup for customer notification failed",
			"error", err, "code", req.Code().String(), "orderId", req.OrderID())
		return
	}

	event := ports.RequestStatusChanged{
		Code:           req.Code().String(),
		Status:         req.Status(),
		OrderNumber:    ord.Number(),
		Lines:          ord.Lines(),
		RecipientEmail: ord.BillingEmail(),
	}

	if err := h.notifier.NotifyRequestStatusChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "customer notification failed",
			"error", err, "code", req.Code().String())
	}
}
