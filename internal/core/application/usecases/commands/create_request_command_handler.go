package commands

import (
	"context"
	"errors"
	"log/slog"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/order"
	"returns/internal/core/domain/model/request"
	"returns/internal/core/ports"
	"returns/internal/pkg/errs"
)

// maxCodeAttempts bounds the regenerate-and-retry loop for tracking code
// collisions. Three misses in a 10^12 space means something other than
// luck is wrong.
const maxCodeAttempts = 3

// ErrTrackingCodeExhausted is returned when every code attempt collided
// with a stored code.
var ErrTrackingCodeExhausted = errors.New("could not allocate a unique tracking code")

// CodeGenerator produces tracking codes for new requests.
type CodeGenerator interface {
	Generate() (request.TrackingCode, error)
}

// CreateRequestCommandHandler handles the business logic for opening a
// return request: order ownership verification, the one-request-per-order
// rule, tracking code allocation, persistence, and the admin notification.
//
// The notification fires after the commit and is best effort; a notifier
// failure is logged and never rolls back or fails the creation.
type CreateRequestCommandHandler struct {
	uowFactory    RequestUoWFactory
	orderClient   ports.OrderClient
	codeGenerator CodeGenerator
	notifier      ports.Notifier
	logger        *slog.Logger
}

// NewCreateRequestCommandHandler creates a handler for request creation.
func NewCreateRequestCommandHandler(
	uowFactory RequestUoWFactory,
	orderClient ports.OrderClient,
	codeGenerator CodeGenerator,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory:    uowFactory,
		orderClient:   orderClient,
		codeGenerator: codeGenerator,
		notifier:      notifier,
		logger:        logger.With("component", "create_request_handler"),
	}
}

// Handle processes the creation command and returns the persisted request.
//
// Failure modes: ErrOrderNotOwned when the order is missing or owned by
// someone else, ErrDuplicateRequest when a request for the (customer,
// order) pair exists — whether caught by the advisory pre-check or by the
// store's unique index — and validation errors from the command itself.
func (h *CreateRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRequestCommand,
) (*request.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ord, err := h.orderClient.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrOrderNotOwned
		}
		return nil, err
	}
	if !ord.IsOwnedBy(cmd.CustomerID()) {
		return nil, ErrOrderNotOwned
	}

	req, err := h.insertWithFreshCode(ctx, cmd)
	if err != nil {
		return nil, err
	}

	h.notifySubmitted(ctx, req, ord)
	return req, nil
}

// insertWithFreshCode persists a new request, regenerating the tracking
// code when the store reports a code collision. Each attempt runs in its
// own transaction because a unique violation aborts the one it happened in.
func (h *CreateRequestCommandHandler) insertWithFreshCode(
	ctx context.Context,
	cmd CreateRequestCommand,
) (*request.Request, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := h.codeGenerator.Generate()
		if err != nil {
			return nil, err
		}

		req, err := request.NewRequest(kernel.NewUUID(), cmd.CustomerID(), cmd.OrderID(), code, cmd.Reason())
		if err != nil {
			return nil, err
		}

		uow := h.uowFactory.Create()
		if err = uow.Begin(ctx); err != nil {
			return nil, err
		}
		repo := uow.RequestRepository()

		if _, dupErr := repo.GetByCustomerAndOrder(ctx, cmd.CustomerID(), cmd.OrderID()); dupErr == nil {
			_ = uow.Rollback(ctx)
			return nil, ErrDuplicateRequest
		} else if !errors.Is(dupErr, errs.ErrObjectNotFound) {
			_ = uow.Rollback(ctx)
			return nil, dupErr
		}

		addErr := repo.Add(ctx, req)
		if addErr == nil {
			if err = uow.Commit(ctx); err != nil {
				return nil, err
			}
			return req, nil
		}

		_ = uow.Rollback(ctx)
		if !errors.Is(addErr, ports.ErrStorageConflict) {
			return nil, addErr
		}

		// The index that rejected the insert is either the (customer,
		// order) pair or the tracking code. Re-check the pair outside the
		// aborted transaction; only a code collision earns another attempt.
		checkRepo := h.uowFactory.Create().RequestRepository()
		if _, pairErr := checkRepo.GetByCustomerAndOrder(ctx, cmd.CustomerID(), cmd.OrderID()); pairErr == nil {
			return nil, ErrDuplicateRequest
		} else if !errors.Is(pairErr, errs.ErrObjectNotFound) {
			return nil, pairErr
		}

		h.logger.WarnContext(ctx, "tracking code collision, retrying",
			"code", code.String(), "attempt", attempt+1)
	}

	return nil, ErrTrackingCodeExhausted
}

func (h *CreateRequestCommandHandler) notifySubmitted(
	ctx context.Context,
	req *request.Request,
	ord *order.Order,
) {
	event := ports.RequestSubmitted{
		Code:        req.Code().String(),
		Reason:      req.Reason(),
		OrderID:     ord.ID(),
		OrderNumber: ord.Number(),
		Lines:       ord.Lines(),
		OrderTotal:  ord.Total(),
	}

	if err := h.notifier.NotifyRequestSubmitted(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "admin notification failed",
			"error", err, "code", req.Code().String())
	}
}
