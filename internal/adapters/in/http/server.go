// Package http adapts the generated API surface onto the application's
// command and query handlers. Authentication happens upstream; the
// gateway forwards the verified actor in the X-Customer-Id and X-Staff-Id
// headers, and this adapter only translates them into command fields.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"returns/internal/core/application/usecases/commands"
	"returns/internal/core/application/usecases/queries"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/request"
	"returns/internal/generated/servers"
	"returns/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Identity headers set by the upstream gateway.
const (
	customerIDHeader = "X-Customer-Id"
	staffIDHeader    = "X-Staff-Id"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRequestHandler commands.CreateRequestCommandHandler
	updateReasonHandler  commands.UpdateRequestReasonCommandHandler
	changeStatusHandler  commands.ChangeRequestStatusCommandHandler
	attachOrderHandler   commands.AttachOrderReferenceCommandHandler

	// Query handlers
	getCustomerRequestsHandler  queries.GetCustomerRequestsQueryHandler
	getRequestsForReviewHandler queries.GetRequestsForReviewQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRequestHandler commands.CreateRequestCommandHandler,
	updateReasonHandler commands.UpdateRequestReasonCommandHandler,
	changeStatusHandler commands.ChangeRequestStatusCommandHandler,
	attachOrderHandler commands.AttachOrderReferenceCommandHandler,
	getCustomerRequestsHandler queries.GetCustomerRequestsQueryHandler,
	getRequestsForReviewHandler queries.GetRequestsForReviewQueryHandler,
) *Server {
	return &Server{
		createRequestHandler:        createRequestHandler,
		updateReasonHandler:         updateReasonHandler,
		changeStatusHandler:         changeStatusHandler,
		attachOrderHandler:          attachOrderHandler,
		getCustomerRequestsHandler:  getCustomerRequestsHandler,
		getRequestsForReviewHandler: getRequestsForReviewHandler,
	}
}

// CreateReturn handles POST /api/v1/returns - opens a return request.
func (s *Server) CreateReturn(ctx echo.Context) error {
	customerID, err := actorID(ctx, customerIDHeader)
	if err != nil {
		return unauthorized(ctx)
	}

	var body servers.CreateReturnJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateRequestCommand(customerID, body.OrderId, body.Reason)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	req, err := s.createRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toReturnRequest(req, nil))
}

// ListMyReturns handles GET /api/v1/returns - lists the caller's requests.
func (s *Server) ListMyReturns(ctx echo.Context, params servers.ListMyReturnsParams) error {
	customerID, err := actorID(ctx, customerIDHeader)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCustomerRequestsQuery(
		customerID, intOrZero(params.Limit), intOrZero(params.Offset))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	summaries, err := s.getCustomerRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve return requests")
	}

	return ctx.JSON(http.StatusOK, toReturnRequestList(summaries))
}

// UpdateReturnReason handles PUT /api/v1/returns/{requestId}/reason.
func (s *Server) UpdateReturnReason(ctx echo.Context, requestId openapi_types.UUID) error {
	customerID, err := actorID(ctx, customerIDHeader)
	if err != nil {
		return unauthorized(ctx)
	}

	requestID, err := kernel.UUIDFromBytes(requestId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request id")
	}

	var body servers.UpdateReturnReasonJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateRequestReasonCommand(customerID, requestID, body.Reason)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	req, err := s.updateReasonHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReturnRequest(req, nil))
}

// ListReturnsForReview handles GET /api/v1/admin/returns - the staff listing.
func (s *Server) ListReturnsForReview(ctx echo.Context, params servers.ListReturnsForReviewParams) error {
	if _, err := actorID(ctx, staffIDHeader); err != nil {
		return unauthorized(ctx)
	}

	var statusFilter string
	if params.Status != nil {
		statusFilter = string(*params.Status)
	}

	query, err := queries.NewGetRequestsForReviewQuery(
		statusFilter, intOrZero(params.Limit), intOrZero(params.Offset))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	summaries, err := s.getRequestsForReviewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve return requests")
	}

	return ctx.JSON(http.StatusOK, toReturnRequestList(summaries))
}

// UpdateReturnStatus handles PUT /api/v1/admin/returns/{requestId}/status.
func (s *Server) UpdateReturnStatus(ctx echo.Context, requestId openapi_types.UUID) error {
	staffID, err := actorID(ctx, staffIDHeader)
	if err != nil {
		return unauthorized(ctx)
	}

	requestID, err := kernel.UUIDFromBytes(requestId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request id")
	}

	var body servers.UpdateReturnStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	newStatus, err := request.StatusFromString(string(body.Status))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewChangeRequestStatusCommand(staffID, requestID, newStatus)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	req, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReturnRequest(req, nil))
}

// AttachReturnOrderReference handles PUT /api/v1/admin/returns/{requestId}/order-reference.
func (s *Server) AttachReturnOrderReference(ctx echo.Context, requestId openapi_types.UUID) error {
	staffID, err := actorID(ctx, staffIDHeader)
	if err != nil {
		return unauthorized(ctx)
	}

	requestID, err := kernel.UUIDFromBytes(requestId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request id")
	}

	var body servers.AttachReturnOrderReferenceJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAttachOrderReferenceCommand(staffID, requestID, body.OrderNumber)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	req, err := s.attachOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReturnRequest(req, nil))
}

// actorID extracts a positive actor identifier from an identity header.
func actorID(ctx echo.Context, header string) (int64, error) {
	raw := ctx.Request().Header.Get(header)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError(header)
	}
	return id, nil
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func toReturnRequest(req *request.Request, orderNumber *string) servers.ReturnRequest {
	return servers.ReturnRequest{
		Id:          req.ID().Bytes(),
		Code:        req.Code().String(),
		OrderId:     req.OrderID(),
		OrderNumber: orderNumber,
		Reason:      req.Reason(),
		Status:      servers.ReturnRequestStatus(req.Status().String()),
		CreatedAt:   req.CreatedAt(),
	}
}

func toReturnRequestList(summaries []queries.RequestSummary) []servers.ReturnRequest {
	response := make([]servers.ReturnRequest, len(summaries))
	for i, summary := range summaries {
		var orderNumber *string
		if summary.OrderNumber != "" {
			number := summary.OrderNumber
			orderNumber = &number
		}

		response[i] = servers.ReturnRequest{
			Id:          summary.ID.Bytes(),
			Code:        summary.Code,
			OrderId:     summary.OrderID,
			OrderNumber: orderNumber,
			Reason:      summary.Reason,
			Status:      servers.ReturnRequestStatus(summary.Status.String()),
			CreatedAt:   summary.CreatedAt,
		}
	}
	return response
}

func unauthorized(ctx echo.Context) error {
	return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid identity header")
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

// domainError maps use case failures onto HTTP statuses.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrDuplicateRequest),
		errors.Is(err, request.ErrRequestIsNotEditable):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, commands.ErrOrderNotOwned),
		errors.Is(err, commands.ErrNotRequestOwner):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
