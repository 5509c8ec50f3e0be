package commands_test

import (
	"context"
	"errors"
	"testing"

	"returns/internal/core/application/usecases/commands"
	"returns/internal/core/domain/model/request"
	"returns/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeRequestStatusCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a pending request and notifies the customer", func(t *testing.T) {
		repo := &MockRequestRepository{}
		uow := &MockRequestUoW{}
		factory := &MockRequestUoWFactory{}
		orderClient := &MockOrderClient{}
		notifier := &MockNotifier{}

		req := mustRequest(t, 7, 101, request.Pending)
		cmd, err := commands.NewChangeRequestStatusCommand(3, req.ID(), request.Accepted)
		require.NoError(t, err)

		factory.On("Create").Return(uow)
		uow.On("Begin", ctx).Return(nil)
		uow.On("RequestRepository").Return(repo)
		repo.On("Get", ctx, req.ID()).Return(req, nil)
		repo.On("Update", ctx, req).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		orderClient.On("GetOrder", ctx, int64(101)).Return(mustOrder(t, 101, 7, "101"), nil)
		notifier.On("NotifyRequestStatusChanged", ctx, mock.AnythingOfType("ports.RequestStatusChanged")).
			Return(nil)

		handler := commands.NewChangeRequestStatusCommandHandler(
			factory, orderClient, notifier, discardLogger())

		updated, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, request.Accepted, updated.Status())

		notifier.AssertNumberOfCalls(t, "NotifyRequestStatusChanged", 1)
		event := notifier.Calls[0].Arguments.Get(1).(ports.RequestStatusChanged)
		assert.Equal(t, req.Code().String(), event.Code)
		assert.Equal(t, request.Accepted, event.Status)
		assert.Equal(t, "101", event.OrderNumber)
		assert.Equal(t, "jane@example.com", event.RecipientEmail)

		mock.AssertExpectationsForObjects(t, repo, uow, factory, orderClient, notifier)
	})

	t.Run("re-setting the current status writes but notifies nobody", func(t *testing.T) {
		repo := &MockRequestRepository{}
		uow := &MockRequestUoW{}
		factory := &MockRequestUoWFactory{}
		orderClient := &MockOrderClient{}
		notifier := &MockNotifier{}

		req := mustRequest(t, 7, 101, request.Rejected)
		cmd, err := commands.NewChangeRequestStatusCommand(3, req.ID(), request.Rejected)
		require.NoError(t, err)

		factory.On("Create").Return(uow)
		uow.On("Begin", ctx).Return(nil)
		uow.On("RequestRepository").Return(repo)
		repo.On("Get", ctx, req.ID()).Return(req, nil)
		repo.On("Update", ctx, req).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)

		handler := commands.NewChangeRequestStatusCommandHandler(
			factory, orderClient, notifier, discardLogger())

		updated, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, request.Rejected, updated.Status())

		orderClient.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "NotifyRequestStatusChanged", mock.Anything, mock.Anything)
		repo.AssertNumberOfCalls(t, "Update", 1)
	})

	t.Run("allows staff to move a decided request back to pending", func(t *testing.T) {
		repo := &MockRequestRepository{}
		uow := &MockRequestUoW{}
		factory := &MockRequestUoWFactory{}
		orderClient := &MockOrderClient{}
		notifier := &MockNotifier{}

		req := mustRequest(t, 7, 101, request.Accepted)
		cmd, err := commands.NewChangeRequestStatusCommand(3, req.ID(), request.Pending)
		require.NoError(t, err)

		factory.On("Create").Return(uow)
		uow.On("Begin", ctx).Return(nil)
		uow.On("RequestRepository").Return(repo)
		repo.On("Get", ctx, req.ID()).Return(req, nil)
		repo.On("Update", ctx, req).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		orderClient.On("GetOrder", ctx, int64(101)).Return(mustOrder(t, 101, 7, "101"), nil)
		notifier.On("NotifyRequestStatusChanged", ctx, mock.AnythingOfType("ports.RequestStatusChanged")).
			Return(nil)

		handler := commands.NewChangeRequestStatusCommandHandler(
			factory, orderClient, notifier, discardLogger())

		updated, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, request.Pending, updated.Status())
		notifier.AssertNumberOfCalls(t, "NotifyRequestStatusChanged", 1)
	})

	t.Run("an order lookup failure skips the notification only", func(t *testing.T) {
		repo := &MockRequestRepository{}
		uow := &MockRequestUoW{}
		factory := &MockRequestUoWFactory{}
		orderClient := &MockOrderClient{}
		notifier := &MockNotifier{}

		req := mustRequest(t, 7, 101, request.Pending)
		cmd, err := commands.NewChangeRequestStatusCommand(3, req.ID(), request.Accepted)
		require.NoError(t, err)

		factory.On("Create").Return(uow)
		uow.On("Begin", ctx).Return(nil)
		uow.On("RequestRepository").Return(repo)
		repo.On("Get", ctx, req.ID()).Return(req, nil)
		repo.On("Update", ctx, req).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		orderClient.On("GetOrder", ctx, int64(101)).
			Return(nil, errors.New("orders store unavailable"))

		handler := commands.NewChangeRequestStatusCommandHandler(
			factory, orderClient, notifier, discardLogger())

		updated, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, request.Accepted, updated.Status())
		notifier.AssertNotCalled(t, "NotifyRequestStatusChanged", mock.Anything, mock.Anything)
	})

	t.Run("a notifier failure does not fail the decision", func(t *testing.T) {
		repo := &MockRequestRepository{}
		uow := &MockRequestUoW{}
		factory := &MockRequestUoWFactory{}
		orderClient := &MockOrderClient{}
		notifier := &MockNotifier{}

		req := mustRequest(t, 7, 101, request.Pending)
		cmd, err := commands.NewChangeRequestStatusCommand(3, req.ID(), request.Rejected)
		require.NoError(t, err)

		factory.On("Create").Return(uow)
		uow.On("Begin", ctx).Return(nil)
		uow.On("RequestRepository").Return(repo)
		repo.On("Get", ctx, req.ID()).Return(req, nil)
		repo.On("Update", ctx, req).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		orderClient.On("GetOrder", ctx, int64(101)).Return(mustOrder(t, 101, 7, "101"), nil)
		notifier.On("NotifyRequestStatusChanged", ctx, mock.AnythingOfType("ports.RequestStatusChanged")).
			Return(errors.New("smtp: connection refused"))

		handler := commands.NewChangeRequestStatusCommandHandler(
			factory, orderClient, notifier, discardLogger())

		updated, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, request.Rejected, updated.Status())
	})

	t.Run("rejects an unconstructed command", func(t *testing.T) {
		handler := commands.NewChangeRequestStatusCommandHandler(
			&MockRequestUoWFactory{}, &MockOrderClient{}, &MockNotifier{}, discardLogger())

		_, err := handler.Handle(ctx, commands.ChangeRequestStatusCommand{})
		require.ErrorIs(t, err, commands.ErrChangeRequestStatusCommandIsNotConstructed)
	})
}
