package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/application/usecases/commands"
)

func TestPurgeExpiredTokensCommandHandler_Handle_Success(t *testing.T) {
	before := time.Now()

	tokenRepo := &MockRefreshTokenRepository{}
	uow := &MockAccountUoW{}
	factory := &MockAccountUoWFactory{}

	factory.On("Create").Return(uow)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil),
		uow.On("RefreshTokenRepository").Return(tokenRepo),
		tokenRepo.On("DeleteExpired", mock.Anything, before).Return(int64(3), nil),
		uow.On("Commit", mock.Anything).Return(nil),
		uow.On("Rollback", mock.Anything).Return(nil),
	)

	handler := commands.NewPurgeExpiredTokensCommandHandler(factory)
	cmd, err := commands.NewPurgeExpiredTokensCommand(before)
	require.NoError(t, err)

	deleted, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	uow.AssertExpectations(t)
	tokenRepo.AssertExpectations(t)
}

func TestPurgeExpiredTokensCommandHandler_Handle_DeleteFails(t *testing.T) {
	repoErr := errors.New("connection reset")

	tokenRepo := &MockRefreshTokenRepository{}
	uow := &MockAccountUoW{}
	factory := &MockAccountUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("RefreshTokenRepository").Return(tokenRepo)
	tokenRepo.On("DeleteExpired", mock.Anything, mock.Anything).Return(int64(0), repoErr)
	uow.On("Rollback", mock.Anything).Return(nil)

	handler := commands.NewPurgeExpiredTokensCommandHandler(factory)
	cmd, err := commands.NewPurgeExpiredTokensCommand(time.Now())
	require.NoError(t, err)

	deleted, err := handler.Handle(context.Background(), cmd)

	require.ErrorIs(t, err, repoErr)
	assert.Zero(t, deleted)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPurgeExpiredTokensCommandHandler_Handle_ValidationError(t *testing.T) {
	handler := commands.NewPurgeExpiredTokensCommandHandler(&MockAccountUoWFactory{})

	_, err := handler.Handle(context.Background(), commands.PurgeExpiredTokensCommand{})

	require.ErrorIs(t, err, commands.ErrPurgeExpiredTokensCommandIsNotConstructed)
}

func TestNewPurgeExpiredTokensCommand_ZeroCutoff(t *testing.T) {
	_, err := commands.NewPurgeExpiredTokensCommand(time.Time{})

	require.Error(t, err)
}
