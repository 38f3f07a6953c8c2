package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/auth"
	"foodorder/internal/pkg/errs"
)

// RegisterUserCommandHandler handles creation of new user accounts.
type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory}
}

// Handle registers the user. Returns an already-exists error when the
// email is taken. The unique index on users.email backs the in-transaction
// check against a racing registration.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*account.User, error) {
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

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return nil, errs.NewObjectAlreadyExistsError("email", cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return nil, err
	}

	user, err := account.NewUser(
		kernel.NewUUID(),
		cmd.Email(),
		passwordHash,
		cmd.FirstName(),
		cmd.LastName(),
		cmd.PhoneNumber(),
	)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
