package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/auth"
	"foodorder/internal/pkg/errs"
)

// RefreshTokenCommandHandler rotates refresh tokens. The submitted token
// is revoked and a new pair is issued, so a leaked token stops working as
// soon as its legitimate owner refreshes.
type RefreshTokenCommandHandler struct {
	uowFactory AccountUoWFactory
	issuer     *auth.TokenIssuer
}

// NewRefreshTokenCommandHandler creates a handler for token rotation.
func NewRefreshTokenCommandHandler(uowFactory AccountUoWFactory, issuer *auth.TokenIssuer) RefreshTokenCommandHandler {
	return RefreshTokenCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle exchanges a usable refresh token for a new token pair. Unknown,
// expired and revoked tokens all map to auth.ErrTokenInvalid.
func (h *RefreshTokenCommandHandler) Handle(ctx context.Context, cmd RefreshTokenCommand) (*LoginResult, error) {
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

	tokenRepo := uow.RefreshTokenRepository()

	record, err := tokenRepo.GetByHash(ctx, auth.HashRefreshToken(cmd.RefreshToken()))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, auth.ErrTokenInvalid
		}
		return nil, err
	}

	now := time.Now().UTC()
	if !record.IsUsable(now) {
		return nil, auth.ErrTokenInvalid
	}

	user, err := uow.UserRepository().Get(ctx, record.UserID())
	if err != nil {
		return nil, err
	}

	if err = tokenRepo.Revoke(ctx, record.ID()); err != nil {
		return nil, err
	}

	accessToken, err := h.issuer.IssueAccessToken(user.ID().String(), user.Email(), now)
	if err != nil {
		return nil, err
	}

	rawRefresh, refreshHash, err := h.issuer.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	newRecord, err := account.NewRefreshToken(
		kernel.NewUUID(),
		user.ID(),
		refreshHash,
		now.Add(h.issuer.RefreshTTL()),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = tokenRepo.Add(ctx, newRecord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
	}, nil
}
