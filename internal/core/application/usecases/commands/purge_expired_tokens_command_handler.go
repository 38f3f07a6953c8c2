package commands

import (
	"context"
)

// PurgeExpiredTokensCommandHandler deletes refresh token records that can
// no longer be redeemed. Keeps the refresh_tokens table from growing
// without bound.
type PurgeExpiredTokensCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewPurgeExpiredTokensCommandHandler creates a handler for token cleanup.
func NewPurgeExpiredTokensCommandHandler(uowFactory AccountUoWFactory) PurgeExpiredTokensCommandHandler {
	return PurgeExpiredTokensCommandHandler{uowFactory: uowFactory}
}

// Handle removes expired and revoked tokens, returning how many records
// were deleted.
func (h *PurgeExpiredTokensCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredTokensCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.RefreshTokenRepository().DeleteExpired(ctx, cmd.Before())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
