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

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not match. The two cases are deliberately
// indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginResult carries the authenticated user together with the freshly
// issued token pair. RefreshToken is the raw value; only its hash is
// stored.
type LoginResult struct {
	User         *account.User
	AccessToken  string
	RefreshToken string
}

// LoginCommandHandler verifies credentials and issues an access/refresh
// token pair.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	issuer     *auth.TokenIssuer
}

// NewLoginCommandHandler creates a handler for credential login.
func NewLoginCommandHandler(uowFactory AccountUoWFactory, issuer *auth.TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle authenticates the user and persists the refresh token record.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
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

	user, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash(), cmd.Password()) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()

	accessToken, err := h.issuer.IssueAccessToken(user.ID().String(), user.Email(), now)
	if err != nil {
		return nil, err
	}

	rawRefresh, refreshHash, err := h.issuer.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	tokenRecord, err := account.NewRefreshToken(
		kernel.NewUUID(),
		user.ID(),
		refreshHash,
		now.Add(h.issuer.RefreshTTL()),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.RefreshTokenRepository().Add(ctx, tokenRecord); err != nil {
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
