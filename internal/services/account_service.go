package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/request_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/repositories"
	mem "moodtrip/pkg/memcache"
	"moodtrip/pkg/utils"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token string, newPassword string) error
}

type accountService struct {
	accountRepo repositories.AccountRepository
	resetTokens *mem.ResetTokenStore
}

func NewAccountService(accountRepo repositories.AccountRepository, resetTokens *mem.ResetTokenStore) AccountService {
	return &accountService{accountRepo: accountRepo, resetTokens: resetTokens}
}

func (s *accountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	existing, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return accountResponse(account), nil
}

func (s *accountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateLastLogin(ctx, account.ID, time.Now().Unix()); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.LoginResponse{
		Token:   token,
		Account: *accountResponse(account),
	}, nil
}

// ForgotPassword issues a single-use reset token. The token is returned to
// the caller directly since there is no mail delivery here.
func (s *accountService) ForgotPassword(ctx context.Context, email string) (string, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", err
	}
	s.resetTokens.Set(token, account.ID.String())
	return token, nil
}

func (s *accountService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	accountIDStr, ok := s.resetTokens.Consume(token)
	if !ok {
		return utils.ErrInvalidResetToken
	}

	accountID, err := uuid.Parse(accountIDStr)
	if err != nil {
		return utils.ErrInvalidResetToken
	}

	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.accountRepo.UpdatePassword(ctx, account.ID, hash); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func accountResponse(account *db_models.Account) *response_models.AccountResponse {
	return &response_models.AccountResponse{
		ID:          account.ID.String(),
		DisplayName: account.Name,
		Email:       account.Email,
		MemberSince: utils.FormatMonthYearIST(utils.FromUnixSecondsIST(account.CreatedAt)),
	}
}
