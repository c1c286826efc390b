package usecase

import (
	"context"
	"fmt"
	"time"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"
	"review-hub/internal/dto/response"
	"review-hub/pkg/mailer"
	"review-hub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	SignUp(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error)
	IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	users  repository.UserRepository
	mailer mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		mailer: mail,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// SignUp creates-or-fetches the user and sends a fresh confirmation
// code. Re-submitting the same (username, email) pair re-issues a code
// rather than failing, so a lost email is recoverable.
func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error) {
	if req.Username == entity.ReservedUsername {
		return nil, fmt.Errorf("signup as %q: %w", req.Username, ErrReservedUsername)
	}

	byUsername, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	byEmail, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}

	var user *entity.User
	switch {
	case byUsername != nil && byUsername.Email == req.Email:
		// Same identity pair: re-issue the code.
		user = byUsername
	case byUsername != nil:
		return nil, fmt.Errorf("username %s: %w", req.Username, ErrAlreadyExists)
	case byEmail != nil:
		return nil, fmt.Errorf("email %s: %w", req.Email, ErrAlreadyExists)
	default:
		now := time.Now()
		user = &entity.User{
			Username:  req.Username,
			Email:     req.Email,
			Role:      entity.RoleUser,
			CodeSalt:  uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create pending user: %w", err)
		}
		s.log.Info("User registered",
			zap.Int64("user_id", user.ID),
			zap.String("username", user.Username),
		)
	}

	code := utils.MakeConfirmationCode(s.config.Code.Secret, user.ID, user.CodeSalt, time.Now())
	if err := s.mailer.SendConfirmationCode(user.Email, user.Username, code); err != nil {
		return nil, fmt.Errorf("dispatch confirmation code: %w", err)
	}

	s.log.Info("Confirmation code dispatched",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return &response.SignUpResponse{
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// IssueToken exchanges (username, confirmation code) for a bearer
// token. The user's code salt rotates on success, so a code works only
// until its first successful exchange.
func (s *authService) IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", req.Username, ErrNotFound)
	}

	maxAge := time.Duration(s.config.Code.ExpiryMinutes) * time.Minute
	if !utils.CheckConfirmationCode(s.config.Code.Secret, user.ID, user.CodeSalt, req.ConfirmationCode, maxAge, time.Now()) {
		s.log.Warn("Confirmation code rejected",
			zap.Int64("user_id", user.ID),
			zap.String("username", user.Username),
		)
		return nil, fmt.Errorf("user %s: %w", req.Username, ErrBadConfirmationCode)
	}

	if err := s.users.RotateCodeSalt(ctx, user.ID, uuid.New()); err != nil {
		return nil, fmt.Errorf("invalidate confirmation code: %w", err)
	}

	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	token, err := utils.GenerateAccessToken(user.ID, user.Username, string(user.Role), s.config.JWT.Secret, expiry)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("Access token issued",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &response.TokenResponse{Token: token}, nil
}
