package usecase

import (
	"context"
	"fmt"
	"time"

	"review-hub/internal/data/entity"
	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"
	"review-hub/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService backs the admin user CRUD plus the self-service profile
// endpoint. Authorization (admin gate) happens in middleware; the
// service assumes the caller is allowed.
type UserService interface {
	List(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetByUsername(ctx context.Context, username string) (*response.UserResponse, error)
	UpdateByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteByUsername(ctx context.Context, username string) error
	UpdateProfile(ctx context.Context, requester *entity.User, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) List(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.users.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.users.CountAll(ctx, search)
	if err != nil {
		return nil, err
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, response.UserToResponse(user))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if req.Username == entity.ReservedUsername {
		return nil, fmt.Errorf("create user %q: %w", req.Username, ErrReservedUsername)
	}

	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %s: %w", req.Username, ErrAlreadyExists)
	}

	existing, err = s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s: %w", req.Email, ErrAlreadyExists)
	}

	role := entity.RoleUser
	if req.Role != "" {
		if !entity.ValidRole(req.Role) {
			return nil, fmt.Errorf("role %q: %w", req.Role, ErrValidation)
		}
		role = entity.UserRole(req.Role)
	}

	now := time.Now()
	user := &entity.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
		CodeSalt:  uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User created by admin",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}

	if req.Username != nil && *req.Username != user.Username {
		if *req.Username == entity.ReservedUsername {
			return nil, fmt.Errorf("rename to %q: %w", *req.Username, ErrReservedUsername)
		}
		other, err := s.users.FindByUsername(ctx, *req.Username)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if other != nil {
			return nil, fmt.Errorf("username %s: %w", *req.Username, ErrAlreadyExists)
		}
		user.Username = *req.Username
	}

	if req.Email != nil && *req.Email != user.Email {
		other, err := s.users.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if other != nil {
			return nil, fmt.Errorf("email %s: %w", *req.Email, ErrAlreadyExists)
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Role != nil {
		if !entity.ValidRole(*req.Role) {
			return nil, fmt.Errorf("role %q: %w", *req.Role, ErrValidation)
		}
		user.Role = entity.UserRole(*req.Role)
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteByUsername(ctx context.Context, username string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", username, ErrNotFound)
	}

	return s.users.Delete(ctx, user.ID)
}

// UpdateProfile is the self-service PATCH. The request type carries no
// role field, so requesters cannot change their own role.
func (s *userService) UpdateProfile(ctx context.Context, requester *entity.User, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if req.Email != nil && *req.Email != requester.Email {
		other, err := s.users.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if other != nil {
			return nil, fmt.Errorf("email %s: %w", *req.Email, ErrAlreadyExists)
		}
		requester.Email = *req.Email
	}
	if req.FirstName != nil {
		requester.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		requester.LastName = *req.LastName
	}
	if req.Bio != nil {
		requester.Bio = *req.Bio
	}
	requester.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, requester); err != nil {
		return nil, err
	}

	resp := response.UserToResponse(requester)
	return &resp, nil
}
