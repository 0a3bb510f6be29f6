package auth

import (
	"context"
	"errors"

	"github.com/Ferrr1/Tani-sub000/internal/domain"
	"github.com/Ferrr1/Tani-sub000/internal/domain/dto"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/logger"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/store"
	"github.com/Ferrr1/Tani-sub000/internal/pkg/utils"
	"github.com/google/uuid"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) SignupUser(ctx context.Context, request *dto.SignupUserRequest) (*dto.SignupUserResponse, error) {
	if _, err := svc.store.GetUserByEmail(ctx, request.Email); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrEmailAlreadyTaken
		}
		return nil, err
	}

	user := &domain.User{
		Email:    request.Email,
		FullName: request.FullName,
	}
	if err := user.UserPassword.Init(request.Password); err != nil {
		return nil, err
	}

	if err := svc.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	return &dto.SignupUserResponse{User: user, AuthToken: authToken}, nil
}

func (svc *Service) LoginUser(ctx context.Context, request *dto.LoginUserRequest) (*dto.LoginUserResponse, error) {
	user, err := svc.store.GetUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrUnauthorized
		}
		return nil, err
	}

	if err := user.UserPassword.Validate(request.Password); err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	return &dto.LoginUserResponse{User: user, AuthToken: authToken}, nil
}

func (svc *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return svc.store.GetUserByID(ctx, userID)
}
