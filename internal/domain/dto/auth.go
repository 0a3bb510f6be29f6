package dto

import "github.com/Ferrr1/Tani-sub000/internal/domain"

type SignupUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignupUserResponse struct {
	User      *domain.User `json:"user"`
	AuthToken string       `json:"-"`
}

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUserResponse struct {
	User      *domain.User `json:"user"`
	AuthToken string       `json:"-"`
}
