package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "login successful"
	MessageSuccessGetMe      = "user profile retrieved successfully"
	MessageSuccessUpdateUser = "user profile updated successfully"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetMe      = "failed to retrieve user profile"
	MessageFailedUpdateUser = "failed to update user profile"

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUserType    = errors.New("invalid user type")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=64"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		UserType string `json:"user_type" validate:"omitempty,oneof=individual business charity"`
		Location string `json:"location" validate:"omitempty,max=100"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		UserType string `json:"user_type"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		ID       string `json:"id"`
		Username string `json:"username"`
	}

	UpdateUserRequest struct {
		Email    string `json:"email" validate:"omitempty,email"`
		UserType string `json:"user_type" validate:"omitempty,oneof=individual business charity"`
		Location string `json:"location" validate:"omitempty,max=100"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Email     string    `json:"email"`
		UserType  string    `json:"user_type"`
		Location  string    `json:"location,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
