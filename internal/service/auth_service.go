package service

import (
	"errors"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/jwt"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
)

type AuthService interface {
	Login(username string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*model.UserResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login is a plain username lookup: tidak ada verifikasi password.
// Token yang diterbitkan hanya membawa identitas + role untuk middleware.
func (s *authService) Login(username string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidUsername
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.Name, user.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*model.UserResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrInvalidUsername
	}

	resp := user.ToResponse()
	return &resp, nil
}
