package service

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"

	"github.com/google/uuid"
)

type UserService interface {
	GetAllUsers(actor *model.User) ([]model.UserResponse, error)
	GetUserByID(actor *model.User, id uuid.UUID) (*model.UserResponse, error)
	CreateUser(actor *model.User, req *CreateUserRequest) (*model.User, error)
	UpdateUser(actor *model.User, id uuid.UUID, req *UpdateUserRequest) (*model.User, error)
	DeleteUser(actor *model.User, id uuid.UUID) error
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER OWNER"`
	Password string `json:"password"` // opsional, login tidak memverifikasinya
}

type UpdateUserRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required,oneof=ADMIN USER OWNER"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers(actor *model.User) ([]model.UserResponse, error) {
	if !actor.HasPermission(model.PermUsersManage) {
		return nil, ErrPermissionDenied
	}

	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(actor *model.User, id uuid.UUID) (*model.UserResponse, error) {
	if !actor.HasPermission(model.PermUsersManage) {
		return nil, ErrPermissionDenied
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) CreateUser(actor *model.User, req *CreateUserRequest) (*model.User, error) {
	if !actor.HasPermission(model.PermUsersManage) {
		return nil, ErrPermissionDenied
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, structValidationError(errs)
	}

	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, validationError("username '%s' already exists", req.Username)
	}

	user := &model.User{
		Username: req.Username,
		Name:     req.Name,
		Role:     req.Role,
	}
	user.CreatedBy = actor.Name
	user.UpdatedBy = actor.Name

	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(actor *model.User, id uuid.UUID, req *UpdateUserRequest) (*model.User, error) {
	if !actor.HasPermission(model.PermUsersManage) {
		return nil, ErrPermissionDenied
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, structValidationError(errs)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	user.Name = req.Name
	user.Role = req.Role
	user.UpdatedBy = actor.Name

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(actor *model.User, id uuid.UUID) error {
	if !actor.HasPermission(model.PermUsersManage) {
		return ErrPermissionDenied
	}
	if actor.ID == id {
		return validationError("cannot delete your own account")
	}
	if _, err := s.userRepo.FindByID(id); err != nil {
		return ErrNotFound
	}
	return s.userRepo.Delete(id)
}
