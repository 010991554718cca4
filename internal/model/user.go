package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an account in the system
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required"`
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Role     string `gorm:"type:varchar(20);not null" json:"role" validate:"required,oneof=ADMIN USER OWNER"`
	Password string `gorm:"type:varchar(255)" json:"-"` // Hidden from JSON, opsional
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HasPermission checks the acting user's role against the access policy
func (u *User) HasPermission(code string) bool {
	return RoleHasPermission(u.Role, code)
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Role:        u.Role,
		Permissions: RolePermissions[u.Role],
	}
}
