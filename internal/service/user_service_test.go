package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-catalog-api/internal/model"
)

func TestCreateUser(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	admin := adminActor()

	created, err := svc.CreateUser(admin, &CreateUserRequest{
		Username: "budi",
		Name:     "Budi Santoso",
		Role:     model.RoleUser,
		Password: "rahasia123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, model.RoleUser, created.Role)
	assert.Equal(t, admin.Name, created.CreatedBy)
	assert.True(t, created.CheckPassword("rahasia123"))

	// Username harus unik
	_, err = svc.CreateUser(admin, &CreateUserRequest{
		Username: "budi",
		Name:     "Budi Kedua",
		Role:     model.RoleUser,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateUserInvalidRole(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.CreateUser(adminActor(), &CreateUserRequest{
		Username: "siti",
		Name:     "Siti",
		Role:     "SUPERVISOR",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateUser(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	admin := adminActor()

	created, err := svc.CreateUser(admin, &CreateUserRequest{
		Username: "siti", Name: "Siti", Role: model.RoleUser,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(admin, created.ID, &UpdateUserRequest{
		Name: "Siti Aminah", Role: model.RoleOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, "Siti Aminah", updated.Name)
	assert.Equal(t, model.RoleOwner, updated.Role)

	_, err = svc.UpdateUser(admin, uuid.New(), &UpdateUserRequest{
		Name: "X", Role: model.RoleUser,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	admin := adminActor()
	repo.users = append(repo.users, *admin)

	created, err := svc.CreateUser(admin, &CreateUserRequest{
		Username: "siti", Name: "Siti", Role: model.RoleUser,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(admin, created.ID))
	assert.ErrorIs(t, svc.DeleteUser(admin, created.ID), ErrNotFound)

	// Akun sendiri tidak boleh dihapus
	err = svc.DeleteUser(admin, admin.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserManagementPermission(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	for _, actor := range []*model.User{salesActor(), ownerActor()} {
		_, err := svc.GetAllUsers(actor)
		assert.ErrorIs(t, err, ErrPermissionDenied)

		_, err = svc.CreateUser(actor, &CreateUserRequest{
			Username: "x", Name: "X", Role: model.RoleUser,
		})
		assert.ErrorIs(t, err, ErrPermissionDenied)

		assert.ErrorIs(t, svc.DeleteUser(actor, uuid.New()), ErrPermissionDenied)
	}
}

func TestUserResponseHidesPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)
	admin := adminActor()

	created, err := svc.CreateUser(admin, &CreateUserRequest{
		Username: "budi", Name: "Budi", Role: model.RoleOwner, Password: "rahasia",
	})
	require.NoError(t, err)

	resp, err := svc.GetUserByID(admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "budi", resp.Username)
	assert.ElementsMatch(t, model.RolePermissions[model.RoleOwner], resp.Permissions)
}
