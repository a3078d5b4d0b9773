package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/duoday/daily/internal/error_values"
	"github.com/duoday/daily/internal/service"
)

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("ali123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo := &usersRepoMock{}
	repo.users = seedUsers(string(hash))
	serv := service.NewUserService(repo)
	ctx := context.Background()
	t.Run("success returns public record", func(t *testing.T) {
		user, err := serv.Authenticate(ctx, "Ali", "ali123")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "Ali", user.Name)
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := serv.Authenticate(ctx, "Ali", "wrong")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("unknown name yields the same error", func(t *testing.T) {
		_, err := serv.Authenticate(ctx, "nobody", "ali123")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("repo error isn't a credentials error", func(t *testing.T) {
		failing := &usersRepoMock{failing: true}
		serv := service.NewUserService(failing)
		_, err := serv.Authenticate(ctx, "Ali", "ali123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
}

func TestSeedUsers(t *testing.T) {
	ctx := context.Background()
	t.Run("stores bcrypt hashes, not passwords", func(t *testing.T) {
		repo := &usersRepoMock{}
		serv := service.NewUserService(repo)
		err := serv.SeedUsers(ctx, []service.SeedCredential{
			{Name: "Ali", Password: "ali123"},
			{Name: "Marwa", Password: "marwa123"},
		})
		assert.NoError(t, err)
		require.Len(t, repo.created, 2)
		assert.Equal(t, "Ali", repo.created[0].Name)
		assert.NotEqual(t, "ali123", repo.created[0].Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created[0].Password), []byte("ali123")))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created[1].Password), []byte("marwa123")))
	})
	t.Run("repo error", func(t *testing.T) {
		repo := &usersRepoMock{failing: true}
		serv := service.NewUserService(repo)
		err := serv.SeedUsers(ctx, []service.SeedCredential{{Name: "Ali", Password: "ali123"}})
		assert.Error(t, err)
	})
}

func TestListUsers(t *testing.T) {
	repo := &usersRepoMock{}
	repo.users = seedUsers("hash")
	serv := service.NewUserService(repo)
	users, err := serv.ListUsers(context.Background())
	assert.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Marwa", users[1].Name)
}
