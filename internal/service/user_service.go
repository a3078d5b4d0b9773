package service

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/duoday/daily/internal/error_values"
	"github.com/duoday/daily/internal/repository"
	"github.com/duoday/daily/pkg/entity"
)

// Compared against on unknown names so both failure paths cost one
// bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("-"), bcrypt.DefaultCost)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) Authenticate(ctx context.Context, name, password string) (*entity.PublicUser, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return &entity.PublicUser{ID: user.ID, Name: user.Name}, nil
}

func (us *UserService) ListUsers(ctx context.Context) ([]entity.PublicUser, error) {
	users, err := us.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return users, nil
}

func (us *UserService) SeedUsers(ctx context.Context, creds []SeedCredential) error {
	for _, c := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return errors.New("hashing seed password error: " + err.Error())
		}
		err = us.repo.CreateIfAbsent(ctx, &entity.User{
			Name:     c.Name,
			Password: string(hash),
		})
		if err != nil {
			return errors.New("seeding user error: " + err.Error())
		}
	}
	return nil
}
