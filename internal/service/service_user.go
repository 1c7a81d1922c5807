package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/six-cities/internal/config"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/store"
	"github.com/MKhiriev/six-cities/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService. Passwords are
// stored as bcrypt hashes.
type userService struct {
	userRepository store.UserRepository
	ids            IDGenerator

	// saltRounds is the bcrypt cost used for new password hashes.
	saltRounds int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, ids IDGenerator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		ids:            ids,
		saltRounds:     cfg.SaltRounds,
		logger:         logger,
	}
}

func (u *userService) Exists(ctx context.Context, id string) (bool, error) {
	return u.userRepository.UserExists(ctx, id)
}

// Register hashes the password of dto and stores a new account.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrUserAlreadyExists (wrapped) if the email is taken.
func (u *userService) Register(ctx context.Context, dto models.CreateUserDTO) (models.User, error) {
	log := logger.FromContext(ctx)

	if dto.Email == "" || dto.Password == "" {
		log.Error().Str("email", dto.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), u.saltRounds)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user := models.User{
		ID:           u.ids.Generate(),
		Name:         dto.Name,
		Email:        dto.Email,
		Avatar:       dto.Avatar,
		PasswordHash: string(hash),
		Type:         dto.Type,
	}

	registered, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", dto.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login checks the credentials of dto.
// An unknown email and a wrong password both yield ErrWrongCredentials.
func (u *userService) Login(ctx context.Context, dto models.LoginUserDTO) (models.User, error) {
	log := logger.FromContext(ctx)

	if dto.Email == "" || dto.Password == "" {
		log.Error().Str("email", dto.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := u.userRepository.FindUserByEmail(ctx, dto.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("email", dto.Email).Msg("login with unknown email")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", dto.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		log.Warn().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}

func (u *userService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := u.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}

func (u *userService) FindByID(ctx context.Context, id string) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (u *userService) UpdateAvatar(ctx context.Context, id, requesterID, avatar string) (models.User, error) {
	log := logger.FromContext(ctx)

	if id != requesterID {
		log.Warn().Str("user_id", id).Str("requester_id", requesterID).Msg("attempt to change avatar of another user")
		return models.User{}, ErrForbidden
	}

	user, err := u.userRepository.UpdateAvatar(ctx, id, avatar)
	if err != nil {
		log.Err(err).Str("user_id", id).Msg("avatar update failed")
		return models.User{}, fmt.Errorf("avatar update failed: %w", err)
	}

	return user, nil
}
