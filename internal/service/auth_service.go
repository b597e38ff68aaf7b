package service

import (
	"context"
	"errors"
	"strings"

	"go-stock-ledger/internal/model"
	"go-stock-ledger/internal/repository"
	"go-stock-ledger/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService registers and authenticates users
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.Identity, error)
	Authenticate(ctx context.Context, username, password string) (*model.Identity, error)
}

type credentials struct {
	Username string `validate:"notblank"`
	Password string `validate:"notblank"`
}

type authService struct {
	userRepo repository.UserRepository
	cost     int
	// compared against when the username is unknown so both failure paths cost a bcrypt round
	dummyHash []byte
}

func NewAuthService(userRepo repository.UserRepository, cost int) AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("stock-ledger-dummy-password"), cost)
	if err != nil {
		logrus.WithError(err).Fatal("failed to prepare dummy password hash")
	}
	return &authService{
		userRepo:  userRepo,
		cost:      cost,
		dummyHash: dummy,
	}
}

func (s *authService) Register(ctx context.Context, username, password string) (*model.Identity, error) {
	// 1. Normalize and validate
	creds := credentials{Username: strings.TrimSpace(username), Password: strings.TrimSpace(password)}
	if errs := validator.ValidateStruct(&creds); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	// 2. Hash with a fresh salt
	user := &model.User{Username: creds.Username}
	if err := user.SetPassword(creds.Password, s.cost); err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, invalid("credentials.Password", "max")
		}
		return nil, err
	}

	// 3. Single insert, the unique index decides duplicates
	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			logrus.WithField("username", creds.Username).Info("Registration rejected: username taken")
			return nil, ErrDuplicateUsername
		}
		logrus.WithError(err).WithField("username", creds.Username).Error("Registration failed")
		return nil, storeErr(err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered")

	identity := user.Identity()
	return &identity, nil
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.Identity, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	// 1. Find user by username
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !repository.IsNotFound(err) {
			return nil, storeErr(err)
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		logrus.Debug("Authentication failed")
		return nil, ErrAuthFailure
	}

	// 2. Verify password
	if !user.CheckPassword(password) {
		logrus.Debug("Authentication failed")
		return nil, ErrAuthFailure
	}

	identity := user.Identity()
	return &identity, nil
}
