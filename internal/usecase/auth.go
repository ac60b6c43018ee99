package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/xavierca1/corporate-ask/internal/entity"
)

const (
	MsgInvalidCredentials = "Invalid username or password"
	MsgUsernameTaken      = "Username already taken"
)

// BootstrapAdmin is a configured admin account that does not live in the
// users table. It is disabled when Password is empty.
type BootstrapAdmin struct {
	Username string
	Password string
}

func (b BootstrapAdmin) matches(c Credentials) bool {
	if b.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(b.Username), []byte(c.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(b.Password), []byte(c.Password)) == 1
	return userOK && passOK
}

type UserView struct {
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
}

type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserView  `json:"user"`
}

type AuthUseCase struct {
	Users     entity.UserRepositoryInterface
	Hasher    PasswordHasher
	Tokens    TokenIssuer
	Revoker   TokenRevoker
	Bootstrap BootstrapAdmin
}

func NewAuthUseCase(
	users entity.UserRepositoryInterface,
	hasher PasswordHasher,
	tokens TokenIssuer,
	revoker TokenRevoker,
	bootstrap BootstrapAdmin,
) *AuthUseCase {
	return &AuthUseCase{
		Users:     users,
		Hasher:    hasher,
		Tokens:    tokens,
		Revoker:   revoker,
		Bootstrap: bootstrap,
	}
}

func (uc *AuthUseCase) Login(ctx context.Context, input Credentials) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	if errs := ValidateCredentials(input); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if uc.Bootstrap.matches(input) {
		log.WithField("username", input.Username).Info("🔑 bootstrap admin signed in")
		return uc.issue(input.Username, entity.RoleAdmin)
	}

	user, err := uc.Users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, invalidCredentials(err)
		}
		return nil, databaseError("user lookup failed", err)
	}

	if err := uc.Hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials(err)
	}

	return uc.issue(user.Username, user.Role)
}

// SignUp creates a customer account and signs it in.
func (uc *AuthUseCase) SignUp(ctx context.Context, input Credentials) (*AuthResult, error) {
	user, err := uc.createUser(ctx, input, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}
	return uc.issue(user.Username, user.Role)
}

func (uc *AuthUseCase) AddAdmin(ctx context.Context, input Credentials) (*entity.User, error) {
	user, err := uc.createUser(ctx, input, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	log.WithField("username", user.Username).Info("👤 admin added")
	return user, nil
}

// Logout revokes the token until it would have expired anyway.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := uc.Revoker.Revoke(ctx, tokenID, expiresAt); err != nil {
		return &TechnicalError{Code: CodeSessionStore, Message: "could not sign out", Err: err}
	}
	return nil
}

func (uc *AuthUseCase) createUser(ctx context.Context, input Credentials, role entity.Role) (*entity.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	if errs := ValidateCredentials(input); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if input.Username == uc.Bootstrap.Username && uc.Bootstrap.Password != "" {
		return nil, &DomainError{Code: CodeUsernameTaken, Message: MsgUsernameTaken, Err: entity.ErrUsernameTaken}
	}

	hash, err := uc.Hasher.Hash(input.Password)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "could not hash password", Err: err}
	}

	user, err := entity.NewUser(input.Username, hash, role)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrUsernameTaken) {
			return nil, &DomainError{Code: CodeUsernameTaken, Message: MsgUsernameTaken, Err: err}
		}
		return nil, databaseError("could not create user", err)
	}
	return user, nil
}

func (uc *AuthUseCase) issue(username string, role entity.Role) (*AuthResult, error) {
	token, expiresAt, err := uc.Tokens.Issue(username, role)
	if err != nil {
		return nil, &TechnicalError{Code: CodeToken, Message: "could not issue token", Err: err}
	}
	return &AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      UserView{Username: username, Role: role},
	}, nil
}

func invalidCredentials(err error) *DomainError {
	return &DomainError{Code: CodeInvalidCredentials, Message: MsgInvalidCredentials, Err: err}
}
