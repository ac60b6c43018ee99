package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/corporate-ask/internal/entity"
)

var errMismatch = errors.New("password mismatch")

// plainHasher prefixes passwords so tests can see what was stored.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errMismatch
	}
	return nil
}

type stubIssuer struct{}

func (stubIssuer) Issue(username string, role entity.Role) (string, time.Time, error) {
	return "token-" + username + "-" + string(role), fixedNow.Add(12 * time.Hour), nil
}

type recordingRevoker struct {
	revoked map[string]time.Time
}

func (r *recordingRevoker) Revoke(_ context.Context, id string, until time.Time) error {
	r.revoked[id] = until
	return nil
}

func newAuthUseCase(bootstrap BootstrapAdmin) (*AuthUseCase, *MockUserRepository, *recordingRevoker) {
	users := new(MockUserRepository)
	revoker := &recordingRevoker{revoked: map[string]time.Time{}}
	return NewAuthUseCase(users, plainHasher{}, stubIssuer{}, revoker, bootstrap), users, revoker
}

func TestLoginBootstrapAdmin(t *testing.T) {
	uc, users, _ := newAuthUseCase(BootstrapAdmin{Username: "admin", Password: "s3cret"})

	res, err := uc.Login(context.Background(), Credentials{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, res.User.Role)
	assert.Equal(t, "token-admin-admin", res.Token)
	users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestLoginBootstrapDisabledWithoutPassword(t *testing.T) {
	uc, users, _ := newAuthUseCase(BootstrapAdmin{Username: "admin"})
	users.On("FindByUsername", mock.Anything, "admin").Return(nil, entity.ErrUserNotFound)

	_, err := uc.Login(context.Background(), Credentials{Username: "admin", Password: "anything"})

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, CodeInvalidCredentials, de.Code)
	assert.Equal(t, MsgInvalidCredentials, de.Message)
}

func TestLoginStoredUser(t *testing.T) {
	uc, users, _ := newAuthUseCase(BootstrapAdmin{})
	users.On("FindByUsername", mock.Anything, "karim").Return(&entity.User{
		Username: "karim", PasswordHash: "hashed:pw", Role: entity.RoleCustomer,
	}, nil)

	res, err := uc.Login(context.Background(), Credentials{Username: " karim ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, res.User.Role)

	_, err = uc.Login(context.Background(), Credentials{Username: "karim", Password: "wrong"})
	assert.ErrorIs(t, err, errMismatch)
	assert.True(t, IsDomainError(err))
}

func TestSignUp(t *testing.T) {
	uc, users, _ := newAuthUseCase(BootstrapAdmin{})
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "nadia" && u.PasswordHash == "hashed:pw" && u.Role == entity.RoleCustomer
	})).Return(nil)

	res, err := uc.SignUp(context.Background(), Credentials{Username: "nadia", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "nadia", res.User.Username)
	users.AssertExpectations(t)
}

func TestSignUpUsernameTaken(t *testing.T) {
	uc, users, _ := newAuthUseCase(BootstrapAdmin{})
	users.On("Create", mock.Anything, mock.Anything).Return(entity.ErrUsernameTaken)

	_, err := uc.SignUp(context.Background(), Credentials{Username: "nadia", Password: "pw"})

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, CodeUsernameTaken, de.Code)
	assert.Equal(t, MsgUsernameTaken, de.Message)
}

func TestAddAdmin(t *testing.T) {
	uc, users, _ := newAuthUseCase(BootstrapAdmin{Username: "admin", Password: "x"})
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	u, err := uc.AddAdmin(context.Background(), Credentials{Username: "ops", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	_, err = uc.AddAdmin(context.Background(), Credentials{Username: "admin", Password: "pw"})
	assert.ErrorIs(t, err, entity.ErrUsernameTaken)
}

func TestLogoutRevokesToken(t *testing.T) {
	uc, _, revoker := newAuthUseCase(BootstrapAdmin{})
	until := fixedNow.Add(time.Hour)

	require.NoError(t, uc.Logout(context.Background(), "jti-1", until))
	assert.Equal(t, until, revoker.revoked["jti-1"])
}
