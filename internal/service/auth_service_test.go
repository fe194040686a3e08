package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

type mockAccountRepo struct {
	accounts map[string]models.StaffAccount
	profiles map[string]models.StaffProfile

	createdAccounts []models.StaffAccount
	createdProfiles []models.StaffProfile
	accountErr      error
	profileErr      error
}

func (m *mockAccountRepo) FindAccountByEmail(ctx context.Context, email string) (*models.StaffAccount, error) {
	if a, ok := m.accounts[email]; ok {
		return &a, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAccountRepo) FindProfileByID(ctx context.Context, id string) (*models.StaffProfile, error) {
	if p, ok := m.profiles[id]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAccountRepo) CreateAccount(ctx context.Context, account *models.StaffAccount) error {
	if m.accountErr != nil {
		return m.accountErr
	}
	if account.ID == "" {
		account.ID = "generated-account-id"
	}
	m.createdAccounts = append(m.createdAccounts, *account)
	return nil
}

func (m *mockAccountRepo) CreateProfile(ctx context.Context, profile *models.StaffProfile) error {
	if m.profileErr != nil {
		return m.profileErr
	}
	m.createdProfiles = append(m.createdProfiles, *profile)
	return nil
}

type mockPendingRepo struct {
	byID      map[int64]models.PendingUser
	byEmail   map[string]models.PendingUser
	created   []models.PendingUser
	statuses  map[int64]models.PendingStatus
	statusErr error
}

func (m *mockPendingRepo) FindByID(ctx context.Context, id int64) (*models.PendingUser, error) {
	if p, ok := m.byID[id]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockPendingRepo) FindByEmail(ctx context.Context, email string) (*models.PendingUser, error) {
	if p, ok := m.byEmail[email]; ok {
		return &p, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockPendingRepo) Create(ctx context.Context, pending *models.PendingUser) error {
	pending.ID = int64(len(m.created) + 1)
	m.created = append(m.created, *pending)
	return nil
}

func (m *mockPendingRepo) ListPending(ctx context.Context) ([]models.PendingUser, error) {
	var out []models.PendingUser
	for _, p := range m.byID {
		if p.Status == models.PendingStatusPending {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPendingRepo) UpdateStatus(ctx context.Context, id int64, status models.PendingStatus) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	if m.statuses == nil {
		m.statuses = make(map[int64]models.PendingStatus)
	}
	m.statuses[id] = status
	return nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthFixture(t *testing.T) (*AuthService, *mockAccountRepo, *mockPendingRepo) {
	accounts := &mockAccountRepo{
		accounts: map[string]models.StaffAccount{},
		profiles: map[string]models.StaffProfile{},
	}
	pending := &mockPendingRepo{byID: map[int64]models.PendingUser{}, byEmail: map[string]models.PendingUser{}}
	svc := NewAuthService(accounts, pending, nil, nil, AuthConfig{
		TokenSecret: "test-secret",
		TokenExpiry: time.Hour,
		Issuer:      "sci-intranet",
	})
	return svc, accounts, pending
}

func TestLoginSucceedsForApprovedProfile(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	accounts.accounts["dana@scintranet.edu"] = models.StaffAccount{
		ID:           "acc-1",
		Email:        "dana@scintranet.edu",
		PasswordHash: mustHash(t, "s3cret!"),
	}
	accounts.profiles["acc-1"] = models.StaffProfile{
		ID: "acc-1", Email: "dana@scintranet.edu", FullName: "Dana Reyes",
		Role: models.RoleStaff, IsApproved: true,
	}

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "Dana@scintranet.edu", Password: "s3cret!"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "Dana Reyes", res.User.FullName)
	assert.Equal(t, models.RoleStaff, res.User.Role)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.UserID)
	assert.Equal(t, models.RoleStaff, claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	accounts.accounts["dana@scintranet.edu"] = models.StaffAccount{
		ID: "acc-1", PasswordHash: mustHash(t, "right"),
	}

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "dana@scintranet.edu", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestLoginRejectsMissingProfile(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	accounts.accounts["dana@scintranet.edu"] = models.StaffAccount{
		ID: "acc-1", PasswordHash: mustHash(t, "s3cret!"),
	}

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "dana@scintranet.edu", Password: "s3cret!"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrProfileNotFound.Code, appErrors.FromError(err).Code)
}

func TestLoginRejectsUnapprovedProfile(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	accounts.accounts["dana@scintranet.edu"] = models.StaffAccount{
		ID: "acc-1", PasswordHash: mustHash(t, "s3cret!"),
	}
	accounts.profiles["acc-1"] = models.StaffProfile{ID: "acc-1", IsApproved: false}

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "dana@scintranet.edu", Password: "s3cret!"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPendingApproval.Code, appErrors.FromError(err).Code)
}

func TestRegisterCreatesPendingRequest(t *testing.T) {
	svc, _, pending := newAuthFixture(t)

	created, err := svc.Register(context.Background(), models.RegisterRequest{
		FullName: "New Staff",
		Email:    "New.Staff@scintranet.edu",
		Password: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, "new.staff@scintranet.edu", created.Email)
	assert.Equal(t, models.PendingStatusPending, created.Status)
	require.Len(t, pending.created, 1)

	// The raw password never survives registration.
	assert.NotEqual(t, "longenough", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("longenough")))
}

func TestRegisterRejectsExistingAccount(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	accounts.accounts["dana@scintranet.edu"] = models.StaffAccount{ID: "acc-1"}

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		FullName: "Dana", Email: "dana@scintranet.edu", Password: "longenough",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestRegisterRejectsDuplicatePendingRequest(t *testing.T) {
	svc, _, pending := newAuthFixture(t)
	pending.byEmail["dana@scintranet.edu"] = models.PendingUser{
		ID: 1, Email: "dana@scintranet.edu", Status: models.PendingStatusPending,
	}

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		FullName: "Dana", Email: "dana@scintranet.edu", Password: "longenough",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		FullName: "Dana", Email: "dana@scintranet.edu", Password: "short",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCurrentUserInvalidatesRevokedApproval(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	accounts.profiles["acc-1"] = models.StaffProfile{ID: "acc-1", IsApproved: false}

	_, err := svc.CurrentUser(context.Background(), &models.JWTClaims{UserID: "acc-1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPendingApproval.Code, appErrors.FromError(err).Code)

	_, err = svc.CurrentUser(context.Background(), &models.JWTClaims{UserID: "gone"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrProfileNotFound.Code, appErrors.FromError(err).Code)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	accounts.accounts["dana@scintranet.edu"] = models.StaffAccount{
		ID: "acc-1", PasswordHash: mustHash(t, "s3cret!"),
	}
	accounts.profiles["acc-1"] = models.StaffProfile{ID: "acc-1", IsApproved: true}

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "dana@scintranet.edu", Password: "s3cret!"})
	require.NoError(t, err)

	other := NewAuthService(accounts, nil, nil, nil, AuthConfig{TokenSecret: "different", TokenExpiry: time.Hour})
	_, err = other.ValidateToken(res.AccessToken)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
