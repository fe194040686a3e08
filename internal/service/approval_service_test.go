package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

type mockMailer struct {
	sent []string
	err  error
}

func (m *mockMailer) Send(ctx context.Context, to, subject, html string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func TestAcceptPromotesPendingUser(t *testing.T) {
	accounts := &mockAccountRepo{}
	pending := &mockPendingRepo{byID: map[int64]models.PendingUser{
		7: {ID: 7, Email: "new@scintranet.edu", FullName: "New Staff", PasswordHash: "$2a$10$hash", Status: models.PendingStatusPending},
	}}
	mail := &mockMailer{}
	svc := NewApprovalService(accounts, pending, mail, nil)

	result, err := svc.Accept(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "generated-account-id", result.UserID)
	assert.Equal(t, "new@scintranet.edu", result.Email)

	require.Len(t, accounts.createdAccounts, 1)
	account := accounts.createdAccounts[0]
	assert.True(t, account.Confirmed)
	assert.Equal(t, "$2a$10$hash", account.PasswordHash)

	require.Len(t, accounts.createdProfiles, 1)
	profile := accounts.createdProfiles[0]
	assert.Equal(t, account.ID, profile.ID)
	assert.Equal(t, models.RoleStaff, profile.Role)
	assert.True(t, profile.IsApproved)

	assert.Equal(t, models.PendingStatusAccepted, pending.statuses[7])
	assert.Equal(t, []string{"new@scintranet.edu"}, mail.sent)
}

func TestAcceptUnknownPendingUser(t *testing.T) {
	svc := NewApprovalService(&mockAccountRepo{}, &mockPendingRepo{byID: map[int64]models.PendingUser{}}, nil, nil)

	_, err := svc.Accept(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAcceptAlreadyAcceptedUser(t *testing.T) {
	pending := &mockPendingRepo{byID: map[int64]models.PendingUser{
		3: {ID: 3, Email: "done@scintranet.edu", Status: models.PendingStatusAccepted},
	}}
	svc := NewApprovalService(&mockAccountRepo{}, pending, nil, nil)

	_, err := svc.Accept(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestAcceptAbortsWhenIdentityCreationFails(t *testing.T) {
	accounts := &mockAccountRepo{accountErr: errors.New("duplicate email")}
	pending := &mockPendingRepo{byID: map[int64]models.PendingUser{
		7: {ID: 7, Email: "new@scintranet.edu", Status: models.PendingStatusPending},
	}}
	svc := NewApprovalService(accounts, pending, nil, nil)

	_, err := svc.Accept(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth error")
	assert.Empty(t, accounts.createdProfiles)
	assert.Empty(t, pending.statuses)
}

func TestAcceptSucceedsDespiteStatusUpdateFailure(t *testing.T) {
	accounts := &mockAccountRepo{}
	pending := &mockPendingRepo{
		byID: map[int64]models.PendingUser{
			7: {ID: 7, Email: "new@scintranet.edu", FullName: "New Staff", Status: models.PendingStatusPending},
		},
		statusErr: errors.New("connection reset"),
	}
	svc := NewApprovalService(accounts, pending, nil, nil)

	result, err := svc.Accept(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "new@scintranet.edu", result.Email)
	require.Len(t, accounts.createdAccounts, 1)
	require.Len(t, accounts.createdProfiles, 1)
}

func TestAcceptToleratesMailerFailure(t *testing.T) {
	accounts := &mockAccountRepo{}
	pending := &mockPendingRepo{byID: map[int64]models.PendingUser{
		7: {ID: 7, Email: "new@scintranet.edu", Status: models.PendingStatusPending},
	}}
	svc := NewApprovalService(accounts, pending, &mockMailer{err: errors.New("rate limited")}, nil)

	_, err := svc.Accept(context.Background(), 7)
	require.NoError(t, err)
}
