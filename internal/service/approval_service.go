package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
	"github.com/scintranet/staff-api/pkg/mailer"
)

type approvalAccountRepository interface {
	CreateAccount(ctx context.Context, account *models.StaffAccount) error
	CreateProfile(ctx context.Context, profile *models.StaffProfile) error
}

type approvalPendingRepository interface {
	FindByID(ctx context.Context, id int64) (*models.PendingUser, error)
	ListPending(ctx context.Context) ([]models.PendingUser, error)
	UpdateStatus(ctx context.Context, id int64, status models.PendingStatus) error
}

// AcceptResult reports the outcome of a successful approval.
type AcceptResult struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// ApprovalService drives the pending -> accepted user state machine.
// The transition is one-directional and only a super admin reaches it.
type ApprovalService struct {
	accounts approvalAccountRepository
	pending  approvalPendingRepository
	mail     mailer.Mailer
	logger   *zap.Logger
}

// NewApprovalService constructs the service. The mailer may be nil, in which
// case no notification is attempted.
func NewApprovalService(accounts approvalAccountRepository, pending approvalPendingRepository, mail mailer.Mailer, logger *zap.Logger) *ApprovalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApprovalService{accounts: accounts, pending: pending, mail: mail, logger: logger}
}

// ListPending returns registration requests awaiting approval.
func (s *ApprovalService) ListPending(ctx context.Context) ([]models.PendingUser, error) {
	pending, err := s.pending.ListPending(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list pending users")
	}
	return pending, nil
}

// Accept promotes a pending user. Steps run in order and each failure aborts
// the rest, surfacing the stage that failed:
//
//  1. fetch the pending record,
//  2. create the auth identity (pre-confirmed, hash copied as-is),
//  3. create the approved staff profile,
//  4. mark the pending record accepted.
//
// A step 4 failure is logged only: the identity and profile already exist, so
// the operation still reports success.
func (s *ApprovalService) Accept(ctx context.Context, id int64) (*AcceptResult, error) {
	pending, err := s.pending.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "pending user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch pending user")
	}
	if pending.Status != models.PendingStatusPending {
		return nil, appErrors.Clone(appErrors.ErrConflict, "pending user was already accepted")
	}

	account := &models.StaffAccount{
		Email:        pending.Email,
		PasswordHash: pending.PasswordHash,
		Confirmed:    true,
	}
	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("auth error: failed to create identity for %s", pending.Email))
	}

	profile := &models.StaffProfile{
		ID:         account.ID,
		Email:      pending.Email,
		FullName:   pending.FullName,
		Role:       models.RoleStaff,
		IsApproved: true,
	}
	if err := s.accounts.CreateProfile(ctx, profile); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, fmt.Sprintf("profile error: failed to create profile for %s", pending.Email))
	}

	if err := s.pending.UpdateStatus(ctx, pending.ID, models.PendingStatusAccepted); err != nil {
		// Known inconsistency: the identity and profile exist but the
		// request still reads pending. Accepted, not rolled back.
		s.logger.Warn("could not mark pending user accepted",
			zap.Int64("pending_id", pending.ID),
			zap.String("email", pending.Email),
			zap.Error(err))
	}

	s.notifyAccepted(ctx, pending)

	return &AcceptResult{UserID: account.ID, Email: pending.Email}, nil
}

// notifyAccepted sends a courtesy email. Best-effort only.
func (s *ApprovalService) notifyAccepted(ctx context.Context, pending *models.PendingUser) {
	if s.mail == nil {
		return
	}
	subject := "Your SCI Intranet access has been approved"
	body := fmt.Sprintf("<p>Hello %s,</p><p>Your staff access request has been approved. You can now sign in with your registered email address.</p>", pending.FullName)
	if err := s.mail.Send(ctx, pending.Email, subject, body); err != nil {
		s.logger.Warn("failed to send approval notification",
			zap.String("email", pending.Email),
			zap.Error(err))
	}
}
