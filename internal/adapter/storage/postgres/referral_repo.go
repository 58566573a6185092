package postgres

import (
	"context"
	"errors"
	"fmt"

	"agenin-transaction/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReferralRepo implements ports.ReferralRepository. Referral mappings
// are owned by the onboarding service; this side only reads them.
type ReferralRepo struct {
	pool Pool
}

// NewReferralRepo creates a new ReferralRepo.
func NewReferralRepo(pool Pool) *ReferralRepo {
	return &ReferralRepo{pool: pool}
}

// GetByInviteeUserID resolves the referring parent for an invited user.
func (r *ReferralRepo) GetByInviteeUserID(ctx context.Context, inviteeUserID uuid.UUID) (*domain.Referral, error) {
	query := `SELECT id, invitee_user_id, reference_user_id
		FROM user_referrals WHERE invitee_user_id = $1`

	ref := &domain.Referral{}
	err := r.pool.QueryRow(ctx, query, inviteeUserID).Scan(&ref.ID, &ref.InviteeUserID, &ref.ReferenceUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get referral by invitee: %w", err)
	}
	return ref, nil
}
