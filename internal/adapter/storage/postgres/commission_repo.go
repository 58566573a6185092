package postgres

import (
	"context"
	"errors"
	"fmt"

	"agenin-transaction/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommissionRepo implements ports.CommissionRepository.
type CommissionRepo struct {
	pool Pool
}

// NewCommissionRepo creates a new CommissionRepo.
func NewCommissionRepo(pool Pool) *CommissionRepo {
	return &CommissionRepo{pool: pool}
}

// GetByProductID fetches the commission value owed per sale of a product.
func (r *CommissionRepo) GetByProductID(ctx context.Context, productID uuid.UUID) (*domain.Commission, error) {
	query := `SELECT id, product_id, value
		FROM product_commissions WHERE product_id = $1`

	c := &domain.Commission{}
	err := r.pool.QueryRow(ctx, query, productID).Scan(&c.ID, &c.ProductID, &c.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commission by product: %w", err)
	}
	return c, nil
}
