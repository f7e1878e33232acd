package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"jencrm_backend/internal/models"
)

// DealRepository defines the interface for deal-related database operations.
// Deals expose no update or delete path.
type DealRepository interface {
	CreateDeal(ctx context.Context, deal *models.Deal) error
	GetDealByID(ctx context.Context, id int64) (*models.Deal, error)
	GetDeals(ctx context.Context) ([]models.Deal, error)
}

type dealRepository struct {
	db SQLExecutor
}

// NewDealRepository creates a new instance of DealRepository.
func NewDealRepository(db SQLExecutor) DealRepository {
	return &dealRepository{db: db}
}

const dealColumns = `id, client_id, deal_amount, commission_percent, commission_amount, tour_operator, deal_date, payment_due_date, status, description, created_at, updated_at`

const dateLayout = "2006-01-02"

// CreateDeal inserts a new deal and fills in the server-assigned fields.
// The commission amount is computed by the service layer before this call.
func (r *dealRepository) CreateDeal(ctx context.Context, deal *models.Deal) error {
	query := `INSERT INTO deals (client_id, deal_amount, commission_percent, commission_amount,
	              tour_operator, deal_date, payment_due_date, status, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id, created_at, updated_at`

	var createdAt, updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query,
		deal.ClientID, deal.DealAmount, deal.CommissionPercent, deal.CommissionAmount,
		deal.TourOperator, deal.DealDate, deal.PaymentDueDate, string(deal.Status), deal.Description,
	).Scan(&deal.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("%w: client ID %d does not exist (constraint: %s)", ErrForeignKeyViolation, deal.ClientID, pqErr.Constraint)
		}
		return fmt.Errorf("%w: creating deal: %v", ErrDatabaseError, err)
	}
	assignTime(&deal.CreatedAt, createdAt)
	assignTime(&deal.UpdatedAt, updatedAt)
	return nil
}

// GetDealByID retrieves a deal by its ID.
func (r *dealRepository) GetDealByID(ctx context.Context, id int64) (*models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`

	deal, err := scanDeal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting deal by ID %d: %v", ErrDatabaseError, id, err)
	}
	return deal, nil
}

// GetDeals retrieves all deals ordered by ID ascending.
func (r *dealRepository) GetDeals(ctx context.Context) ([]models.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying deals: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	deals := []models.Deal{}
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning deal: %v", ErrDatabaseError, err)
		}
		deals = append(deals, *deal)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating deal rows: %v", ErrDatabaseError, err)
	}
	return deals, nil
}

func scanDeal(s scanner) (*models.Deal, error) {
	deal := &models.Deal{}
	var status string
	var dealDate, paymentDueDate time.Time
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&deal.ID, &deal.ClientID, &deal.DealAmount, &deal.CommissionPercent, &deal.CommissionAmount,
		&deal.TourOperator, &dealDate, &paymentDueDate, &status, &deal.Description,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	deal.DealDate = dealDate.Format(dateLayout)
	deal.PaymentDueDate = paymentDueDate.Format(dateLayout)
	deal.Status = models.DealStatus(status)
	assignTime(&deal.CreatedAt, createdAt)
	assignTime(&deal.UpdatedAt, updatedAt)
	return deal, nil
}
