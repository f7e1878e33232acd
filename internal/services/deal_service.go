package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"jencrm_backend/internal/models"
	"jencrm_backend/internal/repositories"
	"jencrm_backend/pkg/utils"
)

// --- Custom Service Errors for Deal ---
var (
	ErrDealNotFound       = errors.New("deal not found")
	ErrDealValidation     = errors.New("deal data validation error")
	ErrDealClientNotFound = errors.New("referenced client does not exist")
	ErrDateFormat         = errors.New("invalid date format, please use YYYY-MM-DD")
)

// CreateDealRequest is the payload for creating a deal. There is deliberately
// no commission_amount field: the commission is always computed server-side.
// The money fields are pointers so that an omitted field is distinguishable
// from an explicit zero and can be rejected.
type CreateDealRequest struct {
	ClientID          int64              `json:"client_id" binding:"required"`
	DealAmount        *decimal.Decimal   `json:"deal_amount" binding:"required"`
	CommissionPercent *decimal.Decimal   `json:"commission_percent" binding:"required"`
	TourOperator      string             `json:"tour_operator" binding:"required"`
	DealDate          string             `json:"deal_date" binding:"required"`
	PaymentDueDate    string             `json:"payment_due_date" binding:"required"`
	Status            *models.DealStatus `json:"status"`
	Description       *string            `json:"description"`
}

// CalculateCommission applies the commission rule:
// commission_amount = deal_amount * commission_percent / 100.
// Both fields must be present; validateDealData checks that first.
func (r CreateDealRequest) CalculateCommission() decimal.Decimal {
	return r.DealAmount.Mul(*r.CommissionPercent).Div(decimal.NewFromInt(100))
}

// DealService owns validation, status defaulting and commission computation.
type DealService interface {
	CreateDeal(ctx context.Context, req CreateDealRequest) (*models.Deal, error)
	GetDealByID(ctx context.Context, dealID int64) (*models.Deal, error)
	GetDeals(ctx context.Context) ([]models.Deal, error)
}

type dealService struct {
	dealRepo repositories.DealRepository
}

// NewDealService creates a new instance of DealService.
func NewDealService(repo repositories.DealRepository) DealService {
	return &dealService{dealRepo: repo}
}

func validateDealData(req CreateDealRequest) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: client_id must be a positive integer", ErrDealValidation)
	}
	if req.DealAmount == nil {
		return fmt.Errorf("%w: deal_amount is required", ErrDealValidation)
	}
	if req.CommissionPercent == nil {
		return fmt.Errorf("%w: commission_percent is required", ErrDealValidation)
	}
	if req.DealAmount.IsNegative() {
		return fmt.Errorf("%w: deal_amount cannot be negative", ErrDealValidation)
	}
	if req.CommissionPercent.IsNegative() {
		return fmt.Errorf("%w: commission_percent cannot be negative", ErrDealValidation)
	}
	if utils.IsEmpty(req.TourOperator) {
		return fmt.Errorf("%w: tour operator cannot be empty", ErrDealValidation)
	}
	if _, err := time.Parse("2006-01-02", req.DealDate); err != nil {
		return fmt.Errorf("%w: deal_date", ErrDateFormat)
	}
	if _, err := time.Parse("2006-01-02", req.PaymentDueDate); err != nil {
		return fmt.Errorf("%w: payment_due_date", ErrDateFormat)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrDealValidation, *req.Status)
	}
	return nil
}

func (s *dealService) CreateDeal(ctx context.Context, req CreateDealRequest) (*models.Deal, error) {
	if err := validateDealData(req); err != nil {
		return nil, err
	}

	status := models.DealStatusDraft
	if req.Status != nil {
		status = *req.Status
	}

	deal := &models.Deal{
		ClientID:          req.ClientID,
		DealAmount:        *req.DealAmount,
		CommissionPercent: *req.CommissionPercent,
		CommissionAmount:  req.CalculateCommission(),
		TourOperator:      req.TourOperator,
		DealDate:          req.DealDate,
		PaymentDueDate:    req.PaymentDueDate,
		Status:            status,
		Description:       req.Description,
	}

	if err := s.dealRepo.CreateDeal(ctx, deal); err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, ErrDealClientNotFound
		}
		return nil, fmt.Errorf("failed to create deal in repository: %w", err)
	}
	return deal, nil
}

func (s *dealService) GetDealByID(ctx context.Context, dealID int64) (*models.Deal, error) {
	deal, err := s.dealRepo.GetDealByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to get deal by ID: %w", err)
	}
	return deal, nil
}

func (s *dealService) GetDeals(ctx context.Context) ([]models.Deal, error) {
	deals, err := s.dealRepo.GetDeals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get deals: %w", err)
	}
	return deals, nil
}
