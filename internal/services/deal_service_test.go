package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jencrm_backend/internal/models"
	"jencrm_backend/internal/repositories"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func validDealRequest() CreateDealRequest {
	return CreateDealRequest{
		ClientID:          1,
		DealAmount:        decimalPtr(decimal.NewFromFloat(1000.0)),
		CommissionPercent: decimalPtr(decimal.NewFromFloat(10.0)),
		TourOperator:      "TezTour",
		DealDate:          "2024-01-01",
		PaymentDueDate:    "2024-01-15",
	}
}

func TestCreateDealRequest_CalculateCommission(t *testing.T) {
	cases := []struct {
		name    string
		amount  string
		percent string
		want    string
	}{
		{"round figures", "1000", "10", "100"},
		{"fractional percent", "2500.50", "7.5", "187.5375"},
		{"zero percent", "1000", "0", "0"},
		{"zero amount", "0", "15", "0"},
		{"cent-level amount", "0.03", "10", "0.003"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := CreateDealRequest{
				DealAmount:        decimalPtr(decimal.RequireFromString(tc.amount)),
				CommissionPercent: decimalPtr(decimal.RequireFromString(tc.percent)),
			}
			got := req.CalculateCommission()
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"commission = %s, want %s", got, tc.want)
		})
	}
}

func TestDealService_CreateDeal(t *testing.T) {
	t.Run("status defaults to draft and commission is computed", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		repo.On("CreateDeal", mock.Anything, mock.MatchedBy(func(d *models.Deal) bool {
			return d.Status == models.DealStatusDraft &&
				d.CommissionAmount.Equal(decimal.NewFromInt(100))
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Deal).ID = 1
		}).Return(nil)

		deal, err := svc.CreateDeal(context.Background(), validDealRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(1), deal.ID)
		assert.Equal(t, models.DealStatusDraft, deal.Status)
		assert.True(t, deal.CommissionAmount.Equal(decimal.NewFromInt(100)))
		repo.AssertExpectations(t)
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		status := models.DealStatusActive
		req := validDealRequest()
		req.Status = &status

		repo.On("CreateDeal", mock.Anything, mock.MatchedBy(func(d *models.Deal) bool {
			return d.Status == models.DealStatusActive
		})).Return(nil)

		deal, err := svc.CreateDeal(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, models.DealStatusActive, deal.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		status := models.DealStatus("archived")
		req := validDealRequest()
		req.Status = &status

		_, err := svc.CreateDeal(context.Background(), req)
		assert.ErrorIs(t, err, ErrDealValidation)
		repo.AssertNotCalled(t, "CreateDeal")
	})

	t.Run("malformed dates rejected", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		req := validDealRequest()
		req.DealDate = "01.01.2024"

		_, err := svc.CreateDeal(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateFormat)

		req = validDealRequest()
		req.PaymentDueDate = "2024-13-40"
		_, err = svc.CreateDeal(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateFormat)
	})

	t.Run("omitted deal_amount rejected", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		req := validDealRequest()
		req.DealAmount = nil

		_, err := svc.CreateDeal(context.Background(), req)
		assert.ErrorIs(t, err, ErrDealValidation)
		repo.AssertNotCalled(t, "CreateDeal")
	})

	t.Run("omitted commission_percent rejected", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		req := validDealRequest()
		req.CommissionPercent = nil

		_, err := svc.CreateDeal(context.Background(), req)
		assert.ErrorIs(t, err, ErrDealValidation)
		repo.AssertNotCalled(t, "CreateDeal")
	})

	t.Run("explicit zero amount accepted", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		req := validDealRequest()
		req.DealAmount = decimalPtr(decimal.Zero)

		repo.On("CreateDeal", mock.Anything, mock.MatchedBy(func(d *models.Deal) bool {
			return d.DealAmount.IsZero() && d.CommissionAmount.IsZero()
		})).Return(nil)

		_, err := svc.CreateDeal(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		req := validDealRequest()
		req.DealAmount = decimalPtr(decimal.NewFromInt(-1))

		_, err := svc.CreateDeal(context.Background(), req)
		assert.ErrorIs(t, err, ErrDealValidation)
	})

	t.Run("percent above 100 accepted", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		req := validDealRequest()
		req.CommissionPercent = decimalPtr(decimal.NewFromInt(150))

		repo.On("CreateDeal", mock.Anything, mock.MatchedBy(func(d *models.Deal) bool {
			return d.CommissionAmount.Equal(decimal.NewFromInt(1500))
		})).Return(nil)

		_, err := svc.CreateDeal(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("negative percent rejected", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		req := validDealRequest()
		req.CommissionPercent = decimalPtr(decimal.NewFromInt(-5))

		_, err := svc.CreateDeal(context.Background(), req)
		assert.ErrorIs(t, err, ErrDealValidation)
	})

	t.Run("blank tour operator rejected", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		req := validDealRequest()
		req.TourOperator = "  "

		_, err := svc.CreateDeal(context.Background(), req)
		assert.ErrorIs(t, err, ErrDealValidation)
	})

	t.Run("unknown client translated to service error", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		repo.On("CreateDeal", mock.Anything, mock.Anything).Return(repositories.ErrForeignKeyViolation)

		_, err := svc.CreateDeal(context.Background(), validDealRequest())
		assert.ErrorIs(t, err, ErrDealClientNotFound)
	})
}

func TestDealService_GetDealByID(t *testing.T) {
	t.Run("not found translated to service error", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		repo.On("GetDealByID", mock.Anything, int64(77)).Return(nil, repositories.ErrNotFound)

		_, err := svc.GetDealByID(context.Background(), 77)
		assert.ErrorIs(t, err, ErrDealNotFound)
	})
}

func TestDealService_GetDeals(t *testing.T) {
	t.Run("persistence failure propagates, no empty-list fallback", func(t *testing.T) {
		repo := new(MockDealRepository)
		svc := NewDealService(repo)

		repo.On("GetDeals", mock.Anything).Return(nil, repositories.ErrDatabaseError)

		deals, err := svc.GetDeals(context.Background())
		assert.Nil(t, deals)
		assert.ErrorIs(t, err, repositories.ErrDatabaseError)
	})
}
