package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/tokovape/tokovape_api/internal/models"
	"github.com/tokovape/tokovape_api/internal/repository"
	"github.com/tokovape/tokovape_api/internal/sse"
	"github.com/tokovape/tokovape_api/internal/utils"
)

// StockService provides the staff stock-management operations. Admins may
// touch any branch; vaporistas only their home branch. Concurrent edits to
// one row are last-write-wins at the store, no conflict detection.
type StockService struct {
	stockRepo  *repository.StockRepository
	branchRepo *repository.BranchRepository
	notifier   sse.StockNotifier
}

func NewStockService(stockRepo *repository.StockRepository, branchRepo *repository.BranchRepository, notifier sse.StockNotifier) *StockService {
	if notifier == nil {
		notifier = &sse.NopNotifier{}
	}
	return &StockService{stockRepo: stockRepo, branchRepo: branchRepo, notifier: notifier}
}

// Actor identifies the staff member performing a stock mutation.
type Actor struct {
	UserID   string
	Role     string
	BranchID *string
}

// canTouch reports whether the actor may mutate stock at the branch.
func (a Actor) canTouch(branchID string) bool {
	if a.Role == models.RoleAdmin {
		return true
	}
	return a.BranchID != nil && *a.BranchID == branchID
}

// ListByBranch returns the branch's stock screen rows.
func (s *StockService) ListByBranch(ctx context.Context, actor Actor, branchID string) ([]models.DashboardStockItem, error) {
	if !actor.canTouch(branchID) {
		return nil, utils.ErrBranchForbidden
	}
	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrBranchNotFound
		}
		return nil, err
	}
	return s.stockRepo.GetByBranchID(ctx, branchID)
}

// SetQuantity sets the absolute on-hand count for one (branch, SKU) row.
// Negative requests are clamped to zero rather than rejected mid-render.
func (s *StockService) SetQuantity(ctx context.Context, actor Actor, branchID, skuID string, quantity int) (*models.StockRow, error) {
	if !actor.canTouch(branchID) {
		return nil, utils.ErrBranchForbidden
	}

	row, err := s.stockRepo.SetQuantity(ctx, branchID, skuID, quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrStockRowNotFound
		}
		return nil, err
	}

	log.Info().
		Str("user_id", actor.UserID).
		Str("branch_id", branchID).
		Str("sku_id", skuID).
		Int("quantity", row.Quantity).
		Msg("Stock quantity set")
	s.notifier.NotifyStockUpdated(row)
	return row, nil
}

// AdjustQuantity applies a ±delta to one row, clamped at zero.
func (s *StockService) AdjustQuantity(ctx context.Context, actor Actor, branchID, skuID string, delta int) (*models.StockRow, error) {
	if !actor.canTouch(branchID) {
		return nil, utils.ErrBranchForbidden
	}

	row, err := s.stockRepo.AdjustQuantity(ctx, branchID, skuID, delta)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrStockRowNotFound
		}
		return nil, err
	}

	log.Info().
		Str("user_id", actor.UserID).
		Str("branch_id", branchID).
		Str("sku_id", skuID).
		Int("delta", delta).
		Int("quantity", row.Quantity).
		Msg("Stock quantity adjusted")
	s.notifier.NotifyStockUpdated(row)
	return row, nil
}

// Assign creates or replaces a stock row for a branch (admin only).
func (s *StockService) Assign(ctx context.Context, actor Actor, row *models.StockRow) error {
	if actor.Role != models.RoleAdmin {
		return utils.ErrBranchForbidden
	}
	if err := s.stockRepo.Upsert(ctx, row); err != nil {
		return err
	}
	s.notifier.NotifyStockUpdated(row)
	return nil
}

// LowStock returns all rows at or below their threshold (admin overview).
func (s *StockService) LowStock(ctx context.Context) ([]models.DashboardStockItem, error) {
	return s.stockRepo.GetLowStock(ctx)
}
