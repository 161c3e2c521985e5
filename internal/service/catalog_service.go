package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/tokovape/tokovape_api/internal/cache"
	"github.com/tokovape/tokovape_api/internal/models"
	"github.com/tokovape/tokovape_api/internal/repository"
	"github.com/tokovape/tokovape_api/internal/utils"
	"github.com/tokovape/tokovape_api/internal/variant"
	"github.com/tokovape/tokovape_api/pkg/whatsapp"
)

// CatalogService assembles storefront payloads and runs the variant core
// (resolution, availability, pricing, order-message building) over data
// fetched per page view.
type CatalogService struct {
	productRepo  *repository.ProductRepository
	optionRepo   *repository.OptionRepository
	skuRepo      *repository.SKURepository
	stockRepo    *repository.StockRepository
	catalogCache *cache.CatalogCache
}

// NewCatalogService constructs a CatalogService. catalogCache may be nil to
// disable caching (tests, cache outage).
func NewCatalogService(
	productRepo *repository.ProductRepository,
	optionRepo *repository.OptionRepository,
	skuRepo *repository.SKURepository,
	stockRepo *repository.StockRepository,
	catalogCache *cache.CatalogCache,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		optionRepo:   optionRepo,
		skuRepo:      skuRepo,
		stockRepo:    stockRepo,
		catalogCache: catalogCache,
	}
}

// ProductDetail is everything the product page needs in one payload.
type ProductDetail struct {
	Product     models.Product          `json:"product"`
	OptionTypes []models.OptionType     `json:"optionTypes"`
	SKUs        []models.SKU            `json:"skus"`
	BranchStock []models.BranchStockRow `json:"branchStock"`
}

// ListProducts returns storefront product cards with filters and pagination.
func (s *CatalogService) ListProducts(ctx context.Context, f repository.ListFilter) ([]models.Product, int, error) {
	f.ActiveOnly = true
	return s.productRepo.GetAllPaged(ctx, f)
}

// GetProductDetail returns the detail payload for a product slug, served
// from cache when fresh enough.
func (s *CatalogService) GetProductDetail(ctx context.Context, slug string) (*ProductDetail, error) {
	if s.catalogCache != nil {
		var cached ProductDetail
		err := s.catalogCache.GetDetail(ctx, slug, &cached)
		if err == nil {
			return &cached, nil
		}
		if !cache.IsMiss(err) {
			log.Warn().Err(err).Str("slug", slug).Msg("Catalog cache read failed, falling back to store")
		}
	}

	detail, err := s.loadProductDetail(ctx, slug)
	if err != nil {
		return nil, err
	}

	if s.catalogCache != nil {
		if err := s.catalogCache.SetDetail(ctx, slug, detail); err != nil {
			log.Warn().Err(err).Str("slug", slug).Msg("Catalog cache write failed")
		}
	}
	return detail, nil
}

func (s *CatalogService) loadProductDetail(ctx context.Context, slug string) (*ProductDetail, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, utils.ErrProductNotFound
	}

	optionTypes, err := s.optionRepo.GetByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	skus, err := s.skuRepo.GetActiveByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	skuIDs := make([]string, len(skus))
	for i, sku := range skus {
		skuIDs[i] = sku.ID
	}
	stock, err := s.stockRepo.GetForSKUs(ctx, skuIDs)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{
		Product:     *product,
		OptionTypes: optionTypes,
		SKUs:        skus,
		BranchStock: stock,
	}, nil
}

// ResolveResult is the storefront answer to one selection change: the
// resolution state, and when a SKU is pinned, its prices and the branches
// currently stocking it.
type ResolveResult struct {
	State     variant.ResolutionState      `json:"state"`
	SKU       *models.SKU                  `json:"sku,omitempty"`
	Price     *variant.PriceQuote          `json:"price,omitempty"`
	Branches  []variant.BranchAvailability `json:"branches,omitempty"`
	Selection []variant.SelectedOption     `json:"selection"`
}

// ResolveSelection runs the variant core for a selection against a product.
// All outcomes short of a store failure are normal states, not errors.
func (s *CatalogService) ResolveSelection(ctx context.Context, slug string, selection map[string]string) (*ResolveResult, error) {
	detail, err := s.GetProductDetail(ctx, slug)
	if err != nil {
		return nil, err
	}

	res := variant.Resolve(detail.SKUs, detail.OptionTypes, selection)
	if res.Ambiguous {
		// Upstream product data defect: duplicate active attribute maps.
		// Resolution stays deterministic; flag for operator correction.
		log.Warn().
			Str("product_id", detail.Product.ID).
			Str("sku_id", res.SKU.ID).
			Interface("selection", selection).
			Msg("Multiple active SKUs match one complete selection")
	}

	result := &ResolveResult{
		State:     res.State,
		Selection: variant.OrderedSelection(detail.OptionTypes, selection),
	}
	if res.State != variant.StateResolved {
		return result, nil
	}

	price := variant.Adjust(res.SKU.PriceIDR, detail.Product.DiscountPercent)
	result.SKU = res.SKU
	result.Price = &price
	result.Branches = variant.Available(res.SKU.ID, flattenStock(detail.BranchStock), branchesOf(detail.BranchStock))
	return result, nil
}

// OrderLink is the composed WhatsApp inquiry for a resolved variant at a
// chosen branch.
type OrderLink struct {
	Text   string `json:"text"`
	URI    string `json:"uri"`
	Branch string `json:"branch"`
	Phone  string `json:"phone"`
}

// BuildOrderLink resolves the selection, verifies the chosen branch is an
// offered fulfilment point, and composes the inquiry message and deep link.
func (s *CatalogService) BuildOrderLink(ctx context.Context, slug string, selection map[string]string, branchID string) (*OrderLink, error) {
	detail, err := s.GetProductDetail(ctx, slug)
	if err != nil {
		return nil, err
	}

	resolved, err := s.ResolveSelection(ctx, slug, selection)
	if err != nil {
		return nil, err
	}
	if resolved.State != variant.StateResolved {
		return nil, utils.ErrSKUNotFound
	}

	var chosen *variant.BranchAvailability
	for i := range resolved.Branches {
		if resolved.Branches[i].Branch.ID == branchID {
			chosen = &resolved.Branches[i]
			break
		}
	}
	if chosen == nil {
		return nil, utils.ErrBranchNotFound
	}

	phone := whatsapp.NormalizePhone(chosen.Branch.WhatsappPhone)
	if !whatsapp.IsValidNumber(phone) {
		log.Error().
			Str("branch_id", chosen.Branch.ID).
			Str("phone", chosen.Branch.WhatsappPhone).
			Msg("Branch WhatsApp number is not orderable")
		return nil, utils.ErrInvalidPhone
	}

	price := resolved.Price.Original
	if resolved.Price.Discounted != nil {
		price = *resolved.Price.Discounted
	}

	msg := variant.BuildOrderMessage(detail.Product.Name, resolved.Selection, price, chosen.Branch.Name, phone)
	return &OrderLink{
		Text:   msg.Text,
		URI:    msg.URI,
		Branch: chosen.Branch.Name,
		Phone:  phone,
	}, nil
}

// WarmCache refreshes the detail cache for every active product.
func (s *CatalogService) WarmCache(ctx context.Context) (int, error) {
	if s.catalogCache == nil {
		return 0, nil
	}
	slugs, err := s.productRepo.GetActiveSlugs(ctx)
	if err != nil {
		return 0, err
	}
	warmed := 0
	for _, slug := range slugs {
		detail, err := s.loadProductDetail(ctx, slug)
		if err != nil {
			log.Warn().Err(err).Str("slug", slug).Msg("Cache warm skipped product")
			continue
		}
		if err := s.catalogCache.SetDetail(ctx, slug, detail); err != nil {
			log.Warn().Err(err).Str("slug", slug).Msg("Cache warm write failed")
			continue
		}
		warmed++
	}
	return warmed, nil
}

func flattenStock(rows []models.BranchStockRow) []models.StockRow {
	out := make([]models.StockRow, len(rows))
	for i, r := range rows {
		out[i] = r.StockRow
	}
	return out
}

func branchesOf(rows []models.BranchStockRow) []models.Branch {
	seen := make(map[string]bool, len(rows))
	out := make([]models.Branch, 0, len(rows))
	for _, r := range rows {
		if !seen[r.Branch.ID] {
			seen[r.Branch.ID] = true
			out = append(out, r.Branch)
		}
	}
	return out
}
