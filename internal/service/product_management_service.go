package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tokovape/tokovape_api/internal/cache"
	"github.com/tokovape/tokovape_api/internal/models"
	"github.com/tokovape/tokovape_api/internal/repository"
	"github.com/tokovape/tokovape_api/internal/utils"
)

// ProductManagementService provides staff CRUD over products, option types,
// option values, and SKUs. SKU writes are guarded against duplicate active
// attribute maps so ambiguous variants are caught at ingestion, not at
// storefront resolution.
type ProductManagementService struct {
	productRepo  *repository.ProductRepository
	optionRepo   *repository.OptionRepository
	skuRepo      *repository.SKURepository
	catalogCache *cache.CatalogCache
}

// NewProductManagementService constructs a ProductManagementService.
func NewProductManagementService(
	productRepo *repository.ProductRepository,
	optionRepo *repository.OptionRepository,
	skuRepo *repository.SKURepository,
	catalogCache *cache.CatalogCache,
) *ProductManagementService {
	return &ProductManagementService{
		productRepo:  productRepo,
		optionRepo:   optionRepo,
		skuRepo:      skuRepo,
		catalogCache: catalogCache,
	}
}

// CreateProductRequest is the staff payload for a new product.
type CreateProductRequest struct {
	Name            string  `json:"name" binding:"required"`
	Slug            string  `json:"slug"`
	Description     *string `json:"description"`
	Brand           *string `json:"brand"`
	CategoryID      *string `json:"categoryId"`
	BaseImageURL    *string `json:"baseImageUrl"`
	DiscountPercent int     `json:"discountPercent" binding:"gte=0,lte=100"`
	IsFeatured      bool    `json:"isFeatured"`
	IsActive        *bool   `json:"isActive"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
}

// CreateProduct creates a product, deriving the slug from the name when not
// provided.
func (s *ProductManagementService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	p := &models.Product{
		ID:              uuid.NewString(),
		Slug:            slug,
		Name:            req.Name,
		Description:     req.Description,
		Brand:           req.Brand,
		CategoryID:      req.CategoryID,
		BaseImageURL:    req.BaseImageURL,
		DiscountPercent: req.DiscountPercent,
		IsFeatured:      req.IsFeatured,
		IsActive:        active,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	}
	if err := s.productRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct applies the request to an existing product and invalidates
// its cached storefront payload.
func (s *ProductManagementService) UpdateProduct(ctx context.Context, id string, req *CreateProductRequest) (*models.Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}

	oldSlug := p.Slug
	p.Name = req.Name
	if req.Slug != "" {
		p.Slug = req.Slug
	}
	p.Description = req.Description
	p.Brand = req.Brand
	p.CategoryID = req.CategoryID
	p.BaseImageURL = req.BaseImageURL
	p.DiscountPercent = req.DiscountPercent
	p.IsFeatured = req.IsFeatured
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.MetaTitle = req.MetaTitle
	p.MetaDescription = req.MetaDescription

	if err := s.productRepo.Update(p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, oldSlug, p.Slug)
	return p, nil
}

// DeleteProduct removes a product and its variants/stock.
func (s *ProductManagementService) DeleteProduct(ctx context.Context, id string) error {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrProductNotFound
		}
		return err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, p.Slug)
	return nil
}

// CreateOptionTypeRequest declares a new variation axis for a product.
type CreateOptionTypeRequest struct {
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position"`
}

// CreateOptionType adds an option type to a product.
func (s *ProductManagementService) CreateOptionType(ctx context.Context, productID string, req *CreateOptionTypeRequest) (*models.OptionType, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}

	t := &models.OptionType{
		ID:        uuid.NewString(),
		ProductID: productID,
		Name:      req.Name,
		Position:  req.Position,
	}
	if err := s.optionRepo.CreateType(t); err != nil {
		return nil, err
	}
	s.invalidateProduct(ctx, productID)
	return t, nil
}

// CreateOptionValueRequest adds one allowed value under an option type.
type CreateOptionValueRequest struct {
	Value    string `json:"value" binding:"required"`
	Position int    `json:"position"`
}

// CreateOptionValue adds a value to an option type.
func (s *ProductManagementService) CreateOptionValue(ctx context.Context, optionTypeID string, req *CreateOptionValueRequest) (*models.OptionValue, error) {
	v := &models.OptionValue{
		ID:           uuid.NewString(),
		OptionTypeID: optionTypeID,
		Value:        req.Value,
		Position:     req.Position,
	}
	if err := s.optionRepo.CreateValue(v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteOptionType removes an option type and its values.
func (s *ProductManagementService) DeleteOptionType(ctx context.Context, id string) error {
	return s.optionRepo.DeleteType(id)
}

// DeleteOptionValue removes a single option value.
func (s *ProductManagementService) DeleteOptionValue(ctx context.Context, id string) error {
	return s.optionRepo.DeleteValue(id)
}

// CreateSKURequest is the staff payload for a new SKU.
type CreateSKURequest struct {
	SKUCode    *string           `json:"skuCode"`
	Attributes map[string]string `json:"attributes"`
	PriceIDR   int               `json:"priceIdr" binding:"required,gt=0"`
	IsActive   *bool             `json:"isActive"`
	Barcode    *string           `json:"barcode"`
}

// CreateSKU creates a SKU after checking no other active SKU of the product
// already carries the same attributes map.
func (s *ProductManagementService) CreateSKU(ctx context.Context, productID string, req *CreateSKURequest) (*models.SKU, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	attrs := models.Attributes(req.Attributes)
	if attrs == nil {
		attrs = models.Attributes{}
	}

	if active {
		if err := s.checkDuplicateVariant(ctx, productID, attrs, ""); err != nil {
			return nil, err
		}
	}

	sku := &models.SKU{
		ID:         uuid.NewString(),
		ProductID:  productID,
		SKUCode:    req.SKUCode,
		Attributes: attrs,
		PriceIDR:   req.PriceIDR,
		IsActive:   active,
		Barcode:    req.Barcode,
	}
	if err := s.skuRepo.Create(sku); err != nil {
		return nil, err
	}
	s.invalidateProduct(ctx, productID)
	return sku, nil
}

// UpdateSKU updates a SKU, re-running the duplicate-variant guard when it
// stays or becomes active.
func (s *ProductManagementService) UpdateSKU(ctx context.Context, id string, req *CreateSKURequest) (*models.SKU, error) {
	sku, err := s.skuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrSKUNotFound
		}
		return nil, err
	}

	sku.SKUCode = req.SKUCode
	if req.Attributes != nil {
		sku.Attributes = models.Attributes(req.Attributes)
	}
	sku.PriceIDR = req.PriceIDR
	if req.IsActive != nil {
		sku.IsActive = *req.IsActive
	}
	sku.Barcode = req.Barcode

	if sku.IsActive {
		if err := s.checkDuplicateVariant(ctx, sku.ProductID, sku.Attributes, sku.ID); err != nil {
			return nil, err
		}
	}

	if err := s.skuRepo.Update(sku); err != nil {
		return nil, err
	}
	s.invalidateProduct(ctx, sku.ProductID)
	return sku, nil
}

// DeleteSKU removes a SKU and its stock rows.
func (s *ProductManagementService) DeleteSKU(ctx context.Context, id string) error {
	sku, err := s.skuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrSKUNotFound
		}
		return err
	}
	if err := s.skuRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateProduct(ctx, sku.ProductID)
	return nil
}

// GetProductSKUs lists the product's SKUs for the admin screen.
func (s *ProductManagementService) GetProductSKUs(ctx context.Context, productID string) ([]models.SKU, error) {
	return s.skuRepo.GetByProductID(ctx, productID)
}

func (s *ProductManagementService) checkDuplicateVariant(ctx context.Context, productID string, attrs models.Attributes, excludeID string) error {
	count, err := s.skuRepo.CountActiveWithAttributes(ctx, productID, attrs, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Warn().
			Str("product_id", productID).
			Interface("attributes", attrs).
			Msg("Rejected SKU write that would duplicate an active variant")
		return utils.ErrDuplicateVariant
	}
	return nil
}

func (s *ProductManagementService) invalidateProduct(ctx context.Context, productID string) {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return
	}
	s.invalidate(ctx, p.Slug)
}

func (s *ProductManagementService) invalidate(ctx context.Context, slugs ...string) {
	if s.catalogCache == nil {
		return
	}
	if err := s.catalogCache.Invalidate(ctx, slugs...); err != nil {
		log.Warn().Err(err).Strs("slugs", slugs).Msg("Catalog cache invalidation failed")
	}
}
