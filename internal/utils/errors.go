package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrAccountInactive    = errors.New("ACCOUNT_INACTIVE")
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrBranchNotFound     = errors.New("BRANCH_NOT_FOUND")
	ErrSKUNotFound        = errors.New("SKU_NOT_FOUND")
	ErrStockRowNotFound   = errors.New("STOCK_ROW_NOT_FOUND")
	ErrBranchForbidden    = errors.New("BRANCH_FORBIDDEN")
	ErrDuplicateVariant   = errors.New("DUPLICATE_VARIANT")
	ErrSlugTaken          = errors.New("SLUG_TAKEN")
	ErrInvalidPhone       = errors.New("INVALID_PHONE")
)
