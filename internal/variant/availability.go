package variant

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tokovape/tokovape_api/internal/models"
)

// BranchAvailability is one branch currently stocking a SKU.
type BranchAvailability struct {
	Branch   models.Branch `json:"branch"`
	Quantity int           `json:"quantity"`
}

// branchCollator orders branch names the way an Indonesian storefront sorts
// them. Collators are not safe for concurrent use, so Available builds its
// own; construction is cheap relative to a page view.
func branchCollator() *collate.Collator {
	return collate.New(language.Indonesian)
}

// Available filters raw stock rows down to the branches that can fulfil the
// given SKU right now: positive quantity, branch known and active. Duplicate
// rows per branch keep the highest quantity. The result is ordered by
// collated branch name, ties broken by branch id, so identical input sets
// produce identical output regardless of input ordering.
func Available(skuID string, stockRows []models.StockRow, branches []models.Branch) []BranchAvailability {
	byID := make(map[string]models.Branch, len(branches))
	for _, b := range branches {
		if b.IsActive {
			byID[b.ID] = b
		}
	}

	best := make(map[string]int)
	for _, row := range stockRows {
		if row.SKUID != skuID || row.Quantity <= 0 {
			continue
		}
		if _, ok := byID[row.BranchID]; !ok {
			continue
		}
		if q, ok := best[row.BranchID]; !ok || row.Quantity > q {
			best[row.BranchID] = row.Quantity
		}
	}

	out := make([]BranchAvailability, 0, len(best))
	for branchID, qty := range best {
		out = append(out, BranchAvailability{Branch: byID[branchID], Quantity: qty})
	}

	col := branchCollator()
	sort.Slice(out, func(i, j int) bool {
		if c := col.CompareString(out[i].Branch.Name, out[j].Branch.Name); c != 0 {
			return c < 0
		}
		return out[i].Branch.ID < out[j].Branch.ID
	})
	return out
}
