package variant

import (
	"sort"

	"github.com/tokovape/tokovape_api/internal/models"
)

// ResolutionState describes the outcome of resolving a selection to a SKU.
type ResolutionState string

const (
	// StateResolved means exactly the selection pinned a single active SKU.
	StateResolved ResolutionState = "resolved"
	// StateIncomplete means at least one option type has no selected value.
	StateIncomplete ResolutionState = "incomplete"
	// StateNoMatch means the selection is complete but no active SKU carries
	// that attribute combination. This is a normal terminal state, not an error.
	StateNoMatch ResolutionState = "no_match"
)

// Resolution is the result of Resolve. SKU is non-nil only when State is
// StateResolved. Ambiguous is set when more than one active SKU matched a
// complete selection — a product data defect; the lowest-id SKU is returned
// so rendering stays deterministic, and the caller should flag the condition.
type Resolution struct {
	State     ResolutionState
	SKU       *models.SKU
	Ambiguous bool
}

// Resolve finds the unique SKU matching a (possibly partial) selection.
//
// A product with no option types has a single implicit variant: its first
// SKU resolves regardless of selection content. Otherwise the selection is
// complete only when every option type name has a value; incomplete
// selections never match a SKU. Missing or empty inputs degrade to
// StateNoMatch or StateIncomplete — Resolve has no failure mode.
func Resolve(skus []models.SKU, optionTypes []models.OptionType, selection map[string]string) Resolution {
	if len(optionTypes) == 0 {
		for i := range skus {
			return Resolution{State: StateResolved, SKU: &skus[i]}
		}
		return Resolution{State: StateNoMatch}
	}

	for _, ot := range optionTypes {
		if selection[ot.Name] == "" {
			return Resolution{State: StateIncomplete}
		}
	}

	var matched []*models.SKU
	for i := range skus {
		if !skus[i].IsActive {
			continue
		}
		if Matches(skus[i].Attributes, selection) {
			matched = append(matched, &skus[i])
		}
	}

	switch len(matched) {
	case 0:
		return Resolution{State: StateNoMatch}
	case 1:
		return Resolution{State: StateResolved, SKU: matched[0]}
	default:
		// Duplicate active attribute maps violate the product data contract.
		// Pick the lowest id so repeated calls agree, and report the defect.
		sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
		return Resolution{State: StateResolved, SKU: matched[0], Ambiguous: true}
	}
}
