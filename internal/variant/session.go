package variant

import "github.com/tokovape/tokovape_api/internal/models"

// SessionState is the browsing state of one product page session.
type SessionState string

const (
	SessionNoSelection       SessionState = "no_selection"
	SessionPartiallySelected SessionState = "partially_selected"
	SessionMatched           SessionState = "matched"
	SessionUnmatched         SessionState = "unmatched"
	SessionBranchChosen      SessionState = "branch_chosen"
)

// Session tracks one visitor's variant selection for a product. It is
// single-writer, per-session state: the caller owns it for the lifetime of
// a page view and discards it on navigation. Changing any option clears the
// chosen branch, since availability is only valid for the SKU it was
// computed against.
type Session struct {
	optionTypes []models.OptionType
	skus        []models.SKU
	stockRows   []models.StockRow
	branches    []models.Branch

	selection map[string]string
	branchID  string
}

// NewSession starts a fresh selection over the product's already-fetched data.
func NewSession(optionTypes []models.OptionType, skus []models.SKU, stockRows []models.StockRow, branches []models.Branch) *Session {
	return &Session{
		optionTypes: optionTypes,
		skus:        skus,
		stockRows:   stockRows,
		branches:    branches,
		selection:   make(map[string]string),
	}
}

// Select sets or replaces the value for one option type and resets any
// chosen branch.
func (s *Session) Select(optionName, value string) {
	s.selection[optionName] = value
	s.branchID = ""
}

// Selection returns a copy of the current selection map.
func (s *Session) Selection() map[string]string {
	out := make(map[string]string, len(s.selection))
	for k, v := range s.selection {
		out[k] = v
	}
	return out
}

// Resolve runs the SKU resolution for the current selection.
func (s *Session) Resolve() Resolution {
	return Resolve(s.skus, s.optionTypes, s.selection)
}

// AvailableBranches returns the fulfilment candidates for the currently
// resolved SKU, or nil when no SKU is resolved.
func (s *Session) AvailableBranches() []BranchAvailability {
	res := s.Resolve()
	if res.State != StateResolved {
		return nil
	}
	return Available(res.SKU.ID, s.stockRows, s.branches)
}

// ChooseBranch records the visitor's branch pick. It reports false when the
// branch is not currently offering the resolved SKU, leaving state unchanged.
func (s *Session) ChooseBranch(branchID string) bool {
	for _, ba := range s.AvailableBranches() {
		if ba.Branch.ID == branchID {
			s.branchID = branchID
			return true
		}
	}
	return false
}

// ChosenBranch returns the picked branch availability, or nil.
func (s *Session) ChosenBranch() *BranchAvailability {
	if s.branchID == "" {
		return nil
	}
	for _, ba := range s.AvailableBranches() {
		if ba.Branch.ID == s.branchID {
			return &ba
		}
	}
	return nil
}

// CanOrder reports whether the session has both a resolved SKU and a branch
// that stocks it.
func (s *Session) CanOrder() bool {
	return s.ChosenBranch() != nil
}

// State reports where the visitor is in the selection flow.
func (s *Session) State() SessionState {
	res := s.Resolve()
	switch res.State {
	case StateIncomplete:
		if len(s.selection) == 0 {
			return SessionNoSelection
		}
		return SessionPartiallySelected
	case StateNoMatch:
		return SessionUnmatched
	}
	if s.branchID != "" {
		return SessionBranchChosen
	}
	return SessionMatched
}
