package variant

import (
	"testing"

	"github.com/tokovape/tokovape_api/internal/models"
)

func podSession() *Session {
	types := []models.OptionType{{ID: "ot-color", Name: "Color", Position: 1}}
	skus := []models.SKU{
		{ID: "sku-a", Attributes: models.Attributes{"Color": "Black"}, PriceIDR: 50000, IsActive: true},
		{ID: "sku-b", Attributes: models.Attributes{"Color": "Blue"}, PriceIDR: 55000, IsActive: true},
	}
	rows := []models.StockRow{
		{BranchID: "br-jkt", SKUID: "sku-b", Quantity: 3},
		{BranchID: "br-bdg", SKUID: "sku-b", Quantity: 0},
	}
	branches := []models.Branch{
		{ID: "br-jkt", Name: "Jakarta", IsActive: true},
		{ID: "br-bdg", Name: "Bandung", IsActive: false},
	}
	return NewSession(types, skus, rows, branches)
}

func TestSessionFlow(t *testing.T) {
	s := podSession()

	if got := s.State(); got != SessionNoSelection {
		t.Fatalf("initial state = %s", got)
	}

	s.Select("Color", "Blue")
	if got := s.State(); got != SessionMatched {
		t.Fatalf("after full selection state = %s", got)
	}

	av := s.AvailableBranches()
	if len(av) != 1 || av[0].Branch.Name != "Jakarta" || av[0].Quantity != 3 {
		t.Fatalf("available = %+v, want only Jakarta with 3", av)
	}

	if !s.ChooseBranch("br-jkt") {
		t.Fatal("choosing an offered branch must succeed")
	}
	if got := s.State(); got != SessionBranchChosen {
		t.Fatalf("after branch pick state = %s", got)
	}
	if !s.CanOrder() {
		t.Fatal("resolved SKU + chosen branch must be orderable")
	}
}

func TestSessionSelectionChangeClearsBranch(t *testing.T) {
	s := podSession()
	s.Select("Color", "Blue")
	if !s.ChooseBranch("br-jkt") {
		t.Fatal("setup: branch pick failed")
	}

	s.Select("Color", "Black")
	if s.CanOrder() {
		t.Error("changing the selection must clear the chosen branch")
	}
	if got := s.State(); got == SessionBranchChosen {
		t.Errorf("state = %s, branch pick should not survive a selection change", got)
	}
}

func TestSessionUnmatchedIsTerminalNotError(t *testing.T) {
	s := podSession()
	s.Select("Color", "Red")
	if got := s.State(); got != SessionUnmatched {
		t.Fatalf("state = %s, want unmatched", got)
	}
	if br := s.AvailableBranches(); br != nil {
		t.Errorf("unmatched selection must have no branches, got %+v", br)
	}

	// The only way out is revising the selection.
	s.Select("Color", "Black")
	if got := s.State(); got != SessionMatched {
		t.Errorf("revised selection state = %s, want matched", got)
	}
}

func TestSessionCannotChooseUnofferedBranch(t *testing.T) {
	s := podSession()
	s.Select("Color", "Blue")
	if s.ChooseBranch("br-bdg") {
		t.Error("inactive branch must not be choosable")
	}
	if s.ChooseBranch("br-nope") {
		t.Error("unknown branch must not be choosable")
	}
}
