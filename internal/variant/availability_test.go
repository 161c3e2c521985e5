package variant

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/tokovape/tokovape_api/internal/models"
)

func testBranches() []models.Branch {
	return []models.Branch{
		{ID: "br-jkt", Slug: "jakarta", Name: "Jakarta", IsActive: true},
		{ID: "br-bdg", Slug: "bandung", Name: "Bandung", IsActive: true},
		{ID: "br-sby", Slug: "surabaya", Name: "Surabaya", IsActive: false},
	}
}

func TestAvailableFiltersAndSorts(t *testing.T) {
	rows := []models.StockRow{
		{BranchID: "br-jkt", SKUID: "sku-b", Quantity: 3},
		{BranchID: "br-bdg", SKUID: "sku-b", Quantity: 7},
		{BranchID: "br-bdg", SKUID: "sku-a", Quantity: 99}, // other SKU
		{BranchID: "br-sby", SKUID: "sku-b", Quantity: 5},  // inactive branch
		{BranchID: "br-unknown", SKUID: "sku-b", Quantity: 2},
		{BranchID: "br-jkt", SKUID: "sku-b", Quantity: 0}, // zero qty duplicate
	}

	got := Available("sku-b", rows, testBranches())
	if len(got) != 2 {
		t.Fatalf("got %d branches, want 2: %+v", len(got), got)
	}
	if got[0].Branch.Name != "Bandung" || got[0].Quantity != 7 {
		t.Errorf("first = %s/%d, want Bandung/7", got[0].Branch.Name, got[0].Quantity)
	}
	if got[1].Branch.Name != "Jakarta" || got[1].Quantity != 3 {
		t.Errorf("second = %s/%d, want Jakarta/3", got[1].Branch.Name, got[1].Quantity)
	}
}

func TestAvailableNeverOffersEmptyOrInactive(t *testing.T) {
	rows := []models.StockRow{
		{BranchID: "br-jkt", SKUID: "sku-b", Quantity: 0},
		{BranchID: "br-sby", SKUID: "sku-b", Quantity: 10},
	}
	if got := Available("sku-b", rows, testBranches()); len(got) != 0 {
		t.Errorf("expected no available branches, got %+v", got)
	}
}

func TestAvailableDuplicateRowsKeepHighest(t *testing.T) {
	rows := []models.StockRow{
		{BranchID: "br-jkt", SKUID: "sku-b", Quantity: 2},
		{BranchID: "br-jkt", SKUID: "sku-b", Quantity: 6},
		{BranchID: "br-jkt", SKUID: "sku-b", Quantity: 4},
	}
	got := Available("sku-b", rows, testBranches())
	if len(got) != 1 || got[0].Quantity != 6 {
		t.Errorf("got %+v, want single Jakarta row with quantity 6", got)
	}
}

func TestAvailableOrderIndependent(t *testing.T) {
	rows := []models.StockRow{
		{BranchID: "br-jkt", SKUID: "sku-b", Quantity: 3},
		{BranchID: "br-bdg", SKUID: "sku-b", Quantity: 7},
		{BranchID: "br-bdg", SKUID: "sku-b", Quantity: 1},
		{BranchID: "br-sby", SKUID: "sku-b", Quantity: 5},
	}
	want := Available("sku-b", rows, testBranches())

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]models.StockRow, len(rows))
		copy(shuffled, rows)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		if got := Available("sku-b", shuffled, testBranches()); !reflect.DeepEqual(got, want) {
			t.Fatalf("shuffle %d changed output:\n got %+v\nwant %+v", i, got, want)
		}
	}
}

func TestAvailableTieBreaksOnBranchID(t *testing.T) {
	branches := []models.Branch{
		{ID: "br-2", Name: "Depok", IsActive: true},
		{ID: "br-1", Name: "Depok", IsActive: true},
	}
	rows := []models.StockRow{
		{BranchID: "br-2", SKUID: "s", Quantity: 1},
		{BranchID: "br-1", SKUID: "s", Quantity: 1},
	}
	got := Available("s", rows, branches)
	if len(got) != 2 || got[0].Branch.ID != "br-1" {
		t.Errorf("same-name branches must order by id: %+v", got)
	}
}
