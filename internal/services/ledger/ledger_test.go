package ledger

import (
	"testing"

	"github.com/kotaratanaka/IFA/internal/models"
)

func TestAdd_AssignsFreshID(t *testing.T) {
	assets := Add(nil, models.Asset{Name: "トヨタ自動車", ID: "should-be-replaced"})
	if len(assets) != 1 {
		t.Fatalf("len = %d, want 1", len(assets))
	}
	if assets[0].ID == "" || assets[0].ID == "should-be-replaced" {
		t.Errorf("ID = %q, want freshly minted id", assets[0].ID)
	}
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	original := []models.Asset{{ID: "asset-1", Name: "a"}}
	out := Add(original, models.Asset{Name: "b"})

	if len(original) != 1 {
		t.Errorf("input slice mutated, len = %d", len(original))
	}
	if len(out) != 2 {
		t.Errorf("output len = %d, want 2", len(out))
	}
}

func TestAdd_ConsecutiveIDsNeverCollide(t *testing.T) {
	var assets []models.Asset
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		assets = Add(assets, models.Asset{Name: "x"})
		id := assets[len(assets)-1].ID
		if seen[id] {
			t.Fatalf("duplicate id %q after %d adds", id, i+1)
		}
		seen[id] = true
	}
}

func TestUpdate_NumericNormalization(t *testing.T) {
	assets := Add(nil, models.Asset{Name: "投信A"})
	id := assets[0].ID

	assets = Update(assets, id, "amount", "１，２３４")
	if assets[0].Amount != 1234 {
		t.Errorf("Amount = %v, want 1234", assets[0].Amount)
	}

	assets = Update(assets, id, "profit_loss", "-")
	if assets[0].ProfitLoss != 0 {
		t.Errorf("ProfitLoss = %v, want 0 for dash input", assets[0].ProfitLoss)
	}
}

func TestUpdate_BadNumericKeepsPrior(t *testing.T) {
	assets := Add(nil, models.Asset{Amount: 500})
	id := assets[0].ID

	assets = Update(assets, id, "amount", "abc")
	if assets[0].Amount != 500 {
		t.Errorf("Amount = %v after bad input, want prior 500", assets[0].Amount)
	}
}

func TestUpdate_UnknownIDAndFieldAreNoOps(t *testing.T) {
	assets := Add(nil, models.Asset{Name: "a", Amount: 10})
	id := assets[0].ID

	out := Update(assets, "asset-missing", "amount", "999")
	if out[0].Amount != 10 {
		t.Errorf("unknown id changed state: Amount = %v", out[0].Amount)
	}

	out = Update(assets, id, "no_such_field", "999")
	if out[0].Amount != 10 || out[0].Name != "a" {
		t.Error("unknown field changed state")
	}
}

func TestRemove(t *testing.T) {
	assets := Add(nil, models.Asset{Name: "a"})
	assets = Add(assets, models.Asset{Name: "b"})
	removed := Remove(assets, assets[0].ID)

	if len(removed) != 1 {
		t.Fatalf("len = %d, want 1", len(removed))
	}
	if removed[0].Name != "b" {
		t.Errorf("remaining = %q, want b", removed[0].Name)
	}
}

func TestComputeTotals_NoDriftAcrossOperations(t *testing.T) {
	assets := Add(nil, models.Asset{Amount: 1000, ProfitLoss: 100})
	assets = Add(assets, models.Asset{Amount: 2000, ProfitLoss: -200})
	assets = Add(assets, models.Asset{Amount: 500})

	// Remove then re-add an equivalent entry; totals must come back exact.
	before := ComputeTotals(assets)
	assets = Remove(assets, assets[2].ID)
	assets = Add(assets, models.Asset{Amount: 500})
	after := ComputeTotals(assets)

	if before != after {
		t.Errorf("totals drifted: before = %+v, after = %+v", before, after)
	}
	if after.Amount != 3500 || after.ProfitLoss != -100 {
		t.Errorf("totals = %+v, want Amount 3500 ProfitLoss -100", after)
	}
	if after.InvestedBase != 3600 {
		t.Errorf("InvestedBase = %v, want 3600", after.InvestedBase)
	}
}

func TestComputeTotals_ReturnPctZeroWhenBaseNotPositive(t *testing.T) {
	// Amount equals profit: invested base is zero.
	totals := ComputeTotals([]models.Asset{{Amount: 100, ProfitLoss: 100}})
	if totals.ReturnPct != 0 {
		t.Errorf("ReturnPct = %v, want 0 for zero base", totals.ReturnPct)
	}

	// Negative base.
	totals = ComputeTotals([]models.Asset{{Amount: 100, ProfitLoss: 300}})
	if totals.ReturnPct != 0 {
		t.Errorf("ReturnPct = %v, want 0 for negative base", totals.ReturnPct)
	}
}

func TestComputeTotals_ReturnPct(t *testing.T) {
	totals := ComputeTotals([]models.Asset{{Amount: 1100, ProfitLoss: 100}})
	if totals.ReturnPct != 10 {
		t.Errorf("ReturnPct = %v, want 10", totals.ReturnPct)
	}
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)
	if totals != (Totals{}) {
		t.Errorf("totals = %+v, want zero value", totals)
	}
}
