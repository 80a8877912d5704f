package handler

import (
	"net/http"
	"testing"

	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/testutil"
)

// TestProductionCapacityUpdate replaces both fields and leaves other rows alone
func TestProductionCapacityUpdate(t *testing.T) {
	db, router := setupSupplyTest(t)
	_, mfrToken := testutil.SeedTestUser(t, db, "mfr", entity.RoleManufacturer)
	bm := testutil.SeedBlanketModel(t, db, "Tuned", 20, 45)
	other := testutil.SeedBlanketModel(t, db, "Untouched", 20, 45)

	w := testutil.DoRequest(router, http.MethodPut, "/production/"+bm.ID, map[string]interface{}{
		"daily_capacity":           150,
		"current_production_queue": 20,
	}, mfrToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var capacity entity.ProductionCapacity
	db.Where("blanket_model_id = ?", bm.ID).First(&capacity)
	if capacity.DailyCapacity != 150 || capacity.CurrentProductionQueue != 20 {
		t.Fatalf("expected 150/20, got %d/%d", capacity.DailyCapacity, capacity.CurrentProductionQueue)
	}

	var otherCap entity.ProductionCapacity
	db.Where("blanket_model_id = ?", other.ID).First(&otherCap)
	if otherCap.DailyCapacity != entity.DefaultDailyCapacity {
		t.Fatalf("expected untouched default capacity, got %d", otherCap.DailyCapacity)
	}
}

// TestProductionDetail serves a single capacity row and 404s on unknown products
func TestProductionDetail(t *testing.T) {
	db, router := setupSupplyTest(t)
	_, mfrToken := testutil.SeedTestUser(t, db, "mfr", entity.RoleManufacturer)
	bm := testutil.SeedBlanketModel(t, db, "Inspected", 20, 45)

	w := testutil.DoRequest(router, http.MethodGet, "/production/"+bm.ID, nil, mfrToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if int(data["daily_capacity"].(float64)) != entity.DefaultDailyCapacity {
		t.Fatalf("expected default capacity, got %v", data["daily_capacity"])
	}

	w2 := testutil.DoRequest(router, http.MethodGet, "/production/00000000-0000-0000-0000-000000000000", nil, mfrToken)
	if w2.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w2.Code)
	}
}

// TestProductionZeroCapacity pauses production by setting the daily capacity to zero
func TestProductionZeroCapacity(t *testing.T) {
	db, router := setupSupplyTest(t)
	_, mfrToken := testutil.SeedTestUser(t, db, "mfr", entity.RoleManufacturer)
	bm := testutil.SeedBlanketModel(t, db, "Paused", 20, 45)

	w := testutil.DoRequest(router, http.MethodPut, "/production/"+bm.ID, map[string]interface{}{
		"daily_capacity":           0,
		"current_production_queue": 0,
	}, mfrToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for zero capacity, got %d: %s", w.Code, w.Body.String())
	}

	var capacity entity.ProductionCapacity
	db.Where("blanket_model_id = ?", bm.ID).First(&capacity)
	if capacity.DailyCapacity != 0 {
		t.Fatalf("expected capacity 0, got %d", capacity.DailyCapacity)
	}
}

// TestProductionUnknownProduct returns 404 without creating rows
func TestProductionUnknownProduct(t *testing.T) {
	db, router := setupSupplyTest(t)
	_, mfrToken := testutil.SeedTestUser(t, db, "mfr", entity.RoleManufacturer)

	w := testutil.DoRequest(router, http.MethodPut, "/production/00000000-0000-0000-0000-000000000000",
		map[string]interface{}{"daily_capacity": 50}, mfrToken)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

// TestProductionRequiresManufacturer gates the endpoints to the manufacturer role
func TestProductionRequiresManufacturer(t *testing.T) {
	db, router := setupSupplyTest(t)
	_, distToken := testutil.SeedTestUser(t, db, "dist", entity.RoleDistributor)

	w := testutil.DoRequest(router, http.MethodGet, "/production", nil, distToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
