package handler

import (
	"net/http"
	"testing"

	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/testutil"
)

// TestUserDirectories lists distributors and sellers for order forms
func TestUserDirectories(t *testing.T) {
	db, router := setupSupplyTest(t)
	_, customerToken := testutil.SeedTestUser(t, db, "customer", entity.RoleCustomer)
	testutil.SeedTestUser(t, db, "dist_one", entity.RoleDistributor)
	testutil.SeedTestUser(t, db, "dist_two", entity.RoleDistributor)
	testutil.SeedTestUser(t, db, "seller_one", entity.RoleSeller)

	w := testutil.DoRequest(router, http.MethodGet, "/users/distributors", nil, customerToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	rows := testutil.ParseResponse(w)["data"].([]interface{})
	if len(rows) != 2 {
		t.Fatalf("expected 2 distributors, got %d", len(rows))
	}
	if _, leaked := rows[0].(map[string]interface{})["password_hash"]; leaked {
		t.Fatal("password hash must never be serialized")
	}

	w2 := testutil.DoRequest(router, http.MethodGet, "/users/sellers", nil, customerToken)
	rows2 := testutil.ParseResponse(w2)["data"].([]interface{})
	if len(rows2) != 1 {
		t.Fatalf("expected 1 seller, got %d", len(rows2))
	}
}

// TestUserGetByID covers detail lookup and the 404 path
func TestUserGetByID(t *testing.T) {
	db, router := setupSupplyTest(t)
	seller, sellerToken := testutil.SeedTestUser(t, db, "seller", entity.RoleSeller)

	w := testutil.DoRequest(router, http.MethodGet, "/users/"+seller.ID, nil, sellerToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["username"] != "seller" {
		t.Fatalf("expected username seller, got %v", data["username"])
	}

	w2 := testutil.DoRequest(router, http.MethodGet, "/users/00000000-0000-0000-0000-000000000000", nil, sellerToken)
	if w2.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w2.Code)
	}
}
