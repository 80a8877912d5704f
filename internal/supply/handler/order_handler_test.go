package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"github.com/cozycomfort/supply-api/internal/supply/testutil"
)

// TestCustomerOrderCreate verifies order numbers, totals and ownership fill-in
func TestCustomerOrderCreate(t *testing.T) {
	db, router := setupSupplyTest(t)
	seller, _ := testutil.SeedTestUser(t, db, "seller", entity.RoleSeller)
	customer, customerToken := testutil.SeedTestUser(t, db, "customer", entity.RoleCustomer)
	bm := testutil.SeedBlanketModel(t, db, "Warm One", 20, 45.5)

	w := testutil.DoRequest(router, http.MethodPost, "/orders", map[string]interface{}{
		"seller_id":        seller.ID,
		"shipping_address": "12 Lake Rd",
		"items": []map[string]interface{}{
			{"blanket_model_id": bm.ID, "quantity": 2},
		},
	}, customerToken)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})

	if !strings.HasPrefix(data["order_number"].(string), "ORD-") {
		t.Fatalf("expected ORD- prefix, got %v", data["order_number"])
	}
	if data["status"] != entity.OrderStatusPending {
		t.Fatalf("expected Pending, got %v", data["status"])
	}
	if data["total_amount"].(float64) != 91.0 {
		t.Fatalf("expected total 91.0 (2 x 45.5 retail), got %v", data["total_amount"])
	}
	if data["customer_id"] != customer.ID {
		t.Fatalf("expected customer id filled from token, got %v", data["customer_id"])
	}
}

// TestCustomerOrderCreateRejections covers empty item lists and inactive products
func TestCustomerOrderCreateRejections(t *testing.T) {
	db, router := setupSupplyTest(t)
	seller, _ := testutil.SeedTestUser(t, db, "seller", entity.RoleSeller)
	_, customerToken := testutil.SeedTestUser(t, db, "customer", entity.RoleCustomer)
	bm := testutil.SeedBlanketModel(t, db, "Ghost", 20, 45)
	db.Model(&entity.BlanketModel{}).Where("id = ?", bm.ID).Update("is_active", false)

	// Empty item list
	w := testutil.DoRequest(router, http.MethodPost, "/orders", map[string]interface{}{
		"seller_id": seller.ID,
		"items":     []map[string]interface{}{},
	}, customerToken)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty order, got %d: %s", w.Code, w.Body.String())
	}

	// Inactive product
	w2 := testutil.DoRequest(router, http.MethodPost, "/orders", map[string]interface{}{
		"seller_id": seller.ID,
		"items": []map[string]interface{}{
			{"blanket_model_id": bm.ID, "quantity": 1},
		},
	}, customerToken)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inactive product, got %d: %s", w2.Code, w2.Body.String())
	}

	var count int64
	db.Model(&entity.CustomerOrder{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no orders persisted, found %d", count)
	}
}

// TestOrderOwnershipScoping verifies list and detail access per party
func TestOrderOwnershipScoping(t *testing.T) {
	db, router := setupSupplyTest(t)
	seller, sellerToken := testutil.SeedTestUser(t, db, "seller", entity.RoleSeller)
	_, customerToken := testutil.SeedTestUser(t, db, "customer", entity.RoleCustomer)
	_, strangerToken := testutil.SeedTestUser(t, db, "stranger", entity.RoleCustomer)
	bm := testutil.SeedBlanketModel(t, db, "Scoped", 20, 45)

	w := testutil.DoRequest(router, http.MethodPost, "/orders", map[string]interface{}{
		"seller_id": seller.ID,
		"items":     []map[string]interface{}{{"blanket_model_id": bm.ID, "quantity": 1}},
	}, customerToken)
	orderID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	// Owning customer and seller both see it
	for _, token := range []string{customerToken, sellerToken} {
		wGet := testutil.DoRequest(router, http.MethodGet, "/orders/"+orderID, nil, token)
		if wGet.Code != http.StatusOK {
			t.Fatalf("expected 200 for order party, got %d: %s", wGet.Code, wGet.Body.String())
		}
	}

	// Unrelated customer is rejected
	wForeign := testutil.DoRequest(router, http.MethodGet, "/orders/"+orderID, nil, strangerToken)
	if wForeign.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for stranger, got %d", wForeign.Code)
	}

	// Stranger's list is empty, customer's has one
	wList := testutil.DoRequest(router, http.MethodGet, "/orders", nil, strangerToken)
	rows, _ := testutil.ParseResponse(wList)["data"].([]interface{})
	if len(rows) != 0 {
		t.Fatalf("expected empty list for stranger, got %d", len(rows))
	}
	wList2 := testutil.DoRequest(router, http.MethodGet, "/orders", nil, customerToken)
	rows2, _ := testutil.ParseResponse(wList2)["data"].([]interface{})
	if len(rows2) != 1 {
		t.Fatalf("expected 1 order for customer, got %d", len(rows2))
	}
}

// TestOrderStatusTransitions walks the state machine and rejects illegal jumps
func TestOrderStatusTransitions(t *testing.T) {
	db, router := setupSupplyTest(t)
	seller, sellerToken := testutil.SeedTestUser(t, db, "seller", entity.RoleSeller)
	_, customerToken := testutil.SeedTestUser(t, db, "customer", entity.RoleCustomer)
	bm := testutil.SeedBlanketModel(t, db, "Mover", 20, 45)

	w := testutil.DoRequest(router, http.MethodPost, "/orders", map[string]interface{}{
		"seller_id": seller.ID,
		"items":     []map[string]interface{}{{"blanket_model_id": bm.ID, "quantity": 1}},
	}, customerToken)
	orderID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	// Pending → Delivered is illegal
	w2 := testutil.DoRequest(router, http.MethodPut, "/orders/"+orderID+"/status",
		map[string]interface{}{"status": entity.OrderStatusDelivered}, sellerToken)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for Pending→Delivered, got %d: %s", w2.Code, w2.Body.String())
	}

	// Pending → Processing → Shipped is legal
	for _, next := range []string{entity.OrderStatusProcessing, entity.OrderStatusShipped} {
		wStep := testutil.DoRequest(router, http.MethodPut, "/orders/"+orderID+"/status",
			map[string]interface{}{"status": next}, sellerToken)
		if wStep.Code != http.StatusOK {
			t.Fatalf("expected 200 moving to %s, got %d: %s", next, wStep.Code, wStep.Body.String())
		}
	}

	// Shipped → Cancelled is illegal
	w3 := testutil.DoRequest(router, http.MethodPut, "/orders/"+orderID+"/status",
		map[string]interface{}{"status": entity.OrderStatusCancelled}, sellerToken)
	if w3.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for Shipped→Cancelled, got %d: %s", w3.Code, w3.Body.String())
	}

	// Repeating the current status is also an invalid transition
	w4 := testutil.DoRequest(router, http.MethodPut, "/orders/"+orderID+"/status",
		map[string]interface{}{"status": entity.OrderStatusShipped}, sellerToken)
	if w4.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for Shipped→Shipped, got %d: %s", w4.Code, w4.Body.String())
	}
}

// TestCustomerCancelsOwnOrder lets the buying customer drive transitions on
// their own order while unrelated customers stay locked out.
func TestCustomerCancelsOwnOrder(t *testing.T) {
	db, router := setupSupplyTest(t)
	seller, _ := testutil.SeedTestUser(t, db, "seller", entity.RoleSeller)
	_, customerToken := testutil.SeedTestUser(t, db, "customer", entity.RoleCustomer)
	_, strangerToken := testutil.SeedTestUser(t, db, "stranger", entity.RoleCustomer)
	bm := testutil.SeedBlanketModel(t, db, "Cancelable", 20, 45)

	w := testutil.DoRequest(router, http.MethodPost, "/orders", map[string]interface{}{
		"seller_id": seller.ID,
		"items":     []map[string]interface{}{{"blanket_model_id": bm.ID, "quantity": 1}},
	}, customerToken)
	orderID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	// An unrelated customer cannot touch it
	w2 := testutil.DoRequest(router, http.MethodPut, "/orders/"+orderID+"/status",
		map[string]interface{}{"status": entity.OrderStatusCancelled}, strangerToken)
	if w2.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for stranger, got %d: %s", w2.Code, w2.Body.String())
	}

	// The buyer cancels their own pending order
	w3 := testutil.DoRequest(router, http.MethodPut, "/orders/"+orderID+"/status",
		map[string]interface{}{"status": entity.OrderStatusCancelled}, customerToken)
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200 cancelling own order, got %d: %s", w3.Code, w3.Body.String())
	}
	var order entity.CustomerOrder
	db.Where("id = ?", orderID).First(&order)
	if order.Status != entity.OrderStatusCancelled {
		t.Fatalf("expected Cancelled, got %s", order.Status)
	}
}

// TestOrderDeliveredDecrementsSellerInventory covers the delivery cascade and
// its all-or-nothing failure on short stock.
func TestOrderDeliveredDecrementsSellerInventory(t *testing.T) {
	db, router := setupSupplyTest(t)
	seller, sellerToken := testutil.SeedTestUser(t, db, "seller", entity.RoleSeller)
	_, customerToken := testutil.SeedTestUser(t, db, "customer", entity.RoleCustomer)
	bm := testutil.SeedBlanketModel(t, db, "Deliverable", 20, 45)

	if err := db.Create(&entity.SellerInventory{
		SellerID:       seller.ID,
		BlanketModelID: bm.ID,
		Quantity:       3,
		LastUpdated:    time.Now().UTC(),
	}).Error; err != nil {
		t.Fatalf("failed to seed seller inventory: %v", err)
	}

	w := testutil.DoRequest(router, http.MethodPost, "/orders", map[string]interface{}{
		"seller_id": seller.ID,
		"items":     []map[string]interface{}{{"blanket_model_id": bm.ID, "quantity": 5}},
	}, customerToken)
	orderID := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	for _, next := range []string{entity.OrderStatusProcessing, entity.OrderStatusShipped} {
		testutil.DoRequest(router, http.MethodPut, "/orders/"+orderID+"/status",
			map[string]interface{}{"status": next}, sellerToken)
	}

	// 5 wanted, 3 in stock: delivery fails and nothing changes
	w2 := testutil.DoRequest(router, http.MethodPut, "/orders/"+orderID+"/status",
		map[string]interface{}{"status": entity.OrderStatusDelivered}, sellerToken)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short stock, got %d: %s", w2.Code, w2.Body.String())
	}
	if !strings.Contains(testutil.ParseResponse(w2)["message"].(string), "Deliverable") {
		t.Fatalf("expected failing product named in message: %s", w2.Body.String())
	}

	var inv entity.SellerInventory
	db.Where("seller_id = ? AND blanket_model_id = ?", seller.ID, bm.ID).First(&inv)
	if inv.Quantity != 3 {
		t.Fatalf("failed delivery must not mutate stock, got %d", inv.Quantity)
	}
	var order entity.CustomerOrder
	db.Where("id = ?", orderID).First(&order)
	if order.Status != entity.OrderStatusShipped {
		t.Fatalf("expected order still Shipped, got %s", order.Status)
	}

	// Restock and deliver
	db.Model(&entity.SellerInventory{}).Where("id = ?", inv.ID).Update("quantity", 8)
	w3 := testutil.DoRequest(router, http.MethodPut, "/orders/"+orderID+"/status",
		map[string]interface{}{"status": entity.OrderStatusDelivered}, sellerToken)
	if w3.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w3.Code, w3.Body.String())
	}

	db.Where("id = ?", inv.ID).First(&inv)
	if inv.Quantity != 3 {
		t.Fatalf("expected 8-5=3 after delivery, got %d", inv.Quantity)
	}
}
