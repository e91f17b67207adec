package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bondpos-backend/internal/config"
	"bondpos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

func testApp() *fiber.App {
	cfg := &config.Config{
		HTTPPort:    "0",
		JWTSecret:   "test-secret-test-secret-test-secret!",
		CORSOrigins: "http://localhost:5173",
	}
	st := store.NewMemorySeeded(store.NewOrderSequence(20))
	return newApp(cfg, st)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("body marshal: %v", err)
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path string) (*http.Response, []interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}

	var decoded []interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestListCategories(t *testing.T) {
	app := testApp()

	resp, categories := doJSONList(t, app, "/api/categories")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(categories) != 5 {
		t.Errorf("kategori sayısı = %d, want 5", len(categories))
	}
}

func TestGetUnknownProductReturns404(t *testing.T) {
	app := testApp()

	resp, body := doJSON(t, app, http.MethodGet, "/api/products/yok", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if body["error"] != "Ürün bulunamadı" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestCreateOrderFlow(t *testing.T) {
	app := testApp()

	resp, order := doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"tableId":      "1",
		"diningOption": "dine-in",
		"items": []map[string]interface{}{
			{"productId": "23", "quantity": 2, "price": 3.50},
		},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	// Seed 1-8 numaralarını kullanır, sıradaki 9
	if order["orderNumber"] != "9" {
		t.Errorf("orderNumber = %v, want \"9\"", order["orderNumber"])
	}
	if order["subtotal"].(float64) != 7.00 || order["total"].(float64) != 7.00 {
		t.Errorf("subtotal/total = %v/%v, want 7/7", order["subtotal"], order["total"])
	}
	items, ok := order["items"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v", order["items"])
	}

	// Masa dolu işaretlenir
	resp, table := doJSON(t, app, http.MethodGet, "/api/tables/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("masa alınamadı: %d", resp.StatusCode)
	}
	if table["status"] != "occupied" {
		t.Errorf("masa durumu = %v, want occupied", table["status"])
	}
}

func TestCreateOrderWithoutItemsRejected(t *testing.T) {
	app := testApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/orders", map[string]interface{}{
		"diningOption": "takeaway",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	app := testApp()

	// QR siparişini kabul et: qr-pending -> pending
	resp, order := doJSON(t, app, http.MethodPatch, "/api/orders/qr-order-1/accept", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("accept status = %d", resp.StatusCode)
	}
	if order["status"] != "pending" {
		t.Errorf("status = %v, want pending", order["status"])
	}

	// Tamamlanmış sipariş iptal edilemez
	resp, body := doJSON(t, app, http.MethodPatch, "/api/orders/sale-1/status", map[string]interface{}{
		"status": "cancelled",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("terminal geçiş status = %d, want 400", resp.StatusCode)
	}
	if body["error"] == nil {
		t.Error("hata mesajı bekleniyordu")
	}

	// Bilinmeyen durum değeri reddedilir
	resp, _ = doJSON(t, app, http.MethodPatch, "/api/orders/sale-4/status", map[string]interface{}{
		"status": "uzayda",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("geçersiz durum status = %d, want 400", resp.StatusCode)
	}
}

func TestDraftAndQRRoutesNotShadowed(t *testing.T) {
	app := testApp()

	resp, drafts := doJSONList(t, app, "/api/orders/drafts")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("drafts status = %d", resp.StatusCode)
	}
	if len(drafts) != 0 {
		t.Errorf("taslak sayısı = %d, want 0", len(drafts))
	}

	resp, qr := doJSONList(t, app, "/api/orders/qr")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("qr status = %d", resp.StatusCode)
	}
	if len(qr) != 3 {
		t.Errorf("QR sipariş sayısı = %d, want 3", len(qr))
	}
}

func TestDeleteCategory(t *testing.T) {
	app := testApp()

	resp, body := doJSON(t, app, http.MethodDelete, "/api/categories/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}

	// İkinci silme 404 döner
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/categories/1", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("ikinci silme status = %d, want 404", resp.StatusCode)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	app := testApp()

	resp, settings := doJSON(t, app, http.MethodGet, "/api/settings", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if settings["businessName"] != "BondPos POS" {
		t.Errorf("businessName = %v", settings["businessName"])
	}

	resp, updated := doJSON(t, app, http.MethodPut, "/api/settings", map[string]interface{}{
		"businessName": "Deniz Restoran",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("güncelleme status = %d", resp.StatusCode)
	}
	if updated["businessName"] != "Deniz Restoran" {
		t.Errorf("businessName = %v", updated["businessName"])
	}
	if updated["currency"] != "usd" {
		t.Errorf("dokunulmayan alan korunmalı: currency = %v", updated["currency"])
	}
}

func TestDashboardStatsEndpoint(t *testing.T) {
	app := testApp()

	resp, stats := doJSON(t, app, http.MethodGet, "/api/dashboard/stats?filter=all", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if stats["totalOrders"].(float64) != 4 {
		t.Errorf("totalOrders = %v, want 4", stats["totalOrders"])
	}
	if stats["todaySales"].(float64) != 157.75 {
		t.Errorf("todaySales = %v, want 157.75", stats["todaySales"])
	}
}

func TestAuthFlow(t *testing.T) {
	app := testApp()

	// Korumalı endpoint token olmadan reddedilir
	resp, _ := doJSON(t, app, http.MethodGet, "/api/auth/me", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me status = %d, want 401", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/register-super-admin", map[string]interface{}{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "gizli-sifre",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", resp.StatusCode)
	}

	// İkinci super admin engellenir
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/register-super-admin", map[string]interface{}{
		"name":     "Admin2",
		"email":    "admin2@example.com",
		"password": "gizli-sifre",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("ikinci register status = %d, want 403", resp.StatusCode)
	}

	resp, login := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "gizli-sifre",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	token, _ := login["token"].(string)
	if token == "" {
		t.Fatal("token boş")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if meResp.StatusCode != http.StatusOK {
		t.Errorf("me status = %d, want 200", meResp.StatusCode)
	}

	// Yanlış şifre
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "yanlis",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("yanlış şifre status = %d, want 401", resp.StatusCode)
	}
}

func TestSalesExportRequiresAuth(t *testing.T) {
	app := testApp()

	resp, _ := doJSON(t, app, http.MethodGet, "/api/reports/sales/export", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
