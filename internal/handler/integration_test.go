package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/msomdec/stockeye/internal/handler"
	"github.com/msomdec/stockeye/internal/service"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	auth, inventory, sales := newTestServices(t)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, inventory, sales, service.NewTokenBucket(100, 100), false)

	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	return srv, &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestIntegration_LoginSellStatsLogout(t *testing.T) {
	srv, client := newTestServer(t)

	// 1. The product list requires a session.
	resp, err := client.Get(srv.URL + "/api/products")
	if err != nil {
		t.Fatalf("GET /api/products: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", resp.StatusCode)
	}

	// 2. Login with any credentials creates the user.
	resp = postJSON(t, client, srv.URL+"/api/auth/login", map[string]string{
		"email":    "anna@example.com",
		"password": "whatever",
	})
	var loginBody struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &loginBody)
	if loginBody.User.ID != "anna_example_com" {
		t.Fatalf("expected derived user ID, got %q", loginBody.User.ID)
	}

	// 3. Add a product expiring today with low stock.
	today := time.Now().Format("2006-01-02")
	resp = postJSON(t, client, srv.URL+"/api/products", map[string]any{
		"name":           "Milk",
		"quantity":       3,
		"expirationDate": today,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create product: expected 201, got %d", resp.StatusCode)
	}
	var createBody struct {
		Product struct {
			ID      string `json:"id"`
			Warning *struct {
				Type     string `json:"type"`
				Priority int    `json:"priority"`
			} `json:"warning"`
		} `json:"product"`
	}
	decodeBody(t, resp, &createBody)
	productID := createBody.Product.ID
	if productID == "" {
		t.Fatal("expected product ID in response")
	}
	// Expired beats low stock even though quantity < 5.
	if createBody.Product.Warning == nil || createBody.Product.Warning.Type != "expired" {
		t.Fatalf("expected expired badge, got %+v", createBody.Product.Warning)
	}

	// 4. The dashboard dual-counts the product as expired and low stock.
	resp, err = client.Get(srv.URL + "/api/dashboard")
	if err != nil {
		t.Fatalf("GET /api/dashboard: %v", err)
	}
	var dashBody struct {
		Warnings struct {
			Expired  int `json:"expired"`
			LowStock int `json:"lowStock"`
			Total    int `json:"total"`
		} `json:"warnings"`
	}
	decodeBody(t, resp, &dashBody)
	if dashBody.Warnings.Expired != 1 || dashBody.Warnings.LowStock != 1 || dashBody.Warnings.Total != 2 {
		t.Fatalf("unexpected warning tallies: %+v", dashBody.Warnings)
	}

	// 5. Sell more than the stock: the sale is clamped to 3 units.
	resp = postJSON(t, client, srv.URL+fmt.Sprintf("/api/products/%s/sell", productID), map[string]int{
		"quantity": 5,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sell: expected 200, got %d", resp.StatusCode)
	}
	var sellBody struct {
		Sale struct {
			QuantitySold int    `json:"quantitySold"`
			ProductName  string `json:"productName"`
		} `json:"sale"`
		Product struct {
			Quantity int `json:"quantity"`
		} `json:"product"`
	}
	decodeBody(t, resp, &sellBody)
	if sellBody.Sale.QuantitySold != 3 || sellBody.Product.Quantity != 0 {
		t.Fatalf("expected clamped sale of 3 leaving 0, got %+v", sellBody)
	}

	// 6. Selling again conflicts: no stock left.
	resp = postJSON(t, client, srv.URL+fmt.Sprintf("/api/products/%s/sell", productID), map[string]int{
		"quantity": 1,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 when out of stock, got %d", resp.StatusCode)
	}

	// 7. Stats reflect the single sale.
	resp, err = client.Get(srv.URL + "/api/sales/stats")
	if err != nil {
		t.Fatalf("GET /api/sales/stats: %v", err)
	}
	var statsBody struct {
		Stats struct {
			TotalQuantity int `json:"totalQuantity"`
			TodayQuantity int `json:"todayQuantity"`
			WeekQuantity  int `json:"weekQuantity"`
			TopProduct    *struct {
				Name     string `json:"name"`
				Quantity int    `json:"quantity"`
			} `json:"topProduct"`
		} `json:"stats"`
	}
	decodeBody(t, resp, &statsBody)
	if statsBody.Stats.TotalQuantity != 3 || statsBody.Stats.TodayQuantity != 3 || statsBody.Stats.WeekQuantity != 3 {
		t.Fatalf("unexpected stats: %+v", statsBody.Stats)
	}
	if statsBody.Stats.TopProduct == nil || statsBody.Stats.TopProduct.Name != "Milk" {
		t.Fatalf("expected Milk as top product, got %+v", statsBody.Stats.TopProduct)
	}

	// 8. Logout purges everything.
	resp = postJSON(t, client, srv.URL+"/api/auth/logout", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", resp.StatusCode)
	}

	// 9. The old session is gone; a fresh login sees an empty inventory.
	resp, err = client.Get(srv.URL + "/api/products")
	if err != nil {
		t.Fatalf("GET /api/products: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}

	resp = postJSON(t, client, srv.URL+"/api/auth/login", map[string]string{
		"email":    "anna@example.com",
		"password": "whatever",
	})
	resp.Body.Close()

	resp, err = client.Get(srv.URL + "/api/products")
	if err != nil {
		t.Fatalf("GET /api/products: %v", err)
	}
	var listBody struct {
		Products []json.RawMessage `json:"products"`
	}
	decodeBody(t, resp, &listBody)
	if len(listBody.Products) != 0 {
		t.Fatalf("expected purged inventory after sign-out, got %d products", len(listBody.Products))
	}
}

func TestIntegration_ProductUpdateAndDelete(t *testing.T) {
	srv, client := newTestServer(t)

	resp := postJSON(t, client, srv.URL+"/api/auth/login", map[string]string{
		"email": "boris@example.com", "password": "pw",
	})
	resp.Body.Close()

	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	resp = postJSON(t, client, srv.URL+"/api/products", map[string]any{
		"name": "Cheese", "quantity": 20, "expirationDate": future,
	})
	var createBody struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
	}
	decodeBody(t, resp, &createBody)
	id := createBody.Product.ID

	// Partial update: rename only, quantity stays.
	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/api/products/"+id,
		bytes.NewReader([]byte(`{"name":"Aged Cheese"}`)))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("PATCH: %v", err)
	}
	var patchBody struct {
		Product struct {
			Name     string `json:"name"`
			Quantity int    `json:"quantity"`
		} `json:"product"`
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d", resp.StatusCode)
	}
	decodeBody(t, resp, &patchBody)
	if patchBody.Product.Name != "Aged Cheese" || patchBody.Product.Quantity != 20 {
		t.Fatalf("unexpected patch result: %+v", patchBody.Product)
	}

	// Updating an unknown ID is a 404.
	req, _ = http.NewRequest(http.MethodPatch, srv.URL+"/api/products/nope",
		bytes.NewReader([]byte(`{"name":"X"}`)))
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("PATCH missing: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	// Delete twice; both succeed.
	for i := 0; i < 2; i++ {
		req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/api/products/"+id, nil)
		resp, err = client.Do(req)
		if err != nil {
			t.Fatalf("DELETE #%d: %v", i+1, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("delete #%d: expected 204, got %d", i+1, resp.StatusCode)
		}
	}
}

func TestIntegration_LoginRateLimit(t *testing.T) {
	auth, inventory, sales := newTestServices(t)

	mux := http.NewServeMux()
	// Tiny burst so the limit trips quickly.
	handler.RegisterRoutes(mux, auth, inventory, sales, service.NewTokenBucket(0.001, 2), false)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := srv.Client()
	payload := map[string]string{"email": "anna@example.com", "password": "pw"}

	for i := 0; i < 2; i++ {
		resp := postJSON(t, client, srv.URL+"/api/auth/login", payload)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("login %d: expected 200, got %d", i+1, resp.StatusCode)
		}
	}

	resp := postJSON(t, client, srv.URL+"/api/auth/login", payload)
	resp.Body.Close()
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", resp.StatusCode)
	}
}
