//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"testing"
	"time"
)

// Runs against a live `storectl serve`. Operator credentials come from the
// same environment the server was started with.
var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

func TestSystem_E2E_OrderFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	var loginResp struct {
		AccessToken string `json:"access_token"`
	}
	doJSON(t, http.MethodPost, baseURL+"/auth/login", map[string]any{
		"username": getenv("OPERATOR_USER", "admin"),
		"password": os.Getenv("OPERATOR_PASSWORD"),
	}, &loginResp, 200)
	if loginResp.AccessToken == "" {
		t.Fatalf("empty access_token")
	}
	tok := loginResp.AccessToken

	suffix := fmt.Sprintf("%d_%d", time.Now().Unix(), rand.Intn(100000))
	pid := "p_" + suffix
	cid := "c_" + suffix

	doJSONAuth(t, http.MethodPost, baseURL+"/products", tok, map[string]any{
		"id": pid, "name": "Widget", "price": 9.99,
	}, nil, 201)
	doJSONAuth(t, http.MethodPost, baseURL+"/customers", tok, map[string]any{
		"id": cid, "name": "Alice",
	}, nil, 201)
	doJSONAuth(t, http.MethodPost, baseURL+"/customers/"+cid+"/orders", tok, map[string]any{
		"product_id": pid,
	}, nil, 200)

	doJSONAuth(t, http.MethodDelete, baseURL+"/products/"+pid, tok, nil, nil, 200)
	doJSON(t, http.MethodGet, baseURL+"/products/"+pid, nil, nil, 404)

	var orders []map[string]any
	doJSON(t, http.MethodGet, baseURL+"/customers/"+cid+"/orders", nil, &orders, 200)
	if len(orders) != 1 || orders[0]["id"] != pid {
		t.Fatalf("orders after product delete: %#v", orders)
	}

	doJSONAuth(t, http.MethodDelete, baseURL+"/customers/"+cid, tok, nil, nil, 200)
	doJSON(t, http.MethodGet, baseURL+"/customers/"+cid+"/orders", nil, nil, 404)
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == 200 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func doJSON(t *testing.T, method, url string, body any, out any, want int) {
	t.Helper()
	doJSONAuth(t, method, url, "", body, out, want)
}

func doJSONAuth(t *testing.T, method, url, token string, body any, out any, want int) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		t.Fatalf("%s %s: status=%d want=%d", method, url, resp.StatusCode, want)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
