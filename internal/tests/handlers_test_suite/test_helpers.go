package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/rpaiva/warehouse-tracker/internal/auth"
	api "github.com/rpaiva/warehouse-tracker/internal/http"
	handler "github.com/rpaiva/warehouse-tracker/internal/http/handlers"
	rl "github.com/rpaiva/warehouse-tracker/internal/http/rate_limiter"
	"github.com/rpaiva/warehouse-tracker/internal/inventory"
	"github.com/rpaiva/warehouse-tracker/internal/logger"
	"github.com/rpaiva/warehouse-tracker/internal/repo"
	"github.com/rpaiva/warehouse-tracker/internal/store"
)

var (
	token        string
	catalogRepo  *repo.CSVCatalogRepository
	movementRepo *repo.CSVMovementRepository
	blobStore    *store.MemoryStore
)

func init() {
	auth.SetSecret("test-secret")
	handler.SetLogger(logger.New("test"))

	resetRepos()
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

// resetRepos rebuilds the repositories on a fresh in-memory store, so every
// test starts from the seeded defaults. The limiter table is reset along with
// them so earlier tests cannot starve later ones of their burst.
func resetRepos() {
	blobStore = store.NewMemoryStore()
	ctx := context.Background()

	var err error
	catalogRepo, err = repo.NewCSVCatalogRepository(ctx, blobStore)
	if err != nil {
		panic(fmt.Sprintf("error seeding catalog: %v", err))
	}
	handler.SetCatalogRepo(catalogRepo)

	movementRepo, err = repo.NewCSVMovementRepository(ctx, blobStore)
	if err != nil {
		panic(fmt.Sprintf("error seeding ledger: %v", err))
	}
	handler.SetMovementRepo(movementRepo)

	handler.SetInventoryService(inventory.NewService(catalogRepo, movementRepo, blobStore))

	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func updateProduct(r http.Handler, productID string, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPut, "/products/"+productID, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adjustProduct(r http.Handler, productID string, adj handler.AdjustmentRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(adj)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/products/%s/adjust", productID), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
