package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"golang.org/x/crypto/bcrypt"

	"github.com/febriandani/kantin-pos/internal/audit"
	"github.com/febriandani/kantin-pos/internal/auth"
	"github.com/febriandani/kantin-pos/internal/cart"
	api "github.com/febriandani/kantin-pos/internal/http"
	handler "github.com/febriandani/kantin-pos/internal/http/handlers"
	"github.com/febriandani/kantin-pos/internal/models"
	"github.com/febriandani/kantin-pos/internal/report"
	"github.com/febriandani/kantin-pos/internal/repo"
	"github.com/febriandani/kantin-pos/internal/scan"
	"github.com/febriandani/kantin-pos/internal/session"
)

var (
	token           string
	productRepo     *repo.InMemoryProductRepository
	transactionRepo *repo.InMemoryTransactionRepository
	sessions        *session.Store
)

func init() {
	auth.SetSecret("test-secret")
	setupTestRepos("secret123")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	transactionRepo = repo.NewInMemoryTransactionRepository()
	handler.SetTransactionRepo(transactionRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})

	sessions = session.NewStore(func() *cart.Cart {
		return cart.New(productRepo, transactionRepo)
	})
	handler.SetSessions(sessions)

	handler.SetReportService(report.NewService(productRepo, transactionRepo, 10))
	handler.SetAuditLogger(audit.New(nil))
	handler.SetScanner(scan.ManualScanner{})
}

func clearAllData() {
	productRepo.Clear()
	transactionRepo.Clear()
	sessions.Drop("admin")
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

// doJSON sends an authenticated request with an optional JSON body.
func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doJSONWithSession is doJSON with an explicit cart session header.
func doJSONWithSession(r http.Handler, method, path string, payload any, sessionID string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Session-Id", sessionID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", p)
}

func addToCart(r http.Handler, barcode string, quantity int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/cart/items", handler.AddToCartRequest{Barcode: barcode, Quantity: quantity})
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func rotiRequest() handler.ProductRequest {
	return handler.ProductRequest{
		Barcode:  "BRK001",
		Name:     "Roti Keju",
		Category: "Makanan",
		Stock:    10,
		Cost:     1500,
		Price:    2000,
	}
}
