package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/febriandani/kantin-pos/internal/audit"
	"github.com/febriandani/kantin-pos/internal/auth"
	"github.com/febriandani/kantin-pos/internal/backup"
	"github.com/febriandani/kantin-pos/internal/cart"
	"github.com/febriandani/kantin-pos/internal/config"
	"github.com/febriandani/kantin-pos/internal/db"
	router "github.com/febriandani/kantin-pos/internal/http"
	"github.com/febriandani/kantin-pos/internal/http/handlers"
	rl "github.com/febriandani/kantin-pos/internal/http/rate_limiter"
	"github.com/febriandani/kantin-pos/internal/models"
	"github.com/febriandani/kantin-pos/internal/report"
	"github.com/febriandani/kantin-pos/internal/repo"
	"github.com/febriandani/kantin-pos/internal/scan"
	"github.com/febriandani/kantin-pos/internal/session"
)

// @title Kantin POS API
// @version 1.0
// @description REST API for the school canteen inventory and point of sale.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	go rl.StartVisitorCleanupLoop()

	auth.SetSecret(cfg.JWTSecret)
	handlers.SetLowStockThreshold(cfg.LowStockThreshold)

	products, transactions := buildStores(cfg)
	handlers.SetProductRepo(products)
	handlers.SetTransactionRepo(transactions)
	handlers.SetUserRepo(seedUsers(cfg))

	handlers.SetSessions(session.NewStore(func() *cart.Cart {
		return cart.New(products, transactions)
	}))
	handlers.SetReportService(report.NewService(products, transactions, cfg.LowStockThreshold))
	handlers.SetBackupManager(backup.NewManager(
		[]string{cfg.ProductsPath(), cfg.TransactionsPath()},
		cfg.BackupDir, cfg.ExportDir,
	))
	handlers.SetAuditLogger(audit.New(connectRedis(cfg)))

	scanner := scan.Select(&scan.CommandScanner{Command: cfg.ScannerCommand})
	log.Printf("scanner backend: %s", scanner.Name())
	handlers.SetScanner(scanner)

	r := router.RateLimitMiddleware(router.NewRouter())
	log.Printf("kantin-pos listening on %s (storage: %s)", cfg.Addr, cfg.Storage)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}

func buildStores(cfg config.Config) (repo.ProductRepository, repo.TransactionRepository) {
	switch cfg.Storage {
	case "postgres":
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("could not connect to database: %v", err)
		}
		return repo.NewPostgresProductRepository(database), repo.NewPostgresTransactionRepository(database)
	case "memory":
		return repo.NewInMemoryProductRepository(), repo.NewInMemoryTransactionRepository()
	default:
		products := repo.NewCSVProductRepository(cfg.ProductsPath())
		products.SetBarcodeImageDir(cfg.BarcodeImageDir)
		return products, repo.NewCSVTransactionRepository(cfg.TransactionsPath())
	}
}

func seedUsers(cfg config.Config) repo.UserRepository {
	users := repo.NewInMemoryUserRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("could not hash admin password: %v", err)
	}
	if _, err := users.CreateUser(models.User{
		Username:     cfg.AdminUser,
		PasswordHash: string(hash),
		Role:         "admin",
	}); err != nil {
		log.Fatalf("could not seed admin user: %v", err)
	}
	return users
}

func connectRedis(cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, activity log disabled: %v", err)
		return nil
	}
	return rdb
}
