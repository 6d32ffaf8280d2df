package handlers

import (
	"github.com/febriandani/kantin-pos/internal/audit"
	"github.com/febriandani/kantin-pos/internal/backup"
	"github.com/febriandani/kantin-pos/internal/report"
	repo "github.com/febriandani/kantin-pos/internal/repo"
	"github.com/febriandani/kantin-pos/internal/scan"
	"github.com/febriandani/kantin-pos/internal/session"
)

var (
	productRepo     repo.ProductRepository
	transactionRepo repo.TransactionRepository
	userRepo        repo.UserRepository

	sessions      *session.Store
	reportService *report.Service
	backupManager *backup.Manager
	auditLogger   *audit.Logger
	scanner       scan.Scanner
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetTransactionRepo(r repo.TransactionRepository) {
	transactionRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetSessions(s *session.Store) {
	sessions = s
}

func SetReportService(s *report.Service) {
	reportService = s
}

func SetBackupManager(m *backup.Manager) {
	backupManager = m
}

func SetAuditLogger(l *audit.Logger) {
	auditLogger = l
}

func SetScanner(s scan.Scanner) {
	scanner = s
}
