package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// ReportCacheTTL is how long computed report totals are cached
	ReportCacheTTL = 5 * time.Minute

	// MaxImportBatchSize caps a single legacy-import request
	MaxImportBatchSize = 500
)
