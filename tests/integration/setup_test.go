package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/finboard/internal/adapter/http"
	"github.com/iho/finboard/internal/adapter/http/handler"
	"github.com/iho/finboard/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/finboard/internal/adapter/repository/redis"
	"github.com/iho/finboard/internal/infrastructure/auth"
	infraredis "github.com/iho/finboard/internal/infrastructure/redis"
	"github.com/iho/finboard/internal/usecase"
	"github.com/iho/finboard/tests/testutil"
)

type testServer struct {
	Router http.Handler
	DB     *testutil.TestDB
}

// newTestServer wires the full HTTP stack against real Postgres and Redis.
func newTestServer(t *testing.T, ctx context.Context) *testServer {
	t.Helper()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(ctx)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })
	redisClient.FlushDB(ctx)

	pool := testDB.Pool
	idGen := postgres.NewULIDGenerator()
	txManager := postgres.NewTxManager(pool)
	retrier := postgres.NewRetrier(zerolog.Nop())

	costRepo := postgres.NewCostRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)
	goalRepo := postgres.NewGoalRepository(pool)
	entityRepo := postgres.NewEntityRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportCache := redisrepo.NewReportCache(redisClient)
	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)

	costUC := usecase.NewCostUseCase(costRepo, entityRepo, reportCache, idGen)
	revenueUC := usecase.NewRevenueUseCase(revenueRepo, entityRepo, idGen)
	goalUC := usecase.NewGoalUseCase(goalRepo, entityRepo, idGen)
	entityUC := usecase.NewEntityUseCase(entityRepo, idGen)
	importUC := usecase.NewImportUseCase(txManager, costRepo, entityRepo, reportCache, idGen, retrier)
	reportUC := usecase.NewReportUseCase(costRepo, revenueRepo, goalRepo, entityRepo, reportCache)
	userUC := usecase.NewUserUseCase(userRepo, idGen)

	jwtManager := auth.NewJWTManager("integration-secret", time.Hour)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		CostHandler:      handler.NewCostHandler(costUC, importUC),
		RevenueHandler:   handler.NewRevenueHandler(revenueUC),
		GoalHandler:      handler.NewGoalHandler(goalUC),
		EntityHandler:    handler.NewEntityHandler(entityUC),
		ReportHandler:    handler.NewReportHandler(reportUC),
		AuthHandler:      handler.NewAuthHandler(userUC, jwtManager),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   time.Minute,
		Logger:           zerolog.Nop(),
	})

	return &testServer{Router: router, DB: testDB}
}

// login obtains a JWT for an existing user through the HTTP API.
func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", rec.Code, rec.Body.String())
	}

	var resp handler.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return resp.Token
}

// doJSON performs an authenticated JSON request against the test router.
func (s *testServer) doJSON(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	s.Router.ServeHTTP(rec, req)
	return rec
}
