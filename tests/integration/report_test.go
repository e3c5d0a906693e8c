package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/usecase"
)

func TestAccruedReport(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	server := newTestServer(t, ctx)

	user := server.DB.CreateTestUser(ctx, "owner@example.com", "s3cret-pass", domain.RoleOwner)
	token := server.login(t, "owner@example.com", "s3cret-pass")
	owner := domain.UserOwner(user.ID)

	createdAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	server.DB.CreateTestCost(ctx, owner, decimal.RequireFromString("5"), domain.FrequencyDaily, createdAt)
	server.DB.CreateTestCost(ctx, owner, decimal.RequireFromString("100"), domain.FrequencyMonthly, createdAt)

	t.Run("accrued total at a reference date", func(t *testing.T) {
		rec := server.doJSON(t, http.MethodGet, "/api/v1/reports/accrued?date=2024-03-10", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var report usecase.AccruedReport
		if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		// Daily cost: ten days inclusive at 5 each. Monthly cost: one occurrence.
		if !report.Total.Equal(decimal.RequireFromString("150")) {
			t.Fatalf("expected accrued total 150, got %s", report.Total)
		}
	})

	t.Run("cached result is stable", func(t *testing.T) {
		rec := server.doJSON(t, http.MethodGet, "/api/v1/reports/accrued?date=2024-03-10", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var report usecase.AccruedReport
		if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !report.Total.Equal(decimal.RequireFromString("150")) {
			t.Fatalf("expected cached accrued total 150, got %s", report.Total)
		}
	})

	t.Run("monthly summary nets revenues", func(t *testing.T) {
		server.DB.CreateTestRevenue(ctx, owner, decimal.RequireFromString("300"), time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

		rec := server.doJSON(t, http.MethodGet, "/api/v1/reports/summary?month=2024-03", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var summary usecase.MonthlySummary
		if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		// March has 31 days: daily cost accrues 155, monthly cost 100.
		if !summary.AccruedCosts.Equal(decimal.RequireFromString("255")) {
			t.Fatalf("expected accrued costs 255, got %s", summary.AccruedCosts)
		}
		if !summary.Revenues.Equal(decimal.RequireFromString("300")) {
			t.Fatalf("expected revenues 300, got %s", summary.Revenues)
		}
		if !summary.Net.Equal(decimal.RequireFromString("45")) {
			t.Fatalf("expected net 45, got %s", summary.Net)
		}
	})

	t.Run("summary month window is half-open", func(t *testing.T) {
		// Received exactly at April 1 midnight: belongs to April, not March.
		server.DB.CreateTestRevenue(ctx, owner, decimal.RequireFromString("999"), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

		rec := server.doJSON(t, http.MethodGet, "/api/v1/reports/summary?month=2024-03", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var summary usecase.MonthlySummary
		if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !summary.Revenues.Equal(decimal.RequireFromString("300")) {
			t.Fatalf("expected March revenues to stay 300, got %s", summary.Revenues)
		}

		rec = server.doJSON(t, http.MethodGet, "/api/v1/reports/summary?month=2024-04", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !summary.Revenues.Equal(decimal.RequireFromString("999")) {
			t.Fatalf("expected April revenues 999, got %s", summary.Revenues)
		}
	})

	t.Run("cache invalidated on cost creation", func(t *testing.T) {
		// The new cost starts today, so the 2024 report total is unchanged
		// but must be recomputed rather than replayed.
		rec := server.doJSON(t, http.MethodPost, "/api/v1/costs/", token, map[string]any{
			"amount":    "1",
			"frequency": "ONCE",
			"is_fixed":  true,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		rec = server.doJSON(t, http.MethodGet, "/api/v1/reports/accrued?date=2024-03-10", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var report usecase.AccruedReport
		if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !report.Total.Equal(decimal.RequireFromString("150")) {
			t.Fatalf("expected recomputed total 150, got %s", report.Total)
		}
	})
}
