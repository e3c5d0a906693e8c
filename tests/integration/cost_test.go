package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/adapter/http/dto"
	"github.com/iho/finboard/internal/domain"
)

func TestCostLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	server := newTestServer(t, ctx)

	server.DB.CreateTestUser(ctx, "owner@example.com", "s3cret-pass", domain.RoleOwner)
	token := server.login(t, "owner@example.com", "s3cret-pass")

	var created dto.CostResponse

	t.Run("create cost", func(t *testing.T) {
		rec := server.doJSON(t, http.MethodPost, "/api/v1/costs/", token, map[string]any{
			"amount":      "49.99",
			"frequency":   "MONTHLY",
			"is_fixed":    true,
			"description": "internet subscription",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if created.ID == "" || !created.Active {
			t.Fatalf("expected an active cost with an ID, got %+v", created)
		}
		if !created.Amount.Equal(decimal.RequireFromString("49.99")) {
			t.Fatalf("expected amount 49.99, got %s", created.Amount)
		}
	})

	t.Run("get cost", func(t *testing.T) {
		rec := server.doJSON(t, http.MethodGet, "/api/v1/costs/"+created.ID, token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var got dto.CostResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if got.ID != created.ID || got.Frequency != "MONTHLY" {
			t.Fatalf("unexpected cost: %+v", got)
		}
	})

	t.Run("list costs", func(t *testing.T) {
		rec := server.doJSON(t, http.MethodGet, "/api/v1/costs/", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var list dto.ListCostsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if list.Total != 1 || len(list.Costs) != 1 {
			t.Fatalf("expected one cost, got %+v", list)
		}
	})

	t.Run("update cost", func(t *testing.T) {
		rec := server.doJSON(t, http.MethodPut, "/api/v1/costs/"+created.ID, token, map[string]any{
			"amount": "59.99",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var got dto.CostResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !got.Amount.Equal(decimal.RequireFromString("59.99")) {
			t.Fatalf("expected updated amount, got %s", got.Amount)
		}
	})

	t.Run("deactivate cost", func(t *testing.T) {
		rec := server.doJSON(t, http.MethodPost, "/api/v1/costs/"+created.ID+"/deactivate", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var got dto.CostResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if got.Active {
			t.Fatal("expected cost to be deactivated")
		}
	})

	t.Run("delete cost", func(t *testing.T) {
		rec := server.doJSON(t, http.MethodDelete, "/api/v1/costs/"+created.ID, token, nil)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
		}

		rec = server.doJSON(t, http.MethodGet, "/api/v1/costs/"+created.ID, token, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", rec.Code)
		}
	})
}

func TestCostPermissions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	server := newTestServer(t, ctx)

	server.DB.CreateTestUser(ctx, "viewer@example.com", "s3cret-pass", domain.RoleViewer)
	token := server.login(t, "viewer@example.com", "s3cret-pass")

	rec := server.doJSON(t, http.MethodPost, "/api/v1/costs/", token, map[string]any{
		"amount":    "10",
		"frequency": "DAILY",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected viewer to be denied with 403, got %d: %s", rec.Code, rec.Body.String())
	}
}
