package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/iho/finboard/internal/adapter/http/dto"
	"github.com/iho/finboard/internal/domain"
)

func TestLegacyImport(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	server := newTestServer(t, ctx)

	server.DB.CreateTestUser(ctx, "owner@example.com", "s3cret-pass", domain.RoleOwner)
	token := server.login(t, "owner@example.com", "s3cret-pass")

	t.Run("imports loosely typed legacy records", func(t *testing.T) {
		payload := map[string]any{
			"records": []map[string]any{
				{"amount": 120, "frequency": "MONTHLY", "is_fixed": true},
				{"amount": "9.99", "frequency": "daily", "is_fixed": "true"},
				{"amount": "45.50", "frequency": "", "active": "false"},
			},
		}

		rec := server.doJSON(t, http.MethodPost, "/api/v1/costs/import", token, payload)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp dto.ImportCostsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Imported != 3 || len(resp.CostIDs) != 3 {
			t.Fatalf("expected 3 imported records, got %+v", resp)
		}
	})

	t.Run("only active records accrue", func(t *testing.T) {
		rec := server.doJSON(t, http.MethodGet, "/api/v1/costs/", token, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var list dto.ListCostsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if list.Total != 3 {
			t.Fatalf("expected 3 costs, got %d", list.Total)
		}

		active := 0
		for _, c := range list.Costs {
			if c.Active {
				active++
			}
		}
		if active != 2 {
			t.Fatalf("expected 2 active costs, got %d", active)
		}
	})

	t.Run("rejects malformed amounts atomically", func(t *testing.T) {
		payload := map[string]any{
			"records": []map[string]any{
				{"amount": "10", "frequency": "DAILY"},
				{"amount": "not-a-number", "frequency": "DAILY"},
			},
		}

		rec := server.doJSON(t, http.MethodPost, "/api/v1/costs/import", token, payload)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}

		listRec := server.doJSON(t, http.MethodGet, "/api/v1/costs/", token, nil)
		var list dto.ListCostsResponse
		if err := json.Unmarshal(listRec.Body.Bytes(), &list); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if list.Total != 3 {
			t.Fatalf("expected failed import to insert nothing, got %d costs", list.Total)
		}
	})
}
