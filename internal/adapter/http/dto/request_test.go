package dto

import (
	"encoding/json"
	"testing"

	"github.com/iho/finboard/internal/domain"
)

func TestOwnerOrSelf(t *testing.T) {
	actor := &domain.User{ID: "user-1"}

	tests := []struct {
		name      string
		ownerType string
		ownerID   string
		want      domain.OwnerKey
	}{
		{"absent owner is personal", "", "", domain.UserOwner("user-1")},
		{"entity owner", "entity", "ent-1", domain.EntityOwner("ent-1")},
		{"explicit user owner", "user", "user-2", domain.UserOwner("user-2")},
		{"missing type defaults to user", "", "user-2", domain.UserOwner("user-2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ownerOrSelf(tt.ownerType, tt.ownerID, actor); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestImportCostsRequestToUseCaseInput(t *testing.T) {
	payload := `{
		"records": [
			{"amount": 120, "frequency": "daily", "is_fixed": 1},
			{"amount": "50", "frequency": null, "is_fixed": "false", "active": 0}
		]
	}`

	var req ImportCostsRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	input := req.ToUseCaseInput(&domain.User{ID: "user-1"})

	if input.Owner != domain.UserOwner("user-1") {
		t.Errorf("owner = %+v, want personal scope", input.Owner)
	}
	if len(input.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(input.Records))
	}

	first := input.Records[0]
	if first.Amount != "120" || first.Frequency != "daily" {
		t.Errorf("first record = %+v", first)
	}
	if first.IsFixed != float64(1) {
		t.Errorf("first is_fixed = %v (%T), want raw 1", first.IsFixed, first.IsFixed)
	}
	if first.Active != nil {
		t.Errorf("absent active should stay nil, got %v", first.Active)
	}

	second := input.Records[1]
	if second.Amount != "50" || second.Frequency != "" {
		t.Errorf("second record = %+v", second)
	}
	if second.IsFixed != "false" {
		t.Errorf("second is_fixed = %v, want raw \"false\"", second.IsFixed)
	}
	if second.Active != float64(0) {
		t.Errorf("second active = %v, want raw 0", second.Active)
	}
}
