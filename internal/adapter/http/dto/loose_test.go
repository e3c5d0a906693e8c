package dto

import (
	"encoding/json"
	"testing"
)

func TestLooseBoolUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    any
	}{
		{"bool true", `{"flag": true}`, true},
		{"bool false", `{"flag": false}`, false},
		{"number zero", `{"flag": 0}`, float64(0)},
		{"number one", `{"flag": 1}`, float64(1)},
		{"string zero", `{"flag": "0"}`, "0"},
		{"string false", `{"flag": "false"}`, "false"},
		{"null", `{"flag": null}`, nil},
		{"absent", `{}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				Flag LooseBool `json:"flag"`
			}
			if err := json.Unmarshal([]byte(tt.payload), &doc); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if got := doc.Flag.Raw(); got != tt.want {
				t.Errorf("Raw() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLooseFrequencyUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    LooseFrequency
	}{
		{"string", `{"freq": "WEEKLY"}`, "WEEKLY"},
		{"lowercase passes through", `{"freq": "daily"}`, "daily"},
		{"null collapses", `{"freq": null}`, ""},
		{"number collapses", `{"freq": 3}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				Freq LooseFrequency `json:"freq"`
			}
			if err := json.Unmarshal([]byte(tt.payload), &doc); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if doc.Freq != tt.want {
				t.Errorf("got %q, want %q", doc.Freq, tt.want)
			}
		})
	}
}

func TestLooseAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    LooseAmount
		wantErr bool
	}{
		{"string amount", `{"amount": "10.50"}`, "10.50", false},
		{"number amount", `{"amount": 10.5}`, "10.5", false},
		{"integer amount", `{"amount": 120}`, "120", false},
		{"bool rejected", `{"amount": true}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				Amount LooseAmount `json:"amount"`
			}
			err := json.Unmarshal([]byte(tt.payload), &doc)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if doc.Amount != tt.want {
				t.Errorf("got %q, want %q", doc.Amount, tt.want)
			}
		})
	}
}
