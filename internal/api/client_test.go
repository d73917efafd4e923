package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

const latestFixture = `{
  "ts": "2026-08-17T14:00:00+00:00",
  "baseline_at": "2026-08-17T12:00:00+00:00",
  "counts": {"active": 2, "blown": 1, "purchases_api": 0, "plan50k": 0, "baseline": 3},
  "active": [
    {"account_id": "100001", "customer_name": "Ada Example", "country": "USA", "plan": 50000, "balance": 52340.5, "equity": 52100.25, "open_pnl": -240.25, "pct_change": 4.2, "updated_at": "2026-08-17T13:58:00+00:00"},
    {"account_id": "100002", "customer_name": null, "country": null, "plan": null, "balance": null, "equity": null, "open_pnl": null, "pct_change": null, "updated_at": "2026-08-17T13:58:00+00:00"}
  ],
  "blown": [
    {"account_id": "100003", "customer_name": "Bob Example", "country": "Germany", "plan": 25000, "balance": 0, "equity": 0, "open_pnl": 0, "updated_at": "2026-08-17T09:00:00+00:00"}
  ],
  "purchases_api": [],
  "plan50k": []
}`

func TestClientLatest(t *testing.T) {
	var gotPath, gotAuth, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotLimit = r.URL.Query().Get("limit_active")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(latestFixture))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekrit", zerolog.Nop())
	snap, err := c.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() unexpected error: %v", err)
	}

	if gotPath != "/data/latest" {
		t.Errorf("request path = %q, want %q", gotPath, "/data/latest")
	}
	if gotAuth != "Bearer sekrit" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer sekrit")
	}
	if gotLimit != "500" {
		t.Errorf("limit_active = %q, want %q", gotLimit, "500")
	}

	if snap.TS != "2026-08-17T14:00:00+00:00" {
		t.Errorf("TS = %q", snap.TS)
	}
	if snap.Counts.Baseline != 3 {
		t.Errorf("Counts.Baseline = %d, want 3", snap.Counts.Baseline)
	}
	if len(snap.Active) != 2 {
		t.Fatalf("len(Active) = %d, want 2", len(snap.Active))
	}

	first := snap.Active[0]
	if first.PctChange == nil || *first.PctChange != 4.2 {
		t.Errorf("Active[0].PctChange = %v, want 4.2", first.PctChange)
	}
	if first.CustomerName != "Ada Example" {
		t.Errorf("Active[0].CustomerName = %q", first.CustomerName)
	}

	// Nulls decode to nil pointers and empty strings.
	second := snap.Active[1]
	if second.PctChange != nil || second.Balance != nil || second.Plan != nil {
		t.Errorf("Active[1] null numerics should be nil, got %+v", second)
	}
	if second.CustomerName != "" || second.Country != "" {
		t.Errorf("Active[1] null strings should be empty, got %+v", second)
	}

	// An explicit zero stays distinguishable from null.
	if snap.Blown[0].Equity == nil || *snap.Blown[0].Equity != 0 {
		t.Errorf("Blown[0].Equity = %v, want explicit 0", snap.Blown[0].Equity)
	}
}

func TestClientLatestNoToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(latestFixture))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", zerolog.Nop())
	if _, err := c.Latest(context.Background()); err != nil {
		t.Fatalf("Latest() unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization header should be absent, got %q", gotAuth)
	}
}

func TestClientLatestUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Invalid bearer token"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "wrong", zerolog.Nop())
	if _, err := c.Latest(context.Background()); err == nil {
		t.Fatal("Latest() expected error on 401, got nil")
	}
}

func TestClientLatestCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(srv.URL, "", zerolog.Nop())
	if _, err := c.Latest(ctx); err == nil {
		t.Fatal("Latest() expected error on cancelled context, got nil")
	}
}

func TestClientHealth(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		wantErr bool
	}{
		{"healthy", `{"ok": true, "ts": "2026-08-17T14:00:00+00:00"}`, http.StatusOK, false},
		{"reports not ok", `{"ok": false}`, http.StatusOK, true},
		{"not found", `{}`, http.StatusNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "", zerolog.Nop())
			err := c.Health(context.Background())
			if tt.wantErr && err == nil {
				t.Error("Health() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Health() unexpected error: %v", err)
			}
		})
	}
}
