package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stylecloset-service/internal/adapters/repositories"
	"stylecloset-service/internal/api/dto"
)

func createSchedule(t *testing.T, h *GiftHandler, body string) dto.GiftScheduleResponse {
	t.Helper()

	rec := httptest.NewRecorder()
	h.Collection(rec, authedJSONRequest(http.MethodPost, "/gifts", body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}

	var res dto.GiftScheduleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return res
}

func TestGiftCreateDefaultsFirstRun(t *testing.T) {
	h := &GiftHandler{Repo: repositories.NewMemoryGiftRepository()}

	before := time.Now().UTC()
	created := createSchedule(t, h,
		`{"recipient":"Mom","occasion":"birthday","budget_cents":5000,"cadence":"monthly"}`)

	if !created.Active {
		t.Fatalf("new schedule should be active: %+v", created)
	}
	// Without start_at the first run lands one cadence out.
	if created.NextRunAt.Before(before.AddDate(0, 0, 27)) {
		t.Fatalf("NextRunAt = %v, want about a month out", created.NextRunAt)
	}
}

func TestGiftCreateWithStartAt(t *testing.T) {
	h := &GiftHandler{Repo: repositories.NewMemoryGiftRepository()}

	created := createSchedule(t, h,
		`{"recipient":"Dad","budget_cents":3000,"cadence":"weekly","start_at":"2026-12-25T09:00:00Z"}`)

	want := time.Date(2026, 12, 25, 9, 0, 0, 0, time.UTC)
	if !created.NextRunAt.Equal(want) {
		t.Fatalf("NextRunAt = %v, want %v", created.NextRunAt, want)
	}
}

func TestGiftCreateValidation(t *testing.T) {
	h := &GiftHandler{Repo: repositories.NewMemoryGiftRepository()}

	cases := []struct {
		name string
		body string
	}{
		{"missing recipient", `{"budget_cents":5000,"cadence":"monthly"}`},
		{"zero budget", `{"recipient":"Mom","budget_cents":0,"cadence":"monthly"}`},
		{"bad cadence", `{"recipient":"Mom","budget_cents":5000,"cadence":"daily"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Collection(rec, authedJSONRequest(http.MethodPost, "/gifts", tc.body))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGiftUpdateDeactivates(t *testing.T) {
	h := &GiftHandler{Repo: repositories.NewMemoryGiftRepository()}
	created := createSchedule(t, h,
		`{"recipient":"Mom","budget_cents":5000,"cadence":"monthly"}`)

	update := authedJSONRequest(http.MethodPut, "/gifts/"+created.ID,
		`{"recipient":"Mom","budget_cents":5000,"cadence":"monthly","active":false}`)
	update.SetPathValue("id", created.ID)

	rec := httptest.NewRecorder()
	h.Item(rec, update)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}

	var updated dto.GiftScheduleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	if updated.Active {
		t.Fatalf("schedule should be inactive after update: %+v", updated)
	}
}

func TestGiftDelete(t *testing.T) {
	h := &GiftHandler{Repo: repositories.NewMemoryGiftRepository()}
	created := createSchedule(t, h,
		`{"recipient":"Sam","budget_cents":1500,"cadence":"weekly"}`)

	del := authedJSONRequest(http.MethodDelete, "/gifts/"+created.ID, "")
	del.SetPathValue("id", created.ID)

	rec := httptest.NewRecorder()
	h.Item(rec, del)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	get := authedJSONRequest(http.MethodGet, "/gifts/"+created.ID, "")
	get.SetPathValue("id", created.ID)
	rec = httptest.NewRecorder()
	h.Item(rec, get)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}
