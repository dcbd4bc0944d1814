package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/mattwhite/moodjournal-go/internal/analytics"
	"github.com/mattwhite/moodjournal-go/internal/api"
	"github.com/mattwhite/moodjournal-go/internal/journal"
	"github.com/mattwhite/moodjournal-go/internal/storage/memory"
)

var fixedNow = time.Date(2024, 1, 4, 15, 0, 0, 0, time.UTC)

func newServer(t *testing.T) *api.Server {
	t.Helper()
	return api.NewServer(api.Config{Now: func() time.Time { return fixedNow }}, memory.NewStore())
}

func do(t *testing.T, srv *api.Server, method, path string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.App().Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	status, body := do(t, newServer(t), http.MethodGet, "/healthz", nil)
	if status != http.StatusOK || decode[map[string]string](t, body)["status"] != "ok" {
		t.Errorf("GET /healthz = %d %s", status, body)
	}
}

func TestJournalUpsertFlow(t *testing.T) {
	srv := newServer(t)

	status, body := do(t, srv, http.MethodPost, "/api/journal", map[string]any{
		"date":     "2024-01-04",
		"mood":     "😊",
		"content":  "sunny walk",
		"stickers": []map[string]any{{"type": "weather", "imageUrl": "sun.svg", "posX": 10, "posY": 12, "width": 64, "height": 64}},
	})
	if status != http.StatusCreated {
		t.Fatalf("create = %d %s", status, body)
	}
	created := decode[journal.Entry](t, body)
	if created.ID == 0 || len(created.Stickers) != 1 || created.Stickers[0].ID == "" {
		t.Errorf("created entry = %+v", created)
	}

	status, body = do(t, srv, http.MethodPost, "/api/journal", map[string]any{"date": "2024-01-04", "mood": "😢", "content": "rain later"})
	if status != http.StatusOK {
		t.Fatalf("update = %d %s", status, body)
	}
	if e := decode[journal.Entry](t, body); e.ID != created.ID || e.Mood != "😢" {
		t.Errorf("updated entry = %+v", e)
	}

	status, body = do(t, srv, http.MethodGet, "/api/journal/2024-01-04", nil)
	if status != http.StatusOK || decode[journal.Entry](t, body).Content != "rain later" {
		t.Errorf("GET by date = %d %s", status, body)
	}

	do(t, srv, http.MethodPost, "/api/journal", map[string]any{"date": "2024-01-02", "mood": "😌", "content": "x"})
	status, body = do(t, srv, http.MethodGet, "/api/journal", nil)
	list := decode[[]journal.Entry](t, body)
	if status != http.StatusOK || len(list) != 2 || list[0].Date != "2024-01-04" {
		t.Errorf("GET /api/journal = %d %s", status, body)
	}
}

func TestJournalErrors(t *testing.T) {
	srv := newServer(t)
	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"bad date param", http.MethodGet, "/api/journal/yesterday", nil, http.StatusBadRequest},
		{"missing entry", http.MethodGet, "/api/journal/2024-01-01", nil, http.StatusNotFound},
		{"unknown mood", http.MethodPost, "/api/journal", map[string]any{"date": "2024-01-01", "mood": "🦄"}, http.StatusBadRequest},
		{"bad sticker", http.MethodPost, "/api/journal", map[string]any{"date": "2024-01-01", "mood": "😊", "stickers": []map[string]any{{"type": "cars"}}}, http.StatusBadRequest},
		{"delete bad id", http.MethodDelete, "/api/journal/abc", nil, http.StatusBadRequest},
		{"delete missing", http.MethodDelete, "/api/journal/42", nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, srv, tt.method, tt.path, tt.body)
			if status != tt.want {
				t.Fatalf("%s %s = %d %s, want %d", tt.method, tt.path, status, body, tt.want)
			}
			if msg, _ := decode[map[string]any](t, body)["message"].(string); msg == "" {
				t.Errorf("error body without message: %s", body)
			}
		})
	}
}

func TestValidationErrorListsDetails(t *testing.T) {
	status, body := do(t, newServer(t), http.MethodPost, "/api/journal", map[string]any{"date": "nope", "mood": "🦄"})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	got := decode[struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}](t, body)
	if got.Message != "Invalid journal entry data" || len(got.Errors) != 2 {
		t.Errorf("body = %+v", got)
	}
}

func TestDeleteEntry(t *testing.T) {
	srv := newServer(t)
	_, body := do(t, srv, http.MethodPost, "/api/journal", map[string]any{"date": "2024-01-03", "mood": "😴"})
	e := decode[journal.Entry](t, body)

	status, _ := do(t, srv, http.MethodDelete, "/api/journal/"+strconv.Itoa(e.ID), nil)
	if status != http.StatusNoContent {
		t.Errorf("DELETE = %d, want 204", status)
	}
	if status, _ := do(t, srv, http.MethodGet, "/api/journal/2024-01-03", nil); status != http.StatusNotFound {
		t.Errorf("GET after delete = %d, want 404", status)
	}
}

func TestReminders(t *testing.T) {
	srv := newServer(t)
	mk := func(title, due, priority string) journal.Reminder {
		status, body := do(t, srv, http.MethodPost, "/api/reminders", map[string]any{"title": title, "dueDate": due, "priority": priority})
		if status != http.StatusCreated {
			t.Fatalf("create %q = %d %s", title, status, body)
		}
		return decode[journal.Reminder](t, body)
	}
	low := mk("stretch", "2024-01-04", "low")
	high := mk("doctor", "2024-01-04", "high")
	mk("plan trip", "2024-01-09", "")

	_, body := do(t, srv, http.MethodGet, "/api/reminders?view=today", nil)
	today := decode[[]journal.Reminder](t, body)
	if len(today) != 2 || today[0].ID != high.ID || today[1].ID != low.ID {
		t.Errorf("today = %+v", today)
	}
	_, body = do(t, srv, http.MethodGet, "/api/reminders?view=upcoming", nil)
	if up := decode[[]journal.Reminder](t, body); len(up) != 1 || up[0].Priority != journal.PriorityMedium {
		t.Errorf("upcoming = %+v", up)
	}
	if status, _ := do(t, srv, http.MethodGet, "/api/reminders?view=someday", nil); status != http.StatusBadRequest {
		t.Errorf("bad view = %d", status)
	}

	status, body := do(t, srv, http.MethodPatch, "/api/reminders/"+strconv.Itoa(low.ID)+"/toggle", nil)
	if status != http.StatusOK || !decode[journal.Reminder](t, body).Completed {
		t.Errorf("toggle = %d %s", status, body)
	}

	status, body = do(t, srv, http.MethodPut, "/api/reminders/"+strconv.Itoa(low.ID), map[string]any{"title": "long stretch", "dueDate": "2024-01-05"})
	upd := decode[journal.Reminder](t, body)
	if status != http.StatusOK || upd.Title != "long stretch" || !upd.Completed || upd.Priority != journal.PriorityLow {
		t.Errorf("PUT = %d %+v", status, upd)
	}
	if status, _ := do(t, srv, http.MethodPut, "/api/reminders/99", map[string]any{"title": "x", "dueDate": "2024-01-05"}); status != http.StatusNotFound {
		t.Errorf("PUT missing = %d", status)
	}
	if status, _ := do(t, srv, http.MethodPost, "/api/reminders", map[string]any{"dueDate": "2024-01-05"}); status != http.StatusBadRequest {
		t.Errorf("POST without title = %d", status)
	}

	if status, _ := do(t, srv, http.MethodDelete, "/api/reminders/"+strconv.Itoa(high.ID), nil); status != http.StatusNoContent {
		t.Errorf("DELETE = %d", status)
	}
	if status, _ := do(t, srv, http.MethodGet, "/api/reminders/"+strconv.Itoa(high.ID), nil); status != http.StatusNotFound {
		t.Errorf("GET deleted = %d", status)
	}
}

func TestSettingsPartialUpdate(t *testing.T) {
	srv := newServer(t)
	status, body := do(t, srv, http.MethodPut, "/api/settings", map[string]any{"themeColor": "purple"})
	got := decode[journal.Settings](t, body)
	if status != http.StatusOK || got.ThemeColor != "purple" || got.ColorMode != "light" || got.ZoomLevel != 100 {
		t.Errorf("PUT settings = %d %+v", status, got)
	}
	if status, _ := do(t, srv, http.MethodPut, "/api/settings", map[string]any{"zoomLevel": 10}); status != http.StatusBadRequest {
		t.Errorf("invalid zoom = %d", status)
	}
	_, body = do(t, srv, http.MethodGet, "/api/settings", nil)
	if decode[journal.Settings](t, body).ThemeColor != "purple" {
		t.Errorf("GET settings = %s", body)
	}
}

func TestAnalytics(t *testing.T) {
	srv := newServer(t)
	for _, e := range []map[string]any{
		{"date": "2024-01-01", "mood": "😊", "content": "one two"},
		{"date": "2024-01-02", "mood": "😊", "content": "three four five six"},
		{"date": "2024-01-04", "mood": "😢", "content": "seven"},
	} {
		do(t, srv, http.MethodPost, "/api/journal", e)
	}

	status, body := do(t, srv, http.MethodGet, "/api/analytics", nil)
	if status != http.StatusOK {
		t.Fatalf("GET /api/analytics = %d %s", status, body)
	}
	rep := decode[analytics.Report](t, body)
	if rep.Range != analytics.Last7Days || rep.FilteredEntries != 3 {
		t.Errorf("report = %+v", rep)
	}
	if len(rep.Distribution) != 2 || rep.Distribution[0].Category != analytics.Happy || rep.Distribution[0].Count != 2 {
		t.Errorf("distribution = %+v", rep.Distribution)
	}
	if rep.Streaks != (analytics.StreakResult{Current: 1, Longest: 2}) {
		t.Errorf("streaks = %+v", rep.Streaks)
	}
	if rep.WordCounts != (analytics.WordCountStats{Average: 2, Max: 4, Min: 1}) {
		t.Errorf("word counts = %+v", rep.WordCounts)
	}

	if status, _ := do(t, srv, http.MethodGet, "/api/analytics?range=year", nil); status != http.StatusBadRequest {
		t.Errorf("bad range = %d", status)
	}
}

func TestCatalogRoutes(t *testing.T) {
	srv := newServer(t)

	_, body := do(t, srv, http.MethodGet, "/api/moods", nil)
	moods := decode[[]map[string]string](t, body)
	if len(moods) != len(journal.MoodEmojis()) || moods[0]["category"] == "" {
		t.Errorf("moods = %s", body)
	}

	status, body := do(t, srv, http.MethodGet, "/api/stickers?category=food", nil)
	st := decode[struct {
		Stickers []journal.StickerDef `json:"stickers"`
	}](t, body)
	if status != http.StatusOK || len(st.Stickers) == 0 || st.Stickers[0].Type != "food" {
		t.Errorf("stickers = %d %s", status, body)
	}
	if status, _ := do(t, srv, http.MethodGet, "/api/stickers?category=cars", nil); status != http.StatusBadRequest {
		t.Errorf("unknown category = %d", status)
	}

	_, body = do(t, srv, http.MethodGet, "/api/playlists?mood="+url.QueryEscape("😊"), nil)
	if got := decode[[]journal.Playlist](t, body); len(got) == 0 || got[0].Title == "Mood Mix" {
		t.Errorf("happy playlists = %s", body)
	}
	_, body = do(t, srv, http.MethodGet, "/api/playlists?mood=unknown", nil)
	if got := decode[[]journal.Playlist](t, body); len(got) == 0 || got[0].Title != "Mood Mix" {
		t.Errorf("default playlists = %s", body)
	}
}

