package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/bomma/arcade/internal/catalog"
)

func TestLandingPage(t *testing.T) {
	mux := newMux("arcade.example.com", log.New(io.Discard))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "ssh -t arcade.example.com") {
		t.Error("expected ssh command with display host")
	}
	for _, g := range catalog.Games {
		if !strings.Contains(body, g.Title) {
			t.Errorf("expected page to list %q", g.Title)
		}
	}
}

func TestCatalogJSON(t *testing.T) {
	mux := newMux("localhost", log.New(io.Discard))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog.json", nil))

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected application/json, got %q", got)
	}
	var games []catalog.Game
	if err := json.Unmarshal(rec.Body.Bytes(), &games); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(games) != len(catalog.Games) {
		t.Fatalf("expected %d games, got %d", len(catalog.Games), len(games))
	}
	if games[1].ID != "sketchy-seas" || games[1].Config.Difficulty != catalog.DifficultyMedium {
		t.Errorf("unexpected second game %+v", games[1])
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newMux("localhost", log.New(io.Discard))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
