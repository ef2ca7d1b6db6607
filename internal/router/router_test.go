package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/chronos-quests-lambda/internal/quest"
	"github.com/saulo-duarte/chronos-quests-lambda/internal/router"
)

type stubProvider struct {
	response string
	calls    int
}

func (s *stubProvider) Complete(context.Context, string) (string, error) {
	s.calls++
	return s.response, nil
}

func newRouter(p quest.Provider) http.Handler {
	svc := quest.NewService(p, func() quest.Difficulty { return quest.Medium })
	return router.New(router.RouterConfig{QuestHandler: quest.NewHandler(svc)})
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	cases := map[string]struct {
		provider quest.Provider
		want     string
	}{
		"Ready":       {&stubProvider{}, "ready"},
		"Unavailable": {nil, "unavailable"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(newRouter(tc.provider), http.MethodGet, "/health", "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			var resp quest.HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Provider != tc.want {
				t.Errorf("expected provider %q, got %q", tc.want, resp.Provider)
			}
		})
	}
}

func TestQuestRoutes(t *testing.T) {
	t.Run("RefreshThroughRouter", func(t *testing.T) {
		p := &stubProvider{response: `{"text": "Run 3km twice this week", "difficulty": "Hard", "xp": 50}`}
		rec := do(newRouter(p), http.MethodPost, "/refresh-quest",
			`{"goal": "Run a marathon", "existing_quests": [{"text": "Buy running shoes"}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var resp quest.RefreshResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.NewQuest.Difficulty != quest.Medium || resp.NewQuest.XP != 35 {
			t.Errorf("expected locally chosen Medium/35, got %+v", resp.NewQuest)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Error("expected CORS headers on quest routes")
		}
	})

	t.Run("UnavailableNeverReachesModel", func(t *testing.T) {
		h := newRouter(nil)
		for _, path := range []string{"/generate-quests", "/refresh-quest"} {
			rec := do(h, http.MethodPost, path, `{"goal": "Run a marathon", "existing_quests": [{"text": "a"}]}`)
			if rec.Code != http.StatusServiceUnavailable {
				t.Errorf("%s: expected 503, got %d", path, rec.Code)
			}
		}
	})

	t.Run("Preflight", func(t *testing.T) {
		p := &stubProvider{}
		h := router.New(router.RouterConfig{
			QuestHandler:   quest.NewHandler(quest.NewService(p, nil)),
			AllowedOrigins: []string{"http://localhost:5173"},
		})

		for _, path := range []string{"/generate-quests", "/refresh-quest"} {
			req := httptest.NewRequest(http.MethodOptions, path, nil)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "content-type")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code >= 300 {
				t.Errorf("%s: unexpected preflight status %d", path, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
				t.Errorf("%s: unexpected allow-origin header %q", path, got)
			}
		}
		if p.calls != 0 {
			t.Errorf("preflight should not reach the model, got %d calls", p.calls)
		}
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		rec := do(newRouter(&stubProvider{}), http.MethodGet, "/generate-quests", "")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})
}
