package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubGenerator struct {
	generateFn func(ctx context.Context, feature, prompt string) (string, error)
}

func (g *stubGenerator) Generate(ctx context.Context, feature, prompt string) (string, error) {
	return g.generateFn(ctx, feature, prompt)
}

func careerApp(s *Server, userID string) *fiber.App {
	app := authedApp(userID)
	app.Post("/api/career/analyze-resume", s.AnalyzeResume)
	app.Post("/api/career/get-tips", s.GetCareerTips)
	return app
}

func TestAnalyzeResumeRequiresFile(t *testing.T) {
	s := setupHandlerTest(t)
	me := createTestUser(t, s, "Me", "me@nnrg.edu.in", "20R01A0501", "secret123", true, false)
	app := careerApp(s, me.ID)

	body := newMultipartBody().field("unused", "x")
	resp, err := app.Test(body.request(t, http.MethodPost, "/api/career/analyze-resume"))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAnalyzeResumeRejectsNonPDF(t *testing.T) {
	s := setupHandlerTest(t)
	me := createTestUser(t, s, "Me", "me@nnrg.edu.in", "20R01A0501", "secret123", true, false)
	app := careerApp(s, me.ID)

	body := newMultipartBody().file(t, "resume", "resume.png", pngBytes())
	resp, err := app.Test(body.request(t, http.MethodPost, "/api/career/analyze-resume"))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetCareerTips(t *testing.T) {
	var prompt string
	generator := &stubGenerator{
		generateFn: func(_ context.Context, feature, p string) (string, error) {
			prompt = p
			return "learn Go", nil
		},
	}
	s := setupHandlerTestWithGenerator(t, generator)
	me := createTestUser(t, s, "Me", "me@nnrg.edu.in", "20R01A0501", "secret123", true, false)
	app := careerApp(s, me.ID)

	resp := postJSON(t, app, "/api/career/get-tips", map[string]any{
		"interests":       []string{"backend", "cloud"},
		"currentRole":     "student",
		"experienceLevel": "beginner",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var response struct {
		Tips string `json:"tips"`
	}
	if err := json.Unmarshal(readBody(t, resp), &response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if response.Tips != "learn Go" {
		t.Fatalf("unexpected tips: %s", response.Tips)
	}
	if !strings.Contains(prompt, "backend, cloud") {
		t.Fatalf("prompt should include interests: %s", prompt)
	}

	resp = postJSON(t, app, "/api/career/get-tips", map[string]any{"interests": []string{}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty interests: expected 400, got %d", resp.StatusCode)
	}
}

func TestGetCareerTipsUpstreamFailure(t *testing.T) {
	generator := &stubGenerator{
		generateFn: func(context.Context, string, string) (string, error) {
			return "", context.DeadlineExceeded
		},
	}
	s := setupHandlerTestWithGenerator(t, generator)
	me := createTestUser(t, s, "Me", "me@nnrg.edu.in", "20R01A0501", "secret123", true, false)
	app := careerApp(s, me.ID)

	resp := postJSON(t, app, "/api/career/get-tips", map[string]any{"interests": []string{"ai"}})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}
