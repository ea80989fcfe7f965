package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reusedev/plant-hub/config"
	"github.com/reusedev/plant-hub/internal/modules/ai"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Gemini {
	t.Setenv("PLANT_HUB_TEST_KEY", "test-key")
	return config.Gemini{Model: "gemini-2.5-flash", APIKeyEnv: "PLANT_HUB_TEST_KEY", Timeout: "10s"}
}

func TestNewModelRequiresKey(t *testing.T) {
	_, err := NewModel(context.Background(), config.Gemini{Model: "gemini-2.5-flash", APIKeyEnv: "PLANT_HUB_UNSET_KEY", Timeout: "10s"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "PLANT_HUB_UNSET_KEY")
}

func TestGenerate(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"HEALTH STATUS:\nHealthy"}]}}]}`)
	}))
	defer srv.Close()

	m, err := NewModel(context.Background(), testConfig(t), WithBaseURL(srv.URL))
	require.NoError(t, err)
	require.Equal(t, "gemini-2.5-flash", m.Name())

	text, err := m.Generate(context.Background(), ai.DiagnosisPrompt, &ai.Image{Data: []byte{0xff, 0xd8, 0xff}, MIMEType: "image/jpeg"})
	require.NoError(t, err)
	require.Equal(t, "HEALTH STATUS:\nHealthy", text)
	require.True(t, strings.HasSuffix(gotPath, "models/gemini-2.5-flash:generateContent"), gotPath)
	require.Contains(t, gotBody, "expert plant pathologist")
	require.Contains(t, gotBody, "image/jpeg")
}

func TestNewModelUsesConfiguredBaseURL(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Monstera deliciosa"}]}}]}`)
	}))
	defer srv.Close()

	cfg := testConfig(t)
	cfg.BaseURL = srv.URL
	m, err := NewModel(context.Background(), cfg)
	require.NoError(t, err)
	text, err := m.Generate(context.Background(), ai.IdentificationPrompt, nil)
	require.NoError(t, err)
	require.Equal(t, "Monstera deliciosa", text)
	require.True(t, hit)
}

func TestGenerateError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	}))
	defer srv.Close()

	m, err := NewModel(context.Background(), testConfig(t), WithBaseURL(srv.URL))
	require.NoError(t, err)
	_, err = m.Generate(context.Background(), "hello", nil)
	require.Error(t, err)
}
