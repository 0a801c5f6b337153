package models

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("")

	err := lister.ListAvailableModels(context.Background(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	expectedError := "OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .phonikud.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func TestIsChatModel(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"gpt-4o-mini", true},
		{"gpt-4o", true},
		{"o3-mini", true},
		{"chatgpt-4o-latest", true},
		{"gpt-4o-mini-tts", false},
		{"gpt-4o-audio-preview", false},
		{"gpt-4o-realtime-preview", false},
		{"dall-e-3", false},
		{"text-embedding-3-small", false},
		{"whisper-1", false},
		{"babbage-002", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := IsChatModel(tt.id); got != tt.want {
				t.Errorf("IsChatModel(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestChatModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[
			{"id":"gpt-4o","object":"model","owned_by":"openai"},
			{"id":"tts-1","object":"model","owned_by":"openai"},
			{"id":"gpt-4o-mini","object":"model","owned_by":"openai"},
			{"id":"dall-e-3","object":"model","owned_by":"openai"}
		]}`))
	}))
	defer server.Close()

	lister := NewListerWithBaseURL("test-key", server.URL+"/v1")

	got, err := lister.ChatModels(context.Background())
	if err != nil {
		t.Fatalf("ChatModels failed: %v", err)
	}
	want := []string{"gpt-4o", "gpt-4o-mini"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	var out bytes.Buffer
	if err := lister.ListAvailableModels(context.Background(), &out); err != nil {
		t.Fatalf("ListAvailableModels failed: %v", err)
	}
	if !strings.Contains(out.String(), "  gpt-4o-mini\n") {
		t.Errorf("Expected gpt-4o-mini in output, got:\n%s", out.String())
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	lister := NewLister(apiKey)

	var out bytes.Buffer
	if err := lister.ListAvailableModels(context.Background(), &out); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
	t.Log(out.String())
}
