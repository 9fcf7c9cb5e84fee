package latitude_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	latitude "github.com/NewtTheWolf/latitude-go"
)

func runResponseBody() map[string]any {
	return map[string]any{
		"uuid": "123e4567-e89b-12d3-a456-426614174000",
		"response": map[string]any{
			"text": "Test response",
			"usage": map[string]any{
				"prompt_tokens":     10,
				"completion_tokens": 20,
				"total_tokens":      30,
			},
		},
	}
}

func TestClientRequestHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		if err := json.NewEncoder(w).Encode(runResponseBody()); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	client := latitude.New("test_api_key",
		latitude.WithProjectID(12345),
		latitude.WithBaseURL(server.URL),
	)

	if _, err := client.Run(context.Background(), latitude.RunDocument{Path: "test-path"}); err != nil {
		t.Fatalf("failed to run document: %v", err)
	}

	if gotAuth != "Bearer test_api_key" {
		t.Errorf("got Authorization %q, want %q", gotAuth, "Bearer test_api_key")
	}
	if gotContentType != "application/json" {
		t.Errorf("got Content-Type %q, want %q", gotContentType, "application/json")
	}
	if gotUserAgent != "latitude-go/"+latitude.Version {
		t.Errorf("got User-Agent %q, want %q", gotUserAgent, "latitude-go/"+latitude.Version)
	}
}

func TestClientTargetResolution(t *testing.T) {
	tests := []struct {
		name     string
		options  []latitude.Option
		doc      latitude.RunDocument
		wantPath string
	}{
		{
			name:     "client defaults with live fallback",
			options:  []latitude.Option{latitude.WithProjectID(12345)},
			doc:      latitude.RunDocument{Path: "test-path"},
			wantPath: "/projects/12345/versions/live/documents/run",
		},
		{
			name: "client version uuid",
			options: []latitude.Option{
				latitude.WithProjectID(12345),
				latitude.WithVersionUUID("test-version"),
			},
			doc:      latitude.RunDocument{Path: "test-path"},
			wantPath: "/projects/12345/versions/test-version/documents/run",
		},
		{
			name:    "per-call override wins",
			options: []latitude.Option{latitude.WithProjectID(12345)},
			doc: latitude.RunDocument{
				Path:    "test-path",
				Options: &latitude.RunOptions{ProjectID: 678, VersionUUID: "draft"},
			},
			wantPath: "/projects/678/versions/draft/documents/run",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				if err := json.NewEncoder(w).Encode(runResponseBody()); err != nil {
					t.Errorf("failed to encode response: %v", err)
				}
			}))
			defer server.Close()

			options := append(tt.options, latitude.WithBaseURL(server.URL))
			client := latitude.New("test_api_key", options...)

			if _, err := client.Run(context.Background(), tt.doc); err != nil {
				t.Fatalf("failed to run document: %v", err)
			}

			if gotPath != tt.wantPath {
				t.Errorf("got path %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}

func TestClientMissingProjectID(t *testing.T) {
	client := latitude.New("test_api_key")

	_, err := client.Run(context.Background(), latitude.RunDocument{Path: "test-path"})
	if !errors.Is(err, latitude.ErrProjectIDRequired) {
		t.Fatalf("got error %v, want ErrProjectIDRequired", err)
	}
}

func TestClientBaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewEncoder(w).Encode(runResponseBody()); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	client := latitude.New("test_api_key",
		latitude.WithProjectID(1),
		latitude.WithBaseURL(server.URL+"/"),
	)

	if _, err := client.Run(context.Background(), latitude.RunDocument{Path: "p"}); err != nil {
		t.Fatalf("failed to run document: %v", err)
	}

	if gotPath != "/projects/1/versions/live/documents/run" {
		t.Errorf("got path %q, want no doubled slash", gotPath)
	}
}
