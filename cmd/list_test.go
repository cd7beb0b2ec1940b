package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grooveapp/groove/client"
)

func TestFormatPhotoList(t *testing.T) {
	photos := []client.Photo{
		{URL: "1.jpeg", Size: 36, Title: "Beachside"},
		{URL: "2.jpeg", Size: 38, Title: "(untitled)"},
	}

	out := formatPhotoList(photos, "http://photos.example.com/photos/")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[0], "Beachside") {
		t.Errorf("first line missing title: %q", lines[0])
	}
	if !strings.Contains(lines[0], "[36 KB]") {
		t.Errorf("first line missing size: %q", lines[0])
	}
	if !strings.Contains(lines[0], "http://photos.example.com/photos/1.jpeg") {
		t.Errorf("first line missing URL: %q", lines[0])
	}

	// Titles are padded so the size column lines up.
	if strings.Index(lines[0], "[") != strings.Index(lines[1], "[") {
		t.Errorf("size columns not aligned:\n%s", out)
	}
}

func TestRunList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/photos/list.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"url": "1.jpeg", "size": 36, "title": "Beachside"}]`))
	}))
	defer server.Close()

	oldBaseURL := baseURL
	defer func() { baseURL = oldBaseURL }()
	baseURL = server.URL

	var buf bytes.Buffer
	if err := runList(&buf); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "Beachside") {
		t.Errorf("output missing photo title: %q", buf.String())
	}
}

func TestRunList_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	oldBaseURL := baseURL
	defer func() { baseURL = oldBaseURL }()
	baseURL = server.URL

	var buf bytes.Buffer
	err := runList(&buf)
	if err == nil {
		t.Fatal("expected error for empty photo list")
	}
	if err.Error() != "0 photos found" {
		t.Errorf("got error %q, want %q", err.Error(), "0 photos found")
	}
}

func TestRunList_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	oldBaseURL := baseURL
	defer func() { baseURL = oldBaseURL }()
	baseURL = server.URL

	var buf bytes.Buffer
	if err := runList(&buf); err == nil {
		t.Fatal("expected error for server failure")
	}
}
