package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func billBody() string {
	return "SEC. 1. Short title.\n" +
		strings.Repeat("This Act may be cited as the Infrastructure Test Act. ", 30)
}

func TestFetchCandidates_FirstSourceWins(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(billBody()))
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, "")
	defer c.Close()
	text, err := c.fetchCandidates(context.Background(), "ih", []Candidate{
		{"gi_txt", srv.URL + "/a.txt"},
		{"gi_xml", srv.URL + "/a.xml"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 1 {
		t.Errorf("expected a single request, got %d", hits)
	}
	if !strings.Contains(text, "SEC. 1. Short title.") {
		t.Errorf("unexpected body: %q", text[:40])
	}
}

func TestFetchCandidates_FallsThroughOnErrorPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bad.txt":
			// 200 with an error body must not be accepted.
			w.Write([]byte("Page Not Found"))
		case "/missing.txt":
			http.NotFound(w, r)
		default:
			w.Write([]byte(billBody()))
		}
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, "")
	defer c.Close()
	text, err := c.fetchCandidates(context.Background(), "ih", []Candidate{
		{"gi_txt", srv.URL + "/bad.txt"},
		{"bulk_txt", srv.URL + "/missing.txt"},
		{"cg_txt", srv.URL + "/good.txt"},
	})
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}
	if !strings.Contains(text, "SEC. 1.") {
		t.Errorf("unexpected body: %q", text[:40])
	}
}

func TestFetchCandidates_AllFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, "")
	defer c.Close()
	_, err := c.fetchCandidates(context.Background(), "enr", []Candidate{
		{"gi_txt", srv.URL + "/a.txt"},
	})
	if err == nil {
		t.Fatal("expected an error when every source fails")
	}
	if !strings.Contains(err.Error(), "fetch enr") {
		t.Errorf("error should name the version: %v", err)
	}
}

func TestFetchCandidates_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewClient(5*time.Second, "")
	defer c.Close()
	_, err := c.fetchCandidates(ctx, "ih", []Candidate{
		{"gi_txt", srv.URL + "/a.txt"},
		{"gi_xml", srv.URL + "/b.xml"},
	})
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
}

func TestFetchCandidates_XMLDecoded(t *testing.T) {
	xml := "<bill><section><text>" +
		strings.Repeat("Funds are hereby appropriated for the fiscal year. ", 30) +
		"</text></section></bill>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(xml))
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, "")
	defer c.Close()
	text, err := c.fetchCandidates(context.Background(), "ih", []Candidate{
		{"gi_xml", srv.URL + "/a.xml"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(text, "<section>") {
		t.Errorf("xml tags should be stripped: %q", text[:60])
	}
	if !strings.Contains(text, "Funds are hereby appropriated") {
		t.Errorf("xml text missing: %q", text[:60])
	}
}

func TestBackoff_Bounded(t *testing.T) {
	for attempt := 0; attempt < 10; attempt++ {
		d := backoff(attempt)
		if d < 200*time.Millisecond || d > 4500*time.Millisecond {
			t.Errorf("attempt %d: backoff %v out of range", attempt, d)
		}
	}
}
