package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dkovalyov/go-user-store/internal/agent/api"
)

func TestClient_PostJSON_SetsHeaders_AndDecodesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected method POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected Content-Type application/json, got %q", ct)
		}
		if acc := r.Header.Get("Accept"); acc != "application/json" {
			t.Fatalf("expected Accept application/json, got %q", acc)
		}

		var got map[string]any
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if got["a"] != float64(1) { // json numbers decode as float64 into map
			t.Fatalf("expected a=1, got %#v", got["a"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	var resp map[string]any
	err := c.PostJSON("/x", map[string]any{"a": 1}, &resp)
	if err != nil {
		t.Fatalf("PostJSON returned error: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("expected ok=true, got %#v", resp["ok"])
	}
}

func TestClient_PostJSON_Non2xx_ReturnsBodyAsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"email already registered"}`)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	err := c.PostJSON("/x", map[string]any{"a": 1}, nil)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "email already registered") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_PostJSON_respNil_DoesNotDecode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		// вернём не-JSON, но при resp=nil клиент не должен пытаться декодировать
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "not a json")
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	if err := c.PostJSON("/x", map[string]any{"a": 1}, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestClient_GetJSON_Non2xx_ReturnsBodyAsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"User not found"}`)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	var resp map[string]any
	err := c.GetJSON("/x", &resp)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "User not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_GetJSON_EmptyBodyError_FallsBackToStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	err := c.GetJSON("/x", nil)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestClient_DeleteJSON_204NoContent_ReturnsNil(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		if acc := r.Header.Get("Accept"); acc != "application/json" {
			t.Fatalf("expected Accept application/json, got %q", acc)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	if err := c.DeleteJSON("/x", nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestClient_PutJSON_204NoContent_ReturnsNil(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	var resp map[string]any
	if err := c.PutJSON("/x", map[string]any{"a": 1}, &resp); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestClient_GetJSON_200EmptyBody_EOFIsOK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		// 200, но тело пустое
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	var resp map[string]any
	if err := c.GetJSON("/x", &resp); err != nil {
		t.Fatalf("expected nil error on empty body, got %v", err)
	}
}

func TestClient_GetJSON_reqNil_DoesNotSetContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Fatalf("expected no Content-Type, got %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	var resp map[string]any
	if err := c.GetJSON("/x", &resp); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/x" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL + "/")

	if err := c.GetJSON("/x", nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
