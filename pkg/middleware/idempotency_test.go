package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	calls := 0
	handler := Idempotency(store, "Idempotency-Key")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"call": %d}`, calls)
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/book", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i, rec.Code)
		}
		if rec.Body.String() != `{"call": 1}` {
			t.Errorf("request %d: expected the first response replayed, got %s", i, rec.Body.String())
		}
	}

	if calls != 1 {
		t.Errorf("handler should run once, ran %d times", calls)
	}
}

func TestIdempotency_DistinctKeysAreIndependent(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	calls := 0
	handler := Idempotency(store, "Idempotency-Key")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	}))

	for _, key := range []string{"key-a", "key-b"} {
		req := httptest.NewRequest(http.MethodPost, "/api/book", nil)
		req.Header.Set("Idempotency-Key", key)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}

	if calls != 2 {
		t.Errorf("expected 2 handler runs, got %d", calls)
	}
}

func TestIdempotency_SkipsReadsAndMissingKey(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	calls := 0
	handler := Idempotency(store, "Idempotency-Key")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	// GET is never cached, even with a key.
	getReq := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	getReq.Header.Set("Idempotency-Key", "key-1")
	handler.ServeHTTP(httptest.NewRecorder(), getReq)
	handler.ServeHTTP(httptest.NewRecorder(), getReq)

	// POST without a key passes through every time.
	postReq := httptest.NewRequest(http.MethodPost, "/api/book", nil)
	handler.ServeHTTP(httptest.NewRecorder(), postReq)
	handler.ServeHTTP(httptest.NewRecorder(), postReq)

	if calls != 4 {
		t.Errorf("expected 4 handler runs, got %d", calls)
	}
}

func TestIdempotency_ServerErrorsAreNotCached(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	calls := 0
	handler := Idempotency(store, "Idempotency-Key")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/book", nil)
	req.Header.Set("Idempotency-Key", "retry-key")

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on first call, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusCreated {
		t.Errorf("expected a retry to reach the handler, got %d", second.Code)
	}
	if calls != 2 {
		t.Errorf("expected 2 handler runs, got %d", calls)
	}
}

func TestInMemoryStore_TTLExpiry(t *testing.T) {
	store := NewInMemoryIdempotencyStore(10 * time.Millisecond)
	defer store.Stop()

	store.Set("key", &CachedResponse{
		StatusCode: http.StatusOK,
		CreatedAt:  time.Now(),
	})

	if _, ok := store.Get("key"); !ok {
		t.Fatal("expected a fresh entry to be present")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Get("key"); ok {
		t.Error("expected the entry to expire")
	}
}
