package middleware

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
)

func TestChain_Order(t *testing.T) {
	var order []string

	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	wrapped := Chain(mw("first"), mw("second"), mw("third"))(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	want := []string{"first", "second", "third", "handler"}
	if !slices.Equal(order, want) {
		t.Errorf("execution order: got %v, want %v", order, want)
	}
}

func TestChain_Empty(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	wrapped := Chain()(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("expected handler to be called")
	}
}
