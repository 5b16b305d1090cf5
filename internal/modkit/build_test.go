package modkit

import (
	"net/http"
	"testing"

	"lexis/internal/modkit/httpkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()

	if b.Name != "" {
		t.Fatalf("default Name = %q, want empty", b.Name)
	}
	if b.Prefix != "" {
		t.Fatalf("default Prefix = %q, want empty", b.Prefix)
	}
	if b.Ports != nil {
		t.Fatalf("default Ports non-nil")
	}
	if b.SwaggerOn {
		t.Fatalf("default SwaggerOn = true, want false")
	}
	if len(b.Mw) != 0 {
		t.Fatalf("default Mw length = %d, want 0", len(b.Mw))
	}

	// Subrouter default is identity; should return what it was given
	var r httpkit.Router
	if r2 := b.Subrouter(r); r2 != r {
		t.Fatalf("default Subrouter should be identity")
	}

	// Register default is no-op; ensure it doesn't panic
	defer func() {
		if v := recover(); v != nil {
			t.Fatalf("default Register panicked: %v", v)
		}
	}()
	b.Register(r)
}

func TestBuild_WithOptions(t *testing.T) {
	t.Parallel()

	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }

	subCalled := 0
	regCalled := 0

	type ports struct {
		X int
		Y string
	}
	p := ports{X: 7, Y: "ok"}

	b := Build(
		WithName("strings"),
		WithPrefix("/strings"),
		WithMiddlewares(mwA, mwB),
		WithPorts(p),
		WithSwagger(true),
		WithSubrouter(func(in httpkit.Router) httpkit.Router {
			subCalled++
			return in
		}),
		WithRegister(func(in httpkit.Router) {
			regCalled++
		}),
	)

	if b.Name != "strings" {
		t.Fatalf("Name = %q", b.Name)
	}
	if b.Prefix != "/strings" {
		t.Fatalf("Prefix = %q", b.Prefix)
	}
	if got, ok := b.Ports.(ports); !ok || got != p {
		t.Fatalf("Ports mismatch after Build")
	}
	if !b.SwaggerOn {
		t.Fatalf("SwaggerOn = false, want true")
	}
	if len(b.Mw) != 2 {
		t.Fatalf("Mw length = %d, want 2", len(b.Mw))
	}

	var r httpkit.Router
	b.Subrouter(r)
	b.Register(r)
	if subCalled != 1 || regCalled != 1 {
		t.Fatalf("hooks not invoked: sub=%d reg=%d", subCalled, regCalled)
	}
}
