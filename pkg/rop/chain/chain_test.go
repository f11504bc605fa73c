package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/rop4/pkg/rop"
)

type ctxKey struct{}

func TestFromValue_ThenMap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := Map(
		Then(FromValue[int, string](ctx, 3),
			func(ctx context.Context, v int) rop.Result[int, string] { return rop.Ok[int, string](v * 2) }),
		func(ctx context.Context, v int) string { return "n=" + strconv.Itoa(v) })

	out := c.Result()
	if !out.IsOk() || out.Value() != "n=6" {
		t.Fatalf("expected ok with n=6, got: %v", out)
	}
}

func TestThen_ShortCircuitOnFail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	called := false
	out := Then(Start(ctx, rop.Fail[int]("boom")),
		func(ctx context.Context, v int) rop.Result[string, string] {
			called = true
			return rop.Ok[string, string]("never")
		}).Result()

	if out.IsOk() || out.Err() != "boom" {
		t.Fatalf("expected fail 'boom', got: %v", out)
	}
	if called {
		t.Fatalf("onOk should not be called when initial result is fail")
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ok := ThenTry(FromValue[string, error](ctx, "42"),
		func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) }).Result()
	if !ok.IsOk() || ok.Value() != 42 {
		t.Fatalf("expected ok with 42, got: %v", ok)
	}

	failed := ThenTry(FromValue[string, error](ctx, "x"),
		func(ctx context.Context, s string) (int, error) { return 0, errors.New("try-error") }).Result()
	if failed.IsOk() || failed.Err().Error() != "try-error" {
		t.Fatalf("expected fail 'try-error', got: %v", failed)
	}
}

func TestMapFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	out := MapFails(Start(ctx, rop.Fail[int]("abc")),
		func(ctx context.Context, e string) int { return len(e) }).Result()
	if out.IsOk() || out.Err() != 3 {
		t.Fatalf("expected fail 3, got: %v", out)
	}
}

func TestEnsureAndOnFail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var okSeen, failSeen int

	FromValue[int, string](ctx, 1).
		Ensure(func(ctx context.Context, v int) { okSeen++ }).
		OnFail(func(ctx context.Context, e string) { failSeen++ })

	Start(ctx, rop.Fail[int]("e")).
		Ensure(func(ctx context.Context, v int) { okSeen++ }).
		OnFail(func(ctx context.Context, e string) { failSeen++ })

	if okSeen != 1 || failSeen != 1 {
		t.Fatalf("expected one call each; okSeen=%d, failSeen=%d", okSeen, failSeen)
	}
}

func TestEnsure_NeverFailsTheChain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	out := FromValue[int, string](ctx, -1).
		Ensure(func(ctx context.Context, v int) {}).
		Result()

	if !out.IsOk() || out.Value() != -1 {
		t.Fatalf("expected ok with -1 untouched, got: %v", out)
	}
}

func TestContextReachesSteps(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey{}, "tenant-1")
	out := Map(FromValue[int, string](ctx, 1), func(ctx context.Context, v int) string {
		return ctx.Value(ctxKey{}).(string)
	}).Result()

	if out.Value() != "tenant-1" {
		t.Fatalf("expected context value to reach the step, got %q", out.Value())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	onOk := func(ctx context.Context, v int) string { return "ok " + strconv.Itoa(v) }
	onFail := func(ctx context.Context, e string) string { return "fail " + e }

	if s := Finally(FromValue[int, string](ctx, 5), onOk, onFail); s != "ok 5" {
		t.Fatalf("expected 'ok 5', got %q", s)
	}
	if s := Finally(Start(ctx, rop.Fail[int]("x")), onOk, onFail); s != "fail x" {
		t.Fatalf("expected 'fail x', got %q", s)
	}
}
