package deferred

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestResolve_FirstSettlementWins(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := New[int]()
	if !d.Resolve(1) {
		t.Fatal("first resolve should settle")
	}
	if d.Resolve(2) {
		t.Fatal("second resolve should not settle")
	}
	if d.Reject(errors.New("late")) {
		t.Fatal("reject after resolve should not settle")
	}

	v, err := d.Await(context.Background())
	if err != nil || v != 1 {
		t.Fatalf("expected (1, nil), got (%d, %v)", v, err)
	}
}

func TestReject(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("boom")
	d := New[int]()
	d.Reject(boom)

	_, err := d.Await(context.Background())
	if err != boom {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestReject_NilNormalized(t *testing.T) {
	d := New[int]()
	d.Reject(nil)

	_, err := d.Await(context.Background())
	if err == nil {
		t.Fatal("rejected deferred must carry a reason")
	}
}

func TestSettled(t *testing.T) {
	d := New[int]()
	if d.Settled() {
		t.Fatal("unsettled deferred reported settled")
	}
	d.Resolve(1)
	if !d.Settled() {
		t.Fatal("settled deferred reported unsettled")
	}
}

func TestAwait_ContextGivesUp(t *testing.T) {
	d := New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := d.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if d.Settled() {
		t.Fatal("giving up must not settle the deferred")
	}

	// the deferred still settles on its own schedule
	d.Resolve(9)
	v, err := d.Await(context.Background())
	if err != nil || v != 9 {
		t.Fatalf("expected (9, nil), got (%d, %v)", v, err)
	}
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := Run(func() (int, error) { return 42, nil })
	v, err := d.Await(context.Background())
	if err != nil || v != 42 {
		t.Fatalf("expected (42, nil), got (%d, %v)", v, err)
	}

	boom := errors.New("boom")
	f := Run(func() (int, error) { return 0, boom })
	if _, err := f.Await(context.Background()); err != boom {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := Run(func() (int, error) { panic("oops") })
	_, err := d.Await(context.Background())
	if err == nil || err.Error() != "oops" {
		t.Fatalf("expected coerced panic, got %v", err)
	}
}

func TestAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	d1, d2, d3 := New[int](), New[int](), New[int]()
	all := All(ctx, d1, d2, d3)

	// settle out of order; values still come back in argument order
	d3.Resolve(3)
	d1.Resolve(1)
	d2.Resolve(2)

	vs, err := all.Await(ctx)
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if len(vs) != 3 || vs[0] != 1 || vs[1] != 2 || vs[2] != 3 {
		t.Fatalf("unexpected values: %v", vs)
	}
}

func TestAll_LeftmostRejectionWins(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	e1, e2 := errors.New("first"), errors.New("second")
	d1, d2 := New[int](), New[int]()
	all := All(ctx, d1, d2)

	d2.Reject(e2)
	d1.Reject(e1)

	_, err := all.Await(ctx)
	if err != e1 {
		t.Fatalf("expected leftmost rejection, got %v", err)
	}
}

func TestAll_Empty(t *testing.T) {
	defer goleak.VerifyNone(t)

	vs, err := All[int](context.Background()).Await(context.Background())
	if err != nil || len(vs) != 0 {
		t.Fatalf("expected empty resolution, got (%v, %v)", vs, err)
	}
}

func TestRace(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	d1, d2 := New[int](), New[int]()
	race := Race(ctx, d1, d2)

	d2.Resolve(2)
	v, err := race.Await(ctx)
	if err != nil || v != 2 {
		t.Fatalf("expected (2, nil), got (%d, %v)", v, err)
	}

	// let the losing goroutine finish before the leak check
	d1.Resolve(1)
	time.Sleep(10 * time.Millisecond)
}

func TestRace_RejectionWinsWhenFirst(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	boom := errors.New("boom")
	d1, d2 := New[int](), New[int]()
	race := Race(ctx, d1, d2)

	d1.Reject(boom)
	if _, err := race.Await(ctx); err != boom {
		t.Fatalf("expected boom, got %v", err)
	}

	d2.Resolve(2)
	time.Sleep(10 * time.Millisecond)
}
