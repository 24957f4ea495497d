// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package pool_test

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/creachadair/antidote/pool"
	"github.com/creachadair/mds/mtest"
	"github.com/fortytw2/leaktest"
)

// A dialer hands out pipe connections and records how often it was called.
// Its fail field, if positive, makes that many leading dials report an error.
type dialer struct {
	mu    sync.Mutex
	calls int
	fail  int
	conns []net.Conn // server ends, closed on cleanup
}

func (d *dialer) dial(ctx context.Context, addr string) (net.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	if d.fail > 0 {
		d.fail--
		return nil, errors.New("host unreachable")
	}
	cc, sc := net.Pipe()
	d.conns = append(d.conns, sc)
	return cc, nil
}

func (d *dialer) numCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

func newTestPool(t *testing.T, opts *pool.Options) (*pool.Pool, *dialer) {
	t.Helper()
	d := new(dialer)
	if opts == nil {
		opts = new(pool.Options)
	}
	opts.Dial = d.dial
	p := pool.New("test:8087", opts)
	t.Cleanup(func() {
		p.Close()
		d.mu.Lock()
		defer d.mu.Unlock()
		for _, sc := range d.conns {
			sc.Close()
		}
	})
	return p, d
}

func TestReuse(t *testing.T) {
	p, d := newTestPool(t, nil)
	ctx := context.Background()

	c1, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	p.Put(c1)

	c2, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if c2 != c1 {
		t.Errorf("Get: got %p, want the released connection %p", c2, c1)
	}
	p.Put(c2)

	if got := d.numCalls(); got != 1 {
		t.Errorf("Dial calls: got %d, want 1", got)
	}
}

func TestLimitBlocks(t *testing.T) {
	defer leaktest.Check(t)()

	p, _ := newTestPool(t, &pool.Options{MaxConns: 1})
	ctx := context.Background()

	c1, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}

	// A second checkout must block until the first is released.
	got := make(chan *pool.Conn, 1)
	go func() {
		c, err := p.Get(ctx)
		if err != nil {
			t.Errorf("Get (blocked): unexpected error: %v", err)
		}
		got <- c
	}()

	select {
	case c := <-got:
		t.Fatalf("Get did not block at the cap (got %p)", c)
	case <-time.After(50 * time.Millisecond):
		// OK, still waiting.
	}

	p.Put(c1)
	select {
	case c := <-got:
		if c != c1 {
			t.Errorf("Get (blocked): got %p, want the released connection %p", c, c1)
		}
		p.Put(c)
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for the blocked Get")
	}
}

func TestGetCancel(t *testing.T) {
	p, _ := newTestPool(t, &pool.Options{MaxConns: 1})

	c1, err := p.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	defer p.Put(c1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if c, err := p.Get(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Get: got (%p, %v), want %v", c, err, context.DeadlineExceeded)
	}
}

func TestDialRetry(t *testing.T) {
	p, d := newTestPool(t, &pool.Options{RetryInterval: 2 * time.Millisecond})
	d.fail = 2 // the first two dials fail, then the host comes up

	c, err := p.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	p.Put(c)

	if got := d.numCalls(); got != 3 {
		t.Errorf("Dial calls: got %d, want 3", got)
	}
}

func TestRetryCancel(t *testing.T) {
	p, d := newTestPool(t, &pool.Options{RetryInterval: time.Hour})
	d.fail = 1 << 30 // the host never comes up

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if c, err := p.Get(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Get: got (%p, %v), want %v", c, err, context.DeadlineExceeded)
	}
}

func TestBrokenDiscarded(t *testing.T) {
	p, d := newTestPool(t, nil)
	ctx := context.Background()

	c1, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	c1.MarkBroken()
	p.Put(c1)

	c2, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if c2 == c1 {
		t.Error("Get returned a connection that was marked broken")
	}
	p.Put(c2)

	if got := d.numCalls(); got != 2 {
		t.Errorf("Dial calls: got %d, want 2", got)
	}
}

func TestClose(t *testing.T) {
	p, _ := newTestPool(t, nil)
	ctx := context.Background()

	c, err := p.Get(ctx)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	p.Put(c)

	if err := p.Close(); err != nil {
		t.Errorf("Close: unexpected error: %v", err)
	}
	if _, err := p.Get(ctx); !errors.Is(err, pool.ErrClosed) {
		t.Errorf("Get after close: got %v, want %v", err, pool.ErrClosed)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close (again): unexpected error: %v", err)
	}
}

func TestInvalidLimit(t *testing.T) {
	mtest.MustPanic(t, func() { pool.New("test:8087", &pool.Options{MaxConns: -1}) })
}
