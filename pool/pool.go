// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package pool maintains a bounded pool of TCP connections to a single
// database host.
//
// Connections are created lazily when checked out, up to a fixed cap. When
// the cap is reached, checkout blocks until another caller releases a
// connection. A connect failure is retried on a fixed interval until the
// dial succeeds or the caller's context ends; the database is expected to
// eventually become reachable, so the pool itself never gives up.
//
// The pool does not probe connections for liveness before handing them out.
// A round-trip probe roughly doubles the latency of every operation, so a
// dead connection is instead discovered by the first failing read or write,
// which marks the connection broken; broken connections are discarded on
// release rather than reused.
package pool

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

// Default pool settings, applied where Options does not override them.
const (
	DefaultMaxConns      = 50
	DefaultRetryInterval = 1000 * time.Millisecond
)

// ErrClosed is reported by Get after the pool has been closed.
var ErrClosed = errors.New("pool is closed")

// A DialFunc opens a new network connection to addr.
type DialFunc func(ctx context.Context, addr string) (net.Conn, error)

func netDial(ctx context.Context, addr string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "tcp", addr)
}

// Options are optional settings for a Pool. A nil *Options is ready for use
// and provides default values as described.
type Options struct {
	// The maximum number of concurrently live connections.
	// If zero, use DefaultMaxConns.
	MaxConns int

	// How long to wait between connection attempts when the host is not
	// reachable. If zero, use DefaultRetryInterval.
	RetryInterval time.Duration

	// If set, use this function to open new connections.
	// If nil, connections are dialed over TCP.
	Dial DialFunc
}

func (o *Options) maxConns() int {
	if o == nil || o.MaxConns == 0 {
		return DefaultMaxConns
	}
	return o.MaxConns
}

func (o *Options) retryInterval() time.Duration {
	if o == nil || o.RetryInterval == 0 {
		return DefaultRetryInterval
	}
	return o.RetryInterval
}

func (o *Options) dialFunc() DialFunc {
	if o == nil || o.Dial == nil {
		return netDial
	}
	return o.Dial
}

// A Pool is a bounded collection of connections to one host. It is safe for
// concurrent use by multiple goroutines.
type Pool struct {
	addr  string
	dial  DialFunc
	retry time.Duration

	idle  chan *Conn    // connections ready for reuse
	slots chan struct{} // live-connection tokens, one per open connection

	mu     sync.Mutex
	closed bool
}

// New constructs an empty pool of connections to addr. New panics if the
// options specify a negative connection limit.
func New(addr string, opts *Options) *Pool {
	max := opts.maxConns()
	if max < 0 {
		panic(fmt.Sprintf("invalid connection limit %d", max))
	}
	return &Pool{
		addr:  addr,
		dial:  opts.dialFunc(),
		retry: opts.retryInterval(),
		idle:  make(chan *Conn, max),
		slots: make(chan struct{}, max),
	}
}

// Addr reports the address the pool connects to.
func (p *Pool) Addr() string { return p.addr }

// Get checks a connection out of the pool. An idle connection is returned if
// one is available; otherwise, if the pool is below its cap, a new connection
// is dialed. If the pool is at cap, Get blocks until a connection is released
// or ctx ends.
//
// The caller owns the returned connection exclusively until it is handed back
// with Put.
func (p *Pool) Get(ctx context.Context) (*Conn, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	// Fast path: reuse an idle connection without blocking.
	select {
	case c := <-p.idle:
		return c, nil
	default:
	}

	select {
	case c := <-p.idle:
		return c, nil
	case p.slots <- struct{}{}:
		c, err := p.connect(ctx)
		if err != nil {
			<-p.slots
			return nil, err
		}
		return c, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Put returns a connection to the pool. A connection that has been marked
// broken is closed and discarded, freeing its slot for a future dial.
func (p *Pool) Put(c *Conn) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()

	if closed || c.Broken() {
		c.close()
		<-p.slots
		return
	}
	select {
	case p.idle <- c:
	default:
		// The pool is already full of idle connections; drop this one.
		c.close()
		<-p.slots
	}
}

// Close closes the pool and all its idle connections. Connections currently
// checked out are closed when they are returned. After Close, Get reports
// ErrClosed.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	for {
		select {
		case c := <-p.idle:
			c.close()
			<-p.slots
		default:
			return nil
		}
	}
}

// connect dials a new connection, retrying on a fixed interval until the dial
// succeeds or ctx ends. The retry is an explicit loop so that an arbitrarily
// long outage cannot grow the stack.
func (p *Pool) connect(ctx context.Context) (*Conn, error) {
	for {
		nc, err := p.dial(ctx, p.addr)
		if err == nil {
			return newConn(nc), nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		t := time.NewTimer(p.retry)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

// A Conn is a single buffered connection to the host. A Conn is exclusively
// owned by whoever checked it out of the pool, and its methods must not be
// used concurrently.
type Conn struct {
	r *bufio.Reader
	w *bufio.Writer
	c net.Conn

	mu     sync.Mutex
	broken bool
}

func newConn(nc net.Conn) *Conn {
	return &Conn{r: bufio.NewReader(nc), w: bufio.NewWriter(nc), c: nc}
}

// Read implements io.Reader. A read error marks the connection broken.
func (c *Conn) Read(data []byte) (int, error) {
	n, err := c.r.Read(data)
	if err != nil {
		c.MarkBroken()
	}
	return n, err
}

// Write implements io.Writer. A write error marks the connection broken.
func (c *Conn) Write(data []byte) (int, error) {
	n, err := c.w.Write(data)
	if err != nil {
		c.MarkBroken()
	}
	return n, err
}

// Flush flushes any buffered writes to the network.
func (c *Conn) Flush() error {
	if err := c.w.Flush(); err != nil {
		c.MarkBroken()
		return err
	}
	return nil
}

// MarkBroken marks the connection as unusable, so that it is discarded
// rather than reused when it is returned to the pool. It is also the caller's
// hook for connections whose stream state is no longer trustworthy, such as
// after a protocol mismatch.
func (c *Conn) MarkBroken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.broken = true
}

// Broken reports whether the connection has been marked broken.
func (c *Conn) Broken() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.broken
}

func (c *Conn) close() error { return c.c.Close() }
