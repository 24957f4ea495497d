// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package antidote_test

import (
	"bytes"
	"context"
	"errors"
	"net"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/creachadair/antidote"
	"github.com/creachadair/antidote/apb"
	"github.com/creachadair/antidote/testserver"
	"github.com/creachadair/antidote/wire"
	"github.com/creachadair/taskgroup"
	"github.com/fortytw2/leaktest"
	"github.com/golang/protobuf/proto"
	"github.com/google/go-cmp/cmp"
)

// newTestClient starts an in-memory server and returns a client connected to
// it. Both are shut down when the test ends.
func newTestClient(t *testing.T, opts *antidote.Options) (*testserver.Server, *antidote.Client) {
	t.Helper()
	srv, err := testserver.New()
	if err != nil {
		t.Fatalf("Start server: %v", err)
	}
	t.Cleanup(func() { srv.Close() })
	t.Logf("Server listening at %q", srv.Addr())

	name, port, err := net.SplitHostPort(srv.Addr())
	if err != nil {
		t.Fatalf("Invalid server address %q: %v", srv.Addr(), err)
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		t.Fatalf("Invalid server port %q: %v", port, err)
	}
	cli, err := antidote.NewClient([]antidote.Host{{Name: name, Port: p}}, opts)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { cli.Close() })
	return srv, cli
}

func TestNewClientEmpty(t *testing.T) {
	if cli, err := antidote.NewClient(nil, nil); err == nil {
		t.Errorf("NewClient(nil): got %+v, want error", cli)
	} else {
		t.Logf("Error OK: %v", err)
	}
}

func TestCounter(t *testing.T) {
	_, cli := newTestClient(t, nil)
	ctx := context.Background()
	b := antidote.Bucket{Name: []byte("test")}
	key := antidote.Key("visits")

	tx, err := cli.StartTransaction(ctx)
	if err != nil {
		t.Fatalf("StartTransaction: %v", err)
	}
	if err := b.Update(ctx, tx, antidote.CounterInc(key, 5)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := b.Update(ctx, tx, antidote.CounterInc(key, -2)); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Reads inside the transaction observe its own writes.
	if got, err := b.ReadCounter(ctx, tx, key); err != nil {
		t.Errorf("ReadCounter: unexpected error: %v", err)
	} else if got != 3 {
		t.Errorf("ReadCounter: got %d, want 3", got)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	// The committed value is visible to a later static read.
	if got, err := b.ReadCounter(ctx, cli.StaticTransaction(), key); err != nil {
		t.Errorf("ReadCounter (static): unexpected error: %v", err)
	} else if got != 3 {
		t.Errorf("ReadCounter (static): got %d, want 3", got)
	}
}

func TestSet(t *testing.T) {
	_, cli := newTestClient(t, nil)
	ctx := context.Background()
	b := antidote.Bucket{Name: []byte("test")}
	key := antidote.Key("tags")
	st := cli.StaticTransaction()

	err := b.Update(ctx, st, antidote.SetAdd(key,
		[]byte("apple"), []byte("pear"), []byte("plum")))
	if err != nil {
		t.Fatalf("Update (add): %v", err)
	}
	if err := b.Update(ctx, st, antidote.SetRemove(key, []byte("pear"))); err != nil {
		t.Fatalf("Update (remove): %v", err)
	}

	got, err := b.ReadSet(ctx, st, key)
	if err != nil {
		t.Fatalf("ReadSet: %v", err)
	}
	slices.SortFunc(got, bytes.Compare)
	want := [][]byte{[]byte("apple"), []byte("plum")}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("ReadSet (-got, +want):\n%s", diff)
	}
}

func TestRegisters(t *testing.T) {
	_, cli := newTestClient(t, nil)
	ctx := context.Background()
	b := antidote.Bucket{Name: []byte("test")}
	st := cli.StaticTransaction()

	if err := b.Update(ctx, st,
		antidote.RegPut(antidote.Key("name"), []byte("alice")),
		antidote.MVRegPut(antidote.Key("motto"), []byte("onward")),
	); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got, err := b.ReadReg(ctx, st, antidote.Key("name")); err != nil {
		t.Errorf("ReadReg: unexpected error: %v", err)
	} else if string(got) != "alice" {
		t.Errorf("ReadReg: got %q, want %q", got, "alice")
	}

	if got, err := b.ReadMVReg(ctx, st, antidote.Key("motto")); err != nil {
		t.Errorf("ReadMVReg: unexpected error: %v", err)
	} else if len(got) != 1 || string(got[0]) != "onward" {
		t.Errorf("ReadMVReg: got %q, want [%q]", got, "onward")
	}
}

func TestReadAbsent(t *testing.T) {
	_, cli := newTestClient(t, nil)
	ctx := context.Background()
	b := antidote.Bucket{Name: []byte("test")}
	key := antidote.Key("never-written")
	st := cli.StaticTransaction()

	// An object that has never been written reads as its type's empty value,
	// not as an error.
	if got, err := b.ReadCounter(ctx, st, key); err != nil {
		t.Errorf("ReadCounter (absent): unexpected error: %v", err)
	} else if got != 0 {
		t.Errorf("ReadCounter (absent): got %d, want 0", got)
	}
	if got, err := b.ReadSet(ctx, st, key); err != nil {
		t.Errorf("ReadSet (absent): unexpected error: %v", err)
	} else if len(got) != 0 {
		t.Errorf("ReadSet (absent): got %q, want empty", got)
	}
	if got, err := b.ReadReg(ctx, st, key); err != nil {
		t.Errorf("ReadReg (absent): unexpected error: %v", err)
	} else if len(got) != 0 {
		t.Errorf("ReadReg (absent): got %q, want empty", got)
	}
	if got, err := b.ReadMVReg(ctx, st, key); err != nil {
		t.Errorf("ReadMVReg (absent): unexpected error: %v", err)
	} else if len(got) != 0 {
		t.Errorf("ReadMVReg (absent): got %q, want empty", got)
	}
	if got, err := b.ReadMap(ctx, st, key); err != nil {
		t.Errorf("ReadMap (absent): unexpected error: %v", err)
	} else if keys := got.ListMapKeys(); len(keys) != 0 {
		t.Errorf("ReadMap (absent): got entries %v, want none", keys)
	}
}

func TestMap(t *testing.T) {
	_, cli := newTestClient(t, nil)
	ctx := context.Background()
	b := antidote.Bucket{Name: []byte("test")}
	key := antidote.Key("profile")
	st := cli.StaticTransaction()

	err := b.Update(ctx, st, antidote.MapUpdate(key,
		antidote.CounterInc(antidote.Key("hits"), 3),
		antidote.RegPut(antidote.Key("name"), []byte("bob")),
		antidote.MapUpdate(antidote.Key("inner"),
			antidote.SetAdd(antidote.Key("tags"), []byte("new")),
		),
	))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	m, err := b.ReadMap(ctx, st, key)
	if err != nil {
		t.Fatalf("ReadMap: %v", err)
	}

	if got, err := m.Counter(antidote.Key("hits")); err != nil {
		t.Errorf("Counter(hits): unexpected error: %v", err)
	} else if got != 3 {
		t.Errorf("Counter(hits): got %d, want 3", got)
	}
	if got, err := m.Reg(antidote.Key("name")); err != nil {
		t.Errorf("Reg(name): unexpected error: %v", err)
	} else if string(got) != "bob" {
		t.Errorf("Reg(name): got %q, want %q", got, "bob")
	}

	inner, err := m.Map(antidote.Key("inner"))
	if err != nil {
		t.Fatalf("Map(inner): %v", err)
	}
	if got, err := inner.Set(antidote.Key("tags")); err != nil {
		t.Errorf("Set(tags): unexpected error: %v", err)
	} else if len(got) != 1 || string(got[0]) != "new" {
		t.Errorf("Set(tags): got %q, want [%q]", got, "new")
	}

	// An entry matches only if both key and type agree.
	if _, err := m.Set(antidote.Key("hits")); !errors.Is(err, antidote.ErrNoEntry) {
		t.Errorf("Set(hits): got error %v, want %v", err, antidote.ErrNoEntry)
	}
	if _, err := m.Counter(antidote.Key("nonesuch")); !errors.Is(err, antidote.ErrNoEntry) {
		t.Errorf("Counter(nonesuch): got error %v, want %v", err, antidote.ErrNoEntry)
	}

	keys := m.ListMapKeys()
	var names []string
	for _, k := range keys {
		names = append(names, k.String())
	}
	slices.Sort(names)
	want := []string{
		"COUNTER(\"hits\")",
		"LWWREG(\"name\")",
		"RRMAP(\"inner\")",
	}
	slices.Sort(want)
	if diff := cmp.Diff(names, want); diff != "" {
		t.Errorf("ListMapKeys (-got, +want):\n%s", diff)
	}
}

func TestMapDepthLimit(t *testing.T) {
	_, cli := newTestClient(t, nil)
	ctx := context.Background()
	b := antidote.Bucket{Name: []byte("test")}

	// Wrap an update in one more level of map nesting than is allowed.
	up := antidote.CounterInc(antidote.Key("bottom"), 1)
	for i := 0; i <= antidote.MaxMapDepth; i++ {
		up = antidote.MapUpdate(antidote.Key("level"), up)
	}
	if err := b.Update(ctx, cli.StaticTransaction(), up); err == nil {
		t.Error("Update: deeply nested map did not report an error")
	} else {
		t.Logf("Error OK: %v", err)
	}
}

func TestConcurrentCounter(t *testing.T) {
	// Registered before the server and client, so it runs after their
	// cleanups have shut everything down.
	t.Cleanup(leaktest.CheckTimeout(t, 5*time.Second))

	const numWorkers = 4
	const numIncrements = 25

	_, cli := newTestClient(t, nil)
	ctx := context.Background()
	b := antidote.Bucket{Name: []byte("test")}
	key := antidote.Key("total")

	g := taskgroup.New(nil)
	for range numWorkers {
		g.Go(func() error {
			for range numIncrements {
				tx, err := cli.StartTransaction(ctx)
				if err != nil {
					return err
				}
				if err := b.Update(ctx, tx, antidote.CounterInc(key, 1)); err != nil {
					return err
				}
				if err := tx.Commit(ctx); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Workers failed: %v", err)
	}

	got, err := b.ReadCounter(ctx, cli.StaticTransaction(), key)
	if err != nil {
		t.Fatalf("ReadCounter: %v", err)
	}
	if want := int32(numWorkers * numIncrements); got != want {
		t.Errorf("ReadCounter: got %d, want %d", got, want)
	}
}

func TestTransactionLifecycle(t *testing.T) {
	_, cli := newTestClient(t, nil)
	ctx := context.Background()
	b := antidote.Bucket{Name: []byte("test")}

	t.Run("Committed", func(t *testing.T) {
		tx, err := cli.StartTransaction(ctx)
		if err != nil {
			t.Fatalf("StartTransaction: %v", err)
		}
		if err := b.Update(ctx, tx, antidote.CounterInc(antidote.Key("c"), 1)); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("Commit: %v", err)
		}

		// Once finished, commit and abort are no-ops.
		if err := tx.Commit(ctx); err != nil {
			t.Errorf("Commit (repeat): got %v, want nil", err)
		}
		if err := tx.Abort(ctx); err != nil {
			t.Errorf("Abort after commit: got %v, want nil", err)
		}

		// But reads and writes are rejected.
		if _, err := b.ReadCounter(ctx, tx, antidote.Key("c")); !errors.Is(err, antidote.ErrTxnFinished) {
			t.Errorf("ReadCounter after commit: got %v, want %v", err, antidote.ErrTxnFinished)
		}
		if err := b.Update(ctx, tx, antidote.CounterInc(antidote.Key("c"), 1)); !errors.Is(err, antidote.ErrTxnFinished) {
			t.Errorf("Update after commit: got %v, want %v", err, antidote.ErrTxnFinished)
		}
	})

	t.Run("Aborted", func(t *testing.T) {
		tx, err := cli.StartTransaction(ctx)
		if err != nil {
			t.Fatalf("StartTransaction: %v", err)
		}
		if err := tx.Abort(ctx); err != nil {
			t.Fatalf("Abort: %v", err)
		}
		if err := tx.Abort(ctx); err != nil {
			t.Errorf("Abort (repeat): got %v, want nil", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Errorf("Commit after abort: got %v, want nil", err)
		}
		if err := b.Update(ctx, tx, antidote.CounterInc(antidote.Key("c"), 1)); !errors.Is(err, antidote.ErrTxnFinished) {
			t.Errorf("Update after abort: got %v, want %v", err, antidote.ErrTxnFinished)
		}
	})
}

func TestServerError(t *testing.T) {
	srv, cli := newTestClient(t, nil)
	ctx := context.Background()
	b := antidote.Bucket{Name: []byte("test")}

	srv.SetUpdateError(7)
	defer srv.SetUpdateError(0)

	check := func(t *testing.T, err error) {
		t.Helper()
		var serr *antidote.ServerError
		if !errors.As(err, &serr) {
			t.Fatalf("Got error %v, want ServerError", err)
		}
		if serr.Code != 7 {
			t.Errorf("Error code: got %d, want 7", serr.Code)
		}
	}

	t.Run("Static", func(t *testing.T) {
		err := b.Update(ctx, cli.StaticTransaction(), antidote.CounterInc(antidote.Key("c"), 1))
		check(t, err)
	})
	t.Run("Interactive", func(t *testing.T) {
		tx, err := cli.StartTransaction(ctx)
		if err != nil {
			t.Fatalf("StartTransaction: %v", err)
		}
		check(t, b.Update(ctx, tx, antidote.CounterInc(antidote.Key("c"), 1)))
		if err := tx.Abort(ctx); err != nil {
			t.Errorf("Abort: unexpected error: %v", err)
		}
	})
}

func TestMismatchDiscardsConnection(t *testing.T) {
	var dials atomic.Int32
	srv, cli := newTestClient(t, &antidote.Options{
		Dial: func(ctx context.Context, addr string) (net.Conn, error) {
			dials.Add(1)
			var d net.Dialer
			return d.DialContext(ctx, "tcp", addr)
		},
	})
	ctx := context.Background()
	b := antidote.Bucket{Name: []byte("test")}
	key := antidote.Key("c")
	st := cli.StaticTransaction()

	if _, err := b.ReadCounter(ctx, st, key); err != nil {
		t.Fatalf("ReadCounter: unexpected error: %v", err)
	}
	if got := dials.Load(); got != 1 {
		t.Fatalf("Dial count: got %d, want 1", got)
	}

	// A response under the wrong message code fails the read and leaves the
	// stream state unknown, so the connection must not be reused.
	srv.SetResponseCode(wire.CodeCommitResp)
	_, err := b.ReadCounter(ctx, st, key)
	var cerr *wire.CodeMismatchError
	if !errors.As(err, &cerr) {
		t.Fatalf("ReadCounter: got error %v, want CodeMismatchError", err)
	}
	if cerr.Got != wire.CodeCommitResp || cerr.Want != wire.CodeStaticReadObjectsResp {
		t.Errorf("Mismatch: got (%v, %v), want (%v, %v)",
			cerr.Got, cerr.Want, wire.CodeCommitResp, wire.CodeStaticReadObjectsResp)
	}

	// The next operation dials a fresh connection rather than reusing the
	// desynchronized one.
	srv.SetResponseCode(0)
	if _, err := b.ReadCounter(ctx, st, key); err != nil {
		t.Fatalf("ReadCounter (after mismatch): unexpected error: %v", err)
	}
	if got := dials.Load(); got != 2 {
		t.Errorf("Dial count: got %d, want 2", got)
	}
}

func TestAdminOperations(t *testing.T) {
	srv, cli := newTestClient(t, nil)
	ctx := context.Background()

	nodes := []string{"antidote@dc1.example.com", "antidote@dc2.example.com"}
	if err := cli.CreateDC(ctx, nodes); err != nil {
		t.Fatalf("CreateDC: %v", err)
	}
	if diff := cmp.Diff(srv.Nodes(), nodes); diff != "" {
		t.Errorf("Recorded nodes (-got, +want):\n%s", diff)
	}

	desc, err := cli.ConnectionDescriptor(ctx)
	if err != nil {
		t.Fatalf("ConnectionDescriptor: %v", err)
	}
	if string(desc) != srv.Addr() {
		t.Errorf("Descriptor: got %q, want %q", desc, srv.Addr())
	}

	if err := cli.ConnectToDCs(ctx, [][]byte{desc}); err != nil {
		t.Fatalf("ConnectToDCs: %v", err)
	}
	if diff := cmp.Diff(srv.Descriptors(), [][]byte{desc}); diff != "" {
		t.Errorf("Recorded descriptors (-got, +want):\n%s", diff)
	}
}

func TestHostAddr(t *testing.T) {
	tests := []struct {
		host antidote.Host
		want string
	}{
		{antidote.Host{Name: "db.example.com"}, "db.example.com:8087"},
		{antidote.Host{Name: "db.example.com", Port: 9999}, "db.example.com:9999"},
		{antidote.Host{Name: "127.0.0.1", Port: 8087}, "127.0.0.1:8087"},
	}
	for _, tc := range tests {
		if got := tc.host.Addr(); got != tc.want {
			t.Errorf("Addr %+v: got %q, want %q", tc.host, got, tc.want)
		}
	}
}

func TestHostPickers(t *testing.T) {
	if got := antidote.FirstHost(5); got != 0 {
		t.Errorf("FirstHost(5): got %d, want 0", got)
	}
	for range 20 {
		if got := antidote.RandomHost(3); got < 0 || got >= 3 {
			t.Errorf("RandomHost(3): got %d, want 0..2", got)
		}
	}
	rr := antidote.RoundRobin()
	var got []int
	for range 5 {
		got = append(got, rr(3))
	}
	if diff := cmp.Diff(got, []int{0, 1, 2, 0, 1}); diff != "" {
		t.Errorf("RoundRobin sequence (-got, +want):\n%s", diff)
	}
}

// captureTxn is a Transaction that records the updates submitted to it.
type captureTxn struct {
	ups []*apb.ApbUpdateOp
}

func (c *captureTxn) Read(ctx context.Context, objs []*apb.ApbBoundObject) (*apb.ApbReadObjectsResp, error) {
	return &apb.ApbReadObjectsResp{Success: proto.Bool(true)}, nil
}

func (c *captureTxn) Update(ctx context.Context, ups []*apb.ApbUpdateOp) error {
	c.ups = append(c.ups, ups...)
	return nil
}

func TestUpdateEncoding(t *testing.T) {
	ctx := context.Background()
	b := antidote.Bucket{Name: []byte("bk")}
	rec := new(captureTxn)

	err := b.Update(ctx, rec, antidote.MapUpdate(antidote.Key("m"),
		antidote.CounterInc(antidote.Key("n"), 4),
	))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	// A nested update is carried as a map operation on a top-level bound
	// object; the inner operation keeps its own key and type.
	want := []*apb.ApbUpdateOp{{
		Boundobject: &apb.ApbBoundObject{
			Key:    []byte("m"),
			Type:   apb.CRDT_type_RRMAP.Enum(),
			Bucket: []byte("bk"),
		},
		Operation: &apb.ApbUpdateOperation{
			Mapop: &apb.ApbMapUpdate{
				Updates: []*apb.ApbMapNestedUpdate{{
					Key: &apb.ApbMapKey{
						Key:  []byte("n"),
						Type: apb.CRDT_type_COUNTER.Enum(),
					},
					Update: &apb.ApbUpdateOperation{
						Counterop: &apb.ApbCounterUpdate{Inc: proto.Int64(4)},
					},
				}},
			},
		},
	}}
	if diff := cmp.Diff(rec.ups, want); diff != "" {
		t.Errorf("Encoded updates (-got, +want):\n%s", diff)
	}
}

func TestStringers(t *testing.T) {
	h := antidote.Host{Name: "x", Port: 1}
	if got := h.String(); !strings.Contains(got, "x:1") {
		t.Errorf("Host string: got %q, want substring %q", got, "x:1")
	}
	k := antidote.MapEntryKey{Key: antidote.Key("a"), Type: antidote.TypeSet}
	if got := k.String(); got != `ORSET("a")` {
		t.Errorf("MapEntryKey string: got %q, want %q", got, `ORSET("a")`)
	}
}
