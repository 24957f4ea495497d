// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package antidote

import (
	"context"
	"errors"

	"github.com/golang/protobuf/proto"

	"github.com/creachadair/antidote/apb"
	"github.com/creachadair/antidote/pool"
	"github.com/creachadair/antidote/wire"
)

// ErrTxnFinished is reported by Read and Update on an interactive transaction
// that has already been committed or aborted.
var ErrTxnFinished = errors.New("transaction is finished")

// A Transaction is a consistency boundary for reads and updates of objects.
//
// The two implementations are [InteractiveTransaction], which is tracked by
// the server across multiple round trips, and [StaticTransaction], which
// wraps each operation in its own ephemeral auto-committed server-side
// transaction.
type Transaction interface {
	// Read fetches the current values of the given bound objects.
	// Results are returned in request order.
	Read(ctx context.Context, objs []*apb.ApbBoundObject) (*apb.ApbReadObjectsResp, error)

	// Update applies the given updates to their bound objects.
	Update(ctx context.Context, ups []*apb.ApbUpdateOp) error
}

// roundTrip sends a single framed request on conn and decodes the response,
// whose message code must be want. Reads are matched strictly to the
// immediately preceding write; the protocol does not pipeline. Any framing,
// I/O, or code-mismatch error leaves the stream in an unknown state, so the
// connection is marked broken before the error is returned.
func roundTrip[T any, PT interface {
	proto.Message
	*T
}](conn *pool.Conn, code wire.Code, req proto.Message, want wire.Code) (*T, error) {
	if err := wire.Encode(conn, code, req); err != nil {
		conn.MarkBroken()
		return nil, err
	}
	if err := conn.Flush(); err != nil {
		return nil, err
	}
	rsp, err := wire.Expect[T, PT](conn, want)
	if err != nil {
		conn.MarkBroken()
		return nil, err
	}
	return rsp, nil
}

// An InteractiveTransaction is a server-side transaction spanning multiple
// round trips. Updates made inside it are visible only to reads in the same
// transaction until it commits.
//
// The transaction pins one pooled connection from start until Commit or
// Abort completes, and its reads and updates travel on that connection in
// the order issued. Methods of an InteractiveTransaction must be called
// sequentially by a single logical owner; the transaction performs no
// internal locking, since interleaving operations from several goroutines on
// one transaction has no meaningful order for the caller either.
type InteractiveTransaction struct {
	txid []byte // descriptor assigned by the server, echoed on every message
	conn *pool.Conn
	pool *pool.Pool
	done bool
}

// Read implements part of the [Transaction] interface. The context is
// accepted for interface compatibility; a request already in flight on the
// pinned connection runs to completion or I/O failure.
func (t *InteractiveTransaction) Read(ctx context.Context, objs []*apb.ApbBoundObject) (*apb.ApbReadObjectsResp, error) {
	if t.done {
		return nil, ErrTxnFinished
	}
	rsp, err := roundTrip[apb.ApbReadObjectsResp](t.conn, wire.CodeReadObjects, &apb.ApbReadObjects{
		Boundobjects:          objs,
		TransactionDescriptor: t.txid,
	}, wire.CodeOperationResp)
	if err != nil {
		return nil, err
	}
	if !rsp.GetSuccess() {
		return nil, &ServerError{Op: "read objects", Code: rsp.GetErrorcode()}
	}
	return rsp, nil
}

// Update implements part of the [Transaction] interface. See Read regarding
// the context.
func (t *InteractiveTransaction) Update(ctx context.Context, ups []*apb.ApbUpdateOp) error {
	if t.done {
		return ErrTxnFinished
	}
	rsp, err := roundTrip[apb.ApbOperationResp](t.conn, wire.CodeUpdateObjects, &apb.ApbUpdateObjects{
		Updates:               ups,
		TransactionDescriptor: t.txid,
	}, wire.CodeOperationResp)
	if err != nil {
		return err
	}
	if !rsp.GetSuccess() {
		return &ServerError{Op: "update objects", Code: rsp.GetErrorcode()}
	}
	return nil
}

// Commit commits the transaction and releases its connection back to the
// pool. Once Commit or Abort has completed a round trip, the transaction is
// terminal: further calls to Commit or Abort are no-ops reporting nil.
func (t *InteractiveTransaction) Commit(ctx context.Context) error {
	if t.done {
		return nil
	}
	rsp, err := roundTrip[apb.ApbCommitResp](t.conn, wire.CodeCommitTransaction, &apb.ApbCommitTransaction{
		TransactionDescriptor: t.txid,
	}, wire.CodeCommitResp)
	t.finish()
	if err != nil {
		return err
	}
	if !rsp.GetSuccess() {
		return &ServerError{Op: "commit transaction", Code: rsp.GetErrorcode()}
	}
	return nil
}

// Abort aborts the transaction and releases its connection back to the pool.
// Like Commit, it is a no-op once the transaction is terminal.
func (t *InteractiveTransaction) Abort(ctx context.Context) error {
	if t.done {
		return nil
	}
	rsp, err := roundTrip[apb.ApbOperationResp](t.conn, wire.CodeAbortTransaction, &apb.ApbAbortTransaction{
		TransactionDescriptor: t.txid,
	}, wire.CodeOperationResp)
	t.finish()
	if err != nil {
		return err
	}
	if !rsp.GetSuccess() {
		return &ServerError{Op: "abort transaction", Code: rsp.GetErrorcode()}
	}
	return nil
}

// finish marks the transaction terminal and returns its connection to the
// pool. If the final round trip failed, the connection is already marked
// broken and the pool discards it.
func (t *InteractiveTransaction) finish() {
	t.done = true
	t.pool.Put(t.conn)
	t.conn = nil
}

// A StaticTransaction issues each read or update in its own ephemeral
// server-side transaction, which the server commits automatically. It holds
// no state beyond a reference to its client, keeps no connection between
// operations, and is freely shareable across goroutines.
type StaticTransaction struct {
	c *Client
}

// Read implements part of the [Transaction] interface. It checks out a
// connection for the duration of the call; ctx governs the checkout.
func (s StaticTransaction) Read(ctx context.Context, objs []*apb.ApbBoundObject) (*apb.ApbReadObjectsResp, error) {
	p, conn, err := s.c.getConn(ctx)
	if err != nil {
		return nil, err
	}
	defer p.Put(conn)

	rsp, err := roundTrip[apb.ApbStaticReadObjectsResp](conn, wire.CodeStaticReadObjects, &apb.ApbStaticReadObjects{
		Transaction: startTxnRequest(),
		Objects:     objs,
	}, wire.CodeStaticReadObjectsResp)
	if err != nil {
		return nil, err
	}
	objsRsp := rsp.GetObjects()
	if !objsRsp.GetSuccess() {
		return nil, &ServerError{Op: "static read objects", Code: objsRsp.GetErrorcode()}
	}
	return objsRsp, nil
}

// Update implements part of the [Transaction] interface. It checks out a
// connection for the duration of the call; ctx governs the checkout.
func (s StaticTransaction) Update(ctx context.Context, ups []*apb.ApbUpdateOp) error {
	p, conn, err := s.c.getConn(ctx)
	if err != nil {
		return err
	}
	defer p.Put(conn)

	rsp, err := roundTrip[apb.ApbCommitResp](conn, wire.CodeStaticUpdateObjects, &apb.ApbStaticUpdateObjects{
		Transaction: startTxnRequest(),
		Updates:     ups,
	}, wire.CodeCommitResp)
	if err != nil {
		return err
	}
	if !rsp.GetSuccess() {
		return &ServerError{Op: "static update objects", Code: rsp.GetErrorcode()}
	}
	return nil
}
