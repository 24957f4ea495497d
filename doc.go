// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package antidote is a client for the Antidote replicated CRDT database.
//
// Antidote stores convergent replicated data types (counters, sets,
// last-writer-wins registers, multi-value registers, and maps of those) under
// keys grouped into buckets, and replicates them across datacenters. This
// package speaks the server's length-prefixed protocol-buffer protocol over
// TCP, and hides the connection lifecycle and wire encoding behind
// transactions and typed object operations. Merge semantics are entirely the
// server's business; the client never computes CRDT state locally.
//
// # Clients
//
// A [Client] manages a bounded connection pool for each configured host:
//
//	client, err := antidote.NewClient([]antidote.Host{
//	    {Name: "localhost", Port: antidote.DefaultPort},
//	}, nil)
//
// A Client is safe for concurrent use by multiple goroutines, and should be
// closed when no longer needed to release its connections.
//
// # Transactions
//
// All reads and updates happen in the context of a [Transaction]. An
// interactive transaction is tracked by the server across multiple round
// trips and must be finished explicitly:
//
//	tx, err := client.StartTransaction(ctx)
//	if err != nil {
//	    return err
//	}
//	defer tx.Abort(ctx) // a no-op if the transaction was committed
//
//	if err := bucket.Update(ctx, tx, antidote.CounterInc(key, 1)); err != nil {
//	    return err
//	}
//	return tx.Commit(ctx)
//
// An interactive transaction pins one pooled connection for its whole
// lifetime. Leaking one without commit or abort leaves resources open on the
// server, so always finish what you start.
//
// A static transaction wraps each individual operation in its own ephemeral
// server-side transaction that the server commits automatically:
//
//	stx := client.StaticTransaction()
//	n, err := bucket.ReadCounter(ctx, stx, key)
//
// # Objects
//
// A [Bucket] provides typed reads and a batch update operation over the
// objects it contains. Update intents are built with [SetAdd], [SetRemove],
// [CounterInc], [RegPut], [MVRegPut], and [MapUpdate]; map updates nest
// further updates, arbitrarily deep up to a fixed limit. Reading a map yields
// a [MapReadResult], whose entries are extracted per type by exact key and
// type match.
package antidote
