// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package antidote

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/golang/protobuf/proto"

	"github.com/creachadair/antidote/apb"
	"github.com/creachadair/antidote/pool"
	"github.com/creachadair/antidote/wire"
)

// DefaultPort is the customary port of the protocol-buffer interface of an
// Antidote server. It is a convention, not a requirement.
const DefaultPort = 8087

// A Host identifies one server endpoint. The zero port is replaced by
// DefaultPort.
type Host struct {
	Name string // hostname or IP address
	Port int
}

// Addr reports the dialable "host:port" address of h.
func (h Host) Addr() string {
	port := h.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(h.Name, strconv.Itoa(port))
}

func (h Host) String() string { return h.Addr() }

// A HostPicker chooses which of n configured hosts the next operation should
// use, by index. Implementations must be safe for concurrent use.
type HostPicker func(n int) int

// FirstHost always chooses the first configured host.
func FirstHost(int) int { return 0 }

// RandomHost chooses a host uniformly at random.
func RandomHost(n int) int { return rand.IntN(n) }

// RoundRobin returns a picker that cycles through the hosts in order.
func RoundRobin() HostPicker {
	var next atomic.Uint64
	return func(n int) int {
		return int((next.Add(1) - 1) % uint64(n))
	}
}

// Options are optional settings for a Client. A nil *Options is ready for use
// and provides default values as described.
type Options struct {
	// The maximum number of live connections per host.
	// If zero, use pool.DefaultMaxConns.
	MaxConns int

	// How long to wait between attempts to connect to an unreachable host.
	// If zero, use pool.DefaultRetryInterval.
	RetryInterval time.Duration

	// The policy used to choose a host for each new transaction or
	// administrative operation. If nil, hosts are used round-robin.
	PickHost HostPicker

	// If set, use this function to open new connections. This is intended
	// for testing; if nil, connections are dialed over TCP.
	Dial pool.DialFunc
}

func (o *Options) pickHost() HostPicker {
	if o == nil || o.PickHost == nil {
		return RoundRobin()
	}
	return o.PickHost
}

func (o *Options) poolOptions() *pool.Options {
	if o == nil {
		return nil
	}
	return &pool.Options{
		MaxConns:      o.MaxConns,
		RetryInterval: o.RetryInterval,
		Dial:          o.Dial,
	}
}

// A Client manages connections to the hosts of an Antidote datacenter. It
// maintains one connection pool per host, and is safe for concurrent use by
// multiple goroutines. The caller should Close the client when it is no
// longer needed, to release pooled connections.
type Client struct {
	pools []*pool.Pool
	pick  HostPicker
}

// NewClient constructs a client for the given hosts. At least one host must
// be specified. No connections are opened until they are needed.
func NewClient(hosts []Host, opts *Options) (*Client, error) {
	if len(hosts) == 0 {
		return nil, errors.New("no hosts specified")
	}
	pools := make([]*pool.Pool, len(hosts))
	for i, h := range hosts {
		pools[i] = pool.New(h.Addr(), opts.poolOptions())
	}
	return &Client{pools: pools, pick: opts.pickHost()}, nil
}

// Close closes the client and all its connection pools.
func (c *Client) Close() error {
	var last error
	for _, p := range c.pools {
		if err := p.Close(); err != nil {
			last = err
		}
	}
	return last
}

// getConn checks a connection out of the pool chosen by the client's host
// picker. The caller must return the connection to the reported pool.
func (c *Client) getConn(ctx context.Context) (*pool.Pool, *pool.Conn, error) {
	p := c.pools[c.pick(len(c.pools))%len(c.pools)]
	conn, err := p.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get connection for %s: %w", p.Addr(), err)
	}
	return p, conn, nil
}

// startTxnRequest returns a start-transaction request with the default
// properties: read-write, and blue (not red-blue) consistency.
func startTxnRequest() *apb.ApbStartTransaction {
	return &apb.ApbStartTransaction{
		Properties: &apb.ApbTxnProperties{
			ReadWrite: proto.Uint32(0),
			RedBlue:   proto.Uint32(0),
		},
	}
}

// StartTransaction begins a new interactive transaction on the server. The
// transaction owns one pooled connection until it is committed or aborted,
// and must be finished with Commit or Abort to release server-side resources.
// ctx governs the connection checkout, including waiting for an unreachable
// host.
func (c *Client) StartTransaction(ctx context.Context) (*InteractiveTransaction, error) {
	p, conn, err := c.getConn(ctx)
	if err != nil {
		return nil, err
	}
	rsp, err := roundTrip[apb.ApbStartTransactionResp](conn,
		wire.CodeStartTransaction, startTxnRequest(), wire.CodeStartTransactionResp)
	if err != nil {
		p.Put(conn)
		return nil, err
	}
	if !rsp.GetSuccess() {
		p.Put(conn)
		return nil, &ServerError{Op: "start transaction", Code: rsp.GetErrorcode()}
	}
	return &InteractiveTransaction{
		txid: rsp.GetTransactionDescriptor(),
		conn: conn,
		pool: p,
	}, nil
}

// StaticTransaction returns a static transaction handle backed by c. The
// handle does not touch the network; each operation made through it checks
// out a connection of its own.
func (c *Client) StaticTransaction() StaticTransaction {
	return StaticTransaction{c: c}
}

// CreateDC instructs the server to form a datacenter from the named nodes.
func (c *Client) CreateDC(ctx context.Context, nodes []string) error {
	p, conn, err := c.getConn(ctx)
	if err != nil {
		return err
	}
	defer p.Put(conn)

	rsp, err := roundTrip[apb.ApbCreateDCResp](conn,
		wire.CodeCreateDC, &apb.ApbCreateDC{Nodes: nodes}, wire.CodeCreateDCResp)
	if err != nil {
		return err
	}
	if !rsp.GetSuccess() {
		return &ServerError{Op: "create DC", Code: rsp.GetErrorcode()}
	}
	return nil
}

// ConnectionDescriptor fetches the opaque descriptor identifying this
// datacenter, for use by ConnectToDCs on a client of another datacenter.
func (c *Client) ConnectionDescriptor(ctx context.Context) ([]byte, error) {
	p, conn, err := c.getConn(ctx)
	if err != nil {
		return nil, err
	}
	defer p.Put(conn)

	rsp, err := roundTrip[apb.ApbGetConnectionDescriptorResp](conn,
		wire.CodeGetConnectionDescriptor, &apb.ApbGetConnectionDescriptor{},
		wire.CodeGetConnectionDescriptorResp)
	if err != nil {
		return nil, err
	}
	if !rsp.GetSuccess() {
		return nil, &ServerError{Op: "get connection descriptor", Code: rsp.GetErrorcode()}
	}
	return rsp.GetD(), nil
}

// ConnectToDCs joins this datacenter with the datacenters identified by the
// given connection descriptors.
func (c *Client) ConnectToDCs(ctx context.Context, descriptors [][]byte) error {
	p, conn, err := c.getConn(ctx)
	if err != nil {
		return err
	}
	defer p.Put(conn)

	rsp, err := roundTrip[apb.ApbConnectToDCsResp](conn,
		wire.CodeConnectToDCs, &apb.ApbConnectToDCs{Descriptors: descriptors},
		wire.CodeConnectToDCsResp)
	if err != nil {
		return err
	}
	if !rsp.GetSuccess() {
		return &ServerError{Op: "connect DCs", Code: rsp.GetErrorcode()}
	}
	return nil
}

// A ServerError reports that the server rejected an operation.
type ServerError struct {
	Op   string // the operation that was rejected
	Code uint32 // the server's numeric error code
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s failed: server error code %d", e.Op, e.Code)
}
