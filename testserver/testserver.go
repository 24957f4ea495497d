// Package testserver provides an in-memory implementation of the server side
// of the Antidote protocol, for testing clients without a running database.
//
// The server keeps each object's state in memory and applies updates eagerly
// under a single lock: transaction descriptors are issued and accepted, but
// there is no isolation and abort does not roll anything back. That is
// sufficient to exercise the client's wire format, connection handling, and
// transaction plumbing, which is all it is for.
package testserver

import (
	"bufio"
	"fmt"
	"net"
	"sync"

	"github.com/creachadair/taskgroup"
	"github.com/golang/protobuf/proto"

	"github.com/creachadair/antidote/apb"
	"github.com/creachadair/antidote/wire"
)

// An entryKey names one object: objects with the same key but different
// types are distinct.
type entryKey struct {
	key   string
	ctype apb.CRDT_type
}

// An object is the server-side state of a single CRDT instance.
type object struct {
	counter int32
	set     map[string]bool
	reg     []byte
	mvreg   [][]byte
	kids    map[entryKey]*object // entries of a map object
}

func newObject() *object {
	return &object{set: make(map[string]bool), kids: make(map[entryKey]*object)}
}

// A Server serves the Antidote protocol on a loopback listener.
type Server struct {
	lst   net.Listener
	tasks *taskgroup.Group

	mu          sync.Mutex
	data        map[string]map[entryKey]*object // bucket → objects
	conns       map[net.Conn]struct{}
	nextTxn     uint64
	updateErr   uint32    // if nonzero, fail update operations with this code
	respCode    wire.Code // if nonzero, send all responses under this code
	nodes       []string  // recorded by create-DC
	descriptors [][]byte  // recorded by connect-DCs
}

// New starts a server on an unused loopback port. The caller must Close the
// server when it is no longer needed.
func New() (*Server, error) {
	lst, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	s := &Server{
		lst:   lst,
		tasks: taskgroup.New(nil),
		data:  make(map[string]map[entryKey]*object),
		conns: make(map[net.Conn]struct{}),
	}
	s.tasks.Go(func() error {
		for {
			conn, err := lst.Accept()
			if err != nil {
				return nil
			}
			s.mu.Lock()
			s.conns[conn] = struct{}{}
			s.mu.Unlock()
			s.tasks.Go(func() error { s.serve(conn); return nil })
		}
	})
	return s, nil
}

// Addr reports the "host:port" address the server is listening on.
func (s *Server) Addr() string { return s.lst.Addr().String() }

// Close shuts the server down and waits for its connections to drain.
func (s *Server) Close() error {
	s.lst.Close()
	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()
	s.tasks.Wait()
	return nil
}

// SetUpdateError causes subsequent update operations to be rejected with the
// given server error code. A zero code restores normal behaviour.
func (s *Server) SetUpdateError(code uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateErr = code
}

// SetResponseCode causes every subsequent response to be framed under the
// given message code regardless of its payload type, so tests can exercise
// client handling of a server that disagrees about the protocol. A zero code
// restores normal behaviour.
func (s *Server) SetResponseCode(code wire.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respCode = code
}

// send frames msg under code, or under the forced response code if one is
// set.
func (s *Server) send(bw *bufio.Writer, code wire.Code, msg proto.Message) error {
	s.mu.Lock()
	if s.respCode != 0 {
		code = s.respCode
	}
	s.mu.Unlock()
	return wire.Encode(bw, code, msg)
}

// Nodes reports the node names recorded by the last create-DC request.
func (s *Server) Nodes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nodes
}

// Descriptors reports the descriptors recorded by connect-DCs requests.
func (s *Server) Descriptors() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.descriptors
}

// serve handles one client connection until it closes or a frame cannot be
// processed.
func (s *Server) serve(conn net.Conn) {
	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
	}()

	br := bufio.NewReader(conn)
	bw := bufio.NewWriter(conn)
	for {
		code, payload, err := wire.DecodeFrame(br)
		if err != nil {
			return
		}
		if err := s.handle(bw, code, payload); err != nil {
			return
		}
		if err := bw.Flush(); err != nil {
			return
		}
	}
}

func okCommit() *apb.ApbCommitResp {
	return &apb.ApbCommitResp{Success: proto.Bool(true), CommitTime: []byte("ts")}
}

func (s *Server) handle(bw *bufio.Writer, code wire.Code, payload []byte) error {
	switch code {
	case wire.CodeStartTransaction:
		s.mu.Lock()
		s.nextTxn++
		id := s.nextTxn
		s.mu.Unlock()
		return s.send(bw, wire.CodeStartTransactionResp, &apb.ApbStartTransactionResp{
			Success:               proto.Bool(true),
			TransactionDescriptor: fmt.Appendf(nil, "txn-%d", id),
		})

	case wire.CodeReadObjects:
		var req apb.ApbReadObjects
		if err := proto.Unmarshal(payload, &req); err != nil {
			return err
		}
		return s.send(bw, wire.CodeOperationResp, s.readAll(req.GetBoundobjects()))

	case wire.CodeUpdateObjects:
		var req apb.ApbUpdateObjects
		if err := proto.Unmarshal(payload, &req); err != nil {
			return err
		}
		if ec := s.applyAll(req.GetUpdates()); ec != 0 {
			return s.send(bw, wire.CodeOperationResp, &apb.ApbOperationResp{
				Success:   proto.Bool(false),
				Errorcode: proto.Uint32(ec),
			})
		}
		return s.send(bw, wire.CodeOperationResp, &apb.ApbOperationResp{
			Success: proto.Bool(true),
		})

	case wire.CodeCommitTransaction:
		return s.send(bw, wire.CodeCommitResp, okCommit())

	case wire.CodeAbortTransaction:
		return s.send(bw, wire.CodeOperationResp, &apb.ApbOperationResp{
			Success: proto.Bool(true),
		})

	case wire.CodeStaticReadObjects:
		var req apb.ApbStaticReadObjects
		if err := proto.Unmarshal(payload, &req); err != nil {
			return err
		}
		return s.send(bw, wire.CodeStaticReadObjectsResp, &apb.ApbStaticReadObjectsResp{
			Objects:    s.readAll(req.GetObjects()),
			Committime: okCommit(),
		})

	case wire.CodeStaticUpdateObjects:
		var req apb.ApbStaticUpdateObjects
		if err := proto.Unmarshal(payload, &req); err != nil {
			return err
		}
		if ec := s.applyAll(req.GetUpdates()); ec != 0 {
			return s.send(bw, wire.CodeCommitResp, &apb.ApbCommitResp{
				Success:   proto.Bool(false),
				Errorcode: proto.Uint32(ec),
			})
		}
		return s.send(bw, wire.CodeCommitResp, okCommit())

	case wire.CodeCreateDC:
		var req apb.ApbCreateDC
		if err := proto.Unmarshal(payload, &req); err != nil {
			return err
		}
		s.mu.Lock()
		s.nodes = req.GetNodes()
		s.mu.Unlock()
		return s.send(bw, wire.CodeCreateDCResp, &apb.ApbCreateDCResp{
			Success: proto.Bool(true),
		})

	case wire.CodeGetConnectionDescriptor:
		return s.send(bw, wire.CodeGetConnectionDescriptorResp, &apb.ApbGetConnectionDescriptorResp{
			Success: proto.Bool(true),
			D:       []byte(s.Addr()),
		})

	case wire.CodeConnectToDCs:
		var req apb.ApbConnectToDCs
		if err := proto.Unmarshal(payload, &req); err != nil {
			return err
		}
		s.mu.Lock()
		s.descriptors = append(s.descriptors, req.GetDescriptors()...)
		s.mu.Unlock()
		return s.send(bw, wire.CodeConnectToDCsResp, &apb.ApbConnectToDCsResp{
			Success: proto.Bool(true),
		})

	default:
		return fmt.Errorf("unhandled message %s", code)
	}
}

// object returns the object for (bucket, key, ctype), creating it if needed.
// The caller must hold s.mu.
func (s *Server) object(bucket, key []byte, ctype apb.CRDT_type) *object {
	b := s.data[string(bucket)]
	if b == nil {
		b = make(map[entryKey]*object)
		s.data[string(bucket)] = b
	}
	k := entryKey{key: string(key), ctype: ctype}
	o := b[k]
	if o == nil {
		o = newObject()
		b[k] = o
	}
	return o
}

// applyAll applies a batch of updates, reporting a nonzero error code if the
// batch is rejected.
func (s *Server) applyAll(ups []*apb.ApbUpdateOp) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != 0 {
		return s.updateErr
	}
	for _, up := range ups {
		bo := up.GetBoundobject()
		obj := s.object(bo.GetBucket(), bo.GetKey(), bo.GetType())
		apply(obj, bo.GetType(), up.GetOperation())
	}
	return 0
}

// apply merges a single operation into an object's state.
func apply(o *object, ctype apb.CRDT_type, op *apb.ApbUpdateOperation) {
	switch ctype {
	case apb.CRDT_type_COUNTER:
		o.counter += int32(op.GetCounterop().GetInc())
	case apb.CRDT_type_ORSET:
		for _, e := range op.GetSetop().GetAdds() {
			o.set[string(e)] = true
		}
		for _, e := range op.GetSetop().GetRems() {
			delete(o.set, string(e))
		}
	case apb.CRDT_type_LWWREG:
		o.reg = op.GetRegop().GetValue()
	case apb.CRDT_type_MVREG:
		o.mvreg = [][]byte{op.GetRegop().GetValue()}
	case apb.CRDT_type_RRMAP:
		for _, nu := range op.GetMapop().GetUpdates() {
			k := entryKey{key: string(nu.GetKey().GetKey()), ctype: nu.GetKey().GetType()}
			kid := o.kids[k]
			if kid == nil {
				kid = newObject()
				o.kids[k] = kid
			}
			apply(kid, k.ctype, nu.GetUpdate())
		}
	}
}

// readAll renders the current values of the given bound objects, in request
// order. Objects never written read as their type's empty value.
func (s *Server) readAll(objs []*apb.ApbBoundObject) *apb.ApbReadObjectsResp {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := &apb.ApbReadObjectsResp{Success: proto.Bool(true)}
	for _, bo := range objs {
		out.Objects = append(out.Objects, render(s.object(bo.GetBucket(), bo.GetKey(), bo.GetType()), bo.GetType()))
	}
	return out
}

// render converts an object's state to its read response form.
func render(o *object, ctype apb.CRDT_type) *apb.ApbReadObjectResp {
	switch ctype {
	case apb.CRDT_type_COUNTER:
		return &apb.ApbReadObjectResp{Counter: &apb.ApbGetCounterResp{Value: proto.Int32(o.counter)}}
	case apb.CRDT_type_ORSET:
		elems := make([][]byte, 0, len(o.set))
		for e := range o.set {
			elems = append(elems, []byte(e))
		}
		return &apb.ApbReadObjectResp{Set: &apb.ApbGetSetResp{Value: elems}}
	case apb.CRDT_type_LWWREG:
		v := o.reg
		if v == nil {
			v = []byte{} // the value field is required on the wire
		}
		return &apb.ApbReadObjectResp{Reg: &apb.ApbGetRegResp{Value: v}}
	case apb.CRDT_type_MVREG:
		return &apb.ApbReadObjectResp{Mvreg: &apb.ApbGetMVRegResp{Values: o.mvreg}}
	case apb.CRDT_type_RRMAP:
		entries := make([]*apb.ApbMapEntry, 0, len(o.kids))
		for k, kid := range o.kids {
			entries = append(entries, &apb.ApbMapEntry{
				Key:   &apb.ApbMapKey{Key: []byte(k.key), Type: k.ctype.Enum()},
				Value: render(kid, k.ctype),
			})
		}
		return &apb.ApbReadObjectResp{Map: &apb.ApbGetMapResp{Entries: entries}}
	default:
		return &apb.ApbReadObjectResp{}
	}
}
