// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package antidote

import (
	"context"
	"fmt"

	"github.com/golang/protobuf/proto"

	"github.com/creachadair/antidote/apb"
)

// A Key identifies an object within a bucket, or an entry within a map.
// Keys are opaque byte sequences.
type Key []byte

// A CRDTType tags an object with the replicated data type it carries. The
// same key may exist under several types; each (key, type) pair is a
// distinct object.
type CRDTType = apb.CRDT_type

// The data types understood by the server.
const (
	TypeCounter CRDTType = apb.CRDT_type_COUNTER // an increment/decrement counter
	TypeSet     CRDTType = apb.CRDT_type_ORSET   // an observed-remove set
	TypeReg     CRDTType = apb.CRDT_type_LWWREG  // a last-writer-wins register
	TypeMVReg   CRDTType = apb.CRDT_type_MVREG   // a multi-value register
	TypeMap     CRDTType = apb.CRDT_type_RRMAP   // a map of nested objects
)

// MaxMapDepth is the maximum nesting depth of map updates. Updates nested
// more deeply than this fail rather than encode, bounding both the message
// size and the stack during conversion.
const MaxMapDepth = 32

// A Bucket is a namespace for keyed objects. It is an immutable value that
// may be shared freely; the server does not require a bucket to be declared
// before use.
type Bucket struct {
	Name []byte
}

// A CRDTUpdate describes one update to a single object: the object's key and
// type, and the operation to apply. Values are constructed by the update
// builders ([SetAdd], [CounterInc], and so on) and consumed by
// [Bucket.Update], which attaches the bucket, or by [MapUpdate], which nests
// them inside a map.
type CRDTUpdate struct {
	key   Key
	ctype CRDTType
	op    *apb.ApbUpdateOperation // nil for map updates
	kids  []*CRDTUpdate           // the children of a map update
}

// SetAdd adds the given elements to the set at key.
func SetAdd(key Key, elems ...[]byte) *CRDTUpdate {
	return &CRDTUpdate{key: key, ctype: TypeSet, op: &apb.ApbUpdateOperation{
		Setop: &apb.ApbSetUpdate{Optype: apb.ApbSetUpdate_ADD.Enum(), Adds: elems},
	}}
}

// SetRemove removes the given elements from the set at key.
func SetRemove(key Key, elems ...[]byte) *CRDTUpdate {
	return &CRDTUpdate{key: key, ctype: TypeSet, op: &apb.ApbUpdateOperation{
		Setop: &apb.ApbSetUpdate{Optype: apb.ApbSetUpdate_REMOVE.Enum(), Rems: elems},
	}}
}

// CounterInc increments the counter at key by delta, which may be negative.
func CounterInc(key Key, delta int64) *CRDTUpdate {
	return &CRDTUpdate{key: key, ctype: TypeCounter, op: &apb.ApbUpdateOperation{
		Counterop: &apb.ApbCounterUpdate{Inc: proto.Int64(delta)},
	}}
}

// RegPut assigns value to the last-writer-wins register at key.
func RegPut(key Key, value []byte) *CRDTUpdate {
	return &CRDTUpdate{key: key, ctype: TypeReg, op: &apb.ApbUpdateOperation{
		Regop: &apb.ApbRegUpdate{Value: value},
	}}
}

// MVRegPut assigns value to the multi-value register at key.
func MVRegPut(key Key, value []byte) *CRDTUpdate {
	return &CRDTUpdate{key: key, ctype: TypeMVReg, op: &apb.ApbUpdateOperation{
		Regop: &apb.ApbRegUpdate{Value: value},
	}}
}

// MapUpdate applies the given updates to entries nested inside the map at
// key. The nested updates may themselves be map updates, recursively, up to
// MaxMapDepth levels.
func MapUpdate(key Key, updates ...*CRDTUpdate) *CRDTUpdate {
	return &CRDTUpdate{key: key, ctype: TypeMap, kids: updates}
}

// operation converts u to its wire operation. Children of a map update use
// the nested form, which names the entry by map key instead of bound object;
// the bucket is attached only at the top level.
func (u *CRDTUpdate) operation(depth int) (*apb.ApbUpdateOperation, error) {
	if u.ctype != TypeMap {
		return u.op, nil
	}
	if depth > MaxMapDepth {
		return nil, fmt.Errorf("map update at key %q exceeds %d nesting levels", u.key, MaxMapDepth)
	}
	nested := make([]*apb.ApbMapNestedUpdate, len(u.kids))
	for i, kid := range u.kids {
		op, err := kid.operation(depth + 1)
		if err != nil {
			return nil, err
		}
		nested[i] = &apb.ApbMapNestedUpdate{
			Key:    &apb.ApbMapKey{Key: kid.key, Type: kid.ctype.Enum()},
			Update: op,
		}
	}
	return &apb.ApbUpdateOperation{Mapop: &apb.ApbMapUpdate{Updates: nested}}, nil
}

// topLevel converts u to the wire form of an update rooted in bucket.
func (u *CRDTUpdate) topLevel(bucket []byte) (*apb.ApbUpdateOp, error) {
	op, err := u.operation(1)
	if err != nil {
		return nil, err
	}
	return &apb.ApbUpdateOp{
		Boundobject: &apb.ApbBoundObject{Key: u.key, Type: u.ctype.Enum(), Bucket: bucket},
		Operation:   op,
	}, nil
}

// Update applies the given updates to objects in b, in the context of tx.
func (b Bucket) Update(ctx context.Context, tx Transaction, updates ...*CRDTUpdate) error {
	ops := make([]*apb.ApbUpdateOp, len(updates))
	for i, u := range updates {
		op, err := u.topLevel(b.Name)
		if err != nil {
			return err
		}
		ops[i] = op
	}
	return tx.Update(ctx, ops)
}

// readOne reads the single object (key, ctype) in b and returns its value.
func (b Bucket) readOne(ctx context.Context, tx Transaction, key Key, ctype CRDTType) (*apb.ApbReadObjectResp, error) {
	rsp, err := tx.Read(ctx, []*apb.ApbBoundObject{{
		Key:    key,
		Type:   ctype.Enum(),
		Bucket: b.Name,
	}})
	if err != nil {
		return nil, err
	}
	objs := rsp.GetObjects()
	if len(objs) != 1 {
		return nil, fmt.Errorf("read key %q: got %d objects, want 1", key, len(objs))
	}
	return objs[0], nil
}

// ReadCounter reads the value of the counter at key.
func (b Bucket) ReadCounter(ctx context.Context, tx Transaction, key Key) (int32, error) {
	obj, err := b.readOne(ctx, tx, key, TypeCounter)
	if err != nil {
		return 0, err
	}
	v := obj.GetCounter()
	if v == nil {
		return 0, fmt.Errorf("read key %q: no counter value", key)
	}
	return v.GetValue(), nil
}

// ReadSet reads the elements of the set at key.
func (b Bucket) ReadSet(ctx context.Context, tx Transaction, key Key) ([][]byte, error) {
	obj, err := b.readOne(ctx, tx, key, TypeSet)
	if err != nil {
		return nil, err
	}
	v := obj.GetSet()
	if v == nil {
		return nil, fmt.Errorf("read key %q: no set value", key)
	}
	return v.GetValue(), nil
}

// ReadReg reads the value of the last-writer-wins register at key.
func (b Bucket) ReadReg(ctx context.Context, tx Transaction, key Key) ([]byte, error) {
	obj, err := b.readOne(ctx, tx, key, TypeReg)
	if err != nil {
		return nil, err
	}
	v := obj.GetReg()
	if v == nil {
		return nil, fmt.Errorf("read key %q: no register value", key)
	}
	return v.GetValue(), nil
}

// ReadMVReg reads the concurrent values of the multi-value register at key.
func (b Bucket) ReadMVReg(ctx context.Context, tx Transaction, key Key) ([][]byte, error) {
	obj, err := b.readOne(ctx, tx, key, TypeMVReg)
	if err != nil {
		return nil, err
	}
	v := obj.GetMvreg()
	if v == nil {
		return nil, fmt.Errorf("read key %q: no multi-value register value", key)
	}
	return v.GetValues(), nil
}

// ReadMap reads the entries of the map at key.
func (b Bucket) ReadMap(ctx context.Context, tx Transaction, key Key) (*MapReadResult, error) {
	obj, err := b.readOne(ctx, tx, key, TypeMap)
	if err != nil {
		return nil, err
	}
	v := obj.GetMap()
	if v == nil {
		return nil, fmt.Errorf("read key %q: no map value", key)
	}
	return &MapReadResult{entries: v.GetEntries()}, nil
}
