// Package apb contains the protocol buffer bindings for the Antidote
// protocol, mirroring the output of protoc-gen-go for antidote.proto and
// trimmed to the messages the client exchanges with the server.
package apb

import (
	fmt "fmt"

	proto "github.com/golang/protobuf/proto"
)

type CRDT_type int32

const (
	CRDT_type_COUNTER CRDT_type = 3
	CRDT_type_ORSET   CRDT_type = 4
	CRDT_type_LWWREG  CRDT_type = 5
	CRDT_type_MVREG   CRDT_type = 6
	CRDT_type_GMAP    CRDT_type = 8
	CRDT_type_RRMAP   CRDT_type = 11
)

var CRDT_type_name = map[int32]string{
	3:  "COUNTER",
	4:  "ORSET",
	5:  "LWWREG",
	6:  "MVREG",
	8:  "GMAP",
	11: "RRMAP",
}

var CRDT_type_value = map[string]int32{
	"COUNTER": 3,
	"ORSET":   4,
	"LWWREG":  5,
	"MVREG":   6,
	"GMAP":    8,
	"RRMAP":   11,
}

func (x CRDT_type) Enum() *CRDT_type {
	p := new(CRDT_type)
	*p = x
	return p
}

func (x CRDT_type) String() string {
	if s, ok := CRDT_type_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("CRDT_type(%d)", int32(x))
}

func (x *CRDT_type) UnmarshalJSON(data []byte) error {
	value, err := proto.UnmarshalJSONEnum(CRDT_type_value, data, "CRDT_type")
	if err != nil {
		return err
	}
	*x = CRDT_type(value)
	return nil
}

type ApbSetUpdate_SetOpType int32

const (
	ApbSetUpdate_ADD    ApbSetUpdate_SetOpType = 1
	ApbSetUpdate_REMOVE ApbSetUpdate_SetOpType = 2
)

var ApbSetUpdate_SetOpType_name = map[int32]string{
	1: "ADD",
	2: "REMOVE",
}

var ApbSetUpdate_SetOpType_value = map[string]int32{
	"ADD":    1,
	"REMOVE": 2,
}

func (x ApbSetUpdate_SetOpType) Enum() *ApbSetUpdate_SetOpType {
	p := new(ApbSetUpdate_SetOpType)
	*p = x
	return p
}

func (x ApbSetUpdate_SetOpType) String() string {
	if s, ok := ApbSetUpdate_SetOpType_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("SetOpType(%d)", int32(x))
}

func (x *ApbSetUpdate_SetOpType) UnmarshalJSON(data []byte) error {
	value, err := proto.UnmarshalJSONEnum(ApbSetUpdate_SetOpType_value, data, "ApbSetUpdate_SetOpType")
	if err != nil {
		return err
	}
	*x = ApbSetUpdate_SetOpType(value)
	return nil
}

// An object identified by key and type within a bucket.
type ApbBoundObject struct {
	Key    []byte     `protobuf:"bytes,1,req,name=key" json:"key,omitempty"`
	Type   *CRDT_type `protobuf:"varint,2,req,name=type,enum=AntidotePB.CRDT_type" json:"type,omitempty"`
	Bucket []byte     `protobuf:"bytes,3,req,name=bucket" json:"bucket,omitempty"`
}

func (m *ApbBoundObject) Reset()         { *m = ApbBoundObject{} }
func (m *ApbBoundObject) String() string { return proto.CompactTextString(m) }
func (*ApbBoundObject) ProtoMessage()    {}

func (m *ApbBoundObject) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

func (m *ApbBoundObject) GetType() CRDT_type {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return CRDT_type_COUNTER
}

func (m *ApbBoundObject) GetBucket() []byte {
	if m != nil {
		return m.Bucket
	}
	return nil
}

type ApbCounterUpdate struct {
	Inc *int64 `protobuf:"zigzag64,1,opt,name=inc" json:"inc,omitempty"`
}

func (m *ApbCounterUpdate) Reset()         { *m = ApbCounterUpdate{} }
func (m *ApbCounterUpdate) String() string { return proto.CompactTextString(m) }
func (*ApbCounterUpdate) ProtoMessage()    {}

func (m *ApbCounterUpdate) GetInc() int64 {
	if m != nil && m.Inc != nil {
		return *m.Inc
	}
	return 0
}

type ApbGetCounterResp struct {
	Value *int32 `protobuf:"zigzag32,1,req,name=value" json:"value,omitempty"`
}

func (m *ApbGetCounterResp) Reset()         { *m = ApbGetCounterResp{} }
func (m *ApbGetCounterResp) String() string { return proto.CompactTextString(m) }
func (*ApbGetCounterResp) ProtoMessage()    {}

func (m *ApbGetCounterResp) GetValue() int32 {
	if m != nil && m.Value != nil {
		return *m.Value
	}
	return 0
}

type ApbSetUpdate struct {
	Optype *ApbSetUpdate_SetOpType `protobuf:"varint,1,req,name=optype,enum=AntidotePB.ApbSetUpdate_SetOpType" json:"optype,omitempty"`
	Adds   [][]byte                `protobuf:"bytes,2,rep,name=adds" json:"adds,omitempty"`
	Rems   [][]byte                `protobuf:"bytes,3,rep,name=rems" json:"rems,omitempty"`
}

func (m *ApbSetUpdate) Reset()         { *m = ApbSetUpdate{} }
func (m *ApbSetUpdate) String() string { return proto.CompactTextString(m) }
func (*ApbSetUpdate) ProtoMessage()    {}

func (m *ApbSetUpdate) GetOptype() ApbSetUpdate_SetOpType {
	if m != nil && m.Optype != nil {
		return *m.Optype
	}
	return ApbSetUpdate_ADD
}

func (m *ApbSetUpdate) GetAdds() [][]byte {
	if m != nil {
		return m.Adds
	}
	return nil
}

func (m *ApbSetUpdate) GetRems() [][]byte {
	if m != nil {
		return m.Rems
	}
	return nil
}

type ApbGetSetResp struct {
	Value [][]byte `protobuf:"bytes,1,rep,name=value" json:"value,omitempty"`
}

func (m *ApbGetSetResp) Reset()         { *m = ApbGetSetResp{} }
func (m *ApbGetSetResp) String() string { return proto.CompactTextString(m) }
func (*ApbGetSetResp) ProtoMessage()    {}

func (m *ApbGetSetResp) GetValue() [][]byte {
	if m != nil {
		return m.Value
	}
	return nil
}

type ApbRegUpdate struct {
	Value []byte `protobuf:"bytes,1,req,name=value" json:"value,omitempty"`
}

func (m *ApbRegUpdate) Reset()         { *m = ApbRegUpdate{} }
func (m *ApbRegUpdate) String() string { return proto.CompactTextString(m) }
func (*ApbRegUpdate) ProtoMessage()    {}

func (m *ApbRegUpdate) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

type ApbGetRegResp struct {
	Value []byte `protobuf:"bytes,1,req,name=value" json:"value,omitempty"`
}

func (m *ApbGetRegResp) Reset()         { *m = ApbGetRegResp{} }
func (m *ApbGetRegResp) String() string { return proto.CompactTextString(m) }
func (*ApbGetRegResp) ProtoMessage()    {}

func (m *ApbGetRegResp) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

type ApbGetMVRegResp struct {
	Values [][]byte `protobuf:"bytes,1,rep,name=values" json:"values,omitempty"`
}

func (m *ApbGetMVRegResp) Reset()         { *m = ApbGetMVRegResp{} }
func (m *ApbGetMVRegResp) String() string { return proto.CompactTextString(m) }
func (*ApbGetMVRegResp) ProtoMessage()    {}

func (m *ApbGetMVRegResp) GetValues() [][]byte {
	if m != nil {
		return m.Values
	}
	return nil
}

type ApbMapKey struct {
	Key  []byte     `protobuf:"bytes,1,req,name=key" json:"key,omitempty"`
	Type *CRDT_type `protobuf:"varint,2,req,name=type,enum=AntidotePB.CRDT_type" json:"type,omitempty"`
}

func (m *ApbMapKey) Reset()         { *m = ApbMapKey{} }
func (m *ApbMapKey) String() string { return proto.CompactTextString(m) }
func (*ApbMapKey) ProtoMessage()    {}

func (m *ApbMapKey) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

func (m *ApbMapKey) GetType() CRDT_type {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return CRDT_type_COUNTER
}

type ApbMapUpdate struct {
	Updates     []*ApbMapNestedUpdate `protobuf:"bytes,1,rep,name=updates" json:"updates,omitempty"`
	RemovedKeys []*ApbMapKey          `protobuf:"bytes,2,rep,name=removedKeys" json:"removedKeys,omitempty"`
}

func (m *ApbMapUpdate) Reset()         { *m = ApbMapUpdate{} }
func (m *ApbMapUpdate) String() string { return proto.CompactTextString(m) }
func (*ApbMapUpdate) ProtoMessage()    {}

func (m *ApbMapUpdate) GetUpdates() []*ApbMapNestedUpdate {
	if m != nil {
		return m.Updates
	}
	return nil
}

func (m *ApbMapUpdate) GetRemovedKeys() []*ApbMapKey {
	if m != nil {
		return m.RemovedKeys
	}
	return nil
}

type ApbMapNestedUpdate struct {
	Key    *ApbMapKey          `protobuf:"bytes,1,req,name=key" json:"key,omitempty"`
	Update *ApbUpdateOperation `protobuf:"bytes,2,req,name=update" json:"update,omitempty"`
}

func (m *ApbMapNestedUpdate) Reset()         { *m = ApbMapNestedUpdate{} }
func (m *ApbMapNestedUpdate) String() string { return proto.CompactTextString(m) }
func (*ApbMapNestedUpdate) ProtoMessage()    {}

func (m *ApbMapNestedUpdate) GetKey() *ApbMapKey {
	if m != nil {
		return m.Key
	}
	return nil
}

func (m *ApbMapNestedUpdate) GetUpdate() *ApbUpdateOperation {
	if m != nil {
		return m.Update
	}
	return nil
}

type ApbGetMapResp struct {
	Entries []*ApbMapEntry `protobuf:"bytes,1,rep,name=entries" json:"entries,omitempty"`
}

func (m *ApbGetMapResp) Reset()         { *m = ApbGetMapResp{} }
func (m *ApbGetMapResp) String() string { return proto.CompactTextString(m) }
func (*ApbGetMapResp) ProtoMessage()    {}

func (m *ApbGetMapResp) GetEntries() []*ApbMapEntry {
	if m != nil {
		return m.Entries
	}
	return nil
}

type ApbMapEntry struct {
	Key   *ApbMapKey         `protobuf:"bytes,1,req,name=key" json:"key,omitempty"`
	Value *ApbReadObjectResp `protobuf:"bytes,2,req,name=value" json:"value,omitempty"`
}

func (m *ApbMapEntry) Reset()         { *m = ApbMapEntry{} }
func (m *ApbMapEntry) String() string { return proto.CompactTextString(m) }
func (*ApbMapEntry) ProtoMessage()    {}

func (m *ApbMapEntry) GetKey() *ApbMapKey {
	if m != nil {
		return m.Key
	}
	return nil
}

func (m *ApbMapEntry) GetValue() *ApbReadObjectResp {
	if m != nil {
		return m.Value
	}
	return nil
}

// An operation to update a CRDT. Exactly one of the fields is set.
type ApbUpdateOperation struct {
	Counterop *ApbCounterUpdate `protobuf:"bytes,1,opt,name=counterop" json:"counterop,omitempty"`
	Setop     *ApbSetUpdate     `protobuf:"bytes,2,opt,name=setop" json:"setop,omitempty"`
	Regop     *ApbRegUpdate     `protobuf:"bytes,3,opt,name=regop" json:"regop,omitempty"`
	Mapop     *ApbMapUpdate     `protobuf:"bytes,5,opt,name=mapop" json:"mapop,omitempty"`
}

func (m *ApbUpdateOperation) Reset()         { *m = ApbUpdateOperation{} }
func (m *ApbUpdateOperation) String() string { return proto.CompactTextString(m) }
func (*ApbUpdateOperation) ProtoMessage()    {}

func (m *ApbUpdateOperation) GetCounterop() *ApbCounterUpdate {
	if m != nil {
		return m.Counterop
	}
	return nil
}

func (m *ApbUpdateOperation) GetSetop() *ApbSetUpdate {
	if m != nil {
		return m.Setop
	}
	return nil
}

func (m *ApbUpdateOperation) GetRegop() *ApbRegUpdate {
	if m != nil {
		return m.Regop
	}
	return nil
}

func (m *ApbUpdateOperation) GetMapop() *ApbMapUpdate {
	if m != nil {
		return m.Mapop
	}
	return nil
}

type ApbTxnProperties struct {
	ReadWrite *uint32 `protobuf:"varint,1,opt,name=read_write,json=readWrite" json:"read_write,omitempty"`
	RedBlue   *uint32 `protobuf:"varint,2,opt,name=red_blue,json=redBlue" json:"red_blue,omitempty"`
}

func (m *ApbTxnProperties) Reset()         { *m = ApbTxnProperties{} }
func (m *ApbTxnProperties) String() string { return proto.CompactTextString(m) }
func (*ApbTxnProperties) ProtoMessage()    {}

func (m *ApbTxnProperties) GetReadWrite() uint32 {
	if m != nil && m.ReadWrite != nil {
		return *m.ReadWrite
	}
	return 0
}

func (m *ApbTxnProperties) GetRedBlue() uint32 {
	if m != nil && m.RedBlue != nil {
		return *m.RedBlue
	}
	return 0
}

type ApbStartTransaction struct {
	Timestamp  []byte            `protobuf:"bytes,1,opt,name=timestamp" json:"timestamp,omitempty"`
	Properties *ApbTxnProperties `protobuf:"bytes,2,opt,name=properties" json:"properties,omitempty"`
}

func (m *ApbStartTransaction) Reset()         { *m = ApbStartTransaction{} }
func (m *ApbStartTransaction) String() string { return proto.CompactTextString(m) }
func (*ApbStartTransaction) ProtoMessage()    {}

func (m *ApbStartTransaction) GetTimestamp() []byte {
	if m != nil {
		return m.Timestamp
	}
	return nil
}

func (m *ApbStartTransaction) GetProperties() *ApbTxnProperties {
	if m != nil {
		return m.Properties
	}
	return nil
}

type ApbAbortTransaction struct {
	TransactionDescriptor []byte `protobuf:"bytes,1,req,name=transaction_descriptor,json=transactionDescriptor" json:"transaction_descriptor,omitempty"`
}

func (m *ApbAbortTransaction) Reset()         { *m = ApbAbortTransaction{} }
func (m *ApbAbortTransaction) String() string { return proto.CompactTextString(m) }
func (*ApbAbortTransaction) ProtoMessage()    {}

func (m *ApbAbortTransaction) GetTransactionDescriptor() []byte {
	if m != nil {
		return m.TransactionDescriptor
	}
	return nil
}

type ApbCommitTransaction struct {
	TransactionDescriptor []byte `protobuf:"bytes,1,req,name=transaction_descriptor,json=transactionDescriptor" json:"transaction_descriptor,omitempty"`
}

func (m *ApbCommitTransaction) Reset()         { *m = ApbCommitTransaction{} }
func (m *ApbCommitTransaction) String() string { return proto.CompactTextString(m) }
func (*ApbCommitTransaction) ProtoMessage()    {}

func (m *ApbCommitTransaction) GetTransactionDescriptor() []byte {
	if m != nil {
		return m.TransactionDescriptor
	}
	return nil
}

type ApbReadObjects struct {
	Boundobjects          []*ApbBoundObject `protobuf:"bytes,1,rep,name=boundobjects" json:"boundobjects,omitempty"`
	TransactionDescriptor []byte            `protobuf:"bytes,2,req,name=transaction_descriptor,json=transactionDescriptor" json:"transaction_descriptor,omitempty"`
}

func (m *ApbReadObjects) Reset()         { *m = ApbReadObjects{} }
func (m *ApbReadObjects) String() string { return proto.CompactTextString(m) }
func (*ApbReadObjects) ProtoMessage()    {}

func (m *ApbReadObjects) GetBoundobjects() []*ApbBoundObject {
	if m != nil {
		return m.Boundobjects
	}
	return nil
}

func (m *ApbReadObjects) GetTransactionDescriptor() []byte {
	if m != nil {
		return m.TransactionDescriptor
	}
	return nil
}

type ApbUpdateOp struct {
	Boundobject *ApbBoundObject     `protobuf:"bytes,1,req,name=boundobject" json:"boundobject,omitempty"`
	Operation   *ApbUpdateOperation `protobuf:"bytes,2,req,name=operation" json:"operation,omitempty"`
}

func (m *ApbUpdateOp) Reset()         { *m = ApbUpdateOp{} }
func (m *ApbUpdateOp) String() string { return proto.CompactTextString(m) }
func (*ApbUpdateOp) ProtoMessage()    {}

func (m *ApbUpdateOp) GetBoundobject() *ApbBoundObject {
	if m != nil {
		return m.Boundobject
	}
	return nil
}

func (m *ApbUpdateOp) GetOperation() *ApbUpdateOperation {
	if m != nil {
		return m.Operation
	}
	return nil
}

type ApbUpdateObjects struct {
	Updates               []*ApbUpdateOp `protobuf:"bytes,1,rep,name=updates" json:"updates,omitempty"`
	TransactionDescriptor []byte         `protobuf:"bytes,2,req,name=transaction_descriptor,json=transactionDescriptor" json:"transaction_descriptor,omitempty"`
}

func (m *ApbUpdateObjects) Reset()         { *m = ApbUpdateObjects{} }
func (m *ApbUpdateObjects) String() string { return proto.CompactTextString(m) }
func (*ApbUpdateObjects) ProtoMessage()    {}

func (m *ApbUpdateObjects) GetUpdates() []*ApbUpdateOp {
	if m != nil {
		return m.Updates
	}
	return nil
}

func (m *ApbUpdateObjects) GetTransactionDescriptor() []byte {
	if m != nil {
		return m.TransactionDescriptor
	}
	return nil
}

type ApbStaticReadObjects struct {
	Transaction *ApbStartTransaction `protobuf:"bytes,1,req,name=transaction" json:"transaction,omitempty"`
	Objects     []*ApbBoundObject    `protobuf:"bytes,2,rep,name=objects" json:"objects,omitempty"`
}

func (m *ApbStaticReadObjects) Reset()         { *m = ApbStaticReadObjects{} }
func (m *ApbStaticReadObjects) String() string { return proto.CompactTextString(m) }
func (*ApbStaticReadObjects) ProtoMessage()    {}

func (m *ApbStaticReadObjects) GetTransaction() *ApbStartTransaction {
	if m != nil {
		return m.Transaction
	}
	return nil
}

func (m *ApbStaticReadObjects) GetObjects() []*ApbBoundObject {
	if m != nil {
		return m.Objects
	}
	return nil
}

type ApbStaticUpdateObjects struct {
	Transaction *ApbStartTransaction `protobuf:"bytes,1,req,name=transaction" json:"transaction,omitempty"`
	Updates     []*ApbUpdateOp       `protobuf:"bytes,2,rep,name=updates" json:"updates,omitempty"`
}

func (m *ApbStaticUpdateObjects) Reset()         { *m = ApbStaticUpdateObjects{} }
func (m *ApbStaticUpdateObjects) String() string { return proto.CompactTextString(m) }
func (*ApbStaticUpdateObjects) ProtoMessage()    {}

func (m *ApbStaticUpdateObjects) GetTransaction() *ApbStartTransaction {
	if m != nil {
		return m.Transaction
	}
	return nil
}

func (m *ApbStaticUpdateObjects) GetUpdates() []*ApbUpdateOp {
	if m != nil {
		return m.Updates
	}
	return nil
}

type ApbOperationResp struct {
	Success   *bool   `protobuf:"varint,1,req,name=success" json:"success,omitempty"`
	Errorcode *uint32 `protobuf:"varint,2,opt,name=errorcode" json:"errorcode,omitempty"`
}

func (m *ApbOperationResp) Reset()         { *m = ApbOperationResp{} }
func (m *ApbOperationResp) String() string { return proto.CompactTextString(m) }
func (*ApbOperationResp) ProtoMessage()    {}

func (m *ApbOperationResp) GetSuccess() bool {
	if m != nil && m.Success != nil {
		return *m.Success
	}
	return false
}

func (m *ApbOperationResp) GetErrorcode() uint32 {
	if m != nil && m.Errorcode != nil {
		return *m.Errorcode
	}
	return 0
}

type ApbStartTransactionResp struct {
	Success               *bool   `protobuf:"varint,1,req,name=success" json:"success,omitempty"`
	TransactionDescriptor []byte  `protobuf:"bytes,2,opt,name=transaction_descriptor,json=transactionDescriptor" json:"transaction_descriptor,omitempty"`
	Errorcode             *uint32 `protobuf:"varint,3,opt,name=errorcode" json:"errorcode,omitempty"`
}

func (m *ApbStartTransactionResp) Reset()         { *m = ApbStartTransactionResp{} }
func (m *ApbStartTransactionResp) String() string { return proto.CompactTextString(m) }
func (*ApbStartTransactionResp) ProtoMessage()    {}

func (m *ApbStartTransactionResp) GetSuccess() bool {
	if m != nil && m.Success != nil {
		return *m.Success
	}
	return false
}

func (m *ApbStartTransactionResp) GetTransactionDescriptor() []byte {
	if m != nil {
		return m.TransactionDescriptor
	}
	return nil
}

func (m *ApbStartTransactionResp) GetErrorcode() uint32 {
	if m != nil && m.Errorcode != nil {
		return *m.Errorcode
	}
	return 0
}

type ApbReadObjectResp struct {
	Counter *ApbGetCounterResp `protobuf:"bytes,1,opt,name=counter" json:"counter,omitempty"`
	Set     *ApbGetSetResp     `protobuf:"bytes,2,opt,name=set" json:"set,omitempty"`
	Reg     *ApbGetRegResp     `protobuf:"bytes,3,opt,name=reg" json:"reg,omitempty"`
	Mvreg   *ApbGetMVRegResp   `protobuf:"bytes,4,opt,name=mvreg" json:"mvreg,omitempty"`
	Map     *ApbGetMapResp     `protobuf:"bytes,6,opt,name=map" json:"map,omitempty"`
}

func (m *ApbReadObjectResp) Reset()         { *m = ApbReadObjectResp{} }
func (m *ApbReadObjectResp) String() string { return proto.CompactTextString(m) }
func (*ApbReadObjectResp) ProtoMessage()    {}

func (m *ApbReadObjectResp) GetCounter() *ApbGetCounterResp {
	if m != nil {
		return m.Counter
	}
	return nil
}

func (m *ApbReadObjectResp) GetSet() *ApbGetSetResp {
	if m != nil {
		return m.Set
	}
	return nil
}

func (m *ApbReadObjectResp) GetReg() *ApbGetRegResp {
	if m != nil {
		return m.Reg
	}
	return nil
}

func (m *ApbReadObjectResp) GetMvreg() *ApbGetMVRegResp {
	if m != nil {
		return m.Mvreg
	}
	return nil
}

func (m *ApbReadObjectResp) GetMap() *ApbGetMapResp {
	if m != nil {
		return m.Map
	}
	return nil
}

type ApbReadObjectsResp struct {
	Success   *bool                `protobuf:"varint,1,req,name=success" json:"success,omitempty"`
	Objects   []*ApbReadObjectResp `protobuf:"bytes,2,rep,name=objects" json:"objects,omitempty"`
	Errorcode *uint32              `protobuf:"varint,3,opt,name=errorcode" json:"errorcode,omitempty"`
}

func (m *ApbReadObjectsResp) Reset()         { *m = ApbReadObjectsResp{} }
func (m *ApbReadObjectsResp) String() string { return proto.CompactTextString(m) }
func (*ApbReadObjectsResp) ProtoMessage()    {}

func (m *ApbReadObjectsResp) GetSuccess() bool {
	if m != nil && m.Success != nil {
		return *m.Success
	}
	return false
}

func (m *ApbReadObjectsResp) GetObjects() []*ApbReadObjectResp {
	if m != nil {
		return m.Objects
	}
	return nil
}

func (m *ApbReadObjectsResp) GetErrorcode() uint32 {
	if m != nil && m.Errorcode != nil {
		return *m.Errorcode
	}
	return 0
}

type ApbCommitResp struct {
	Success    *bool   `protobuf:"varint,1,req,name=success" json:"success,omitempty"`
	CommitTime []byte  `protobuf:"bytes,2,opt,name=commit_time,json=commitTime" json:"commit_time,omitempty"`
	Errorcode  *uint32 `protobuf:"varint,3,opt,name=errorcode" json:"errorcode,omitempty"`
}

func (m *ApbCommitResp) Reset()         { *m = ApbCommitResp{} }
func (m *ApbCommitResp) String() string { return proto.CompactTextString(m) }
func (*ApbCommitResp) ProtoMessage()    {}

func (m *ApbCommitResp) GetSuccess() bool {
	if m != nil && m.Success != nil {
		return *m.Success
	}
	return false
}

func (m *ApbCommitResp) GetCommitTime() []byte {
	if m != nil {
		return m.CommitTime
	}
	return nil
}

func (m *ApbCommitResp) GetErrorcode() uint32 {
	if m != nil && m.Errorcode != nil {
		return *m.Errorcode
	}
	return 0
}

type ApbStaticReadObjectsResp struct {
	Objects    *ApbReadObjectsResp `protobuf:"bytes,1,req,name=objects" json:"objects,omitempty"`
	Committime *ApbCommitResp      `protobuf:"bytes,2,req,name=committime" json:"committime,omitempty"`
}

func (m *ApbStaticReadObjectsResp) Reset()         { *m = ApbStaticReadObjectsResp{} }
func (m *ApbStaticReadObjectsResp) String() string { return proto.CompactTextString(m) }
func (*ApbStaticReadObjectsResp) ProtoMessage()    {}

func (m *ApbStaticReadObjectsResp) GetObjects() *ApbReadObjectsResp {
	if m != nil {
		return m.Objects
	}
	return nil
}

func (m *ApbStaticReadObjectsResp) GetCommittime() *ApbCommitResp {
	if m != nil {
		return m.Committime
	}
	return nil
}

type ApbCreateDC struct {
	Nodes []string `protobuf:"bytes,1,rep,name=nodes" json:"nodes,omitempty"`
}

func (m *ApbCreateDC) Reset()         { *m = ApbCreateDC{} }
func (m *ApbCreateDC) String() string { return proto.CompactTextString(m) }
func (*ApbCreateDC) ProtoMessage()    {}

func (m *ApbCreateDC) GetNodes() []string {
	if m != nil {
		return m.Nodes
	}
	return nil
}

type ApbCreateDCResp struct {
	Success   *bool   `protobuf:"varint,1,req,name=success" json:"success,omitempty"`
	Errorcode *uint32 `protobuf:"varint,2,opt,name=errorcode" json:"errorcode,omitempty"`
}

func (m *ApbCreateDCResp) Reset()         { *m = ApbCreateDCResp{} }
func (m *ApbCreateDCResp) String() string { return proto.CompactTextString(m) }
func (*ApbCreateDCResp) ProtoMessage()    {}

func (m *ApbCreateDCResp) GetSuccess() bool {
	if m != nil && m.Success != nil {
		return *m.Success
	}
	return false
}

func (m *ApbCreateDCResp) GetErrorcode() uint32 {
	if m != nil && m.Errorcode != nil {
		return *m.Errorcode
	}
	return 0
}

type ApbGetConnectionDescriptor struct {
}

func (m *ApbGetConnectionDescriptor) Reset()         { *m = ApbGetConnectionDescriptor{} }
func (m *ApbGetConnectionDescriptor) String() string { return proto.CompactTextString(m) }
func (*ApbGetConnectionDescriptor) ProtoMessage()    {}

type ApbGetConnectionDescriptorResp struct {
	D         []byte  `protobuf:"bytes,1,opt,name=d" json:"d,omitempty"`
	Success   *bool   `protobuf:"varint,2,req,name=success" json:"success,omitempty"`
	Errorcode *uint32 `protobuf:"varint,3,opt,name=errorcode" json:"errorcode,omitempty"`
}

func (m *ApbGetConnectionDescriptorResp) Reset()         { *m = ApbGetConnectionDescriptorResp{} }
func (m *ApbGetConnectionDescriptorResp) String() string { return proto.CompactTextString(m) }
func (*ApbGetConnectionDescriptorResp) ProtoMessage()    {}

func (m *ApbGetConnectionDescriptorResp) GetD() []byte {
	if m != nil {
		return m.D
	}
	return nil
}

func (m *ApbGetConnectionDescriptorResp) GetSuccess() bool {
	if m != nil && m.Success != nil {
		return *m.Success
	}
	return false
}

func (m *ApbGetConnectionDescriptorResp) GetErrorcode() uint32 {
	if m != nil && m.Errorcode != nil {
		return *m.Errorcode
	}
	return 0
}

type ApbConnectToDCs struct {
	Descriptors [][]byte `protobuf:"bytes,1,rep,name=descriptors" json:"descriptors,omitempty"`
}

func (m *ApbConnectToDCs) Reset()         { *m = ApbConnectToDCs{} }
func (m *ApbConnectToDCs) String() string { return proto.CompactTextString(m) }
func (*ApbConnectToDCs) ProtoMessage()    {}

func (m *ApbConnectToDCs) GetDescriptors() [][]byte {
	if m != nil {
		return m.Descriptors
	}
	return nil
}

type ApbConnectToDCsResp struct {
	Success   *bool   `protobuf:"varint,1,req,name=success" json:"success,omitempty"`
	Errorcode *uint32 `protobuf:"varint,2,opt,name=errorcode" json:"errorcode,omitempty"`
}

func (m *ApbConnectToDCsResp) Reset()         { *m = ApbConnectToDCsResp{} }
func (m *ApbConnectToDCsResp) String() string { return proto.CompactTextString(m) }
func (*ApbConnectToDCsResp) ProtoMessage()    {}

func (m *ApbConnectToDCsResp) GetSuccess() bool {
	if m != nil && m.Success != nil {
		return *m.Success
	}
	return false
}

func (m *ApbConnectToDCsResp) GetErrorcode() uint32 {
	if m != nil && m.Errorcode != nil {
		return *m.Errorcode
	}
	return 0
}

func init() {
	proto.RegisterEnum("AntidotePB.CRDT_type", CRDT_type_name, CRDT_type_value)
	proto.RegisterEnum("AntidotePB.ApbSetUpdate_SetOpType", ApbSetUpdate_SetOpType_name, ApbSetUpdate_SetOpType_value)
	proto.RegisterType((*ApbBoundObject)(nil), "AntidotePB.ApbBoundObject")
	proto.RegisterType((*ApbCounterUpdate)(nil), "AntidotePB.ApbCounterUpdate")
	proto.RegisterType((*ApbGetCounterResp)(nil), "AntidotePB.ApbGetCounterResp")
	proto.RegisterType((*ApbSetUpdate)(nil), "AntidotePB.ApbSetUpdate")
	proto.RegisterType((*ApbGetSetResp)(nil), "AntidotePB.ApbGetSetResp")
	proto.RegisterType((*ApbRegUpdate)(nil), "AntidotePB.ApbRegUpdate")
	proto.RegisterType((*ApbGetRegResp)(nil), "AntidotePB.ApbGetRegResp")
	proto.RegisterType((*ApbGetMVRegResp)(nil), "AntidotePB.ApbGetMVRegResp")
	proto.RegisterType((*ApbMapKey)(nil), "AntidotePB.ApbMapKey")
	proto.RegisterType((*ApbMapUpdate)(nil), "AntidotePB.ApbMapUpdate")
	proto.RegisterType((*ApbMapNestedUpdate)(nil), "AntidotePB.ApbMapNestedUpdate")
	proto.RegisterType((*ApbGetMapResp)(nil), "AntidotePB.ApbGetMapResp")
	proto.RegisterType((*ApbMapEntry)(nil), "AntidotePB.ApbMapEntry")
	proto.RegisterType((*ApbUpdateOperation)(nil), "AntidotePB.ApbUpdateOperation")
	proto.RegisterType((*ApbTxnProperties)(nil), "AntidotePB.ApbTxnProperties")
	proto.RegisterType((*ApbStartTransaction)(nil), "AntidotePB.ApbStartTransaction")
	proto.RegisterType((*ApbAbortTransaction)(nil), "AntidotePB.ApbAbortTransaction")
	proto.RegisterType((*ApbCommitTransaction)(nil), "AntidotePB.ApbCommitTransaction")
	proto.RegisterType((*ApbReadObjects)(nil), "AntidotePB.ApbReadObjects")
	proto.RegisterType((*ApbUpdateOp)(nil), "AntidotePB.ApbUpdateOp")
	proto.RegisterType((*ApbUpdateObjects)(nil), "AntidotePB.ApbUpdateObjects")
	proto.RegisterType((*ApbStaticReadObjects)(nil), "AntidotePB.ApbStaticReadObjects")
	proto.RegisterType((*ApbStaticUpdateObjects)(nil), "AntidotePB.ApbStaticUpdateObjects")
	proto.RegisterType((*ApbOperationResp)(nil), "AntidotePB.ApbOperationResp")
	proto.RegisterType((*ApbStartTransactionResp)(nil), "AntidotePB.ApbStartTransactionResp")
	proto.RegisterType((*ApbReadObjectResp)(nil), "AntidotePB.ApbReadObjectResp")
	proto.RegisterType((*ApbReadObjectsResp)(nil), "AntidotePB.ApbReadObjectsResp")
	proto.RegisterType((*ApbCommitResp)(nil), "AntidotePB.ApbCommitResp")
	proto.RegisterType((*ApbStaticReadObjectsResp)(nil), "AntidotePB.ApbStaticReadObjectsResp")
	proto.RegisterType((*ApbCreateDC)(nil), "AntidotePB.ApbCreateDC")
	proto.RegisterType((*ApbCreateDCResp)(nil), "AntidotePB.ApbCreateDCResp")
	proto.RegisterType((*ApbGetConnectionDescriptor)(nil), "AntidotePB.ApbGetConnectionDescriptor")
	proto.RegisterType((*ApbGetConnectionDescriptorResp)(nil), "AntidotePB.ApbGetConnectionDescriptorResp")
	proto.RegisterType((*ApbConnectToDCs)(nil), "AntidotePB.ApbConnectToDCs")
	proto.RegisterType((*ApbConnectToDCsResp)(nil), "AntidotePB.ApbConnectToDCsResp")
}
