// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package wire implements the binary framing of the Antidote protocol.
//
// Each message on the stream is framed as a 4-byte big-endian unsigned length
// L, covering the rest of the frame, followed by a 1-byte message code and
// L-1 bytes of protocol buffer payload:
//
//	[ length: u32 BE ][ code: u8 ][ payload: length-1 bytes ]
//
// The message code identifies the payload type. Codes are fixed by the server
// and must match it bit for bit; see the constants in this package.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/protobuf/proto"
)

// A Code identifies the type of a framed message.
type Code byte

// MaxFrameSize is the maximum length word DecodeFrame will accept, bounding
// how much memory a single frame can demand. The length word is otherwise
// trusted, so without a bound a corrupt header could provoke an allocation of
// up to 4 GiB. No legitimate message approaches this size.
const MaxFrameSize = 1 << 26

// The message codes of the protocol. Each request code is paired with the
// fixed code of its expected response.
const (
	CodeReadObjects             Code = 116 // request: read objects
	CodeUpdateObjects           Code = 118 // request: update objects
	CodeStartTransaction        Code = 119 // request: start an interactive transaction
	CodeAbortTransaction        Code = 120 // request: abort an interactive transaction
	CodeCommitTransaction       Code = 121 // request: commit an interactive transaction
	CodeStaticUpdateObjects     Code = 122 // request: update objects in an ephemeral transaction
	CodeStaticReadObjects       Code = 123 // request: read objects in an ephemeral transaction
	CodeCreateDC                Code = 129 // request: create a datacenter
	CodeConnectToDCs            Code = 131 // request: connect datacenters
	CodeGetConnectionDescriptor Code = 133 // request: fetch this DC's connection descriptor

	CodeOperationResp               Code = 111 // response: operation ack (read, update, abort)
	CodeStartTransactionResp        Code = 124 // response: start-transaction ack
	CodeCommitResp                  Code = 127 // response: commit ack, static update ack
	CodeStaticReadObjectsResp       Code = 128 // response: static read result
	CodeCreateDCResp                Code = 130 // response: create-DC ack
	CodeConnectToDCsResp            Code = 132 // response: connect-DCs ack
	CodeGetConnectionDescriptorResp Code = 134 // response: connection descriptor
)

func (c Code) String() string { return fmt.Sprintf("code %d", byte(c)) }

// A CodeMismatchError reports that a frame arrived with a different message
// code than the protocol requires at that point in the exchange. It indicates
// a disagreement between client and server, and is fatal to the in-flight
// call.
type CodeMismatchError struct {
	Got  Code // the code observed on the wire
	Want Code // the code the exchange requires
}

func (e *CodeMismatchError) Error() string {
	return fmt.Sprintf("unexpected message code %d (want %d)", byte(e.Got), byte(e.Want))
}

// Encode serializes msg and writes it to w as a single frame tagged with the
// given message code. No buffering is retained across calls; the caller owns
// any batching of writes on w.
func Encode(w io.Writer, code Code, msg proto.Message) error {
	body, err := proto.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", code, err)
	}
	buf := make([]byte, 5+len(body))
	binary.BigEndian.PutUint32(buf, uint32(1+len(body)))
	buf[4] = byte(code)
	copy(buf[5:], body)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// DecodeFrame reads a single frame from r and returns its message code and
// payload. Partial reads from r are accumulated until the frame is complete;
// a stream that ends mid-frame is reported as an I/O error. A frame whose
// length word exceeds MaxFrameSize is rejected without reading its body.
func DecodeFrame(r io.Reader) (Code, []byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, nil, fmt.Errorf("read frame header: %w", err)
	}
	size := binary.BigEndian.Uint32(hdr[:])
	if size == 0 {
		return 0, nil, fmt.Errorf("invalid frame length 0")
	} else if size > MaxFrameSize {
		return 0, nil, fmt.Errorf("frame length %d exceeds maximum %d", size, MaxFrameSize)
	}
	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return 0, nil, fmt.Errorf("read frame body: %w", err)
	}
	return Code(body[0]), body[1:], nil
}

// Expect reads a single frame from r, verifies that its message code is want,
// and decodes its payload into a value of type T. A frame bearing any other
// code is reported as a *CodeMismatchError without consuming further input.
func Expect[T any, PT interface {
	proto.Message
	*T
}](r io.Reader, want Code) (*T, error) {
	code, payload, err := DecodeFrame(r)
	if err != nil {
		return nil, err
	}
	if code != want {
		return nil, &CodeMismatchError{Got: code, Want: want}
	}
	msg := PT(new(T))
	if err := proto.Unmarshal(payload, msg); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", want, err)
	}
	return (*T)(msg), nil
}
