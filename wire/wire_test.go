// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package wire_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/antidote/apb"
	"github.com/creachadair/antidote/wire"
	"github.com/golang/protobuf/proto"
	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	msg := &apb.ApbStartTransactionResp{
		Success:               proto.Bool(true),
		TransactionDescriptor: []byte("txn-1"),
	}

	var buf bytes.Buffer
	if err := wire.Encode(&buf, wire.CodeStartTransactionResp, msg); err != nil {
		t.Fatalf("Encode: unexpected error: %v", err)
	}

	// The frame must begin with the length of everything after the length
	// word, then the message code.
	hdr := buf.Bytes()
	if got := len(hdr); got < 5 {
		t.Fatalf("Frame length: got %d bytes, want at least 5", got)
	}
	wantLen := uint32(buf.Len() - 4)
	gotLen := uint32(hdr[0])<<24 | uint32(hdr[1])<<16 | uint32(hdr[2])<<8 | uint32(hdr[3])
	if gotLen != wantLen {
		t.Errorf("Frame length word: got %d, want %d", gotLen, wantLen)
	}
	if got := wire.Code(hdr[4]); got != wire.CodeStartTransactionResp {
		t.Errorf("Frame code: got %v, want %v", got, wire.CodeStartTransactionResp)
	}

	got, err := wire.Expect[apb.ApbStartTransactionResp](&buf, wire.CodeStartTransactionResp)
	if err != nil {
		t.Fatalf("Expect: unexpected error: %v", err)
	}
	if diff := cmp.Diff(got, msg); diff != "" {
		t.Errorf("Decoded message (-got, +want):\n%s", diff)
	}
}

func TestPartialReads(t *testing.T) {
	// A frame arriving one byte at a time must still decode completely.
	var buf bytes.Buffer
	msg := &apb.ApbGetRegResp{Value: []byte("hello, world")}
	if err := wire.Encode(&buf, wire.CodeOperationResp, msg); err != nil {
		t.Fatalf("Encode: unexpected error: %v", err)
	}

	code, payload, err := wire.DecodeFrame(iotest.OneByteReader(&buf))
	if err != nil {
		t.Fatalf("DecodeFrame: unexpected error: %v", err)
	}
	if code != wire.CodeOperationResp {
		t.Errorf("Code: got %v, want %v", code, wire.CodeOperationResp)
	}
	var got apb.ApbGetRegResp
	if err := proto.Unmarshal(payload, &got); err != nil {
		t.Fatalf("Unmarshal payload: %v", err)
	}
	if string(got.GetValue()) != "hello, world" {
		t.Errorf("Value: got %q, want %q", got.GetValue(), "hello, world")
	}
}

func TestCodeMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := wire.Encode(&buf, wire.CodeCommitResp, &apb.ApbCommitResp{
		Success: proto.Bool(true),
	}); err != nil {
		t.Fatalf("Encode: unexpected error: %v", err)
	}

	got, err := wire.Expect[apb.ApbStartTransactionResp](&buf, wire.CodeStartTransactionResp)
	if err == nil {
		t.Fatalf("Expect: got %+v, want error", got)
	}
	var cerr *wire.CodeMismatchError
	if !errors.As(err, &cerr) {
		t.Fatalf("Expect: got error %v, want CodeMismatchError", err)
	}
	if cerr.Got != wire.CodeCommitResp || cerr.Want != wire.CodeStartTransactionResp {
		t.Errorf("Mismatch: got (%v, %v), want (%v, %v)",
			cerr.Got, cerr.Want, wire.CodeCommitResp, wire.CodeStartTransactionResp)
	}
}

func TestTruncatedFrame(t *testing.T) {
	var buf bytes.Buffer
	if err := wire.Encode(&buf, wire.CodeOperationResp, &apb.ApbOperationResp{
		Success: proto.Bool(true),
	}); err != nil {
		t.Fatalf("Encode: unexpected error: %v", err)
	}

	// Drop the last byte of the frame so the body runs short.
	short := bytes.NewReader(buf.Bytes()[:buf.Len()-1])
	if _, _, err := wire.DecodeFrame(short); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("DecodeFrame (truncated): got %v, want %v", err, io.ErrUnexpectedEOF)
	}

	// A stream that ends before the header is done looks the same.
	if _, _, err := wire.DecodeFrame(strings.NewReader("\x00\x00")); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("DecodeFrame (short header): got %v, want %v", err, io.ErrUnexpectedEOF)
	}

	// An empty stream is a plain EOF, so callers can tell a clean close from a
	// mid-frame failure.
	if _, _, err := wire.DecodeFrame(strings.NewReader("")); !errors.Is(err, io.EOF) {
		t.Errorf("DecodeFrame (empty): got %v, want %v", err, io.EOF)
	}
}

func TestInvalidLength(t *testing.T) {
	// A zero length word cannot even hold the message code.
	if _, _, err := wire.DecodeFrame(strings.NewReader("\x00\x00\x00\x00")); err == nil {
		t.Error("DecodeFrame (zero length): did not report an error")
	} else {
		t.Logf("Error OK: %v", err)
	}

	// An absurd length word is rejected before any allocation, not treated as
	// a frame we should try to read.
	huge := "\xff\xff\xff\xff"
	if _, _, err := wire.DecodeFrame(strings.NewReader(huge)); err == nil {
		t.Error("DecodeFrame (oversize length): did not report an error")
	} else if errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("DecodeFrame (oversize length): got %v, want a length error", err)
	} else {
		t.Logf("Error OK: %v", err)
	}
}
