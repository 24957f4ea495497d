// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package antidote

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/creachadair/antidote/apb"
)

// ErrNoEntry is reported (wrapped) by the extraction methods of a
// MapReadResult when the map has no entry with the requested key and type.
var ErrNoEntry = errors.New("no matching map entry")

// A MapEntryKey identifies one entry of a map. Two entries with the same key
// but different types are distinct.
type MapEntryKey struct {
	Key  Key
	Type CRDTType
}

func (k MapEntryKey) String() string { return fmt.Sprintf("%s(%q)", k.Type, string(k.Key)) }

// A MapReadResult holds the entries returned by reading a map object.
// Entries are extracted per type by exact (key, type) match; the value of a
// nested map entry is itself a MapReadResult.
type MapReadResult struct {
	entries []*apb.ApbMapEntry
}

// find returns the value of the entry matching key and ctype exactly.
func (m *MapReadResult) find(key Key, ctype CRDTType) (*apb.ApbReadObjectResp, error) {
	for _, e := range m.entries {
		if e.GetKey().GetType() == ctype && bytes.Equal(e.GetKey().GetKey(), key) {
			return e.GetValue(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s key %q", ErrNoEntry, ctype, key)
}

// Counter extracts the value of the counter entry at key.
func (m *MapReadResult) Counter(key Key) (int32, error) {
	v, err := m.find(key, TypeCounter)
	if err != nil {
		return 0, err
	}
	return v.GetCounter().GetValue(), nil
}

// Set extracts the elements of the set entry at key.
func (m *MapReadResult) Set(key Key) ([][]byte, error) {
	v, err := m.find(key, TypeSet)
	if err != nil {
		return nil, err
	}
	return v.GetSet().GetValue(), nil
}

// Reg extracts the value of the last-writer-wins register entry at key.
func (m *MapReadResult) Reg(key Key) ([]byte, error) {
	v, err := m.find(key, TypeReg)
	if err != nil {
		return nil, err
	}
	return v.GetReg().GetValue(), nil
}

// MVReg extracts the values of the multi-value register entry at key.
func (m *MapReadResult) MVReg(key Key) ([][]byte, error) {
	v, err := m.find(key, TypeMVReg)
	if err != nil {
		return nil, err
	}
	return v.GetMvreg().GetValues(), nil
}

// Map extracts the nested map entry at key.
func (m *MapReadResult) Map(key Key) (*MapReadResult, error) {
	v, err := m.find(key, TypeMap)
	if err != nil {
		return nil, err
	}
	return &MapReadResult{entries: v.GetMap().GetEntries()}, nil
}

// ListMapKeys reports the (key, type) pairs of all entries in the map,
// without extracting their values.
func (m *MapReadResult) ListMapKeys() []MapEntryKey {
	keys := make([]MapEntryKey, len(m.entries))
	for i, e := range m.entries {
		keys[i] = MapEntryKey{Key: e.GetKey().GetKey(), Type: e.GetKey().GetType()}
	}
	return keys
}
