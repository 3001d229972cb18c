package agent

import (
	"sync"

	"github.com/maplestarplayl/snmpv1-go/snmp"
)

// Store is the in-memory OID -> value MIB shared by the agent. It is
// exclusively owned by the Agent; handler code borrows a read or write
// view for the duration of one request.
//
// Many concurrent readers (Get/GetNext) or one exclusive writer (Set) are
// permitted at a time; no per-entry locking is needed because a Set is
// always applied atomically at request granularity.
type Store struct {
	mu   sync.RWMutex
	data map[string]entry
}

type entry struct {
	oid   snmp.OID
	value snmp.SnmpValue
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: make(map[string]entry)}
}

// Register pre-populates or overwrites a single entry.
func (s *Store) Register(oid snmp.OID, value snmp.SnmpValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(oid, value)
}

func (s *Store) set(oid snmp.OID, value snmp.SnmpValue) {
	s.data[oid.String()] = entry{oid: oid.Clone(), value: value}
}

// Get returns the value stored exactly at oid.
func (s *Store) Get(oid snmp.OID) (snmp.SnmpValue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[oid.String()]
	if !ok {
		return snmp.SnmpValue{}, false
	}
	return e.value, true
}

// GetNext returns the key/value pair with the lexicographically smallest
// key that is strictly greater than oid: the strict-successor lookup
// GetNext requires.
func (s *Store) GetNext(oid snmp.OID) (snmp.OID, snmp.SnmpValue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *entry
	for _, e := range s.data {
		if e.oid.Compare(oid) <= 0 {
			continue
		}
		if best == nil || e.oid.Compare(best.oid) < 0 {
			candidate := e
			best = &candidate
		}
	}
	if best == nil {
		return nil, snmp.SnmpValue{}, false
	}
	return best.oid, best.value, true
}

// SetAll applies every (oid, value) pair under a single exclusive lock, so
// a concurrent reader never observes a partial application of a
// multi-varbind Set.
func (s *Store) SetAll(varbinds []snmp.Varbind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, vb := range varbinds {
		s.set(vb.OID, vb.Value)
	}
}

// Len returns the number of registered entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
