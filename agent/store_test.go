package agent

import (
	"sync"
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/maplestarplayl/snmpv1-go/snmp"
)

func oid(t *testing.T, s string) snmp.OID {
	t.Helper()
	o, err := snmp.ParseOID(s)
	assert.NoError(t, err)
	return o
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()
	_, ok := s.Get(oid(t, "1.3.6.1.2.1.1.1.0"))
	assert.False(t, ok)
}

func TestStoreRegisterOverwrites(t *testing.T) {
	s := NewStore()
	s.Register(oid(t, "1.3.6.1.2.1.1.1.0"), snmp.Integer(1))
	s.Register(oid(t, "1.3.6.1.2.1.1.1.0"), snmp.Integer(2))

	v, ok := s.Get(oid(t, "1.3.6.1.2.1.1.1.0"))
	assert.True(t, ok)
	assert.Equal(t, int32(2), v.Int)
	assert.Equal(t, 1, s.Len())
}

func TestStoreGetNextTraversal(t *testing.T) {
	s := NewStore()
	s.Register(oid(t, "1.3.6.1.2.1.1.1.0"), snmp.Integer(1))
	s.Register(oid(t, "1.3.6.1.2.1.1.3.0"), snmp.Integer(3))

	nextOID, v, ok := s.GetNext(oid(t, "1.3.6.1.2.1.1.1.0"))
	assert.True(t, ok)
	assert.True(t, nextOID.Equal(oid(t, "1.3.6.1.2.1.1.3.0")))
	assert.Equal(t, int32(3), v.Int)
}

func TestStoreGetNextBelowMinimum(t *testing.T) {
	s := NewStore()
	s.Register(oid(t, "1.3.6.1.2.1.1.3.0"), snmp.Integer(3))

	nextOID, _, ok := s.GetNext(oid(t, "1.3.6.1.2.1.1.1.0"))
	assert.True(t, ok)
	assert.True(t, nextOID.Equal(oid(t, "1.3.6.1.2.1.1.3.0")))
}

func TestStoreGetNextEndOfMib(t *testing.T) {
	s := NewStore()
	s.Register(oid(t, "1.3.6.1.2.1.1.1.0"), snmp.Integer(1))
	s.Register(oid(t, "1.3.6.1.2.1.1.3.0"), snmp.Integer(3))

	_, _, ok := s.GetNext(oid(t, "1.3.6.1.2.1.1.3.0"))
	assert.False(t, ok)
}

func TestStoreSetAllAtomic(t *testing.T) {
	s := NewStore()
	varbinds := []snmp.Varbind{
		{OID: oid(t, "1.3.6.1.2.1.1.1.0"), Value: snmp.OctetString([]byte("a"))},
		{OID: oid(t, "1.3.6.1.2.1.1.2.0"), Value: snmp.OctetString([]byte("b"))},
	}
	s.SetAll(varbinds)

	v1, ok := s.Get(oid(t, "1.3.6.1.2.1.1.1.0"))
	assert.True(t, ok)
	assert.Equal(t, "a", string(v1.Bytes))

	v2, ok := s.Get(oid(t, "1.3.6.1.2.1.1.2.0"))
	assert.True(t, ok)
	assert.Equal(t, "b", string(v2.Bytes))
}

func TestStoreConcurrentReadersSingleWriter(t *testing.T) {
	s := NewStore()
	s.Register(oid(t, "1.3.6.1.2.1.1.1.0"), snmp.Integer(0))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Get(oid(t, "1.3.6.1.2.1.1.1.0"))
			s.GetNext(oid(t, "1.3.6.1.2.1.1.0.0"))
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.SetAll([]snmp.Varbind{{OID: oid(t, "1.3.6.1.2.1.1.1.0"), Value: snmp.Integer(int32(n))}})
		}(i)
	}
	wg.Wait()
}
