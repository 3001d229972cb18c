package client

import (
	"context"
	"errors"
	"net"
	"testing"

	gomock "github.com/golang/mock/gomock"
	assert "github.com/stretchr/testify/require"

	"github.com/maplestarplayl/snmpv1-go/client/mocks"
	"github.com/maplestarplayl/snmpv1-go/snmp"
)

func mustOID(t *testing.T, s string) snmp.OID {
	t.Helper()
	oid, err := snmp.ParseOID(s)
	assert.NoError(t, err)
	return oid
}

func newTestClient(conn *mocks.MockPacketConn) *Client {
	cfg := defaultConfig
	cfg.hooks = NoOpHooks
	return &Client{conn: conn, config: &cfg, nextRequestID: 1}
}

func TestClientGetReturnsRawBytes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockConn := mocks.NewMockPacketConn(mockCtrl)

	target := mustOID(t, "1.3.6.1.2.1.1.1.0")
	request := snmp.Message{
		Version:   0,
		Community: []byte("public"),
		PDU: snmp.PDU{
			Kind:      snmp.KindGetRequest,
			RequestID: 1,
			Varbinds:  []snmp.Varbind{{OID: target, Value: snmp.Null()}},
		},
	}
	requestBytes, err := snmp.EncodeMessage(request)
	assert.NoError(t, err)

	response := snmp.Message{
		Version:   0,
		Community: []byte("public"),
		PDU: snmp.PDU{
			Kind:      snmp.KindGetResponse,
			RequestID: 1,
			Varbinds:  []snmp.Varbind{{OID: target, Value: snmp.OctetString([]byte("test-agent"))}},
		},
	}
	responseBytes, err := snmp.EncodeMessage(response)
	assert.NoError(t, err)

	gomock.InOrder(
		mockConn.EXPECT().SetDeadline(gomock.Any()).Return(nil),
		mockConn.EXPECT().WriteTo(requestBytes, gomock.Any()).Return(len(requestBytes), nil),
		mockConn.EXPECT().ReadFrom(gomock.Any()).DoAndReturn(
			func(input []byte) (int, net.Addr, error) {
				copy(input, responseBytes)
				return len(responseBytes), nil, nil
			}),
	)

	c := newTestClient(mockConn)
	raw, err := c.Get(context.Background(), "127.0.0.1:161", "public", []snmp.OID{target})
	assert.NoError(t, err)
	assert.Equal(t, responseBytes, raw)

	// Decoding is the caller's job; verify the raw bytes decode as expected.
	got, err := snmp.DecodeMessage(raw)
	assert.NoError(t, err)
	assert.Equal(t, snmp.KindGetResponse, got.PDU.Kind)
	assert.Equal(t, "test-agent", string(got.PDU.Varbinds[0].Value.Bytes))
}

func TestClientAddressesMultipleTargetsPerCall(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockConn := mocks.NewMockPacketConn(mockCtrl)

	target := mustOID(t, "1.3.6.1.2.1.1.1.0")
	response := snmp.Message{
		Version:   0,
		Community: []byte("public"),
		PDU: snmp.PDU{
			Kind:      snmp.KindGetResponse,
			RequestID: 1,
			Varbinds:  []snmp.Varbind{{OID: target, Value: snmp.Null()}},
		},
	}
	responseBytes, err := snmp.EncodeMessage(response)
	assert.NoError(t, err)

	var seenAddrs []net.Addr
	mockConn.EXPECT().SetDeadline(gomock.Any()).Return(nil).Times(2)
	mockConn.EXPECT().WriteTo(gomock.Any(), gomock.Any()).DoAndReturn(
		func(p []byte, addr net.Addr) (int, error) {
			seenAddrs = append(seenAddrs, addr)
			return len(p), nil
		}).Times(2)
	mockConn.EXPECT().ReadFrom(gomock.Any()).DoAndReturn(
		func(input []byte) (int, net.Addr, error) {
			copy(input, responseBytes)
			return len(responseBytes), nil, nil
		}).Times(2)

	c := newTestClient(mockConn)
	_, err = c.Get(context.Background(), "10.0.0.1:161", "public", []snmp.OID{target})
	assert.NoError(t, err)
	_, err = c.Get(context.Background(), "10.0.0.2:161", "public", []snmp.OID{target})
	assert.NoError(t, err)

	assert.Len(t, seenAddrs, 2)
	assert.NotEqual(t, seenAddrs[0].String(), seenAddrs[1].String())
}

func TestClientRequestIDIncrements(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockConn := mocks.NewMockPacketConn(mockCtrl)

	target := mustOID(t, "1.3.6.1.2.1.1.1.0")
	response := snmp.Message{
		Version:   0,
		Community: []byte("public"),
		PDU: snmp.PDU{
			Kind:      snmp.KindGetResponse,
			RequestID: 1,
			Varbinds:  []snmp.Varbind{{OID: target, Value: snmp.Null()}},
		},
	}
	responseBytes, err := snmp.EncodeMessage(response)
	assert.NoError(t, err)

	mockConn.EXPECT().SetDeadline(gomock.Any()).Return(nil).Times(2)
	mockConn.EXPECT().WriteTo(gomock.Any(), gomock.Any()).Return(0, nil).Times(2)
	mockConn.EXPECT().ReadFrom(gomock.Any()).DoAndReturn(
		func(input []byte) (int, net.Addr, error) {
			copy(input, responseBytes)
			return len(responseBytes), nil, nil
		}).Times(2)

	c := newTestClient(mockConn)
	assert.Equal(t, int32(1), c.nextRequestID)
	_, err = c.Get(context.Background(), "127.0.0.1:161", "public", []snmp.OID{target})
	assert.NoError(t, err)
	assert.Equal(t, int32(2), c.nextRequestID)
	_, err = c.GetNext(context.Background(), "127.0.0.1:161", "public", []snmp.OID{target})
	assert.NoError(t, err)
	assert.Equal(t, int32(3), c.nextRequestID)
}

func TestClientSet(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockConn := mocks.NewMockPacketConn(mockCtrl)

	target := mustOID(t, "1.3.6.1.2.1.1.5.0")
	response := snmp.Message{
		Version:   0,
		Community: []byte("private"),
		PDU: snmp.PDU{
			Kind:      snmp.KindGetResponse,
			RequestID: 1,
			Varbinds:  []snmp.Varbind{{OID: target, Value: snmp.OctetString([]byte("new-name"))}},
		},
	}
	responseBytes, err := snmp.EncodeMessage(response)
	assert.NoError(t, err)

	mockConn.EXPECT().SetDeadline(gomock.Any()).Return(nil)
	mockConn.EXPECT().WriteTo(gomock.Any(), gomock.Any()).Return(0, nil)
	mockConn.EXPECT().ReadFrom(gomock.Any()).DoAndReturn(
		func(input []byte) (int, net.Addr, error) {
			copy(input, responseBytes)
			return len(responseBytes), nil, nil
		})

	c := newTestClient(mockConn)
	raw, err := c.Set(context.Background(), "127.0.0.1:161", "private",
		[]snmp.Varbind{{OID: target, Value: snmp.OctetString([]byte("new-name"))}})
	assert.NoError(t, err)

	got, err := snmp.DecodeMessage(raw)
	assert.NoError(t, err)
	assert.Equal(t, "new-name", string(got.PDU.Varbinds[0].Value.Bytes))
}

func TestClientReadTimeoutReportsErrTimeout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockConn := mocks.NewMockPacketConn(mockCtrl)

	mockConn.EXPECT().SetDeadline(gomock.Any()).Return(nil)
	mockConn.EXPECT().WriteTo(gomock.Any(), gomock.Any()).Return(0, nil)
	mockConn.EXPECT().ReadFrom(gomock.Any()).Return(0, nil, timeoutStub{})

	c := newTestClient(mockConn)
	_, err := c.Get(context.Background(), "127.0.0.1:161", "public", []snmp.OID{mustOID(t, "1.3.6.1.2.1.1.1.0")})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
}

func TestClientRejectsUnparsableTarget(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockConn := mocks.NewMockPacketConn(mockCtrl)

	c := newTestClient(mockConn)
	_, err := c.Get(context.Background(), "not a valid address", "public", []snmp.OID{mustOID(t, "1.3.6.1.2.1.1.1.0")})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrAddressParse))
}

type timeoutStub struct{}

func (timeoutStub) Error() string   { return "i/o timeout" }
func (timeoutStub) Timeout() bool   { return true }
func (timeoutStub) Temporary() bool { return true }
