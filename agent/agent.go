package agent

import (
	"context"
	"crypto/subtle"
	"net"
	"strings"
	"time"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"

	"github.com/maplestarplayl/snmpv1-go/snmp"
)

// Agent owns a UDP endpoint and an OID store, and dispatches decoded
// SNMPv1 messages against it. The zero value is not usable; construct
// with New.
type Agent struct {
	conn        *net.UDPConn
	communities []string
	store       *Store
	config      *config
}

// New binds a UDP socket at bindAddress (e.g. "0.0.0.0:16100") and returns
// an Agent that will accept requests carrying any of communities.
func New(bindAddress string, communities []string, opts ...Option) (*Agent, error) {
	cfg := defaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	_ = mergo.Merge(cfg.hooks, NoOpHooks) //nolint: errcheck

	addr, err := net.ResolveUDPAddr("udp", bindAddress)
	if err != nil {
		return nil, errors.Wrap(err, "resolve bind address")
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "listen")
	}

	return &Agent{
		conn:        conn,
		communities: communities,
		store:       NewStore(),
		config:      &cfg,
	}, nil
}

// LocalAddr returns the address the agent is bound to.
func (a *Agent) LocalAddr() net.Addr { return a.conn.LocalAddr() }

// Close closes the agent's UDP socket. A concurrently running Run returns
// once Close completes.
func (a *Agent) Close() error { return a.conn.Close() }

// RegisterOID pre-populates or overwrites a single store entry. Safe to
// call before Run, or concurrently while it is active.
func (a *Agent) RegisterOID(oid snmp.OID, value snmp.SnmpValue) {
	a.store.Register(oid, value)
}

// Run is the blocking receive/dispatch loop. Each datagram is processed
// to completion before the next is read. Run returns nil when ctx is
// cancelled or the socket is closed, and a non-nil error on any other
// fatal I/O failure.
func (a *Agent) Run(ctx context.Context) error {
	a.config.hooks.StartListening(a.conn.LocalAddr())

	buf := make([]byte, a.config.maxDatagramSize)
	for {
		select {
		case <-ctx.Done():
			a.config.hooks.StopListening(a.conn.LocalAddr(), nil)
			return nil
		default:
		}

		if err := a.conn.SetReadDeadline(time.Now().Add(a.config.readTimeout)); err != nil {
			a.config.hooks.StopListening(a.conn.LocalAddr(), err)
			return errors.Wrap(err, "set read deadline")
		}

		n, addr, err := a.conn.ReadFromUDP(buf)
		if err != nil {
			a.config.hooks.ReadComplete(addr, nil, err)

			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			if isClosedConnError(err) {
				a.config.hooks.StopListening(a.conn.LocalAddr(), nil)
				return nil
			}
			a.config.hooks.StopListening(a.conn.LocalAddr(), err)
			return errors.Wrap(err, "read datagram")
		}
		a.config.hooks.ReadComplete(addr, buf[:n], nil)

		datagram := make([]byte, n)
		copy(datagram, buf[:n])
		a.handleDatagram(datagram, addr)
	}
}

func isClosedConnError(err error) bool {
	return strings.Contains(err.Error(), "use of closed network connection")
}

// handleDatagram implements the per-datagram pipeline: decode,
// authenticate, dispatch, respond. Any failure before dispatch results in
// a silent drop; SNMPv1 has no way to signal a malformed message back to
// an unknown sender.
func (a *Agent) handleDatagram(datagram []byte, addr *net.UDPAddr) {
	msg, err := snmp.DecodeMessage(datagram)
	if err != nil {
		a.config.hooks.Error("decode message", err)
		return
	}
	a.config.hooks.Decoded(addr, &msg)

	if !a.communityAccepted(msg.Community) {
		return
	}

	responsePDU, ok := a.dispatch(msg.PDU)
	if !ok {
		return
	}
	a.config.hooks.Dispatched(addr, &responsePDU)

	response := snmp.Message{Version: msg.Version, Community: msg.Community, PDU: responsePDU}
	encoded, err := snmp.EncodeMessage(response)
	if err != nil {
		a.config.hooks.Error("encode response", err)
		return
	}

	_, err = a.conn.WriteToUDP(encoded, addr)
	a.config.hooks.WriteComplete(addr, encoded, err)
}

func (a *Agent) communityAccepted(candidate []byte) bool {
	for _, accepted := range a.communities {
		want := []byte(accepted)
		if len(candidate) != len(want) {
			continue
		}
		if subtle.ConstantTimeCompare(candidate, want) == 1 {
			return true
		}
	}
	return false
}

// dispatch routes a decoded PDU to its handler. The bool result is false
// for any PDU kind this core doesn't serve (e.g. GetResponse arriving at
// an agent), in which case the datagram is dropped without a response.
func (a *Agent) dispatch(request snmp.PDU) (snmp.PDU, bool) {
	switch request.Kind {
	case snmp.KindGetRequest:
		return a.handleGet(request), true
	case snmp.KindGetNextRequest:
		return a.handleGetNext(request), true
	case snmp.KindSetRequest:
		return a.handleSet(request), true
	default:
		return snmp.PDU{}, false
	}
}

// handleGet performs an exact store lookup for each requested varbind;
// the first miss (and only the first) sets error_status/error_index.
func (a *Agent) handleGet(request snmp.PDU) snmp.PDU {
	response := snmp.PDU{
		Kind:      snmp.KindGetResponse,
		RequestID: request.RequestID,
		Varbinds:  make([]snmp.Varbind, len(request.Varbinds)),
	}

	for i, vb := range request.Varbinds {
		if value, ok := a.store.Get(vb.OID); ok {
			response.Varbinds[i] = snmp.Varbind{OID: vb.OID, Value: value}
			continue
		}
		response.Varbinds[i] = snmp.Varbind{OID: vb.OID, Value: snmp.Null()}
		a.markFirstMiss(&response, i)
	}
	return response
}

// handleGetNext performs the strict-successor lookup in the store for
// each requested varbind.
func (a *Agent) handleGetNext(request snmp.PDU) snmp.PDU {
	response := snmp.PDU{
		Kind:      snmp.KindGetResponse,
		RequestID: request.RequestID,
		Varbinds:  make([]snmp.Varbind, len(request.Varbinds)),
	}

	for i, vb := range request.Varbinds {
		if nextOID, value, ok := a.store.GetNext(vb.OID); ok {
			response.Varbinds[i] = snmp.Varbind{OID: nextOID, Value: value}
			continue
		}
		response.Varbinds[i] = snmp.Varbind{OID: vb.OID, Value: snmp.Null()}
		a.markFirstMiss(&response, i)
	}
	return response
}

// handleSet atomically inserts or overwrites every varbind, echoing the
// input list back unchanged. No type checking against any
// prior-registered value.
func (a *Agent) handleSet(request snmp.PDU) snmp.PDU {
	a.store.SetAll(request.Varbinds)

	return snmp.PDU{
		Kind:      snmp.KindGetResponse,
		RequestID: request.RequestID,
		Varbinds:  request.Varbinds,
	}
}

// markFirstMiss sets error_status/error_index on response only the first
// time it is called for a given response (error_status stays NoError
// until then).
func (a *Agent) markFirstMiss(response *snmp.PDU, index int) {
	if response.ErrorStatus != snmp.NoError {
		return
	}
	response.ErrorStatus = snmp.NoSuchName
	response.ErrorIndex = int32(index + 1)
}
