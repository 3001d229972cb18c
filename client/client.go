package client

import (
	"context"
	"math/rand"
	"net"
	"time"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"

	"github.com/maplestarplayl/snmpv1-go/snmp"
)

const maxResponseSize = 4096

// Client is a single SNMPv1 session bound to an ephemeral local UDP port.
// It can address any number of targets across its lifetime; construct
// with New and release with Close.
type Client struct {
	conn          net.PacketConn
	config        *config
	nextRequestID int32
}

// New binds an ephemeral local UDP port and returns a Client ready to
// issue requests to any target.
func New(opts ...Option) (*Client, error) {
	cfg := defaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	_ = mergo.Merge(cfg.hooks, NoOpHooks) //nolint: errcheck

	begin := time.Now()
	cfg.hooks.ConnectStart("")
	conn, err := net.ListenPacket(cfg.network, ":0")
	cfg.hooks.ConnectDone("", err, time.Since(begin))
	if err != nil {
		return nil, errors.Wrap(err, "bind ephemeral port")
	}

	seed := rand.Int31() //nolint: gosec
	if cfg.useFixedSeedID {
		seed = cfg.requestIDSeed
	}

	return &Client{conn: conn, config: &cfg, nextRequestID: seed}, nil
}

// Close releases the underlying socket.
func (c *Client) Close() error { return c.conn.Close() }

func (c *Client) nextID() int32 {
	id := c.nextRequestID
	c.nextRequestID++
	return id
}

// Get issues a GetRequest for oids under community to target and returns
// the raw response datagram; decoding it into a snmp.Message is the
// caller's job. The client does not correlate request_id on the
// response: whatever single datagram is read within the timeout is
// treated as the answer.
func (c *Client) Get(ctx context.Context, target, community string, oids []snmp.OID) ([]byte, error) {
	return c.execute(ctx, target, snmp.KindGetRequest, community, nullVarbinds(oids))
}

// GetNext issues a GetNextRequest for oids under community to target.
func (c *Client) GetNext(ctx context.Context, target, community string, oids []snmp.OID) ([]byte, error) {
	return c.execute(ctx, target, snmp.KindGetNextRequest, community, nullVarbinds(oids))
}

// Set issues a SetRequest carrying varbinds under community to target.
func (c *Client) Set(ctx context.Context, target, community string, varbinds []snmp.Varbind) ([]byte, error) {
	return c.execute(ctx, target, snmp.KindSetRequest, community, varbinds)
}

func nullVarbinds(oids []snmp.OID) []snmp.Varbind {
	varbinds := make([]snmp.Varbind, len(oids))
	for i, oid := range oids {
		varbinds[i] = snmp.Varbind{OID: oid, Value: snmp.Null()}
	}
	return varbinds
}

func (c *Client) execute(ctx context.Context, target string, kind snmp.PDUKind, community string, varbinds []snmp.Varbind) (raw []byte, err error) {
	defer func() {
		if err != nil {
			c.config.hooks.Error(kind.String(), target, err)
		}
	}()

	addr, err := net.ResolveUDPAddr(c.config.network, target)
	if err != nil {
		return nil, errors.Wrap(ErrAddressParse, err.Error())
	}

	request := snmp.Message{
		Version:   0,
		Community: []byte(community),
		PDU: snmp.PDU{
			Kind:      kind,
			RequestID: c.nextID(),
			Varbinds:  varbinds,
		},
	}

	encoded, err := snmp.EncodeMessage(request)
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.timeout)
	defer cancel()
	deadline, _ := ctx.Deadline()
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, errors.Wrap(err, "set deadline")
	}

	if err := c.writeRequest(target, addr, encoded); err != nil {
		return nil, err
	}

	return c.readResponse(target)
}

func (c *Client) writeRequest(target string, addr net.Addr, encoded []byte) error {
	begin := time.Now()
	n, err := c.conn.WriteTo(encoded, addr)
	c.config.hooks.WriteDone(target, encoded[:n], err, time.Since(begin))
	if err != nil {
		return errors.Wrap(err, "write request")
	}
	return nil
}

func (c *Client) readResponse(target string) ([]byte, error) {
	buf := make([]byte, maxResponseSize)

	begin := time.Now()
	n, _, err := c.conn.ReadFrom(buf)
	c.config.hooks.ReadDone(target, buf[:n], err, time.Since(begin))
	if err != nil {
		if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
			return nil, errors.Wrap(ErrTimeout, err.Error())
		}
		return nil, errors.Wrap(err, "read response")
	}
	return buf[:n], nil
}
