package sink

import (
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"
)

// NetworkProtocol selects the transport a NetworkSink dials.
type NetworkProtocol int

const (
	ProtocolUDP NetworkProtocol = iota
	ProtocolTCP
)

const dialTimeout = 5 * time.Second

// NetworkSink sends each write to a remote syslog receiver over TCP or UDP.
// TCP writes are framed with RFC 6587 octet-counting ("MSGLEN SP MSG") since
// a bare stream has no message boundaries; UDP writes go out one datagram
// per write, unframed, the way RFC 5426 expects.
//
// A connect failure at Open does not make the sink Unsupported — it is a
// transient condition the owning target turns into a paused state, to be
// retried on a later reopen.
type NetworkSink struct {
	addr     string
	protocol NetworkProtocol

	mu   sync.Mutex
	conn net.Conn
}

// NewNetwork creates a NetworkSink dialing addr over the given protocol.
func NewNetwork(addr string, protocol NetworkProtocol) *NetworkSink {
	return &NetworkSink{addr: addr, protocol: protocol}
}

func (n *NetworkSink) network() string {
	if n.protocol == ProtocolTCP {
		return "tcp"
	}
	return "udp"
}

func (n *NetworkSink) Open() error {
	conn, err := net.DialTimeout(n.network(), n.addr, dialTimeout)
	if err != nil {
		return err
	}
	n.mu.Lock()
	n.conn = conn
	n.mu.Unlock()
	return nil
}

func (n *NetworkSink) Write(p []byte) (int, error) {
	n.mu.Lock()
	conn := n.conn
	n.mu.Unlock()
	if conn == nil {
		return 0, net.ErrClosed
	}

	if n.protocol != ProtocolTCP {
		return conn.Write(p)
	}

	framed := make([]byte, 0, len(p)+12)
	framed = append(framed, strconv.Itoa(len(p))...)
	framed = append(framed, ' ')
	framed = append(framed, p...)
	if _, err := conn.Write(framed); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (n *NetworkSink) Close() error {
	n.mu.Lock()
	conn := n.conn
	n.conn = nil
	n.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (n *NetworkSink) Unsupported() bool { return false }
func (n *NetworkSink) Synchronous() bool { return false }

func (n *NetworkSink) String() string {
	return fmt.Sprintf("network(%s,%s)", n.network(), n.addr)
}
