package probe

import (
	"context"
	"net"
	"strconv"
	"time"
)

// DefaultTCPPort is the port used for connect timing when none is given.
const DefaultTCPPort = 80

// Dialer opens a connection with a timeout, matching net.DialTimeout.
type Dialer func(network, address string, timeout time.Duration) (net.Conn, error)

// TCPConnectStrategy times a TCP connect per attempt. The measured value is
// connect latency rather than true ICMP round-trip time; it is the last
// resort when both echo strategies are unavailable.
type TCPConnectStrategy struct {
	port int
	dial Dialer
}

// NewTCPConnectStrategy builds the strategy. Port 0 means DefaultTCPPort.
func NewTCPConnectStrategy(port int) *TCPConnectStrategy {
	if port <= 0 {
		port = DefaultTCPPort
	}
	return &TCPConnectStrategy{port: port, dial: net.DialTimeout}
}

// Name identifies the strategy in probe results.
func (s *TCPConnectStrategy) Name() string { return "tcp-connect" }

// Collect performs one timed connect per attempt.
func (s *TCPConnectStrategy) Collect(ctx context.Context, host string, attempts int, timeout time.Duration) []float64 {
	address := net.JoinHostPort(host, strconv.Itoa(s.port))

	var samples []float64
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			break
		}
		start := time.Now()
		conn, err := s.dial("tcp", address, timeout)
		if err != nil {
			continue
		}
		samples = append(samples, float64(time.Since(start))/float64(time.Millisecond))
		conn.Close()
	}
	return samples
}
