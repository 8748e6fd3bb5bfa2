package probe

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

type nopConn struct{ net.Conn }

func (nopConn) Close() error { return nil }

func TestTCPConnectCollect(t *testing.T) {
	t.Run("one sample per successful connect", func(t *testing.T) {
		var dialed []string
		s := NewTCPConnectStrategy(443)
		s.dial = func(network, address string, _ time.Duration) (net.Conn, error) {
			dialed = append(dialed, address)
			return nopConn{}, nil
		}

		samples := s.Collect(context.Background(), "example.com", 3, time.Second)

		if len(samples) != 3 {
			t.Fatalf("got %d samples, want 3", len(samples))
		}
		for _, addr := range dialed {
			if addr != "example.com:443" {
				t.Errorf("dialed %q, want %q", addr, "example.com:443")
			}
		}
	})

	t.Run("failed connects are skipped", func(t *testing.T) {
		calls := 0
		s := NewTCPConnectStrategy(0)
		s.dial = func(string, string, time.Duration) (net.Conn, error) {
			calls++
			if calls%2 == 0 {
				return nil, errors.New("connection refused")
			}
			return nopConn{}, nil
		}

		samples := s.Collect(context.Background(), "example.com", 4, time.Second)

		if len(samples) != 2 {
			t.Errorf("got %d samples, want 2", len(samples))
		}
	})

	t.Run("cancelled context stops attempts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := NewTCPConnectStrategy(0)
		s.dial = func(string, string, time.Duration) (net.Conn, error) {
			t.Fatal("dial must not run under a cancelled context")
			return nil, nil
		}

		if samples := s.Collect(ctx, "example.com", 3, time.Second); samples != nil {
			t.Errorf("got %v, want nil", samples)
		}
	})
}

func TestTCPConnectDefaultPort(t *testing.T) {
	s := NewTCPConnectStrategy(0)
	if s.port != DefaultTCPPort {
		t.Errorf("port = %d, want %d", s.port, DefaultTCPPort)
	}
	if s.Name() != "tcp-connect" {
		t.Errorf("Name() = %q, want %q", s.Name(), "tcp-connect")
	}
}
