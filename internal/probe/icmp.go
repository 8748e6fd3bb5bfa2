package probe

import (
	"context"
	"net"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

const echoPayload = "netforge"

// ICMPStrategy sends ICMP echo requests using raw sockets. On hosts where
// raw sockets need elevated privileges every attempt fails and the prober
// falls through to the ping command.
type ICMPStrategy struct {
	id  int
	seq uint32
}

// NewICMPStrategy initializes the strategy with a process-scoped echo ID.
func NewICMPStrategy() *ICMPStrategy {
	return &ICMPStrategy{id: os.Getpid() & 0xffff}
}

// Name identifies the strategy in probe results.
func (s *ICMPStrategy) Name() string { return "icmp" }

// Collect sends one echo request per attempt and records the round trip of
// each matching reply in milliseconds.
func (s *ICMPStrategy) Collect(ctx context.Context, host string, attempts int, timeout time.Duration) []float64 {
	ip, err := net.ResolveIPAddr("ip", host)
	if err != nil || ip.IP == nil {
		return nil
	}

	var samples []float64
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			break
		}
		if rtt, ok := s.echo(ctx, ip, timeout); ok {
			samples = append(samples, float64(rtt)/float64(time.Millisecond))
		}
	}
	return samples
}

func (s *ICMPStrategy) echo(ctx context.Context, ip *net.IPAddr, timeout time.Duration) (time.Duration, bool) {
	network, protocol, requestType, replyType := icmpSettings(ip.IP)
	conn, err := icmp.ListenPacket(network, "")
	if err != nil {
		return 0, false
	}
	defer conn.Close()

	seq := int(atomic.AddUint32(&s.seq, 1)) & 0xffff
	msg := icmp.Message{
		Type: requestType,
		Code: 0,
		Body: &icmp.Echo{ID: s.id, Seq: seq, Data: []byte(echoPayload)},
	}

	payload, err := msg.Marshal(nil)
	if err != nil {
		return 0, false
	}
	if err := conn.SetDeadline(effectiveDeadline(ctx, timeout)); err != nil {
		return 0, false
	}

	start := time.Now()
	if _, err := conn.WriteTo(payload, ip); err != nil {
		return 0, false
	}

	buf := make([]byte, 1500)
	for {
		if ctx.Err() != nil {
			return 0, false
		}
		n, peer, err := conn.ReadFrom(buf)
		if err != nil {
			return 0, false
		}
		if peer == nil {
			continue
		}
		reply, err := icmp.ParseMessage(protocol, buf[:n])
		if err != nil || reply.Type != replyType {
			continue
		}
		body, ok := reply.Body.(*icmp.Echo)
		if !ok || body.ID != s.id || body.Seq != seq {
			continue
		}
		return time.Since(start), true
	}
}

func icmpSettings(ip net.IP) (network string, protocol int, requestType icmp.Type, replyType icmp.Type) {
	if ip.To4() != nil {
		return "ip4:icmp", ipv4.ICMPTypeEcho.Protocol(), ipv4.ICMPTypeEcho, ipv4.ICMPTypeEchoReply
	}
	return "ip6:ipv6-icmp", ipv6.ICMPTypeEchoRequest.Protocol(), ipv6.ICMPTypeEchoRequest, ipv6.ICMPTypeEchoReply
}

func effectiveDeadline(ctx context.Context, timeout time.Duration) time.Time {
	deadline := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}
