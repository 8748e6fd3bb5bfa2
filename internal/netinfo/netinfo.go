// Package netinfo enumerates local network interfaces and established
// sockets. Everything is re-read from the OS on every call; nothing is
// cached between analysis passes.
package netinfo

import (
	"net"
	"strings"

	gnet "github.com/shirou/gopsutil/v4/net"
)

// Kind classifies the physical medium of an interface.
type Kind string

const (
	KindWired    Kind = "wired"
	KindWireless Kind = "wireless"
	KindUnknown  Kind = "unknown"
)

// Address is one IPv4 address bound to an interface.
type Address struct {
	IP      string `json:"ip"`
	Netmask string `json:"netmask"`
}

// Interface describes a non-loopback interface holding at least one IPv4
// address.
type Interface struct {
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Addresses []Address `json:"addresses"`
	IsUp      bool      `json:"isUp"`
}

// ListInterfaces returns the usable local interfaces: loopbacks are dropped,
// as is anything without an IPv4 address. Up/down state comes from the
// interface flags; platforms that report no state default to up.
func ListInterfaces() ([]Interface, error) {
	stats, err := gnet.Interfaces()
	if err != nil {
		return nil, err
	}
	return fromStats(stats), nil
}

// fromStats converts raw interface stats, applying the loopback and IPv4
// filters. Split out from ListInterfaces so it can be exercised without
// touching the OS.
func fromStats(stats []gnet.InterfaceStat) []Interface {
	var out []Interface
	for _, st := range stats {
		if hasFlag(st.Flags, "loopback") {
			continue
		}

		var addrs []Address
		for _, a := range st.Addrs {
			ip, mask, ok := parseIPv4(a.Addr)
			if !ok {
				continue
			}
			addrs = append(addrs, Address{IP: ip, Netmask: mask})
		}
		if len(addrs) == 0 {
			continue
		}

		out = append(out, Interface{
			Name:      st.Name,
			Kind:      classifyKind(st.Name),
			Addresses: addrs,
			IsUp:      isUp(st.Flags),
		})
	}
	return out
}

// parseIPv4 accepts the CIDR or bare-IP forms gopsutil reports and returns
// the address with its dotted netmask. Non-IPv4 addresses are rejected.
func parseIPv4(addr string) (ip string, netmask string, ok bool) {
	if strings.Contains(addr, "/") {
		parsed, ipNet, err := net.ParseCIDR(addr)
		if err != nil || parsed.To4() == nil {
			return "", "", false
		}
		return parsed.String(), net.IP(ipNet.Mask).String(), true
	}
	parsed := net.ParseIP(addr)
	if parsed == nil || parsed.To4() == nil {
		return "", "", false
	}
	return parsed.String(), "255.255.255.255", true
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, want) {
			return true
		}
	}
	return false
}

// isUp reads the up flag, defaulting to up when the platform reports no
// state flags at all.
func isUp(flags []string) bool {
	if len(flags) == 0 {
		return true
	}
	return hasFlag(flags, "up")
}

// classifyKind guesses the medium from common interface naming schemes.
func classifyKind(name string) Kind {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "wl"),
		strings.Contains(lower, "wi-fi"),
		strings.Contains(lower, "wifi"),
		strings.Contains(lower, "wireless"),
		strings.HasPrefix(lower, "ath"),
		strings.HasPrefix(lower, "ra"):
		return KindWireless
	case strings.HasPrefix(lower, "eth"),
		strings.HasPrefix(lower, "en"),
		strings.Contains(lower, "ethernet"),
		strings.HasPrefix(lower, "lan"):
		return KindWired
	default:
		return KindUnknown
	}
}
