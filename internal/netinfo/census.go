package netinfo

import (
	"sort"
	"strconv"

	gnet "github.com/shirou/gopsutil/v4/net"
)

// PortCount tallies established connections per remote port.
type PortCount struct {
	Port  string `json:"port"`
	Count int    `json:"count"`
}

// Census summarizes the established inet sockets of the host.
type Census struct {
	Established int         `json:"established"`
	TopPorts    []PortCount `json:"topPorts"`
}

// maxTopPorts bounds the per-port breakdown in a census.
const maxTopPorts = 5

// ActiveConnections counts established inet sockets and the most common
// remote ports. Enumeration failures degrade to an empty census; a report
// renders "0 connections" rather than an error.
func ActiveConnections() Census {
	conns, err := gnet.Connections("inet")
	if err != nil {
		return Census{}
	}
	return censusOf(conns)
}

func censusOf(conns []gnet.ConnectionStat) Census {
	counts := make(map[string]int)
	established := 0
	for _, c := range conns {
		if c.Status != "ESTABLISHED" {
			continue
		}
		established++
		if c.Raddr.IP == "" {
			continue
		}
		counts[strconv.Itoa(int(c.Raddr.Port))]++
	}

	ports := make([]PortCount, 0, len(counts))
	for port, count := range counts {
		ports = append(ports, PortCount{Port: port, Count: count})
	}
	sort.Slice(ports, func(i, j int) bool {
		if ports[i].Count != ports[j].Count {
			return ports[i].Count > ports[j].Count
		}
		return ports[i].Port < ports[j].Port
	})
	if len(ports) > maxTopPorts {
		ports = ports[:maxTopPorts]
	}

	return Census{Established: established, TopPorts: ports}
}
