package sockets

import (
	"errors"
	"fmt"
	"net"
	"net/netip"

	"golang.org/x/sys/unix"
)

// ErrMalformedAddress is returned when an address value cannot be
// serialized for a system call because its bytes fail the well-formedness
// checks for every known family.
var ErrMalformedAddress = errors.New("malformed socket address")

// Sockaddr is implemented by every address value this package can hand to
// bind, connect, and sendto: IPv4Endpoint, IPv6Endpoint, LinkLayerAddress,
// and *Storage. The interface is closed.
type Sockaddr interface {
	sockaddr() (unix.Sockaddr, error)
}

// IPv4Endpoint is a sockaddr_in: an IPv4 address plus a port.
// Values built through NewIPv4Endpoint are well-formed by construction.
type IPv4Endpoint struct {
	Addr IPv4Address
	Port uint16
}

// NewIPv4Endpoint builds an IPv4 endpoint from an address and a port.
func NewIPv4Endpoint(addr IPv4Address, port uint16) IPv4Endpoint {
	return IPv4Endpoint{Addr: addr, Port: port}
}

// Family returns AFInet.
func (e IPv4Endpoint) Family() AddressFamily { return AFInet }

func (e IPv4Endpoint) String() string {
	return netip.AddrPortFrom(e.Addr.Addr(), e.Port).String()
}

func (e IPv4Endpoint) sockaddr() (unix.Sockaddr, error) {
	return &unix.SockaddrInet4{Port: int(e.Port), Addr: e.Addr}, nil
}

// IPv6Endpoint is a sockaddr_in6: an IPv6 address, a port, and the
// optional flow label and scope (zone) identifiers.
type IPv6Endpoint struct {
	Addr     IPv6Address
	Port     uint16
	FlowInfo uint32
	Scope    uint32
}

// NewIPv6Endpoint builds an IPv6 endpoint from an address and a port,
// with zero flow info and scope.
func NewIPv6Endpoint(addr IPv6Address, port uint16) IPv6Endpoint {
	return IPv6Endpoint{Addr: addr, Port: port}
}

// Family returns AFInet6.
func (e IPv6Endpoint) Family() AddressFamily { return AFInet6 }

func (e IPv6Endpoint) String() string {
	return netip.AddrPortFrom(e.Addr.Addr(), e.Port).String()
}

func (e IPv6Endpoint) sockaddr() (unix.Sockaddr, error) {
	return &unix.SockaddrInet6{Port: int(e.Port), ZoneId: e.Scope, Addr: e.Addr}, nil
}

// LinkLayerAddress is a device-level address: sockaddr_dl on the BSDs,
// sockaddr_ll on Linux. Name is empty on Linux, which does not carry an
// interface name in the structure.
type LinkLayerAddress struct {
	Index        int
	Type         int
	Name         string
	HardwareAddr net.HardwareAddr
}

// Family returns AFLink.
func (l LinkLayerAddress) Family() AddressFamily { return AFLink }

func (l LinkLayerAddress) String() string {
	if l.Name != "" {
		return fmt.Sprintf("%s@%d(%s)", l.Name, l.Index, l.HardwareAddr)
	}
	return fmt.Sprintf("link#%d(%s)", l.Index, l.HardwareAddr)
}

func (l LinkLayerAddress) sockaddr() (unix.Sockaddr, error) {
	return linkSockaddr(l)
}
