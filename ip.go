package sockets

import (
	"net"
	"net/netip"
)

// IP is implemented by IPv4Address and IPv6Address. It is a closed
// interface; the two concrete types are the only implementations.
type IP interface {
	// IsWildcard reports whether the address is the unspecified address.
	IsWildcard() bool
	// IsLoopback reports whether the address is a loopback address.
	IsLoopback() bool
	// IsMulticast reports whether the address is a multicast group address.
	IsMulticast() bool
	// IsLinkLocal reports whether the address is link-local unicast.
	IsLinkLocal() bool

	String() string

	family() AddressFamily
}

// IPv4Address is a raw IPv4 address in network byte order.
type IPv4Address [4]byte

// IPv4AddressFromIP converts a net.IP to an IPv4Address.
// Returns false for nil and for addresses that are not IPv4.
func IPv4AddressFromIP(ip net.IP) (IPv4Address, bool) {
	v4 := ip.To4()
	if v4 == nil {
		return IPv4Address{}, false
	}
	var a IPv4Address
	copy(a[:], v4)
	return a, true
}

// IPv4AddressFromAddr converts a netip.Addr to an IPv4Address.
func IPv4AddressFromAddr(addr netip.Addr) (IPv4Address, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return IPv4Address{}, false
	}
	return IPv4Address(addr.Unmap().As4()), true
}

// IsWildcard reports whether the address is 0.0.0.0.
func (a IPv4Address) IsWildcard() bool {
	return a == IPv4Address{}
}

// IsLoopback reports whether the address is in 127.0.0.0/8.
func (a IPv4Address) IsLoopback() bool {
	return a[0] == 127
}

// IsMulticast reports whether the address is in 224.0.0.0/4.
func (a IPv4Address) IsMulticast() bool {
	return a[0]&0xf0 == 0xe0
}

// IsLinkLocal reports whether the address is in 169.254.0.0/16.
func (a IPv4Address) IsLinkLocal() bool {
	return a[0] == 169 && a[1] == 254
}

// IP returns the address as a net.IP.
func (a IPv4Address) IP() net.IP {
	return net.IPv4(a[0], a[1], a[2], a[3])
}

// Addr returns the address as a netip.Addr.
func (a IPv4Address) Addr() netip.Addr {
	return netip.AddrFrom4(a)
}

func (a IPv4Address) String() string {
	return a.Addr().String()
}

func (a IPv4Address) family() AddressFamily { return AFInet }

// IPv6Address is a raw IPv6 address in network byte order.
type IPv6Address [16]byte

// IPv6AddressFromIP converts a net.IP to an IPv6Address.
// Returns false for nil and for IPv4 (including IPv4-mapped) addresses.
func IPv6AddressFromIP(ip net.IP) (IPv6Address, bool) {
	if ip.To4() != nil || len(ip) != net.IPv6len {
		return IPv6Address{}, false
	}
	var a IPv6Address
	copy(a[:], ip)
	return a, true
}

// IPv6AddressFromAddr converts a netip.Addr to an IPv6Address.
func IPv6AddressFromAddr(addr netip.Addr) (IPv6Address, bool) {
	if !addr.Is6() || addr.Is4In6() {
		return IPv6Address{}, false
	}
	return IPv6Address(addr.As16()), true
}

// IsWildcard reports whether the address is ::.
func (a IPv6Address) IsWildcard() bool {
	return a == IPv6Address{}
}

// IsLoopback reports whether the address is ::1.
func (a IPv6Address) IsLoopback() bool {
	return a == IPv6Address{15: 1}
}

// IsMulticast reports whether the address is in ff00::/8.
func (a IPv6Address) IsMulticast() bool {
	return a[0] == 0xff
}

// IsLinkLocal reports whether the address is in fe80::/10.
func (a IPv6Address) IsLinkLocal() bool {
	return a[0] == 0xfe && a[1]&0xc0 == 0x80
}

// IP returns the address as a net.IP.
func (a IPv6Address) IP() net.IP {
	ip := make(net.IP, net.IPv6len)
	copy(ip, a[:])
	return ip
}

// Addr returns the address as a netip.Addr.
func (a IPv6Address) Addr() netip.Addr {
	return netip.AddrFrom16(a)
}

func (a IPv6Address) String() string {
	return a.Addr().String()
}

func (a IPv6Address) family() AddressFamily { return AFInet6 }
