package sockets

import (
	"golang.org/x/sys/unix"
)

// AddressFamily identifies a socket address family (AF_* constant).
type AddressFamily int32

const (
	// AFUnix is the local (unix domain) address family.
	AFUnix AddressFamily = unix.AF_UNIX
	// AFInet is the IPv4 address family.
	AFInet AddressFamily = unix.AF_INET
	// AFInet6 is the IPv6 address family.
	AFInet6 AddressFamily = unix.AF_INET6
	// AFLink is the link-layer address family (AF_LINK on the BSDs,
	// AF_PACKET on Linux).
	AFLink AddressFamily = rawFamilyLink
)

// AddressFamilyFromRaw maps an OS integer to a known address family.
// Unrecognized values yield false.
func AddressFamilyFromRaw(raw int32) (AddressFamily, bool) {
	switch AddressFamily(raw) {
	case AFUnix, AFInet, AFInet6, AFLink:
		return AddressFamily(raw), true
	}
	return 0, false
}

// Raw returns the OS integer for the family.
func (f AddressFamily) Raw() int32 { return int32(f) }

func (f AddressFamily) String() string {
	switch f {
	case AFUnix:
		return "AF_UNIX"
	case AFInet:
		return "AF_INET"
	case AFInet6:
		return "AF_INET6"
	case AFLink:
		return rawFamilyLinkName
	}
	return "AF_UNKNOWN"
}

// SocketType identifies a socket semantics type (SOCK_* constant).
type SocketType int32

const (
	// SockStream is a sequenced, reliable byte stream.
	SockStream SocketType = unix.SOCK_STREAM
	// SockDatagram is a connectionless, unreliable datagram socket.
	SockDatagram SocketType = unix.SOCK_DGRAM
	// SockRaw provides raw network protocol access.
	SockRaw SocketType = unix.SOCK_RAW
	// SockSeqpacket is a sequenced, reliable datagram socket.
	SockSeqpacket SocketType = unix.SOCK_SEQPACKET
)

// SocketTypeFromRaw maps an OS integer to a known socket type.
// Unrecognized values yield false.
func SocketTypeFromRaw(raw int32) (SocketType, bool) {
	switch SocketType(raw) {
	case SockStream, SockDatagram, SockRaw, SockSeqpacket:
		return SocketType(raw), true
	}
	return 0, false
}

// Raw returns the OS integer for the socket type.
func (t SocketType) Raw() int32 { return int32(t) }

func (t SocketType) String() string {
	switch t {
	case SockStream:
		return "SOCK_STREAM"
	case SockDatagram:
		return "SOCK_DGRAM"
	case SockRaw:
		return "SOCK_RAW"
	case SockSeqpacket:
		return "SOCK_SEQPACKET"
	}
	return "SOCK_UNKNOWN"
}

// IPProtocol identifies an IP protocol number (IPPROTO_* constant).
type IPProtocol int32

const (
	// ProtoTCP is the Transmission Control Protocol.
	ProtoTCP IPProtocol = unix.IPPROTO_TCP
	// ProtoUDP is the User Datagram Protocol.
	ProtoUDP IPProtocol = unix.IPPROTO_UDP
	// ProtoICMP is the Internet Control Message Protocol for IPv4.
	ProtoICMP IPProtocol = unix.IPPROTO_ICMP
	// ProtoICMPv6 is the Internet Control Message Protocol for IPv6.
	ProtoICMPv6 IPProtocol = unix.IPPROTO_ICMPV6
)

// IPProtocolFromRaw maps an OS integer to a known IP protocol.
// Unrecognized values yield false.
func IPProtocolFromRaw(raw int32) (IPProtocol, bool) {
	switch IPProtocol(raw) {
	case ProtoTCP, ProtoUDP, ProtoICMP, ProtoICMPv6:
		return IPProtocol(raw), true
	}
	return 0, false
}

// Raw returns the OS integer for the protocol.
func (p IPProtocol) Raw() int32 { return int32(p) }

func (p IPProtocol) String() string {
	switch p {
	case ProtoTCP:
		return "IPPROTO_TCP"
	case ProtoUDP:
		return "IPPROTO_UDP"
	case ProtoICMP:
		return "IPPROTO_ICMP"
	case ProtoICMPv6:
		return "IPPROTO_ICMPV6"
	}
	return "IPPROTO_UNKNOWN"
}
