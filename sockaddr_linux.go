//go:build linux

package sockets

import (
	"net"
	"unsafe"

	"golang.org/x/sys/unix"
)

// inet4MinLen is the smallest byte count that still covers sin_addr
// (offset 4, four bytes).
const inet4MinLen = 8

// rawFamily reads the sa_family uint16 at the head of the record.
func (s *Storage) rawFamily() int32 {
	return int32(*(*uint16)(unsafe.Pointer(&s.space[0])))
}

// declaredLen is the byte count supplied with the record. Linux sockaddrs
// carry no sa_len field, so the socklen the producer reported plays the
// role the sa_len byte plays on the BSDs.
func (s *Storage) declaredLen() int { return s.size }

func (s *Storage) ipv4() (IPv4Endpoint, bool) {
	if AddressFamily(s.rawFamily()) != AFInet {
		return IPv4Endpoint{}, false
	}
	if l := s.declaredLen(); l < inet4MinLen || l > unix.SizeofSockaddrInet4 {
		return IPv4Endpoint{}, false
	}
	sa := (*unix.RawSockaddrInet4)(unsafe.Pointer(&s.space[0]))
	p := (*[2]byte)(unsafe.Pointer(&sa.Port))
	// Copying into the typed endpoint re-normalizes the record to the
	// canonical sockaddr_in size.
	return IPv4Endpoint{
		Addr: sa.Addr,
		Port: uint16(p[0])<<8 | uint16(p[1]),
	}, true
}

func (s *Storage) ipv6() (IPv6Endpoint, bool) {
	if AddressFamily(s.rawFamily()) != AFInet6 {
		return IPv6Endpoint{}, false
	}
	if s.declaredLen() != unix.SizeofSockaddrInet6 {
		return IPv6Endpoint{}, false
	}
	sa := (*unix.RawSockaddrInet6)(unsafe.Pointer(&s.space[0]))
	p := (*[2]byte)(unsafe.Pointer(&sa.Port))
	return IPv6Endpoint{
		Addr:     sa.Addr,
		Port:     uint16(p[0])<<8 | uint16(p[1]),
		FlowInfo: sa.Flowinfo,
		Scope:    sa.Scope_id,
	}, true
}

func (s *Storage) linkLayer() (LinkLayerAddress, bool) {
	if AddressFamily(s.rawFamily()) != AFLink {
		return LinkLayerAddress{}, false
	}
	if s.declaredLen() < unix.SizeofSockaddrLinklayer {
		return LinkLayerAddress{}, false
	}
	sa := (*unix.RawSockaddrLinklayer)(unsafe.Pointer(&s.space[0]))
	if int(sa.Halen) > len(sa.Addr) {
		return LinkLayerAddress{}, false
	}
	hw := make(net.HardwareAddr, sa.Halen)
	copy(hw, sa.Addr[:sa.Halen])
	return LinkLayerAddress{
		Index:        int(sa.Ifindex),
		Type:         int(sa.Hatype),
		HardwareAddr: hw,
	}, true
}

func encodeInet4(e IPv4Endpoint) Storage {
	var s Storage
	sa := (*unix.RawSockaddrInet4)(unsafe.Pointer(&s.space[0]))
	sa.Family = unix.AF_INET
	p := (*[2]byte)(unsafe.Pointer(&sa.Port))
	p[0], p[1] = byte(e.Port>>8), byte(e.Port)
	sa.Addr = e.Addr
	s.size = unix.SizeofSockaddrInet4
	return s
}

func encodeInet6(e IPv6Endpoint) Storage {
	var s Storage
	sa := (*unix.RawSockaddrInet6)(unsafe.Pointer(&s.space[0]))
	sa.Family = unix.AF_INET6
	p := (*[2]byte)(unsafe.Pointer(&sa.Port))
	p[0], p[1] = byte(e.Port>>8), byte(e.Port)
	sa.Flowinfo = e.FlowInfo
	sa.Addr = e.Addr
	sa.Scope_id = e.Scope
	s.size = unix.SizeofSockaddrInet6
	return s
}

func encodeLink(l LinkLayerAddress) (Storage, bool) {
	var s Storage
	sa := (*unix.RawSockaddrLinklayer)(unsafe.Pointer(&s.space[0]))
	if len(l.HardwareAddr) > len(sa.Addr) {
		return Storage{}, false
	}
	sa.Family = unix.AF_PACKET
	sa.Ifindex = int32(l.Index)
	sa.Hatype = uint16(l.Type)
	sa.Halen = uint8(len(l.HardwareAddr))
	copy(sa.Addr[:], l.HardwareAddr)
	s.size = unix.SizeofSockaddrLinklayer
	return s, true
}

func linkSockaddr(l LinkLayerAddress) (unix.Sockaddr, error) {
	sa := &unix.SockaddrLinklayer{
		Ifindex: l.Index,
		Hatype:  uint16(l.Type),
		Halen:   uint8(len(l.HardwareAddr)),
	}
	if len(l.HardwareAddr) > len(sa.Addr) {
		return nil, ErrMalformedAddress
	}
	copy(sa.Addr[:], l.HardwareAddr)
	return sa, nil
}

func linkStorageFromSockaddr(sa unix.Sockaddr) (Storage, bool) {
	ll, ok := sa.(*unix.SockaddrLinklayer)
	if !ok {
		return Storage{}, false
	}
	n := int(ll.Halen)
	if n > len(ll.Addr) {
		return Storage{}, false
	}
	hw := make(net.HardwareAddr, n)
	copy(hw, ll.Addr[:n])
	return encodeLink(LinkLayerAddress{
		Index:        ll.Ifindex,
		Type:         int(ll.Hatype),
		HardwareAddr: hw,
	})
}
