//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package sockets

import (
	"net"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	// inet4MinLen is the smallest declared length that still covers
	// sin_addr (offset 4, four bytes). Some BSD variants report
	// sockaddr_in records shorter than the full structure.
	inet4MinLen = 8

	// linkHeaderLen is the fixed sockaddr_dl prefix through sdl_slen;
	// the name, hardware address, and selector trail it.
	linkHeaderLen = 8

	// sdlDataSize is the nominal sdl_data capacity in sockaddr_dl.
	sdlDataSize = 12
)

// rawFamily reads the sa_family byte; on the BSDs it follows sa_len.
func (s *Storage) rawFamily() int32 { return int32(s.space[1]) }

// declaredLen reads the sa_len byte the producer stored in the record.
// A record claiming more bytes than the producer actually supplied is
// never trusted.
func (s *Storage) declaredLen() int {
	l := int(s.space[0])
	if l > s.size {
		return 0
	}
	return l
}

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
	sa := (*unix.RawSockaddrDatalink)(unsafe.Pointer(&s.space[0]))
	need := linkHeaderLen + int(sa.Nlen) + int(sa.Alen) + int(sa.Slen)
	if need > storageSize || s.declaredLen() < need {
		return LinkLayerAddress{}, false
	}
	data := s.space[linkHeaderLen:need]
	hw := make(net.HardwareAddr, sa.Alen)
	copy(hw, data[int(sa.Nlen):int(sa.Nlen)+int(sa.Alen)])
	return LinkLayerAddress{
		Index:        int(sa.Index),
		Type:         int(sa.Type),
		Name:         string(data[:sa.Nlen]),
		HardwareAddr: hw,
	}, true
}

func encodeInet4(e IPv4Endpoint) Storage {
	var s Storage
	sa := (*unix.RawSockaddrInet4)(unsafe.Pointer(&s.space[0]))
	sa.Len = unix.SizeofSockaddrInet4
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
	sa.Len = unix.SizeofSockaddrInet6
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
	n, a := len(l.Name), len(l.HardwareAddr)
	total := linkHeaderLen + n + a
	if total > storageSize {
		return Storage{}, false
	}
	var s Storage
	sa := (*unix.RawSockaddrDatalink)(unsafe.Pointer(&s.space[0]))
	sa.Len = uint8(total)
	sa.Family = unix.AF_LINK
	sa.Index = uint16(l.Index)
	sa.Type = uint8(l.Type)
	sa.Nlen = uint8(n)
	sa.Alen = uint8(a)
	copy(s.space[linkHeaderLen:], l.Name)
	copy(s.space[linkHeaderLen+n:], l.HardwareAddr)
	s.size = total
	return s, true
}

func linkSockaddr(l LinkLayerAddress) (unix.Sockaddr, error) {
	n, a := len(l.Name), len(l.HardwareAddr)
	if n+a > sdlDataSize {
		return nil, ErrMalformedAddress
	}
	sa := &unix.SockaddrDatalink{
		Len:    uint8(linkHeaderLen + n + a),
		Family: unix.AF_LINK,
		Index:  uint16(l.Index),
		Type:   uint8(l.Type),
		Nlen:   uint8(n),
		Alen:   uint8(a),
	}
	for i := 0; i < n; i++ {
		sa.Data[i] = int8(l.Name[i])
	}
	for i := 0; i < a; i++ {
		sa.Data[n+i] = int8(l.HardwareAddr[i])
	}
	return sa, nil
}

func linkStorageFromSockaddr(sa unix.Sockaddr) (Storage, bool) {
	dl, ok := sa.(*unix.SockaddrDatalink)
	if !ok {
		return Storage{}, false
	}
	n, a := int(dl.Nlen), int(dl.Alen)
	if n+a > sdlDataSize {
		return Storage{}, false
	}
	name := make([]byte, n)
	for i := 0; i < n; i++ {
		name[i] = byte(dl.Data[i])
	}
	hw := make(net.HardwareAddr, a)
	for i := 0; i < a; i++ {
		hw[i] = byte(dl.Data[n+i])
	}
	return encodeLink(LinkLayerAddress{
		Index:        int(dl.Index),
		Type:         int(dl.Type),
		Name:         string(name),
		HardwareAddr: hw,
	})
}
