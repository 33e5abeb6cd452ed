package sockets

import (
	"golang.org/x/sys/unix"
)

// storageSize is sizeof(struct sockaddr_storage) on every supported
// platform.
const storageSize = 128

// Storage is a generic address container: a fixed-capacity buffer large
// enough for any sockaddr variant, plus the number of bytes its producer
// claims are valid. The bytes are never reinterpreted until a narrowing
// accessor has checked the family tag and the declared-length invariants
// of the requested variant.
type Storage struct {
	space [storageSize]byte
	size  int
}

// StorageFromBytes copies an opaque sockaddr buffer into a Storage.
// Returns false for an empty buffer or one larger than sockaddr_storage.
// No validation beyond capacity happens here; the bytes are vetted when a
// narrowing accessor is called.
func StorageFromBytes(b []byte) (Storage, bool) {
	if len(b) == 0 || len(b) > storageSize {
		return Storage{}, false
	}
	var s Storage
	copy(s.space[:], b)
	s.size = len(b)
	return s, true
}

// Len returns the number of valid bytes in the container.
func (s Storage) Len() int { return s.size }

// Bytes returns a copy of the valid bytes.
func (s Storage) Bytes() []byte {
	b := make([]byte, s.size)
	copy(b, s.space[:s.size])
	return b
}

// Family returns the address family claimed by the stored bytes.
// Returns false when the tag is not a recognized family.
func (s Storage) Family() (AddressFamily, bool) {
	if s.size == 0 {
		return 0, false
	}
	return AddressFamilyFromRaw(s.rawFamily())
}

// IPv4 narrows the container to an IPv4 endpoint. The family tag must be
// AF_INET and the declared length must fall between the end of the
// address field and the full sockaddr_in size; short-but-covering lengths
// are tolerated and the decoded endpoint is re-normalized to the
// canonical structure.
func (s Storage) IPv4() (IPv4Endpoint, bool) {
	return s.ipv4()
}

// IPv6 narrows the container to an IPv6 endpoint. Unlike IPv4, the
// declared length must match sockaddr_in6 exactly.
func (s Storage) IPv6() (IPv6Endpoint, bool) {
	return s.ipv6()
}

// LinkLayer narrows the container to a link-layer address. The declared
// length must cover the fixed header plus the variable-length trailer.
func (s Storage) LinkLayer() (LinkLayerAddress, bool) {
	return s.linkLayer()
}

func (s *Storage) sockaddr() (unix.Sockaddr, error) {
	fam, ok := s.Family()
	if !ok {
		return nil, ErrMalformedAddress
	}
	switch fam {
	case AFInet:
		if e, ok := s.ipv4(); ok {
			return e.sockaddr()
		}
	case AFInet6:
		if e, ok := s.ipv6(); ok {
			return e.sockaddr()
		}
	case AFLink:
		if l, ok := s.linkLayer(); ok {
			return l.sockaddr()
		}
	}
	return nil, ErrMalformedAddress
}

// Storage serializes the endpoint into a generic container with the
// canonical length and family tag for sockaddr_in.
func (e IPv4Endpoint) Storage() Storage { return encodeInet4(e) }

// Storage serializes the endpoint into a generic container with the
// canonical length and family tag for sockaddr_in6.
func (e IPv6Endpoint) Storage() Storage { return encodeInet6(e) }

// Storage serializes the address into a generic container. Returns false
// when the name and hardware address cannot fit the platform structure.
func (l LinkLayerAddress) Storage() (Storage, bool) { return encodeLink(l) }

// storageFromSockaddr rebuilds a generic container from an address the OS
// handed back (getsockname, getpeername, recvfrom).
func storageFromSockaddr(sa unix.Sockaddr) (Storage, bool) {
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		return IPv4Endpoint{Addr: sa.Addr, Port: uint16(sa.Port)}.Storage(), true
	case *unix.SockaddrInet6:
		e := IPv6Endpoint{Addr: sa.Addr, Port: uint16(sa.Port), Scope: sa.ZoneId}
		return e.Storage(), true
	case nil:
		return Storage{}, false
	}
	return linkStorageFromSockaddr(sa)
}
