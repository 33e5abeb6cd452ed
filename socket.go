package sockets

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Level selects the layer a socket option lives at.
type Level int

const (
	// LevelSocket is SOL_SOCKET, the socket layer itself.
	LevelSocket Level = unix.SOL_SOCKET
	// LevelIP is IPPROTO_IP.
	LevelIP Level = unix.IPPROTO_IP
	// LevelIPv6 is IPPROTO_IPV6.
	LevelIPv6 Level = unix.IPPROTO_IPV6
	// LevelTCP is IPPROTO_TCP.
	LevelTCP Level = unix.IPPROTO_TCP
	// LevelUDP is IPPROTO_UDP.
	LevelUDP Level = unix.IPPROTO_UDP
)

// invalidFD marks a closed socket.
const invalidFD = -1

// Socket is the exclusive owner of one native descriptor. It is created
// open (New, FromDescriptor, Dup) and releases the descriptor exactly
// once, on the first Close; a finalizer backstops leaked handles the way
// os.File does. A Socket must not be mutated concurrently without
// caller-supplied synchronization.
type Socket struct {
	fd int
}

func newSocket(fd int) *Socket {
	s := &Socket{fd: fd}
	runtime.SetFinalizer(s, (*Socket).Close)
	return s
}

// New creates a fresh socket for the given family, type, and protocol.
// A zero socket type defaults to datagram; a zero protocol lets the OS
// pick the family default.
func New(family AddressFamily, typ SocketType, proto IPProtocol) (*Socket, error) {
	if typ == 0 {
		typ = SockDatagram
	}
	fd, err := unix.Socket(int(family.Raw()), int(typ.Raw()), int(proto.Raw()))
	if err != nil {
		return nil, opError("socket", err)
	}
	unix.CloseOnExec(fd)
	return newSocket(fd), nil
}

// FromDescriptor duplicates a donor descriptor into an independently
// owned Socket. The donor stays open and still belongs to the caller.
func FromDescriptor(donor int) (*Socket, error) {
	fd, err := unix.Dup(donor)
	if err != nil {
		return nil, opError("dup", err)
	}
	unix.CloseOnExec(fd)
	return newSocket(fd), nil
}

// Dup duplicates the socket into a new handle with its own descriptor and
// an independent lifetime. Both handles reference the same underlying
// socket.
func (s *Socket) Dup() (*Socket, error) {
	return FromDescriptor(s.fd)
}

// Descriptor exposes the raw descriptor for interop with code that needs
// it (select loops, net.FilePacketConn). Ownership stays with the Socket.
func (s *Socket) Descriptor() int { return s.fd }

// Close releases the descriptor. Only the first call closes; later calls
// return nil.
func (s *Socket) Close() error {
	if s.fd == invalidFD {
		return nil
	}
	fd := s.fd
	s.fd = invalidFD
	runtime.SetFinalizer(s, nil)
	return opError("close", unix.Close(fd))
}

// Bind assigns the local address. The address is serialized using its
// declared length; a container that fails well-formedness surfaces
// ErrMalformedAddress without touching the socket.
func (s *Socket) Bind(addr Sockaddr) error {
	sa, err := addr.sockaddr()
	if err != nil {
		return opError("bind", err)
	}
	return opError("bind", unix.Bind(s.fd, sa))
}

// Connect sets the peer address (for datagram sockets) or initiates a
// connection (for stream sockets). No retry: would-block and in-progress
// conditions surface to the caller.
func (s *Socket) Connect(addr Sockaddr) error {
	sa, err := addr.sockaddr()
	if err != nil {
		return opError("connect", err)
	}
	return opError("connect", unix.Connect(s.fd, sa))
}

// Send hands a payload to the OS and returns how many bytes it accepted.
// The count may be short; callers loop when full delivery matters.
func (s *Socket) Send(p []byte) (int, error) {
	n, err := unix.SendmsgN(s.fd, p, nil, nil, 0)
	if err != nil {
		return 0, opError("send", err)
	}
	return n, nil
}

// SendTo sends a payload to the given destination.
func (s *Socket) SendTo(p []byte, addr Sockaddr) (int, error) {
	sa, err := addr.sockaddr()
	if err != nil {
		return 0, opError("sendto", err)
	}
	n, err := unix.SendmsgN(s.fd, p, nil, sa, 0)
	if err != nil {
		return 0, opError("sendto", err)
	}
	return n, nil
}

// Recv receives into p and returns the byte count.
func (s *Socket) Recv(p []byte) (int, error) {
	n, _, err := unix.Recvfrom(s.fd, p, 0)
	if err != nil {
		return 0, opError("recv", err)
	}
	return n, nil
}

// RecvFrom receives into p and also reports the sender's address.
func (s *Socket) RecvFrom(p []byte) (int, Storage, error) {
	n, sa, err := unix.Recvfrom(s.fd, p, 0)
	if err != nil {
		return 0, Storage{}, opError("recvfrom", err)
	}
	// Connected stream sockets may omit the source address.
	st, _ := storageFromSockaddr(sa)
	return n, st, nil
}

// LocalAddress returns the address the OS has bound the socket to.
func (s *Socket) LocalAddress() (Storage, error) {
	sa, err := unix.Getsockname(s.fd)
	if err != nil {
		return Storage{}, opError("getsockname", err)
	}
	st, ok := storageFromSockaddr(sa)
	if !ok {
		return Storage{}, opError("getsockname", ErrMalformedAddress)
	}
	return st, nil
}

// RemoteAddress returns the peer address, failing when the socket is not
// connected.
func (s *Socket) RemoteAddress() (Storage, error) {
	sa, err := unix.Getpeername(s.fd)
	if err != nil {
		return Storage{}, opError("getpeername", err)
	}
	st, ok := storageFromSockaddr(sa)
	if !ok {
		return Storage{}, opError("getpeername", ErrMalformedAddress)
	}
	return st, nil
}

// SetBlocking toggles the descriptor's O_NONBLOCK flag.
func (s *Socket) SetBlocking(blocking bool) error {
	return opError("fcntl", unix.SetNonblock(s.fd, !blocking))
}

// Blocking reports whether the descriptor is in blocking mode.
func (s *Socket) Blocking() (bool, error) {
	flags, err := unix.FcntlInt(uintptr(s.fd), unix.F_GETFL, 0)
	if err != nil {
		return false, opError("fcntl", err)
	}
	return flags&unix.O_NONBLOCK == 0, nil
}

// Option reads an integer socket option.
func (s *Socket) Option(level Level, opt int) (int, error) {
	v, err := unix.GetsockoptInt(s.fd, int(level), opt)
	if err != nil {
		return 0, opError("getsockopt", err)
	}
	return v, nil
}

// SetOption writes an integer socket option.
func (s *Socket) SetOption(level Level, opt, value int) error {
	return opError("setsockopt", unix.SetsockoptInt(s.fd, int(level), opt, value))
}

// BoolOption reads a boolean socket option.
func (s *Socket) BoolOption(level Level, opt int) (bool, error) {
	v, err := s.Option(level, opt)
	return v != 0, err
}

// SetBoolOption writes a boolean socket option.
func (s *Socket) SetBoolOption(level Level, opt int, enabled bool) error {
	v := 0
	if enabled {
		v = 1
	}
	return s.SetOption(level, opt, v)
}
