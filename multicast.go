package sockets

import (
	"golang.org/x/sys/unix"
)

// JoinGroup subscribes the socket to a multicast group, on the interface
// with the given index (0 means the OS default). The address is checked
// before any system call: a non-multicast address fails with
// ErrNotMulticast. The IPv4 or IPv6 membership option is selected from
// the address family.
func (s *Socket) JoinGroup(group IP, ifindex int) error {
	return opError("join-group", s.setMembership(group, ifindex, true))
}

// LeaveGroup unsubscribes the socket from a multicast group joined with
// JoinGroup. Validation mirrors JoinGroup.
func (s *Socket) LeaveGroup(group IP, ifindex int) error {
	return opError("leave-group", s.setMembership(group, ifindex, false))
}

func (s *Socket) setMembership(group IP, ifindex int, join bool) error {
	if group == nil || !group.IsMulticast() {
		return ErrNotMulticast
	}
	switch g := group.(type) {
	case IPv4Address:
		return setInet4Membership(s.fd, g, ifindex, join)
	case IPv6Address:
		opt := unix.IPV6_LEAVE_GROUP
		if join {
			opt = unix.IPV6_JOIN_GROUP
		}
		mreq := &unix.IPv6Mreq{Interface: uint32(ifindex)}
		mreq.Multiaddr = g
		return unix.SetsockoptIPv6Mreq(s.fd, unix.IPPROTO_IPV6, opt, mreq)
	}
	return unix.EAFNOSUPPORT
}
