//go:build linux

package sockets

import "golang.org/x/sys/unix"

// setInet4Membership joins or leaves an IPv4 group. Linux ip_mreqn
// carries the interface index directly.
func setInet4Membership(fd int, group IPv4Address, ifindex int, join bool) error {
	opt := unix.IP_DROP_MEMBERSHIP
	if join {
		opt = unix.IP_ADD_MEMBERSHIP
	}
	mreq := &unix.IPMreqn{Ifindex: int32(ifindex)}
	mreq.Multiaddr = group
	return unix.SetsockoptIPMreqn(fd, unix.IPPROTO_IP, opt, mreq)
}
