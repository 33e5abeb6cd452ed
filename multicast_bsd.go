//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package sockets

import (
	"net"

	"golang.org/x/sys/unix"
)

// setInet4Membership joins or leaves an IPv4 group. The BSD ip_mreq
// selects the interface by one of its IPv4 addresses rather than by
// index, so a nonzero index is resolved through the interface table
// first.
func setInet4Membership(fd int, group IPv4Address, ifindex int, join bool) error {
	opt := unix.IP_DROP_MEMBERSHIP
	if join {
		opt = unix.IP_ADD_MEMBERSHIP
	}
	mreq := &unix.IPMreq{}
	mreq.Multiaddr = group
	if ifindex != 0 {
		addr, err := inet4InterfaceAddr(ifindex)
		if err != nil {
			return err
		}
		mreq.Interface = addr
	}
	return unix.SetsockoptIPMreq(fd, unix.IPPROTO_IP, opt, mreq)
}

// inet4InterfaceAddr finds an IPv4 address assigned to the interface with
// the given index.
func inet4InterfaceAddr(ifindex int) (IPv4Address, error) {
	ifi, err := net.InterfaceByIndex(ifindex)
	if err != nil {
		return IPv4Address{}, err
	}
	addrs, err := ifi.Addrs()
	if err != nil {
		return IPv4Address{}, err
	}
	for _, a := range addrs {
		var ip net.IP
		switch a := a.(type) {
		case *net.IPNet:
			ip = a.IP
		case *net.IPAddr:
			ip = a.IP
		}
		if v4, ok := IPv4AddressFromIP(ip); ok {
			return v4, nil
		}
	}
	return IPv4Address{}, unix.EADDRNOTAVAIL
}
