//go:build linux

package sockets

import "golang.org/x/sys/unix"

// Linux has no AF_LINK; device-level addresses travel over AF_PACKET
// (sockaddr_ll).
const (
	rawFamilyLink     = unix.AF_PACKET
	rawFamilyLinkName = "AF_PACKET"
)
