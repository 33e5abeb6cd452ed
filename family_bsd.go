//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package sockets

import "golang.org/x/sys/unix"

// The BSDs expose link-layer interface addresses through AF_LINK
// (sockaddr_dl, RFC-less but stable since 4.4BSD).
const (
	rawFamilyLink     = unix.AF_LINK
	rawFamilyLinkName = "AF_LINK"
)
