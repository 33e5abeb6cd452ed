//go:build linux

package sockets

import (
	"testing"

	"golang.org/x/sys/unix"
)

// setDeclaredLen adjusts the byte count of the stored record; on Linux
// the supplied socklen plays the declared-length role.
func setDeclaredLen(t *testing.T, s Storage, n int) Storage {
	t.Helper()
	b := s.Bytes()
	if n <= len(b) {
		b = b[:n]
	} else {
		b = append(b, make([]byte, n-len(b))...)
	}
	out, ok := StorageFromBytes(b)
	if !ok {
		t.Fatalf("StorageFromBytes failed for %d bytes", len(b))
	}
	return out
}

func TestLinkLayerTruncatedRecord(t *testing.T) {
	l := LinkLayerAddress{
		Index:        2,
		Type:         unix.ARPHRD_ETHER,
		HardwareAddr: []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
	}
	st, ok := l.Storage()
	if !ok {
		t.Fatal("encoding failed")
	}
	short := setDeclaredLen(t, st, unix.SizeofSockaddrLinklayer-1)
	if _, ok := short.LinkLayer(); ok {
		t.Error("narrowing accepted a truncated sockaddr_ll")
	}
}

func TestLinkLayerHardwareAddressTooLong(t *testing.T) {
	l := LinkLayerAddress{
		Index:        2,
		HardwareAddr: make([]byte, 9), // sockaddr_ll holds at most 8
	}
	if _, ok := l.Storage(); ok {
		t.Error("encoding accepted an oversized hardware address")
	}
}
