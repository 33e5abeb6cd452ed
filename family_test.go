package sockets

import "testing"

func TestAddressFamilyRoundTrip(t *testing.T) {
	for _, f := range []AddressFamily{AFUnix, AFInet, AFInet6, AFLink} {
		got, ok := AddressFamilyFromRaw(f.Raw())
		if !ok || got != f {
			t.Errorf("AddressFamilyFromRaw(%d) = %v, %v; want %v, true", f.Raw(), got, ok, f)
		}
	}
}

func TestSocketTypeRoundTrip(t *testing.T) {
	for _, typ := range []SocketType{SockStream, SockDatagram, SockRaw, SockSeqpacket} {
		got, ok := SocketTypeFromRaw(typ.Raw())
		if !ok || got != typ {
			t.Errorf("SocketTypeFromRaw(%d) = %v, %v; want %v, true", typ.Raw(), got, ok, typ)
		}
	}
}

func TestIPProtocolRoundTrip(t *testing.T) {
	for _, p := range []IPProtocol{ProtoTCP, ProtoUDP, ProtoICMP, ProtoICMPv6} {
		got, ok := IPProtocolFromRaw(p.Raw())
		if !ok || got != p {
			t.Errorf("IPProtocolFromRaw(%d) = %v, %v; want %v, true", p.Raw(), got, ok, p)
		}
	}
}

func TestUnrecognizedRawValues(t *testing.T) {
	if _, ok := AddressFamilyFromRaw(-1); ok {
		t.Error("AddressFamilyFromRaw(-1) accepted")
	}
	if _, ok := AddressFamilyFromRaw(0x7fff); ok {
		t.Error("AddressFamilyFromRaw(0x7fff) accepted")
	}
	if _, ok := SocketTypeFromRaw(0); ok {
		t.Error("SocketTypeFromRaw(0) accepted")
	}
	// IPPROTO_IP is 0 and deliberately outside the closed set.
	if _, ok := IPProtocolFromRaw(0); ok {
		t.Error("IPProtocolFromRaw(0) accepted")
	}
	if _, ok := IPProtocolFromRaw(255); ok {
		t.Error("IPProtocolFromRaw(255) accepted")
	}
}

func TestConstantStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{AFInet.String(), "AF_INET"},
		{AFInet6.String(), "AF_INET6"},
		{AFUnix.String(), "AF_UNIX"},
		{SockDatagram.String(), "SOCK_DGRAM"},
		{ProtoUDP.String(), "IPPROTO_UDP"},
		{AddressFamily(-1).String(), "AF_UNKNOWN"},
		{SocketType(-1).String(), "SOCK_UNKNOWN"},
		{IPProtocol(-1).String(), "IPPROTO_UNKNOWN"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
