package sockets

import (
	"bytes"
	"testing"
)

func TestIPv4EndpointStorageRoundTrip(t *testing.T) {
	e := NewIPv4Endpoint(IPv4Address{192, 0, 2, 7}, 4242)
	st := e.Storage()

	got, ok := st.IPv4()
	if !ok {
		t.Fatal("narrowing to IPv4 failed on a well-formed record")
	}
	if got != e {
		t.Errorf("round trip = %v, want %v", got, e)
	}
	if fam, ok := st.Family(); !ok || fam != AFInet {
		t.Errorf("Family() = %v, %v; want AFInet, true", fam, ok)
	}
}

func TestIPv6EndpointStorageRoundTrip(t *testing.T) {
	e := IPv6Endpoint{
		Addr:     mustIPv6(t, "2001:db8::42"),
		Port:     53,
		FlowInfo: 0x12345,
		Scope:    7,
	}
	st := e.Storage()

	got, ok := st.IPv6()
	if !ok {
		t.Fatal("narrowing to IPv6 failed on a well-formed record")
	}
	if got != e {
		t.Errorf("round trip = %v, want %v", got, e)
	}
}

func TestNarrowingCrossFamily(t *testing.T) {
	v4 := NewIPv4Endpoint(IPv4Address{127, 0, 0, 1}, 80).Storage()
	if _, ok := v4.IPv6(); ok {
		t.Error("IPv4 record narrowed to IPv6")
	}
	if _, ok := v4.LinkLayer(); ok {
		t.Error("IPv4 record narrowed to link-layer")
	}

	v6 := NewIPv6Endpoint(mustIPv6(t, "::1"), 80).Storage()
	if _, ok := v6.IPv4(); ok {
		t.Error("IPv6 record narrowed to IPv4")
	}
	if _, ok := v6.LinkLayer(); ok {
		t.Error("IPv6 record narrowed to link-layer")
	}
}

// The IPv4 narrowing tolerates records whose declared length is shorter
// than sockaddr_in (as some systems report) and re-normalizes them, while
// the IPv6 narrowing demands an exact match. The asymmetry is deliberate;
// this test pins it down.
func TestNarrowingDeclaredLengthAsymmetry(t *testing.T) {
	e := NewIPv4Endpoint(IPv4Address{192, 0, 2, 7}, 4242)

	short := setDeclaredLen(t, e.Storage(), 12)
	got, ok := short.IPv4()
	if !ok {
		t.Fatal("IPv4 narrowing rejected a short-but-covering declared length")
	}
	if got != e {
		t.Errorf("re-normalized endpoint = %v, want %v", got, e)
	}

	tooShort := setDeclaredLen(t, e.Storage(), 7)
	if _, ok := tooShort.IPv4(); ok {
		t.Error("IPv4 narrowing accepted a declared length that cuts the address field")
	}

	tooLong := setDeclaredLen(t, e.Storage(), 17)
	if _, ok := tooLong.IPv4(); ok {
		t.Error("IPv4 narrowing accepted an oversized declared length")
	}

	v6 := NewIPv6Endpoint(mustIPv6(t, "2001:db8::1"), 53)
	shortV6 := setDeclaredLen(t, v6.Storage(), 27)
	if _, ok := shortV6.IPv6(); ok {
		t.Error("IPv6 narrowing accepted a short declared length")
	}
}

func TestLinkLayerStorageRoundTrip(t *testing.T) {
	l := LinkLayerAddress{
		Index:        3,
		Type:         6,
		HardwareAddr: []byte{0x02, 0x00, 0x5e, 0x10, 0x00, 0x01},
	}
	st, ok := l.Storage()
	if !ok {
		t.Fatal("encoding a link-layer address failed")
	}

	got, ok := st.LinkLayer()
	if !ok {
		t.Fatal("narrowing to link-layer failed on a well-formed record")
	}
	if got.Index != l.Index {
		t.Errorf("Index = %d, want %d", got.Index, l.Index)
	}
	if !bytes.Equal(got.HardwareAddr, l.HardwareAddr) {
		t.Errorf("HardwareAddr = %v, want %v", got.HardwareAddr, l.HardwareAddr)
	}
	if _, ok := st.IPv4(); ok {
		t.Error("link-layer record narrowed to IPv4")
	}
	if fam, ok := st.Family(); !ok || fam != AFLink {
		t.Errorf("Family() = %v, %v; want AFLink, true", fam, ok)
	}
}

func TestStorageFromBytesBounds(t *testing.T) {
	if _, ok := StorageFromBytes(nil); ok {
		t.Error("StorageFromBytes(nil) accepted")
	}
	if _, ok := StorageFromBytes(make([]byte, storageSize+1)); ok {
		t.Error("StorageFromBytes accepted a buffer larger than sockaddr_storage")
	}

	b := NewIPv4Endpoint(IPv4Address{10, 0, 0, 1}, 9).Storage().Bytes()
	st, ok := StorageFromBytes(b)
	if !ok {
		t.Fatal("StorageFromBytes rejected a valid record")
	}
	if !bytes.Equal(st.Bytes(), b) {
		t.Error("Bytes() does not round-trip")
	}
}

func TestStorageUnknownFamily(t *testing.T) {
	// A buffer whose family tag matches nothing we know.
	b := make([]byte, 16)
	b[0] = 16   // sa_len, where the platform has one
	b[1] = 0xfd // sa_family on the BSDs; half of it on Linux
	st, ok := StorageFromBytes(b)
	if !ok {
		t.Fatal("StorageFromBytes rejected the buffer")
	}
	if _, ok := st.Family(); ok {
		t.Error("Family() recognized a bogus tag")
	}
	if _, ok := st.IPv4(); ok {
		t.Error("bogus record narrowed to IPv4")
	}
	if _, ok := st.IPv6(); ok {
		t.Error("bogus record narrowed to IPv6")
	}
	if _, ok := st.LinkLayer(); ok {
		t.Error("bogus record narrowed to link-layer")
	}
}
