// Package sockets is a thin, type-safe layer over the BSD sockets API.
//
// It wraps the raw system calls (socket, bind, connect, sendto, getsockopt,
// setsockopt, multicast membership) behind a descriptor-owning Socket type,
// and represents the OS address structures (sockaddr_in, sockaddr_in6, the
// platform link-layer sockaddr, sockaddr_storage) as validated Go values.
// Raw buffers claiming to be an address are never reinterpreted until their
// family tag and declared length pass the well-formedness checks; narrowing
// a Storage to a concrete variant is a comma-ok operation, not an error.
//
// The package performs no I/O multiplexing, retries, framing, or name
// resolution. Every operation is a direct synchronous wrapper over the
// corresponding system call; failures are surfaced to the caller as an
// *Error wrapping the OS error code. A Socket must not be mutated from
// multiple goroutines without caller-supplied synchronization.
package sockets
