package sockets

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Error records a failed socket operation and the OS error that caused
// it. Use the Is* helpers (or errors.Is against a unix.Errno) to classify
// the cause.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return "sockets: " + e.Op + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// ErrNotMulticast is returned by JoinGroup and LeaveGroup, before any
// system call is issued, when the supplied address is not a multicast
// group address.
var ErrNotMulticast = errors.New("address is not multicast")

// opError wraps a system-call failure with the operation name. A nil err
// passes through untouched.
func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// IsWouldBlock reports whether err is the non-fatal signal that a
// non-blocking operation could not complete immediately (EAGAIN or
// EWOULDBLOCK). Callers retry later; nothing is wrong with the socket.
func IsWouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

// IsAddressInUse reports whether err indicates the address is already
// bound (EADDRINUSE).
func IsAddressInUse(err error) bool {
	return errors.Is(err, unix.EADDRINUSE)
}

// IsFamilyMismatch reports whether err indicates an address family the
// socket cannot use (EAFNOSUPPORT).
func IsFamilyMismatch(err error) bool {
	return errors.Is(err, unix.EAFNOSUPPORT)
}

// IsConnectionRefused reports whether err indicates the peer refused the
// connection (ECONNREFUSED).
func IsConnectionRefused(err error) bool {
	return errors.Is(err, unix.ECONNREFUSED)
}

// IsNetworkUnreachable reports whether err indicates no route to the
// destination network (ENETUNREACH).
func IsNetworkUnreachable(err error) bool {
	return errors.Is(err, unix.ENETUNREACH)
}

// IsTimedOut reports whether err indicates the operation timed out in the
// OS (ETIMEDOUT).
func IsTimedOut(err error) bool {
	return errors.Is(err, unix.ETIMEDOUT)
}

// IsPermissionDenied reports whether err indicates missing privileges
// (EACCES or EPERM).
func IsPermissionDenied(err error) bool {
	return errors.Is(err, unix.EACCES) || errors.Is(err, unix.EPERM)
}

// IsBadDescriptor reports whether err indicates the descriptor is not an
// open socket (EBADF or ENOTSOCK).
func IsBadDescriptor(err error) bool {
	return errors.Is(err, unix.EBADF) || errors.Is(err, unix.ENOTSOCK)
}

// IsTooManyDescriptors reports whether err indicates the per-process or
// system descriptor table is full (EMFILE or ENFILE).
func IsTooManyDescriptors(err error) bool {
	return errors.Is(err, unix.EMFILE) || errors.Is(err, unix.ENFILE)
}

// IsUnsupportedOption reports whether err indicates an option unknown to
// this socket or level (ENOPROTOOPT).
func IsUnsupportedOption(err error) bool {
	return errors.Is(err, unix.ENOPROTOOPT)
}

// IsDestinationRequired reports whether err indicates a datagram was sent
// with no destination configured. Platforms disagree on the code here:
// some return EDESTADDRREQ, others ENOTCONN, so both are accepted. The
// ENOTCONN acceptance means a not-connected failure from other calls
// (RemoteAddress, say) also matches; apply this helper to send-path
// errors.
func IsDestinationRequired(err error) bool {
	return errors.Is(err, unix.EDESTADDRREQ) || errors.Is(err, unix.ENOTCONN)
}
