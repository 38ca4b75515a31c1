package ports

// TransportPort is the wire the driver fuzzes through. Poll is a
// zero-timeout readiness check and must never block; Recv and Send report
// the byte counts the transport actually moved. An unconnected transport
// accepts nothing and reports nothing readable.
type TransportPort interface {
	Dial() error
	Poll() (bool, error)
	Recv(p []byte) (int, error)
	Send(p []byte) (int, error)
	Close() error
}
