package scan

// Options configures a Reader.
type Options struct {
	// BufferSize is the size in bytes of the read buffer used when the
	// input is an io.Reader. Larger buffers mean fewer reads and fewer
	// tokens taking the split path. Default: 8192.
	BufferSize int
}

// DefaultOptions returns the default Reader configuration.
func DefaultOptions() Options {
	return Options{
		BufferSize: 8 * 1024,
	}
}
