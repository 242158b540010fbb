package archive

import (
	"fmt"
	"strings"

	"github.com/arloliu/mebo/format"
)

// DefaultCompression is the column compression applied by Encode.
const DefaultCompression = format.CompressionNone

// Options configures Encode.
type Options struct {
	Compression format.CompressionType
}

// Option mutates Options.
type Option func(*Options)

// WithCompression selects the compression applied to both the timestamp and
// the value column.
func WithCompression(c format.CompressionType) Option {
	return func(o *Options) { o.Compression = c }
}

// compressionNames maps CLI spellings onto mebo compression types.
var compressionNames = map[string]format.CompressionType{
	"none": format.CompressionNone,
	"zstd": format.CompressionZstd,
	"s2":   format.CompressionS2,
	"lz4":  format.CompressionLZ4,
}

// ParseCompression maps "none", "zstd", "s2" or "lz4" (case-insensitive) to a
// compression type.
func ParseCompression(name string) (format.CompressionType, error) {
	c, ok := compressionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("archive: unknown compression %q", name)
	}

	return c, nil
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts []Option) Options {
	o := Options{Compression: DefaultCompression}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
