// Package archive stores parsed temperature channels as a compact mebo
// numeric blob and reads them back.
//
// Each channel becomes one metric named readings.ChannelName(i). Sample
// times (seconds) are stored as integer microseconds with delta-of-delta
// encoding; temperatures use Gorilla XOR encoding. Both columns are lossless,
// so Decode(Encode(t, ch)) returns exactly t and ch for any time grid that is
// a whole number of microseconds.
//
// ⚙️ Usage:
//
//	data, err := archive.Encode(times, channels, archive.WithCompression(format.CompressionZstd))
//	...
//	times, channels, err := archive.Decode(data)
package archive
