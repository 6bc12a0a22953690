package meshopt

import "sync/atomic"

// encoderVersion is a process-wide version/flag byte. The core does not
// implement the compressed vertex/index bitstream codec (spec §1); this
// cell exists only so a future codec layer linked against the same
// process has a stable, thread-safe place to read and write its format
// version without this package needing to know about it.
var encoderVersion atomic.Uint32

// SetEncoderVersion stores a version/flag byte for an external bitstream
// codec. The core never reads this value itself.
func SetEncoderVersion(v uint8) { encoderVersion.Store(uint32(v)) }

// EncoderVersion returns the value last stored by SetEncoderVersion
// (zero if never set).
func EncoderVersion() uint8 { return uint8(encoderVersion.Load()) }
