package ovc

import (
	"encoding/binary"
	"fmt"
)

// Envelope layout (little-endian):
//
//	[ 'O' 'V' 'C' ] [ version:u8 ] [ method:u8 ] [ len:u32 ] [ payload ]
var envelopeMagic = [3]byte{'O', 'V', 'C'}

const (
	envelopeVersion   = uint8(1)
	envelopeHeaderLen = 9
)

// wrapEnvelope frames payload with the self-describing codec header.
func wrapEnvelope(method Method, payload []byte) []byte {
	buf := make([]byte, envelopeHeaderLen+len(payload))
	copy(buf[0:3], envelopeMagic[:])
	buf[3] = envelopeVersion
	buf[4] = uint8(method)
	binary.LittleEndian.PutUint32(buf[5:9], uint32(len(payload)))
	copy(buf[envelopeHeaderLen:], payload)
	return buf
}

// unwrapEnvelope validates the header and returns the method tag and
// payload. Validation is eager: malformed buffers are rejected before any
// payload byte is interpreted.
func unwrapEnvelope(data []byte) (Method, []byte, error) {
	if len(data) < envelopeHeaderLen {
		return 0, nil, fmt.Errorf("%w: buffer is %d bytes, header needs %d", ErrInvalidFormat, len(data), envelopeHeaderLen)
	}
	if data[0] != envelopeMagic[0] || data[1] != envelopeMagic[1] || data[2] != envelopeMagic[2] {
		return 0, nil, fmt.Errorf("%w: bad magic bytes %q", ErrInvalidFormat, data[0:3])
	}
	if data[3] != envelopeVersion {
		return 0, nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidFormat, data[3])
	}
	method, err := methodFromTag(data[4])
	if err != nil {
		return 0, nil, err
	}
	payloadLen := binary.LittleEndian.Uint32(data[5:9])
	if int(payloadLen) != len(data)-envelopeHeaderLen {
		return 0, nil, fmt.Errorf("%w: declared payload %d bytes, have %d", ErrInvalidFormat, payloadLen, len(data)-envelopeHeaderLen)
	}
	return method, data[envelopeHeaderLen:], nil
}
