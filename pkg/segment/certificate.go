// Copyright 2026 kvmesh contributors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package segment

import (
	"encoding/binary"
	"fmt"
)

// certificateWireSize is the fixed on-wire size of a Certificate.
const certificateWireSize = 8

// Certificate is an opaque (length, checksum) witness for a segment
// prefix. It is produced by Segment.AppendedLength and consumed by
// Segment.CheckMetadataIntegrity and SegmentIterator; code outside this
// package should transport it byte-for-byte and never interpret its
// fields directly.
type Certificate struct {
	// SegmentLength is the prefix length, in bytes, this certificate
	// witnesses.
	SegmentLength uint32
	// Checksum is the CRC32C over every entry's header-and-length-field
	// bytes wholly within [0, SegmentLength), extended with the four
	// little-endian bytes of SegmentLength itself.
	Checksum uint32
}

// String renders the certificate for diagnostics and log lines, e.g.
// "<40, 0xdeadbeef>".
func (c Certificate) String() string {
	return fmt.Sprintf("<%d, 0x%08x>", c.SegmentLength, c.Checksum)
}

// EncodeCertificate renders c in its authoritative 8-byte, little-endian
// wire format.
func EncodeCertificate(c Certificate) [certificateWireSize]byte {
	var out [certificateWireSize]byte
	binary.LittleEndian.PutUint32(out[0:4], c.SegmentLength)
	binary.LittleEndian.PutUint32(out[4:8], c.Checksum)
	return out
}

// DecodeCertificate parses a certificate from its 8-byte wire format.
func DecodeCertificate(b []byte) (Certificate, error) {
	if len(b) < certificateWireSize {
		return Certificate{}, ErrShortCertificate
	}
	return Certificate{
		SegmentLength: binary.LittleEndian.Uint32(b[0:4]),
		Checksum:      binary.LittleEndian.Uint32(b[4:8]),
	}, nil
}
