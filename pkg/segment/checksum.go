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

import "hash/crc32"

// crc32cTable is the Castagnoli polynomial table used for every segment
// metadata checksum.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// checksumState is an incremental CRC32C accumulator. Because
// crc32.Update's running state is just the 32-bit register itself, cloning
// the accumulator to extend it (for certificate emission) without
// disturbing the live running checksum is a plain value copy.
type checksumState struct {
	value uint32
}

// update extends the running checksum with data.
func (c *checksumState) update(data []byte) {
	c.value = crc32.Update(c.value, crc32cTable, data)
}

// extended returns the checksum that would result from extending a copy of
// this accumulator with data, without mutating the receiver.
func (c checksumState) extended(data []byte) uint32 {
	return crc32.Update(c.value, crc32cTable, data)
}
