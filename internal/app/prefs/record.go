package prefs

import (
	"bytes"
	"encoding/binary"
)

// RecordVersion is the newest per-pane record layout this build writes and reads
const RecordVersion int32 = 0

const recordSize = 4 + 4 + 1 + 4

// Encode serializes p as a little-endian record:
// version int32, edge style int32, hide trailing newline (1 byte), timestamp mode int32.
func Encode(p Preferences) []byte {
	buf := make([]byte, 0, recordSize)

	buf = binary.LittleEndian.AppendUint32(buf, uint32(RecordVersion))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(p.EdgeStyle))

	var hide byte
	if p.HideTrailingNewline {
		hide = 1
	}

	buf = append(buf, hide)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(p.TimestampMode))

	return buf
}

// Decode reads a record written by Encode on top of defaults.
//
// It never fails. A record from a newer version is ignored entirely. Fields
// missing from a truncated record keep their default, fields already read are
// kept. Timestamp mode was appended in a later layout, so records from older
// builds simply stop before it.
func Decode(data []byte, defaults Preferences) Preferences {
	r := bytes.NewReader(data)
	out := defaults

	var version int32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return defaults
	}

	if version > RecordVersion {
		return defaults
	}

	var edge int32
	if err := binary.Read(r, binary.LittleEndian, &edge); err != nil {
		return out
	}

	if style := EdgeStyle(edge); style.Valid() {
		out.EdgeStyle = style
	}

	var hide bool
	if err := binary.Read(r, binary.LittleEndian, &hide); err != nil {
		return out
	}

	out.HideTrailingNewline = hide

	var mode int32
	if err := binary.Read(r, binary.LittleEndian, &mode); err != nil {
		return out
	}

	if m := TimestampMode(mode); m.Valid() {
		out.TimestampMode = m
	}

	return out
}
