// Package section defines the optional framing header of Bedrock NBT files.
//
// Some Bedrock storage files (level.dat among them) prefix the tag stream with a
// fixed 8-byte header. Both fields are always little-endian, independent of the
// byte order of the stream that follows:
//
//	┌──────────────────────────────────────────────┐
//	│ Magic  (int32, LE)  always 8                  │
//	│ Length (uint32, LE) byte length of the stream │
//	├──────────────────────────────────────────────┤
//	│ Tag stream (Length bytes)                     │
//	└──────────────────────────────────────────────┘
//
// # Detection
//
// There is no flag that says whether a file is framed. IsFramed applies the usual
// heuristic: the stream is framed when its first four bytes read as the int32 8.
// An unframed stream always starts with the Compound tag id 0x0A, so the two
// cases cannot collide for well-formed input.
//
// Peek reads exactly the first 8 bytes of a reader and reports them without
// interpreting them, which lets callers show the raw header.
//
// # Usage
//
//	hdr := section.NewHeader(len(body))
//	out := hdr.Append(nil)
//	out = append(out, body...)
//
//	var h section.Header
//	if err := h.Parse(data[:format.HeaderSize]); err != nil {
//		return err
//	}
package section
