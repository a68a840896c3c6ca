package decode

import "encoding/binary"

// reader is a big-endian cursor over a code region. Reads report ok=false
// and leave the cursor alone when too few bytes remain.
type reader struct {
	code []byte
	pos  int
}

func (r *reader) remaining() int {
	return len(r.code) - r.pos
}

// has reports whether n more bytes are available. n is unsigned so that
// counts taken from the stream cannot wrap negative.
func (r *reader) has(n uint64) bool {
	return uint64(r.remaining()) >= n
}

func (r *reader) take(n int) ([]byte, bool) {
	if !r.has(uint64(n)) {
		return nil, false
	}
	b := r.code[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

func (r *reader) skip(n int) bool {
	_, ok := r.take(n)
	return ok
}

func (r *reader) u32() (uint32, bool) {
	b, ok := r.take(4)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint32(b), true
}

func (r *reader) s32() (int32, bool) {
	v, ok := r.u32()
	return int32(v), ok
}
