package core

import (
	"hash/fnv"
	"math"
)

// Hash returns a structural hash of v, consistent with Equal: two values
// that compare Equal always hash equal. Used by callers that want to
// dedupe grids of values (e.g. a filter evaluator building a seen-set of
// Refs) without relying on Go map key restrictions, since not every Val is
// comparable with ==.
func Hash(v Val) uint64 {
	h := fnv.New64a()
	writeHash(h, v)
	return h.Sum64()
}

func writeHash(h interface{ Write([]byte) (int, error) }, v Val) {
	if v == nil {
		v = Null{}
	}
	write := func(s string) { h.Write([]byte(s)) }
	write(string(v.Kind()))
	write("|")

	switch t := v.(type) {
	case Coordinate:
		// Coordinate hash combines lat/long via XOR, per the reference
		// implementation, rather than concatenating their bit patterns.
		latBits := math.Float64bits(t.Lat + 0) // +0 folds -0 into 0, as Equal does
		longBits := math.Float64bits(t.Long + 0)
		combined := latBits ^ longBits
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(combined >> (8 * i))
		}
		h.Write(buf[:])
	case Number:
		// -0 and 0 are Equal, so hash both through the same rendering.
		write(NewNumber(t.Value+0, t.Unit).String())
	case List:
		for _, e := range t {
			writeHash(h, valOrNull(e))
		}
	case *Dict:
		// Order-independent: XOR each tag's own hash together so that
		// insertion order never affects the result, matching Dict.Equal.
		var acc uint64
		for _, name := range t.order {
			sub := fnv.New64a()
			sub.Write([]byte(name))
			writeHash(sub, valOrNull(t.m[name]))
			acc ^= sub.Sum64()
		}
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(acc >> (8 * i))
		}
		h.Write(buf[:])
	case *Grid:
		write(t.Version)
		for _, c := range t.cols {
			write(c.Name)
			writeHash(h, c.Meta)
		}
		for _, r := range t.rows {
			writeHash(h, r)
		}
	default:
		write(v.String())
	}
}
