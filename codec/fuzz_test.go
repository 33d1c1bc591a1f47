package codec

import "testing"

// FuzzReader ensures the bounds-checked reader never panics on arbitrary
// input, regardless of the order fields are pulled in.
func FuzzReader(f *testing.F) {
	// Empty
	f.Add([]byte{})
	// Bare selector
	f.Add([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	// Length prefix with truncated body
	f.Add([]byte{0x00, 0x10, 'a', 'b'})
	// Full listSkill-shaped calldata
	w := NewWriter(128)
	w.WriteSelector(EncodeSelector("listSkill()"))
	_ = w.WriteString("Qm111")
	w.WriteU256(U256FromUint64(100))
	w.WriteAddress(Address{0x01})
	_ = w.WriteString("k1")
	f.Add(w.Bytes())

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(data)
		// Must not panic; errors are expected.
		r.ReadSelector()
		r.ReadString()
		r.ReadU256()
		r.ReadAddress()
		r.ReadBool()
		r.ReadString()
		if r.Remaining() < 0 {
			t.Fatalf("negative remaining: %d", r.Remaining())
		}
	})
}
