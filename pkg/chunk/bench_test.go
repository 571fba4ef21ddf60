package chunk

import "testing"

func BenchmarkEncode(b *testing.B) {
	typ, _ := TypeFromString("ruSt")
	c := New(typ, make([]byte, 4096))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Encode()
	}
}

func BenchmarkDecode(b *testing.B) {
	typ, _ := TypeFromString("ruSt")
	wire := New(typ, make([]byte, 4096)).Encode()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(wire); err != nil {
			b.Fatal(err)
		}
	}
}
