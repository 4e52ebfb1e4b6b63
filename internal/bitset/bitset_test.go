package bitset

import "testing"

func TestBitSetBasic(t *testing.T) {
	bs := New(100)

	bs.Set(42)
	if !bs.Test(42) {
		t.Error("Expected bit 42 to be set")
	}

	if bs.Test(0) {
		t.Error("Expected bit 0 to be cleared")
	}

	bs.Set(0)
	bs.Set(10)
	bs.Set(50)
	bs.Set(99)
	if count := bs.Count(); count != 5 {
		t.Errorf("Expected count 5, got %d", count)
	}
}

func TestBitSetAll(t *testing.T) {
	bs := New(10)

	if bs.All() {
		t.Error("Expected All() to be false for an empty bitset")
	}

	for i := 0; i < 10; i++ {
		bs.Set(i)
	}

	if !bs.All() {
		t.Error("Expected All() to be true once every bit is set")
	}
}

func TestBitSetZeroLength(t *testing.T) {
	bs := New(0)
	if !bs.All() {
		t.Error("Expected All() to be vacuously true for a zero-length bitset")
	}
	if bs.Count() != 0 {
		t.Errorf("Expected count 0, got %d", bs.Count())
	}
}

// BenchmarkBitSetSet mirrors RingSet.Validate's marking loop: one Set
// call per point.
func BenchmarkBitSetSet(b *testing.B) {
	bs := New(10000000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bs.Set(i % 10000000)
	}
}

// BenchmarkBitSetTest mirrors RingSet.Validate's double-assignment check:
// one Test call per point.
func BenchmarkBitSetTest(b *testing.B) {
	bs := New(10000000)
	for i := 0; i < 10000000; i += 2 {
		bs.Set(i)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bs.Test(i % 10000000)
	}
}
