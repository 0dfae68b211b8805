package btree

import (
	"math/rand"
	"testing"
)

func benchKeys(n int) []int {
	r := rand.New(rand.NewSource(42))
	return r.Perm(n)
}

func BenchmarkInsert(b *testing.B) {
	keys := benchKeys(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := NewOrdered[int](DefaultOrder)
		for _, k := range keys {
			s.Insert(k)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	keys := benchKeys(100_000)
	s, _ := NewOrdered[int](DefaultOrder)
	for _, k := range keys {
		s.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Contains(keys[i%len(keys)])
	}
}

func BenchmarkErase(b *testing.B) {
	keys := benchKeys(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s, _ := NewOrdered[int](DefaultOrder)
		for _, k := range keys {
			s.Insert(k)
		}
		b.StartTimer()
		for _, k := range keys {
			s.Erase(k)
		}
	}
}
