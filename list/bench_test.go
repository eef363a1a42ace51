package list_test

import (
	stdlist "container/list"
	"testing"

	"github.com/mgnsk/linkedlist/list"
)

func BenchmarkPushPop(b *testing.B) {
	b.Run("linkedlist", func(b *testing.B) {
		var l list.List[string]

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			l.PushBack("a")
			l.PopFront()
		}
	})

	b.Run("std list", func(b *testing.B) {
		l := stdlist.New()

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			l.PushBack("a")
			l.Remove(l.Front())
		}
	})
}

func BenchmarkIterate(b *testing.B) {
	const size = 1024

	b.Run("linkedlist", func(b *testing.B) {
		l := list.New[int](list.WithCapacity(size))
		for i := range size {
			l.PushBack(i)
		}

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			for v := range l.All() {
				_ = v
			}
		}
	})

	b.Run("std list", func(b *testing.B) {
		l := stdlist.New()
		for i := range size {
			l.PushBack(i)
		}

		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			for e := l.Front(); e != nil; e = e.Next() {
				_ = e.Value
			}
		}
	})
}
