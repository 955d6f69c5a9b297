package model

import (
	"fmt"
	"testing"
)

func BenchmarkStep(b *testing.B) {
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("%d_workers", workers), func(b *testing.B) {
			g, err := NewGrid(512, 512, WithSeed(1), WithWorkers(workers))
			if err != nil {
				b.Fatal(err)
			}
			g.Randomize()

			b.ResetTimer()
			for range b.N {
				g.Step()
			}
		})
	}
}
