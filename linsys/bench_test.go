package linsys_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/linsys"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

var sinkSol linsys.Solution

// benchSystem builds a deterministic n×n system from a seeded source.
func benchSystem(b *testing.B, n int, seed int64) *linsys.LinearSystem {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	rhs := make([]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rhs[i] = rng.Float64()*2 - 1
	}
	a, err := matrix.FromFloats(rows)
	if err != nil {
		b.Fatal(err)
	}
	rhsVec, err := vector.FromFloats(rhs)
	if err != nil {
		b.Fatal(err)
	}

	return linsys.New(a, rhsVec)
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 16, 32} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Rebuild per iteration: Solve memoizes the echelon
				// form on the augmented matrix.
				b.StopTimer()
				sys := benchSystem(b, n, int64(n))
				b.StartTimer()

				sol, err := sys.Solve()
				if err != nil {
					b.Fatal(err)
				}
				sinkSol = sol
			}
		})
	}
}
