package hashing

import (
	"testing"
)

var benchFENPositions = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkNewSignature(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			pos := mustPosition(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				NewSignature(pos, "e2e4 e7e5 g1f3 b8c6", 4)
			}
		})
	}
}

func BenchmarkHashKey(b *testing.B) {
	key := benchFENPositions["Complex"]
	for i := 0; i < b.N; i++ {
		HashKey(key)
	}
}

func BenchmarkDuplicateDetector_CheckAndAdd(b *testing.B) {
	b.Run("Unique", func(b *testing.B) {
		dd := NewDuplicateDetector(false, 0)
		sigs := make([]GameSignature, 0, len(benchFENPositions))
		for _, fen := range benchFENPositions {
			sigs = append(sigs, NewSignature(mustPosition(b, fen), "", 0))
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dd.CheckAndAdd(sigs[i%len(sigs)])
		}
	})

	b.Run("Duplicates", func(b *testing.B) {
		dd := NewDuplicateDetector(false, 0)
		sig := NewSignature(mustPosition(b, benchFENPositions["Initial"]), "", 0)
		dd.CheckAndAdd(sig)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			dd.CheckAndAdd(sig)
		}
	})
}
