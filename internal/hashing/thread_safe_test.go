package hashing

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lgbarn/rchess-go/internal/engine"
	"github.com/lgbarn/rchess-go/internal/testutil"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	sig := NewSignature(mustPosition(t, engine.InitialFEN), "", 0)

	const numGames = 100
	const numWorkers = 10
	gamesPerWorker := numGames / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < gamesPerWorker; j++ {
				detector.CheckAndAdd(sig)
			}
		}()
	}
	wg.Wait()

	if detector.DuplicateCount() != 99 {
		t.Errorf("DuplicateCount() = %d, want 99", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d, want 1", detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_DifferentPositions(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3 0 1",
	}

	sigs := make([]GameSignature, len(fens))
	for i, fen := range fens {
		sigs[i] = NewSignature(mustPosition(t, fen), "", 1)
	}

	var wg sync.WaitGroup
	for i := range sigs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			detector.CheckAndAdd(sigs[idx])
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 0 {
		t.Errorf("DuplicateCount() = %d, want 0", detector.DuplicateCount())
	}
	if detector.UniqueCount() != len(fens) {
		t.Errorf("UniqueCount() = %d, want %d", detector.UniqueCount(), len(fens))
	}
}

func TestThreadSafeDuplicateDetector_MaxCapacity(t *testing.T) {
	const capacity = 50
	const numWorkers = 10
	const gamesPerWorker = 100

	detector := NewThreadSafeDuplicateDetector(false, capacity)
	uniqueAdded := int32(0)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			localUnique := 0
			for j := 0; j < gamesPerWorker; j++ {
				idx := uint64(workerID*gamesPerWorker + j)
				sig := GameSignature{Hash: idx, PlacementHash: idx}
				if !detector.CheckAndAdd(sig) {
					localUnique++
				}
			}
			atomic.AddInt32(&uniqueAdded, int32(localUnique))
		}(i)
	}
	wg.Wait()

	if !detector.IsFull() {
		t.Errorf("IsFull() = false after %d unique games (capacity %d)", uniqueAdded, capacity)
	}
	if detector.UniqueCount() != capacity {
		t.Errorf("UniqueCount() = %d, want %d", detector.UniqueCount(), capacity)
	}
}

func TestThreadSafeDuplicateDetector_CheckGame(t *testing.T) {
	first := testutil.MustGame(t, engine.InitialFEN, "g1f3", "g8f6", "b1c3", "b8c6")
	transposed := testutil.MustGame(t, engine.InitialFEN, "b1c3", "b8c6", "g1f3", "g8f6")

	tests := []struct {
		name       string
		exactMatch bool
		want       bool
	}{
		{"final position only", false, true},
		{"exact move order", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewThreadSafeDuplicateDetector(tt.exactMatch, 0)
			if detector.CheckGame(first) {
				t.Fatal("CheckGame(first) = true, want false")
			}
			if got := detector.CheckGame(transposed); got != tt.want {
				t.Errorf("CheckGame(transposed) = %v, want %v", got, tt.want)
			}
		})
	}
}
