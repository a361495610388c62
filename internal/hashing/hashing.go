// Package hashing provides duplicate detection for finished games.
package hashing

import (
	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/rchess-go/internal/engine"
	"github.com/lgbarn/rchess-go/internal/game"
)

// DuplicateDetector tracks seen final positions for duplicate game detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by final position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same move sequence
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// uniqueCount tracks number of stored signatures
	uniqueCount int
	// maxCapacity bounds uniqueCount (0 = unlimited)
	maxCapacity int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the hash of the final position key
	Hash uint64
	// PlacementHash covers only the piece placement of the final position
	PlacementHash uint64
	// MoveHash is the hash of the move sequence
	MoveHash uint64
	// MoveCount is the number of half-moves in the game
	MoveCount int
}

// HashKey hashes a position key or any other string.
func HashKey(key string) uint64 {
	return xxhash.Sum64String(key)
}

// NewSignature builds the signature of a game that ended in pos after the
// given space separated moves.
func NewSignature(pos engine.Position, moves string, plies int) GameSignature {
	return GameSignature{
		Hash:          HashKey(engine.PositionKey(pos)),
		PlacementHash: HashKey(engine.PlacementFEN(pos.Board)),
		MoveHash:      HashKey(moves),
		MoveCount:     plies,
	}
}

// SignatureOf builds the signature of a game in its current state.
func SignatureOf(g *game.Game) GameSignature {
	return NewSignature(g.Position(), g.Moves(), g.Ply())
}

// NewDuplicateDetector creates a new duplicate detector. With exactMatch two
// games are duplicates only if they also share the move sequence.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a game is a duplicate and records it.
// Returns true if the game is a duplicate. Once the detector is full new
// signatures are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash {
		return false
	}

	// Guards against a collision on the full key
	if a.PlacementHash != b.PlacementHash {
		return false
	}

	if d.useExactMatch && (a.MoveCount != b.MoveCount || a.MoveHash != b.MoveHash) {
		return false
	}

	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}
