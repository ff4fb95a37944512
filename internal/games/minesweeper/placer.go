package minesweeper

import (
	"fmt"
	"math/rand"
)

// BombPlacer seeds a freshly built board with its bombs.
type BombPlacer struct {
	rng *rand.Rand
}

// NewBombPlacer creates a placer drawing from rng.
func NewBombPlacer(rng *rand.Rand) *BombPlacer {
	return &BombPlacer{rng: rng}
}

// Place puts exactly b.MaxBombs() bombs on distinct cells, chosen uniformly
// at random, then computes bombsAround for every cell.
//
// Selection is a partial Fisher-Yates shuffle over the candidate indices, so
// it finishes after MaxBombs draws no matter how dense the board is.
func (p *BombPlacer) Place(b *Board) error {
	total := len(b.cells)
	if b.maxBombs >= total {
		return fmt.Errorf("%w: cannot place %d bombs on %d cells",
			ErrInvalidConfiguration, b.maxBombs, total)
	}

	candidates := make([]int, 0, total)
	placed := 0
	for i := range b.cells {
		if b.cells[i].isBomb {
			placed++
			continue
		}
		candidates = append(candidates, i)
	}

	need := b.maxBombs - placed
	if need < 0 {
		return fmt.Errorf("%w: board already holds %d bombs, limit is %d",
			ErrInvalidConfiguration, placed, b.maxBombs)
	}

	k := len(candidates)
	for _i := 0; _i < need; _i++ {
		j := p.rng.Intn(k)
		b.cells[candidates[j]].isBomb = true
		k--
		candidates[j] = candidates[k]
	}

	b.countAll()
	return nil
}
