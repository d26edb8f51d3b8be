package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Randomizer deals the sequence of upcoming piece types.
type Randomizer interface {
	Next() PieceType
}

// BagRandomizer deals all seven pieces in a shuffled order before
// reshuffling, so every aligned window of seven draws holds each piece once.
type BagRandomizer struct {
	rng *rand.Rand
	bag []PieceType
}

// NewBagRandomizer creates a 7-bag randomizer drawing from rng.
func NewBagRandomizer(rng *rand.Rand) *BagRandomizer {
	return &BagRandomizer{rng: rng}
}

// Next pops one piece, refilling the bag first when it is empty.
func (b *BagRandomizer) Next() PieceType {
	if len(b.bag) == 0 {
		b.refill()
	}
	last := len(b.bag) - 1
	t := b.bag[last]
	b.bag = b.bag[:last]
	return t
}

func (b *BagRandomizer) refill() {
	b.bag = append(b.bag[:0], AllPieces[:]...)
	// rand.Shuffle is an unbiased Fisher-Yates.
	b.rng.Shuffle(len(b.bag), func(i, j int) { b.bag[i], b.bag[j] = b.bag[j], b.bag[i] })
}

// UniformRandomizer draws every piece independently and uniformly.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer creates a uniform randomizer drawing from rng.
func NewUniformRandomizer(rng *rand.Rand) *UniformRandomizer {
	return &UniformRandomizer{rng: rng}
}

// Next returns a uniformly chosen piece type.
func (u *UniformRandomizer) Next() PieceType {
	return AllPieces[u.rng.Intn(PieceCount)]
}

// NewRandomizer builds the randomizer named in the config ("bag" or "uniform").
func NewRandomizer(name string, rng *rand.Rand) (Randomizer, error) {
	switch name {
	case config.RandomizerBag, "":
		return NewBagRandomizer(rng), nil
	case config.RandomizerUniform:
		return NewUniformRandomizer(rng), nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownRandomizer, name)
	}
}
