package piece

import "math/rand/v2"

// Bag deals kinds using the 7-bag rule: every kind appears once, in random order, before any kind
// repeats. Two bags with the same seed deal the same sequence.
type Bag struct {
	rng  *rand.Rand
	next []Kind
}

func NewBag(seed uint64) *Bag {
	return &Bag{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Next removes and returns the next kind.
func (b *Bag) Next() Kind {
	if len(b.next) == 0 {
		b.refill()
	}
	k := b.next[0]
	b.next = b.next[1:]
	return k
}

// Peek returns the kind that Next will return without removing it.
func (b *Bag) Peek() Kind {
	if len(b.next) == 0 {
		b.refill()
	}
	return b.next[0]
}

func (b *Bag) refill() {
	b.next = append(b.next[:0], Kinds...)
	b.rng.Shuffle(len(b.next), func(i, j int) {
		b.next[i], b.next[j] = b.next[j], b.next[i]
	})
}
