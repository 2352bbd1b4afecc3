package engine

import "math/rand"

// bagExtras is the number of uniformly drawn ids added to each refill on
// top of the seven base shapes.
const bagExtras = 2

// Bag hands out shape ids. Each refill holds every base shape once plus
// two uniformly drawn extras, shuffled, so any run of draws between two
// refills contains all seven shapes.
type Bag struct {
	rng   *rand.Rand
	queue []ShapeID
}

// NewBag creates a bag whose sequence is fully determined by seed.
func NewBag(seed int64) *Bag {
	return &Bag{
		rng:   rand.New(rand.NewSource(seed)),
		queue: make([]ShapeID, 0, ShapeCount+bagExtras),
	}
}

// Next pops the next shape id, refilling first when the queue is empty.
func (b *Bag) Next() ShapeID {
	if len(b.queue) == 0 {
		b.refill()
	}
	id := b.queue[0]
	b.queue = b.queue[1:]
	return id
}

// Pending returns how many ids remain before the next refill.
func (b *Bag) Pending() int {
	return len(b.queue)
}

func (b *Bag) refill() {
	b.queue = make([]ShapeID, 0, ShapeCount+bagExtras)
	for id := range ShapeCount {
		b.queue = append(b.queue, ShapeID(id))
	}
	for range bagExtras {
		b.queue = append(b.queue, ShapeID(b.rng.Intn(ShapeCount)))
	}
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
}
