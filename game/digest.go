package game

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/plus3/paddlearena/ecs"
)

// Digest hashes every Transform in storage order. Two matches fed the same
// ticks and the same input produce the same digest.
func Digest(storage *ecs.Storage) uint64 {
	view := ecs.NewView[struct{ *Transform }](storage)
	h := xxhash.New()

	var buf [8]byte
	write := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	for id, item := range view.Iter() {
		t := item.Transform
		write(uint64(id))
		write(math.Float64bits(t.Translation.X))
		write(math.Float64bits(t.Translation.Y))
		write(math.Float64bits(t.Size.X))
		write(math.Float64bits(t.Size.Y))
		write(math.Float64bits(t.Rotation))
		write(math.Float64bits(t.Z))
	}

	return h.Sum64()
}
