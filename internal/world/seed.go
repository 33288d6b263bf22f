package world

// SeedFor derives the random seed of one chunk from the world seed, so a
// chunk can be rebuilt on its own and build order does not matter.
func SeedFor(base int64, v Variant, c ChunkCoord) int64 {
	h := uint64(base)
	h ^= uint64(v+1) * 0x9e3779b97f4a7c15
	h ^= uint64(int64(c.X)) * 0xbf58476d1ce4e5b9
	h ^= uint64(int64(c.Y)) * 0x94d049bb133111eb
	return int64(mix64(h))
}

// mix64 is the splitmix64 finalizer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
