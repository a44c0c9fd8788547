package util

type Pair[A, B any] struct {
	Fst A
	Snd B
}

func NewPair[A, B any](fst A, snd B) Pair[A, B] {
	return Pair[A, B]{
		Fst: fst,
		Snd: snd,
	}
}

// Unzip splits pairs into their first and second components, keeping order
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	fsts := make([]A, 0, len(pairs))
	snds := make([]B, 0, len(pairs))
	for _, p := range pairs {
		fsts = append(fsts, p.Fst)
		snds = append(snds, p.Snd)
	}
	return fsts, snds
}
