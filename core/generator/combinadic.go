package generator

import (
	"sort"
)

// Codec converts between games and their combinadic indices. A game of k
// distinct numbers drawn from 1..MaxNumber maps to a unique index in
// [0, C(MaxNumber, k)), which is what lets the generator deduplicate games
// and triplets with plain integer sets.
type Codec struct {
	MaxNumber      int
	NumbersPerGame int
}

func NewCodec(maxNumber, numbersPerGame int) Codec {
	return Codec{MaxNumber: maxNumber, NumbersPerGame: numbersPerGame}
}

// binomial computes C(n, k).
func binomial(n, k int64) int64 {
	if k == 0 || n == k {
		return 1
	}
	if k > n {
		return 0
	}

	if n-k < k { // leverage symmetry
		k = n - k
	}
	result := int64(1)
	for i := int64(1); i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// combinadicIndex folds zero-based values, sorted descending, into their
// combinadic number.
func combinadicIndex(desc []int) int64 {
	k := len(desc)
	var index int64
	for i, ci := range desc {
		index += binomial(int64(ci), int64(k-i))
	}
	return index
}

// descended returns the values shifted to zero-based and sorted descending.
func descended(values []int) []int {
	desc := make([]int, len(values))
	copy(desc, values)
	sort.Sort(sort.Reverse(sort.IntSlice(desc)))
	for i := range desc {
		desc[i]--
	}
	return desc
}

// MaxIndex returns the number of distinct games, C(MaxNumber, NumbersPerGame).
func (c Codec) MaxIndex() int64 {
	return binomial(int64(c.MaxNumber), int64(c.NumbersPerGame))
}

// GameIndex maps a game of 1-based numbers, in any order, to its index.
func (c Codec) GameIndex(game []int) int64 {
	return combinadicIndex(descended(game))
}

// Game maps an index back to its game, 1-based and ascending.
func (c Codec) Game(index int64) []int {
	k := c.NumbersPerGame
	game := make([]int, k)
	ci := int64(c.MaxNumber - 1)
	for i := int64(k); i >= 1; i-- {
		for binomial(ci, i) > index {
			ci--
		}
		game[int64(k)-i] = int(ci) + 1
		index -= binomial(ci, i)
		ci--
	}

	for l, r := 0, k-1; l < r; l, r = l+1, r-1 {
		game[l], game[r] = game[r], game[l]
	}
	return game
}

// Triplets returns every 3-number combination of the game.
func (c Codec) Triplets(game []int) [][]int {
	if len(game) < 3 {
		return nil
	}

	var triplets [][]int
	for i := 0; i < len(game)-2; i++ {
		for j := i + 1; j < len(game)-1; j++ {
			for k := j + 1; k < len(game); k++ {
				triplets = append(triplets, []int{game[i], game[j], game[k]})
			}
		}
	}
	return triplets
}

// TripletIndex maps a 3-number combination to its index in [0, C(MaxNumber, 3)).
func (c Codec) TripletIndex(triplet []int) int64 {
	return combinadicIndex(descended(triplet))
}

// TripletIndices maps every triplet of the game to its index.
func (c Codec) TripletIndices(game []int) []int64 {
	triplets := c.Triplets(game)
	indices := make([]int64, 0, len(triplets))
	for _, triplet := range triplets {
		indices = append(indices, c.TripletIndex(triplet))
	}
	return indices
}
