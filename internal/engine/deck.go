package engine

import "math/rand"

// BuildDeck returns the full 52-card deck in canonical order.
func BuildDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle returns a shuffled copy of deck, deterministic for a given seed.
func Shuffle(deck []Card, seed int64) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
