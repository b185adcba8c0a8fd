package study

import "github.com/dtroode/flashgen-server/internal/model"

// Deck is a cyclic flashcard viewer. Moving to another card shows its
// question side again.
type Deck struct {
	cards   []model.Flashcard
	index   int
	flipped bool
}

func NewDeck(cards []model.Flashcard) (*Deck, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	return &Deck{cards: cards}, nil
}

func (d *Deck) Current() model.Flashcard { return d.cards[d.index] }

// Position returns the zero-based index and the deck size.
func (d *Deck) Position() (int, int) { return d.index, len(d.cards) }

func (d *Deck) Next() {
	d.index = (d.index + 1) % len(d.cards)
	d.flipped = false
}

func (d *Deck) Previous() {
	d.index = (d.index - 1 + len(d.cards)) % len(d.cards)
	d.flipped = false
}

// Flip toggles between question and answer.
func (d *Deck) Flip() { d.flipped = !d.flipped }

func (d *Deck) Flipped() bool { return d.flipped }
