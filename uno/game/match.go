package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

const (
	MinPlayers       = 2
	MaxPlayers       = 10
	StartingHandSize = 7
	DrawTwoCards     = 2
	DrawFourCards    = 4
	FailedChallenge  = 6
	UnoPenaltyCards  = 2
)

// Match is one game from deal to win. It is not safe for concurrent use: callers
// serialize commands, and every command is validated in full before anything changes.
type Match struct {
	players []*Player
	cycler  *Cycler
	deck    *Deck
	pile    *Pile
	pending *PendingChallenge
	winner  *Player
	rand    *rand.Rand
}

type Option func(*Match)

// WithRand fixes the shuffle source, mostly for tests.
func WithRand(source *rand.Rand) Option {
	return func(m *Match) {
		m.rand = source
	}
}

// New seats names in order, shuffles, deals seven cards each and flips the first discard.
func New(names []string, opts ...Option) (*Match, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return nil, ErrInvalidPlayers
	}
	seen := make(map[string]bool, len(names))
	players := make([]*Player, 0, len(names))
	for seat, name := range names {
		if name == "" || seen[name] {
			return nil, ErrInvalidPlayers
		}
		seen[name] = true
		players = append(players, newPlayer(seat, name))
	}

	m := &Match{
		players: players,
		cycler:  NewCycler(len(players)),
		pile:    NewPile(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rand == nil {
		m.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m.deck = NewDeck(m.rand)
	m.deck.Shuffle()

	m.dealStartingCards()
	m.playFirstCard()
	return m, nil
}

func (m *Match) dealStartingCards() {
	for _, player := range m.players {
		m.drawCards(player, StartingHandSize)
	}
}

func (m *Match) playFirstCard() {
	for {
		firstCard, _ := m.deck.Draw()
		if !firstCard.IsWild() {
			m.pile.Add(firstCard)
			return
		}
		m.deck.Put(firstCard)
		m.deck.Shuffle()
	}
}

// drawCards recycles the discard pile once each time the deck runs dry and stops
// early when both are exhausted.
func (m *Match) drawCards(player *Player, amount int) []card.Card {
	drawn := make([]card.Card, 0, amount)
	for len(drawn) < amount {
		c, ok := m.deck.Draw()
		if !ok {
			if !m.deck.RecycleFrom(m.pile) {
				break
			}
			if c, ok = m.deck.Draw(); !ok {
				break
			}
		}
		drawn = append(drawn, c)
	}
	player.hand.AddCards(drawn)
	return drawn
}

func (m *Match) drawable() int {
	return m.deck.Size() + m.pile.Size() - 1
}

func (m *Match) resetCalls() {
	for _, player := range m.players {
		player.calledUno = false
	}
}

func (m *Match) find(name string) *Player {
	for _, player := range m.players {
		if player.name == name {
			return player
		}
	}
	return nil
}

func (m *Match) activePlayer(name string) (*Player, error) {
	if m.winner != nil {
		return nil, ErrNoActiveMatch
	}
	player := m.find(name)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

func (m *Match) turnOwner(name string) (*Player, error) {
	player, err := m.activePlayer(name)
	if err != nil {
		return nil, err
	}
	if m.pending != nil {
		return nil, ErrChallengePending
	}
	if m.Current() != player {
		return nil, ErrNotPlayersTurn
	}
	return player, nil
}

func (m *Match) Current() *Player {
	return m.players[m.cycler.Current()]
}

func (m *Match) Players() []*Player {
	players := make([]*Player, len(m.players))
	copy(players, m.players)
	return players
}

func (m *Match) Direction() int {
	return m.cycler.Direction()
}

func (m *Match) TopOfDiscard() card.Card {
	return m.pile.Top()
}

func (m *Match) HandOf(name string) ([]card.Card, error) {
	player := m.find(name)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player.Hand(), nil
}

func (m *Match) PendingChallenge() (PendingChallenge, bool) {
	if m.pending == nil {
		return PendingChallenge{}, false
	}
	return *m.pending.clone(), true
}

func (m *Match) Winner() *Player {
	return m.winner
}

func (m *Match) Phase() Phase {
	switch {
	case m.winner != nil:
		return MatchWon
	case m.pending != nil:
		return AwaitingChallengeDecision
	default:
		return AwaitingPlay
	}
}

func (m *Match) DeckSize() int {
	return m.deck.Size()
}

func (m *Match) PileSize() int {
	return m.pile.Size()
}

// CardCount is the number of cards across deck, discard pile and hands. Always DeckSize.
func (m *Match) CardCount() int {
	count := m.deck.Size() + m.pile.Size()
	for _, player := range m.players {
		count += player.hand.Size()
	}
	return count
}

// Draw gives the current player one card. The turn passes unless that card can be played.
func (m *Match) Draw(name string) (DrawResult, error) {
	player, err := m.turnOwner(name)
	if err != nil {
		return DrawResult{}, err
	}
	if m.drawable() < 1 {
		return DrawResult{}, ErrDeckAndDiscardExhausted
	}

	drawn := m.drawCards(player, 1)[0]
	result := DrawResult{
		PlayerName: player.name,
		Card:       drawn,
		Playable:   Playable(drawn, m.pile.Top()),
	}
	if !result.Playable {
		m.cycler.Next()
	}
	result.NextPlayerName = m.Current().name
	return result, nil
}

// DeclareCall flags the player as having called uno for their next play.
func (m *Match) DeclareCall(name string) error {
	player, err := m.activePlayer(name)
	if err != nil {
		return err
	}
	if m.pending != nil {
		return ErrChallengePending
	}
	if size := player.hand.Size(); size != 1 && size != 2 {
		return ErrInvalidCallState
	}
	player.calledUno = true
	return nil
}

// Play puts the card at index on the discard pile and resolves its effect.
// chosen is only read for wild cards; color.None means no choice was given.
func (m *Match) Play(name string, index int, chosen color.Color) (PlayResult, error) {
	player, err := m.turnOwner(name)
	if err != nil {
		return PlayResult{}, err
	}
	candidate, err := player.hand.At(index)
	if err != nil {
		return PlayResult{}, err
	}
	lastPlayedCard := m.pile.Top()
	if !Playable(candidate, lastPlayedCard) {
		return PlayResult{}, ErrIllegalPlay
	}
	if candidate.IsWild() {
		if chosen == color.None {
			return PlayResult{}, ErrMissingColorChoice
		}
		if !chosen.IsBase() {
			return PlayResult{}, ErrInvalidColorChoice
		}
	}

	handBeforePlay := player.hand.Cards()
	called := player.calledUno
	placed, err := player.hand.RemoveAt(index)
	if err != nil {
		return PlayResult{}, err
	}
	if placed.IsWild() {
		placed = placed.WithColor(chosen)
	}
	m.pile.Add(placed)

	result := PlayResult{PlayerName: player.name, Card: placed}
	if placed.IsWild() {
		result.Actions = append(result.Actions, action.NewPickColorAction(chosen))
	}

	if player.hand.Empty() {
		m.winner = player
		m.resetCalls()
		result.WinnerName = player.name
		return result, nil
	}

	result.Actions = append(result.Actions, m.performCardActions(player, placed, lastPlayedCard.Color(), handBeforePlay)...)

	if player.hand.Size() == 1 && !placed.IsWild() && !called {
		penalty := m.drawCards(player, UnoPenaltyCards)
		result.Actions = append(result.Actions, action.NewUnoPenaltyAction(player.name, penalty))
	}
	m.resetCalls()

	result.NextPlayerName = m.Current().name
	if m.pending != nil {
		result.Challenge = m.pending.clone()
	}
	return result, nil
}

func (m *Match) performCardActions(player *Player, placed card.Card, colorBeforePlay color.Color, handBeforePlay []card.Card) []action.Action {
	switch placed.Rank() {
	case card.Skip:
		skipped := m.players[m.cycler.Advance(1)]
		m.cycler.Next()
		return []action.Action{action.NewSkipTurnAction(skipped.name)}
	case card.Reverse:
		m.cycler.Reverse()
		if len(m.players) == 2 {
			// the only opponent loses the turn, which comes straight back
			opponent := m.players[m.cycler.Peek(1)]
			return []action.Action{action.NewReverseTurnsAction(), action.NewSkipTurnAction(opponent.name)}
		}
		m.cycler.Next()
		return []action.Action{action.NewReverseTurnsAction()}
	case card.DrawTwo:
		victim := m.players[m.cycler.Next()]
		drawn := m.drawCards(victim, DrawTwoCards)
		m.cycler.Next()
		return []action.Action{action.NewDrawCardsAction(victim.name, drawn), action.NewSkipTurnAction(victim.name)}
	case card.WildDrawFour:
		victim := m.players[m.cycler.Peek(1)]
		m.pending = &PendingChallenge{
			VictimName:      victim.name,
			PlayedByName:    player.name,
			HandBeforePlay:  handBeforePlay,
			ColorBeforePlay: colorBeforePlay,
		}
		return []action.Action{action.NewChallengeOpenedAction(victim.name)}
	default:
		// numbers and plain wilds
		m.cycler.Next()
		return nil
	}
}

// ChallengeDecision maps accept to Decline and a refusal to Challenge.
func (m *Match) ChallengeDecision(name string, accept bool) (ChallengeResult, error) {
	if accept {
		return m.Decline(name)
	}
	return m.Challenge(name)
}

func (m *Match) challengeVictim(name string) (*Player, error) {
	player, err := m.activePlayer(name)
	if err != nil {
		return nil, err
	}
	if m.pending == nil {
		return nil, ErrNoPendingChallenge
	}
	if m.pending.VictimName != player.name {
		return nil, ErrNotChallengeVictim
	}
	return player, nil
}

// Decline takes the four cards; the victim's turn is lost.
func (m *Match) Decline(name string) (ChallengeResult, error) {
	victim, err := m.challengeVictim(name)
	if err != nil {
		return ChallengeResult{}, err
	}
	pending := m.pending
	m.pending = nil
	drawn := m.drawCards(victim, DrawFourCards)
	m.cycler.Advance(2)
	return ChallengeResult{
		VictimName:     victim.name,
		PlayedByName:   pending.PlayedByName,
		DrawerName:     victim.name,
		Cards:          drawn,
		NextPlayerName: m.Current().name,
	}, nil
}

// Challenge accuses the wild draw four player of holding a card of the previous color.
// A correct accusation costs the accused four cards and gives the victim the turn;
// a wrong one costs the victim six cards and the turn.
func (m *Match) Challenge(name string) (ChallengeResult, error) {
	victim, err := m.challengeVictim(name)
	if err != nil {
		return ChallengeResult{}, err
	}
	pending := m.pending
	m.pending = nil

	result := ChallengeResult{
		VictimName:   victim.name,
		PlayedByName: pending.PlayedByName,
		Challenged:   true,
		Succeeded:    pending.Succeeds(),
	}
	if result.Succeeded {
		accused := m.find(pending.PlayedByName)
		result.DrawerName = accused.name
		result.Cards = m.drawCards(accused, DrawFourCards)
		m.cycler.Next()
	} else {
		result.DrawerName = victim.name
		result.Cards = m.drawCards(victim, FailedChallenge)
		m.cycler.Advance(2)
	}
	result.NextPlayerName = m.Current().name
	return result, nil
}
