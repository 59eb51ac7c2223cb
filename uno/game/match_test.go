package game_test

import (
	"fmt"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red7   = card.NewNumberCard(color.Red, 7)
	red5   = card.NewNumberCard(color.Red, 5)
	red2   = card.NewNumberCard(color.Red, 2)
	blue5  = card.NewNumberCard(color.Blue, 5)
	blue3  = card.NewNumberCard(color.Blue, 3)
	green1 = card.NewNumberCard(color.Green, 1)
)

func newMatch(t *testing.T, names ...string) *game.Match {
	match, err := game.New(names, game.WithRand(seeded(42)))
	require.NoError(t, err)
	return match
}

func handSize(t *testing.T, match *game.Match, name string) int {
	hand, err := match.HandOf(name)
	require.NoError(t, err)
	return len(hand)
}

func requireInvariants(t *testing.T, match *game.Match) {
	require.Equal(t, game.DeckSize, match.CardCount())
	require.Contains(t, []int{1, -1}, match.Direction())
	require.NotNil(t, match.Current())
}

func TestNew(t *testing.T) {
	for players := game.MinPlayers; players <= 5; players++ {
		t.Run(fmt.Sprintf("%d_players", players), func(t *testing.T) {
			names := make([]string, 0, players)
			for i := 0; i < players; i++ {
				names = append(names, fmt.Sprintf("player-%d", i))
			}
			match := newMatch(t, names...)

			require.Equal(t, game.DeckSize-game.StartingHandSize*players-1, match.DeckSize())
			require.Equal(t, 1, match.PileSize())
			require.NotEqual(t, color.Wild, match.TopOfDiscard().Color())
			for _, name := range names {
				require.Equal(t, game.StartingHandSize, handSize(t, match, name))
			}
			require.Equal(t, names[0], match.Current().Name())
			require.Equal(t, game.AwaitingPlay, match.Phase())
			require.Equal(t, 1, match.Direction())
			requireInvariants(t, match)
		})
	}

	t.Run("first_discard_is_never_wild", func(t *testing.T) {
		for seed := int64(0); seed < 200; seed++ {
			match, err := game.New([]string{"A", "B"}, game.WithRand(seeded(seed)))
			require.NoError(t, err)
			require.False(t, match.TopOfDiscard().IsWild())
			require.Equal(t, game.DeckSize, match.CardCount())
		}
	})

	t.Run("rejects_invalid_seating", func(t *testing.T) {
		for _, names := range [][]string{
			nil,
			{"A"},
			{"A", "A"},
			{"A", ""},
			{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"},
		} {
			_, err := game.New(names)
			require.ErrorIs(t, err, game.ErrInvalidPlayers)
		}
	})
}

func TestUnoPenalty(t *testing.T) {
	t.Run("forgotten_call_draws_two", func(t *testing.T) {
		match := newMatch(t, "A", "B")
		match.SetTop(red7)
		match.SetHand("A", red5, blue5)

		result, err := match.Play("A", 0, color.None)
		require.NoError(t, err)
		require.Equal(t, 3, handSize(t, match, "A"))
		require.Equal(t, "B", result.NextPlayerName)
		require.Equal(t, "B", match.Current().Name())

		hand, _ := match.HandOf("A")
		require.Equal(t, blue5, hand[0])
		penalty, ok := result.Actions[len(result.Actions)-1].(action.UnoPenaltyAction)
		require.True(t, ok)
		require.Equal(t, "A", penalty.PlayerName)
		require.Equal(t, 2, len(penalty.Cards))
		requireInvariants(t, match)
	})

	t.Run("declared_call_avoids_penalty", func(t *testing.T) {
		match := newMatch(t, "A", "B")
		match.SetTop(red7)
		match.SetHand("A", red5, blue5)

		require.NoError(t, match.DeclareCall("A"))
		require.True(t, match.Current().CalledUno())
		result, err := match.Play("A", 0, color.None)
		require.NoError(t, err)
		require.Equal(t, 1, handSize(t, match, "A"))
		require.Empty(t, result.Actions)
		for _, player := range match.Players() {
			require.False(t, player.CalledUno())
		}
	})

	t.Run("wild_play_to_one_card_is_not_penalized", func(t *testing.T) {
		match := newMatch(t, "A", "B")
		match.SetTop(red7)
		match.SetHand("A", card.NewWildCard(), blue5)

		_, err := match.Play("A", 0, color.Blue)
		require.NoError(t, err)
		require.Equal(t, 1, handSize(t, match, "A"))
	})

	t.Run("larger_hands_are_not_penalized", func(t *testing.T) {
		match := newMatch(t, "A", "B")
		match.SetTop(red7)
		match.SetHand("A", red5, blue5, green1)

		_, err := match.Play("A", 0, color.None)
		require.NoError(t, err)
		require.Equal(t, 2, handSize(t, match, "A"))
	})

	t.Run("calls_are_reset_by_any_resolved_play", func(t *testing.T) {
		match := newMatch(t, "A", "B", "C")
		match.SetTop(red7)
		match.SetHand("B", red5, blue5)
		match.SetHand("A", red2, blue3, green1)

		require.NoError(t, match.DeclareCall("B"))
		_, err := match.Play("A", 0, color.None)
		require.NoError(t, err)
		require.False(t, match.Players()[1].CalledUno())

		_, err = match.Play("B", 1, color.None)
		require.ErrorIs(t, err, game.ErrIllegalPlay)
		_, err = match.Play("B", 0, color.None)
		require.NoError(t, err)
		require.Equal(t, 3, handSize(t, match, "B"))
	})

	t.Run("call_needs_one_or_two_cards", func(t *testing.T) {
		match := newMatch(t, "A", "B")
		require.ErrorIs(t, match.DeclareCall("A"), game.ErrInvalidCallState)
		require.ErrorIs(t, match.DeclareCall("Z"), game.ErrPlayerNotFound)

		match.SetHand("B", blue5)
		require.NoError(t, match.DeclareCall("B"))
		match.SetHand("B", blue5, red5, red2)
		require.ErrorIs(t, match.DeclareCall("B"), game.ErrInvalidCallState)
	})
}

func TestWildDrawFourChallenge(t *testing.T) {
	setup := func(t *testing.T, hand ...card.Card) *game.Match {
		match := newMatch(t, "A", "B", "C")
		match.SetTop(red7)
		match.SetHand("A", hand...)

		result, err := match.Play("A", 0, color.Blue)
		require.NoError(t, err)
		require.NotNil(t, result.Challenge)
		require.Equal(t, "B", result.Challenge.VictimName)
		require.Equal(t, "A", result.Challenge.PlayedByName)
		require.Equal(t, color.Red, result.Challenge.ColorBeforePlay)
		require.Equal(t, hand, result.Challenge.HandBeforePlay)
		require.Equal(t, "A", result.NextPlayerName)
		require.Equal(t, game.AwaitingChallengeDecision, match.Phase())
		require.Equal(t, card.NewWildDrawFourCard().WithColor(color.Blue), match.TopOfDiscard())
		require.Equal(t, game.StartingHandSize, handSize(t, match, "B"))
		requireInvariants(t, match)
		return match
	}

	t.Run("failed_challenge_costs_the_victim_six", func(t *testing.T) {
		match := setup(t, card.NewWildDrawFourCard(), blue3, green1)

		result, err := match.ChallengeDecision("B", false)
		require.NoError(t, err)
		require.True(t, result.Challenged)
		require.False(t, result.Succeeded)
		require.Equal(t, "B", result.DrawerName)
		require.Len(t, result.Cards, 6)
		require.Equal(t, game.StartingHandSize+6, handSize(t, match, "B"))
		require.Equal(t, "C", match.Current().Name())
		_, pending := match.PendingChallenge()
		require.False(t, pending)
		require.Equal(t, game.AwaitingPlay, match.Phase())
		requireInvariants(t, match)
	})

	t.Run("successful_challenge_costs_the_player_four", func(t *testing.T) {
		match := setup(t, card.NewWildDrawFourCard(), red2, blue3)

		result, err := match.Challenge("B")
		require.NoError(t, err)
		require.True(t, result.Succeeded)
		require.Equal(t, "A", result.DrawerName)
		require.Equal(t, 2+4, handSize(t, match, "A"))
		require.Equal(t, game.StartingHandSize, handSize(t, match, "B"))
		require.Equal(t, "B", match.Current().Name())
		requireInvariants(t, match)
	})

	t.Run("declining_draws_four_and_loses_the_turn", func(t *testing.T) {
		match := setup(t, card.NewWildDrawFourCard(), red2, blue3)

		result, err := match.ChallengeDecision("B", true)
		require.NoError(t, err)
		require.False(t, result.Challenged)
		require.Equal(t, "B", result.DrawerName)
		require.Equal(t, game.StartingHandSize+4, handSize(t, match, "B"))
		require.Equal(t, "C", result.NextPlayerName)
		requireInvariants(t, match)
	})

	t.Run("only_the_victim_decides_and_nothing_else_moves", func(t *testing.T) {
		match := setup(t, card.NewWildDrawFourCard(), red2, blue3)
		before := match.ExtractState("A")

		_, err := match.Challenge("C")
		require.ErrorIs(t, err, game.ErrNotChallengeVictim)
		_, err = match.Decline("A")
		require.ErrorIs(t, err, game.ErrNotChallengeVictim)
		_, err = match.Play("A", 0, color.None)
		require.ErrorIs(t, err, game.ErrChallengePending)
		_, err = match.Draw("A")
		require.ErrorIs(t, err, game.ErrChallengePending)
		require.ErrorIs(t, match.DeclareCall("A"), game.ErrChallengePending)
		_, err = match.Challenge("Z")
		require.ErrorIs(t, err, game.ErrPlayerNotFound)

		require.Equal(t, before, match.ExtractState("A"))
	})

	t.Run("color_before_play_follows_a_previous_wild", func(t *testing.T) {
		match := newMatch(t, "A", "B", "C")
		match.SetTop(red7)
		match.SetHand("A", card.NewWildCard(), red5, red2)
		match.SetHand("B", card.NewWildDrawFourCard(), green1, blue3)

		_, err := match.Play("A", 0, color.Green)
		require.NoError(t, err)
		result, err := match.Play("B", 0, color.Blue)
		require.NoError(t, err)
		require.Equal(t, color.Green, result.Challenge.ColorBeforePlay)

		outcome, err := match.Challenge("C")
		require.NoError(t, err)
		require.True(t, outcome.Succeeded)
		require.Equal(t, 2+4, handSize(t, match, "B"))
		require.Equal(t, "C", match.Current().Name())
	})

	t.Run("no_pending_challenge", func(t *testing.T) {
		match := newMatch(t, "A", "B")
		_, err := match.Challenge("B")
		require.ErrorIs(t, err, game.ErrNoPendingChallenge)
		_, err = match.Decline("B")
		require.ErrorIs(t, err, game.ErrNoPendingChallenge)
	})
}

func TestCardEffects(t *testing.T) {
	t.Run("draw_two_hits_the_next_player_and_skips_them", func(t *testing.T) {
		match := newMatch(t, "A", "B", "C")
		match.SetTop(red7)
		match.SetHand("A", card.NewDrawTwoCard(color.Red), blue3, green1)

		result, err := match.Play("A", 0, color.None)
		require.NoError(t, err)
		require.Equal(t, game.StartingHandSize+2, handSize(t, match, "B"))
		require.Equal(t, "C", match.Current().Name())
		drawn, ok := result.Actions[0].(action.DrawCardsAction)
		require.True(t, ok)
		require.Equal(t, "B", drawn.PlayerName)
		require.Equal(t, 2, drawn.Amount())
		require.Equal(t, action.NewSkipTurnAction("B"), result.Actions[1])
		requireInvariants(t, match)
	})

	t.Run("skip_passes_over_the_next_player", func(t *testing.T) {
		match := newMatch(t, "A", "B", "C")
		match.SetTop(red7)
		match.SetHand("A", card.NewSkipCard(color.Red), blue3, green1)

		result, err := match.Play("A", 0, color.None)
		require.NoError(t, err)
		require.Equal(t, "C", match.Current().Name())
		require.Equal(t, []action.Action{action.NewSkipTurnAction("B")}, result.Actions)
	})

	t.Run("reverse_changes_direction", func(t *testing.T) {
		match := newMatch(t, "A", "B", "C", "D")
		match.SetTop(red7)
		match.SetHand("A", card.NewReverseCard(color.Red), blue3, green1)

		result, err := match.Play("A", 0, color.None)
		require.NoError(t, err)
		require.Equal(t, -1, match.Direction())
		require.Equal(t, "D", match.Current().Name())
		require.Equal(t, []action.Action{action.NewReverseTurnsAction()}, result.Actions)
	})

	t.Run("reverse_with_two_players_acts_as_skip", func(t *testing.T) {
		reversed := newMatch(t, "A", "B")
		reversed.SetTop(red7)
		reversed.SetHand("A", card.NewReverseCard(color.Red), blue3, green1)
		_, err := reversed.Play("A", 0, color.None)
		require.NoError(t, err)

		skipped := newMatch(t, "A", "B")
		skipped.SetTop(red7)
		skipped.SetHand("A", card.NewSkipCard(color.Red), blue3, green1)
		_, err = skipped.Play("A", 0, color.None)
		require.NoError(t, err)

		require.Equal(t, "A", reversed.Current().Name())
		require.Equal(t, skipped.Current().Name(), reversed.Current().Name())
	})

	t.Run("draw_two_follows_the_reversed_direction", func(t *testing.T) {
		match := newMatch(t, "A", "B", "C", "D")
		match.SetTop(red7)
		match.SetHand("A", card.NewReverseCard(color.Red), blue3, green1)
		match.SetHand("D", card.NewDrawTwoCard(color.Red), red5, red2)

		_, err := match.Play("A", 0, color.None)
		require.NoError(t, err)
		_, err = match.Play("D", 0, color.None)
		require.NoError(t, err)
		require.Equal(t, game.StartingHandSize+2, handSize(t, match, "C"))
		require.Equal(t, "B", match.Current().Name())
	})

	t.Run("wild_sets_the_chosen_color", func(t *testing.T) {
		match := newMatch(t, "A", "B", "C")
		match.SetTop(red7)
		match.SetHand("A", card.NewWildCard(), blue3, green1)
		before := match.ExtractState("A")

		_, err := match.Play("A", 0, color.None)
		require.ErrorIs(t, err, game.ErrMissingColorChoice)
		_, err = match.Play("A", 0, color.Wild)
		require.ErrorIs(t, err, game.ErrInvalidColorChoice)
		require.Equal(t, before, match.ExtractState("A"))

		result, err := match.Play("A", 0, color.Green)
		require.NoError(t, err)
		require.Equal(t, card.NewWildCard().WithColor(color.Green), match.TopOfDiscard())
		require.Equal(t, card.NewWildCard().WithColor(color.Green), result.Card)
		require.Equal(t, []action.Action{action.NewPickColorAction(color.Green)}, result.Actions)
		require.Equal(t, "B", match.Current().Name())
		hand, err := match.HandOf("A")
		require.NoError(t, err)
		require.Equal(t, []card.Card{blue3, green1}, hand)
	})

	t.Run("played_card_leaves_the_hand", func(t *testing.T) {
		match := newMatch(t, "A", "B")
		match.SetTop(red7)
		match.SetHand("A", blue3, red5, green1)

		result, err := match.Play("A", 1, color.None)
		require.NoError(t, err)
		require.Equal(t, red5, result.Card)
		require.Equal(t, red5, match.TopOfDiscard())
		hand, err := match.HandOf("A")
		require.NoError(t, err)
		require.Equal(t, []card.Card{blue3, green1}, hand)
		requireInvariants(t, match)
	})
}

func TestWin(t *testing.T) {
	scenarios := []struct {
		description string
		lastCard    card.Card
		chosen      color.Color
	}{
		{description: "number_card", lastCard: red5},
		{description: "draw_two_does_not_hit_the_victim", lastCard: card.NewDrawTwoCard(color.Red)},
		{description: "wild_draw_four_opens_no_challenge", lastCard: card.NewWildDrawFourCard(), chosen: color.Blue},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			match := newMatch(t, "A", "B")
			match.SetTop(red7)
			match.SetHand("A", scenario.lastCard)

			result, err := match.Play("A", 0, scenario.chosen)
			require.NoError(t, err)
			require.True(t, result.Won())
			require.Equal(t, "A", match.Winner().Name())
			require.Equal(t, game.MatchWon, match.Phase())
			require.Equal(t, 0, handSize(t, match, "A"))
			require.Equal(t, game.StartingHandSize, handSize(t, match, "B"))
			require.Equal(t, "A", match.Current().Name())
			_, pending := match.PendingChallenge()
			require.False(t, pending)
			requireInvariants(t, match)

			_, err = match.Draw("B")
			require.ErrorIs(t, err, game.ErrNoActiveMatch)
			_, err = match.Play("B", 0, color.None)
			require.ErrorIs(t, err, game.ErrNoActiveMatch)
		})
	}
}

func TestRejectedCommandsLeaveTheMatchUnchanged(t *testing.T) {
	match := newMatch(t, "A", "B", "C")
	match.SetTop(red7)
	match.SetHand("A", blue3, green1)
	before := match.ExtractState("A")

	_, err := match.Play("B", 0, color.None)
	assert.ErrorIs(t, err, game.ErrNotPlayersTurn)
	_, err = match.Draw("C")
	assert.ErrorIs(t, err, game.ErrNotPlayersTurn)
	_, err = match.Play("Z", 0, color.None)
	assert.ErrorIs(t, err, game.ErrPlayerNotFound)
	_, err = match.Play("A", 2, color.None)
	assert.ErrorIs(t, err, game.ErrInvalidCardIndex)
	_, err = match.Play("A", -1, color.None)
	assert.ErrorIs(t, err, game.ErrInvalidCardIndex)
	_, err = match.Play("A", 0, color.None)
	assert.ErrorIs(t, err, game.ErrIllegalPlay)

	require.Equal(t, before, match.ExtractState("A"))
}

func TestMatchDraw(t *testing.T) {
	t.Run("unplayable_card_passes_the_turn", func(t *testing.T) {
		match := newMatch(t, "A", "B")
		match.SetTop(red7)
		match.StackDeck(blue3)

		result, err := match.Draw("A")
		require.NoError(t, err)
		require.Equal(t, blue3, result.Card)
		require.False(t, result.Playable)
		require.Equal(t, "B", result.NextPlayerName)
		require.Equal(t, game.StartingHandSize+1, handSize(t, match, "A"))
	})

	t.Run("playable_card_keeps_the_turn", func(t *testing.T) {
		match := newMatch(t, "A", "B")
		match.SetTop(red7)
		match.StackDeck(red5)

		result, err := match.Draw("A")
		require.NoError(t, err)
		require.True(t, result.Playable)
		require.Equal(t, "A", match.Current().Name())
	})

	t.Run("recycles_the_discard_pile_when_the_deck_is_empty", func(t *testing.T) {
		match := newMatch(t, "A", "B", "C")
		match.Bury(10)
		top := match.TopOfDiscard()
		match.EmptyDeckInto("C")
		require.Equal(t, 0, match.DeckSize())

		_, err := match.Draw("A")
		require.NoError(t, err)
		require.Equal(t, 9, match.DeckSize())
		require.Equal(t, 1, match.PileSize())
		require.Equal(t, top, match.TopOfDiscard())
		requireInvariants(t, match)
	})

	t.Run("fails_when_deck_and_discard_are_exhausted", func(t *testing.T) {
		match := newMatch(t, "A", "B", "C")
		match.EmptyDeckInto("C")
		before := match.ExtractState("A")

		_, err := match.Draw("A")
		require.ErrorIs(t, err, game.ErrDeckAndDiscardExhausted)
		require.Equal(t, before, match.ExtractState("A"))
	})

	t.Run("effect_draws_take_what_is_left", func(t *testing.T) {
		match := newMatch(t, "A", "B", "C")
		match.SetTop(red7)
		match.SetHand("A", card.NewDrawTwoCard(color.Red), blue3, green1)
		match.EmptyDeckInto("C")

		result, err := match.Play("A", 0, color.None)
		require.NoError(t, err)
		drawn := result.Actions[0].(action.DrawCardsAction)
		require.Equal(t, []card.Card{red7}, drawn.Cards)
		require.Equal(t, game.StartingHandSize+1, handSize(t, match, "B"))
		require.Equal(t, "C", match.Current().Name())
		requireInvariants(t, match)
	})
}

func TestStateSnapshot(t *testing.T) {
	match := newMatch(t, "A", "B")
	match.SetTop(red7)
	match.SetHand("A", red5, blue5)

	state := match.ExtractState("A")
	require.Equal(t, red7, state.LastPlayedCard)
	require.Equal(t, []card.Card{red5, blue5}, state.CurrentPlayerHand)
	require.Equal(t, []string{"A", "B"}, state.PlayerSequence)
	require.Equal(t, map[string]int{"A": 2, "B": game.StartingHandSize}, state.PlayerHandCounts)
	require.Equal(t, "A", state.CurrentPlayer)
	require.Equal(t, game.AwaitingPlay, state.Phase)
	require.Contains(t, state.String(), "Your hand: 0:")

	require.Empty(t, match.ExtractState("nobody").CurrentPlayerHand)
}

// Plays whole matches with arbitrary legal moves and checks the card count after each command.
func TestInvariantsHoldThroughRandomMatches(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		source := seeded(seed)
		match, err := game.New([]string{"A", "B", "C", "D"}, game.WithRand(seeded(seed*31)))
		require.NoError(t, err)

		for step := 0; step < 2000 && match.Phase() != game.MatchWon; step++ {
			if pending, ok := match.PendingChallenge(); ok {
				_, err = match.ChallengeDecision(pending.VictimName, source.Intn(2) == 0)
				require.NoError(t, err)
				requireInvariants(t, match)
				continue
			}

			current := match.Current()
			hand := current.Hand()
			if len(hand) == 2 && source.Intn(2) == 0 {
				require.NoError(t, match.DeclareCall(current.Name()))
			}
			played := false
			for index, c := range hand {
				if game.Playable(c, match.TopOfDiscard()) {
					_, err = match.Play(current.Name(), index, color.Base[source.Intn(len(color.Base))])
					require.NoError(t, err)
					played = true
					break
				}
			}
			if !played {
				if _, err = match.Draw(current.Name()); err != nil {
					require.ErrorIs(t, err, game.ErrDeckAndDiscardExhausted)
					break
				}
			}
			requireInvariants(t, match)
		}
	}
}
