package game

// Error is a rejected command. The match is left untouched whenever one is returned.
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func newErr(code int, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

var (
	ErrNoActiveMatch           = newErr(1, "no active match")
	ErrPlayerNotFound          = newErr(2, "player not found")
	ErrNotPlayersTurn          = newErr(3, "not this player's turn")
	ErrInvalidCardIndex        = newErr(4, "invalid card index")
	ErrIllegalPlay             = newErr(5, "card cannot be played on the discard top")
	ErrMissingColorChoice      = newErr(6, "a color must be chosen for wild cards")
	ErrInvalidColorChoice      = newErr(7, "chosen color must be red, yellow, green or blue")
	ErrNoPendingChallenge      = newErr(8, "no pending challenge")
	ErrNotChallengeVictim      = newErr(9, "only the victim of the wild draw four may decide")
	ErrInvalidCallState        = newErr(10, "uno can only be called with one or two cards in hand")
	ErrDeckAndDiscardExhausted = newErr(11, "no cards left in deck nor discard pile")
	ErrChallengePending        = newErr(12, "waiting for the wild draw four challenge decision")
	ErrInvalidPlayers          = newErr(13, "a match needs between 2 and 10 players with unique names")
)
