package entity

// Player is one seat of a game. The human always plays X and moves first; the computer plays O.
type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
	Bot  bool   `json:"bot,omitempty"`
}

func (that *Player) IsBot() bool {
	return that.Bot
}
