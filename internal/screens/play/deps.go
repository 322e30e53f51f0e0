package play

import (
	"time"

	"github.com/abhisek/playdeck/internal/catalog"
	"github.com/abhisek/playdeck/internal/rewards"
	"github.com/abhisek/playdeck/internal/sound"
	"github.com/abhisek/playdeck/internal/timer"
)

// Deps are the long-lived collaborators every game screen shares.
type Deps struct {
	Catalog *catalog.Catalog
	Wallet  *rewards.Wallet
	Sound   sound.Player
	Clock   timer.Clock
	// AdvanceDelay overrides every game's delay when non-zero.
	AdvanceDelay time.Duration
}

func (d Deps) clock() timer.Clock {
	if d.Clock == nil {
		return timer.Real()
	}
	return d.Clock
}

func (d Deps) sound() sound.Player {
	if d.Sound == nil {
		return sound.Nop{}
	}
	return d.Sound
}
