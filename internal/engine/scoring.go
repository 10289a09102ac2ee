package engine

// ScoreEntry holds the final scoring breakdown for one player.
type ScoreEntry struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`

	PlayScore   int `json:"play_score"` // accumulated during play: events, medals, noble bonuses
	CoinScore   int `json:"coin_score"`
	MedalScore  int `json:"medal_score"`
	PodiumScore int `json:"podium_score"`
	TicketScore int `json:"ticket_score"`
	LogeScore   int `json:"loge_score"`
	ArenaScore  int `json:"arena_score"`

	Total int `json:"total"`
}

// FinalScores converts every remaining resource at the fixed rates and adds
// the scores accumulated during play. Deterministic: calling it twice on the
// same state yields the same entries.
func (g *Game) FinalScores() []ScoreEntry {
	entries := make([]ScoreEntry, len(g.Players))
	for i, p := range g.Players {
		e := ScoreEntry{
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			PlayScore:   p.Score,
			CoinScore:   p.Coins / g.Config.CoinsPerPoint,
			MedalScore:  p.Medals * g.Config.MedalFinalValue,
			PodiumScore: p.Podiums * g.Config.PodiumFinalValue,
			TicketScore: p.SeasonTickets * g.Config.TicketFinalValue,
			ArenaScore:  p.ArenaLevel * g.Config.ArenaLevelFinalValue,
		}
		if p.Loge {
			e.LogeScore = g.Config.LogeFinalValue
		}
		e.Total = e.PlayScore + e.CoinScore + e.MedalScore + e.PodiumScore +
			e.TicketScore + e.LogeScore + e.ArenaScore
		entries[i] = e
	}
	return entries
}
