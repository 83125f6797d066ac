package recon

import "github.com/AscendAI/creator-catalyst-sub001/internal/model"

// ResolveWinners annotates each row with the platform whose bonus is payable.
//
// For a pair: both sides irrelevant → no winner; exactly one irrelevant → the
// other side wins unconditionally; otherwise the higher view count wins, with
// Instagram taking an exact tie. For a solo row the post wins unless it is
// irrelevant. Only IsIrrelevant gates winner selection.
func (e *Engine) ResolveWinners(rows []model.PairedRow) {
	for i := range rows {
		rows[i].WinnerPlatform = resolveWinner(&rows[i])
	}
}

func resolveWinner(row *model.PairedRow) model.Platform {
	a, b := row.Instagram, row.TikTok

	switch {
	case a != nil && b != nil:
		switch {
		case a.IsIrrelevant && b.IsIrrelevant:
			return model.PlatformNone
		case a.IsIrrelevant:
			return model.PlatformTikTok
		case b.IsIrrelevant:
			return model.PlatformInstagram
		case b.Views > a.Views:
			return model.PlatformTikTok
		default:
			// Instagram wins the exact tie. Deterministic on purpose so
			// reruns never flip a payout.
			return model.PlatformInstagram
		}

	case a != nil:
		if a.IsIrrelevant {
			return model.PlatformNone
		}
		return model.PlatformInstagram

	case b != nil:
		if b.IsIrrelevant {
			return model.PlatformNone
		}
		return model.PlatformTikTok

	default:
		return model.PlatformNone
	}
}
