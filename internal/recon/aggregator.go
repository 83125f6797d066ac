package recon

import "github.com/AscendAI/creator-catalyst-sub001/internal/model"

// Aggregate reduces a row list into payable totals.
//
// Base pay is owed per post: every non-irrelevant post on every row earns its
// own base rate, win or lose. Bonus pay is owed per clip: only the winning
// side of each row earns its bonus, so a cross-posted clip is never
// bonus-paid twice. The reduction is pure; running it again on the same rows
// yields the same breakdown.
func (e *Engine) Aggregate(rows []model.PairedRow) model.EarningsBreakdown {
	var out model.EarningsBreakdown

	for _, row := range rows {
		if p := row.Instagram; p != nil && !p.IsIrrelevant {
			out.BasePayCents += p.BasePayCents
		}
		if p := row.TikTok; p != nil && !p.IsIrrelevant {
			out.BasePayCents += p.BasePayCents
		}

		switch row.WinnerPlatform {
		case model.PlatformInstagram:
			out.BonusCents += row.Instagram.BonusCents
		case model.PlatformTikTok:
			out.BonusCents += row.TikTok.BonusCents
		}
	}

	out.TotalCents = out.BasePayCents + out.BonusCents
	return out
}
