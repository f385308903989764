package services

import "github.com/shopspring/decimal"

const (
	MaxCreditScore = 100

	pointsPerCrop       = 10
	pointsPerActiveCrop = 5
	profitBonus         = 20
)

// CreditScore rates a farmer from 0 to 100. Only a strictly positive net
// profit earns the bonus.
func CreditScore(cropCount, activeCropCount int, netProfit decimal.Decimal) int {
	score := cropCount*pointsPerCrop + activeCropCount*pointsPerActiveCrop
	if netProfit.IsPositive() {
		score += profitBonus
	}
	if score > MaxCreditScore {
		return MaxCreditScore
	}
	if score < 0 {
		return 0
	}
	return score
}
