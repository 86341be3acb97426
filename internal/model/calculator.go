package model

// CostEstimate holds the purchase cost derived from a calculation result.
type CostEstimate struct {
	PricePerRoll     float64 `json:"price_per_roll"`
	RollsNeeded      int     `json:"rolls_needed"`
	RollsWithMargin  int     `json:"rolls_with_margin"`
	CostMinimum      float64 `json:"cost_minimum"`     // Cost of the minimum rolls
	CostWithMargin   float64 `json:"cost_with_margin"` // Cost of the recommended purchase
	CostPerSquareM   float64 `json:"cost_per_square_m"`
	EffectiveAreaM2  float64 `json:"effective_area_m2"`
	PurchasedLengthM float64 `json:"purchased_length_m"`
	PurchasedAreaM2  float64 `json:"purchased_area_m2"`
	WastePercentage  float64 `json:"waste_percentage"`
	MarginExtraRolls int     `json:"margin_extra_rolls"` // Rolls added by the 10% margin
	MarginExtraCost  float64 `json:"margin_extra_cost"`
}

// EstimateCost prices a calculation result for the given roll.
// A zero or negative price yields zero costs but keeps the quantities.
func EstimateCost(result CalculationResult, roll RollSpec, pricePerRoll float64) CostEstimate {
	if pricePerRoll < 0 {
		pricePerRoll = 0
	}

	purchasedLength := float64(result.RollsWithMargin) * roll.LengthM
	est := CostEstimate{
		PricePerRoll:     pricePerRoll,
		RollsNeeded:      result.RollsNeeded,
		RollsWithMargin:  result.RollsWithMargin,
		CostMinimum:      float64(result.RollsNeeded) * pricePerRoll,
		CostWithMargin:   float64(result.RollsWithMargin) * pricePerRoll,
		EffectiveAreaM2:  result.EffectiveAreaM2,
		PurchasedLengthM: purchasedLength,
		PurchasedAreaM2:  purchasedLength * roll.WidthCm / 100.0,
		WastePercentage:  result.WastePercentage,
		MarginExtraRolls: result.RollsWithMargin - result.RollsNeeded,
	}
	est.MarginExtraCost = float64(est.MarginExtraRolls) * pricePerRoll

	if result.EffectiveAreaM2 > 0 {
		est.CostPerSquareM = est.CostWithMargin / result.EffectiveAreaM2
	}
	return est
}
