package services

import (
	"stockbook-backend/dto"
	"stockbook-backend/utils"
)

// Printed-bill tax block: 15% VAT on the subtotal, then 3% withholding
// on the VAT-inclusive total.
const (
	vatRate      = 0.15
	withholdRate = 0.03
)

func billSummary(subtotal float64) dto.BillSummary {
	subtotal = utils.Round2(subtotal)
	vat := utils.Round2(subtotal * vatRate)
	totalAfterVAT := utils.Round2(subtotal + vat)
	withhold := utils.Round2(totalAfterVAT * withholdRate)
	netPayable := utils.Round2(totalAfterVAT - withhold)

	return dto.BillSummary{
		Subtotal:      subtotal,
		VAT:           vat,
		TotalAfterVAT: totalAfterVAT,
		Withhold:      withhold,
		NetPayable:    netPayable,
		NetInWords:    utils.AmountInWords(netPayable),
	}
}
