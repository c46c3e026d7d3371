package earnings

import (
	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/earnings"
)

func toRecordDTOs(records []earnings.Record) []dto.EarningsRecordDTO {
	out := make([]dto.EarningsRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.EarningsRecordDTO{
			OrderID:            r.Order.ID,
			OrderDate:          r.Order.OrderDate,
			CustomerName:       r.Order.CustomerName,
			CustomerPhone:      r.Order.CustomerPhone,
			CustomerEmail:      r.Order.CustomerEmail,
			RestaurantName:     r.Order.RestaurantName,
			Products:           r.Order.Products,
			SubTotal:           r.SubTotal,
			CommissionPercent:  r.CommissionPercent,
			CommissionAmount:   r.CommissionAmount,
			GSTOnCommission:    r.GSTOnCommission,
			VendorGrossEarning: r.VendorGrossEarning,
			TDSOnVendorEarning: r.TDSOnVendorEarning,
			NetPayable:         r.NetPayable,
		})
	}
	return out
}

func toSummaryDTO(s earnings.Summary) dto.EarningsSummaryDTO {
	return dto.EarningsSummaryDTO{
		TotalOrders:              s.TotalOrders,
		TotalSubtotal:            s.TotalSubtotal,
		TotalCommission:          s.TotalCommission,
		TotalVendorEarning:       s.TotalVendorEarning,
		TotalGST:                 s.TotalGST,
		TotalTDS:                 s.TotalTDS,
		NetPayable:               s.NetPayable,
		AverageCommissionPercent: s.AverageCommissionPercent,
	}
}

// ToRejectedDTOs expone las órdenes descartadas con el motivo legible.
func ToRejectedDTOs(rejected []earnings.Rejection) []dto.RejectedDTO {
	if len(rejected) == 0 {
		return nil
	}
	out := make([]dto.RejectedDTO, 0, len(rejected))
	for _, r := range rejected {
		out = append(out, dto.RejectedDTO{OrderID: r.OrderID, Reason: r.Err.Error()})
	}
	return out
}
