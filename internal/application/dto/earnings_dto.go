package dto

import "github.com/shopspring/decimal"

// EarningsReportRequest query de GET /api/earnings/report y de las exportaciones.
type EarningsReportRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; vacío = sin límite inferior
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; inclusivo hasta el fin del día
	Search    string `query:"search" validate:"max=200"`
}

// EarningsPreviewRequest cálculo sobre órdenes enviadas por el cliente.
// Sin commission_percent se usa la comisión por defecto.
type EarningsPreviewRequest struct {
	CommissionPercent *float64      `json:"commission_percent"`
	StartDate         string        `json:"start_date"`
	EndDate           string        `json:"end_date"`
	Search            string        `json:"search" validate:"max=200"`
	Orders            RawOrderList  `json:"orders" validate:"required"`
}

// EarningsRecordDTO fila del reporte: datos de display + desglose.
type EarningsRecordDTO struct {
	OrderID            string          `json:"order_id"`
	OrderDate          string          `json:"order_date"`
	CustomerName       string          `json:"customer_name"`
	CustomerPhone      string          `json:"customer_phone"`
	CustomerEmail      string          `json:"customer_email"`
	RestaurantName     string          `json:"restaurant_name"`
	Products           string          `json:"products"`
	SubTotal           decimal.Decimal `json:"sub_total"`
	CommissionPercent  decimal.Decimal `json:"commission_percent"`
	CommissionAmount   decimal.Decimal `json:"commission_amount"`
	GSTOnCommission    decimal.Decimal `json:"gst_on_commission"`
	VendorGrossEarning decimal.Decimal `json:"vendor_gross_earning"`
	TDSOnVendorEarning decimal.Decimal `json:"tds_on_vendor_earning"`
	NetPayable         decimal.Decimal `json:"net_payable"`
}

// EarningsSummaryDTO totales del subconjunto filtrado.
type EarningsSummaryDTO struct {
	TotalOrders              int             `json:"total_orders"`
	TotalSubtotal            decimal.Decimal `json:"total_subtotal"`
	TotalCommission          decimal.Decimal `json:"total_commission"`
	TotalVendorEarning       decimal.Decimal `json:"total_vendor_earning"`
	TotalGST                 decimal.Decimal `json:"total_gst"`
	TotalTDS                 decimal.Decimal `json:"total_tds"`
	NetPayable               decimal.Decimal `json:"net_payable"`
	AverageCommissionPercent decimal.Decimal `json:"average_commission_percent"`
}

// RejectedDTO orden descartada por montos inválidos.
type RejectedDTO struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

// EarningsReportResponse respuesta de GET /api/earnings/report.
type EarningsReportResponse struct {
	Period              PeriodDTO           `json:"period"`
	Search              string              `json:"search,omitempty"`
	CommissionPercent   decimal.Decimal     `json:"commission_percent"`
	CommissionDefaulted bool                `json:"commission_defaulted"`
	Records             []EarningsRecordDTO `json:"records"`
	Summary             EarningsSummaryDTO  `json:"summary"`
	Rejected            []RejectedDTO       `json:"rejected,omitempty"`
}
