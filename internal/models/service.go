package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service categories
const (
	ServiceCreditScore      = "SCORE_CREDITICIO"
	ServiceCurrencyBuy      = "COMPRA_DIVISAS"
	ServiceCurrencySell     = "VENTA_DIVISAS"
	ServiceFinancialAdvisor = "ASESOR_FINANCIERO"
	ServicePersonalLoans    = "PRESTAMOS_PERSONALES"
	ServiceInvestments      = "INVERSIONES"
	ServiceInsurance        = "SEGUROS"
	ServiceTaxFiling        = "DECLARACION_RENTA"
)

// Service statuses
const (
	ServiceAvailable  = "DISPONIBLE"
	ServiceInProgress = "EN_PROCESO"
	ServiceCompleted  = "COMPLETADO"
	ServiceSuspended  = "SUSPENDIDO"
)

// FinancialService is a read-only catalog item representing an offered
// financial product.
type FinancialService struct {
	ID              string           `json:"id" yaml:"id"`
	Category        string           `json:"category" yaml:"category"`
	Title           string           `json:"title" yaml:"title"`
	Description     string           `json:"description" yaml:"description"`
	LongDescription string           `json:"long_description" yaml:"long_description"`
	Icon            string           `json:"icon" yaml:"icon"`
	Price           *decimal.Decimal `json:"price,omitempty" yaml:"price,omitempty"`
	Currency        string           `json:"currency,omitempty" yaml:"currency,omitempty"`
	Status          string           `json:"status" yaml:"status"`
	EstimatedTime   string           `json:"estimated_time" yaml:"estimated_time"`
	Requirements    []string         `json:"requirements" yaml:"requirements"`
	Tags            []string         `json:"tags" yaml:"tags"`
	Rating          float64          `json:"rating,omitempty" yaml:"rating,omitempty"`
	ReviewCount     int              `json:"review_count,omitempty" yaml:"review_count,omitempty"`
}

// ServiceRequestPayload is a user's expression of interest in a service.
type ServiceRequestPayload struct {
	ServiceID string `json:"service_id"`
	UserID    string `json:"user_id"`
	Notes     string `json:"notes,omitempty"`
}

// ServiceRequest is the recorded request. Status transitions happen
// operator-side; the client never mutates a request after creation.
type ServiceRequest struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"service_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
