// Package services provides the financial-service catalog. The catalog is
// read-only from the client's perspective; the request path is a stub
// collaborator that fabricates a confirmed request without real
// persistence, mirroring the backend integration as it stands.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hwilson/finwat/internal/models"
)

// Catalog serves the built-in service list and accepts requests.
type Catalog struct {
	now func() time.Time
}

// NewCatalog creates the catalog.
func NewCatalog() *Catalog {
	return &Catalog{now: time.Now}
}

// List returns the full service catalog.
func (c *Catalog) List(ctx context.Context) ([]models.FinancialService, error) {
	return catalogEntries(), nil
}

// Get returns a single service by identifier, or nil when unknown.
func (c *Catalog) Get(ctx context.Context, id string) (*models.FinancialService, error) {
	for _, s := range catalogEntries() {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

// Request records a user's expression of interest. Status transitions are
// operator-side; the client only ever sees the freshly created request.
func (c *Catalog) Request(ctx context.Context, payload models.ServiceRequestPayload) (*models.ServiceRequest, error) {
	now := c.now()
	return &models.ServiceRequest{
		ID:        "req-" + uuid.NewString(),
		ServiceID: payload.ServiceID,
		UserID:    payload.UserID,
		Status:    models.RequestPending,
		Notes:     payload.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RequestsFor returns the user's previous requests. Nothing persists them
// yet, so the list is empty.
func (c *Catalog) RequestsFor(ctx context.Context, userID string) ([]models.ServiceRequest, error) {
	return nil, nil
}

func price(v string) *decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &d
}

func catalogEntries() []models.FinancialService {
	return []models.FinancialService{
		{
			ID:              "srv-1",
			Category:        models.ServiceCreditScore,
			Title:           "Score Crediticio",
			Description:     "Consulta tu puntaje crediticio actualizado",
			LongDescription: "Obtén tu reporte de score crediticio con el detalle de los factores que lo afectan y recomendaciones para mejorarlo.",
			Icon:            "📈",
			Price:           price("15.00"),
			Currency:        "USD",
			Status:          models.ServiceAvailable,
			EstimatedTime:   "24 horas",
			Requirements:    []string{"Documento de identidad", "Correo electrónico verificado"},
			Tags:            []string{"crédito", "reporte"},
			Rating:          4.6,
			ReviewCount:     128,
		},
		{
			ID:              "srv-2",
			Category:        models.ServiceCurrencyBuy,
			Title:           "Compra de Divisas",
			Description:     "Compra dólares y euros a tipo de cambio preferente",
			LongDescription: "Cambio de moneda con tipo de cambio preferente y transferencia el mismo día a tu cuenta.",
			Icon:            "💵",
			Status:          models.ServiceAvailable,
			EstimatedTime:   "Mismo día",
			Requirements:    []string{"Cuenta bancaria activa"},
			Tags:            []string{"divisas", "cambio"},
			Rating:          4.8,
			ReviewCount:     342,
		},
		{
			ID:              "srv-3",
			Category:        models.ServiceCurrencySell,
			Title:           "Venta de Divisas",
			Description:     "Vende tus dólares al mejor tipo de cambio",
			LongDescription: "Vende moneda extranjera con abono inmediato en moneda local.",
			Icon:            "💱",
			Status:          models.ServiceAvailable,
			EstimatedTime:   "Mismo día",
			Requirements:    []string{"Cuenta bancaria activa"},
			Tags:            []string{"divisas", "cambio"},
			Rating:          4.7,
			ReviewCount:     215,
		},
		{
			ID:              "srv-4",
			Category:        models.ServiceFinancialAdvisor,
			Title:           "Asesor Financiero",
			Description:     "Sesión personalizada con un asesor certificado",
			LongDescription: "Una hora de asesoría uno a uno para ordenar tus finanzas, planificar metas y revisar tu presupuesto.",
			Icon:            "🧑‍💼",
			Price:           price("50.00"),
			Currency:        "USD",
			Status:          models.ServiceAvailable,
			EstimatedTime:   "Agenda en 48 horas",
			Requirements:    []string{"Cuestionario de perfil financiero"},
			Tags:            []string{"asesoría", "planificación"},
			Rating:          4.9,
			ReviewCount:     87,
		},
		{
			ID:              "srv-5",
			Category:        models.ServicePersonalLoans,
			Title:           "Préstamos Personales",
			Description:     "Préstamos desde S/ 1,000 con tasa preferencial",
			LongDescription: "Evaluación crediticia y desembolso rápido, sin aval, con cuotas fijas mensuales.",
			Icon:            "🏦",
			Status:          models.ServiceAvailable,
			EstimatedTime:   "72 horas",
			Requirements:    []string{"Documento de identidad", "Constancia de ingresos", "Score crediticio mínimo"},
			Tags:            []string{"préstamo", "crédito"},
			Rating:          4.3,
			ReviewCount:     56,
		},
		{
			ID:              "srv-6",
			Category:        models.ServiceInvestments,
			Title:           "Inversiones",
			Description:     "Fondos mutuos y depósitos a plazo desde S/ 500",
			LongDescription: "Portafolios diversificados según tu perfil de riesgo, con seguimiento mensual.",
			Icon:            "📊",
			Status:          models.ServiceInProgress,
			EstimatedTime:   "1 semana",
			Requirements:    []string{"Cuenta bancaria activa", "Perfil de riesgo"},
			Tags:            []string{"inversión", "fondos"},
			Rating:          4.5,
			ReviewCount:     73,
		},
		{
			ID:              "srv-7",
			Category:        models.ServiceInsurance,
			Title:           "Seguros",
			Description:     "Seguros de vida, salud y vehiculares",
			LongDescription: "Cotiza y contrata seguros con las principales aseguradoras en un solo lugar.",
			Icon:            "🛡️",
			Status:          models.ServiceAvailable,
			EstimatedTime:   "48 horas",
			Requirements:    []string{"Documento de identidad"},
			Tags:            []string{"seguro", "protección"},
			Rating:          4.4,
			ReviewCount:     91,
		},
		{
			ID:              "srv-8",
			Category:        models.ServiceTaxFiling,
			Title:           "Declaración de Renta",
			Description:     "Presentación de tu declaración anual de impuestos",
			LongDescription: "Un contador colegiado prepara y presenta tu declaración anual, con revisión de deducciones aplicables.",
			Icon:            "🧾",
			Price:           price("80.00"),
			Currency:        "USD",
			Status:          models.ServiceSuspended,
			EstimatedTime:   "5 días hábiles",
			Requirements:    []string{"Documento de identidad", "Comprobantes de ingresos y gastos"},
			Tags:            []string{"impuestos", "renta"},
			Rating:          4.2,
			ReviewCount:     34,
		},
	}
}
