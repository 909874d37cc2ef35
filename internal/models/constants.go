package models

// Transaction types
const (
	TypeIncome       = "income"
	TypeExpense      = "expense"
	TypeDebtGiven    = "debt_given"
	TypeDebtReceived = "debt_received"
)

// Transaction sources
const (
	SourceApp       = "app"
	SourceWhatsApp  = "whatsapp"
	SourceImport    = "import"
	SourceAPI       = "api"
	SourceScheduled = "scheduled"
)

// Transaction statuses
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Transaction categories
const (
	CategoryHealth        = "SALUD"
	CategoryWork          = "TRABAJO"
	CategoryBusiness      = "NEGOCIO"
	CategoryFood          = "ALIMENTACION"
	CategoryTransport     = "TRANSPORTE"
	CategoryEntertainment = "ENTRETENIMIENTO"
	CategoryEducation     = "EDUCACION"
	CategoryHousing       = "VIVIENDA"
	CategoryUtilities     = "SERVICIOS"
	CategoryOther         = "OTROS"
)

// Account types
const (
	AccountTypeCash   = "cash"
	AccountTypeBank   = "bank"
	AccountTypeCard   = "card"
	AccountTypeWallet = "wallet"
	AccountTypeOther  = "other"
)

// Service request statuses
const (
	RequestPending   = "PENDIENTE"
	RequestInReview  = "EN_REVISION"
	RequestApproved  = "APROBADO"
	RequestRejected  = "RECHAZADO"
	RequestCompleted = "COMPLETADO"
)

// Defaults applied when a create payload leaves these unset
const (
	DefaultCurrency = "USD"
	DefaultSource   = SourceApp
	DefaultStatus   = StatusCompleted
)

// File permissions for device-local data
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
)

var transactionTypes = map[string]bool{
	TypeIncome:       true,
	TypeExpense:      true,
	TypeDebtGiven:    true,
	TypeDebtReceived: true,
}

var transactionStatuses = map[string]bool{
	StatusCompleted: true,
	StatusPending:   true,
	StatusCancelled: true,
}

var transactionCategories = map[string]bool{
	CategoryHealth:        true,
	CategoryWork:          true,
	CategoryBusiness:      true,
	CategoryFood:          true,
	CategoryTransport:     true,
	CategoryEntertainment: true,
	CategoryEducation:     true,
	CategoryHousing:       true,
	CategoryUtilities:     true,
	CategoryOther:         true,
}

var accountTypes = map[string]bool{
	AccountTypeCash:   true,
	AccountTypeBank:   true,
	AccountTypeCard:   true,
	AccountTypeWallet: true,
	AccountTypeOther:  true,
}

// IsValidTransactionType reports whether t is one of the four known transaction types.
func IsValidTransactionType(t string) bool {
	return transactionTypes[t]
}

// IsValidTransactionStatus reports whether s is a known transaction status.
func IsValidTransactionStatus(s string) bool {
	return transactionStatuses[s]
}

// IsValidCategory reports whether c belongs to the closed category set.
func IsValidCategory(c string) bool {
	return transactionCategories[c]
}

// IsValidAccountType reports whether t is a known account type.
func IsValidAccountType(t string) bool {
	return accountTypes[t]
}

// IsDebtType reports whether t represents lent or owed money rather than
// spent or earned money. Debt transactions are excluded from income and
// expense totals.
func IsDebtType(t string) bool {
	return t == TypeDebtGiven || t == TypeDebtReceived
}

// Categories returns the closed category set in display order.
func Categories() []string {
	return []string{
		CategoryHealth,
		CategoryWork,
		CategoryBusiness,
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryEducation,
		CategoryHousing,
		CategoryUtilities,
		CategoryOther,
	}
}
