package models

// Icon kinds for category appearance
const (
	IconKindEmoji = "emoji"
	IconKindImage = "image"
)

// CategoryConfig is the display appearance of a transaction category:
// a label, an icon (emoji string or image URL, tagged by Kind) and a color.
type CategoryConfig struct {
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
	Kind  string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// DefaultCategories returns the hardcoded category appearance table.
// User overrides layer on top of it and reset restores it.
func DefaultCategories() map[string]CategoryConfig {
	return map[string]CategoryConfig{
		CategoryHealth:        {Label: "Salud", Icon: "🏥", Color: "#ef4444", Kind: IconKindEmoji},
		CategoryWork:          {Label: "Trabajo", Icon: "💼", Color: "#22c55e", Kind: IconKindEmoji},
		CategoryBusiness:      {Label: "Negocio", Icon: "📊", Color: "#3b82f6", Kind: IconKindEmoji},
		CategoryFood:          {Label: "Alimentación", Icon: "🍔", Color: "#f97316", Kind: IconKindEmoji},
		CategoryTransport:     {Label: "Transporte", Icon: "🚗", Color: "#8b5cf6", Kind: IconKindEmoji},
		CategoryEntertainment: {Label: "Entretenimiento", Icon: "🎬", Color: "#ec4899", Kind: IconKindEmoji},
		CategoryEducation:     {Label: "Educación", Icon: "📚", Color: "#06b6d4", Kind: IconKindEmoji},
		CategoryHousing:       {Label: "Vivienda", Icon: "🏠", Color: "#84cc16", Kind: IconKindEmoji},
		CategoryUtilities:     {Label: "Servicios", Icon: "⚡", Color: "#eab308", Kind: IconKindEmoji},
		CategoryOther:         {Label: "Otros", Icon: "📦", Color: "#6b7280", Kind: IconKindEmoji},
	}
}
