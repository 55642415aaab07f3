package user

// Step is the dialogue question the user is expected to answer next.
type Step string

const (
	StepIdle            Step = ""
	StepPurchasePrice   Step = "purchase_price"
	StepCurrency        Step = "currency"
	StepManufactureDate Step = "manufacture_date"
	StepEngineVolume    Step = "engine_volume"
	StepHorsepower      Step = "horsepower"
	StepImporterType    Step = "importer_type"
)

// Session collects calculation answers between messages.
type Session struct {
	Step            Step    `json:"step"`
	PurchasePrice   string  `json:"purchase_price,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	ManufactureDate string  `json:"manufacture_date,omitempty"`
	EngineVolume    float64 `json:"engine_volume,omitempty"`
	Horsepower      int     `json:"horsepower,omitempty"`
}

func (s *Session) InProgress() bool {
	return s.Step != StepIdle
}
