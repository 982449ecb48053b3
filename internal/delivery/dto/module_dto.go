package dto

// Marketing catalog DTOs. Field names follow the public frontend contract,
// hence the camelCase JSON keys.

type ModuleStats struct {
	Interest   int    `json:"interest"`
	AIAccuracy string `json:"aiAccuracy"`
}

type Module struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Image          string      `json:"image"`
	Features       []string    `json:"features"`
	AICapabilities []string    `json:"aiCapabilities"`
	Stats          ModuleStats `json:"stats"`
}

type FeatureStats struct {
	Efficiency    string  `json:"efficiency"`
	Adoption      string  `json:"adoption"`
	Satisfaction  float64 `json:"satisfaction"`
	PilotInterest int     `json:"pilotInterest"`
}

type Feature struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Image       string       `json:"image"`
	Benefits    []string     `json:"benefits"`
	AIFeatures  []string     `json:"aiFeatures"`
	Stats       FeatureStats `json:"stats"`
	DemoVideo   string       `json:"demoVideo,omitempty"`
}
