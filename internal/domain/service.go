package domain

// ServiceOffering describes one entry of the static service catalog.
type ServiceOffering struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
