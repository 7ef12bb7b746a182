package service

import "github.com/sparksonic/portal/internal/domain"

// ServiceCatalog returns the static list of offered services.
func ServiceCatalog() []domain.ServiceOffering {
	return []domain.ServiceOffering{
		{ID: "solar-panels", Name: "Solar Panels", Icon: "solar", Description: "Professional solar panel installation for residential and commercial properties."},
		{ID: "ev-chargers", Name: "EV Chargers", Icon: "ev", Description: "Electric vehicle charging station installation with Creos subsidy support."},
		{ID: "heat-pumps", Name: "Heat Pumps", Icon: "heat", Description: "Energy-efficient heat pump systems for sustainable heating and cooling."},
		{ID: "energy-audits", Name: "Energy Audits", Icon: "audit", Description: "Comprehensive energy assessments to optimize your property's efficiency."},
		{ID: "electrician", Name: "Electrician Services", Icon: "electric", Description: "Licensed electrical services for installations, repairs, and maintenance."},
		{ID: "air-conditioning", Name: "Air Conditioning", Icon: "ac", Description: "Professional AC installation and maintenance services."},
		{ID: "home-automation", Name: "Home Automation", Icon: "automation", Description: "Smart home solutions for modern living."},
		{ID: "security-systems", Name: "Security & Alarm Systems", Icon: "security", Description: "Advanced security and alarm systems for your property."},
		{ID: "maintenance", Name: "Maintenance Services", Icon: "maintenance", Description: "Regular maintenance and support for all electrical systems."},
	}
}
