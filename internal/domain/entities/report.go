package entities

// DocumentKind selects the collection searched by number.
type DocumentKind string

const (
	DocumentKindServiceOrder        DocumentKind = "serviceOrder"
	DocumentKindQuote               DocumentKind = "quote"
	DocumentKindMaintenanceContract DocumentKind = "maintenanceContract"
)

func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentKindServiceOrder, DocumentKindQuote, DocumentKindMaintenanceContract:
		return true
	}
	return false
}

// DocumentMatch carries exactly one populated document, selected by Kind.
type DocumentMatch struct {
	Kind                DocumentKind         `json:"kind"`
	ServiceOrder        *ServiceOrder        `json:"serviceOrder,omitempty"`
	Quote               *Quote               `json:"quote,omitempty"`
	MaintenanceContract *MaintenanceContract `json:"maintenanceContract,omitempty"`
}

// DashboardRecentLimit bounds ServiceOrderDashboard.Recent.
const DashboardRecentLimit = 5

type ServiceOrderDashboard struct {
	Total    int                        `json:"total"`
	ByStatus map[ServiceOrderStatus]int `json:"byStatus"`
	Recent   []ServiceOrder             `json:"recent"`
}
