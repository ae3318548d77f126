package domain

// Customer as reported by the Starliner backend
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Bookings  int    `json:"bookings"`
	CreatedAt string `json:"createdAt"`
}

// LeadStatus lifecycle of a sales lead
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadConverted LeadStatus = "converted"
	LeadDropped   LeadStatus = "dropped"
)

// Lead as reported by the Starliner backend
type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Message   string     `json:"message,omitempty"`
	Status    LeadStatus `json:"status"`
	CreatedAt string     `json:"createdAt"`
}

// DashboardCounts aggregate counters for the admin dashboard
type DashboardCounts struct {
	Bookings  int `json:"bookings"`
	Customers int `json:"customers"`
	Tours     int `json:"tours"`
	Leads     int `json:"leads"`
}
