package vaccine

// Vaccine is a catalog entry. Entries are never deleted; retiring one means
// clearing IsActive.
type Vaccine struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	Type         string  `json:"type"`
	Description  *string `json:"description"`
	IsActive     bool    `json:"isActive"`
}
