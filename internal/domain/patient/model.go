package patient

import "time"

// Patient is a clinic patient record. Dates of birth are calendar dates
// (YYYY-MM-DD) with no time component.
type Patient struct {
	ID                   int       `json:"id"`
	FirstName            string    `json:"firstName"`
	LastName             string    `json:"lastName"`
	DateOfBirth          string    `json:"dateOfBirth"`
	SocialSecurityNumber string    `json:"socialSecurityNumber"`
	Phone                *string   `json:"phone"`
	Email                *string   `json:"email"`
	Address              *string   `json:"address"`
	CreatedAt            time.Time `json:"createdAt"`
}

// Update carries a partial patient update. Nil fields keep their stored
// value; a supplied field fully replaces it.
type Update struct {
	FirstName            *string `json:"firstName"`
	LastName             *string `json:"lastName"`
	DateOfBirth          *string `json:"dateOfBirth"`
	SocialSecurityNumber *string `json:"socialSecurityNumber"`
	Phone                *string `json:"phone"`
	Email                *string `json:"email"`
	Address              *string `json:"address"`
}
