// internal/domain/claim/entity.go
package claim

import (
	"database/sql"
	"time"
)

// Claim is one intake record. Glass damage and key orders share the same
// shape; the glass-only columns are nullable and stay NULL for key orders.
type Claim struct {
	ID       string `json:"id" db:"id"`
	TenantID string `json:"companyid" db:"companyid"`

	// Customer details
	FirstName      string `json:"firstname" db:"firstname"`
	LastName       string `json:"lastname" db:"lastname"`
	PersonalNumber string `json:"personalnumber" db:"personalnumber"`
	Phone          string `json:"phone" db:"phone"`
	Email          string `json:"email" db:"email"`

	// Vehicle
	RegistrationNumber string `json:"registrationnumber" db:"registrationnumber"`
	InsuranceCompany   string `json:"insurancecompany" db:"insurancecompany"`
	VATLiable          bool   `json:"vatliable" db:"vatliable"`

	// Incident
	IncidentDate sql.NullTime   `json:"incidentdate,omitempty" db:"incidentdate"`
	Odometer     sql.NullString `json:"odometer,omitempty" db:"odometer"`
	Description  sql.NullString `json:"description,omitempty" db:"description"`

	// Glass-only attributes
	DamageType   sql.NullString `json:"damagetype,omitempty" db:"damagetype"`
	DamageCause  sql.NullString `json:"damagecause,omitempty" db:"damagecause"`
	DamageWindow sql.NullString `json:"damagewindow,omitempty" db:"damagewindow"`

	Status Status `json:"status" db:"status"`

	// Typed name that accompanies the stored signature image
	SignedByName string `json:"signedbyname" db:"signedbyname"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CustomerName is the concatenated form the list filter matches against.
func (c *Claim) CustomerName() string {
	return c.FirstName + " " + c.LastName
}
