// internal/domain/tenant/entity.go
package tenant

import (
	"time"

	"github.com/lib/pq"
)

// Company is the tenant that owns a set of claims. Services holds the
// enabled category tags (e.g. "glas", "keys"); it is read-only here and
// maintained by administrative tooling.
type Company struct {
	ID        string         `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	OrgNumber string         `json:"orgnumber" db:"orgnumber"`
	Logo      string         `json:"logo" db:"logo"`
	Services  pq.StringArray `json:"services" db:"services"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// HasService reports whether the category tag is enabled for the tenant.
func (c *Company) HasService(tag string) bool {
	for _, s := range c.Services {
		if s == tag {
			return true
		}
	}
	return false
}

// Decision is the entitlement gate outcome. Unauthorized (tenant lacks the
// category) and LookupFailed (the check itself broke) surface different
// messages and must stay distinguishable to callers.
type Decision int

const (
	Authorized Decision = iota
	Unauthorized
	LookupFailed
)

// Swedish user-facing messages for the two failure outcomes.
const (
	MsgAccessDenied = "Du har inte tillgång till denna tjänst"
	MsgAccessCheck  = "Ett fel uppstod vid verifiering av åtkomst"
)
