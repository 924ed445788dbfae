package models

// ColumnRole is the meaning a column plays in the price calculation.
type ColumnRole string

const (
	// RoleBasePrice is the OEM purchase price the ceilings derive from.
	RoleBasePrice ColumnRole = "base_price"
	// RoleRecyclingCeiling is the ceiling price when the old part is recycled.
	RoleRecyclingCeiling ColumnRole = "recycling_ceiling"
	// RoleNoRecyclingCeiling is the ceiling price without recycling.
	RoleNoRecyclingCeiling ColumnRole = "no_recycling_ceiling"
)

// Roles lists every role in resolution order.
var Roles = []ColumnRole{RoleBasePrice, RoleRecyclingCeiling, RoleNoRecyclingCeiling}

// ColumnRefs binds each role to a header. An empty string means the role is unbound.
type ColumnRefs struct {
	BasePrice          string
	RecyclingCeiling   string
	NoRecyclingCeiling string
}

// Get returns the header bound to role.
func (r ColumnRefs) Get(role ColumnRole) string {
	switch role {
	case RoleBasePrice:
		return r.BasePrice
	case RoleRecyclingCeiling:
		return r.RecyclingCeiling
	case RoleNoRecyclingCeiling:
		return r.NoRecyclingCeiling
	}
	return ""
}

// Set binds role to header.
func (r *ColumnRefs) Set(role ColumnRole, header string) {
	switch role {
	case RoleBasePrice:
		r.BasePrice = header
	case RoleRecyclingCeiling:
		r.RecyclingCeiling = header
	case RoleNoRecyclingCeiling:
		r.NoRecyclingCeiling = header
	}
}
