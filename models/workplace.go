// File: models/workplace.go
package models

// WorkplaceType shares its values with SectionType; a section fits a
// workplace when both tags carry the same number.
type WorkplaceType int

const (
	WorkplaceTypeGeneral WorkplaceType = iota
	WorkplaceTypeSSP
	WorkplaceTypeMobile
)

// Workplace is a role-scoped application context holding an ordered set of sections.
type Workplace struct {
	ID         string        `bson:"id" json:"id"`
	Name       string        `bson:"name" json:"name"`
	Type       WorkplaceType `bson:"type" json:"type"`
	SectionIDs []string      `bson:"section_ids" json:"sectionIds"` // Display order
	RoleIDs    []string      `bson:"role_ids" json:"roleIds"`       // Roles admitted to the workplace
}

// GetSectionIDs returns a copy of the workplace's declared section order.
func (w Workplace) GetSectionIDs() []string {
	ids := make([]string, len(w.SectionIDs))
	copy(ids, w.SectionIDs)
	return ids
}

// AcceptsType reports whether sections of type t can be placed in the workplace.
func (w Workplace) AcceptsType(t SectionType) bool {
	return int(w.Type) == int(t)
}
