// File: models/section.go
package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// SectionType tags a section with the kind of workplace it can be placed in.
type SectionType int

const (
	SectionTypeGeneral SectionType = iota
	SectionTypeSSP
	SectionTypeMobile
)

var sectionTypeNames = map[SectionType]string{
	SectionTypeGeneral: "general",
	SectionTypeSSP:     "ssp",
	SectionTypeMobile:  "mobile",
}

func (t SectionType) String() string {
	if name, ok := sectionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SectionType(%d)", int(t))
}

// ParseSectionType accepts either the name ("general", "ssp", "mobile") or
// the numeric value of a section type.
func ParseSectionType(s string) (SectionType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range sectionTypeNames {
		if name == s || fmt.Sprint(int(t)) == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown section type %q", s)
}

// Section is a UI view bound to a business entity.
type Section struct {
	ID         string      `bson:"id" json:"id"`
	Code       string      `bson:"code" json:"code"`
	Caption    string      `bson:"caption" json:"caption"`
	Type       SectionType `bson:"type" json:"type"`
	EntityUId  string      `bson:"entity_uid" json:"entityUId"`   // Entity schema displayed by the section
	Workplaces []string    `bson:"workplaces" json:"workplaces"`  // Workplaces the section belongs to
	CreatedAt  time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time   `bson:"updated_at" json:"updatedAt"`
}

// MarshalJSON writes a section without workplaces as "workplaces":[].
func (s Section) MarshalJSON() ([]byte, error) {
	type section Section
	if s.Workplaces == nil {
		s.Workplaces = []string{}
	}
	return json.Marshal(section(s))
}

// IsInWorkplace reports whether the section is a structural member of the workplace.
func (s Section) IsInWorkplace(workplaceID string) bool {
	return slices.Contains(s.Workplaces, workplaceID)
}
