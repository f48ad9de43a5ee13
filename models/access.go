// File: models/access.go
package models

// AllowedWorkplaceStructureInfo lists the sections of one workplace the
// current actor may see.
type AllowedWorkplaceStructureInfo struct {
	WorkplaceID       string   `json:"workplaceId"`
	AllowedSectionIDs []string `json:"allowedSectionIds"`
}

// AllowedWorkplaceStructure indexes allow-lists by workplace id.
type AllowedWorkplaceStructure map[string]AllowedWorkplaceStructureInfo

// AllowedSectionIDs returns the allow-list for a workplace, empty when the
// workplace has no entry.
func (s AllowedWorkplaceStructure) AllowedSectionIDs(workplaceID string) []string {
	if info, ok := s[workplaceID]; ok && info.AllowedSectionIDs != nil {
		return info.AllowedSectionIDs
	}
	return []string{}
}

// SectionRights names the roles that may see a section.
type SectionRights struct {
	SectionID string   `bson:"section_id" json:"sectionId"`
	RoleIDs   []string `bson:"role_ids" json:"roleIds"`
}

// SspColumnAccess lists the columns of an entity exposed to portal users.
type SspColumnAccess struct {
	EntityUId string   `bson:"entity_uid" json:"entityUId"`
	ColumnIDs []string `bson:"column_ids" json:"columnIds"`
}
