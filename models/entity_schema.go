// File: models/entity_schema.go
package models

// EntitySchema is the slice of the schema catalog the section service reads
// and writes: captions and the rights administration flags.
type EntitySchema struct {
	ID                        string   `bson:"id" json:"id"`
	Name                      string   `bson:"name" json:"name"`
	Caption                   string   `bson:"caption" json:"caption"`
	AdministratedByRecords    bool     `bson:"administrated_by_records" json:"administratedByRecords"`
	AdministratedByOperations bool     `bson:"administrated_by_operations" json:"administratedByOperations"`
	ConnectedEntityIDs        []string `bson:"connected_entity_ids" json:"connectedEntityIds"` // Details and lookups owned by the entity
}

// EntityCaptionsNotAdministrated holds the captions of connected entities
// whose rights are not administrated the way their owner's are.
type EntityCaptionsNotAdministrated struct {
	ByRecords    []string `json:"byRecords"`
	ByOperations []string `json:"byOperations"`
}
