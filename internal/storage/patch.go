package storage

import (
	"go.mongodb.org/mongo-driver/bson"

	"jobportal-api/pkg/models"
)

// FieldOp classifies one requested field of a partial update. Fields the
// request never mentions are implicitly kept and never enter the patch.
type FieldOp int

const (
	// OpSet overwrites the stored value.
	OpSet FieldOp = iota
	// OpUnset removes the field from the stored record entirely.
	OpUnset
)

// FieldChange is the classified intent for a single field
type FieldChange struct {
	Op    FieldOp
	Value interface{}
}

// Patch is a classified partial update: one explicit set-or-unset decision
// per requested field.
type Patch map[string]FieldChange

// BuildPatch classifies a partial-update request against the existing
// record. An empty string or null value is a deletion request for that
// field. The skills list is never merged element-wise: a request that
// carries a list (even an empty one) replaces the stored list wholesale,
// and a request without one re-asserts whatever the record already holds.
func BuildPatch(existing, requested models.Job) Patch {
	patch := Patch{}

	for key, value := range requested {
		// The identifier is immutable.
		if key == "_id" || key == "skills" {
			continue
		}
		if value == nil || value == "" {
			patch[key] = FieldChange{Op: OpUnset}
		} else {
			patch[key] = FieldChange{Op: OpSet, Value: value}
		}
	}

	skills := existing["skills"]
	if list, ok := requested["skills"].([]interface{}); ok {
		skills = list
	}
	if skills == nil {
		skills = []interface{}{}
	}
	patch["skills"] = FieldChange{Op: OpSet, Value: skills}

	return patch
}

// Document renders the patch as a $set/$unset update document
func (p Patch) Document() bson.M {
	set := bson.M{}
	unset := bson.M{}

	for key, change := range p {
		switch change.Op {
		case OpSet:
			set[key] = change.Value
		case OpUnset:
			unset[key] = ""
		}
	}

	doc := bson.M{}
	if len(set) > 0 {
		doc["$set"] = set
	}
	if len(unset) > 0 {
		doc["$unset"] = unset
	}
	return doc
}
