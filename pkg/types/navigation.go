package types

import (
	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
)

type GroupID string

// Section is a single navigable unit of content identified by a stable
// string id. Sections are declared statically by modules and never mutated
// at runtime. Label is an i18n message id translated at render time.
// A nil Permissions slice means the section carries no restriction; the
// access gate owns the authorization policy.
type Section struct {
	ID          string
	Label       string
	Icon        templ.Component
	Permissions []*permission.Permission
}

// Group is a fixed collection of related sections shown under one
// collapsible heading. SectionIDs is the authoritative membership and
// ordering; a section belongs to at most one group.
type Group struct {
	ID          GroupID
	Label       string
	Icon        templ.Component
	SectionIDs  []string
	Badge       string
	DefaultOpen bool
}

func (g Group) Contains(sectionID string) bool {
	for _, id := range g.SectionIDs {
		if id == sectionID {
			return true
		}
	}
	return false
}
