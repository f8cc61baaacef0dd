package permission

import "github.com/google/uuid"

type Resource string

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
)

type Permission struct {
	ID       uuid.UUID
	Name     string
	Resource Resource
	Action   Action
}

func (p *Permission) Equals(other *Permission) bool {
	if p == nil || other == nil {
		return false
	}
	return p.Resource == other.Resource && p.Action == other.Action
}
