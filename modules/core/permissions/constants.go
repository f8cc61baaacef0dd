package permissions

import (
	"github.com/google/uuid"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
)

const (
	ResourceDashboard permission.Resource = "dashboard"
	ResourceCustomer  permission.Resource = "customer"
	ResourceJob       permission.Resource = "job"
	ResourceEstimate  permission.Resource = "estimate"
	ResourceInvoice   permission.Resource = "invoice"
	ResourceTeam      permission.Resource = "team"
	ResourceReport    permission.Resource = "report"
	ResourceAssistant permission.Resource = "assistant"
	ResourceInbox     permission.Resource = "inbox"
	ResourceSettings  permission.Resource = "settings"
)

var (
	DashboardView = &permission.Permission{
		ID:       uuid.MustParse("8b6060b3-af5e-4ae0-b32d-b33695141066"),
		Name:     "Dashboard.View",
		Resource: ResourceDashboard,
		Action:   permission.ActionRead,
	}
	CustomerRead = &permission.Permission{
		ID:       uuid.MustParse("13f011c8-1107-4957-ad19-70cfc167a775"),
		Name:     "Customer.Read",
		Resource: ResourceCustomer,
		Action:   permission.ActionRead,
	}
	CustomerManage = &permission.Permission{
		ID:       uuid.MustParse("1c351fd3-9a2b-40b9-80b1-11ba81e645c8"),
		Name:     "Customer.Manage",
		Resource: ResourceCustomer,
		Action:   permission.ActionManage,
	}
	JobRead = &permission.Permission{
		ID:       uuid.MustParse("547cded3-6754-4a05-aeb0-a38d12ed05ee"),
		Name:     "Job.Read",
		Resource: ResourceJob,
		Action:   permission.ActionRead,
	}
	JobManage = &permission.Permission{
		ID:       uuid.MustParse("60f195ed-d373-41c3-a39d-bb7484850840"),
		Name:     "Job.Manage",
		Resource: ResourceJob,
		Action:   permission.ActionManage,
	}
	EstimateRead = &permission.Permission{
		ID:       uuid.MustParse("51d1025e-11fe-405e-9ab4-88078c28e110"),
		Name:     "Estimate.Read",
		Resource: ResourceEstimate,
		Action:   permission.ActionRead,
	}
	EstimateManage = &permission.Permission{
		ID:       uuid.MustParse("ea18e9d1-6ac4-4b2a-861c-cc89d95d7a19"),
		Name:     "Estimate.Manage",
		Resource: ResourceEstimate,
		Action:   permission.ActionManage,
	}
	InvoiceRead = &permission.Permission{
		ID:       uuid.MustParse("5fcea09b-913e-4bbf-bb00-66586c29e930"),
		Name:     "Invoice.Read",
		Resource: ResourceInvoice,
		Action:   permission.ActionRead,
	}
	InvoiceManage = &permission.Permission{
		ID:       uuid.MustParse("7e8f9a0b-1c2d-3e4f-5a6b-7c8d9e0f1a2b"),
		Name:     "Invoice.Manage",
		Resource: ResourceInvoice,
		Action:   permission.ActionManage,
	}
	TeamRead = &permission.Permission{
		ID:       uuid.MustParse("8f9a0b1c-2d3e-4f5a-6b7c-8d9e0f1a2b3c"),
		Name:     "Team.Read",
		Resource: ResourceTeam,
		Action:   permission.ActionRead,
	}
	TeamManage = &permission.Permission{
		ID:       uuid.MustParse("9a0b1c2d-3e4f-5a6b-7c8d-9e0f1a2b3c4d"),
		Name:     "Team.Manage",
		Resource: ResourceTeam,
		Action:   permission.ActionManage,
	}
	ReportView = &permission.Permission{
		ID:       uuid.MustParse("a0b1c2d3-4e5f-6a7b-8c9d-0e1f2a3b4c5d"),
		Name:     "Report.View",
		Resource: ResourceReport,
		Action:   permission.ActionRead,
	}
	AssistantUse = &permission.Permission{
		ID:       uuid.MustParse("a1b2c3d4-e5f6-7890-abcd-ef1234567890"),
		Name:     "Assistant.Use",
		Resource: ResourceAssistant,
		Action:   permission.ActionRead,
	}
	InboxRead = &permission.Permission{
		ID:       uuid.MustParse("b2c3d4e5-f6a7-8901-bcde-f23456789012"),
		Name:     "Inbox.Read",
		Resource: ResourceInbox,
		Action:   permission.ActionRead,
	}
	SettingsManage = &permission.Permission{
		ID:       uuid.MustParse("c3d4e5f6-a7b8-9012-cdef-345678901234"),
		Name:     "Settings.Manage",
		Resource: ResourceSettings,
		Action:   permission.ActionManage,
	}
)

var Permissions = []*permission.Permission{
	DashboardView,
	CustomerRead,
	CustomerManage,
	JobRead,
	JobManage,
	EstimateRead,
	EstimateManage,
	InvoiceRead,
	InvoiceManage,
	TeamRead,
	TeamManage,
	ReportView,
	AssistantUse,
	InboxRead,
	SettingsManage,
}
