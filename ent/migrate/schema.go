// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"DRAFT", "SUBMITTED", "REVIEWED", "ACCEPTED", "REJECTED", "NEEDS_REVIEW", "WAITLISTED"}, Default: "DRAFT"},
		{Name: "internal_status", Type: field.TypeEnum, Enums: []string{"PREPARATION", "APPLICATION", "INTERVIEW", "TRAIL", "FINAL"}, Default: "APPLICATION"},
		{Name: "internal_decision", Type: field.TypeString, Nullable: true},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "reviews", Type: field.TypeJSON, Nullable: true},
		{Name: "cycle_id", Type: field.TypeString},
		{Name: "system_id", Type: field.TypeString, Nullable: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "applications_application_cycles_applications",
				Columns:    []*schema.Column{ApplicationsColumns[8]},
				RefColumns: []*schema.Column{ApplicationCyclesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "applications_systems_applications",
				Columns:    []*schema.Column{ApplicationsColumns[9]},
				RefColumns: []*schema.Column{SystemsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "applications_teams_applications",
				Columns:    []*schema.Column{ApplicationsColumns[10]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "applications_users_applications",
				Columns:    []*schema.Column{ApplicationsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "application_user_id_cycle_id",
				Unique:  true,
				Columns: []*schema.Column{ApplicationsColumns[11], ApplicationsColumns[8]},
			},
			{
				Name:    "application_team_id",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[10]},
			},
			{
				Name:    "application_cycle_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[8], ApplicationsColumns[3]},
			},
		},
	}
	// ApplicationCyclesColumns holds the columns for the "application_cycles" table.
	ApplicationCyclesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"PREPARATION", "APPLICATION", "INTERVIEW", "TRAIL", "FINAL"}, Default: "PREPARATION"},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime},
	}
	// ApplicationCyclesTable holds the schema information for the "application_cycles" table.
	ApplicationCyclesTable = &schema.Table{
		Name:       "application_cycles",
		Columns:    ApplicationCyclesColumns,
		PrimaryKey: []*schema.Column{ApplicationCyclesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "applicationcycle_name",
				Unique:  true,
				Columns: []*schema.Column{ApplicationCyclesColumns[3]},
			},
			{
				Name:    "applicationcycle_start_date_end_date",
				Unique:  false,
				Columns: []*schema.Column{ApplicationCyclesColumns[5], ApplicationCyclesColumns[6]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// AvailabilitiesColumns holds the columns for the "availabilities" table.
	AvailabilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "start_at", Type: field.TypeTime},
		{Name: "end_at", Type: field.TypeTime},
		{Name: "system_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// AvailabilitiesTable holds the schema information for the "availabilities" table.
	AvailabilitiesTable = &schema.Table{
		Name:       "availabilities",
		Columns:    AvailabilitiesColumns,
		PrimaryKey: []*schema.Column{AvailabilitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "availabilities_systems_availabilities",
				Columns:    []*schema.Column{AvailabilitiesColumns[5]},
				RefColumns: []*schema.Column{SystemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "availabilities_users_availabilities",
				Columns:    []*schema.Column{AvailabilitiesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "availability_system_id_start_at",
				Unique:  false,
				Columns: []*schema.Column{AvailabilitiesColumns[5], AvailabilitiesColumns[3]},
			},
			{
				Name:    "availability_user_id",
				Unique:  false,
				Columns: []*schema.Column{AvailabilitiesColumns[6]},
			},
		},
	}
	// CycleStagesColumns holds the columns for the "cycle_stages" table.
	CycleStagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"PREPARATION", "APPLICATION", "INTERVIEW", "TRAIL", "FINAL"}},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime},
		{Name: "cycle_id", Type: field.TypeString},
	}
	// CycleStagesTable holds the schema information for the "cycle_stages" table.
	CycleStagesTable = &schema.Table{
		Name:       "cycle_stages",
		Columns:    CycleStagesColumns,
		PrimaryKey: []*schema.Column{CycleStagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cycle_stages_application_cycles_stages",
				Columns:    []*schema.Column{CycleStagesColumns[6]},
				RefColumns: []*schema.Column{ApplicationCyclesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cyclestage_cycle_id_stage",
				Unique:  true,
				Columns: []*schema.Column{CycleStagesColumns[6], CycleStagesColumns[3]},
			},
		},
	}
	// InterviewsColumns holds the columns for the "interviews" table.
	InterviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 30},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"SCHEDULED", "COMPLETED", "CANCELLED", "NO_SHOW"}, Default: "SCHEDULED"},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "created_by_id", Type: field.TypeString},
		{Name: "application_id", Type: field.TypeString, Nullable: true},
		{Name: "system_id", Type: field.TypeString, Nullable: true},
	}
	// InterviewsTable holds the schema information for the "interviews" table.
	InterviewsTable = &schema.Table{
		Name:       "interviews",
		Columns:    InterviewsColumns,
		PrimaryKey: []*schema.Column{InterviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "interviews_applications_interviews",
				Columns:    []*schema.Column{InterviewsColumns[9]},
				RefColumns: []*schema.Column{ApplicationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "interviews_systems_interviews",
				Columns:    []*schema.Column{InterviewsColumns[10]},
				RefColumns: []*schema.Column{SystemsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "interview_application_id_system_id",
				Unique:  true,
				Columns: []*schema.Column{InterviewsColumns[9], InterviewsColumns[10]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status <> 'CANCELLED'",
				},
			},
			{
				Name:    "interview_system_id_scheduled_at",
				Unique:  true,
				Columns: []*schema.Column{InterviewsColumns[10], InterviewsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status <> 'CANCELLED'",
				},
			},
			{
				Name:    "interview_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{InterviewsColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"INTERVIEW_BOOKED", "APPLICATION_STATUS", "CYCLE_STAGE_CHANGED"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[9], NotificationsColumns[7]},
			},
			{
				Name:    "notification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[9], NotificationsColumns[1]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// SystemsColumns holds the columns for the "systems" table.
	SystemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "team_id", Type: field.TypeString},
	}
	// SystemsTable holds the schema information for the "systems" table.
	SystemsTable = &schema.Table{
		Name:       "systems",
		Columns:    SystemsColumns,
		PrimaryKey: []*schema.Column{SystemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "systems_teams_systems",
				Columns:    []*schema.Column{SystemsColumns[5]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "system_team_id_name",
				Unique:  true,
				Columns: []*schema.Column{SystemsColumns[5], SystemsColumns[3]},
			},
		},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "allows_multiple_system_interviews", Type: field.TypeBool, Default: false},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "team_name",
				Unique:  true,
				Columns: []*schema.Column{TeamsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"APPLICANT", "MEMBER", "SYSTEM_LEADER", "TEAM_MANAGEMENT", "ADMIN"}, Default: "APPLICANT"},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "system_id", Type: field.TypeString, Nullable: true},
		{Name: "team_id", Type: field.TypeString, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_systems_members",
				Columns:    []*schema.Column{UsersColumns[10]},
				RefColumns: []*schema.Column{SystemsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "users_teams_members",
				Columns:    []*schema.Column{UsersColumns[11]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[4]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationsTable,
		ApplicationCyclesTable,
		AuditLogsTable,
		AvailabilitiesTable,
		CycleStagesTable,
		InterviewsTable,
		NotificationsTable,
		SystemsTable,
		TeamsTable,
		UsersTable,
	}
)

func init() {
	ApplicationsTable.ForeignKeys[0].RefTable = ApplicationCyclesTable
	ApplicationsTable.ForeignKeys[1].RefTable = SystemsTable
	ApplicationsTable.ForeignKeys[2].RefTable = TeamsTable
	ApplicationsTable.ForeignKeys[3].RefTable = UsersTable
	AvailabilitiesTable.ForeignKeys[0].RefTable = SystemsTable
	AvailabilitiesTable.ForeignKeys[1].RefTable = UsersTable
	CycleStagesTable.ForeignKeys[0].RefTable = ApplicationCyclesTable
	InterviewsTable.ForeignKeys[0].RefTable = ApplicationsTable
	InterviewsTable.ForeignKeys[1].RefTable = SystemsTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	SystemsTable.ForeignKeys[0].RefTable = TeamsTable
	UsersTable.ForeignKeys[0].RefTable = SystemsTable
	UsersTable.ForeignKeys[1].RefTable = TeamsTable
}
