package config

// Sprint length rules.
const (
	DefaultSprintDays = 14
	MaxSprintDays     = 28
)

// Deletion policies for sprints that still have tasks.
const (
	DeleteRestrict = "restrict"
	DeleteDetach   = "detach"
)

// Database/application settings.
const (
	AppName    = "sprintflow"
	DBFileName = "sprintflow.db"
)
