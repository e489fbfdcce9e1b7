package rbac

const (
	PermSessionCreate   = "session:create"
	PermSessionAnswer   = "session:answer"
	PermSessionSubmit   = "session:submit"
	PermSessionViewOwn  = "session:view-own"
	PermSessionViewAll  = "session:view-all"
	PermAnalysisView    = "analysis:view"
	PermAnalysisRescore = "analysis:rescore"
	PermScoreRun        = "score:run"
)

const (
	RoleApplicant = "applicant"
	RoleHR        = "hr"
	RoleAdmin     = "admin"
)

// Default policy. Applicants never see their own analysis.
var RolePermissions = map[string][]string{
	RoleApplicant: {
		PermSessionCreate,
		PermSessionAnswer,
		PermSessionSubmit,
		PermSessionViewOwn,
	},
	RoleHR: {
		"session:view-*",
		"analysis:*",
		PermScoreRun,
	},
	RoleAdmin: {
		"*", // everything
	},
}
