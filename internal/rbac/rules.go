package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"essay:submit",
		"essay:view-own",
		"analysis:view-own",
		"similarity:compare",
		"claim:validate",
		"rubric:view",
	},
	"reviewer": {
		"essay:view-own",
		"essay:view-all",
		"analysis:run",
		"analysis:view-own",
		"analysis:view-all",
		"similarity:compare",
		"claim:validate",
		"rubric:view",
	},
	"admin": {
		"*", // everything
	},
}
