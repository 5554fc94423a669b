package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"challenge:view",
		"attempt:create",
		"attempt:view-own",
	},
	"teacher": {
		"challenge:view",
		"challenge:view-ideal",
		"attempt:view-all",
	},
	"admin": {
		"*", // everything
	},
}
