package common

// GetAccountFromArgs extracts the account name from request arguments.
// Every tool accepts an optional "account" argument so one server can hold
// tokens for several Google accounts; absent or empty means "default".
func GetAccountFromArgs(args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return "default"
}
