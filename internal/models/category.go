package models

// builtinCategories is the fixed catalog every account starts with. Order
// and membership are part of the persisted-format compatibility contract.
var builtinCategories = [...]string{
	"Social Networks",
	"Banking/Finance",
	"Work/Business",
	"Email",
	"Education",
	"Entertainment",
	"Shopping",
	"Health/Medicine",
	"Government Services",
	"Other",
}

// BuiltinCategories returns the fixed category list. Each call returns a
// fresh slice, so callers may append or reorder without affecting others.
func BuiltinCategories() []string {
	out := make([]string, len(builtinCategories))
	copy(out, builtinCategories[:])
	return out
}

// Categories returns the builtin catalog followed by the account's custom
// categories, as a fresh slice.
func (a *Account) Categories() []string {
	out := BuiltinCategories()
	return append(out, a.CustomCategories...)
}

// HasCategory reports whether name is a builtin category or one of the
// account's custom categories (exact string match).
func (a *Account) HasCategory(name string) bool {
	for _, c := range builtinCategories {
		if c == name {
			return true
		}
	}
	for _, c := range a.CustomCategories {
		if c == name {
			return true
		}
	}
	return false
}
