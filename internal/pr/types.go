package pr

// Type is a conventional-commit style pull request type.
type Type struct {
	Label string
	Value string
}

// Types lists the pull request types in the order they are offered.
var Types = []Type{
	{Label: "✨ Feature", Value: "feat"},
	{Label: "🐛 Bugfix", Value: "fix"},
	{Label: "♻️  Refactor", Value: "refactor"},
	{Label: "📚 Docs", Value: "docs"},
	{Label: "🧹 Chore", Value: "chore"},
	{Label: "🔧 Other", Value: "other"},
}

// IsType reports whether v is one of the known type values.
func IsType(v string) bool {
	for _, t := range Types {
		if t.Value == v {
			return true
		}
	}
	return false
}
