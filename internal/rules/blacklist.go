package rules

// imperativeMoodBlacklist lists the verb forms that flag a non-imperative
// subject: past tense, gerund, third person and the bare form of common
// commit verbs. Matched case-insensitively as substrings of the subject
// line; longer forms come first so "added" is reported over "add".
var imperativeMoodBlacklist = []string{
	"added", "adding", "adds", "add",
	"adjusted", "adjusting", "adjusts", "adjust",
	"amended", "amending", "amends", "amend",
	"bumped", "bumping", "bumps", "bump",
	"changed", "changing", "changes", "change",
	"checked", "checking", "checks", "check",
	"committed", "committing", "commits", "commit",
	"copied", "copying", "copies", "copy",
	"corrected", "correcting", "corrects", "correct",
	"created", "creating", "creates", "create",
	"decreased", "decreasing", "decreases", "decrease",
	"deleted", "deleting", "deletes", "delete",
	"disabled", "disabling", "disables", "disable",
	"dropped", "dropping", "drops", "drop",
	"enabled", "enabling", "enables", "enable",
	"excluded", "excluding", "excludes", "exclude",
	"fixed", "fixing", "fixes", "fix",
	"handled", "handling", "handles", "handle",
	"implemented", "implementing", "implements", "implement",
	"improved", "improving", "improves", "improve",
	"included", "including", "includes", "include",
	"increased", "increasing", "increases", "increase",
	"installed", "installing", "installs", "install",
	"introduced", "introducing", "introduces", "introduce",
	"merged", "merging", "merges", "merge",
	"moved", "moving", "moves", "move",
	"pruned", "pruning", "prunes", "prune",
	"refactored", "refactoring", "refactors", "refactor",
	"released", "releasing", "releases", "release",
	"removed", "removing", "removes", "remove",
	"renamed", "renaming", "renames", "rename",
	"replaced", "replacing", "replaces", "replace",
	"resolved", "resolving", "resolves", "resolve",
	"reverted", "reverting", "reverts", "revert",
	"tested", "testing", "tests", "test",
	"tidied", "tidying", "tidies", "tidy",
	"updated", "updating", "updates", "update",
}
