package movebind

import "fmt"

// IssueAt creates an Issue at the given path with provided code, message and params map.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

func issuef(code, format string, args ...any) error {
	return Issues{RootPath().Issue(code, fmt.Sprintf(format, args...))}
}

func issueWithParams(code, msg string, kv ...any) error {
	return Issues{RootPath().Issue(code, msg, kv...)}
}

func wrapIssue(code string, cause error, format string, args ...any) error {
	it := RootPath().Issue(code, fmt.Sprintf(format, args...))
	it.Cause = cause
	return Issues{it}
}

// NewIssue returns an error holding one issue at the root path.
func NewIssue(code, format string, args ...any) error {
	return issuef(code, format, args...)
}

// InvalidType reports a value whose Go type does not fit the expected shape.
func InvalidType(want string, got any) error {
	return invalidType(want, got)
}

// AtField re-roots the issues carried by err under the named field.
func AtField(err error, name string) error {
	return atField(err, name)
}
