package movebind

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseTypeName splits a Move type string into its base name and its
// top-level type argument strings.
//
//	ParseTypeName("0x2::table::Table<u64, vector<0x2::coin::Coin<0x2::sui::SUI>>>")
//	// "0x2::table::Table", ["u64", "vector<0x2::coin::Coin<0x2::sui::SUI>>"]
//
// Commas nested inside angle brackets never split an argument. Surrounding
// whitespace is trimmed. vector must carry exactly one argument.
func ParseTypeName(s string) (string, []string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil, issuef(CodeParseError, "empty type string")
	}
	open := strings.IndexByte(s, '<')
	if open < 0 {
		if strings.ContainsAny(s, ">,") {
			return "", nil, issuef(CodeParseError, "unbalanced type string %q", s)
		}
		if s == "vector" {
			return "", nil, issuef(CodeArityMismatch, "vector expects 1 type argument, but got 0")
		}
		return s, nil, nil
	}
	if s[len(s)-1] != '>' {
		return "", nil, issuef(CodeParseError, "unexpected characters after type arguments in %q", s)
	}
	name := strings.TrimSpace(s[:open])
	if name == "" || strings.ContainsAny(name, ">,") {
		return "", nil, issuef(CodeParseError, "missing type name in %q", s)
	}
	args, err := splitTypeArgs(s[open+1 : len(s)-1])
	if err != nil {
		return "", nil, err
	}
	if name == "vector" && len(args) != 1 {
		return "", nil, issueWithParams(CodeArityMismatch,
			"vector expects 1 type argument, but got "+strconv.Itoa(len(args)), "got", len(args))
	}
	return name, args, nil
}

func splitTypeArgs(inner string) ([]string, error) {
	var args []string
	depth := 0
	start := 0
	push := func(end int) error {
		arg := strings.TrimSpace(inner[start:end])
		if arg == "" {
			return issuef(CodeParseError, "empty type argument in <%s>", inner)
		}
		args = append(args, arg)
		return nil
	}
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, issuef(CodeParseError, "unbalanced '>' in <%s>", inner)
			}
		case ',':
			if depth == 0 {
				if err := push(i); err != nil {
					return nil, err
				}
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, issuef(CodeParseError, "unbalanced '<' in <%s>", inner)
	}
	if err := push(len(inner)); err != nil {
		return nil, err
	}
	return args, nil
}

// CompressType returns the canonical spelling of a type string: no
// whitespace inside names, arguments joined by ", " and package addresses in
// short lowercase form (0x0000...0002 becomes 0x2).
func CompressType(s string) (string, error) {
	name, args, err := ParseTypeName(s)
	if err != nil {
		return "", err
	}
	name, err = compressName(name)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return name, nil
	}
	out := make([]string, len(args))
	for i, a := range args {
		if out[i], err = CompressType(a); err != nil {
			return "", err
		}
	}
	return ComposeType(name, out...), nil
}

// MustCompressType is like CompressType but panics on malformed input. It is
// meant for package-level constants.
func MustCompressType(s string) string {
	c, err := CompressType(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ComposeType renders name<a1, a2, ...>, or name alone when args is empty.
func ComposeType(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + "<" + strings.Join(args, ", ") + ">"
}

func compressName(name string) (string, error) {
	name = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
	segs := strings.Split(name, "::")
	if len(segs) == 1 {
		return name, nil
	}
	for _, seg := range segs {
		if seg == "" {
			return "", issuef(CodeParseError, "empty path segment in %q", name)
		}
	}
	if hasHexPrefix(segs[0]) {
		short, err := CompressAddress(segs[0])
		if err != nil {
			return "", err
		}
		segs[0] = short
	}
	return strings.Join(segs, "::"), nil
}

// baseName returns the canonical base name of a type string (arguments
// stripped).
func baseName(s string) (string, error) {
	name, _, err := ParseTypeName(s)
	if err != nil {
		return "", err
	}
	return compressName(name)
}
