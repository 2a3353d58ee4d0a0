package snap

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Step is one segment of a path from a snapshot root: either an object
// key or a sequence index.
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path addresses a node from the root. The empty path is the root.
type Path []Step

func (p Path) Key(key string) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, Step{Key: key})
}

func (p Path) Index(i int) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, Step{Index: i, IsIndex: true})
}

func (p Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, s := range p {
		if s.IsIndex {
			fmt.Fprintf(buf, "[%d]", s.Index)
			continue
		}
		if s.Key != "" && strings.IndexAny(s.Key, "'.$[]") == -1 {
			buf.WriteString("." + s.Key)
			continue
		}
		buf.WriteString(".'" + strings.Replace(s.Key, "'", "\\'", -1) + "'")
	}
	return buf.String()
}

// ParsePath parses the string form produced by Path.String.
func ParsePath(s string) (Path, error) {
	if len(s) == 0 || s[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", s)
	}
	res := Path{}
	rest := s[1:]
	for len(rest) > 0 {
		switch rest[0] {
		case '.':
			key, tail, err := parseKey(rest[1:])
			if err != nil {
				return nil, err
			}
			res = append(res, Step{Key: key})
			rest = tail
		case '[':
			end := strings.IndexByte(rest[1:], ']')
			if end == -1 {
				return nil, fmt.Errorf("path %q: expected '[' <index> ']'", s)
			}
			idx, err := strconv.Atoi(rest[1 : 1+end])
			if err != nil {
				return nil, fmt.Errorf("path %q: bad index: %w", s, err)
			}
			res = append(res, Step{Index: idx, IsIndex: true})
			rest = rest[end+2:]
		default:
			return nil, fmt.Errorf("path %q: unexpected %q", s, rest[0])
		}
	}
	return res, nil
}

func parseKey(s string) (string, string, error) {
	if len(s) == 0 {
		return "", "", fmt.Errorf("empty path key")
	}
	if s[0] != '\'' {
		end := strings.IndexAny(s, ".[")
		if end == -1 {
			return s, "", nil
		}
		return s[:end], s[end:], nil
	}
	var buf strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && s[i+1] == '\'' {
				buf.WriteByte('\'')
				i++
				continue
			}
			buf.WriteByte('\\')
		case '\'':
			return buf.String(), s[i+1:], nil
		default:
			buf.WriteByte(s[i])
		}
	}
	return "", "", fmt.Errorf("unterminated quoted key in path")
}
