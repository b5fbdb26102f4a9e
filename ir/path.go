package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// GetPath navigates a value tree using a dotted path, e.g. "a.b[0].c".
// The empty path names v itself. Unlike Key and Index, a miss here is an
// error: paths name locations the caller expects to exist.
//
// The syntax is the quoteless subset: bare field names separated by dots,
// with [i] index steps attached directly to the preceding segment. Field
// names containing '.', '[', or ']' cannot be addressed by path; use Key.
func GetPath(v *Value, path string) (*Value, error) {
	steps, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	cur := v
	for _, st := range steps {
		if st.isIndex {
			if cur.Kind() != KindArray {
				return nil, fmt.Errorf("index %d into %s value in %q: %w",
					st.index, cur.Kind(), path, ErrPath)
			}
			if st.index < 0 || st.index >= cur.Len() {
				return nil, fmt.Errorf("index %d with length %d in %q: %w",
					st.index, cur.Len(), path, ErrPath)
			}
			cur = cur.Index(st.index)
			continue
		}
		if cur.Kind() != KindMap {
			return nil, fmt.Errorf("key %q into %s value in %q: %w",
				st.key, cur.Kind(), path, ErrPath)
		}
		if !cur.ContainsKey(st.key) {
			return nil, fmt.Errorf("no key %q in %q: %w", st.key, path, ErrPath)
		}
		cur = cur.Key(st.key)
	}
	return cur, nil
}

type pathStep struct {
	key     string
	index   int
	isIndex bool
}

func parsePath(path string) ([]pathStep, error) {
	var steps []pathStep
	i, n := 0, len(path)
	for i < n {
		switch path[i] {
		case '[':
			j := strings.IndexByte(path[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("unclosed '[' in %q: %w", path, ErrPath)
			}
			idx, err := strconv.Atoi(path[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("index %q in %q: %w", path[i+1:i+j], path, ErrPath)
			}
			steps = append(steps, pathStep{index: idx, isIndex: true})
			i += j + 1
		case '.':
			if i == 0 || i+1 >= n || path[i+1] == '.' || path[i+1] == '[' {
				return nil, fmt.Errorf("misplaced '.' in %q: %w", path, ErrPath)
			}
			i++
		default:
			j := i
			for j < n && path[j] != '.' && path[j] != '[' {
				j++
			}
			if strings.ContainsRune(path[i:j], ']') {
				return nil, fmt.Errorf("misplaced ']' in %q: %w", path, ErrPath)
			}
			steps = append(steps, pathStep{key: path[i:j]})
			i = j
		}
	}
	return steps, nil
}
