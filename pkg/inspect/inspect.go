// Package inspect answers which fragments of a composed configuration apply
// to a given file, using the same selection a flat-config lint engine does:
// global ignores first, then each fragment's files and ignores.
package inspect

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

// Match is a fragment that applies to the inspected file.
type Match struct {
	// Index is the fragment's position in the configuration
	Index    int
	Fragment types.RuleFragment
	// Glob is the files glob that selected it, empty for fragments without
	// a files list
	Glob string
}

// Result describes how a configuration treats one file.
type Result struct {
	Path string
	// IgnoredBy names the global ignore fragment excluding the file
	IgnoredBy string
	Matches   []Match
}

// Ignored reports whether a global ignore excludes the file.
func (r Result) Ignored() bool {
	return r.IgnoredBy != ""
}

// Rules returns the effective rules, later fragments winning.
func (r Result) Rules() types.Rules {
	out := types.Rules{}
	for _, m := range r.Matches {
		out = out.Merge(m.Fragment.Rules)
	}
	return out
}

// File inspects a path relative to the configuration root.
func File(fragments []types.RuleFragment, file string) (Result, error) {
	file = path.Clean(filepath.ToSlash(file))
	file = strings.TrimPrefix(file, "./")
	res := Result{Path: file}

	for _, f := range fragments {
		if !f.IsGlobalIgnore() {
			continue
		}
		ignored, err := ignoredBy(f.Ignores, file)
		if err != nil {
			return Result{}, errors.Wrapf(err, errors.ErrInvalidInput, "bad ignore pattern in %s", f.Name)
		}
		if ignored {
			res.IgnoredBy = f.Name
			return res, nil
		}
	}

	for i, f := range fragments {
		if f.IsGlobalIgnore() {
			continue
		}
		glob := ""
		if len(f.Files) > 0 {
			var err error
			glob, err = firstMatch(f.Files, file)
			if err != nil {
				return Result{}, errors.Wrapf(err, errors.ErrInvalidInput, "bad files pattern in %s", f.Name)
			}
			if glob == "" {
				continue
			}
		}
		if len(f.Ignores) > 0 {
			ignored, err := ignoredBy(f.Ignores, file)
			if err != nil {
				return Result{}, errors.Wrapf(err, errors.ErrInvalidInput, "bad ignore pattern in %s", f.Name)
			}
			if ignored {
				continue
			}
		}
		res.Matches = append(res.Matches, Match{Index: i, Fragment: f, Glob: glob})
	}
	return res, nil
}

func firstMatch(globs []string, file string) (string, error) {
	for _, g := range globs {
		ok, err := doublestar.Match(Translate(g), file)
		if err != nil {
			return "", err
		}
		if ok {
			return g, nil
		}
	}
	return "", nil
}

// ignoredBy applies ignore patterns in order; a "!" pattern re-includes. A
// pattern matching a parent directory ignores everything below it.
func ignoredBy(patterns []string, file string) (bool, error) {
	ignored := false
	for _, p := range patterns {
		negated := strings.HasPrefix(p, "!")
		p = Translate(strings.TrimSuffix(strings.TrimPrefix(p, "!"), "/"))

		hit, err := matchSelfOrParent(p, file)
		if err != nil {
			return false, err
		}
		if hit {
			ignored = !negated
		}
	}
	return ignored, nil
}

func matchSelfOrParent(pattern, file string) (bool, error) {
	for dir := file; dir != "." && dir != "/" && dir != ""; dir = path.Dir(dir) {
		ok, err := doublestar.Match(pattern, dir)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

// Translate rewrites the extglob forms used in lint globs, ?(x) and @(a|b),
// into the brace syntax doublestar understands.
func Translate(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		c := glob[i]
		if (c == '?' || c == '@') && i+1 < len(glob) && glob[i+1] == '(' {
			end := closingParen(glob, i+1)
			if end > 0 {
				alts := strings.ReplaceAll(glob[i+2:end], "|", ",")
				if c == '?' {
					b.WriteString("{," + alts + "}")
				} else {
					b.WriteString("{" + alts + "}")
				}
				i = end
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func closingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
