package presets

import (
	"bufio"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/logging"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/spf13/afero"
)

// DefaultGitignoreFiles are read when no files are configured.
var DefaultGitignoreFiles = []string{".gitignore"}

// Gitignore turns the patterns of the configured ignore files into a global
// ignore fragment. Missing files are skipped unless Strict is set. Nothing is
// returned when no pattern was found.
func Gitignore(fs afero.Fs, root string, opts options.GitignoreOptions) ([]types.RuleFragment, error) {
	logger := logging.GetLogger("presets.gitignore")

	var ignores []string
	for _, file := range orDefault(opts.Files, DefaultGitignoreFiles) {
		full := file
		if !filepath.IsAbs(full) {
			full = filepath.Join(root, file)
		}

		f, err := fs.Open(full)
		if err != nil {
			if opts.Strict {
				return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read ignore file %s", full).
					WithDetail("file", full)
			}
			logger.Debug().Str("file", full).Msg("Ignore file not found, skipping")
			continue
		}

		// patterns from nested ignore files apply below their own directory
		rel, relErr := filepath.Rel(root, filepath.Dir(full))
		if relErr != nil || rel == "." || strings.HasPrefix(rel, "..") {
			rel = ""
		}

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			pattern, ok := ConvertIgnorePattern(scanner.Text())
			if !ok {
				continue
			}
			ignores = append(ignores, relativeIgnore(pattern, filepath.ToSlash(rel)))
		}
		scanErr := scanner.Err()
		_ = f.Close()
		if scanErr != nil {
			return nil, errors.Wrapf(scanErr, errors.ErrFileAccess, "cannot read ignore file %s", full)
		}
	}

	if len(ignores) == 0 {
		return nil, nil
	}

	logger.Debug().Int("patterns", len(ignores)).Msg("Converted gitignore patterns")
	return []types.RuleFragment{{
		Name:    Name("gitignore"),
		Ignores: ignores,
	}}, nil
}

// ConvertIgnorePattern converts one gitignore line into an equivalent glob.
// Blank lines and comments report false.
func ConvertIgnorePattern(line string) (string, bool) {
	line = strings.TrimRight(line, " \t\r")
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}

	negated := strings.HasPrefix(line, "!")
	prefix := ""
	pattern := line
	if negated {
		prefix = "!"
		pattern = line[1:]
	}
	// a leading backslash escapes "#" and "!"
	pattern = strings.TrimPrefix(pattern, `\`)

	switch pattern {
	case "", "**", "/**", "**/":
		return prefix + pattern, true
	}

	slash := strings.Index(pattern, "/")
	everywhere := ""
	if slash < 0 || slash == len(pattern)-1 {
		everywhere = "**/"
	}
	if slash == 0 {
		pattern = pattern[1:]
	}

	suffix := ""
	if strings.HasSuffix(pattern, "/**") {
		suffix = "/*"
	}

	return prefix + everywhere + pattern + suffix, true
}

func relativeIgnore(pattern, dir string) string {
	if dir == "" {
		return pattern
	}
	if strings.HasPrefix(pattern, "!") {
		return "!" + dir + "/" + pattern[1:]
	}
	return dir + "/" + pattern
}
