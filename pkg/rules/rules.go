package rules

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/tdmtools/spanline/pkg/errors"
	"github.com/tdmtools/spanline/pkg/logging"
	"github.com/tdmtools/spanline/pkg/types"
)

// Rule is one ordered entry of the rule file. Position in the sequence is
// its only precedence; patterns are compiled once at parse time.
type Rule struct {
	// Line is the 1-based line number in the source file, for diagnostics
	Line int

	IdentifierPattern string
	SpanPattern       string
	Target            types.LineType

	idRe   *regexp.Regexp
	spanRe *regexp.Regexp
}

// MatchesIdentifier reports whether the rule's identifier pattern matches
// the given device identifier
func (r *Rule) MatchesIdentifier(id string) bool {
	return r.idRe.MatchString(id)
}

// MatchesSpan reports whether the rule's span pattern matches the decimal
// string form of the span number
func (r *Rule) MatchesSpan(n int) bool {
	return r.spanRe.MatchString(strconv.Itoa(n))
}

// ParseFile reads and parses the rule file at path
func ParseFile(fsys afero.Fs, path string) ([]Rule, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"cannot open rule file %s", path)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, path)
}

// Parse parses rule-file text from r. The name is used in diagnostics only.
func Parse(r io.Reader, name string) ([]Rule, error) {
	logger := logging.GetLogger("rules.parser")

	var parsed []Rule
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// Strip comments and surrounding whitespace
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, errors.Newf(errors.ErrConfigParse,
				"%s:%d: expected '<identifier-pattern> <span-pattern>:<type>', got %d fields",
				name, lineNo, len(fields))
		}

		spanPattern, typeStr, ok := strings.Cut(fields[1], ":")
		if !ok || spanPattern == "" || typeStr == "" {
			return nil, errors.Newf(errors.ErrConfigParse,
				"%s:%d: second field must be '<span-pattern>:<type>', got %q",
				name, lineNo, fields[1])
		}
		target := types.LineType(typeStr)
		if !target.Assignable() {
			return nil, errors.Newf(errors.ErrConfigParse,
				"%s:%d: unknown line type %q (must be E1, T1 or J1)",
				name, lineNo, typeStr)
		}

		rule := Rule{
			Line:              lineNo,
			IdentifierPattern: fields[0],
			SpanPattern:       spanPattern,
			Target:            target,
		}
		idRe, err := compileGlob(rule.IdentifierPattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"%s:%d: bad identifier pattern", name, lineNo)
		}
		spanRe, err := compileGlob(rule.SpanPattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"%s:%d: bad span pattern", name, lineNo)
		}
		rule.idRe = idRe
		rule.spanRe = spanRe
		parsed = append(parsed, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"reading rule file %s", name)
	}

	logger.Debug().
		Str("file", name).
		Int("ruleCount", len(parsed)).
		Msg("Parsed rule file")

	return parsed, nil
}
