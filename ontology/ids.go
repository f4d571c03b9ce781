package ontology

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when a string cannot be read as a KiSAO id.
var ErrInvalidID = errors.New("invalid KiSAO id")

// Dialect is a textual spelling of KiSAO ids.
type Dialect string

const (
	// DialectKiSAO is the canonical form, e.g. KISAO_0000019.
	DialectKiSAO Dialect = "kisao"
	// DialectSEDML is the form used in SED-ML documents, e.g. KISAO:0000019.
	DialectSEDML Dialect = "sedml"
	// DialectInteger is the bare number, e.g. 19.
	DialectInteger Dialect = "integer"
)

var validDialects = map[Dialect]bool{
	DialectKiSAO:   true,
	DialectSEDML:   true,
	DialectInteger: true,
	"":             true, // empty defaults to kisao
}

// IsValidDialect returns true if the given name is a recognized id dialect.
func IsValidDialect(name string) bool {
	return validDialects[Dialect(name)]
}

var (
	canonicalIDPattern = regexp.MustCompile(`^KISAO_\d{7}$`)
	numericIDPattern   = regexp.MustCompile(`^\d{1,7}$`)
)

// NormalizeID converts any accepted spelling of a KiSAO id to the canonical
// KISAO_ddddddd form. Accepted inputs: "KISAO_0000019", "KISAO:0000019",
// "0000019" and "19".
func NormalizeID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(id, "KISAO:"); ok {
		id = "KISAO_" + rest
	}
	if numericIDPattern.MatchString(id) {
		id = "KISAO_" + strings.Repeat("0", 7-len(id)) + id
	}
	if !canonicalIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// IDInDialect renders a canonical id in the requested dialect.
func IDInDialect(id string, dialect Dialect) (string, error) {
	if !canonicalIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	switch dialect {
	case "", DialectKiSAO:
		return id, nil
	case DialectSEDML:
		return strings.Replace(id, "_", ":", 1), nil
	case DialectInteger:
		n, err := strconv.Atoi(strings.TrimPrefix(id, "KISAO_"))
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
		return strconv.Itoa(n), nil
	default:
		return "", fmt.Errorf("unknown id dialect %q; valid: kisao, sedml, integer", dialect)
	}
}
