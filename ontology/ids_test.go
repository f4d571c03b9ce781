package ontology

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID_AcceptedSpellings(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"KISAO_0000019", "KISAO_0000019"},
		{"KISAO:0000019", "KISAO_0000019"},
		{"0000019", "KISAO_0000019"},
		{"19", "KISAO_0000019"},
		{"  KISAO_0000560 ", "KISAO_0000560"},
		{"1234567", "KISAO_1234567"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeID(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeID_Rejects(t *testing.T) {
	for _, raw := range []string{"", "KISAO_19", "kisao_0000019", "KISAO_00000190", "12345678", "CVODE", "-19"} {
		t.Run(raw, func(t *testing.T) {
			_, err := NormalizeID(raw)
			if !errors.Is(err, ErrInvalidID) {
				t.Errorf("NormalizeID(%q): expected ErrInvalidID, got %v", raw, err)
			}
		})
	}
}

func TestIDInDialect(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{"", "KISAO_0000019"},
		{DialectKiSAO, "KISAO_0000019"},
		{DialectSEDML, "KISAO:0000019"},
		{DialectInteger, "19"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			got, err := IDInDialect("KISAO_0000019", tt.dialect)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIDInDialect_RoundTripsThroughNormalize(t *testing.T) {
	for _, d := range []Dialect{DialectKiSAO, DialectSEDML, DialectInteger} {
		rendered, err := IDInDialect("KISAO_0000560", d)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", d, err)
		}
		back, err := NormalizeID(rendered)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", d, err)
		}
		assert.Equal(t, "KISAO_0000560", back, "dialect %s", d)
	}
}

func TestIDInDialect_Errors(t *testing.T) {
	_, err := IDInDialect("19", DialectSEDML)
	assert.ErrorIs(t, err, ErrInvalidID, "non-canonical input")

	_, err = IDInDialect("KISAO_0000019", "obo")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown id dialect")
}

func TestIsValidDialect(t *testing.T) {
	for _, name := range []string{"", "kisao", "sedml", "integer"} {
		assert.True(t, IsValidDialect(name), name)
	}
	assert.False(t, IsValidDialect("KISAO"))
	assert.False(t, IsValidDialect("obo"))
}
