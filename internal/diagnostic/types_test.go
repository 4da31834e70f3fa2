package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning(CodeDuplicateRawValue, "raw value \"x\" of B shadows A", "Letter", "B")
	d.AddInfo("", "3 cases", "Letter", "")
	assert.True(t, d.IsValid())

	var other Diagnostics
	other.AddError("missing_known_cases", "KnownCases must be declared", "Color", "")
	other.AddError("bad_literal", "invalid raw value", "Color", "Red")

	d.Merge(other)
	assert.True(t, d.HasErrors())
	require.Len(t, d.Warnings, 1)
	require.Len(t, d.Infos, 1)

	assert.Equal(t, "[Letter] B: [duplicate_raw_value] raw value \"x\" of B shadows A", d.Warnings[0].String())
	assert.Equal(t, "[Letter]: 3 cases", d.Infos[0].String())
	assert.EqualError(t, d.Error(),
		"[Color]: [missing_known_cases] KnownCases must be declared; [Color] Red: [bad_literal] invalid raw value")
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
