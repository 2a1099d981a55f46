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

	d.AddWarning("deprecated_option", "with is deprecated", "UserEntity", "address", "using")
	d.AddInfo("note", "nothing to see", "", "")
	assert.True(t, d.IsValid())

	d.AddError("invalid_option", `"iff" is not a valid option`, "UserEntity", "email", "if")
	d.AddError("missing_name", "entity has no name", "", "")

	assert.True(t, d.HasErrors())
	assert.Len(t, d.All(), 4)
	assert.Equal(t, SeverityError, d.All()[0].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[UserEntity] email: [invalid_option] "iff" is not a valid option (did you mean if?); [missing_name] entity has no name`,
		err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("x", "x", "", "")
	b.AddWarning("y", "y", "", "")
	b.AddInfo("z", "z", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
