package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDiagnostics(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewDiagnosticSystemWithWriters(level, &out, &errOut), &out, &errOut
}

func TestDiagnosticSystem_Levels(t *testing.T) {
	tests := []struct {
		name        string
		level       DiagnosticLevel
		wantInfo    bool
		wantVerbose bool
		wantError   bool
	}{
		{"silent", DiagnosticSilent, false, false, false},
		{"error", DiagnosticError, false, false, true},
		{"info", DiagnosticInfo, true, false, true},
		{"verbose", DiagnosticVerbose, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, out, errOut := newTestDiagnostics(tt.level)
			assert.Equal(t, tt.level, d.Level())

			d.Info("info message")
			d.Verbose("verbose message")
			d.Error("error message")

			assert.Equal(t, tt.wantInfo, bytes.Contains(out.Bytes(), []byte("[INFO] info message")))
			assert.Equal(t, tt.wantVerbose, bytes.Contains(out.Bytes(), []byte("[VERBOSE] verbose message")))
			assert.Equal(t, tt.wantError, bytes.Contains(errOut.Bytes(), []byte("[ERROR] error message")))
		})
	}
}

func TestDiagnosticSystem_ConstructorLevels(t *testing.T) {
	assert.Equal(t, DiagnosticError, NewQuietDiagnostics().Level())
	assert.Equal(t, DiagnosticVerbose, NewVerboseDiagnostics().Level())
	assert.Equal(t, DiagnosticInfo, NewDiagnosticSystem(DiagnosticInfo).Level())
}

func TestDiagnosticSystem_Progress(t *testing.T) {
	d, out, _ := newTestDiagnostics(DiagnosticInfo)

	d.StartProgress("Loading %s", "definition")
	d.EndProgress(true, "3 modules")
	d.StartProgress("Generating")
	d.EndProgress(false, "")

	assert.Equal(t, "✓ Loading definition (3 modules)\n✗ Generating\n", out.String())
}

func TestDiagnosticSystem_EndProgressWithoutStart(t *testing.T) {
	d, out, _ := newTestDiagnostics(DiagnosticInfo)

	d.EndProgress(true, "ignored")

	assert.Empty(t, out.String())
}

func TestDiagnosticSystem_IndentAndList(t *testing.T) {
	d, out, _ := newTestDiagnostics(DiagnosticInfo)

	d.List("top")
	d.Indent()
	d.List("nested")
	d.Unindent()
	d.Unindent()
	d.List("back")

	assert.Equal(t, "- top\n  - nested\n- back\n", out.String())
}

func TestDiagnosticSystem_SummarySortsKeys(t *testing.T) {
	d, out, _ := newTestDiagnostics(DiagnosticInfo)

	d.Summary("Done", map[string]interface{}{
		"Services": 2,
		"Enums":    1,
		"Models":   3,
	})

	assert.Equal(t, "\nDone\n   Enums: 1\n   Models: 3\n   Services: 2\n\n", out.String())
}

func TestDiagnosticSystem_QuietSuppressesSummary(t *testing.T) {
	d, out, _ := newTestDiagnostics(DiagnosticError)

	d.Section("Proxy Generator")
	d.Summary("Done", map[string]interface{}{"Services": 1})
	d.Success("finished")

	assert.Empty(t, out.String())
}
