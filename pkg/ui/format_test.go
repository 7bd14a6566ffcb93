package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/coinscribe/pkg/doc"
	"github.com/arthur-debert/coinscribe/pkg/ui"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ui.Format
		wantErr bool
	}{
		{"auto", "auto", ui.FormatAuto, false},
		{"empty defaults to auto", "", ui.FormatAuto, false},
		{"term", "term", ui.FormatTerminal, false},
		{"terminal", "terminal", ui.FormatTerminal, false},
		{"text", "text", ui.FormatText, false},
		{"plain", "plain", ui.FormatText, false},
		{"case insensitive", "TERM", ui.FormatTerminal, false},
		{"unknown", "sparkly", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
}

func TestFatalErrorMessage(t *testing.T) {
	err := ui.Fatal(doc.Cat(
		doc.ErrorText("something broke"),
		doc.Line(doc.Indent(2, doc.Static("details"))),
	))
	assert.Equal(t, "something broke\n  details", err.Error())
}

func TestFatalf(t *testing.T) {
	err := ui.Fatalf("bad value %q", "x")
	assert.Equal(t, `bad value "x"`, err.Error())
	assert.Equal(t, doc.ErrorText(`bad value "x"`), err.Doc)
}
