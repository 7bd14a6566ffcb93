package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/coinscribe/pkg/doc"
	"github.com/arthur-debert/coinscribe/pkg/ui/styles"
)

func TestCatalogIsTotal(t *testing.T) {
	for _, tag := range doc.Tags {
		t.Run(tag.String(), func(t *testing.T) {
			// Every tag must have an entry, possibly the empty one.
			style := styles.For(tag)
			assert.NotNil(t, style, "tag %s should have a catalog entry", tag)
		})
	}
}

func TestCatalogEntries(t *testing.T) {
	tests := []struct {
		name string
		tag  doc.Tag
		want styles.Style
	}{
		{"title is bold", doc.TagTitle, styles.Style{styles.Bold()}},
		{"static is unstyled", doc.TagStatic, styles.Style{}},
		{"key is unstyled", doc.TagKey, styles.Style{}},
		{"deriv is unstyled", doc.TagDeriv, styles.Style{}},
		{"fee is unstyled", doc.TagFee, styles.Style{}},
		{"address is bold blue", doc.TagAddress,
			styles.Style{styles.Bold(), styles.Fg(styles.Blue)}},
		{"pubkey is magenta", doc.TagPubKey,
			styles.Style{styles.Fg(styles.Magenta)}},
		{"testnet marker is vivid yellow", doc.TagTestnetMarker,
			styles.Style{styles.VividFg(styles.Yellow)}},
		{"error is red", doc.TagError,
			styles.Style{styles.Fg(styles.Red)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.For(tt.tag))
		})
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name  string
		style styles.Style
		want  string
	}{
		{"empty", styles.Style{}, ""},
		{"bold", styles.Style{styles.Bold()}, "1"},
		{"italic", styles.Style{styles.Italic()}, "3"},
		{"reset", styles.Style{styles.Reset()}, "0"},
		{"dull red", styles.Style{styles.Fg(styles.Red)}, "31"},
		{"vivid black", styles.Style{styles.VividFg(styles.Black)}, "90"},
		{"bold dull blue", styles.Style{styles.Bold(), styles.Fg(styles.Blue)}, "1;34"},
		{"italic white", styles.Style{styles.Italic(), styles.Fg(styles.White)}, "3;37"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.Sequence())
		})
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	theme := `styles:
  Mnemonic:
    bold: true
    foreground: yellow
    vivid: true
`
	require.NoError(t, os.WriteFile(path, []byte(theme), 0644))
	require.NoError(t, styles.LoadTheme(path))

	assert.Equal(t,
		styles.Style{styles.Bold(), styles.VividFg(styles.Yellow)},
		styles.For(doc.TagMnemonic))

	// Tags absent from the theme keep their appearance.
	assert.Equal(t, styles.Style{styles.Bold()}, styles.For(doc.TagTitle))
}

func TestLoadThemeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown tag", "styles:\n  Nonsense:\n    bold: true\n"},
		{"unknown color", "styles:\n  Title:\n    foreground: chartreuse\n"},
		{"not yaml", ": [ definitely not yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "theme.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			assert.Error(t, styles.LoadTheme(path))
		})
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	err := styles.LoadTheme(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
