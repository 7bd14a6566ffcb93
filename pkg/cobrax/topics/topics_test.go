package topics_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/coinscribe/pkg/cobrax/topics"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"snapshots.md": {Data: []byte("# Snapshots\n\nSnapshot format.\n")},
		"units.txt":    {Data: []byte("Units are btc, bit, satoshi.\n")},
		"ignored.json": {Data: []byte("{}")},
	}
}

func TestNewScansSupportedExtensions(t *testing.T) {
	tm, err := topics.New(testFS(), topics.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"snapshots", "units"}, tm.ListTopics())

	_, exists := tm.GetTopic("ignored")
	assert.False(t, exists, "unsupported extensions should be skipped")
}

func TestGetTopic(t *testing.T) {
	tm, err := topics.New(testFS(), topics.Options{})
	require.NoError(t, err)

	topic, exists := tm.GetTopic("units")
	require.True(t, exists)
	assert.Equal(t, "units", topic.Name)
	assert.Contains(t, topic.Content, "satoshi")

	_, exists = tm.GetTopic("missing")
	assert.False(t, exists)
}

func TestCustomExtensions(t *testing.T) {
	tm, err := topics.New(testFS(), topics.Options{Extensions: []string{".json"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"ignored"}, tm.ListTopics())
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "testapp"}
	root.AddCommand(&cobra.Command{
		Use: "noop",
		Run: func(cmd *cobra.Command, args []string) {},
	})
	return root
}

func TestHelpCommandRendersTopic(t *testing.T) {
	root := newRoot()
	require.NoError(t, topics.Initialize(root, testFS(), topics.Options{}))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"help", "units"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Units are btc, bit, satoshi.")
}

func TestHelpCommandListsTopics(t *testing.T) {
	root := newRoot()
	require.NoError(t, topics.Initialize(root, testFS(), topics.Options{}))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "snapshots")
	assert.Contains(t, out.String(), "units")
	assert.Contains(t, out.String(), "testapp help <topic>")
}

func TestPlainRendererPassesThrough(t *testing.T) {
	r := &topics.PlainRenderer{}
	assert.Equal(t, "content", r.Render("content", ".md"))
}

func TestGlamourRendererPassesThroughNonMarkdown(t *testing.T) {
	r := topics.NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
