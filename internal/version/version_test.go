package version

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// TestFullAndFields ensures every rendering carries the release.
func TestFullAndFields(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
	require.Contains(t, Full(), Commit)

	fields := Fields()
	require.Len(t, fields, 6)
	require.Equal(t, "version", fields[0])
	require.Equal(t, Version, fields[1])
}

// TestAttachCobraVersionCommand runs the subcommand with and without --short.
func TestAttachCobraVersionCommand(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{name: "full", args: []string{"version"}, want: "wake-gate " + Full() + "\n"},
		{name: "short", args: []string{"version", "--short"}, want: Short() + "\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			root := &cobra.Command{Use: "wake-gate"}
			AttachCobraVersionCommand(root)

			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs(tc.args)

			require.NoError(t, root.Execute())
			require.Equal(t, tc.want, out.String())
		})
	}
}
