package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prilive-com/tgwire/wire"
)

var (
	decodeTarget string
	decodeEncode bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a JSON payload and print the variants it resolves to",
	Long: `Decode a JSON payload as one of the known targets (see "tgwire targets").

The payload is read from the file argument, or from stdin when the
argument is "-" or missing. On success the concrete variant of every
decoded entity is printed, together with the message shape where a
message was found and whether writing the entity back reproduces the
input.`,
	Example: `  tgwire decode -t message message.json
  curl -s "$API/getUpdates" | tgwire decode -t response.updates`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		data, err := readPayload(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		tgt, err := lookupTarget(decodeTarget)
		if err != nil {
			return err
		}
		return printDecode(cmd.OutOrStdout(), tgt, data, decodeEncode)
	},
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the decode targets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		bold := color.New(color.Bold)
		for _, t := range targets {
			bold.Fprintf(w, "  %-18s", t.name)
			fmt.Fprintln(w, t.doc)
		}
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeTarget, "target", "t", "update", "What the payload holds")
	decodeCmd.Flags().BoolVarP(&decodeEncode, "encode", "e", false, "Also print the entity written back as JSON")
}

func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// printDecode decodes data as tgt and writes a short report to w. A
// decode failure is reported and returned.
func printDecode(w io.Writer, tgt target, data []byte, encode bool) error {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	fail := func(err error) error {
		red.Fprint(w, "✗ ")
		fmt.Fprintln(w, err)
		if kind := errorKind(err); kind != "" {
			fmt.Fprintf(w, "  kind: %s\n", kind)
		}
		return err
	}

	in, err := wire.Parse(data)
	if err != nil {
		return fail(err)
	}
	d, err := tgt.decode(in)
	if err != nil {
		return fail(err)
	}

	green.Fprint(w, "✓ ")
	bold.Fprintln(w, tgt.name)
	fmt.Fprintf(w, "  variants:   %s\n", strings.Join(d.Variants, ", "))
	if len(d.Shapes) > 0 {
		fmt.Fprintf(w, "  shapes:     %s\n", strings.Join(d.Shapes, ", "))
	}
	if d.Exact(in) {
		fmt.Fprintf(w, "  round trip: %s\n", green.Sprint("exact"))
	} else {
		fmt.Fprintf(w, "  round trip: %s\n", yellow.Sprint("differs"))
	}
	if encode {
		fmt.Fprintf(w, "  encoded:    %s\n", d.Encoded)
	}
	return nil
}
