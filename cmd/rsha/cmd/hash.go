package cmd

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"massnet.org/rsha/config"
	"massnet.org/rsha/crypto/sha256"
	"massnet.org/rsha/logging"
	"massnet.org/rsha/massutil"
)

const demoText = "hello world"

// formatWords renders digest words as [xxxxxxxx, ...].
func formatWords(words []uint32) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%08x", w)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// render prints digest in the configured format. Every supported digest is a
// whole number of big-endian words.
func render(digest []byte, format string) string {
	if format != config.FormatArr {
		return hex.EncodeToString(digest)
	}
	words := make([]uint32, len(digest)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(digest[i*4:])
	}
	return formatWords(words)
}

// digestFlags are the options shared by hash and sum.
type digestFlags struct {
	arr  bool
	kind string
}

func (f *digestFlags) register(c *cobra.Command) {
	c.Flags().BoolVarP(&f.arr, "arr", "a", false, "print digest words, same as --format arr")
	c.Flags().StringVarP(&f.kind, "kind", "k", string(massutil.KindSha256), "digest kind (sha256, sha256d, hash160)")
}

// resolve returns the digest kind and output format for one invocation.
func (f *digestFlags) resolve(a *app) (massutil.Kind, string, error) {
	kind, err := massutil.ParseKind(f.kind)
	if err != nil {
		return "", "", err
	}
	format := a.cfg.Output.Format
	if f.arr {
		format = config.FormatArr
	}
	return kind, format, nil
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [text]",
		Short: "Print both digest renderings of a sample string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := demoText
			if len(args) == 1 {
				text = args[0]
			}
			logging.VPrint(logging.INFO, "demo called", logging.LogFormat{"text": text})

			words := sha256.HashArr([]byte(text))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hash of %s -> %s\n", text, formatWords(words[:]))
			fmt.Fprintf(out, "Hash of %s -> %s\n", text, sha256.Hash([]byte(text)))
			return nil
		},
	}
}

func newHashCmd(a *app) *cobra.Command {
	var flags digestFlags
	c := &cobra.Command{
		Use:   "hash <text>...",
		Short: "Print the digest of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, format, err := flags.resolve(a)
			if err != nil {
				return err
			}
			logging.VPrint(logging.INFO, "hash called", logging.LogFormat{"count": len(args), "kind": kind, "format": format})

			for _, text := range args {
				fmt.Fprintln(cmd.OutOrStdout(), render(kind.Sum([]byte(text)), format))
			}
			return nil
		},
	}
	flags.register(c)
	return c
}
