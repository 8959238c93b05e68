package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"massnet.org/rsha/crypto/sha256"
	"massnet.org/rsha/errors"
	"massnet.org/rsha/logging"
	"massnet.org/rsha/sumpool"
	"massnet.org/rsha/wire"
)

const stdinPath = "-"

func newSumCmd(a *app) *cobra.Command {
	var flags digestFlags
	c := &cobra.Command{
		Use:   "sum <file>...",
		Short: "Print the digests of files, - reads stdin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, format, err := flags.resolve(a)
			if err != nil {
				return err
			}
			logging.VPrint(logging.INFO, "sum called", logging.LogFormat{"count": len(args), "kind": kind, "format": format})

			results, err := a.sumPaths(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			var failed error
			for _, r := range results {
				if r.Err != nil {
					logging.VPrint(logging.WARN, "fail to hash file", logging.LogFormat{"path": r.Path, "err": r.Err})
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
					if failed == nil {
						failed = r.Err
					}
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", render(kind.FromSha256(r.Hash[:]), format), r.Path)
			}
			return failed
		},
	}
	flags.register(c)
	return c
}

// sumPaths hashes every path on a sumpool, except stdin which is read in
// place, once, however often it is listed.
func (a *app) sumPaths(stdin io.Reader, paths []string) ([]sumpool.Result, error) {
	pool, err := sumpool.New(a.cfg.Pool.Workers, a.cfg.Pool.CacheSize)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	var files []string
	for _, p := range paths {
		if p != stdinPath {
			files = append(files, p)
		}
	}
	fileResults := pool.SumFiles(files)

	var stdinResult *sumpool.Result
	results := make([]sumpool.Result, 0, len(paths))
	for _, p := range paths {
		if p == stdinPath {
			if stdinResult == nil {
				r := sumReader(stdinPath, stdin)
				stdinResult = &r
			}
			results = append(results, *stdinResult)
			continue
		}
		results = append(results, fileResults[0])
		fileResults = fileResults[1:]
	}
	return results, nil
}

func sumReader(name string, r io.Reader) sumpool.Result {
	res := sumpool.Result{Path: name}
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		res.Err = errors.Wrapf(err, errors.ErrReadInput, "read %s", name)
		return res
	}
	copy(res.Hash[:], h.Sum(nil))
	return res
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <digest> <file>",
		Short: "Check a file, or - for stdin, against a hex sha256 digest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := parseDigest(args[0])
			if err != nil {
				return err
			}

			results, err := a.sumPaths(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}
			got := results[0]
			if got.Err != nil {
				return got.Err
			}

			if !want.IsEqual(&got.Hash) {
				logging.CPrint(logging.WARN, "digest mismatch", logging.LogFormat{
					"path": got.Path,
					"want": want.String(),
					"got":  got.Hash.String(),
				})
				fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED\n", got.Path)
				return errors.New(errors.ErrDigestMismatch)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", got.Path)
			return nil
		},
	}
}

// parseDigest accepts exactly 64 hex digits in either case.
func parseDigest(s string) (*wire.Hash, error) {
	if len(s) != wire.MaxHashStringSize {
		return nil, errors.Wrapf(wire.ErrHashStrSize, errors.ErrDecodeDigest, "digest has %d digits", len(s))
	}
	h, err := wire.NewHashFromStr(s)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDecodeDigest)
	}
	return h, nil
}
