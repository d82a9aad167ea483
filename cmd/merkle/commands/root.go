package commands

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mgr-inz-rafal/merkle-tree/crc8"
)

var log = zerolog.New(
	zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"},
).With().Timestamp().Logger()

var hashName string

var RootCmd = &cobra.Command{
	Use:          "merkle",
	Short:        "Build, prove and verify fixed capacity merkle trees",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(
		&hashName, "hash", "sha256", "digest algorithm, one of sha256, crc8")
}

// newHasher maps the --hash flag to a hasher construction. crc8 is the one
// byte checksum that makes demonstration trees legible; sha256 is the
// production choice.
func newHasher() (hash.Hash, error) {
	switch hashName {
	case "sha256":
		return sha256.New(), nil
	case "crc8":
		return crc8.New(), nil
	default:
		return nil, fmt.Errorf("unknown hash %q, expected sha256 or crc8", hashName)
	}
}

func itemsFromArgs(args []string) [][]byte {
	items := make([][]byte, 0, len(args))
	for _, arg := range args {
		items = append(items, []byte(arg))
	}
	return items
}
