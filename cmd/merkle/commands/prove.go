package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	merkletree "github.com/mgr-inz-rafal/merkle-tree"
)

var (
	proveIndex uint64
	proveCBOR  bool
)

var ProveCmd = &cobra.Command{
	Use:   "prove --index N ITEM...",
	Short: "Print the inclusion proof for one leaf of the tree over the items",
	Args:  cobra.MinimumNArgs(1),
	RunE:  prove,
}

func init() {
	ProveCmd.Flags().Uint64Var(&proveIndex, "index", 0, "leaf index to prove")
	ProveCmd.Flags().BoolVar(&proveCBOR, "cbor", false, "serialize the proof as CBOR instead of the binary layout")
	RootCmd.AddCommand(ProveCmd)
}

func prove(cmd *cobra.Command, args []string) error {
	t, err := buildTree(args)
	if err != nil {
		log.Error().Err(err).Msg("prove")
		return err
	}

	proof, err := t.InclusionProof(proveIndex)
	if err != nil {
		log.Error().Err(err).Uint64("index", proveIndex).Msg("prove")
		return err
	}

	var encoded []byte
	if proveCBOR {
		codec, err := merkletree.NewProofCodec()
		if err != nil {
			return err
		}
		if encoded, err = codec.MarshalProof(proof); err != nil {
			log.Error().Err(err).Msg("prove: cbor encoding")
			return err
		}
	} else {
		if encoded, err = proof.MarshalBinary(); err != nil {
			log.Error().Err(err).Msg("prove: binary encoding")
			return err
		}
	}

	log.Info().
		Uint64("index", proveIndex).
		Int("steps", len(proof.Steps)).
		Str("path", merkletree.ProofString(proof)).
		Msg("proved")

	fmt.Printf("root: %s\n", hex.EncodeToString(t.Root()))
	fmt.Printf("proof: %s\n", hex.EncodeToString(encoded))
	return nil
}
