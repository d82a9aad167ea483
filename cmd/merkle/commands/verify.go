package commands

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	merkletree "github.com/mgr-inz-rafal/merkle-tree"
)

var (
	verifyRoot  string
	verifyProof string
	verifyCBOR  bool
)

var VerifyCmd = &cobra.Command{
	Use:   "verify --root HEX --proof HEX ITEM",
	Short: "Check a serialized inclusion proof for an item against a root digest",
	Args:  cobra.ExactArgs(1),
	RunE:  verify,
}

func init() {
	VerifyCmd.Flags().StringVar(&verifyRoot, "root", "", "hex encoded root digest to compare against")
	VerifyCmd.Flags().StringVar(&verifyProof, "proof", "", "hex encoded serialized proof")
	VerifyCmd.Flags().BoolVar(&verifyCBOR, "cbor", false, "the proof is CBOR rather than the binary layout")
	_ = VerifyCmd.MarkFlagRequired("root")
	_ = VerifyCmd.MarkFlagRequired("proof")
	RootCmd.AddCommand(VerifyCmd)
}

func verify(cmd *cobra.Command, args []string) error {
	hasher, err := newHasher()
	if err != nil {
		return err
	}

	root, err := hex.DecodeString(verifyRoot)
	if err != nil {
		return fmt.Errorf("decoding root: %w", err)
	}
	proofBytes, err := hex.DecodeString(verifyProof)
	if err != nil {
		return fmt.Errorf("decoding proof: %w", err)
	}

	var proof merkletree.Proof
	if verifyCBOR {
		codec, err := merkletree.NewProofCodec()
		if err != nil {
			return err
		}
		if proof, err = codec.UnmarshalProof(proofBytes); err != nil {
			log.Error().Err(err).Msg("verify")
			return err
		}
	} else {
		if err = proof.UnmarshalBinary(proofBytes); err != nil {
			log.Error().Err(err).Msg("verify")
			return err
		}
	}

	if !merkletree.VerifyInclusion(hasher, root, []byte(args[0]), proof) {
		log.Error().
			Str("item", args[0]).
			Str("root", verifyRoot).
			Msg("inclusion NOT verified")
		return errors.New("the item and proof do not reproduce the root")
	}

	log.Info().Str("item", args[0]).Str("root", verifyRoot).Msg("inclusion verified")
	return nil
}
