package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	merkletree "github.com/mgr-inz-rafal/merkle-tree"
	"github.com/mgr-inz-rafal/merkle-tree/treetesting"
)

var (
	demoLeaves uint64
	demoSeed   int64
)

var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a tree over generated content, print it, then prove and verify a random leaf",
	RunE:  demo,
}

func init() {
	DemoCmd.Flags().Uint64Var(&demoLeaves, "leaves", 8, "leaf capacity, a non zero power of 2")
	DemoCmd.Flags().Int64Var(&demoSeed, "seed", 1, "seed for the generated leaf content")
	RootCmd.AddCommand(DemoCmd)
}

func demo(cmd *cobra.Command, args []string) error {
	hasher, err := newHasher()
	if err != nil {
		return err
	}

	g := treetesting.NewTestGenerator(treetesting.TestConfig{
		Seed:        demoSeed,
		LabelPrefix: "demo",
	})
	items := g.GenerateLeafContent(int(demoLeaves))

	t, err := merkletree.FromItems(items, hasher)
	if err != nil {
		log.Error().Err(err).Uint64("leaves", demoLeaves).Msg("demo")
		return err
	}

	fmt.Print(merkletree.TreeString(t))

	leafIndex := uint64(g.Rng.Int63n(int64(demoLeaves)))
	proof, err := t.InclusionProof(leafIndex)
	if err != nil {
		return err
	}

	log.Info().
		Uint64("index", leafIndex).
		Str("item", string(items[leafIndex])).
		Str("path", merkletree.ProofString(proof)).
		Msg("proof")

	if !merkletree.VerifyInclusion(hasher, t.Root(), items[leafIndex], proof) {
		return fmt.Errorf("proof for leaf %d did not reproduce the root", leafIndex)
	}
	log.Info().
		Str("root", hex.EncodeToString(t.Root())).
		Msgf("leaf %d verified against the root", leafIndex)
	return nil
}
