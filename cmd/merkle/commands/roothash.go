package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	merkletree "github.com/mgr-inz-rafal/merkle-tree"
)

var RootHashCmd = &cobra.Command{
	Use:   "root ITEM...",
	Short: "Print the root digest committing to the items",
	Args:  cobra.MinimumNArgs(1),
	RunE:  rootHash,
}

var ShowCmd = &cobra.Command{
	Use:   "show ITEM...",
	Short: "Print every digest in the tree, level by level",
	Args:  cobra.MinimumNArgs(1),
	RunE:  showTree,
}

func init() {
	RootCmd.AddCommand(RootHashCmd)
	RootCmd.AddCommand(ShowCmd)
}

func buildTree(args []string) (*merkletree.Tree, error) {
	hasher, err := newHasher()
	if err != nil {
		return nil, err
	}
	t, err := merkletree.FromItems(itemsFromArgs(args), hasher)
	if err != nil {
		return nil, fmt.Errorf("building tree from %d items: %w", len(args), err)
	}
	return t, nil
}

func rootHash(cmd *cobra.Command, args []string) error {
	t, err := buildTree(args)
	if err != nil {
		log.Error().Err(err).Msg("root")
		return err
	}
	fmt.Println(hex.EncodeToString(t.Root()))
	return nil
}

func showTree(cmd *cobra.Command, args []string) error {
	t, err := buildTree(args)
	if err != nil {
		log.Error().Err(err).Msg("show")
		return err
	}
	fmt.Print(merkletree.TreeString(t))
	return nil
}
