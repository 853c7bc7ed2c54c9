package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// genomesCommand creates the "genomes" command listing the assembly catalog.
func (c *CLI) genomesCommand() *cobra.Command {
	var (
		cached  bool
		refresh bool
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "genomes",
		Short: "List available assemblies",
		Long: `List assemblies from the UCSC catalog, marking the ones already in the
local store. With --cached, only locally stored assemblies are shown and no
network request is made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := c.store()

			local, err := store.Assemblies()
			if err != nil {
				return err
			}

			if cached {
				if len(local) == 0 {
					printInfo("No assemblies in the local store")
					return nil
				}
				fmt.Println(StyleTitle.Render("Cached assemblies"))
				for _, assembly := range local {
					info, err := store.ReadInfo(assembly)
					if err != nil {
						printWarning("%s: missing metadata, re-run fetch", assembly)
						continue
					}
					printAssembly(assembly, info.Organism, true)
				}
				return nil
			}

			client, err := c.newClient(ctx, false)
			if err != nil {
				return err
			}

			spin := newSpinnerWithContext(ctx, "Fetching assembly catalog...")
			spin.Start()
			genomes, err := client.Genomes(ctx, refresh)
			spin.Stop()
			if err != nil {
				return err
			}

			isLocal := make(map[string]bool, len(local))
			for _, assembly := range local {
				isLocal[assembly] = true
			}

			fmt.Println(StyleTitle.Render("UCSC assemblies"))
			shown := 0
			assemblies := make([]string, 0, len(genomes))
			for assembly := range genomes {
				assemblies = append(assemblies, assembly)
			}
			slices.Sort(assemblies)
			for _, assembly := range assemblies {
				info := genomes[assembly]
				if !all && info.Active == 0 && !isLocal[assembly] {
					continue
				}
				printAssembly(assembly, info.Organism, isLocal[assembly])
				shown++
			}
			printDetail("%d assemblies (%d local)", shown, len(local))
			return nil
		},
	}

	cmd.Flags().BoolVar(&cached, "cached", false, "list only locally stored assemblies")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the response cache")
	cmd.Flags().BoolVar(&all, "all", false, "include inactive assemblies")

	return cmd
}

// infoCommand creates the "info" command showing one assembly's metadata.
func (c *CLI) infoCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "info <assembly>",
		Short: "Show assembly metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			assembly := args[0]

			client, err := c.newClient(ctx, false)
			if err != nil {
				return err
			}
			info, err := client.Assembly(ctx, assembly, refresh)
			if err != nil {
				return err
			}
			chroms, err := client.Chromosomes(ctx, assembly, refresh)
			if err != nil {
				return err
			}

			total := 0
			for _, n := range chroms {
				total += n
			}

			fmt.Println(StyleTitle.Render(assembly))
			printKeyValue("organism", info.Organism)
			printKeyValue("scientific name", info.ScientificName)
			printKeyValue("description", info.Description)
			printKeyValue("source", info.SourceName)
			printKeyValue("chromosomes", fmt.Sprintf("%d (%d bp)", len(chroms), total))
			if c.store().Has(assembly) {
				printKeyValue("local store", styleCached.Render(iconCached))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the response cache")

	return cmd
}
