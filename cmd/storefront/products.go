package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aaravmahajanofficial/digital-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/spf13/cobra"
)

var (
	searchTerm string
	category   string
	sortKey    string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Run a catalog query against the bundled catalog and print the result",
	Long: `Runs the same filter, search and sort pipeline the API uses.

Example:
  storefront products --category courses --sort price-low
  storefront products --search kit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.LoadDefault()
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		q := models.CatalogQuery{
			Term:     searchTerm,
			Category: models.CategoryID(category),
			Sort:     models.SortKey(sortKey),
		}.Normalize()

		products := catalog.Apply(c.Products(), q)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE\tRATING\tDOWNLOADS\tFEATURED")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.1f\t%d\t%t\n",
				p.ID, p.Title, p.Category, p.Price, p.Rating, p.DownloadCount, p.Featured)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d products (category=%s sort=%s)\n",
			len(products), c.Len(), q.Category, q.Sort)
		return nil
	},
}

func init() {
	productsCmd.Flags().StringVar(&searchTerm, "search", "", "case-insensitive search term")
	productsCmd.Flags().StringVar(&category, "category", string(models.CategoryAll), "category id or all")
	productsCmd.Flags().StringVar(&sortKey, "sort", string(models.SortFeatured), "featured, price-low, price-high, rating or downloads")
}
