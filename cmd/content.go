package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/William-WYL/portfolio/internal/content"
)

var (
	contentSource string
	contentOut    string
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect and export the site content",
}

var contentExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the content as YAML, ready to edit and serve with CONTENT_FILE",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(contentSource)
		if err != nil {
			return err
		}

		data, err := content.Export(cat)
		if err != nil {
			return err
		}

		if contentOut == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(contentOut, data, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", contentOut)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Content written to %s\n", contentOut)
		return nil
	},
}

var contentCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a content file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s is valid\n", args[0])
		fmt.Fprintf(out, "  skills:        %d\n", len(cat.Skills))
		fmt.Fprintf(out, "  projects:      %d\n", len(cat.Projects))
		fmt.Fprintf(out, "  certificates:  %d\n", len(cat.Certificates))
		fmt.Fprintf(out, "  testimonials:  %d\n", len(cat.Testimonials))
		return nil
	},
}

func init() {
	contentExportCmd.Flags().StringVarP(&contentSource, "from", "f", "", "content file to read (default: built-in content)")
	contentExportCmd.Flags().StringVarP(&contentOut, "out", "o", "", "output file (default: stdout)")

	contentCmd.AddCommand(contentExportCmd, contentCheckCmd)
	rootCmd.AddCommand(contentCmd)
}
