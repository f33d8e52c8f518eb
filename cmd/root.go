package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a single-page developer portfolio: profile, skills,
projects, a paged certificate carousel, testimonials and a contact form
that relays each message to the owner with an auto-reply to the sender.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
