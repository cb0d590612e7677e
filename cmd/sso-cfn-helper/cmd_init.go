package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benkehoe/aws-sso-cfn-helper/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new sso-cfn-helper project",
	Long:  `Creates a default configuration file in the current directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Check if file exists
		if _, err := os.Stat(configPath); err == nil {
			fmt.Printf("Configuration file '%s' already exists.\n", configPath)
			if promptUser("Use existing file? [Y/n]: ", "y") {
				fmt.Println("Using existing configuration.")
				return
			}
			if !promptUser("Overwrite existing file? [y/N]: ", "n") {
				fmt.Println("Operation aborted.")
				return
			}
		}

		if err := config.CreateDefault(configPath); err != nil {
			fmt.Printf("Error creating configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created '%s'\n", configPath)
		fmt.Println("Ready to use! Try running 'sso-cfn-helper generate'")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
