package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sso-cfn-helper",
	Short: "Generate CloudFormation templates for AWS SSO assignments",
	Long: `A tool to expand groups, users, permission sets, accounts and OUs into
AWS::SSO::Assignment resources, working around CloudFormation's lack of
many-to-many assignment support.`,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "sso-cfn-helper.yaml", "config file with per-project defaults")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "AWS profile used for lookups and OU expansion")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
