package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benkehoe/aws-sso-cfn-helper/internal/assign"
	"github.com/benkehoe/aws-sso-cfn-helper/internal/awsapi"
)

var (
	lookupInstance        string
	lookupIdentityStoreID string
	errorIfNotFound       bool
	showIDs               bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <type> [name...]",
	Short: "Look up SSO identifiers by name",
	Long: `Resolves names to the identifiers the generate command needs.
Types: instance, identity-store, groups, users, permission-sets.
Names that cannot be resolved print the NOT_FOUND sentinel unless
--error-if-not-found is set.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runLookup(cmd.Context(), args[0], args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	lookupCmd.Flags().StringVar(&lookupInstance, "instance", "", "SSO instance ARN or id (discovered when omitted)")
	lookupCmd.Flags().StringVar(&lookupIdentityStoreID, "identity-store-id", "", "Identity store id (discovered when omitted)")
	lookupCmd.Flags().BoolVarP(&errorIfNotFound, "error-if-not-found", "e", false, "Abort on the first name that does not resolve")
	lookupCmd.Flags().BoolVar(&showIDs, "show-id", false, "Print the SSO instance/identity store id being used")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(ctx context.Context, kind string, names []string) error {
	clients, err := awsapi.New(ctx, profile)
	if err != nil {
		return err
	}
	ids := awsapi.NewIDs(clients.SSOAdmin, lookupInstance, lookupIdentityStoreID)

	switch kind {
	case "instance":
		arn, err := ids.InstanceARN(ctx)
		if err != nil {
			return err
		}
		fmt.Println(arn)

	case "identity-store":
		storeID, err := ids.IdentityStoreID(ctx)
		if err != nil {
			return err
		}
		fmt.Println(storeID)

	case "groups", "users":
		if len(names) == 0 {
			return assign.NewConfigError("at least one name is required for %s lookup", kind)
		}
		storeID, err := ids.IdentityStoreID(ctx)
		if err != nil {
			return err
		}
		if showIDs {
			fmt.Printf("Using SSO identity store %s\n", storeID)
		}

		resolve := func(name string) (string, error) {
			if kind == "groups" {
				return awsapi.LookupGroupID(ctx, clients.IdentityStore, storeID, name)
			}
			return awsapi.LookupUserID(ctx, clients.IdentityStore, storeID, name)
		}
		return lookupNames(names, resolve)

	case "permission-sets":
		if len(names) == 0 {
			return assign.NewConfigError("at least one name is required for permission-sets lookup")
		}
		instanceARN, err := ids.InstanceARN(ctx)
		if err != nil {
			return err
		}
		if showIDs {
			fmt.Printf("Using SSO instance %s\n", assign.InstanceID(instanceARN))
		}

		lookup := awsapi.NewPermissionSetLookup(clients.SSOAdmin, instanceARN)
		return lookupNames(names, func(name string) (string, error) {
			return lookup.ARN(ctx, name)
		})

	default:
		return assign.NewConfigError("unknown lookup type %q, expected instance, identity-store, groups, users or permission-sets", kind)
	}
	return nil
}

// lookupNames resolves each name in order. A LookupError either aborts after
// printing what resolved so far (--error-if-not-found) or substitutes the
// NOT_FOUND sentinel; any other error is fatal immediately.
func lookupNames(names []string, resolve func(string) (string, error)) error {
	var lines [][2]string
	for _, name := range names {
		id, err := resolve(name)
		if err != nil {
			var lookupErr *awsapi.LookupError
			if !errors.As(err, &lookupErr) {
				return err
			}
			if errorIfNotFound {
				printLookupLines(lines)
				return err
			}
			id = awsapi.NotFound
		}
		lines = append(lines, [2]string{name, id})
	}
	printLookupLines(lines)
	return nil
}
