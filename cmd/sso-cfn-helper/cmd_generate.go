package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benkehoe/aws-sso-cfn-helper/internal/assign"
	"github.com/benkehoe/aws-sso-cfn-helper/internal/awsapi"
	"github.com/benkehoe/aws-sso-cfn-helper/internal/config"
	"github.com/benkehoe/aws-sso-cfn-helper/internal/inputfile"
	"github.com/benkehoe/aws-sso-cfn-helper/internal/template"
)

var (
	instance       string
	groups         []string
	users          []string
	permissionSets []string
	ous            []string
	accountIDs     []string
	inputFilePath  string
	templateFile   string
	maxPerTemplate int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Expand assignments and write CloudFormation templates",
	Long: `Computes the full product of principals, permission sets and targets and
writes one AWS::SSO::Assignment resource per combination. OU targets are
expanded to their member accounts, recursively. When the resource count
exceeds the per-template maximum, numbered template files are written.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	generateCmd.Flags().StringVarP(&instance, "instance", "i", "", "SSO instance ARN or id (discovered from the account when omitted)")
	generateCmd.Flags().StringSliceVarP(&groups, "groups", "g", nil, "Group ids to assign")
	generateCmd.Flags().StringSliceVarP(&users, "users", "u", nil, "User ids to assign")
	generateCmd.Flags().StringSliceVarP(&permissionSets, "permission-sets", "p", nil, "Permission sets (ARN, instance-qualified id, or bare id)")
	generateCmd.Flags().StringSliceVarP(&ous, "ous", "o", nil, "OU ids to expand into account targets")
	generateCmd.Flags().StringSliceVarP(&accountIDs, "accounts", "a", nil, "Account ids to target")
	generateCmd.Flags().StringVar(&inputFilePath, "input-file", "", "INI file with sections named like the list flags")
	generateCmd.Flags().StringVar(&templateFile, "template-file", "", "Template file name; numbers are inserted when multiple templates are needed (default template.yaml)")
	generateCmd.Flags().IntVar(&maxPerTemplate, "max-resources-per-template", 0, fmt.Sprintf("Maximum resources per template (default %d)", template.DefaultMaxResourcesPerTemplate))
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if profile == "" {
		profile = cfg.Profile
	}
	if instance == "" {
		instance = cfg.Instance
	}
	if templateFile == "" {
		templateFile = cfg.TemplateFile
	}
	if templateFile == "" {
		templateFile = "template.yaml"
	}
	if !cmd.Flags().Changed("max-resources-per-template") {
		maxPerTemplate = cfg.MaxResourcesPerTemplate
		if maxPerTemplate == 0 {
			maxPerTemplate = template.DefaultMaxResourcesPerTemplate
		}
	}

	in := inputfile.Input{
		Groups:         groups,
		Users:          users,
		PermissionSets: permissionSets,
		OUs:            ous,
		Accounts:       accountIDs,
	}
	if inputFilePath != "" {
		if len(groups)+len(users)+len(permissionSets)+len(ous)+len(accountIDs) > 0 {
			return assign.NewConfigError("--input-file cannot be combined with the principal, permission-set or target flags")
		}
		loaded, err := inputfile.Load(inputFilePath)
		if err != nil {
			return err
		}
		if loaded.Instance != "" {
			if instance != "" && instance != loaded.Instance {
				return assign.NewConfigError("instance %s from file and %s from command line do not match", loaded.Instance, instance)
			}
			instance = loaded.Instance
		}
		in = *loaded
	}

	if len(in.Groups) == 0 && len(in.Users) == 0 {
		return assign.NewConfigError("provide at least one principal (group or user)")
	}
	if len(in.PermissionSets) == 0 {
		return assign.NewConfigError("provide at least one permission set")
	}
	if len(in.OUs) == 0 && len(in.Accounts) == 0 {
		return assign.NewConfigError("provide at least one target (OU or account)")
	}

	// Reject symbolic OU ids before any AWS contact: a reference cannot be
	// expanded against a real API.
	ouIDs := make([]assign.Value, 0, len(in.OUs))
	for _, raw := range in.OUs {
		ouID := assign.Parse(raw)
		if ouID.Ref {
			return assign.NewConfigError("OU %q is a reference and cannot be expanded against the Organizations API", ouID.Name)
		}
		ouIDs = append(ouIDs, ouID)
	}

	// AWS is only contacted when something needs it: instance discovery or
	// OU expansion.
	var clients *awsapi.Clients
	getClients := func() (*awsapi.Clients, error) {
		if clients == nil {
			c, err := awsapi.New(ctx, profile)
			if err != nil {
				return nil, err
			}
			clients = c
		}
		return clients, nil
	}

	var instanceARN string
	if instance != "" {
		instanceARN = assign.InstanceARN(instance)
	} else {
		c, err := getClients()
		if err != nil {
			return err
		}
		ids := awsapi.NewIDs(c.SSOAdmin, "", "")
		instanceARN, err = ids.InstanceARN(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Using SSO instance %s\n", assign.InstanceID(instanceARN))
	}
	instanceID := assign.InstanceID(instanceARN)

	var principals []assign.Principal
	for _, g := range in.Groups {
		principals = append(principals, assign.Principal{Type: assign.PrincipalTypeGroup, ID: assign.Parse(g)})
	}
	for _, u := range in.Users {
		principals = append(principals, assign.Principal{Type: assign.PrincipalTypeUser, ID: assign.Parse(u)})
	}

	var sets []assign.Value
	for _, raw := range in.PermissionSets {
		normalized, err := assign.NormalizePermissionSet(assign.Parse(raw), instanceID)
		if err != nil {
			return err
		}
		sets = append(sets, normalized)
	}

	var targets []assign.Target
	for _, ouID := range ouIDs {
		c, err := getClients()
		if err != nil {
			return err
		}
		accounts, err := assign.ExpandOU(ctx, awsapi.NewOrgLister(c.Organizations), ouID)
		if err != nil {
			return err
		}
		for _, account := range accounts {
			targets = append(targets, assign.Target{Type: assign.TargetTypeAccount, ID: account})
		}
	}
	for _, account := range in.Accounts {
		targets = append(targets, assign.Target{Type: assign.TargetTypeAccount, ID: assign.Parse(account)})
	}

	records := assign.Expand(principals, sets, targets)

	docs, err := template.Partition(records, maxPerTemplate)
	if err != nil {
		return err
	}

	// Render everything before writing anything: the run produces all
	// templates or none.
	bodies := make([][]byte, len(docs))
	start := 1
	for i, doc := range docs {
		body, err := template.Render(doc, instanceARN, start, len(records))
		if err != nil {
			return err
		}
		bodies[i] = body
		start += len(doc)
	}

	names := template.FileNames(templateFile, len(docs))
	for i, name := range names {
		if err := os.WriteFile(name, bodies[i], 0644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}

	if len(names) == 1 {
		_, _ = headerColor.Printf("Wrote %d assignments to %s\n", len(records), names[0])
	} else {
		_, _ = headerColor.Printf("Wrote %d assignments to %s through %s\n", len(records), names[0], names[len(names)-1])
	}
	return nil
}
