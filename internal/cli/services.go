package cli

import (
	"github.com/spf13/cobra"

	"github.com/nandemo-ya/awscmdlet/internal/services/permissions"
	"github.com/nandemo-ya/awscmdlet/internal/services/strategy"
)

func newStrategyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: strategy.ServiceLabel + " operations",
	}
	cmd.AddCommand(
		operationCommand(strategy.NewFromConfig, (*strategy.Client).ListServers),
		operationCommand(strategy.NewFromConfig, (*strategy.Client).GetServerDetails),
		operationCommand(strategy.NewFromConfig, (*strategy.Client).GetServerStrategies),
		operationCommand(strategy.NewFromConfig, (*strategy.Client).UpdateServerConfig),
		operationCommand(strategy.NewFromConfig, (*strategy.Client).ListApplicationComponents),
		operationCommand(strategy.NewFromConfig, (*strategy.Client).UpdateApplicationComponentConfig),
	)
	return cmd
}

func newPermissionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permissions",
		Short: permissions.ServiceLabel + " operations",
	}
	cmd.AddCommand(
		operationCommand(permissions.NewFromConfig, (*permissions.Client).ListPolicyStores),
		operationCommand(permissions.NewFromConfig, (*permissions.Client).GetPolicyStore),
		operationCommand(permissions.NewFromConfig, (*permissions.Client).CreatePolicyStore),
		operationCommand(permissions.NewFromConfig, (*permissions.Client).ListPolicies),
		operationCommand(permissions.NewFromConfig, (*permissions.Client).GetPolicy),
		operationCommand(permissions.NewFromConfig, (*permissions.Client).CreatePolicy),
		operationCommand(permissions.NewFromConfig, (*permissions.Client).DeletePolicy),
		operationCommand(permissions.NewFromConfig, (*permissions.Client).IsAuthorized),
		operationCommand(permissions.NewFromConfig, (*permissions.Client).BatchIsAuthorized),
	)
	return cmd
}
