package strategy

import (
	"context"
	"slices"

	mhs "github.com/aws/aws-sdk-go-v2/service/migrationhubstrategy"
	"github.com/aws/aws-sdk-go-v2/service/migrationhubstrategy/types"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
)

// ListServersParams are the bound inputs of ListServers.
type ListServersParams struct {
	ServerCriteria *string
	FilterValue    *string
	GroupIdFilter  []types.Group
	MaxResult      *int32
	NextToken      *string
	Sort           *string
}

// ListServers lists the servers discovered by the import or collectors.
func (c *Client) ListServers() *binding.Operation[ListServersParams, mhs.ListServersInput, mhs.ListServersOutput] {
	return &binding.Operation[ListServersParams, mhs.ListServersInput, mhs.ListServersOutput]{
		Service:  ServiceLabel,
		Name:     "ListServers",
		Endpoint: c.endpoint,
		Params: []binding.Param{
			{Name: "ServerCriteria", Type: binding.TypeEnum, Usage: "Criteria to filter servers by, e.g. OS_NAME"},
			{Name: "FilterValue", Type: binding.TypeString, Usage: "Value matched against the filter criteria"},
			{Name: "GroupIdFilter", Type: binding.TypeStrings, Usage: "Group filters as Name=Value"},
			{Name: "MaxResult", Type: binding.TypeInt32, Usage: "Maximum number of items per page"},
			{Name: "NextToken", Type: binding.TypeString, Usage: "Token of the page to fetch"},
			{Name: "Sort", Type: binding.TypeEnum, Usage: "Sort order, ASC or DESC"},
		},
		Aliases: binding.AliasTable{"MaxItems": "MaxResult", "Filter": "ServerCriteria"},
		Select:  "ServerInfos",
		Fields: binding.FieldTable[mhs.ListServersOutput]{
			"ServerInfos": func(o *mhs.ListServersOutput) any { return o.ServerInfos },
			"NextToken":   func(o *mhs.ListServersOutput) any { return o.NextToken },
		},
		Paging: &binding.Paging[mhs.ListServersInput, mhs.ListServersOutput]{
			InputToken:  func(in *mhs.ListServersInput) *string { return in.NextToken },
			SetToken:    func(in *mhs.ListServersInput, token *string) { in.NextToken = token },
			OutputToken: func(out *mhs.ListServersOutput) *string { return out.NextToken },
			Merge: func(acc, page *mhs.ListServersOutput) *mhs.ListServersOutput {
				return &mhs.ListServersOutput{
					ServerInfos: append(slices.Clip(acc.ServerInfos), page.ServerInfos...),
					NextToken:   page.NextToken,
				}
			},
		},
		BindParams: func(b *binding.Binder) ListServersParams {
			return ListServersParams{
				ServerCriteria: binding.Optional[string](b, "ServerCriteria"),
				FilterValue:    binding.Optional[string](b, "FilterValue"),
				GroupIdFilter:  bindGroups(b, "GroupIdFilter"),
				MaxResult:      binding.Optional[int32](b, "MaxResult"),
				NextToken:      binding.Optional[string](b, "NextToken"),
				Sort:           binding.Optional[string](b, "Sort"),
			}
		},
		Build: func(p ListServersParams) *mhs.ListServersInput {
			in := &mhs.ListServersInput{}
			binding.Enum(&in.ServerCriteria, p.ServerCriteria)
			binding.Opt(&in.FilterValue, p.FilterValue)
			binding.List(&in.GroupIdFilter, p.GroupIdFilter)
			binding.Opt(&in.MaxResults, p.MaxResult)
			binding.Opt(&in.NextToken, p.NextToken)
			binding.Enum(&in.Sort, p.Sort)
			return in
		},
		Call: func(ctx context.Context, in *mhs.ListServersInput) (*mhs.ListServersOutput, error) {
			return c.api.ListServers(ctx, in)
		},
	}
}

// GetServerDetailsParams are the bound inputs of GetServerDetails.
type GetServerDetailsParams struct {
	ServerId  *string
	MaxResult *int32
	NextToken *string
}

// GetServerDetails returns a server's details and the applications it is associated with.
func (c *Client) GetServerDetails() *binding.Operation[GetServerDetailsParams, mhs.GetServerDetailsInput, mhs.GetServerDetailsOutput] {
	return &binding.Operation[GetServerDetailsParams, mhs.GetServerDetailsInput, mhs.GetServerDetailsOutput]{
		Service:  ServiceLabel,
		Name:     "GetServerDetails",
		Endpoint: c.endpoint,
		Params: []binding.Param{
			{Name: "ServerId", Type: binding.TypeString, Required: true, Usage: "ID of the server"},
			{Name: "MaxResult", Type: binding.TypeInt32, Usage: "Maximum number of associated applications per page"},
			{Name: "NextToken", Type: binding.TypeString, Usage: "Token of the page to fetch"},
		},
		Aliases:  binding.AliasTable{"MaxItems": "MaxResult"},
		Select:   "*",
		PassThru: "ServerId",
		Fields: binding.FieldTable[mhs.GetServerDetailsOutput]{
			"ServerDetail":           func(o *mhs.GetServerDetailsOutput) any { return o.ServerDetail },
			"AssociatedApplications": func(o *mhs.GetServerDetailsOutput) any { return o.AssociatedApplications },
			"NextToken":              func(o *mhs.GetServerDetailsOutput) any { return o.NextToken },
		},
		Paging: &binding.Paging[mhs.GetServerDetailsInput, mhs.GetServerDetailsOutput]{
			InputToken:  func(in *mhs.GetServerDetailsInput) *string { return in.NextToken },
			SetToken:    func(in *mhs.GetServerDetailsInput, token *string) { in.NextToken = token },
			OutputToken: func(out *mhs.GetServerDetailsOutput) *string { return out.NextToken },
			Merge: func(acc, page *mhs.GetServerDetailsOutput) *mhs.GetServerDetailsOutput {
				return &mhs.GetServerDetailsOutput{
					ServerDetail:           acc.ServerDetail,
					AssociatedApplications: append(slices.Clip(acc.AssociatedApplications), page.AssociatedApplications...),
					NextToken:              page.NextToken,
				}
			},
		},
		BindParams: func(b *binding.Binder) GetServerDetailsParams {
			return GetServerDetailsParams{
				ServerId:  binding.Optional[string](b, "ServerId"),
				MaxResult: binding.Optional[int32](b, "MaxResult"),
				NextToken: binding.Optional[string](b, "NextToken"),
			}
		},
		Build: func(p GetServerDetailsParams) *mhs.GetServerDetailsInput {
			in := &mhs.GetServerDetailsInput{}
			binding.Opt(&in.ServerId, p.ServerId)
			binding.Opt(&in.MaxResults, p.MaxResult)
			binding.Opt(&in.NextToken, p.NextToken)
			return in
		},
		Call: func(ctx context.Context, in *mhs.GetServerDetailsInput) (*mhs.GetServerDetailsOutput, error) {
			return c.api.GetServerDetails(ctx, in)
		},
	}
}

// GetServerStrategiesParams are the bound inputs of GetServerStrategies.
type GetServerStrategiesParams struct {
	ServerId *string
}

// GetServerStrategies returns the recommended strategies and tools for a server.
func (c *Client) GetServerStrategies() *binding.Operation[GetServerStrategiesParams, mhs.GetServerStrategiesInput, mhs.GetServerStrategiesOutput] {
	return &binding.Operation[GetServerStrategiesParams, mhs.GetServerStrategiesInput, mhs.GetServerStrategiesOutput]{
		Service:  ServiceLabel,
		Name:     "GetServerStrategies",
		Endpoint: c.endpoint,
		Params: []binding.Param{
			{Name: "ServerId", Type: binding.TypeString, Required: true, Usage: "ID of the server"},
		},
		Select:   "ServerStrategies",
		PassThru: "ServerId",
		Fields: binding.FieldTable[mhs.GetServerStrategiesOutput]{
			"ServerStrategies": func(o *mhs.GetServerStrategiesOutput) any { return o.ServerStrategies },
		},
		BindParams: func(b *binding.Binder) GetServerStrategiesParams {
			return GetServerStrategiesParams{ServerId: binding.Optional[string](b, "ServerId")}
		},
		Build: func(p GetServerStrategiesParams) *mhs.GetServerStrategiesInput {
			in := &mhs.GetServerStrategiesInput{}
			binding.Opt(&in.ServerId, p.ServerId)
			return in
		},
		Call: func(ctx context.Context, in *mhs.GetServerStrategiesInput) (*mhs.GetServerStrategiesOutput, error) {
			return c.api.GetServerStrategies(ctx, in)
		},
	}
}

// UpdateServerConfigParams are the bound inputs of UpdateServerConfig.
type UpdateServerConfigParams struct {
	ServerId       *string
	StrategyOption strategyOption
}

// UpdateServerConfig updates the preferred strategy of a server.
func (c *Client) UpdateServerConfig() *binding.Operation[UpdateServerConfigParams, mhs.UpdateServerConfigInput, mhs.UpdateServerConfigOutput] {
	return &binding.Operation[UpdateServerConfigParams, mhs.UpdateServerConfigInput, mhs.UpdateServerConfigOutput]{
		Service:  ServiceLabel,
		Name:     "UpdateServerConfig",
		Endpoint: c.endpoint,
		Params: append([]binding.Param{
			{Name: "ServerId", Type: binding.TypeString, Required: true, Usage: "ID of the server"},
		}, strategyOptionParams...),
		Select:   "*",
		PassThru: "ServerId",
		Fields:   binding.FieldTable[mhs.UpdateServerConfigOutput]{},
		BindParams: func(b *binding.Binder) UpdateServerConfigParams {
			return UpdateServerConfigParams{
				ServerId:       binding.Optional[string](b, "ServerId"),
				StrategyOption: bindStrategyOption(b),
			}
		},
		Build: func(p UpdateServerConfigParams) *mhs.UpdateServerConfigInput {
			in := &mhs.UpdateServerConfigInput{}
			binding.Opt(&in.ServerId, p.ServerId)
			in.StrategyOption = p.StrategyOption.build()
			return in
		},
		Call: func(ctx context.Context, in *mhs.UpdateServerConfigInput) (*mhs.UpdateServerConfigOutput, error) {
			return c.api.UpdateServerConfig(ctx, in)
		},
	}
}
