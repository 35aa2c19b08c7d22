package strategy

import (
	"context"
	"slices"

	mhs "github.com/aws/aws-sdk-go-v2/service/migrationhubstrategy"
	"github.com/aws/aws-sdk-go-v2/service/migrationhubstrategy/types"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
)

// ListApplicationComponentsParams are the bound inputs of ListApplicationComponents.
type ListApplicationComponentsParams struct {
	ApplicationComponentCriteria *string
	FilterValue                  *string
	GroupIdFilter                []types.Group
	MaxResult                    *int32
	NextToken                    *string
	Sort                         *string
}

// ListApplicationComponents lists the application components found in the portfolio.
func (c *Client) ListApplicationComponents() *binding.Operation[ListApplicationComponentsParams, mhs.ListApplicationComponentsInput, mhs.ListApplicationComponentsOutput] {
	return &binding.Operation[ListApplicationComponentsParams, mhs.ListApplicationComponentsInput, mhs.ListApplicationComponentsOutput]{
		Service:  ServiceLabel,
		Name:     "ListApplicationComponents",
		Endpoint: c.endpoint,
		Params: []binding.Param{
			{Name: "ApplicationComponentCriteria", Type: binding.TypeEnum, Usage: "Criteria to filter components by, e.g. APP_NAME"},
			{Name: "FilterValue", Type: binding.TypeString, Usage: "Value matched against the filter criteria"},
			{Name: "GroupIdFilter", Type: binding.TypeStrings, Usage: "Group filters as Name=Value"},
			{Name: "MaxResult", Type: binding.TypeInt32, Usage: "Maximum number of items per page"},
			{Name: "NextToken", Type: binding.TypeString, Usage: "Token of the page to fetch"},
			{Name: "Sort", Type: binding.TypeEnum, Usage: "Sort order, ASC or DESC"},
		},
		Aliases: binding.AliasTable{"MaxItems": "MaxResult"},
		Select:  "ApplicationComponentInfos",
		Fields: binding.FieldTable[mhs.ListApplicationComponentsOutput]{
			"ApplicationComponentInfos": func(o *mhs.ListApplicationComponentsOutput) any { return o.ApplicationComponentInfos },
			"NextToken":                 func(o *mhs.ListApplicationComponentsOutput) any { return o.NextToken },
		},
		Paging: &binding.Paging[mhs.ListApplicationComponentsInput, mhs.ListApplicationComponentsOutput]{
			InputToken:  func(in *mhs.ListApplicationComponentsInput) *string { return in.NextToken },
			SetToken:    func(in *mhs.ListApplicationComponentsInput, token *string) { in.NextToken = token },
			OutputToken: func(out *mhs.ListApplicationComponentsOutput) *string { return out.NextToken },
			Merge: func(acc, page *mhs.ListApplicationComponentsOutput) *mhs.ListApplicationComponentsOutput {
				return &mhs.ListApplicationComponentsOutput{
					ApplicationComponentInfos: append(slices.Clip(acc.ApplicationComponentInfos), page.ApplicationComponentInfos...),
					NextToken:                 page.NextToken,
				}
			},
		},
		BindParams: func(b *binding.Binder) ListApplicationComponentsParams {
			return ListApplicationComponentsParams{
				ApplicationComponentCriteria: binding.Optional[string](b, "ApplicationComponentCriteria"),
				FilterValue:                  binding.Optional[string](b, "FilterValue"),
				GroupIdFilter:                bindGroups(b, "GroupIdFilter"),
				MaxResult:                    binding.Optional[int32](b, "MaxResult"),
				NextToken:                    binding.Optional[string](b, "NextToken"),
				Sort:                         binding.Optional[string](b, "Sort"),
			}
		},
		Build: func(p ListApplicationComponentsParams) *mhs.ListApplicationComponentsInput {
			in := &mhs.ListApplicationComponentsInput{}
			binding.Enum(&in.ApplicationComponentCriteria, p.ApplicationComponentCriteria)
			binding.Opt(&in.FilterValue, p.FilterValue)
			binding.List(&in.GroupIdFilter, p.GroupIdFilter)
			binding.Opt(&in.MaxResults, p.MaxResult)
			binding.Opt(&in.NextToken, p.NextToken)
			binding.Enum(&in.Sort, p.Sort)
			return in
		},
		Call: func(ctx context.Context, in *mhs.ListApplicationComponentsInput) (*mhs.ListApplicationComponentsOutput, error) {
			return c.api.ListApplicationComponents(ctx, in)
		},
	}
}

// UpdateApplicationComponentConfigParams are the bound inputs of UpdateApplicationComponentConfig.
type UpdateApplicationComponentConfigParams struct {
	ApplicationComponentId *string
	AppType                *string
	ConfigureOnly          *bool
	InclusionStatus        *string
	SecretsManagerKey      *string
	StrategyOption         strategyOption
}

// UpdateApplicationComponentConfig updates the configuration of an application component.
func (c *Client) UpdateApplicationComponentConfig() *binding.Operation[UpdateApplicationComponentConfigParams, mhs.UpdateApplicationComponentConfigInput, mhs.UpdateApplicationComponentConfigOutput] {
	return &binding.Operation[UpdateApplicationComponentConfigParams, mhs.UpdateApplicationComponentConfigInput, mhs.UpdateApplicationComponentConfigOutput]{
		Service:  ServiceLabel,
		Name:     "UpdateApplicationComponentConfig",
		Endpoint: c.endpoint,
		Params: append([]binding.Param{
			{Name: "ApplicationComponentId", Type: binding.TypeString, Required: true, Usage: "ID of the application component"},
			{Name: "AppType", Type: binding.TypeEnum, Usage: "Type of the application component"},
			{Name: "ConfigureOnly", Type: binding.TypeBool, Usage: "Update the configuration without running an analysis"},
			{Name: "InclusionStatus", Type: binding.TypeEnum, Usage: "excludeFromAssessment or includeInAssessment"},
			{Name: "SecretsManagerKey", Type: binding.TypeString, Usage: "Secrets Manager key holding source repository credentials"},
		}, strategyOptionParams...),
		Select:   "*",
		PassThru: "ApplicationComponentId",
		Fields:   binding.FieldTable[mhs.UpdateApplicationComponentConfigOutput]{},
		BindParams: func(b *binding.Binder) UpdateApplicationComponentConfigParams {
			return UpdateApplicationComponentConfigParams{
				ApplicationComponentId: binding.Optional[string](b, "ApplicationComponentId"),
				AppType:                binding.Optional[string](b, "AppType"),
				ConfigureOnly:          binding.Optional[bool](b, "ConfigureOnly"),
				InclusionStatus:        binding.Optional[string](b, "InclusionStatus"),
				SecretsManagerKey:      binding.Optional[string](b, "SecretsManagerKey"),
				StrategyOption:         bindStrategyOption(b),
			}
		},
		Build: func(p UpdateApplicationComponentConfigParams) *mhs.UpdateApplicationComponentConfigInput {
			in := &mhs.UpdateApplicationComponentConfigInput{}
			binding.Opt(&in.ApplicationComponentId, p.ApplicationComponentId)
			binding.Enum(&in.AppType, p.AppType)
			binding.Opt(&in.ConfigureOnly, p.ConfigureOnly)
			binding.Enum(&in.InclusionStatus, p.InclusionStatus)
			binding.Opt(&in.SecretsManagerKey, p.SecretsManagerKey)
			in.StrategyOption = p.StrategyOption.build()
			return in
		},
		Call: func(ctx context.Context, in *mhs.UpdateApplicationComponentConfigInput) (*mhs.UpdateApplicationComponentConfigOutput, error) {
			return c.api.UpdateApplicationComponentConfig(ctx, in)
		},
	}
}
