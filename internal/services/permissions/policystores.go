package permissions

import (
	"context"
	"slices"

	avp "github.com/aws/aws-sdk-go-v2/service/verifiedpermissions"
	"github.com/aws/aws-sdk-go-v2/service/verifiedpermissions/types"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
)

// ListPolicyStoresParams are the bound inputs of ListPolicyStores.
type ListPolicyStoresParams struct {
	MaxResult *int32
	NextToken *string
}

// ListPolicyStores lists the policy stores in the account.
func (c *Client) ListPolicyStores() *binding.Operation[ListPolicyStoresParams, avp.ListPolicyStoresInput, avp.ListPolicyStoresOutput] {
	return &binding.Operation[ListPolicyStoresParams, avp.ListPolicyStoresInput, avp.ListPolicyStoresOutput]{
		Service:  ServiceLabel,
		Name:     "ListPolicyStores",
		Endpoint: c.endpoint,
		Params: []binding.Param{
			{Name: "MaxResult", Type: binding.TypeInt32, Usage: "Maximum number of items per page"},
			{Name: "NextToken", Type: binding.TypeString, Usage: "Token of the page to fetch"},
		},
		Aliases: binding.AliasTable{"MaxItems": "MaxResult"},
		Select:  "PolicyStores",
		Fields: binding.FieldTable[avp.ListPolicyStoresOutput]{
			"PolicyStores": func(o *avp.ListPolicyStoresOutput) any { return o.PolicyStores },
			"NextToken":    func(o *avp.ListPolicyStoresOutput) any { return o.NextToken },
		},
		Paging: &binding.Paging[avp.ListPolicyStoresInput, avp.ListPolicyStoresOutput]{
			InputToken:  func(in *avp.ListPolicyStoresInput) *string { return in.NextToken },
			SetToken:    func(in *avp.ListPolicyStoresInput, token *string) { in.NextToken = token },
			OutputToken: func(out *avp.ListPolicyStoresOutput) *string { return out.NextToken },
			Merge: func(acc, page *avp.ListPolicyStoresOutput) *avp.ListPolicyStoresOutput {
				return &avp.ListPolicyStoresOutput{
					PolicyStores: append(slices.Clip(acc.PolicyStores), page.PolicyStores...),
					NextToken:    page.NextToken,
				}
			},
		},
		BindParams: func(b *binding.Binder) ListPolicyStoresParams {
			return ListPolicyStoresParams{
				MaxResult: binding.Optional[int32](b, "MaxResult"),
				NextToken: binding.Optional[string](b, "NextToken"),
			}
		},
		Build: func(p ListPolicyStoresParams) *avp.ListPolicyStoresInput {
			in := &avp.ListPolicyStoresInput{}
			binding.Opt(&in.MaxResults, p.MaxResult)
			binding.Opt(&in.NextToken, p.NextToken)
			return in
		},
		Call: func(ctx context.Context, in *avp.ListPolicyStoresInput) (*avp.ListPolicyStoresOutput, error) {
			return c.api.ListPolicyStores(ctx, in)
		},
	}
}

// GetPolicyStoreParams are the bound inputs of GetPolicyStore.
type GetPolicyStoreParams struct {
	PolicyStoreId *string
}

// GetPolicyStore returns the details of a policy store.
func (c *Client) GetPolicyStore() *binding.Operation[GetPolicyStoreParams, avp.GetPolicyStoreInput, avp.GetPolicyStoreOutput] {
	return &binding.Operation[GetPolicyStoreParams, avp.GetPolicyStoreInput, avp.GetPolicyStoreOutput]{
		Service:  ServiceLabel,
		Name:     "GetPolicyStore",
		Endpoint: c.endpoint,
		Params: []binding.Param{
			{Name: "PolicyStoreId", Type: binding.TypeString, Required: true, Usage: "ID of the policy store"},
		},
		Select:   "*",
		PassThru: "PolicyStoreId",
		Fields: binding.FieldTable[avp.GetPolicyStoreOutput]{
			"Arn":                func(o *avp.GetPolicyStoreOutput) any { return o.Arn },
			"PolicyStoreId":      func(o *avp.GetPolicyStoreOutput) any { return o.PolicyStoreId },
			"ValidationSettings": func(o *avp.GetPolicyStoreOutput) any { return o.ValidationSettings },
			"CreatedDate":        func(o *avp.GetPolicyStoreOutput) any { return o.CreatedDate },
			"LastUpdatedDate":    func(o *avp.GetPolicyStoreOutput) any { return o.LastUpdatedDate },
		},
		BindParams: func(b *binding.Binder) GetPolicyStoreParams {
			return GetPolicyStoreParams{PolicyStoreId: binding.Optional[string](b, "PolicyStoreId")}
		},
		Build: func(p GetPolicyStoreParams) *avp.GetPolicyStoreInput {
			in := &avp.GetPolicyStoreInput{}
			binding.Opt(&in.PolicyStoreId, p.PolicyStoreId)
			return in
		},
		Call: func(ctx context.Context, in *avp.GetPolicyStoreInput) (*avp.GetPolicyStoreOutput, error) {
			return c.api.GetPolicyStore(ctx, in)
		},
	}
}

// CreatePolicyStoreParams are the bound inputs of CreatePolicyStore.
type CreatePolicyStoreParams struct {
	ValidationSettings_Mode *string
	Description             *string
	ClientToken             *string
}

// CreatePolicyStore creates a policy store.
func (c *Client) CreatePolicyStore() *binding.Operation[CreatePolicyStoreParams, avp.CreatePolicyStoreInput, avp.CreatePolicyStoreOutput] {
	return &binding.Operation[CreatePolicyStoreParams, avp.CreatePolicyStoreInput, avp.CreatePolicyStoreOutput]{
		Service:  ServiceLabel,
		Name:     "CreatePolicyStore",
		Endpoint: c.endpoint,
		Params: []binding.Param{
			{Name: "ValidationSettings_Mode", Type: binding.TypeEnum, Required: true, Usage: "Schema validation mode, OFF or STRICT"},
			{Name: "Description", Type: binding.TypeString, Usage: "Description of the policy store"},
			{Name: "ClientToken", Type: binding.TypeString, Usage: "Idempotency token"},
		},
		Select: "*",
		Fields: binding.FieldTable[avp.CreatePolicyStoreOutput]{
			"Arn":           func(o *avp.CreatePolicyStoreOutput) any { return o.Arn },
			"PolicyStoreId": func(o *avp.CreatePolicyStoreOutput) any { return o.PolicyStoreId },
			"CreatedDate":   func(o *avp.CreatePolicyStoreOutput) any { return o.CreatedDate },
		},
		BindParams: func(b *binding.Binder) CreatePolicyStoreParams {
			return CreatePolicyStoreParams{
				ValidationSettings_Mode: binding.Optional[string](b, "ValidationSettings_Mode"),
				Description:             binding.Optional[string](b, "Description"),
				ClientToken:             binding.Optional[string](b, "ClientToken"),
			}
		},
		Build: func(p CreatePolicyStoreParams) *avp.CreatePolicyStoreInput {
			in := &avp.CreatePolicyStoreInput{}
			binding.Opt(&in.Description, p.Description)
			binding.Opt(&in.ClientToken, p.ClientToken)

			settings := binding.NewNested[types.ValidationSettings]()
			settings.Track(binding.Enum(&settings.Fields().Mode, p.ValidationSettings_Mode))
			in.ValidationSettings = settings.Result()
			return in
		},
		Call: func(ctx context.Context, in *avp.CreatePolicyStoreInput) (*avp.CreatePolicyStoreOutput, error) {
			return c.api.CreatePolicyStore(ctx, in)
		},
	}
}
