package permissions

import (
	"context"
	"slices"

	avp "github.com/aws/aws-sdk-go-v2/service/verifiedpermissions"
	"github.com/aws/aws-sdk-go-v2/service/verifiedpermissions/types"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
)

// ListPoliciesParams are the bound inputs of ListPolicies.
type ListPoliciesParams struct {
	PolicyStoreId           *string
	Filter_PolicyType       *string
	Filter_PolicyTemplateId *string
	Filter_Principal        entityReference
	Filter_Resource         entityReference
	MaxResult               *int32
	NextToken               *string
}

// ListPolicies lists the policies in a policy store.
func (c *Client) ListPolicies() *binding.Operation[ListPoliciesParams, avp.ListPoliciesInput, avp.ListPoliciesOutput] {
	params := []binding.Param{
		{Name: "PolicyStoreId", Type: binding.TypeString, Required: true, Usage: "ID of the policy store"},
		{Name: "Filter_PolicyType", Type: binding.TypeEnum, Usage: "STATIC or TEMPLATE_LINKED"},
		{Name: "Filter_PolicyTemplateId", Type: binding.TypeString, Usage: "Only policies linked to this template"},
	}
	params = append(params, entityReferenceParamDefs("Filter_Principal", "principal")...)
	params = append(params, entityReferenceParamDefs("Filter_Resource", "resource")...)
	params = append(params,
		binding.Param{Name: "MaxResult", Type: binding.TypeInt32, Usage: "Maximum number of items per page"},
		binding.Param{Name: "NextToken", Type: binding.TypeString, Usage: "Token of the page to fetch"},
	)

	return &binding.Operation[ListPoliciesParams, avp.ListPoliciesInput, avp.ListPoliciesOutput]{
		Service:  ServiceLabel,
		Name:     "ListPolicies",
		Endpoint: c.endpoint,
		Params:   params,
		Aliases:  binding.AliasTable{"MaxItems": "MaxResult"},
		Select:   "Policies",
		Fields: binding.FieldTable[avp.ListPoliciesOutput]{
			"Policies":  func(o *avp.ListPoliciesOutput) any { return o.Policies },
			"NextToken": func(o *avp.ListPoliciesOutput) any { return o.NextToken },
		},
		Paging: &binding.Paging[avp.ListPoliciesInput, avp.ListPoliciesOutput]{
			InputToken:  func(in *avp.ListPoliciesInput) *string { return in.NextToken },
			SetToken:    func(in *avp.ListPoliciesInput, token *string) { in.NextToken = token },
			OutputToken: func(out *avp.ListPoliciesOutput) *string { return out.NextToken },
			Merge: func(acc, page *avp.ListPoliciesOutput) *avp.ListPoliciesOutput {
				return &avp.ListPoliciesOutput{
					Policies:  append(slices.Clip(acc.Policies), page.Policies...),
					NextToken: page.NextToken,
				}
			},
		},
		BindParams: func(b *binding.Binder) ListPoliciesParams {
			return ListPoliciesParams{
				PolicyStoreId:           binding.Optional[string](b, "PolicyStoreId"),
				Filter_PolicyType:       binding.Optional[string](b, "Filter_PolicyType"),
				Filter_PolicyTemplateId: binding.Optional[string](b, "Filter_PolicyTemplateId"),
				Filter_Principal:        bindEntityReference(b, "Filter_Principal"),
				Filter_Resource:         bindEntityReference(b, "Filter_Resource"),
				MaxResult:               binding.Optional[int32](b, "MaxResult"),
				NextToken:               binding.Optional[string](b, "NextToken"),
			}
		},
		Build: func(p ListPoliciesParams) *avp.ListPoliciesInput {
			in := &avp.ListPoliciesInput{}
			binding.Opt(&in.PolicyStoreId, p.PolicyStoreId)
			binding.Opt(&in.MaxResults, p.MaxResult)
			binding.Opt(&in.NextToken, p.NextToken)

			filter := binding.NewNested[types.PolicyFilter]()
			f := filter.Fields()
			filter.Track(binding.Enum(&f.PolicyType, p.Filter_PolicyType))
			filter.Track(binding.Opt(&f.PolicyTemplateId, p.Filter_PolicyTemplateId))
			if ref := p.Filter_Principal.build(); ref != nil {
				f.Principal = ref
				filter.Track(true)
			}
			if ref := p.Filter_Resource.build(); ref != nil {
				f.Resource = ref
				filter.Track(true)
			}
			in.Filter = filter.Result()
			return in
		},
		Call: func(ctx context.Context, in *avp.ListPoliciesInput) (*avp.ListPoliciesOutput, error) {
			return c.api.ListPolicies(ctx, in)
		},
	}
}

// PolicyParams identify one policy.
type PolicyParams struct {
	PolicyStoreId *string
	PolicyId      *string
}

var policyParamDefs = []binding.Param{
	{Name: "PolicyStoreId", Type: binding.TypeString, Required: true, Usage: "ID of the policy store"},
	{Name: "PolicyId", Type: binding.TypeString, Required: true, Usage: "ID of the policy"},
}

func bindPolicy(b *binding.Binder) PolicyParams {
	return PolicyParams{
		PolicyStoreId: binding.Optional[string](b, "PolicyStoreId"),
		PolicyId:      binding.Optional[string](b, "PolicyId"),
	}
}

// GetPolicy returns a policy and its definition.
func (c *Client) GetPolicy() *binding.Operation[PolicyParams, avp.GetPolicyInput, avp.GetPolicyOutput] {
	return &binding.Operation[PolicyParams, avp.GetPolicyInput, avp.GetPolicyOutput]{
		Service:  ServiceLabel,
		Name:     "GetPolicy",
		Endpoint: c.endpoint,
		Params:   slices.Clone(policyParamDefs),
		Select:   "*",
		PassThru: "PolicyId",
		Fields: binding.FieldTable[avp.GetPolicyOutput]{
			"PolicyId":      func(o *avp.GetPolicyOutput) any { return o.PolicyId },
			"PolicyStoreId": func(o *avp.GetPolicyOutput) any { return o.PolicyStoreId },
			"PolicyType":    func(o *avp.GetPolicyOutput) any { return o.PolicyType },
			"Definition":    func(o *avp.GetPolicyOutput) any { return o.Definition },
		},
		BindParams: bindPolicy,
		Build: func(p PolicyParams) *avp.GetPolicyInput {
			in := &avp.GetPolicyInput{}
			binding.Opt(&in.PolicyStoreId, p.PolicyStoreId)
			binding.Opt(&in.PolicyId, p.PolicyId)
			return in
		},
		Call: func(ctx context.Context, in *avp.GetPolicyInput) (*avp.GetPolicyOutput, error) {
			return c.api.GetPolicy(ctx, in)
		},
	}
}

// DeletePolicy deletes a policy.
func (c *Client) DeletePolicy() *binding.Operation[PolicyParams, avp.DeletePolicyInput, avp.DeletePolicyOutput] {
	return &binding.Operation[PolicyParams, avp.DeletePolicyInput, avp.DeletePolicyOutput]{
		Service:    ServiceLabel,
		Name:       "DeletePolicy",
		Endpoint:   c.endpoint,
		Params:     slices.Clone(policyParamDefs),
		Select:     "*",
		PassThru:   "PolicyId",
		Fields:     binding.FieldTable[avp.DeletePolicyOutput]{},
		BindParams: bindPolicy,
		Build: func(p PolicyParams) *avp.DeletePolicyInput {
			in := &avp.DeletePolicyInput{}
			binding.Opt(&in.PolicyStoreId, p.PolicyStoreId)
			binding.Opt(&in.PolicyId, p.PolicyId)
			return in
		},
		Call: func(ctx context.Context, in *avp.DeletePolicyInput) (*avp.DeletePolicyOutput, error) {
			return c.api.DeletePolicy(ctx, in)
		},
	}
}

// CreatePolicyParams are the bound inputs of CreatePolicy.
type CreatePolicyParams struct {
	PolicyStoreId  *string
	ClientToken    *string
	Static         staticDefinition
	TemplateLinked templateLinkedDefinition
}

type staticDefinition struct {
	Statement   *string
	Description *string
}

type templateLinkedDefinition struct {
	PolicyTemplateId *string
	Principal        entityParams
	Resource         entityParams
}

func (d staticDefinition) present() bool {
	return d.Statement != nil || d.Description != nil
}

func (d templateLinkedDefinition) present() bool {
	return d.PolicyTemplateId != nil || d.Principal.present() || d.Resource.present()
}

// CreatePolicy creates a static or template-linked policy.
func (c *Client) CreatePolicy() *binding.Operation[CreatePolicyParams, avp.CreatePolicyInput, avp.CreatePolicyOutput] {
	params := []binding.Param{
		{Name: "PolicyStoreId", Type: binding.TypeString, Required: true, Usage: "ID of the policy store"},
		{Name: "Definition_Static_Statement", Type: binding.TypeString, Usage: "Cedar policy statement"},
		{Name: "Definition_Static_Description", Type: binding.TypeString, Usage: "Description of the static policy"},
		{Name: "Definition_TemplateLinked_PolicyTemplateId", Type: binding.TypeString, Usage: "Template to link the policy to"},
		{Name: "ClientToken", Type: binding.TypeString, Usage: "Idempotency token"},
	}
	params = append(params, entityParamDefs("Definition_TemplateLinked_Principal", "principal")...)
	params = append(params, entityParamDefs("Definition_TemplateLinked_Resource", "resource")...)

	return &binding.Operation[CreatePolicyParams, avp.CreatePolicyInput, avp.CreatePolicyOutput]{
		Service:  ServiceLabel,
		Name:     "CreatePolicy",
		Endpoint: c.endpoint,
		Params:   params,
		Aliases:  binding.AliasTable{"Statement": "Definition_Static_Statement"},
		Select:   "*",
		Fields: binding.FieldTable[avp.CreatePolicyOutput]{
			"PolicyId":      func(o *avp.CreatePolicyOutput) any { return o.PolicyId },
			"PolicyStoreId": func(o *avp.CreatePolicyOutput) any { return o.PolicyStoreId },
			"PolicyType":    func(o *avp.CreatePolicyOutput) any { return o.PolicyType },
			"CreatedDate":   func(o *avp.CreatePolicyOutput) any { return o.CreatedDate },
		},
		BindParams: func(b *binding.Binder) CreatePolicyParams {
			p := CreatePolicyParams{
				PolicyStoreId: binding.Optional[string](b, "PolicyStoreId"),
				ClientToken:   binding.Optional[string](b, "ClientToken"),
				Static: staticDefinition{
					Statement:   binding.Optional[string](b, "Definition_Static_Statement"),
					Description: binding.Optional[string](b, "Definition_Static_Description"),
				},
				TemplateLinked: templateLinkedDefinition{
					PolicyTemplateId: binding.Optional[string](b, "Definition_TemplateLinked_PolicyTemplateId"),
					Principal:        bindEntity(b, "Definition_TemplateLinked_Principal"),
					Resource:         bindEntity(b, "Definition_TemplateLinked_Resource"),
				},
			}
			if p.Static.present() && p.TemplateLinked.present() {
				b.Fail(&binding.ConfigurationError{Reason: "a policy definition is either static or template-linked, not both"})
			}
			return p
		},
		Build: func(p CreatePolicyParams) *avp.CreatePolicyInput {
			in := &avp.CreatePolicyInput{}
			binding.Opt(&in.PolicyStoreId, p.PolicyStoreId)
			binding.Opt(&in.ClientToken, p.ClientToken)
			in.Definition = p.definition()
			return in
		},
		Call: func(ctx context.Context, in *avp.CreatePolicyInput) (*avp.CreatePolicyOutput, error) {
			return c.api.CreatePolicy(ctx, in)
		},
	}
}

func (p CreatePolicyParams) definition() types.PolicyDefinition {
	static := binding.NewNested[types.StaticPolicyDefinition]()
	static.Track(binding.Opt(&static.Fields().Statement, p.Static.Statement))
	static.Track(binding.Opt(&static.Fields().Description, p.Static.Description))
	if def := static.Result(); def != nil {
		return &types.PolicyDefinitionMemberStatic{Value: *def}
	}

	linked := binding.NewNested[types.TemplateLinkedPolicyDefinition]()
	f := linked.Fields()
	linked.Track(binding.Opt(&f.PolicyTemplateId, p.TemplateLinked.PolicyTemplateId))
	linked.Track(binding.Child(&f.Principal, p.TemplateLinked.Principal.build()))
	linked.Track(binding.Child(&f.Resource, p.TemplateLinked.Resource.build()))
	if def := linked.Result(); def != nil {
		return &types.PolicyDefinitionMemberTemplateLinked{Value: *def}
	}
	return nil
}
