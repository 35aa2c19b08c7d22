package permissions

import (
	"context"
	"fmt"
	"strings"

	avp "github.com/aws/aws-sdk-go-v2/service/verifiedpermissions"
	"github.com/aws/aws-sdk-go-v2/service/verifiedpermissions/types"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
)

// IsAuthorizedParams are the bound inputs of IsAuthorized.
type IsAuthorizedParams struct {
	PolicyStoreId *string
	Principal     entityParams
	Action        actionParams
	Resource      entityParams
	ContextMap    map[string]string
}

// IsAuthorized asks for an authorization decision on a single request.
func (c *Client) IsAuthorized() *binding.Operation[IsAuthorizedParams, avp.IsAuthorizedInput, avp.IsAuthorizedOutput] {
	params := []binding.Param{
		{Name: "PolicyStoreId", Type: binding.TypeString, Required: true, Usage: "ID of the policy store"},
		{Name: "Context_ContextMap", Type: binding.TypeStringMap, Usage: "String context attributes as key=value"},
	}
	params = append(params, entityParamDefs("Principal", "principal")...)
	params = append(params, actionParamDefs...)
	params = append(params, entityParamDefs("Resource", "resource")...)

	return &binding.Operation[IsAuthorizedParams, avp.IsAuthorizedInput, avp.IsAuthorizedOutput]{
		Service:  ServiceLabel,
		Name:     "IsAuthorized",
		Endpoint: c.endpoint,
		Params:   params,
		Select:   "*",
		Fields: binding.FieldTable[avp.IsAuthorizedOutput]{
			"Decision":            func(o *avp.IsAuthorizedOutput) any { return o.Decision },
			"DeterminingPolicies": func(o *avp.IsAuthorizedOutput) any { return o.DeterminingPolicies },
			"Errors":              func(o *avp.IsAuthorizedOutput) any { return o.Errors },
		},
		BindParams: func(b *binding.Binder) IsAuthorizedParams {
			return IsAuthorizedParams{
				PolicyStoreId: binding.Optional[string](b, "PolicyStoreId"),
				Principal:     bindEntity(b, "Principal"),
				Action:        bindAction(b),
				Resource:      bindEntity(b, "Resource"),
				ContextMap:    binding.Map[string](b, "Context_ContextMap"),
			}
		},
		Build: func(p IsAuthorizedParams) *avp.IsAuthorizedInput {
			in := &avp.IsAuthorizedInput{}
			binding.Opt(&in.PolicyStoreId, p.PolicyStoreId)
			in.Principal = p.Principal.build()
			in.Action = p.Action.build()
			in.Resource = p.Resource.build()
			if p.ContextMap != nil {
				in.Context = &types.ContextDefinitionMemberContextMap{Value: stringAttributes(p.ContextMap)}
			}
			return in
		},
		Call: func(ctx context.Context, in *avp.IsAuthorizedInput) (*avp.IsAuthorizedOutput, error) {
			return c.api.IsAuthorized(ctx, in)
		},
	}
}

func stringAttributes(m map[string]string) map[string]types.AttributeValue {
	attrs := make(map[string]types.AttributeValue, len(m))
	for k, v := range m {
		attrs[k] = &types.AttributeValueMemberString{Value: v}
	}
	return attrs
}

// BatchIsAuthorizedParams are the bound inputs of BatchIsAuthorized.
type BatchIsAuthorizedParams struct {
	PolicyStoreId *string
	Requests      []types.BatchIsAuthorizedInputItem
}

// BatchIsAuthorized asks for decisions on many requests in one call.
// Each request is written as Principal=Type::Id,Action=Type::Id,Resource=Type::Id.
// An ID holding a comma or "::" must be quoted, e.g. Photo::"a,b".
func (c *Client) BatchIsAuthorized() *binding.Operation[BatchIsAuthorizedParams, avp.BatchIsAuthorizedInput, avp.BatchIsAuthorizedOutput] {
	return &binding.Operation[BatchIsAuthorizedParams, avp.BatchIsAuthorizedInput, avp.BatchIsAuthorizedOutput]{
		Service:  ServiceLabel,
		Name:     "BatchIsAuthorized",
		Endpoint: c.endpoint,
		Params: []binding.Param{
			{Name: "PolicyStoreId", Type: binding.TypeString, Required: true, Usage: "ID of the policy store"},
			{Name: "Request", Type: binding.TypeStrings, Required: true, Usage: "Principal=Type::Id,Action=Type::Id,Resource=Type::Id"},
		},
		Aliases: binding.AliasTable{"Requests": "Request"},
		Select:  "Results",
		Fields: binding.FieldTable[avp.BatchIsAuthorizedOutput]{
			"Results": func(o *avp.BatchIsAuthorizedOutput) any { return o.Results },
		},
		BindParams: func(b *binding.Binder) BatchIsAuthorizedParams {
			return BatchIsAuthorizedParams{
				PolicyStoreId: binding.Optional[string](b, "PolicyStoreId"),
				Requests:      bindBatchRequests(b, "Request"),
			}
		},
		Build: func(p BatchIsAuthorizedParams) *avp.BatchIsAuthorizedInput {
			in := &avp.BatchIsAuthorizedInput{}
			binding.Opt(&in.PolicyStoreId, p.PolicyStoreId)
			binding.List(&in.Requests, p.Requests)
			return in
		},
		Call: func(ctx context.Context, in *avp.BatchIsAuthorizedInput) (*avp.BatchIsAuthorizedOutput, error) {
			return c.api.BatchIsAuthorized(ctx, in)
		},
	}
}

func bindBatchRequests(b *binding.Binder, name string) []types.BatchIsAuthorizedInputItem {
	raw := binding.Slice[string](b, name)
	if raw == nil {
		return nil
	}
	items := make([]types.BatchIsAuthorizedInputItem, 0, len(raw))
	for i, text := range raw {
		item, err := parseBatchRequest(text)
		if err != nil {
			b.Fail(&binding.InvalidParameterError{Field: fmt.Sprintf("%s[%d]", name, i), Err: err})
			return nil
		}
		items = append(items, item)
	}
	return items
}

func parseBatchRequest(text string) (types.BatchIsAuthorizedInputItem, error) {
	var item types.BatchIsAuthorizedInputItem
	for _, part := range splitUnquoted(text, ',') {
		key, ref, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return item, fmt.Errorf("expected Key=Type::Id, got %q", part)
		}
		entityType, entityID, err := parseEntity(ref)
		if err != nil {
			return item, err
		}
		switch strings.ToLower(key) {
		case "principal":
			item.Principal = &types.EntityIdentifier{EntityType: &entityType, EntityId: &entityID}
		case "action":
			item.Action = &types.ActionIdentifier{ActionType: &entityType, ActionId: &entityID}
		case "resource":
			item.Resource = &types.EntityIdentifier{EntityType: &entityType, EntityId: &entityID}
		default:
			return item, fmt.Errorf("unknown request member %q", key)
		}
	}
	return item, nil
}
