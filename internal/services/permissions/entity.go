package permissions

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/service/verifiedpermissions/types"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
)

// entityParams are the flattened <Prefix>_EntityType and <Prefix>_EntityId parameters.
type entityParams struct {
	EntityType *string
	EntityId   *string
}

func entityParamDefs(prefix, what string) []binding.Param {
	return []binding.Param{
		{Name: prefix + "_EntityType", Type: binding.TypeString, Usage: "Entity type of the " + what},
		{Name: prefix + "_EntityId", Type: binding.TypeString, Usage: "Entity ID of the " + what},
	}
}

func bindEntity(b *binding.Binder, prefix string) entityParams {
	return entityParams{
		EntityType: binding.Optional[string](b, prefix+"_EntityType"),
		EntityId:   binding.Optional[string](b, prefix+"_EntityId"),
	}
}

func (e entityParams) present() bool {
	return e.EntityType != nil || e.EntityId != nil
}

// build returns nil when neither part of the entity was supplied.
func (e entityParams) build() *types.EntityIdentifier {
	n := binding.NewNested[types.EntityIdentifier]()
	f := n.Fields()
	n.Track(binding.Opt(&f.EntityType, e.EntityType))
	n.Track(binding.Opt(&f.EntityId, e.EntityId))
	return n.Result()
}

// actionParams are the flattened Action_ActionType and Action_ActionId parameters.
type actionParams struct {
	ActionType *string
	ActionId   *string
}

var actionParamDefs = []binding.Param{
	{Name: "Action_ActionType", Type: binding.TypeString, Usage: "Action type, e.g. PhotoFlash::Action"},
	{Name: "Action_ActionId", Type: binding.TypeString, Usage: "Action ID, e.g. view"},
}

func bindAction(b *binding.Binder) actionParams {
	return actionParams{
		ActionType: binding.Optional[string](b, "Action_ActionType"),
		ActionId:   binding.Optional[string](b, "Action_ActionId"),
	}
}

func (a actionParams) build() *types.ActionIdentifier {
	n := binding.NewNested[types.ActionIdentifier]()
	f := n.Fields()
	n.Track(binding.Opt(&f.ActionType, a.ActionType))
	n.Track(binding.Opt(&f.ActionId, a.ActionId))
	return n.Result()
}

// entityReference is the union of an identified entity and "unspecified".
type entityReference struct {
	Identifier  entityParams
	Unspecified *bool
}

func bindEntityReference(b *binding.Binder, prefix string) entityReference {
	ref := entityReference{
		Identifier:  bindEntity(b, prefix+"_Identifier"),
		Unspecified: binding.Optional[bool](b, prefix+"_Unspecified"),
	}
	if ref.Identifier.present() && ref.Unspecified != nil {
		b.Fail(&binding.ConfigurationError{
			Reason: fmt.Sprintf("%s_Identifier and %s_Unspecified are mutually exclusive", prefix, prefix),
		})
	}
	return ref
}

func entityReferenceParamDefs(prefix, what string) []binding.Param {
	return append(entityParamDefs(prefix+"_Identifier", what), binding.Param{
		Name: prefix + "_Unspecified", Type: binding.TypeBool, Usage: "Match policies with an unspecified " + what,
	})
}

// build returns nil when no member of the union was supplied.
func (r entityReference) build() types.EntityReference {
	if id := r.Identifier.build(); id != nil {
		return &types.EntityReferenceMemberIdentifier{Value: *id}
	}
	if r.Unspecified != nil {
		return &types.EntityReferenceMemberUnspecified{Value: *r.Unspecified}
	}
	return nil
}

// parseEntity splits a Cedar style reference such as PhotoFlash::User::"alice"
// into entity type and ID. A quoted ID may contain "::" and commas; an
// unquoted one ends the reference after the last "::".
func parseEntity(ref string) (entityType, entityID string, err error) {
	if i := strings.Index(ref, `::"`); i >= 0 {
		if i == 0 {
			return "", "", fmt.Errorf("expected Type::Id, got %q", ref)
		}
		id, err := strconv.Unquote(ref[i+2:])
		if err != nil {
			return "", "", fmt.Errorf("malformed quoted ID in %q", ref)
		}
		if id == "" {
			return "", "", fmt.Errorf("empty entity ID in %q", ref)
		}
		return ref[:i], id, nil
	}

	i := strings.LastIndex(ref, "::")
	if i <= 0 || i+2 >= len(ref) {
		return "", "", fmt.Errorf("expected Type::Id, got %q", ref)
	}
	return ref[:i], ref[i+2:], nil
}

// splitUnquoted splits s at every sep that is not inside a double quoted string.
func splitUnquoted(s string, sep rune) []string {
	var (
		parts   []string
		start   int
		quoted  bool
		escaped bool
	)
	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case quoted && r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case !quoted && r == sep:
			parts = append(parts, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(parts, s[start:])
}
