package strategy

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/migrationhubstrategy/types"

	"github.com/nandemo-ya/awscmdlet/internal/binding"
)

// bindGroups reads a group filter given as Name=Value pairs, e.g. ExternalId=abc.
func bindGroups(b *binding.Binder, name string) []types.Group {
	pairs := binding.Slice[string](b, name)
	if pairs == nil {
		return nil
	}
	groups := make([]types.Group, 0, len(pairs))
	for i, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			b.Fail(&binding.InvalidParameterError{
				Field: fmt.Sprintf("%s[%d]", name, i),
				Err:   fmt.Errorf("expected Name=Value, got %q", pair),
			})
			return nil
		}
		groups = append(groups, types.Group{
			Name:  types.GroupName(key),
			Value: &value,
		})
	}
	return groups
}

// strategyOption holds the flattened StrategyOption_* parameters shared by the update operations.
type strategyOption struct {
	Strategy          *string
	TargetDestination *string
	ToolName          *string
	IsPreferred       *bool
}

var strategyOptionParams = []binding.Param{
	{Name: "StrategyOption_Strategy", Type: binding.TypeEnum, Usage: "Recommended migration strategy, e.g. Rehost"},
	{Name: "StrategyOption_TargetDestination", Type: binding.TypeEnum, Usage: "Destination environment"},
	{Name: "StrategyOption_ToolName", Type: binding.TypeEnum, Usage: "Transformation tool"},
	{Name: "StrategyOption_IsPreferred", Type: binding.TypeBool, Usage: "Mark the strategy as preferred"},
}

func bindStrategyOption(b *binding.Binder) strategyOption {
	return strategyOption{
		Strategy:          binding.Optional[string](b, "StrategyOption_Strategy"),
		TargetDestination: binding.Optional[string](b, "StrategyOption_TargetDestination"),
		ToolName:          binding.Optional[string](b, "StrategyOption_ToolName"),
		IsPreferred:       binding.Optional[bool](b, "StrategyOption_IsPreferred"),
	}
}

// build returns nil when no StrategyOption_* parameter was supplied.
func (o strategyOption) build() *types.StrategyOption {
	n := binding.NewNested[types.StrategyOption]()
	f := n.Fields()
	n.Track(binding.Enum(&f.Strategy, o.Strategy))
	n.Track(binding.Enum(&f.TargetDestination, o.TargetDestination))
	n.Track(binding.Enum(&f.ToolName, o.ToolName))
	n.Track(binding.Opt(&f.IsPreferred, o.IsPreferred))
	return n.Result()
}
