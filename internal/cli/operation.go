package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nandemo-ya/awscmdlet/internal/awsclient"
	"github.com/nandemo-ya/awscmdlet/internal/binding"
	"github.com/nandemo-ya/awscmdlet/internal/config"
	"github.com/nandemo-ya/awscmdlet/internal/logging"
	"github.com/nandemo-ya/awscmdlet/internal/output"
	"github.com/nandemo-ya/awscmdlet/internal/version"
)

// maxInputLine bounds one JSON line of --input-file.
const maxInputLine = 4 << 20

type invocationFlags struct {
	selectExpr      string
	passThru        bool
	noAutoIteration bool
	inputFile       string
}

// operationCommand builds the command for one operation. method is a method
// expression on the service client, e.g. (*strategy.Client).ListServers.
func operationCommand[C, P, Req, Resp any](newClient func(aws.Config) *C, method func(*C) *binding.Operation[P, Req, Resp]) *cobra.Command {
	// descriptors only capture the client, so a zero one is enough for flags
	desc := method(new(C))
	var inv invocationFlags

	cmd := &cobra.Command{
		Use:     strcase.ToKebab(desc.Name),
		Aliases: []string{desc.Name},
		Short:   fmt.Sprintf("Call %s on %s", desc.Name, desc.Service),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithComponent(cmd.Context(), desc.Service)
			settings := config.GetConfig()
			base, err := flagInputs(cmd.Flags(), desc)
			if err != nil {
				return err
			}
			if inv.selectExpr != "" {
				base[binding.SelectParam] = inv.selectExpr
			}
			if inv.passThru {
				base[binding.PassThruParam] = true
			}
			if inv.noAutoIteration || settings.Invocation.NoAutoIteration {
				base[binding.NoAutoIterationParam] = true
			}

			clientCfg := settings.ClientConfig()
			clientCfg.AppID = version.AppID()
			awsCfg, err := awsclient.LoadAWSConfig(ctx, clientCfg)
			if err != nil {
				return err
			}
			op := method(newClient(awsCfg))

			var opts []binding.BindOption
			if settings.Invocation.Lenient {
				opts = append(opts, binding.Lenient(logging.GetGlobalLogger()))
			}

			format, err := output.ParseFormat(settings.Output.Format)
			if err != nil {
				return err
			}

			if inv.inputFile == "" {
				out := op.Execute(ctx, base, nil, opts...)
				return report(cmd.OutOrStdout(), format, out)
			}

			items, err := readInputFile(cmd.InOrStdin(), inv.inputFile, base)
			if err != nil {
				return err
			}
			failed := 0
			for i, out := range binding.RunAll(ctx, op, items, nil, opts...) {
				if err := report(cmd.OutOrStdout(), format, out); err != nil {
					failed++
					logging.Error("invocation failed", "operation", desc.Name, "item", i+1, "outcome", out.Kind.String(), "error", err)
				}
			}
			logging.Info("input file processed", "operation", desc.Name, "items", len(items), "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d %s invocations failed", failed, len(items), desc.Name)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	for _, p := range desc.Params {
		usage := p.Usage
		if p.Required {
			usage += " (required)"
		}
		addParamFlag(flags, p.Name, p.Type, usage)
	}
	for _, alias := range slices.Sorted(maps.Keys(desc.Aliases)) {
		canonical := desc.Aliases[alias]
		idx := slices.IndexFunc(desc.Params, func(p binding.Param) bool { return p.Name == canonical })
		if idx < 0 {
			continue
		}
		name := addParamFlag(flags, alias, desc.Params[idx].Type, "Alias of --"+strcase.ToKebab(canonical))
		_ = flags.MarkHidden(name)
	}

	flags.StringVar(&inv.selectExpr, "select", "", `Output selector: "*" for the whole response, a field name, or ^Param to echo a parameter`)
	if desc.PassThru != "" {
		flags.BoolVar(&inv.passThru, "pass-thru", false, "Print the "+desc.PassThru+" parameter instead of the response")
	}
	if desc.Paging != nil {
		flags.BoolVar(&inv.noAutoIteration, "no-auto-iteration", false, "Fetch a single page only")
	}
	flags.StringVar(&inv.inputFile, "input-file", "", "JSON lines file of parameter sets, one invocation per line (- for stdin)")

	return cmd
}

func addParamFlag(flags *pflag.FlagSet, param string, t binding.ParamType, usage string) string {
	name := strcase.ToKebab(param)
	switch t {
	case binding.TypeInt32:
		flags.Int32(name, 0, usage)
	case binding.TypeBool:
		flags.Bool(name, false, usage)
	case binding.TypeStrings:
		flags.StringArray(name, nil, usage)
	case binding.TypeStringMap:
		flags.StringToString(name, nil, usage)
	default:
		flags.String(name, "", usage)
	}
	return name
}

// flagInputs turns the explicitly set parameter flags into raw inputs.
// Unset flags are absent, never zero valued.
func flagInputs[P, Req, Resp any](flags *pflag.FlagSet, desc *binding.Operation[P, Req, Resp]) (binding.Inputs, error) {
	inputs := binding.Inputs{}
	add := func(param string, t binding.ParamType) error {
		name := strcase.ToKebab(param)
		if !flags.Changed(name) {
			return nil
		}
		v, err := flagValue(flags, name, t)
		if err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
		inputs[param] = v
		return nil
	}

	for _, p := range desc.Params {
		if err := add(p.Name, p.Type); err != nil {
			return nil, err
		}
	}
	for alias, canonical := range desc.Aliases {
		idx := slices.IndexFunc(desc.Params, func(p binding.Param) bool { return p.Name == canonical })
		if idx < 0 {
			continue
		}
		if err := add(alias, desc.Params[idx].Type); err != nil {
			return nil, err
		}
	}
	return inputs, nil
}

func flagValue(flags *pflag.FlagSet, name string, t binding.ParamType) (any, error) {
	switch t {
	case binding.TypeInt32:
		return flags.GetInt32(name)
	case binding.TypeBool:
		return flags.GetBool(name)
	case binding.TypeStrings:
		return flags.GetStringArray(name)
	case binding.TypeStringMap:
		return flags.GetStringToString(name)
	default:
		return flags.GetString(name)
	}
}

// readInputFile reads one parameter set per non-blank line. Values on a line
// override the ones given as flags.
func readInputFile(stdin io.Reader, path string, base binding.Inputs) ([]binding.Inputs, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var items []binding.Inputs
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputLine)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var raw map[string]any
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return nil, fmt.Errorf("input file line %d: %w", line, err)
		}
		item := base.Clone()
		maps.Copy(item, raw)
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return items, nil
}

func report[Resp any](w io.Writer, format output.Format, out *binding.Outcome[Resp]) error {
	if !out.OK() {
		return out.Err
	}
	return output.Render(w, format, out.Value)
}
