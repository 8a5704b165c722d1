package cli

import (
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cronut/pkg/pipeline"
	"github.com/matzehuels/cronut/pkg/render"
)

// completionCommand prints shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cronut.

  $ source <(cronut completion bash)
  $ cronut completion zsh > "${fpath[1]}/_cronut"
  $ cronut completion fish | source
  PS> cronut completion powershell | Out-String | Invoke-Expression

Completions cover subcommands, request files (.toml, .json) and the values
of --format, --kind and --ease.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
		},
	}
}

// registerRenderCompletions wires value completion into the render flags.
func registerRenderCompletions(cmd *cobra.Command) {
	cmd.ValidArgsFunction = func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return []string{"toml", "json"}, cobra.ShellCompDirectiveFilterFileExt
	}
	cmd.RegisterFlagCompletionFunc("format", listCompletion(sortedKeys(pipeline.ValidFormats)))
	cmd.RegisterFlagCompletionFunc("kind", fixedCompletion(sortedKeys(pipeline.ValidKinds)))
	cmd.RegisterFlagCompletionFunc("ease", fixedCompletion(sortedKeys(render.Eases)))
	cmd.MarkFlagFilename("save-request", "toml", "json")
}

type completionFunc = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

func fixedCompletion(values []string) completionFunc {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// listCompletion completes the last element of a comma-separated list,
// skipping values already given.
func listCompletion(values []string) completionFunc {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		done := parseList(toComplete)
		prefix := ""
		if i := strings.LastIndex(toComplete, ","); i >= 0 {
			prefix = toComplete[:i+1]
			done = parseList(toComplete[:i])
		}
		var out []string
		for _, v := range values {
			if !slices.Contains(done, v) {
				out = append(out, prefix+v)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
