package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lifeparse/pkg/pipeline"
)

// formatsCommand lists the formats accepted by --format.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported pattern formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Formats"))
			for _, f := range pipeline.Formats {
				names := append([]string{f.Version}, f.Aliases...)
				value := fmt.Sprintf("Life %s (also: %s)", f.Version, strings.Join(names, ", "))
				if f.Name == c.Config.Format {
					value += StyleDim.Render(" default")
				}
				printKeyValue(f.Name, value)
			}
			return nil
		},
	}
}
