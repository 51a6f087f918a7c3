package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/aq-tools/air-atlas/pkg/services/registry"
	"github.com/spf13/cobra"
)

type SensorsCmd struct {
	profilePath string
	output      io.Writer
}

func NewSensorsCmd(output io.Writer) *cobra.Command {
	sc := &SensorsCmd{output: output}
	cmd := &cobra.Command{
		Use:   "sensors",
		Short: "List configured sensor profiles",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.profilePath, "profile", "", "Path to the sensor profiles file")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (sc *SensorsCmd) run(cmd *cobra.Command, args []string) error {
	reg, err := registry.NewRegistry(sc.profilePath)
	if err != nil {
		return err
	}

	profiles, err := reg.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	for _, p := range profiles {
		metrics := p.Metrics()
		sort.Strings(metrics)
		fmt.Fprintf(sc.output, "%s\t%s\t%v\n", p.Name, p.DisplayName, metrics)
	}
	return nil
}
