// Command bmpdraw renders drawing scenes to BMP files.
//
// A scene is either one of the built-in demo scenarios or a TOML file
// describing a sequence of clear/line/shape/fill/text operations.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/bitmap/bmp"
	"seehuhn.de/go/bitmap/testcases"
)

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

func execute() error {
	var verbose bool

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})

	root := &cobra.Command{
		Use:           "bmpdraw",
		Short:         "bmpdraw renders drawing scenes to BMP files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose logging")

	root.AddCommand(renderCommand(logger))
	root.AddCommand(demoCommand(logger))

	err := root.Execute()
	if err != nil {
		logger.Error("command failed", "err", err)
	}
	return err
}

// renderCommand renders a TOML scene description to a single BMP file.
func renderCommand(logger *charmlog.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "render a TOML scene description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := loadScene(args[0])
			if err != nil {
				return err
			}
			logger.Debug("scene loaded",
				"path", args[0], "ops", len(scene.Ops),
				"size", fmt.Sprintf("%dx%d", scene.Width, scene.Height))

			buf, err := scene.render()
			if err != nil {
				return err
			}
			if err := bmp.Save(output, buf); err != nil {
				return err
			}
			logger.Info("scene rendered", "output", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "out.bmp", "output BMP file")
	return cmd
}

// demoCommand renders every built-in test scenario into a directory.
func demoCommand(logger *charmlog.Logger) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "render the built-in demo scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
				for _, tc := range testcases.All[category] {
					buf, err := renderTestCase(tc)
					if err != nil {
						return fmt.Errorf("scenario %s_%s: %w", category, tc.Name, err)
					}
					path := filepath.Join(outDir, category+"_"+tc.Name+".bmp")
					if err := bmp.Save(path, buf); err != nil {
						return err
					}
					logger.Debug("scenario rendered", "output", path)
				}
			}
			logger.Info("demo scenarios rendered", "dir", outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "demo", "output directory")
	return cmd
}
