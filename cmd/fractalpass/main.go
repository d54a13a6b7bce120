package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"

	_ "image/png"

	"github.com/spf13/cobra"

	"github.com/geri1245/fractalpass/programs"
	"github.com/geri1245/fractalpass/render"
	"github.com/geri1245/fractalpass/surface"
)

func mainCmd() *cobra.Command {
	var (
		width      int
		height     int
		iterations uint32
		mode       string
		program    string
		input      string
		output     string
		antialias  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "fractalpass",
		Short: "Render an escape-time fractal pass to a PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			if verbose {
				render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			prog, ok := programs.GetProgramByName(program)
			if !ok {
				return fmt.Errorf("unknown program %q", program)
			}

			var uniforms programs.Uniforms
			uniforms.DefaultValues()
			uniforms.Iterations = iterations
			switch mode {
			case "composite":
				uniforms.Mode = programs.WriteComposite
			case "visualize":
				uniforms.Mode = programs.WriteVisualize
			default:
				return fmt.Errorf("unknown mode %q, want composite or visualize", mode)
			}

			var in *surface.Texture
			if input != "" {
				tex, err := loadTexture(input)
				if err != nil {
					return err
				}
				in = tex
			} else if uniforms.Mode == programs.WriteComposite {
				return fmt.Errorf("composite mode needs --input")
			}

			opts := render.SaveOptions{
				Name:      output,
				Width:     width,
				Height:    height,
				Antialias: antialias,
				Uniforms:  uniforms,
			}
			return render.Save(cmd.Context(), opts, prog, in, surface.Sampler{}, nil)
		},
	}

	cmd.Flags().IntVar(&width, "width", 1200, "output width in pixels")
	cmd.Flags().IntVar(&height, "height", 800, "output height in pixels")
	cmd.Flags().Uint32Var(&iterations, "iterations", programs.DefaultIterations, "escape iteration budget")
	cmd.Flags().StringVar(&mode, "mode", "composite", "write mode: composite or visualize")
	cmd.Flags().StringVar(&program, "program", "mandelbrot", "fractal program to run")
	cmd.Flags().StringVar(&input, "input", "", "input image to composite over")
	cmd.Flags().StringVar(&output, "output", "out.png", "output file name")
	cmd.Flags().IntVar(&antialias, "antialias", 0, "supersampling factor per axis")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log render diagnostics to stderr")

	return cmd
}

func loadTexture(name string) (*surface.Texture, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %v: %w", name, err)
	}

	return surface.TextureFromImage(img), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
