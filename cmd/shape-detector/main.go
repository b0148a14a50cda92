package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/VinithaChowdary/Shape-Detector/internal/config"
	"github.com/VinithaChowdary/Shape-Detector/internal/detect"
	"github.com/VinithaChowdary/Shape-Detector/internal/eval"
	"github.com/VinithaChowdary/Shape-Detector/internal/imaging"
	"github.com/VinithaChowdary/Shape-Detector/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("shape-detector %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol and results)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cmd := "serve"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	var err error
	switch cmd {
	case "serve":
		err = runServe(args)
	case "detect":
		err = runDetect(args)
	case "eval":
		err = runEval(args)
	case "gallery":
		err = runGallery(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

func printUsage() {
	fmt.Println("shape-detector - geometric shape detection for raster images")
	fmt.Println()
	fmt.Println("Usage: shape-detector [command] [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve      Run as an MCP server over stdin/stdout (default)")
	fmt.Println("  detect     Detect shapes in an image and print the result as JSON")
	fmt.Println("  eval       Score the detector against a YAML ground truth file")
	fmt.Println("  gallery    Write a synthetic test gallery of shape images")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  SHAPE_DETECTOR_LOG_LEVEL=debug    Enable debug logging")
}

// loadConfig reads the config file when -config is set, otherwise defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to JSON config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	if os.Getenv("SHAPE_DETECTOR_LOG_LEVEL") == "debug" {
		log.Printf("Shape Detector MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	return server.New(cfg).Run()
}

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ExitOnError)
	configPath := fs.String("config", "", "path to JSON config file")
	annotate := fs.String("annotate", "", "optional path to write an annotated PNG")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one image path, got %d", fs.NArg())
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	cache := imaging.NewImageCache()
	img, err := cache.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	result := detect.NewWithOptions(cfg.DetectorOptions()).DetectImage(img)

	if *annotate != "" {
		if err := imaging.SaveAnnotated(img, result, *annotate); err != nil {
			return err
		}
		log.Printf("Wrote annotated image to %s", *annotate)
	}

	return printJSON(result)
}

func runEval(args []string) error {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	configPath := fs.String("config", "", "path to JSON config file")
	imageDir := fs.String("images", "", "directory containing the evaluation images")
	groundTruth := fs.String("truth", "", "path to the YAML ground truth file")
	workers := fs.Int("workers", 0, "number of images to process concurrently")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *imageDir == "" {
		*imageDir = cfg.Eval.ImageDir
	}
	if *groundTruth == "" {
		*groundTruth = cfg.Eval.GroundTruth
	}
	if *workers == 0 {
		*workers = cfg.Eval.Workers
	}

	gt, err := eval.LoadGroundTruth(*groundTruth)
	if err != nil {
		return err
	}

	detector := detect.NewWithOptions(cfg.DetectorOptions())
	report, err := eval.New(detector).Run(context.Background(), *imageDir, gt, *workers)
	if err != nil {
		return err
	}

	return printJSON(report)
}

func runGallery(args []string) error {
	fs := flag.NewFlagSet("gallery", flag.ExitOnError)
	dir := fs.String("dir", "testdata", "directory to write the gallery images into")
	size := fs.Int("size", 120, "width and height of each generated image in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files, err := imaging.WriteGallery(*dir, *size)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
