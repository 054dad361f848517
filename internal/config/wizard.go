package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/itinerary/internal/loader"
	"github.com/ziadkadry99/itinerary/internal/render"
)

// DefaultPath is where init writes the configuration.
const DefaultPath = ".itinerary.yml"

// markupDescriptions labels the markup policies in the wizard, in render.Policies order.
var markupDescriptions = map[render.Policy]string{
	render.PolicyRaw:      "raw      : trusted data, HTML inserted as is",
	render.PolicyEscape:   "escape   : every field shown as plain text",
	render.PolicySanitize: "sanitize : keep safe formatting, drop scripts",
	render.PolicyMarkdown: "markdown : fields written in Markdown",
}

// detectDataSource returns the data file in the current directory, if any.
func detectDataSource() string {
	if _, err := os.Stat(loader.DefaultSource); err == nil {
		return loader.DefaultSource
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to itinerary! Let's configure your trip pages.")
	fmt.Println()

	cfg := DefaultConfig()

	found := detectDataSource()
	if found != "" {
		fmt.Printf("Found itinerary data: %s\n\n", found)
	}

	// 1. Data source.
	sourcePrompt := promptui.Prompt{
		Label:   "Itinerary data (file path or http(s) URL)",
		Default: loader.DefaultSource,
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data source: %w", err)
	}
	cfg.DataSource = source

	// 2. Markup policy.
	items := make([]string, len(render.Policies))
	for i, p := range render.Policies {
		items[i] = markupDescriptions[p]
	}
	markupPrompt := promptui.Select{
		Label: "How should text fields be treated",
		Items: items,
	}
	markupIdx, _, err := markupPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("markup selection: %w", err)
	}
	cfg.Markup = render.Policies[markupIdx]

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for generated pages",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Port for itinerary serve",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 5. Hash library.
	hashPrompt := promptui.Prompt{
		Label:     "Load the SHA-1 hashing library in generated pages",
		IsConfirm: true,
		Default:   "y",
	}
	if _, err := hashPrompt.Run(); err != nil {
		if err != promptui.ErrAbort {
			return nil, fmt.Errorf("hash library: %w", err)
		}
		cfg.HashLibrary.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.DataSource == loader.DefaultSource && found == "" {
		fmt.Printf("\nNote: create %s before running itinerary build.\n", loader.DefaultSource)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
