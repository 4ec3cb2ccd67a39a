package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .painpoint.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to painpoint! Let's configure the agent.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Knowledge base source.
	kbPrompt := promptui.Prompt{
		Label:   "Knowledge base file (leave blank for the built-in catalog)",
		Default: "",
	}
	kbPath, err := kbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("knowledge base path: %w", err)
	}
	cfg.KnowledgeBase = kbPath

	// 2. Default output format.
	formatPrompt := promptui.Select{
		Label: "Default report format",
		Items: []string{
			"json     — machine-readable analysis result",
			"markdown — human-readable report",
			"html     — standalone styled page",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("format selection: %w", err)
	}
	formats := []OutputFormat{FormatJSON, FormatMarkdown, FormatHTML}
	cfg.OutputFormat = formats[formatIdx]

	// 3. Solution count.
	maxPrompt := promptui.Prompt{
		Label:   "Maximum solutions per analysis",
		Default: strconv.Itoa(cfg.MaxSolutions),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return fmt.Errorf("must be a non-negative integer")
			}
			return nil
		},
	}
	maxStr, err := maxPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("max solutions: %w", err)
	}
	cfg.MaxSolutions, _ = strconv.Atoi(maxStr)

	// 4. Server address.
	addrPrompt := promptui.Prompt{
		Label:   "HTTP server address for painpoint serve",
		Default: cfg.Server.Addr,
	}
	addr, err := addrPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server address: %w", err)
	}
	cfg.Server.Addr = addr

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}
