package painpoint

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// knownAreas are the affected areas suggested during interactive intake.
// Free-form entries are also accepted.
var knownAreas = []string{"customer_service", "marketing", "sales", "operations"}

// CollectInteractive prompts the user for a pain point on the terminal and
// returns the assembled Input. The result is validated before being returned.
func CollectInteractive() (*Input, error) {
	fmt.Println("Describe your pain point. Press Enter to accept defaults.")
	fmt.Println()

	descPrompt := promptui.Prompt{
		Label: "Pain point description",
		Validate: func(s string) error {
			if len([]rune(strings.TrimSpace(s))) < MinDescriptionLength {
				return fmt.Errorf("description must be at least %d characters", MinDescriptionLength)
			}
			return nil
		},
	}
	description, err := descPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("description prompt: %w", err)
	}

	industryPrompt := promptui.Prompt{
		Label:   "Industry (optional)",
		Default: "",
	}
	industry, err := industryPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("industry prompt: %w", err)
	}

	sizePrompt := promptui.Select{
		Label: "Company size",
		Items: []string{"startup", "small", "medium", "large", "enterprise"},
	}
	_, sizeStr, err := sizePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("company size selection: %w", err)
	}

	urgencyPrompt := promptui.Select{
		Label: "Urgency level",
		Items: []string{"low", "medium", "high"},
	}
	_, urgencyStr, err := urgencyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("urgency selection: %w", err)
	}

	areasPrompt := promptui.Prompt{
		Label:   fmt.Sprintf("Affected areas, comma separated (known: %s)", strings.Join(knownAreas, ", ")),
		Default: "customer_service",
	}
	areasStr, err := areasPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("affected areas prompt: %w", err)
	}

	var areas []string
	for _, a := range strings.Split(areasStr, ",") {
		if a = strings.TrimSpace(a); a != "" {
			areas = append(areas, a)
		}
	}

	in := &Input{
		PainPoint: PainPoint{
			Description: description,
			Context: &Context{
				Industry:    strings.TrimSpace(industry),
				CompanySize: CompanySize(sizeStr),
				Urgency:     Urgency(urgencyStr),
			},
			AffectedAreas: areas,
		},
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}
