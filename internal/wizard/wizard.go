package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/he2plus/he2plus-lib-sub001/internal/config"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

// ProfileOptions builds the selectable profiles, recommended ones first
// and preselected.
func ProfileOptions(profiles []*model.Profile, recommended []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(profiles))
	for _, id := range recommended {
		for _, p := range profiles {
			if p.ID == id {
				options = append(options, huh.NewOption(optionLabel(p, true), p.ID).Selected(true))
			}
		}
	}
	for _, p := range profiles {
		if !contains(recommended, p.ID) {
			options = append(options, huh.NewOption(optionLabel(p, false), p.ID))
		}
	}
	return options
}

func optionLabel(p *model.Profile, recommended bool) string {
	label := fmt.Sprintf("%s (%s, %.0f GB RAM)", p.Name, p.Category, p.Requirements.RAMGB)
	if recommended {
		label += " *"
	}
	return label
}

func summary(detection DetectionResult) string {
	c := detection.Capacity
	lines := []string{
		fmt.Sprintf("Detected %.1f GB RAM, %.1f GB free disk, %d CPU cores.", c.RAMTotalGB, c.DiskFreeGB, c.CPUCores),
	}
	if detection.ProbeErr != nil {
		lines = append(lines, "Some values could not be measured: "+detection.ProbeErr.Error())
	}
	if len(detection.Recommended) > 0 {
		lines = append(lines, "Profiles marked * fit this machine.")
	}
	if len(detection.ProfileDirs) > 0 {
		lines = append(lines, "Custom profiles from: "+strings.Join(detection.ProfileDirs, ", "))
	}
	return strings.Join(lines, "\n")
}

// Run executes the interactive wizard and returns the user's answers.
func Run(detection DetectionResult, profiles []*model.Profile) (*WizardAnswers, error) {
	answers := &WizardAnswers{
		Output:      config.OutputText,
		ProfileDirs: detection.ProfileDirs,
		Capacity: config.Capacity{
			RAMTotalGB: detection.Capacity.RAMTotalGB,
			DiskFreeGB: detection.Capacity.DiskFreeGB,
			CPUCores:   detection.Capacity.CPUCores,
		},
	}

	if detection.ExistingConfig != "" {
		overwrite := false
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Overwrite it?", detection.ExistingConfig)).
				Value(&overwrite),
		))
		if err := confirm.Run(); err != nil {
			return nil, err
		}
		if !overwrite {
			return nil, huh.ErrUserAborted
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which profiles do you want to install?").
				Description(summary(detection)).
				Options(ProfileOptions(profiles, detection.Recommended)...).
				Value(&answers.Profiles),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default plan output").
				Options(
					huh.NewOption("Text - readable summary", config.OutputText),
					huh.NewOption("YAML - installer hand-off", config.OutputYAML),
					huh.NewOption("JSON - installer hand-off", config.OutputJSON),
				).
				Value(&answers.Output),
			huh.NewConfirm().
				Title("Save the detected capacity?").
				Description("Later runs use the saved values instead of probing.").
				Value(&answers.PinCapacity),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return answers, nil
}

func contains(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
