// internal/generator/garlic.go
package generator

const SectionStandbyMode = "standby_mode"

// garlicSections are specific to the Garlic player; they run after the
// IAdea family sections.
var garlicSections = []OptionalSection{
	{
		Section: SectionStandbyMode,
		Keys:    []string{"standby_mode"},
		Build:   scalar("standby_mode", "STANDBY_MODE"),
	},
}

var garlicStage = optionalStage("garlic", garlicSections)
