package wiki

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Overrides holds the hand-maintained tables the wiki output depends on.
type Overrides struct {
	// IgnoredItems lists row names or wiki names left out of every export.
	IgnoredItems []string `yaml:"ignoredItems"`
	// NameOverrides maps row names to the wiki name used instead of the game name.
	NameOverrides map[string]string `yaml:"nameOverrides"`
	// AllowedLiquids lists the liquids the wiki documents.
	AllowedLiquids []string `yaml:"allowedLiquids"`
	// GearSlots maps equipment slots to wiki slot names.
	GearSlots map[string]string `yaml:"gearSlots"`
	// Statuses maps buff and debuff IDs to wiki status names.
	Statuses map[string]string `yaml:"statuses"`
	// Categories maps recipe categories to wiki item categories.
	Categories map[string]string `yaml:"categories"`
}

// DefaultOverrides returns the built-in override tables.
func DefaultOverrides() Overrides {
	return Overrides{
		IgnoredItems: []string{
			// duplicates of other items
			"tutorialheater",
			"money_stack",
			"Deployable_Glowstick",
			"food_roastpecc_burnt",
			// items with unique variants, documented by hand
			"Abstract Square Painting (Regular)",
			"Abstract Square Painting (Large)",
			"Abstract Square Painting (Fancy)",
			"Abstract Square Painting  (Large Fancy)",
			"Colorful Abstract Painting (Regular)",
			"Colorful Abstract Painting (Fancy)",
			"Painting of a Man (Regular)",
			"Painting of a Man (Fancy)",
			"Arcade Machine",
			"Poster",
			// developer or unused items
			"UNKNOWN (Plant Antelight)",
			"UNKNOWN (Plant VelcroPlant)",
			"UNKNOWN (Plant SpaceLettuce)",
			"UNKNOWN (Plant Egg)",
			"UNKNOWN (Plant RopePlant)",
			"UNKNOWN (Plant Super Tomato)",
			"UNKNOWN (Plant Greyeb)",
			"UNKNOWN (Plant Wheat)",
			"UNKNOWN (Plant Tomato)",
			"UNKNOWN (Plant Corn)",
			"ITEM MISSING",
			"Chemistry Bench",
			"Hard Drive",
			"40mm High Explosive",
		},
		NameOverrides: map[string]string{
			"Deployable_PottedPlant_01":         "Potted Plant 1",
			"Deployable_PottedPlant_02":         "Potted Plant 2",
			"Deployable_PottedPlant_03":         "Potted Plant 3",
			"Deployable_PottedPlant_04":         "Potted Plant 4",
			"Deployable_PottedPlant_05":         "Potted Plant 5",
			"Deployable_PottedPlant_06":         "Potted Plant 6",
			"Deployable_DiningTable_Vintage_01": "Vintage Dining Table 1",
			"Deployable_DiningTable_Vintage_02": "Vintage Dining Table 2",
			"Painting_Landscape":                "Abstract Square Painting (Regular)",
			"Painting_Landscape_Large":          "Abstract Square Painting (Large)",
			"Painting_Landscape_Fancy":          "Abstract Square Painting (Fancy)",
			"Painting_Landscape_Large_Fancy":    "Abstract Square Painting  (Large Fancy)",
			"Painting_Square":                   "Colorful Abstract Painting (Regular)",
			"Painting_Square_Fancy":             "Colorful Abstract Painting (Fancy)",
			"Painting_Vertical":                 "Painting of a Man (Regular)",
			"Painting_Vertical_Fancy":           "Painting of a Man (Fancy)",
			"soup_solder":                       "Solder (Soup)",
			"solder":                            "Solder (Material)",
			"trinket_petrock":                   "Pet Rock (Trinket)",
			"petrock":                           "Pet Rock (Pickup)",
		},
		AllowedLiquids: []string{"Soup", "TaintedWater", "Water", "Antejuice"},
		GearSlots: map[string]string{
			"EquipmentSlot_Wristwatch": "Wristwatch",
			"EquipmentSlot_Hacker":     "Hacking Device",
			"EquipmentSlot_Headlamp":   "Headlamp",
			"EquipmentSlot_Head":       "Head Armor",
			"EquipmentSlot_Trinket":    "Trinket",
			"EquipmentSlot_Arms":       "Arm Armor",
			"EquipmentSlot_Shield":     "Off-hand Shield",
			"EquipmentSlot_Torso":      "Chest Armor",
			"EquipmentSlot_Legs":       "Leg Armor",
			"EquipmentSlot_Suit":       "Full Body Suit",
			"EquipmentSlot_Backpack":   "Backpack",
		},
		Statuses: map[string]string{
			"Buff_AirtightSeal":      "Airtight Seal",
			"Buff_Caffeinated":       "Caffeinated",
			"Buff_CarbuncleCrown":    "King of Carbuncles",
			"Buff_Devoted":           "Devoted",
			"Buff_FireProximitySuit": "Fire Proximity Suit",
			"Buff_GravityCube":       "Gravity Cube",
			"Buff_HardHat":           "Hard Hat",
			"Buff_HazmatSuit":        "Hazmat Suit",
			"Buff_LeadVest":          "Lead Vest",
			"Buff_MedicHelmet":       "Medic",
			"Buff_RadioPack":         "Radio Pack",
			"Buff_Radpills":          "Rad Resistant",
			"Buff_SplatterReduction": "Splatter Guard",
			"Buff_SplintedLeg":       "Splinted Limb",
			"Buff_SyringeHeal":       "Health Syringe",
			"Debuff_Frost":           "Chilly",
			"Debuff_Poisoned":        "Poisoned",
			"Debuff_Sick":            "Sick",
			"Debuff_Spores":          "Lung Infection",
			"Debuff_Stinky":          "Stinky",
			"Debuff_StuffySuit":      "Stuffy Suit",
		},
		Categories: map[string]string{
			"Resource":     "Resources and Sub-components",
			"Construction": "Furniture and Benches",
			"Tools":        "Tools",
			"Electricity":  "Light and Power",
			"Defense":      "Base defense",
			"Weapon":       "Weapons and Ammo",
			"Gear":         "Armor and Gear",
			"Health":       "Health and Medical",
			"Food":         "Food and Cooking",
			"Farming":      "Farming",
			"Travel":       "Travel and Vehicles",
		},
	}
}

// LoadOverrides returns the built-in tables with every section present in the YAML
// file at path replacing its default. An empty path returns the defaults.
func LoadOverrides(fs afero.Fs, path string) (Overrides, error) {
	defaults := DefaultOverrides()
	if path == "" {
		return defaults, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Overrides{}, fmt.Errorf("failed to read overrides %s: %w", path, err)
	}

	var file Overrides
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Overrides{}, fmt.Errorf("failed to decode overrides %s: %w", path, err)
	}

	if file.IgnoredItems != nil {
		defaults.IgnoredItems = file.IgnoredItems
	}
	if file.NameOverrides != nil {
		defaults.NameOverrides = file.NameOverrides
	}
	if file.AllowedLiquids != nil {
		defaults.AllowedLiquids = file.AllowedLiquids
	}
	if file.GearSlots != nil {
		defaults.GearSlots = file.GearSlots
	}
	if file.Statuses != nil {
		defaults.Statuses = file.Statuses
	}
	if file.Categories != nil {
		defaults.Categories = file.Categories
	}
	return defaults, nil
}

// WikiName returns the name an item is documented under. Quotes and ampersands are
// not allowed in wiki page titles.
func (o Overrides) WikiName(rowName, name string) string {
	name = strings.ReplaceAll(o.RawName(rowName, name), " & ", " and ")
	return strings.ReplaceAll(name, "&", "")
}

// RawName returns the overridden name of an item with quotes removed, keeping any
// ampersand.
func (o Overrides) RawName(rowName, name string) string {
	if override, ok := o.NameOverrides[rowName]; ok {
		name = override
	}
	return strings.ReplaceAll(name, `"`, "")
}

// IsIgnored reports whether an item is left out of the wiki, matching either its row
// name or its wiki name.
func (o Overrides) IsIgnored(rowName, wikiName string) bool {
	return slices.Contains(o.IgnoredItems, rowName) || slices.Contains(o.IgnoredItems, wikiName)
}

// IsAllowedLiquid reports whether a liquid is documented.
func (o Overrides) IsAllowedLiquid(liquid string) bool {
	return slices.Contains(o.AllowedLiquids, liquid)
}

// Status returns the wiki name of a status, or the ID itself when unmapped.
func (o Overrides) Status(id string) string {
	if name, ok := o.Statuses[id]; ok {
		return name
	}
	return id
}
