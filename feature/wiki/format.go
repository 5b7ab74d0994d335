package wiki

import (
	"data-exporter/feature/items"
	"data-exporter/feature/recipes"

	"go.uber.org/zap"
)

const unknownItem = "UNKNOWN"

// WikiItem is the item infobox record of Items.json. Zero stats are left out.
type WikiItem struct {
	RowName string `json:"rowName"`

	Name        string `json:"name"`
	Description string `json:"description"`
	FlavorText  string `json:"flavorText"`
	Category    string `json:"category,omitempty"`

	Weight        float64 `json:"weight,omitempty"`
	StackSize     int     `json:"stackSize,omitempty"`
	Radioactivity float64 `json:"radioactivity,omitempty"`

	Durability   *float64 `json:"durability,omitempty"`
	RepairItem   string   `json:"repairItem,omitempty"`
	RepairAmount *int     `json:"repairAmount,omitempty"`

	DecayLimit  *float64 `json:"decayLimit,omitempty"`
	DecayToItem string   `json:"decayToItem,omitempty"`

	BatteryCapacity *float64 `json:"batteryCapacity,omitempty"`

	AllowedLiquids []string `json:"allowedLiquids,omitempty"`
	LiquidCapacity *float64 `json:"liquidCapacity,omitempty"`

	ResearchMaterial string `json:"researchMaterial,omitempty"`

	ScrapResults []ScrapResult `json:"scrapResults"`

	GearSlot            string  `json:"gearSlot,omitempty"`
	GearArmor           float64 `json:"gearArmor,omitempty"`
	GearCapacity        int     `json:"gearCapacity,omitempty"`
	GearWeightReduction float64 `json:"gearWeightReduction,omitempty"`

	WeaponType            string   `json:"weaponType,omitempty"`
	WeaponDamage          *float64 `json:"weaponDamage,omitempty"`
	WeaponAmmoItem        string   `json:"weaponAmmoItem,omitempty"`
	WeaponAmmoCount       *int     `json:"weaponAmmoCount,omitempty"`
	WeaponSecondaryAction *string  `json:"weaponSecondaryAction,omitempty"`

	ConsumableHungerFill    float64  `json:"consumableHungerFill,omitempty"`
	ConsumableFatigueFill   float64  `json:"consumableFatigueFill,omitempty"`
	ConsumableThirst        float64  `json:"consumableThirst,omitempty"`
	ConsumableRadiation     float64  `json:"consumableRadiation,omitempty"`
	ConsumableAppliesStatus []string `json:"consumableAppliesStatus,omitempty"`
	ConsumableRemovesStatus []string `json:"consumableRemovesStatus,omitempty"`
	TimeToConsume           float64  `json:"timeToConsume,omitempty"`

	CookingIsCookware bool   `json:"cookingIsCookware,omitempty"`
	CookingRawItem    string `json:"cookingRawItem,omitempty"`
	CookingCookedItem string `json:"cookingCookedItem,omitempty"`
	CookingBurnedItem string `json:"cookingBurnedItem,omitempty"`
}

// ScrapResult is one possible result of scrapping an item.
type ScrapResult struct {
	Item         string  `json:"item,omitempty"`
	ChanceToDrop float64 `json:"chanceToDrop"`
	QuantityMin  int     `json:"quantityMin"`
	QuantityMax  int     `json:"quantityMax"`
}

// WikiRecipe is one recipe variant of Recipes.json.
type WikiRecipe struct {
	RowName string `json:"rowName"`
	Variant int    `json:"variant"`

	ResultItem   string `json:"resultItem"`
	ResultAmount int    `json:"resultAmount,omitempty"`

	RequiredStation string  `json:"requiredStation,omitempty"`
	CraftDuration   float64 `json:"craftDuration,omitempty"`

	Ingredients []WikiIngredient `json:"ingredients"`
}

// WikiIngredient is one ingredient of a recipe variant.
type WikiIngredient struct {
	IngredientItem string `json:"ingredientItem"`
	Amount         int    `json:"amount,omitempty"`
}

// FormatItem renders an item as a wiki infobox record. References to other items are
// replaced by their wiki names and dropped when the item is unknown.
func (c *Catalog) FormatItem(item items.Item) WikiItem {
	w := WikiItem{
		RowName:          item.RowName,
		Name:             c.overrides.WikiName(item.RowName, item.Name),
		Description:      item.Description,
		FlavorText:       item.FlavorText,
		Category:         c.Category(item.RowName),
		Weight:           item.Weight,
		StackSize:        item.StackSize,
		Radioactivity:    item.Radioactivity,
		ResearchMaterial: item.ResearchMaterial,
		ScrapResults:     make([]ScrapResult, 0, len(item.Salvage.Items)),
	}

	if d := item.Durability; d.CanLoseDurability {
		w.Durability = ptr(d.MaxDurability)
		if d.RepairItem != nil {
			w.RepairItem = c.name(d.RepairItem.ItemRowName)
			w.RepairAmount = ptr(d.RepairItem.QuantityMax)
		}
	}

	if item.Cookable.CanDecay {
		w.DecayLimit = ptr(item.Durability.MaxDurability)
		w.DecayToItem = c.name(item.Cookable.DecayToItemRowName)
	}

	c.formatLiquid(&w, item.Liquid)

	for _, entry := range item.Salvage.Items {
		w.ScrapResults = append(w.ScrapResults, ScrapResult{
			Item:         c.name(entry.ItemRowName),
			ChanceToDrop: entry.ChanceToDrop,
			QuantityMin:  entry.QuantityMin,
			QuantityMax:  entry.QuantityMax,
		})
	}

	if e := item.Equipment; e.IsEquipment {
		w.GearSlot = unknownItem
		if slot, ok := c.overrides.GearSlots[e.Slot]; ok {
			w.GearSlot = slot
		}
		w.GearArmor = e.ArmorBonus
		w.GearCapacity = e.ContainerCapacity
		w.GearWeightReduction = e.ContainerWeightReduction
	}

	c.formatWeapon(&w, item.Weapon)
	c.formatConsumable(&w, item.Consumable)
	c.formatCooking(&w, item.Cookable)
	return w
}

func (c *Catalog) formatLiquid(w *WikiItem, l items.Liquid) {
	for _, liquid := range l.AllowedLiquids {
		if liquid == "Battery" {
			w.BatteryCapacity = ptr(l.MaxLiquid)
		}
		if c.overrides.IsAllowedLiquid(liquid) {
			w.AllowedLiquids = append(w.AllowedLiquids, liquid)
		}
	}
	if len(w.AllowedLiquids) > 0 {
		w.LiquidCapacity = ptr(l.MaxLiquid)
	}
}

func (c *Catalog) formatWeapon(w *WikiItem, weapon items.Weapon) {
	if !weapon.IsWeapon {
		return
	}
	w.WeaponType = "Ranged"
	if weapon.IsMelee {
		w.WeaponType = "Melee"
	}
	w.WeaponDamage = ptr(weapon.DamagePerHit)
	if weapon.RequireAmmo {
		w.WeaponAmmoItem = c.name(weapon.AmmoItemRowName)
		w.WeaponAmmoCount = ptr(weapon.MagazineSize)
	}
	w.WeaponSecondaryAction = ptr(weapon.SecondaryAttack)
}

func (c *Catalog) formatConsumable(w *WikiItem, data items.Consumable) {
	if !data.IsConsumable {
		return
	}
	w.ConsumableHungerFill = data.HungerFill
	w.ConsumableFatigueFill = data.FatigueFill
	w.ConsumableThirst = data.ThirstFill
	w.ConsumableRadiation = data.RadiationChange
	w.TimeToConsume = data.TimeToConsume
	for _, s := range data.BuffsToAdd {
		w.ConsumableAppliesStatus = append(w.ConsumableAppliesStatus, c.overrides.Status(s))
	}
	for _, s := range data.BuffsToRemove {
		w.ConsumableRemovesStatus = append(w.ConsumableRemovesStatus, c.overrides.Status(s))
	}
}

func (c *Catalog) formatCooking(w *WikiItem, data items.Cookable) {
	if data.IsCookware {
		w.CookingIsCookware = true
		return
	}
	if !data.CanBeCooked || data.CookableStates == nil {
		return
	}
	w.CookingRawItem = c.name(data.CookableStates.RawItemRowName)
	w.CookingCookedItem = c.name(data.CookableStates.CookedItemRowName)
	w.CookingBurnedItem = c.name(data.CookableStates.BurnedItemRowName)
}

// FormatRecipe renders a recipe variant. Items missing from the catalog are written as
// UNKNOWN and logged; only the first required bench is kept.
func (c *Catalog) FormatRecipe(r recipes.Recipe) WikiRecipe {
	w := WikiRecipe{
		RowName:       r.RowName,
		Variant:       r.Variant,
		ResultItem:    c.nameOrUnknown(r.RowName, r.ResultRowName),
		ResultAmount:  r.ResultCount,
		CraftDuration: r.CraftDuration,
		Ingredients:   make([]WikiIngredient, 0, len(r.Ingredients)),
	}

	if len(r.BenchesRequired) > 1 {
		c.logger.Warn("Recipe requires several benches, keeping the first",
			zap.String("recipe", r.RowName),
			zap.Strings("benches", r.BenchesRequired),
		)
	}
	if len(r.BenchesRequired) > 0 {
		bench := r.BenchesRequired[0]
		if name, ok := c.WikiName(bench); ok {
			w.RequiredStation = name
		} else {
			c.logger.Warn("Unknown recipe bench", zap.String("recipe", r.RowName), zap.String("item", bench))
		}
	}

	for _, ing := range r.Ingredients {
		w.Ingredients = append(w.Ingredients, WikiIngredient{
			IngredientItem: c.nameOrUnknown(r.RowName, ing.ItemRowName),
			Amount:         ing.ItemCount,
		})
	}
	return w
}

// name returns the wiki name of an item, or "" when it is unknown.
func (c *Catalog) name(rowName string) string {
	name, _ := c.WikiName(rowName)
	return name
}

func (c *Catalog) nameOrUnknown(recipe, rowName string) string {
	if name, ok := c.WikiName(rowName); ok {
		return name
	}
	c.logger.Warn("Unknown recipe item", zap.String("recipe", recipe), zap.String("item", rowName))
	return unknownItem
}

func ptr[T any](v T) *T {
	return &v
}
