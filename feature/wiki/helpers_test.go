package wiki_test

import (
	"context"
	"errors"
	"sync/atomic"

	"data-exporter/core/unreal"
	"data-exporter/feature/items"
	"data-exporter/feature/recipes"
	"data-exporter/feature/wiki"

	"go.uber.org/zap"
)

type fakeItems struct {
	items []items.Item
	err   error
	calls atomic.Int32
}

func (f *fakeItems) Items(ctx context.Context) ([]items.Item, error) {
	f.calls.Add(1)
	return f.items, f.err
}

type fakeRecipes struct {
	recipes []recipes.Recipe
	err     error
	calls   atomic.Int32
}

func (f *fakeRecipes) Recipes(ctx context.Context) ([]recipes.Recipe, error) {
	f.calls.Add(1)
	return f.recipes, f.err
}

type fakeEnums map[string]string

func (f fakeEnums) ResolveEnumDisplayName(ctx context.Context, value string) (string, error) {
	if _, err := unreal.ParseEnumReference(value); err != nil {
		return "", err
	}
	name, ok := f[value]
	if !ok {
		return "", unreal.ErrEnumEntryNotFound
	}
	return name, nil
}

var errBoom = errors.New("boom")

func scrapMetal() items.Item {
	return items.Item{
		RowName:      "scrap_metal",
		Name:         "Scrap Metal",
		StackSize:    20,
		Weight:       0.5,
		GameplayTags: []string{"Item.Material.Metal"},
	}
}

func pistol() items.Item {
	return items.Item{
		RowName:     "pistol",
		Name:        `"Old" Pistol`,
		Description: "Shoots things.",
		Weight:      1.5,
		Durability: items.Durability{
			CanLoseDurability: true,
			MaxDurability:     100,
			RepairItem:        &items.RepairItem{ItemRowName: "scrap_metal", QuantityMin: 1, QuantityMax: 3},
		},
		Weapon: items.Weapon{
			IsWeapon:        true,
			DamagePerHit:    25,
			MagazineSize:    8,
			RequireAmmo:     true,
			AmmoItemRowName: "ammo_pistol",
			SecondaryAttack: "Aim",
		},
		Salvage: items.Salvage{
			IsSalvageable: true,
			Items:         []items.LootEntry{{ItemRowName: "scrap_metal", QuantityMin: 2, QuantityMax: 4, ChanceToDrop: 1}},
		},
		GameplayTags: []string{"Item.Weapon", "Item.Material.Metal"},
	}
}

func ammo() items.Item {
	return items.Item{RowName: "ammo_pistol", Name: "Pistol Ammo", StackSize: 30}
}

func helmet() items.Item {
	return items.Item{
		RowName:   "helmet",
		Name:      "Nuts & Bolts Helmet",
		Equipment: items.Equipment{IsEquipment: true, Slot: "EquipmentSlot_Head", ArmorBonus: 4},
	}
}

func jetpack() items.Item {
	return items.Item{
		RowName:   "jetpack",
		Name:      "Jetpack",
		Equipment: items.Equipment{IsEquipment: true, Slot: "EquipmentSlot_Jet", ContainerCapacity: 4},
		Liquid: items.Liquid{
			IsLiquidContainer: true,
			MaxLiquid:         200,
			AllowedLiquids:    []string{"Battery", "Water", "Fuel"},
		},
	}
}

func meat() items.Item {
	states := &items.CookableStates{RawItemRowName: "meat_raw", CookedItemRowName: "meat_cooked", BurnedItemRowName: "meat_burned"}
	return items.Item{
		RowName:    "meat_raw",
		Name:       "Raw Meat",
		Durability: items.Durability{MaxDurability: 50},
		Consumable: items.Consumable{
			IsConsumable:  true,
			HungerFill:    10,
			TimeToConsume: 2,
			BuffsToAdd:    []string{"Debuff_Sick", "Buff_Custom"},
			BuffsToRemove: []string{},
		},
		Cookable: items.Cookable{
			CanBeCooked:        true,
			CookableStates:     states,
			CanDecay:           true,
			DecayToItemRowName: "meat_cooked",
		},
	}
}

func cookedMeat() items.Item {
	return items.Item{RowName: "meat_cooked", Name: "Cooked Meat"}
}

func pot() items.Item {
	return items.Item{RowName: "pot", Name: "Cooking Pot", Cookable: items.Cookable{IsCookware: true}}
}

func heater() items.Item {
	return items.Item{RowName: "tutorialheater", Name: "Heater"}
}

func allItems() []items.Item {
	return []items.Item{scrapMetal(), pistol(), ammo(), helmet(), jetpack(), meat(), cookedMeat(), pot(), heater()}
}

func allRecipes() []recipes.Recipe {
	return []recipes.Recipe{
		{
			RowName:         "recipe_pistol",
			ResultRowName:   "pistol",
			ResultCount:     1,
			Category:        "Weapon",
			Ingredients:     []recipes.Ingredient{{ItemRowName: "scrap_metal", ItemCount: 5}},
			BenchesRequired: []string{"pot"},
			CraftDuration:   3,
		},
		{
			RowName:         "recipe_pistol_alt",
			ResultRowName:   "pistol",
			ResultCount:     1,
			Category:        "Tools",
			Ingredients:     []recipes.Ingredient{},
			BenchesRequired: []string{},
		},
		{
			RowName:         "recipe_mystery",
			Variant:         1,
			ResultRowName:   "mystery",
			Ingredients:     []recipes.Ingredient{{ItemRowName: "unobtainium", ItemCount: 1}},
			BenchesRequired: []string{"pot", "missing_bench"},
		},
	}
}

func newCatalog(logger *zap.Logger) *wiki.Catalog {
	return wiki.NewCatalog(allItems(), allRecipes(), wiki.DefaultOverrides(), logger)
}

func newService(logger *zap.Logger) (*wiki.Service, *fakeItems, *fakeRecipes) {
	itemSource := &fakeItems{items: allItems()}
	recipeSource := &fakeRecipes{recipes: allRecipes()}
	enums := fakeEnums{"E_RecipeCategory::NewEnumerator0": "Weapon"}
	return wiki.NewService(itemSource, recipeSource, enums, wiki.DefaultOverrides(), logger), itemSource, recipeSource
}
