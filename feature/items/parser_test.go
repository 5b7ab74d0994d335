package items_test

import (
	"context"
	"path/filepath"
	"testing"

	"data-exporter/core/unreal"
	"data-exporter/feature/items"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const itemTableJSON = `[{
  "Type": "DataTable",
  "Name": "ItemTable_Global",
  "Rows": {
    "meat_raw": {
      "ItemName_51_B88648C048EE5BC2885E4E95F3E13F0A": {"CultureInvariantString": "{CookedState} Meat"},
      "StackSize_47_D124F11B4B6D9766B2B33699795845A9": 5,
      "EquipmentData": {"EquipSlot": "E_InventorySlotType::NewEnumerator1"},
      "CookableData": {
        "CanBeCooked": true,
        "CookedItem": {"DataTable": {"ObjectName": "ItemTable_Global", "ObjectPath": "/Game/Blueprints/Items/ItemTable_Global.0"}, "RowName": "meat_cooked"},
        "BurnedItem": {"DataTable": {"ObjectName": "ItemTable_Global", "ObjectPath": "/Game/Blueprints/Items/ItemTable_Global.0"}, "RowName": "meat_burned"},
        "TimeToCookBaseline": 30,
        "CanItemDecay": true,
        "DecayToItem": {"DataTable": {"ObjectName": "ItemTable_Global", "ObjectPath": "/Game/Blueprints/Items/ItemTable_Global.0"}, "RowName": "None"}
      },
      "ConsumableData": {"HungerFill": 10}
    },
    "meat_cooked": {
      "ItemName": {"CultureInvariantString": null},
      "EquipmentData": {"EquipSlot": "E_InventorySlotType::NewEnumerator1"}
    },
    "pistol": {
      "ItemName": {"CultureInvariantString": "Pistol"},
      "ItemDescription": {"Namespace": "", "Key": "k", "SourceString": "Shoots things.", "LocalizedString": "Shoots things."},
      "InventoryIcon": {"AssetPathName": "/Game/Art/Icons/icon_pistol.icon_pistol", "SubPathString": ""},
      "Weight": 1.5,
      "CanLoseDurability": true,
      "MaxItemDurability": 100,
      "RepairItem": {
        "ItemDataTable": {"DataTable": {"ObjectName": "ItemTable_Global", "ObjectPath": "/Game/Blueprints/Items/ItemTable_Global.0"}, "RowName": "scrap_metal"},
        "QuantityMin": 1,
        "QuantityMax": 3
      },
      "IsWeapon": true,
      "WeaponData": {
        "DamagePerHit": 25,
        "MagazineSize": 8,
        "RequireAmmo": true,
        "AmmoType": {"DataTable": {"ObjectName": "ItemTable_Global", "ObjectPath": "/Game/Blueprints/Items/ItemTable_Global.0"}, "RowName": "ammo_pistol"},
        "SecondaryAttack": "E_SecondaryAttack::NewEnumerator0"
      },
      "EquipmentData": {"EquipSlot": "E_InventorySlotType::NewEnumerator1"},
      "SalvageData": {"DataTable": {"ObjectName": "DT_Salvage", "ObjectPath": "/Game/Blueprints/Items/DT_Salvage.0"}, "RowName": "pistol"},
      "GameplayTags": ["Item.Weapon", "Item.Material.Metal"]
    },
    "broken": {
      "ItemName": {"CultureInvariantString": "Broken"},
      "EquipmentData": {"EquipSlot": "E_Missing::NewEnumerator0"}
    },
    "helmet": {
      "ItemName": {"CultureInvariantString": "Helmet"},
      "EquipmentData": {"EquipSlot": "E_InventorySlotType::NewEnumerator0", "ArmorBonus": 4},
      "SalvageData": {"DataTable": {"ObjectName": "DT_Salvage", "ObjectPath": "/Game/Blueprints/Items/DT_Salvage.0"}, "RowName": "None"}
    },
    "water_bottle": {
      "ItemName": {"CultureInvariantString": "Water Bottle"},
      "EquipmentData": {"EquipSlot": "E_InventorySlotType::NewEnumerator1"},
      "LiquidData": {"MaxLiquid": 50, "AllowedLiquids": ["E_Liquid::NewEnumerator0"], "LiquidToStartWith": []},
      "DeployedItemClass": {"AssetPathName": "/Game/Blueprints/Deployables/BP_Bottle.BP_Bottle_C", "SubPathString": ""},
      "ToInteractWith_Text": {"CultureInvariantString": "Drink"}
    }
  }
}]`

const salvageJSON = `[{
  "Type": "DataTable",
  "Name": "DT_Salvage",
  "Rows": {
    "pistol": {
      "SalvageDropItems_4_6F67F05F401125FAC788E4B1800CBC93": [
        {
          "ItemDataTable": {"DataTable": {"ObjectName": "ItemTable_Global", "ObjectPath": "/Game/Blueprints/Items/ItemTable_Global.0"}, "RowName": "scrap_metal"},
          "QuantityMin": 2,
          "QuantityMax": 4,
          "ChanceToDrop": 1
        }
      ]
    }
  }
}]`

func enumJSON(name string, members ...string) string {
	out := `[{"Type": "UserDefinedEnum", "Name": "` + name + `", "DisplayNameMap": [`
	for i, m := range members {
		if i > 0 {
			out += ","
		}
		out += `{"NewEnumerator` + string(rune('0'+i)) + `": {"CultureInvariantString": "` + m + `"}}`
	}
	return out + `]}]`
}

func newTestParser(t *testing.T, workers int) *items.Parser {
	t.Helper()

	fs := afero.NewMemMapFs()
	for rel, content := range map[string]string{
		"Blueprints/Items/ItemTable_Global.json":   itemTableJSON,
		"Blueprints/Items/DT_Salvage.json":         salvageJSON,
		"Blueprints/Data/E_InventorySlotType.json": enumJSON("E_InventorySlotType", "Head", "Backpack"),
		"Blueprints/Data/E_SecondaryAttack.json":   enumJSON("E_SecondaryAttack", "Aim"),
		"Blueprints/Data/E_Liquid.json":            enumJSON("E_Liquid", "Water"),
	} {
		name := filepath.Join("/data", rel)
		require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	logger := zap.NewNop()
	objects := unreal.NewObjectStore(fs, "/data", logger)
	strs := unreal.NewStringResolver(objects)
	rows := unreal.NewRowStore(objects)
	rowParser := items.NewRowParser(strs, unreal.NewEnumResolver(objects, strs), rows, objects)
	return items.NewParser(rows, rowParser, workers, logger)
}

func rowNames(all []items.Item) []string {
	names := make([]string, 0, len(all))
	for _, item := range all {
		names = append(names, item.RowName)
	}
	return names
}

func TestParser_KeepsOrderAndSkipsFailures(t *testing.T) {
	for _, workers := range []int{1, 4} {
		parser := newTestParser(t, workers)

		all, err := parser.Items(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"meat_raw", "meat_cooked", "pistol", "helmet", "water_bottle"}, rowNames(all))
	}
}

func TestParser_ItemFields(t *testing.T) {
	parser := newTestParser(t, 4)
	ctx := context.Background()

	t.Run("CookedNameAndStates", func(t *testing.T) {
		meat, ok, err := parser.Find(ctx, "meat_raw")
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equal(t, "Cooked Meat", meat.Name)
		assert.Equal(t, 5, meat.StackSize)
		require.NotNil(t, meat.Cookable.CookableStates)
		assert.Equal(t, items.CookableStates{
			RawItemRowName:    "meat_raw",
			CookedItemRowName: "meat_cooked",
			BurnedItemRowName: "meat_burned",
		}, *meat.Cookable.CookableStates)
		assert.True(t, meat.Cookable.CanDecay)
		assert.Empty(t, meat.Cookable.DecayToItemRowName)
		assert.True(t, meat.Consumable.IsConsumable)
		assert.False(t, meat.Equipment.IsEquipment)
		assert.Equal(t, "Backpack", meat.Equipment.Slot)
	})

	t.Run("UnknownNameAndSharedStates", func(t *testing.T) {
		cooked, ok, err := parser.Find(ctx, "meat_cooked")
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equal(t, "UNKNOWN (meat_cooked)", cooked.Name)
		require.NotNil(t, cooked.Cookable.CookableStates)
		assert.Equal(t, "meat_raw", cooked.Cookable.CookableStates.RawItemRowName)
		assert.Equal(t, "UNKNOWN", cooked.InventoryIconFilename)
		assert.False(t, cooked.Consumable.IsConsumable)
		assert.Equal(t, []string{}, cooked.GameplayTags)
	})

	t.Run("Weapon", func(t *testing.T) {
		pistol, ok, err := parser.Find(ctx, "pistol")
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equal(t, "Shoots things.", pistol.Description)
		assert.Equal(t, "icon_pistol.png", pistol.InventoryIconFilename)
		assert.Equal(t, "/Game/Art/Icons/icon_pistol.icon_pistol", pistol.InventoryIconPath)
		assert.Equal(t, "Metal", pistol.ResearchMaterial)
		assert.Equal(t, &items.RepairItem{ItemRowName: "scrap_metal", QuantityMin: 1, QuantityMax: 3}, pistol.Durability.RepairItem)

		assert.True(t, pistol.Weapon.IsWeapon)
		assert.Equal(t, 25.0, pistol.Weapon.DamagePerHit)
		assert.Equal(t, "ammo_pistol", pistol.Weapon.AmmoItemRowName)
		assert.Equal(t, "Aim", pistol.Weapon.SecondaryAttack)

		assert.True(t, pistol.Salvage.IsSalvageable)
		assert.Equal(t, []items.LootEntry{
			{ItemRowName: "scrap_metal", QuantityMin: 2, QuantityMax: 4, ChanceToDrop: 1},
		}, pistol.Salvage.Items)
	})

	t.Run("Equipment", func(t *testing.T) {
		helmet, ok, err := parser.Find(ctx, "helmet")
		require.NoError(t, err)
		require.True(t, ok)

		assert.True(t, helmet.Equipment.IsEquipment)
		assert.Equal(t, "Head", helmet.Equipment.Slot)
		assert.Equal(t, 4.0, helmet.Equipment.ArmorBonus)
		assert.False(t, helmet.Salvage.IsSalvageable)
		assert.Empty(t, helmet.Salvage.Items)
		assert.Nil(t, helmet.Durability.RepairItem)
	})

	t.Run("LiquidAndDeployable", func(t *testing.T) {
		bottle, ok, err := parser.Find(ctx, "water_bottle")
		require.NoError(t, err)
		require.True(t, ok)

		assert.True(t, bottle.Liquid.IsLiquidContainer)
		assert.Equal(t, []string{"Water"}, bottle.Liquid.AllowedLiquids)
		assert.Equal(t, []string{}, bottle.Liquid.StartLiquid)
		assert.True(t, bottle.Deployable.IsDeployable)
		assert.Equal(t, "Drink", bottle.Deployable.PrimaryInteraction)
	})

	t.Run("Missing", func(t *testing.T) {
		_, ok, err := parser.Find(ctx, "broken")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestParser_CanceledContext(t *testing.T) {
	parser := newTestParser(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parser.Items(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
