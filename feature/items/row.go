package items

import "data-exporter/core/unreal"

// ItemRow is a row of the global item table.
type ItemRow struct {
	ItemName        unreal.StringHandle `json:"ItemName"`
	ItemDescription unreal.StringHandle `json:"ItemDescription"`
	ItemFlavorText  unreal.StringHandle `json:"ItemFlavorText"`

	ToInteractWithText     unreal.StringHandle `json:"ToInteractWith_Text"`
	ToLongInteractWithText unreal.StringHandle `json:"ToLongInteractWith_Text"`
	ToPackageText          unreal.StringHandle `json:"ToPackage_Text"`
	ToLongPackageText      unreal.StringHandle `json:"ToLongPackage_Text"`

	InventoryIcon unreal.AssetHandle `json:"InventoryIcon"`

	StackSize int     `json:"StackSize"`
	Weight    float64 `json:"Weight"`

	PlacementOrientationsAllowed string `json:"PlacementOrientationsAllowed"`

	CanLoseDurability      bool          `json:"CanLoseDurability"`
	MaxItemDurability      float64       `json:"MaxItemDurability"`
	ChanceToLoseDurability float64       `json:"ChanceToLoseDurability"`
	RepairItem             LootTableItem `json:"RepairItem"`

	IsWeapon       bool                      `json:"IsWeapon"`
	WeaponData     WeaponRow                 `json:"WeaponData"`
	EquipmentData  EquipmentRow              `json:"EquipmentData"`
	SalvageData    unreal.DataTableRowHandle `json:"SalvageData"`
	ConsumableData ConsumableRow             `json:"ConsumableData"`
	CookableData   CookableRow               `json:"CookableData"`
	LiquidData     LiquidRow                 `json:"LiquidData"`

	ItemUseFlags []unreal.DataTableRowHandle `json:"ItemUseFlags"`
	GameplayTags []string                    `json:"GameplayTags"`

	DeployedItemClass unreal.AssetHandle `json:"DeployedItemClass"`
	StrippedFromBuild bool               `json:"StrippedFromBuild"`
}

// LootTableItem is an item reference with a quantity range, used for repairs and salvage.
type LootTableItem struct {
	ItemDataTable unreal.DataTableRowHandle `json:"ItemDataTable"`
	QuantityMin   int                       `json:"QuantityMin"`
	QuantityMax   int                       `json:"QuantityMax"`
	ChanceToDrop  float64                   `json:"ChanceToDrop"`
}

// WeaponRow holds the weapon columns of an item row.
type WeaponRow struct {
	Melee                  bool                      `json:"Melee"`
	TimeBetweenShots       float64                   `json:"TimeBetweenShots"`
	MaximumHitscanRange    float64                   `json:"MaximumHitscanRange"`
	DamagePerHit           float64                   `json:"DamagePerHit"`
	BulletSpreadMin        float64                   `json:"BulletSpread_Min"`
	BulletSpreadMax        float64                   `json:"BulletSpread_Max"`
	RecoilAmount           float64                   `json:"RecoilAmount"`
	PelletCount            int                       `json:"PelletCount"`
	MagazineSize           int                       `json:"MagazineSize"`
	RequireAmmo            bool                      `json:"RequireAmmo"`
	AmmoType               unreal.DataTableRowHandle `json:"AmmoType"`
	SecondaryAttack        string                    `json:"SecondaryAttack"`
	LoudnessOnPrimaryUse   float64                   `json:"LoudnessOnPrimaryUse"`
	LoudnessOnSecondaryUse float64                   `json:"LoudnessOnSecondaryUse"`
	UnderwaterState        string                    `json:"UnderwaterState"`
}

// EquipmentRow holds the equipment columns of an item row.
type EquipmentRow struct {
	EquipSlot                string                    `json:"EquipSlot"`
	CanAutoEquip             bool                      `json:"CanAutoEquip"`
	ArmorBonus               float64                   `json:"ArmorBonus"`
	IsContainer              bool                      `json:"IsContainer"`
	ContainerCapacity        int                       `json:"ContainerCapacity"`
	ContainerWeightReduction float64                   `json:"ContainerWeightReduction"`
	SetBonus                 unreal.DataTableRowHandle `json:"SetBonus"`
}

// ConsumableRow holds the consumable columns of an item row.
type ConsumableRow struct {
	TimeToConsume     float64     `json:"TimeToConsume"`
	HungerFill        float64     `json:"HungerFill"`
	ThirstFill        float64     `json:"ThirstFill"`
	FatigueFill       float64     `json:"FatigueFill"`
	ContinenceFill    float64     `json:"ContinenceFill"`
	SanityFill        float64     `json:"SanityFill"`
	TemperatureChange float64     `json:"TemperatureChange"`
	RadiationChange   float64     `json:"RadiationChange"`
	HealthChange      float64     `json:"HealthChange"`
	ArmorChange       float64     `json:"ArmorChange"`
	BuffsToAdd        []string    `json:"BuffsToAdd"`
	BuffsToRemove     []string    `json:"BuffsToRemove"`
	ConsumableTag     GameplayTag `json:"ConsumableTag"`
	ConsumedAction    string      `json:"ConsumedAction"`
	Radioactivity     float64     `json:"Radioactivity"`
}

// GameplayTag is a single engine gameplay tag.
type GameplayTag struct {
	TagName string `json:"TagName"`
}

// CookableRow holds the cooking and decay columns of an item row.
type CookableRow struct {
	IsCookware           bool                      `json:"IsCookware"`
	CanBeCooked          bool                      `json:"CanBeCooked"`
	CookedItem           unreal.DataTableRowHandle `json:"CookedItem"`
	BurnedItem           unreal.DataTableRowHandle `json:"BurnedItem"`
	TimeToCookBaseline   float64                   `json:"TimeToCookBaseline"`
	TimeToBurnBaseline   float64                   `json:"TimeToBurnBaseline"`
	FarmableDataRow      unreal.DataTableRowHandle `json:"FarmableDataRow"`
	RequiresBaking       bool                      `json:"RequiresBaking"`
	CanItemDecay         bool                      `json:"CanItemDecay"`
	ItemDecayTemperature string                    `json:"ItemDecayTemperature"`
	DecayToItem          unreal.DataTableRowHandle `json:"DecayToItem"`
}

// LiquidRow holds the liquid container columns of an item row.
type LiquidRow struct {
	MaxLiquid                   float64  `json:"MaxLiquid"`
	AllowedLiquids              []string `json:"AllowedLiquids"`
	PercentageLiquidToStartWith float64  `json:"PercentageLiquidToStartWith"`
	LiquidToStartWith           []string `json:"LiquidToStartWith"`
}

// SalvageRow is a row of the salvage table.
type SalvageRow struct {
	SalvageDropItems  []LootTableItem `json:"SalvageDropItems"`
	StrippedFromBuild bool            `json:"StrippedFromBuild"`
}
