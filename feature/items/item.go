package items

// Item is the human-readable record of an item row.
type Item struct {
	RowName string `json:"rowName"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	FlavorText  string `json:"flavorText,omitempty"`

	InventoryIconFilename string `json:"inventoryIconFilename"`
	InventoryIconPath     string `json:"inventoryIconPath,omitempty"`

	StackSize     int     `json:"stackSize"`
	Weight        float64 `json:"weight"`
	Radioactivity float64 `json:"radioactivity"`

	ResearchMaterial string `json:"researchMaterial,omitempty"`

	Durability Durability `json:"durabilityData"`
	Weapon     Weapon     `json:"weaponData"`
	Equipment  Equipment  `json:"equipmentData"`
	Salvage    Salvage    `json:"salvageData"`
	Consumable Consumable `json:"consumableData"`
	Cookable   Cookable   `json:"cookableData"`
	Liquid     Liquid     `json:"liquidData"`
	Deployable Deployable `json:"deployableData"`

	GameplayTags []string `json:"gameplayTags"`
}

// Durability describes wear and repair of an item.
type Durability struct {
	CanLoseDurability      bool        `json:"canLoseDurability"`
	MaxDurability          float64     `json:"maxDurability"`
	ChanceToLoseDurability float64     `json:"chanceToLoseDurability"`
	RepairItem             *RepairItem `json:"repairItem,omitempty"`
}

// RepairItem is the item consumed when repairing.
type RepairItem struct {
	ItemRowName string `json:"itemRowName"`
	QuantityMin int    `json:"quantityMin"`
	QuantityMax int    `json:"quantityMax"`
}

// LootEntry is one possible drop of a salvage.
type LootEntry struct {
	ItemRowName  string  `json:"itemRowName"`
	QuantityMin  int     `json:"quantityMin"`
	QuantityMax  int     `json:"quantityMax"`
	ChanceToDrop float64 `json:"chanceToDrop"`
}

// Weapon describes the weapon stats of an item.
type Weapon struct {
	IsWeapon bool `json:"isWeapon"`
	IsMelee  bool `json:"isMelee"`

	TimeBetweenShots    float64 `json:"timeBetweenShots"`
	MaximumHitscanRange float64 `json:"maximumHitscanRange"`
	DamagePerHit        float64 `json:"damagePerHit"`
	BulletSpreadMin     float64 `json:"bulletSpreadMin"`
	BulletSpreadMax     float64 `json:"bulletSpreadMax"`
	RecoilAmount        float64 `json:"recoilAmount"`
	PelletCount         int     `json:"pelletCount"`

	MagazineSize    int    `json:"magazineSize"`
	RequireAmmo     bool   `json:"requireAmmo"`
	AmmoItemRowName string `json:"ammoItemRowName"`

	SecondaryAttack        string  `json:"secondaryAttack"`
	LoudnessOnPrimaryUse   float64 `json:"loudnessOnPrimaryUse"`
	LoudnessOnSecondaryUse float64 `json:"loudnessOnSecondaryUse"`
	UnderwaterState        string  `json:"underwaterState"`
}

// Equipment describes how an item is worn.
type Equipment struct {
	IsEquipment              bool    `json:"isEquipment"`
	Slot                     string  `json:"slot"`
	CanAutoEquip             bool    `json:"canAutoEquip"`
	ArmorBonus               float64 `json:"armorBonus"`
	IsContainer              bool    `json:"isContainer"`
	ContainerCapacity        int     `json:"containerCapacity"`
	ContainerWeightReduction float64 `json:"containerWeightReduction"`
	SetBonus                 string  `json:"setBonus"`
}

// Salvage lists what an item breaks down into.
type Salvage struct {
	IsSalvageable bool        `json:"isSalvageable"`
	Items         []LootEntry `json:"items"`
}

// Consumable describes the effects of consuming an item.
type Consumable struct {
	IsConsumable bool `json:"isConsumable"`

	TimeToConsume     float64 `json:"timeToConsume"`
	HungerFill        float64 `json:"hungerFill"`
	ThirstFill        float64 `json:"thirstFill"`
	FatigueFill       float64 `json:"fatigueFill"`
	ContinenceFill    float64 `json:"continenceFill"`
	SanityFill        float64 `json:"sanityFill"`
	TemperatureChange float64 `json:"temperatureChange"`
	RadiationChange   float64 `json:"radiationChange"`
	HealthChange      float64 `json:"healthChange"`
	ArmorChange       float64 `json:"armorChange"`

	BuffsToAdd    []string `json:"buffsToAdd"`
	BuffsToRemove []string `json:"buffsToRemove"`

	ConsumableTag  string `json:"consumableTag,omitempty"`
	ConsumedAction string `json:"consumedAction,omitempty"`
}

// CookableStates links the raw, cooked and burned variants of a food item.
type CookableStates struct {
	RawItemRowName    string `json:"rawItemRowName"`
	CookedItemRowName string `json:"cookedItemRowName"`
	BurnedItemRowName string `json:"burnedItemRowName"`
}

// Cookable describes cooking, farming and decay behavior.
type Cookable struct {
	IsCookware     bool `json:"isCookware"`
	CanBeCooked    bool `json:"canBeCooked"`
	RequiresBaking bool `json:"requiresBaking"`

	CookableStates *CookableStates `json:"cookableStates,omitempty"`

	TimeToCookBaseline float64 `json:"timeToCookBaseline"`
	TimeToBurnBaseline float64 `json:"timeToBurnBaseline"`

	FarmableDataRow string `json:"farmableDataRow,omitempty"`

	CanDecay           bool   `json:"canDecay"`
	DecayTemperature   string `json:"decayTemperature"`
	DecayToItemRowName string `json:"decayToItemRowName,omitempty"`
}

// Liquid describes a liquid container.
type Liquid struct {
	IsLiquidContainer     bool     `json:"isLiquidContainer"`
	MaxLiquid             float64  `json:"maxLiquid"`
	AllowedLiquids        []string `json:"allowedLiquids"`
	StartLiquidPercentage float64  `json:"startLiquidPercentage"`
	StartLiquid           []string `json:"startLiquid"`
}

// Deployable describes a placeable item and its interaction verbs.
type Deployable struct {
	IsDeployable                 bool   `json:"isDeployable"`
	PlacementOrientationsAllowed string `json:"placementOrientationsAllowed"`

	PrimaryInteraction       string `json:"primaryInteraction,omitempty"`
	PrimaryInteractionLong   string `json:"primaryInteractionLong,omitempty"`
	SecondaryInteraction     string `json:"secondaryInteraction,omitempty"`
	SecondaryInteractionLong string `json:"secondaryInteractionLong,omitempty"`
}
