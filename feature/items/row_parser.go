package items

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"data-exporter/core/unreal"
)

const (
	// BackpackSlot is the equip slot assigned to every item that cannot be worn.
	BackpackSlot = "E_InventorySlotType::NewEnumerator1"

	researchMaterialPrefix = "Item.Material."
	cookedStatePlaceholder = "{CookedState}"
	unknownIconFilename    = "UNKNOWN"
)

// StringResolver resolves localized string handles.
type StringResolver interface {
	ResolveString(ctx context.Context, handle unreal.StringHandle) (string, bool, error)
}

// EnumDisplayNamer resolves enum references to display names.
type EnumDisplayNamer interface {
	ResolveEnumDisplayName(ctx context.Context, value string) (string, error)
}

// RowGetter resolves row handles.
type RowGetter interface {
	GetRow(ctx context.Context, handle unreal.DataTableRowHandle) (*unreal.Object, bool, error)
}

// PathParser maps object paths to files.
type PathParser interface {
	ParseObjectPath(objectPath, extension string) (filename, key string, err error)
}

// RowParser builds Item records from item rows.
type RowParser struct {
	strings StringResolver
	enums   EnumDisplayNamer
	rows    RowGetter
	paths   PathParser
}

// NewRowParser creates a row parser.
func NewRowParser(texts StringResolver, enums EnumDisplayNamer, rows RowGetter, paths PathParser) *RowParser {
	return &RowParser{strings: texts, enums: enums, rows: rows, paths: paths}
}

// Parse builds the record of one item row. states maps any of the raw, cooked or
// burned row names of a food item to its state triple.
func (p *RowParser) Parse(ctx context.Context, rowName string, row ItemRow, states map[string]CookableStates) (Item, error) {
	item := Item{
		RowName:       rowName,
		StackSize:     row.StackSize,
		Weight:        row.Weight,
		Radioactivity: row.ConsumableData.Radioactivity,
		GameplayTags:  nonNil(row.GameplayTags),
	}

	var err error
	if item.Name, err = p.name(ctx, rowName, row); err != nil {
		return Item{}, err
	}
	if item.Description, err = p.text(ctx, row.ItemDescription); err != nil {
		return Item{}, fmt.Errorf("description: %w", err)
	}
	if item.FlavorText, err = p.text(ctx, row.ItemFlavorText); err != nil {
		return Item{}, fmt.Errorf("flavor text: %w", err)
	}

	item.InventoryIconPath = row.InventoryIcon.AssetPathName
	item.InventoryIconFilename = p.iconFilename(row.InventoryIcon)
	item.ResearchMaterial = researchMaterial(row.GameplayTags)
	item.Durability = durability(row)

	if item.Weapon, err = p.weapon(ctx, row); err != nil {
		return Item{}, fmt.Errorf("weapon: %w", err)
	}
	if item.Equipment, err = p.equipment(ctx, row.EquipmentData); err != nil {
		return Item{}, fmt.Errorf("equipment: %w", err)
	}
	if item.Salvage, err = p.salvage(ctx, row.SalvageData); err != nil {
		return Item{}, fmt.Errorf("salvage: %w", err)
	}
	item.Consumable = consumable(row.ConsumableData)
	if item.Cookable, err = p.cookable(ctx, rowName, row.CookableData, states); err != nil {
		return Item{}, fmt.Errorf("cookable: %w", err)
	}
	if item.Liquid, err = p.liquid(ctx, row.LiquidData); err != nil {
		return Item{}, fmt.Errorf("liquid: %w", err)
	}
	if item.Deployable, err = p.deployable(ctx, row); err != nil {
		return Item{}, fmt.Errorf("deployable: %w", err)
	}

	return item, nil
}

func (p *RowParser) name(ctx context.Context, rowName string, row ItemRow) (string, error) {
	name, ok, err := p.strings.ResolveString(ctx, row.ItemName)
	if err != nil {
		return "", fmt.Errorf("name: %w", err)
	}
	if !ok {
		return fmt.Sprintf("UNKNOWN (%s)", rowName), nil
	}
	return strings.Replace(name, cookedStatePlaceholder, "Cooked", 1), nil
}

func (p *RowParser) text(ctx context.Context, handle unreal.StringHandle) (string, error) {
	value, _, err := p.strings.ResolveString(ctx, handle)
	return value, err
}

// enum resolves an enum reference; an unset reference has no display name.
func (p *RowParser) enum(ctx context.Context, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	return p.enums.ResolveEnumDisplayName(ctx, value)
}

func (p *RowParser) enumList(ctx context.Context, values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		name, err := p.enum(ctx, v)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}

func (p *RowParser) iconFilename(icon unreal.AssetHandle) string {
	if icon.IsEmpty() {
		return unknownIconFilename
	}
	filename, _, err := p.paths.ParseObjectPath(icon.AssetPathName, "png")
	if err != nil {
		return unknownIconFilename
	}
	return filepath.Base(filename)
}

func researchMaterial(tags []string) string {
	for _, tag := range tags {
		if strings.HasPrefix(tag, researchMaterialPrefix) {
			return strings.TrimPrefix(tag, researchMaterialPrefix)
		}
	}
	return ""
}

func durability(row ItemRow) Durability {
	d := Durability{
		CanLoseDurability:      row.CanLoseDurability,
		MaxDurability:          row.MaxItemDurability,
		ChanceToLoseDurability: row.ChanceToLoseDurability,
	}
	if !row.RepairItem.ItemDataTable.IsNone() {
		d.RepairItem = &RepairItem{
			ItemRowName: row.RepairItem.ItemDataTable.RowName,
			QuantityMin: row.RepairItem.QuantityMin,
			QuantityMax: row.RepairItem.QuantityMax,
		}
	}
	return d
}

func (p *RowParser) weapon(ctx context.Context, row ItemRow) (Weapon, error) {
	data := row.WeaponData
	w := Weapon{
		IsWeapon:               row.IsWeapon,
		IsMelee:                data.Melee,
		TimeBetweenShots:       data.TimeBetweenShots,
		MaximumHitscanRange:    data.MaximumHitscanRange,
		DamagePerHit:           data.DamagePerHit,
		BulletSpreadMin:        data.BulletSpreadMin,
		BulletSpreadMax:        data.BulletSpreadMax,
		RecoilAmount:           data.RecoilAmount,
		PelletCount:            data.PelletCount,
		MagazineSize:           data.MagazineSize,
		RequireAmmo:            data.RequireAmmo,
		AmmoItemRowName:        data.AmmoType.RowName,
		LoudnessOnPrimaryUse:   data.LoudnessOnPrimaryUse,
		LoudnessOnSecondaryUse: data.LoudnessOnSecondaryUse,
	}

	var err error
	if w.SecondaryAttack, err = p.enum(ctx, data.SecondaryAttack); err != nil {
		return Weapon{}, err
	}
	if w.UnderwaterState, err = p.enum(ctx, data.UnderwaterState); err != nil {
		return Weapon{}, err
	}
	return w, nil
}

func (p *RowParser) equipment(ctx context.Context, data EquipmentRow) (Equipment, error) {
	slot, err := p.enum(ctx, data.EquipSlot)
	if err != nil {
		return Equipment{}, err
	}

	return Equipment{
		IsEquipment:              data.EquipSlot != "" && data.EquipSlot != BackpackSlot,
		Slot:                     slot,
		CanAutoEquip:             data.CanAutoEquip,
		ArmorBonus:               data.ArmorBonus,
		IsContainer:              data.IsContainer,
		ContainerCapacity:        data.ContainerCapacity,
		ContainerWeightReduction: data.ContainerWeightReduction,
		SetBonus:                 data.SetBonus.RowName,
	}, nil
}

func (p *RowParser) salvage(ctx context.Context, handle unreal.DataTableRowHandle) (Salvage, error) {
	s := Salvage{Items: []LootEntry{}}

	row, ok, err := p.rows.GetRow(ctx, handle)
	if err != nil {
		return Salvage{}, err
	}
	if !ok {
		return s, nil
	}

	salvage, err := unreal.DecodeRow[SalvageRow](row)
	if err != nil {
		return Salvage{}, err
	}
	for _, drop := range salvage.SalvageDropItems {
		s.Items = append(s.Items, LootEntry{
			ItemRowName:  drop.ItemDataTable.RowName,
			QuantityMin:  drop.QuantityMin,
			QuantityMax:  drop.QuantityMax,
			ChanceToDrop: drop.ChanceToDrop,
		})
	}
	s.IsSalvageable = len(s.Items) > 0
	return s, nil
}

func consumable(data ConsumableRow) Consumable {
	c := Consumable{
		TimeToConsume:     data.TimeToConsume,
		HungerFill:        data.HungerFill,
		ThirstFill:        data.ThirstFill,
		FatigueFill:       data.FatigueFill,
		ContinenceFill:    data.ContinenceFill,
		SanityFill:        data.SanityFill,
		TemperatureChange: data.TemperatureChange,
		RadiationChange:   data.RadiationChange,
		HealthChange:      data.HealthChange,
		ArmorChange:       data.ArmorChange,
		BuffsToAdd:        nonNil(data.BuffsToAdd),
		BuffsToRemove:     nonNil(data.BuffsToRemove),
		ConsumableTag:     data.ConsumableTag.TagName,
		ConsumedAction:    data.ConsumedAction,
	}

	c.IsConsumable = c.HungerFill != 0 ||
		c.ThirstFill != 0 ||
		c.FatigueFill != 0 ||
		c.ContinenceFill != 0 ||
		c.SanityFill != 0 ||
		c.TemperatureChange != 0 ||
		c.RadiationChange != 0 ||
		c.HealthChange != 0 ||
		c.ArmorChange != 0 ||
		len(c.BuffsToAdd) > 0 ||
		len(c.BuffsToRemove) > 0 ||
		c.ConsumableTag != ""
	return c
}

func (p *RowParser) cookable(ctx context.Context, rowName string, data CookableRow, states map[string]CookableStates) (Cookable, error) {
	c := Cookable{
		IsCookware:         data.IsCookware,
		CanBeCooked:        data.CanBeCooked,
		RequiresBaking:     data.RequiresBaking,
		TimeToCookBaseline: data.TimeToCookBaseline,
		TimeToBurnBaseline: data.TimeToBurnBaseline,
		FarmableDataRow:    rowNameOf(data.FarmableDataRow),
		CanDecay:           data.CanItemDecay,
		DecayToItemRowName: rowNameOf(data.DecayToItem),
	}
	if s, ok := states[rowName]; ok {
		c.CookableStates = &s
	}

	var err error
	if c.DecayTemperature, err = p.enum(ctx, data.ItemDecayTemperature); err != nil {
		return Cookable{}, err
	}
	return c, nil
}

func (p *RowParser) liquid(ctx context.Context, data LiquidRow) (Liquid, error) {
	allowed, err := p.enumList(ctx, data.AllowedLiquids)
	if err != nil {
		return Liquid{}, err
	}
	start, err := p.enumList(ctx, data.LiquidToStartWith)
	if err != nil {
		return Liquid{}, err
	}

	return Liquid{
		IsLiquidContainer:     len(data.AllowedLiquids) > 0,
		MaxLiquid:             data.MaxLiquid,
		AllowedLiquids:        allowed,
		StartLiquidPercentage: data.PercentageLiquidToStartWith,
		StartLiquid:           start,
	}, nil
}

func (p *RowParser) deployable(ctx context.Context, row ItemRow) (Deployable, error) {
	d := Deployable{IsDeployable: !row.DeployedItemClass.IsEmpty()}

	var err error
	if d.PlacementOrientationsAllowed, err = p.enum(ctx, row.PlacementOrientationsAllowed); err != nil {
		return Deployable{}, err
	}

	verbs := []struct {
		handle unreal.StringHandle
		dst    *string
	}{
		{row.ToInteractWithText, &d.PrimaryInteraction},
		{row.ToLongInteractWithText, &d.PrimaryInteractionLong},
		{row.ToPackageText, &d.SecondaryInteraction},
		{row.ToLongPackageText, &d.SecondaryInteractionLong},
	}
	for _, v := range verbs {
		if *v.dst, err = p.text(ctx, v.handle); err != nil {
			return Deployable{}, err
		}
	}
	return d, nil
}

// rowNameOf returns the row name of a handle, or "" for the None sentinel.
func rowNameOf(handle unreal.DataTableRowHandle) string {
	if handle.IsNone() {
		return ""
	}
	return handle.RowName
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
