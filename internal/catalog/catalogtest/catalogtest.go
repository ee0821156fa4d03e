// Package catalogtest provides a small Skyrim catalog for tests.
package catalogtest

import "github.com/osse101/Alchemy_Go/internal/domain"

// Ingredient names used by tests
const (
	Wheat              = "Wheat"
	BlueMountainFlower = "Blue Mountain Flower"
	HagravenFeathers   = "Hagraven Feathers"
	GiantsToe          = "Giant's Toe"
	NordicBarnacle     = "Nordic Barnacle"
	Histcarp           = "Histcarp"
	ChickensEgg        = "Chicken's Egg"
	SalmonRoe          = "Salmon Roe"
	HawksEgg           = "Hawk's Egg"
	LunaMothWing       = "Luna Moth Wing"
	VampireDust        = "Vampire Dust"
)

// Effect names used by tests
const (
	RestoreHealth          = "Restore Health"
	FortifyHealth          = "Fortify Health"
	FortifyConjuration     = "Fortify Conjuration"
	DamageStaminaRegen     = "Damage Stamina Regen"
	LingeringDamageMagicka = "Lingering Damage Magicka"
	DamageMagickaRegen     = "Damage Magicka Regen"
	DamageMagicka          = "Damage Magicka"
	Frenzy                 = "Frenzy"
	WeaknessToShock        = "Weakness to Shock"
	Waterbreathing         = "Waterbreathing"
	Invisibility           = "Invisibility"
	DamageStamina          = "Damage Stamina"
	FortifyCarryWeight     = "Fortify Carry Weight"
	RestoreStamina         = "Restore Stamina"
	FortifyMagicka         = "Fortify Magicka"
	ResistMagic            = "Resist Magic"
	LingeringDamageStamina = "Lingering Damage Stamina"
	RegenerateMagicka      = "Regenerate Magicka"
	RavageHealth           = "Ravage Health"
	FortifyPickpocket      = "Fortify Pickpocket"
	FortifyLightArmor      = "Fortify Light Armor"
	RegenerateHealth       = "Regenerate Health"
	RestoreMagicka         = "Restore Magicka"
	CureDisease            = "Cure Disease"
)

// Effects returns a fresh copy of the fixture effects
func Effects() []domain.Effect {
	return []domain.Effect{
		effect(RestoreHealth, "Restoration", domain.EffectTypeBeneficial, 0.5, 0, 5),
		effect(FortifyHealth, "Restoration", domain.EffectTypeBeneficial, 0.35, 60, 4),
		effect(FortifyConjuration, "Conjuration", domain.EffectTypeBeneficial, 0.25, 60, 5),
		effect(DamageStaminaRegen, "Destruction", domain.EffectTypeHarmful, 0.3, 5, 100),
		effect(LingeringDamageMagicka, "Destruction", domain.EffectTypeHarmful, 10, 10, 1),
		effect(DamageMagickaRegen, "Destruction", domain.EffectTypeHarmful, 0.5, 5, 100),
		effect(DamageMagicka, "Destruction", domain.EffectTypeHarmful, 2.2, 0, 3),
		effect(Frenzy, "Illusion", domain.EffectTypeHarmful, 15, 10, 1),
		effect(WeaknessToShock, "Alteration", domain.EffectTypeHarmful, 0.56, 30, 3),
		effect(Waterbreathing, "Alteration", domain.EffectTypeBeneficial, 3.0, 5, 0),
		effect(Invisibility, "Illusion", domain.EffectTypeBeneficial, 100, 4, 0),
		effect(DamageStamina, "Destruction", domain.EffectTypeHarmful, 1.8, 0, 3),
		effect(FortifyCarryWeight, "Alteration", domain.EffectTypeBeneficial, 0.15, 300, 4),
		effect(RestoreStamina, "Restoration", domain.EffectTypeBeneficial, 0.6, 0, 5),
		effect(FortifyMagicka, "Restoration", domain.EffectTypeBeneficial, 0.3, 60, 4),
		effect(ResistMagic, "Alteration", domain.EffectTypeBeneficial, 0.5, 60, 1),
		effect(LingeringDamageStamina, "Destruction", domain.EffectTypeHarmful, 1.8, 10, 1),
		effect(RegenerateMagicka, "Restoration", domain.EffectTypeBeneficial, 0.1, 300, 5),
		effect(RavageHealth, "Destruction", domain.EffectTypeHarmful, 0.4, 10, 2),
		effect(FortifyPickpocket, "Illusion", domain.EffectTypeBeneficial, 0.5, 60, 4),
		effect(FortifyLightArmor, "Alteration", domain.EffectTypeBeneficial, 0.5, 60, 2),
		effect(RegenerateHealth, "Restoration", domain.EffectTypeBeneficial, 0.1, 300, 5),
		effect(RestoreMagicka, "Restoration", domain.EffectTypeBeneficial, 0.6, 0, 5),
		effect(CureDisease, "Restoration", domain.EffectTypeBeneficial, 0.5, 0, 0),
	}
}

// Ingredients returns a fresh copy of the fixture ingredients. Every slot
// multiplier is 1.0 unless a test changes it.
func Ingredients() []domain.Ingredient {
	return []domain.Ingredient{
		ingredient(Wheat, true, 5, 0.1, RestoreHealth, FortifyHealth, DamageStaminaRegen, LingeringDamageMagicka),
		ingredient(BlueMountainFlower, true, 2, 0.1, RestoreHealth, FortifyConjuration, FortifyHealth, DamageMagickaRegen),
		ingredient(HagravenFeathers, false, 20, 0.1, DamageMagicka, FortifyConjuration, Frenzy, WeaknessToShock),
		ingredient(GiantsToe, false, 20, 1.0, DamageStamina, FortifyHealth, FortifyCarryWeight, DamageStaminaRegen),
		ingredient(NordicBarnacle, false, 5, 0.2, DamageMagicka, Waterbreathing, RavageHealth, FortifyPickpocket),
		ingredient(Histcarp, false, 6, 0.25, RestoreStamina, FortifyMagicka, DamageStaminaRegen, Waterbreathing),
		ingredient(ChickensEgg, true, 2, 0.5, ResistMagic, DamageMagickaRegen, Waterbreathing, LingeringDamageStamina),
		ingredient(SalmonRoe, false, 5, 0.2, RestoreStamina, Waterbreathing, FortifyMagicka, RegenerateMagicka),
		ingredient(HawksEgg, false, 5, 0.5, ResistMagic, DamageMagickaRegen, Waterbreathing, LingeringDamageStamina),
		ingredient(LunaMothWing, true, 4, 0.1, DamageMagicka, FortifyLightArmor, RegenerateHealth, Invisibility),
		ingredient(VampireDust, false, 25, 0.2, Invisibility, RestoreMagicka, RegenerateHealth, CureDisease),
	}
}

// IngredientNames lists every fixture ingredient
func IngredientNames() []string {
	ings := Ingredients()
	names := make([]string, len(ings))
	for i := range ings {
		names[i] = ings[i].Name
	}
	return names
}

func effect(name, school, typ string, cost float64, dur, mag int) domain.Effect {
	return domain.Effect{
		Name:        name,
		Description: name + " for {mag} points over {dur} seconds.",
		School:      school,
		Type:        typ,
		Cost:        cost,
		Duration:    dur,
		Magnitude:   mag,
	}
}

func ingredient(name string, farmable bool, value int, weight float64, effects ...string) domain.Ingredient {
	slots := make([]domain.EffectSlot, len(effects))
	for i, e := range effects {
		slots[i] = domain.EffectSlot{Name: e, Power: 1.0, Value: 1.0}
	}
	return domain.Ingredient{
		Name:      name,
		Effects:   slots,
		Farmable:  farmable,
		GoldValue: value,
		Weight:    weight,
	}
}
