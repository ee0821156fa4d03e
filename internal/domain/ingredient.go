package domain

// EffectSlot is one of an ingredient's effects. Power and Value are multipliers
// applied to the base effect when the slot takes part in a brew.
type EffectSlot struct {
	Name  string  `json:"name" yaml:"name"`
	Power float64 `json:"power" yaml:"power"`
	Value float64 `json:"value" yaml:"value"`
}

// Ingredient is a raw alchemy material carrying up to four effect slots.
// Weight and GoldValue are display attributes only.
type Ingredient struct {
	Name      string       `json:"name" yaml:"name"`
	Effects   []EffectSlot `json:"effects" yaml:"effects"`
	Farmable  bool         `json:"farmable" yaml:"farmable"`
	Link      string       `json:"link,omitempty" yaml:"link,omitempty"`
	GoldValue int          `json:"value" yaml:"value"`
	Weight    float64      `json:"weight" yaml:"weight"`
}

// HasEffect reports whether one of the slots carries the named effect
func (i *Ingredient) HasEffect(effectName string) bool {
	for _, slot := range i.Effects {
		if slot.Name == effectName {
			return true
		}
	}
	return false
}

// Slot returns the slot for the named effect
func (i *Ingredient) Slot(effectName string) (EffectSlot, bool) {
	for _, slot := range i.Effects {
		if slot.Name == effectName {
			return slot, true
		}
	}
	return EffectSlot{}, false
}

// EffectNames lists slot effect names in slot order
func (i *Ingredient) EffectNames() []string {
	names := make([]string, len(i.Effects))
	for idx, slot := range i.Effects {
		names[idx] = slot.Name
	}
	return names
}

// Buffed reports whether any slot is stronger or worth more than normal
func (i *Ingredient) Buffed() bool {
	for _, slot := range i.Effects {
		if slot.Power > DefaultMultiplier || slot.Value > DefaultMultiplier {
			return true
		}
	}
	return false
}

// Nerfed reports whether any slot is weaker or worth less than normal
func (i *Ingredient) Nerfed() bool {
	for _, slot := range i.Effects {
		if slot.Power < DefaultMultiplier || slot.Value < DefaultMultiplier {
			return true
		}
	}
	return false
}
