// Package catalogdata holds the built-in Icelandic name list used to seed
// the shared catalog. The list is a starter set; a fuller one can be loaded
// through the seeder command.
package catalogdata

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/nafnapp-backend/internal/domain"
)

// seedNamespace makes seed name IDs deterministic: re-seeding an existing
// catalog produces the same IDs and the inserts no-op on conflict.
var seedNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

type entry struct {
	name    string
	gender  domain.Gender
	meaning string
}

var entries = []entry{
	{"Ásta", domain.GenderFemale, "Love, affection"},
	{"Birna", domain.GenderFemale, "She-bear"},
	{"Dagný", domain.GenderFemale, "New day"},
	{"Embla", domain.GenderFemale, "First woman in Norse mythology"},
	{"Freyja", domain.GenderFemale, "Lady, goddess of love"},
	{"Guðrún", domain.GenderFemale, "God's secret lore"},
	{"Hekla", domain.GenderFemale, "Hooded"},
	{"Íris", domain.GenderFemale, "Rainbow"},
	{"Jóhanna", domain.GenderFemale, "God is gracious"},
	{"Katrín", domain.GenderFemale, "Pure"},
	{"Lilja", domain.GenderFemale, "Lily"},
	{"Margrét", domain.GenderFemale, "Pearl"},
	{"Nanna", domain.GenderFemale, "Bold, daring"},
	{"Ólöf", domain.GenderFemale, "Ancestor's relic"},
	{"Petra", domain.GenderFemale, "Rock"},
	{"Rakel", domain.GenderFemale, "Ewe, female sheep"},
	{"Sara", domain.GenderFemale, "Princess"},
	{"Tinna", domain.GenderFemale, "Flint"},
	{"Unnur", domain.GenderFemale, "Wave"},
	{"Vigdís", domain.GenderFemale, "War goddess"},
	{"Arnar", domain.GenderMale, "Eagle"},
	{"Bjarni", domain.GenderMale, "Bear"},
	{"Dagur", domain.GenderMale, "Day"},
	{"Einar", domain.GenderMale, "One warrior"},
	{"Gunnar", domain.GenderMale, "Warrior"},
}

// ID returns the deterministic catalog ID for a seed name.
func ID(name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(name))
}

// Names returns a fresh copy of the built-in seed list.
func Names() []domain.Name {
	out := make([]domain.Name, 0, len(entries))
	for _, e := range entries {
		meaning := e.meaning
		out = append(out, domain.Name{
			ID:      ID(e.name),
			Name:    e.name,
			Gender:  e.gender,
			Meaning: &meaning,
		})
	}
	return out
}
