package entities

// typeDisplayNames maps upstream type tags to their catalog labels.
var typeDisplayNames = map[string]string{
	"normal":   "Normal",
	"fire":     "Fuego",
	"water":    "Agua",
	"electric": "Eléctrico",
	"grass":    "Planta",
	"ice":      "Hielo",
	"fighting": "Lucha",
	"poison":   "Veneno",
	"ground":   "Tierra",
	"flying":   "Volador",
	"psychic":  "Psíquico",
	"bug":      "Bicho",
	"rock":     "Roca",
	"ghost":    "Fantasma",
	"dragon":   "Dragón",
	"dark":     "Siniestro",
	"steel":    "Acero",
	"fairy":    "Hada",
}

// TypeDisplayName returns the label for a type tag, falling back to the
// capitalized tag for anything outside the table.
func TypeDisplayName(tag string) string {
	if name, ok := typeDisplayNames[tag]; ok {
		return name
	}
	return DisplayName(tag)
}
