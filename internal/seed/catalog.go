package seed

// Curated French-language content pools. Generated fields (usernames,
// emails, filler sentences) come from gofakeit; everything the UI shows
// prominently comes from these lists so the demo data reads naturally.

var plantCatalog = []struct {
	Name    string
	Species string
}{
	{"Monstera", "Monstera deliciosa"},
	{"Ficus lyrata", "Ficus lyrata"},
	{"Pothos doré", "Epipremnum aureum"},
	{"Calathea", "Calathea orbifolia"},
	{"Sansevieria", "Dracaena trifasciata"},
	{"Pilea", "Pilea peperomioides"},
	{"Aloe vera", "Aloe barbadensis miller"},
	{"Cactus de Noël", "Schlumbergera truncata"},
	{"Orchidée", "Phalaenopsis amabilis"},
	{"Basilic", "Ocimum basilicum"},
	{"Fougère de Boston", "Nephrolepis exaltata"},
	{"Yucca", "Yucca elephantipes"},
	{"Caoutchouc", "Ficus elastica"},
	{"Lierre", "Hedera helix"},
	{"Palmier areca", "Dypsis lutescens"},
}

var plantLocations = []string{
	"salon", "cuisine", "chambre", "bureau", "salle de bain",
	"balcon", "véranda", "entrée", "rebord de fenêtre",
}

var postTitlesByCategory = map[string][]string{
	"conseils": {
		"Mes astuces pour un monstera en pleine forme",
		"Comment j'ai sauvé mon ficus de la sécheresse",
		"Rempotage de printemps : ce qui marche pour moi",
		"Arrosage en vacances : mon système de mèches",
	},
	"questions": {
		"Feuilles jaunes sur mon pothos, que faire ?",
		"Quelle exposition pour une calathea ?",
		"À quelle fréquence fertiliser un basilic en pot ?",
		"Mon orchidée ne refleurit pas, des idées ?",
	},
	"identification": {
		"Plante trouvée chez ma grand-mère, une idée ?",
		"Quelqu'un reconnaît cette succulente ?",
		"Cadeau de crémaillère mystère, aidez-moi !",
	},
	"maladies": {
		"Taches brunes qui s'étendent sur les feuilles",
		"Cochenilles sur mon caoutchouc, au secours",
		"Moucherons dans le terreau, traitement naturel ?",
	},
	"troc": {
		"Échange boutures de pilea contre pothos",
		"Donne pied de sansevieria bien établi",
		"Recherche bouture de monstera variegata",
	},
}

var commentSnippets = []string{
	"Essaie de réduire l'arrosage à une fois par semaine.",
	"J'ai eu le même problème, c'était un excès de soleil direct.",
	"Superbe plante, merci pour le partage !",
	"Un apport d'engrais liquide au printemps devrait aider.",
	"Vérifie le drainage du pot, c'est souvent ça.",
	"Chez moi ça a marché avec du savon noir dilué.",
	"Très bon conseil, je vais tester ce week-end.",
	"Tu peux bouturer la tige dans l'eau sans problème.",
}

var rejectionReasons = []string{
	"Contenu hors sujet pour ce forum",
	"Annonce commerciale non autorisée",
	"Doublon d'une discussion existante",
}
