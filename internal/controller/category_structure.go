package controller

// CategoryStructure ilan sınıflandırma ağacı: ana tip -> alt tip -> oda/çeşit -> seçenekler.
// Frontend ilan formunu bu yapıdan kurar.
var CategoryStructure = map[string]map[string]map[string][]string{
	"Konut": {
		"Daire": {
			"1+1":        {"1+1 Daire"},
			"2+1":        {"2+1 Daire"},
			"3+1":        {"3+1 Daire"},
			"4+1":        {"4+1 Daire"},
			"5+1":        {"5+1 Daire"},
			"Daha Fazla": {"6+1 Daire", "7+1 Daire", "8+1 Daire"},
		},
		"Müstakil": {
			"Villa":       {"Villa"},
			"Müstakil Ev": {"Müstakil Ev"},
			"Yazlık":      {"Yazlık"},
			"Çiftlik Evi": {"Çiftlik Evi"},
		},
		"Residence": {
			"Residence Daire": {"Residence Daire"},
			"Lüks Daire":      {"Lüks Daire"},
			"Penthouse":       {"Penthouse"},
		},
		"Yatırımlık": {
			"Öğrenciye":        {"Öğrenciye"},
			"Yatırımlık Daire": {"Yatırımlık Daire"},
		},
	},
	"İş Yeri": {
		"Dükkan": {
			"Dükkan":   {"Dükkan"},
			"Mağaza":   {"Mağaza"},
			"Showroom": {"Showroom"},
		},
		"Ofis": {
			"Ofis":       {"Ofis"},
			"Plaza":      {"Plaza"},
			"İş Merkezi": {"İş Merkezi"},
		},
		"Depo": {
			"Depo":    {"Depo"},
			"Antrepo": {"Antrepo"},
			"Atölye":  {"Atölye"},
		},
	},
	"Arsa": {
		"Arsa": {
			"Tapulu Arsa":     {"Tapulu Arsa"},
			"İmarı Açık Arsa": {"İmarı Açık Arsa"},
			"Tarla":           {"Tarla"},
		},
		"Arazi": {
			"Zeytinlik":     {"Zeytinlik"},
			"Fındıklık":     {"Fındıklık"},
			"Meyve Bahçesi": {"Meyve Bahçesi"},
		},
	},
	"Turizm": {
		"Otel": {
			"Butik Otel": {"Butik Otel"},
			"Apart Otel": {"Apart Otel"},
			"Tatil Köyü": {"Tatil Köyü"},
		},
	},
}
