package location

import (
	"embed"
	"encoding/json"
)

//go:embed data/provinces.json data/districts.json
var dataFS embed.FS

// Province il ve plaka kodu
type Province struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var (
	provinces []Province
	// il kodu -> ilçe -> mahalleler
	districts map[string]map[string][]string
)

// Init gömülü il/ilçe verisini yükler
func Init() error {
	pData, err := dataFS.ReadFile("data/provinces.json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(pData, &provinces); err != nil {
		return err
	}

	dData, err := dataFS.ReadFile("data/districts.json")
	if err != nil {
		return err
	}
	return json.Unmarshal(dData, &districts)
}

// GetCities tüm illeri döner
func GetCities() []Province {
	return provinces
}

// GetDistrictsAndNeighbourhoods il koduna göre ilçe ve mahalleleri döner.
// Bilinmeyen kod için boş map döner, hata değil.
func GetDistrictsAndNeighbourhoods(cityCode string) map[string][]string {
	if d, ok := districts[cityCode]; ok {
		return d
	}
	return map[string][]string{}
}
