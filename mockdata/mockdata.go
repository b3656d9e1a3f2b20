// Package mockdata, uygulamanın gömülü mock veri setini sağlar.
//
// Veri seti seed.yaml dosyasında tutulur ve binary'ye go:embed ile gömülür.
// memory store her açılışta buradan beslenir, SQL sürücüleri ise boş
// veritabanına bir kez yazar (database.Seed).
package mockdata

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lezzetkesif/lezzetkesif/models"
)

//go:embed seed.yaml
var seedYAML []byte

// SeedUser, veri setindeki kullanıcı. Şifre düz metin tutulur,
// yükleyen taraf bcrypt ile hash'ler.
type SeedUser struct {
	models.User `yaml:",inline"`
	Password    string `yaml:"password"`
}

// Dataset, seed.yaml'ın Go karşılığı.
type Dataset struct {
	Users       []SeedUser          `yaml:"users"`
	Admins      []string            `yaml:"admins"`
	Restaurants []models.Restaurant `yaml:"restaurants"`
	BlogPosts   []models.BlogPost   `yaml:"blog_posts"`
	Reviews     []models.Review     `yaml:"reviews"`
	Comments    []models.Comment    `yaml:"comments"`
}

// Load, gömülü veri setini parse eder. Her çağrı bağımsız bir kopya döner;
// çağıran taraf dilediği gibi değiştirebilir.
func Load() (*Dataset, error) {
	return Parse(seedYAML)
}

// Parse, verilen YAML içeriğini Dataset'e çevirir ve temel tutarlılık kontrollerini yapar.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse mock dataset: %w", err)
	}
	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("invalid mock dataset: %w", err)
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	seen := make(map[string]bool, len(ds.Restaurants))
	for _, r := range ds.Restaurants {
		if r.ID == "" || seen[r.ID] {
			return fmt.Errorf("restaurant id %q is empty or duplicated", r.ID)
		}
		seen[r.ID] = true
		if r.Rating < models.MinRating || r.Rating > models.MaxRating {
			return fmt.Errorf("restaurant %s: rating %.1f out of range", r.ID, r.Rating)
		}
		if !r.PriceRange.Valid() {
			return fmt.Errorf("restaurant %s: invalid price range %q", r.ID, r.PriceRange)
		}
	}
	for _, rv := range ds.Reviews {
		if !seen[rv.RestaurantID] {
			return fmt.Errorf("review %s references unknown restaurant %s", rv.ID, rv.RestaurantID)
		}
		if !rv.Status.Valid() {
			return fmt.Errorf("review %s: invalid status %q", rv.ID, rv.Status)
		}
	}
	return nil
}
