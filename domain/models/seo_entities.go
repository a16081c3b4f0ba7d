package models

import (
	"time"

	"github.com/lib/pq"
)

// Schema used by AutoMigrate. Runtime reads and writes go through the
// generic table repository with map rows, not these structs.

type SEOBlock struct {
	MetaTitle       *string `gorm:"column:meta_title;type:text"`
	MetaDescription *string `gorm:"column:meta_description;type:text"`
	H1              *string `gorm:"column:h1;type:text"`
	H2              *string `gorm:"column:h2;type:text"`
	TextTop         *string `gorm:"column:text_top;type:text"`
	TextBottom      *string `gorm:"column:text_bottom;type:text"`
}

type Category struct {
	ID       int64   `gorm:"column:id_categorie;primaryKey;autoIncrement"`
	URL      string  `gorm:"column:url_categorie;size:255;not null"`
	Label    string  `gorm:"column:libelle_categorie;size:255;not null"`
	Keywords *string `gorm:"column:keywords;type:text"`
	SEOBlock `gorm:"embedded"`
}

func (Category) TableName() string { return string(TableCategories) }

type SubCategory struct {
	ID         int64   `gorm:"column:id_sous_categorie;primaryKey;autoIncrement"`
	Label      string  `gorm:"column:libelle_sous_categorie;size:255;not null"`
	CategoryID int64   `gorm:"column:id_categorie;not null;index"`
	URL        string  `gorm:"column:url_sous_categorie;size:255;not null"`
	Keywords   *string `gorm:"column:keywords;type:text"`
	SEOBlock   `gorm:"embedded"`
}

func (SubCategory) TableName() string { return string(TableSubCategories) }

type Governorate struct {
	ID       int64   `gorm:"column:id_gouvernorat;primaryKey;autoIncrement"`
	Label    string  `gorm:"column:libelle_gouvernorat;size:255;not null"`
	URL      string  `gorm:"column:url_gouvernorat;size:255;not null"`
	Keywords *string `gorm:"column:keywords;type:text"`
	SEOBlock `gorm:"embedded"`
}

func (Governorate) TableName() string { return string(TableGovernorates) }

type City struct {
	ID              int64   `gorm:"column:id_ville;primaryKey;autoIncrement"`
	Label           string  `gorm:"column:libelle_ville;size:255;not null"`
	GovernorateCode int64   `gorm:"column:code_gouvernorat;not null;index"`
	URL             string  `gorm:"column:url_ville;size:255;not null"`
	Keywords        *string `gorm:"column:keywords;type:text"`
	SEOBlock        `gorm:"embedded"`
}

func (City) TableName() string { return string(TableCities) }

type LandingPage struct {
	ID            int64         `gorm:"column:id;primaryKey;autoIncrement"`
	Slug          string        `gorm:"column:slug;size:255;not null;uniqueIndex"`
	Active        bool          `gorm:"column:active;not null;default:true"`
	CategoryID    *int64        `gorm:"column:category_id;index"`
	SubCategoryID *int64        `gorm:"column:sub_category_id"`
	GovernorateID *int64        `gorm:"column:gouvernorat_id"`
	CityID        *int64        `gorm:"column:ville_id"`
	SearchTerm    *string       `gorm:"column:search_term;size:255"`
	FeaturedIDs   pq.Int64Array `gorm:"column:featured_ids;type:integer[];default:'{}'"`
	BannedIDs     pq.Int64Array `gorm:"column:banned_ids;type:integer[];default:'{}'"`
	Tags          *string       `gorm:"column:tags;type:text"`
	SEOBlock      `gorm:"embedded"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (LandingPage) TableName() string { return string(TableLandingPages) }

type Brand struct {
	ID              int64   `gorm:"column:id_marque;primaryKey;autoIncrement"`
	Label           string  `gorm:"column:libelle_marque;size:255;not null"`
	URL             string  `gorm:"column:url_marque;size:255;not null"`
	CategoryID      int64   `gorm:"column:categorie_marque;not null;index"`
	Title           *string `gorm:"column:titre;type:text"`
	Description     *string `gorm:"column:desc;type:text"`
	H1              *string `gorm:"column:h1;type:text"`
	H2              *string `gorm:"column:h2;type:text"`
	MetaDescription *string `gorm:"column:meta_desc;type:text"`
	Keywords        *string `gorm:"column:cle;type:text"`
}

func (Brand) TableName() string { return string(TableBrands) }
