package repositories

type Repositories struct {
	Catalog *CatalogRepository
}

func New(source Source) *Repositories {
	return &Repositories{
		Catalog: &CatalogRepository{source: source},
	}
}
